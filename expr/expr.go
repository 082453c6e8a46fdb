// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package expr compiles and evaluates the small arithmetic expressions that
back formula-driven HH gates. An expression is compiled once against a fixed
set of named scalars -- the input variable(s) plus a handful of helper
variables that expressions may use for intermediate computation -- and then
evaluated repeatedly without reparsing.

Expressions are compiled with github.com/antonmedv/expr, the same family of
tooling the rest of this codebase's ecosystem reaches for when it needs a
small, sandboxed expression language (e.g. scripted parameter sweeps). Each
gate curve (alpha, beta, tau, inf) is its own compiled Program bound to a
shared Env, so that, as in the original formulation, a beta expression can
read back the alpha value a preceding alpha expression just computed.
*/
package expr

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/antonmedv/expr"
	"github.com/antonmedv/expr/vm"
)

// Variable names every gate expression may reference. 2-D gates add VarC;
// 1-D gates never bind it.
const (
	VarV     = "v"
	VarC     = "c"
	VarAlpha = "alpha"
	VarBeta  = "beta"
	VarTau   = "tau"
	VarInf   = "inf"
)

// CompileError reports a failed compilation with enough position
// information for a caller to locate the mistake. Compilation never
// silently accepts a malformed expression.
type CompileError struct {
	Expr string
	Msg  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("hhgate/expr: cannot compile %q: %s", e.Expr, e.Msg)
}

// Env is the scratch environment a compiled expression evaluates against.
// Each gate owns its own Env -- Envs are never shared across gates (see
// spec S5, "Shared Resources"); only the alpha/beta or tau/inf pair within
// a single gate share one, so that e.g. betaExpr can read the alpha value
// alphaExpr just produced.
type Env map[string]interface{}

// NewEnv returns a freshly seeded Env with the fixed symbol table and
// built-in functions bound. twoD controls whether VarC is present.
func NewEnv(twoD bool) Env {
	e := Env{
		VarV:     0.0,
		VarAlpha: 0.0,
		VarBeta:  0.0,
		VarTau:   0.0,
		VarInf:   0.0,
		"pi":     math.Pi,
		"e":      math.E,
		"ln":     func(x float64) float64 { return math.Log(x) },
		"fmod":   func(a, b float64) float64 { return math.Mod(a, b) },
		"rand":   func() float64 { return rand.Float64() },
		"srand":  func(seed int64) float64 { return rand.New(rand.NewSource(seed)).Float64() },
		"rand2":  func(lo, hi float64) float64 { return lo + (hi-lo)*rand.Float64() },
	}
	if twoD {
		e[VarC] = 0.0
	}
	return e
}

// Program is a compiled gate expression. It is a pure function of the Env
// it is bound to -- no global state is captured.
type Program struct {
	src  string
	prog *vm.Program
	env  Env
}

// Compile parses and compiles src against env, returning a Program that can
// be evaluated repeatedly without reparsing. Compilation failure returns a
// *CompileError carrying a diagnostic; the caller's previously-compiled
// Program (if any) is left untouched by convention -- Compile never mutates
// anything but its return value.
func Compile(src string, env Env) (*Program, error) {
	if strings.TrimSpace(src) == "" {
		return nil, &CompileError{Expr: src, Msg: "empty expression"}
	}
	prog, err := expr.Compile(src, expr.Env(env), expr.AsFloat64())
	if err != nil {
		return nil, &CompileError{Expr: src, Msg: err.Error()}
	}
	return &Program{src: src, prog: prog, env: env}, nil
}

// Source returns the original expression text.
func (p *Program) Source() string { return p.src }

// Eval runs the compiled program against its bound Env and returns the
// resulting scalar.
func (p *Program) Eval() (float64, error) {
	out, err := expr.Run(p.prog, p.env)
	if err != nil {
		return 0, fmt.Errorf("hhgate/expr: eval %q: %w", p.src, err)
	}
	v, ok := out.(float64)
	if !ok {
		return 0, fmt.Errorf("hhgate/expr: eval %q: expected float64 result, got %T", p.src, out)
	}
	return v, nil
}
