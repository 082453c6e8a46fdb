// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gate

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	hhexpr "github.com/emer/hhgate/expr"
)

// Gate2D is an HH gating particle whose rates depend on two scalar
// inputs, typically membrane voltage and a calcium-pool concentration.
// Unlike Gate1D it keeps no table: every lookup evaluates the compiled
// expressions directly, which is slower but numerically exact across the
// wide dynamic range a concentration input can take.
type Gate2D struct {
	ownerID uuid.UUID

	form Form

	alphaSrc, betaSrc   string
	alphaProg, betaProg *hhexpr.Program
	env                 hhexpr.Env
}

// NewGate2D returns a new, original Gate2D owned by ownerID.
func NewGate2D(ownerID uuid.UUID) *Gate2D {
	return &Gate2D{
		ownerID: ownerID,
		env:     hhexpr.NewEnv(true),
	}
}

// IsOriginal reports whether caller is the gate's owning channel.
func (g *Gate2D) IsOriginal(caller uuid.UUID) bool { return caller == g.ownerID }

func (g *Gate2D) checkOriginal(caller uuid.UUID, field string) error {
	if g.IsOriginal(caller) {
		return nil
	}
	log.Printf("hhgate/gate: warning: rejected %s edit from a non-owning channel", field)
	return fmt.Errorf("%s: %w", field, ErrNotOriginal)
}

// Form reports how the gate's rates are currently supplied.
func (g *Gate2D) Form() Form { return g.form }

// SetAlphaExpr compiles expr as the forward (alpha(v, c)) rate.
func (g *Gate2D) SetAlphaExpr(caller uuid.UUID, src string) error {
	if err := g.checkOriginal(caller, "alphaExpr"); err != nil {
		return err
	}
	prog, err := hhexpr.Compile(src, g.env)
	if err != nil {
		return err
	}
	g.alphaSrc, g.alphaProg = src, prog
	g.form = FormAlphaBeta
	return nil
}

// SetBetaExpr compiles expr as the backward (beta(v, c)) rate.
func (g *Gate2D) SetBetaExpr(caller uuid.UUID, src string) error {
	if err := g.checkOriginal(caller, "betaExpr"); err != nil {
		return err
	}
	prog, err := hhexpr.Compile(src, g.env)
	if err != nil {
		return err
	}
	g.betaSrc, g.betaProg = src, prog
	g.form = FormAlphaBeta
	return nil
}

// SetTauExpr compiles expr as the tau(v, c) time-constant curve.
func (g *Gate2D) SetTauExpr(caller uuid.UUID, src string) error {
	if err := g.checkOriginal(caller, "tauExpr"); err != nil {
		return err
	}
	prog, err := hhexpr.Compile(src, g.env)
	if err != nil {
		return err
	}
	g.alphaSrc, g.alphaProg = src, prog
	g.form = FormTauInf
	return nil
}

// SetInfExpr compiles expr as the inf(v, c) steady-state curve.
func (g *Gate2D) SetInfExpr(caller uuid.UUID, src string) error {
	if err := g.checkOriginal(caller, "infExpr"); err != nil {
		return err
	}
	prog, err := hhexpr.Compile(src, g.env)
	if err != nil {
		return err
	}
	g.betaSrc, g.betaProg = src, prog
	g.form = FormTauInf
	return nil
}

func (g *Gate2D) AlphaExpr() string {
	if g.form == FormAlphaBeta {
		return g.alphaSrc
	}
	return ""
}
func (g *Gate2D) BetaExpr() string {
	if g.form == FormAlphaBeta {
		return g.betaSrc
	}
	return ""
}
func (g *Gate2D) TauExpr() string {
	if g.form == FormTauInf {
		return g.alphaSrc
	}
	return ""
}
func (g *Gate2D) InfExpr() string {
	if g.form == FormTauInf {
		return g.betaSrc
	}
	return ""
}

// Lookup evaluates the gate's rate pair at (v, c), per spec S4.3:
//
//	alpha/beta form: (A, B) = (alpha(v,c), alpha(v,c) + beta(v,c))
//	tau/inf form:     (A, B) = (inf(v,c)/tau(v,c), 1/tau(v,c))
func (g *Gate2D) Lookup(v, c float64) (A, B float64, err error) {
	if g.alphaProg == nil || g.betaProg == nil {
		return 0, 0, fmt.Errorf("lookup: %w", ErrGateUninitialised)
	}
	g.env[hhexpr.VarV] = v
	g.env[hhexpr.VarC] = c
	a, err := g.alphaProg.Eval()
	if err != nil {
		return 0, 0, err
	}
	if g.form == FormAlphaBeta {
		g.env[hhexpr.VarAlpha] = a
	} else {
		g.env[hhexpr.VarTau] = a
	}
	b, err := g.betaProg.Eval()
	if err != nil {
		return 0, 0, err
	}
	if g.form == FormAlphaBeta {
		g.env[hhexpr.VarBeta] = b
		return a, a + b, nil
	}
	// FormTauInf: alphaProg is tau, betaProg is inf.
	g.env[hhexpr.VarInf] = b
	return b / a, 1 / a, nil
}
