// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package gate provides the Gate1D and Gate2D Hodgkin-Huxley gating
particles: the table-backed and formula-backed representations of a
voltage- (and, for Gate2D, concentration-) dependent rate pair (A, B),
the canonical parametric setup used by classic HH-style channel models,
and the mutation guard that lets a gate be shared, read-only, by copies of
the channel that owns it.
*/
package gate

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	hhexpr "github.com/emer/hhgate/expr"
)

// Gate1D is a single HH gating particle whose rates depend on one scalar
// input, typically membrane voltage. It is backed either by a direct
// lookup table or by a pair of compiled expressions (alpha/beta, or
// tau/inf) that are re-evaluated to refill the table whenever the
// expressions or the input grid change.
type Gate1D struct {
	ownerID uuid.UUID

	min, max float64
	divs     uint
	invDx    float64

	a, b []float64

	useInterpolation bool
	form             Form
	dirty            bool

	alphaSrc, betaSrc   string
	alphaProg, betaProg *hhexpr.Program
	env                 hhexpr.Env

	alphaCurve, betaCurve Curve
	haveParms             bool
}

// NewGate1D returns a new, original Gate1D owned by ownerID (normally the
// uuid of the Channel that just allocated it).
func NewGate1D(ownerID uuid.UUID) *Gate1D {
	return &Gate1D{
		ownerID: ownerID,
		min:     0,
		max:     1,
		invDx:   1,
		a:       []float64{0},
		b:       []float64{0},
		env:     hhexpr.NewEnv(false),
	}
}

// IsOriginal reports whether caller is the gate's owning channel.
func (g *Gate1D) IsOriginal(caller uuid.UUID) bool { return caller == g.ownerID }

func (g *Gate1D) checkOriginal(caller uuid.UUID, field string) error {
	if g.IsOriginal(caller) {
		return nil
	}
	log.Printf("hhgate/gate: warning: rejected %s edit from a non-owning channel", field)
	return fmt.Errorf("%s: %w", field, ErrNotOriginal)
}

// Form reports how the gate's rates are currently supplied.
func (g *Gate1D) Form() Form { return g.form }

// Min, Max, Divs report the current input range and grid resolution.
func (g *Gate1D) Min() float64 { return g.min }
func (g *Gate1D) Max() float64 { return g.max }
func (g *Gate1D) Divs() uint   { return g.divs }

// SetMin changes the lower end of the input range. On a direct table this
// re-samples the existing table onto the new grid by linear interpolation;
// on a formula gate it re-runs the fill.
func (g *Gate1D) SetMin(caller uuid.UUID, v float64) error {
	if err := g.checkOriginal(caller, "min"); err != nil {
		return err
	}
	if v >= g.max {
		return fmt.Errorf("min: %w", ErrOutOfConfigRange)
	}
	return g.setRange(v, g.max)
}

// SetMax changes the upper end of the input range; see SetMin.
func (g *Gate1D) SetMax(caller uuid.UUID, v float64) error {
	if err := g.checkOriginal(caller, "max"); err != nil {
		return err
	}
	if g.min >= v {
		return fmt.Errorf("max: %w", ErrOutOfConfigRange)
	}
	return g.setRange(g.min, v)
}

// SetDivs changes the grid resolution; see SetMin.
func (g *Gate1D) SetDivs(caller uuid.UUID, divs uint) error {
	if err := g.checkOriginal(caller, "divs"); err != nil {
		return err
	}
	if divs < 1 {
		return fmt.Errorf("divs: %w", ErrOutOfConfigRange)
	}
	oldDivs := g.divs
	g.divs = divs
	if g.form == FormTable {
		if oldDivs >= 1 && len(g.a) == int(oldDivs)+1 {
			g.a = resampleTable(g.a, g.min, g.invDx, divs, g.min, g.max)
			g.b = resampleTable(g.b, g.min, g.invDx, divs, g.min, g.max)
		} else {
			g.a = make([]float64, divs+1)
			g.b = make([]float64, divs+1)
		}
		g.invDx = float64(divs) / (g.max - g.min)
		return nil
	}
	g.invDx = float64(divs) / (g.max - g.min)
	g.dirty = true
	return g.ensureFilled()
}

func (g *Gate1D) setRange(min, max float64) error {
	oldMin, _, oldInvDx := g.min, g.max, g.invDx
	g.min, g.max = min, max
	if g.divs >= 1 {
		g.invDx = float64(g.divs) / (max - min)
	}
	if g.form == FormTable {
		if g.divs >= 1 && len(g.a) == int(g.divs)+1 {
			g.a = resampleTable(g.a, oldMin, oldInvDx, g.divs, min, max)
			g.b = resampleTable(g.b, oldMin, oldInvDx, g.divs, min, max)
		}
		return nil
	}
	g.dirty = true
	return g.ensureFilled()
}

// UseInterpolation reports whether lookups interpolate between grid
// points, as opposed to indexing directly.
func (g *Gate1D) UseInterpolation() bool { return g.useInterpolation }

// SetUseInterpolation toggles direct indexing vs. linear interpolation.
func (g *Gate1D) SetUseInterpolation(caller uuid.UUID, v bool) error {
	if err := g.checkOriginal(caller, "useInterpolation"); err != nil {
		return err
	}
	g.useInterpolation = v
	return nil
}

// SetTableA assigns the A table directly, switching the gate to table form.
func (g *Gate1D) SetTableA(caller uuid.UUID, v []float64) error {
	if err := g.checkOriginal(caller, "tableA"); err != nil {
		return err
	}
	if len(v) < 2 {
		return fmt.Errorf("tableA: %w", ErrOutOfConfigRange)
	}
	g.a = append([]float64(nil), v...)
	g.divs = uint(len(g.a) - 1)
	g.invDx = float64(g.divs) / (g.max - g.min)
	g.form = FormTable
	g.dirty = false
	return nil
}

// SetTableB assigns the B table directly. Its length must match tableA.
func (g *Gate1D) SetTableB(caller uuid.UUID, v []float64) error {
	if err := g.checkOriginal(caller, "tableB"); err != nil {
		return err
	}
	if len(v) != len(g.a) {
		return fmt.Errorf("tableB: %w", ErrShapeMismatch)
	}
	g.b = append([]float64(nil), v...)
	g.form = FormTable
	g.dirty = false
	return nil
}

// TableA, TableB return copies of the current tables.
func (g *Gate1D) TableA() []float64 { return append([]float64(nil), g.a...) }
func (g *Gate1D) TableB() []float64 { return append([]float64(nil), g.b...) }

// SetAlphaExpr compiles expr as the forward (alpha) rate, switching the
// gate to alpha/beta form. The tables are refilled immediately if a beta
// expression is already present; otherwise the expression is still stored
// and ErrGateUninitialised is returned.
func (g *Gate1D) SetAlphaExpr(caller uuid.UUID, src string) error {
	if err := g.checkOriginal(caller, "alphaExpr"); err != nil {
		return err
	}
	prog, err := hhexpr.Compile(src, g.env)
	if err != nil {
		return err
	}
	g.alphaSrc, g.alphaProg = src, prog
	g.form = FormAlphaBeta
	g.dirty = true
	return g.ensureFilled()
}

// SetBetaExpr compiles expr as the backward (beta) rate; see SetAlphaExpr.
func (g *Gate1D) SetBetaExpr(caller uuid.UUID, src string) error {
	if err := g.checkOriginal(caller, "betaExpr"); err != nil {
		return err
	}
	prog, err := hhexpr.Compile(src, g.env)
	if err != nil {
		return err
	}
	g.betaSrc, g.betaProg = src, prog
	g.form = FormAlphaBeta
	g.dirty = true
	return g.ensureFilled()
}

// SetTauExpr compiles expr as the time constant curve, switching the gate
// to tau/inf form; see SetAlphaExpr.
func (g *Gate1D) SetTauExpr(caller uuid.UUID, src string) error {
	if err := g.checkOriginal(caller, "tauExpr"); err != nil {
		return err
	}
	prog, err := hhexpr.Compile(src, g.env)
	if err != nil {
		return err
	}
	g.alphaSrc, g.alphaProg = src, prog
	g.form = FormTauInf
	g.dirty = true
	return g.ensureFilled()
}

// SetInfExpr compiles expr as the steady-state curve; see SetAlphaExpr.
func (g *Gate1D) SetInfExpr(caller uuid.UUID, src string) error {
	if err := g.checkOriginal(caller, "infExpr"); err != nil {
		return err
	}
	prog, err := hhexpr.Compile(src, g.env)
	if err != nil {
		return err
	}
	g.betaSrc, g.betaProg = src, prog
	g.form = FormTauInf
	g.dirty = true
	return g.ensureFilled()
}

// AlphaExpr, BetaExpr, TauExpr, InfExpr return the currently active
// expression text for the gate's form, or "" if the gate is not in that
// form.
func (g *Gate1D) AlphaExpr() string {
	if g.form == FormAlphaBeta {
		return g.alphaSrc
	}
	return ""
}
func (g *Gate1D) BetaExpr() string {
	if g.form == FormAlphaBeta {
		return g.betaSrc
	}
	return ""
}
func (g *Gate1D) TauExpr() string {
	if g.form == FormTauInf {
		return g.alphaSrc
	}
	return ""
}
func (g *Gate1D) InfExpr() string {
	if g.form == FormTauInf {
		return g.betaSrc
	}
	return ""
}

// Fill forces an immediate re-evaluation of the gate's expressions into
// its tables. It is a no-op for table-form gates. Exposed mainly for
// debugging and tests, matching the original's tabFillExpr dest.
func (g *Gate1D) Fill() error {
	g.dirty = true
	return g.ensureFilled()
}

func (g *Gate1D) ensureFilled() error {
	if g.form == FormTable || !g.dirty {
		return nil
	}
	if g.alphaProg == nil || g.betaProg == nil {
		return fmt.Errorf("fill: %w", ErrGateUninitialised)
	}
	if g.divs < 1 {
		return fmt.Errorf("fill: %w", ErrOutOfConfigRange)
	}
	dv := (g.max - g.min) / float64(g.divs)
	A := make([]float64, g.divs+1)
	B := make([]float64, g.divs+1)
	for i := 0; i <= int(g.divs); i++ {
		v := g.min + float64(i)*dv
		g.env[hhexpr.VarV] = v
		a, err := g.alphaProg.Eval()
		if err != nil {
			return err
		}
		if g.form == FormAlphaBeta {
			g.env[hhexpr.VarAlpha] = a
		} else {
			g.env[hhexpr.VarTau] = a
		}
		b, err := g.betaProg.Eval()
		if err != nil {
			return err
		}
		if g.form == FormAlphaBeta {
			g.env[hhexpr.VarBeta] = b
			A[i] = a
			B[i] = a + b
		} else { // FormTauInf: alphaProg is tau, betaProg is inf
			g.env[hhexpr.VarInf] = b
			A[i] = b / a
			B[i] = 1 / a
		}
	}
	fixSingularities(A)
	fixSingularities(B)
	g.a, g.b = A, B
	g.invDx = float64(g.divs) / (g.max - g.min)
	g.dirty = false
	return nil
}

// Lookup returns the (A, B) rate pair for input v, per spec S4.2: clamped
// at the endpoints, direct-indexed or linearly interpolated in between.
func (g *Gate1D) Lookup(v float64) (A, B float64, err error) {
	if err := g.ensureFilled(); err != nil {
		return 0, 0, err
	}
	if g.divs < 1 {
		return 0, 0, fmt.Errorf("lookup: %w", ErrOutOfConfigRange)
	}
	if len(g.a) != len(g.b) {
		return 0, 0, fmt.Errorf("lookup: %w", ErrShapeMismatch)
	}
	n := len(g.a)
	switch {
	case v <= g.min:
		return g.a[0], g.b[0], nil
	case v >= g.max:
		return g.a[n-1], g.b[n-1], nil
	default:
		idx := int((v - g.min) * g.invDx)
		if idx >= n-1 {
			idx = n - 2
		}
		if !g.useInterpolation {
			return g.a[idx], g.b[idx], nil
		}
		frac := (v - g.min - float64(idx)/g.invDx) * g.invDx
		A = g.a[idx]*(1-frac) + g.a[idx+1]*frac
		B = g.b[idx]*(1-frac) + g.b[idx+1]*frac
		return A, B, nil
	}
}

// AlphaParms is the 13-scalar canonical form: A0..A4 (alpha coefficients),
// B0..B4 (beta coefficients), divs, min, max.
type AlphaParms [13]float64

// SetupAlpha sets up both curves from the canonical parametric form in one
// call, switching the gate to table form.
func (g *Gate1D) SetupAlpha(caller uuid.UUID, p AlphaParms) error {
	if err := g.checkOriginal(caller, "alphaParms"); err != nil {
		return err
	}
	return g.setupTables(p, false)
}

// SetupTau is identical to SetupAlpha, except the two curves are
// interpreted as (tau, inf) rather than (alpha, beta).
func (g *Gate1D) SetupTau(caller uuid.UUID, p AlphaParms) error {
	if err := g.checkOriginal(caller, "alphaParms"); err != nil {
		return err
	}
	return g.setupTables(p, true)
}

func (g *Gate1D) setupTables(p AlphaParms, doTau bool) error {
	divsF := p[10]
	if divsF < 1 {
		return fmt.Errorf("alphaParms: %w", ErrOutOfConfigRange)
	}
	min, max := p[11], p[12]
	if min >= max {
		return fmt.Errorf("alphaParms: %w", ErrOutOfConfigRange)
	}
	divs := uint(divsF)
	alphaC := Curve{p[0], p[1], p[2], p[3], p[4]}
	betaC := Curve{p[5], p[6], p[7], p[8], p[9]}
	A, B := fillParametric(alphaC, betaC, divs, min, max, doTau)
	g.a, g.b = A, B
	g.min, g.max, g.divs = min, max, divs
	g.invDx = float64(divs) / (max - min)
	g.alphaCurve, g.betaCurve = alphaC, betaC
	g.haveParms = true
	g.form = FormTable
	g.dirty = false
	return nil
}

// AlphaParmsOf returns the ten curve coefficients last passed to
// SetupAlpha/SetupTau, followed by the gate's current divs, min and max,
// and whether any coefficients have been recorded.
func (g *Gate1D) AlphaParmsOf() (AlphaParms, bool) {
	if !g.haveParms {
		return AlphaParms{}, false
	}
	return AlphaParms{
		g.alphaCurve.P0, g.alphaCurve.P1, g.alphaCurve.P2, g.alphaCurve.P3, g.alphaCurve.P4,
		g.betaCurve.P0, g.betaCurve.P1, g.betaCurve.P2, g.betaCurve.P3, g.betaCurve.P4,
		float64(g.divs), g.min, g.max,
	}, true
}

// SetupGate sets up a single curve (alpha/tau if isBeta is false, beta/inf
// if true) one at a time, from the original's nine-parameter form:
// A B C D F xdivs min max isBeta. When isBeta is true and the other table
// is already populated with a different length, it is resampled to match
// before the HH "B = A + B" tweak is applied.
func (g *Gate1D) SetupGate(caller uuid.UUID, a, b, c, d, f float64, xdivs uint, min, max float64, isBeta bool) error {
	if err := g.checkOriginal(caller, "setupGate"); err != nil {
		return err
	}
	if xdivs < 1 {
		return fmt.Errorf("setupGate: %w", ErrOutOfConfigRange)
	}
	if min >= max {
		return fmt.Errorf("setupGate: %w", ErrOutOfConfigRange)
	}
	curve := Curve{a, b, c, d, f}
	dx := (max - min) / float64(xdivs)
	tab := make([]float64, xdivs+1)
	x := min + dx/2
	for i := 0; i <= int(xdivs); i++ {
		tab[i] = curve.eval(x, dx)
		x += dx
	}
	if isBeta {
		if len(g.a) > 0 && len(g.a) != len(tab) {
			g.a = resampleTable(g.a, g.min, g.invDx, xdivs, min, max)
		}
		for i := range tab {
			if i < len(g.a) {
				tab[i] += g.a[i]
			}
		}
		g.b = tab
	} else {
		g.a = tab
	}
	g.min, g.max, g.divs = min, max, xdivs
	g.invDx = float64(xdivs) / (max - min)
	g.form = FormTable
	return nil
}

// TweakAlpha is a dummy kept for backward compatibility with callers
// ported from the original implementation; it never needs to convert
// between conventions, since SetupAlpha/SetAlphaExpr already store tables
// in the (A, alpha+beta) convention.
func (g *Gate1D) TweakAlpha() {}

// TweakTau is the tau/inf equivalent of TweakAlpha; also a dummy.
func (g *Gate1D) TweakTau() {}
