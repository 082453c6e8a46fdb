// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gate

import "math"

// Singularity is the threshold below which a denominator, or a tau
// value, is treated as degenerate and healed rather than used directly.
const Singularity = 1.0e-6

// Curve holds the five coefficients of the canonical parametric form
//
//	y(x) = (P0 + P1*x) / (P2 + exp((x+P3)/P4))
//
// that the original HH equations, and most channel kinetics derived from
// them, can be cast into.
type Curve struct {
	P0, P1, P2, P3, P4 float64
}

// eval evaluates the curve at x. dx is the grid spacing used only to
// flank a removable singularity with two neighboring samples (spec S4.2).
func (c Curve) eval(x, dx float64) float64 {
	if math.Abs(c.P4) < Singularity {
		return 0
	}
	denom := c.P2 + math.Exp((x+c.P3)/c.P4)
	if math.Abs(denom) >= Singularity {
		return (c.P0 + c.P1*x) / denom
	}
	d1 := c.P2 + math.Exp((x+dx/10+c.P3)/c.P4)
	v1 := (c.P0 + c.P1*(x+dx/10)) / d1
	d2 := c.P2 + math.Exp((x-dx/10+c.P3)/c.P4)
	v2 := (c.P0 + c.P1*(x-dx/10)) / d2
	return (v1 + v2) / 2
}

// fixSingularities heals NaN, Inf, and near-zero runs in tab by linear
// extrapolation from the nearest two valid neighbours, exactly as the
// post-formula-fill sweep in the original implementation does. A run with
// no valid left neighbour, or a trailing run with fewer than two valid
// entries before it, is left unchanged.
func fixSingularities(tab []float64) {
	n := len(tab)
	bad := func(v float64) bool {
		return math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) < Singularity
	}
	for i := 0; i < n; i++ {
		if !bad(tab[i]) {
			continue
		}
		prev := i - 1
		next := i + 1
		for next < n && bad(tab[next]) {
			next++
		}
		var dy float64
		if prev < 0 {
			i = next
			continue
		}
		if next >= n {
			if prev < 1 {
				i = next
				continue
			}
			dy = tab[prev] - tab[prev-1]
		} else {
			dy = (tab[next] - tab[prev]) / float64(next-prev)
		}
		for j := prev + 1; j < next; j++ {
			tab[j] = tab[j-1] + dy
		}
		i = next
	}
}

// fillParametric samples alphaC/betaC across [min, max] at xdivs+1 points
// and applies the HH (A, B) convention transform. When doTau is true, the
// sampled curves are treated as (tau, inf) and converted to
// (inf/tau, 1/tau), carrying the previous entry forward wherever tau is
// within Singularity of zero. Otherwise the curves are treated as
// (alpha, beta) and B is rewritten to alpha+beta.
func fillParametric(alphaC, betaC Curve, xdivs uint, min, max float64, doTau bool) (A, B []float64) {
	dx := (max - min) / float64(xdivs)
	A = make([]float64, xdivs+1)
	B = make([]float64, xdivs+1)
	x := min
	for i := 0; i <= int(xdivs); i++ {
		A[i] = alphaC.eval(x, dx)
		B[i] = betaC.eval(x, dx)
		x += dx
	}
	if doTau {
		var prevA, prevB float64
		for i := range A {
			tau, inf := A[i], B[i]
			if math.Abs(tau) < Singularity {
				A[i], B[i] = prevA, prevB
			} else {
				A[i] = inf / tau
				B[i] = 1 / tau
			}
			prevA, prevB = A[i], B[i]
		}
	} else {
		for i := range A {
			B[i] += A[i]
		}
	}
	return A, B
}
