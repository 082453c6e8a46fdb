// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gate

import (
	"math"
	"testing"
)

const difTol = 1e-9

func TestCurveEvalBasic(t *testing.T) {
	c := Curve{P0: 0.01, P1: -0.01, P2: -1, P3: -10, P4: -10}
	got := c.eval(-10, 1)
	want := (0.01 + -0.01*-10) / (-1 + math.Exp((-10+-10)/-10))
	if math.Abs(got-want) > difTol {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCurveEvalDegenerateP4(t *testing.T) {
	c := Curve{P0: 1, P1: 1, P2: 1, P3: 1, P4: 0}
	got := c.eval(5, 1)
	if got != 0 {
		t.Errorf("expected 0 for near-zero P4, got %v", got)
	}
}

func TestCurveEvalHealsSingularity(t *testing.T) {
	// P2 + exp((x+P3)/P4) == 0 at x == -P3, since exp(0) == 1 and P2 == -1.
	c := Curve{P0: 1, P1: 0, P2: -1, P3: 0, P4: 1}
	got := c.eval(0, 1)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("expected a healed finite value, got %v", got)
	}
}

func TestFixSingularitiesInteriorRun(t *testing.T) {
	tab := []float64{1, 2, math.NaN(), math.Inf(1), 5, 6}
	fixSingularities(tab)
	for i, v := range tab {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("tab[%d] still bad: %v", i, v)
		}
	}
	if math.Abs(tab[2]-3) > difTol || math.Abs(tab[3]-4) > difTol {
		t.Errorf("expected linear fill 3,4 got %v,%v", tab[2], tab[3])
	}
}

func TestFixSingularitiesTrailingRun(t *testing.T) {
	tab := []float64{1, 2, 3, math.NaN(), math.NaN()}
	fixSingularities(tab)
	if tab[3] != 4 || tab[4] != 5 {
		t.Errorf("expected trailing extrapolation 4,5 got %v,%v", tab[3], tab[4])
	}
}

func TestFixSingularitiesLeadingRunLeftAlone(t *testing.T) {
	tab := []float64{math.NaN(), math.NaN(), 3, 4}
	fixSingularities(tab)
	if !math.IsNaN(tab[0]) || !math.IsNaN(tab[1]) {
		t.Errorf("leading run with no left neighbour should be left alone, got %v,%v", tab[0], tab[1])
	}
}

func TestFillParametricAlphaBeta(t *testing.T) {
	alphaC := Curve{P0: 1, P1: 0, P2: 0, P3: 0, P4: 1}
	betaC := Curve{P0: 2, P1: 0, P2: 0, P3: 0, P4: 1}
	A, B := fillParametric(alphaC, betaC, 2, 0, 2, false)
	if len(A) != 3 || len(B) != 3 {
		t.Fatalf("expected 3 samples, got %d/%d", len(A), len(B))
	}
	for i := range A {
		wantB := betaC.eval(float64(i), 1) + A[i]
		if math.Abs(B[i]-wantB) > difTol {
			t.Errorf("B[%d]=%v, want %v", i, B[i], wantB)
		}
	}
}

func TestFillParametricTauInf(t *testing.T) {
	tauC := Curve{P0: 2, P1: 0, P2: 1, P3: 0, P4: 100}
	infC := Curve{P0: 1, P1: 0, P2: 1, P3: 0, P4: 100}
	A, B := fillParametric(tauC, infC, 1, 0, 1, true)
	for i := range A {
		tau := tauC.eval(float64(i), 1)
		inf := infC.eval(float64(i), 1)
		if math.Abs(B[i]-1/tau) > difTol {
			t.Errorf("B[%d] = %v, want 1/tau = %v", i, B[i], 1/tau)
		}
		if math.Abs(A[i]-inf/tau) > difTol {
			t.Errorf("A[%d] = %v, want inf/tau = %v", i, A[i], inf/tau)
		}
	}
}
