// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gate

import (
	"math"
	"testing"
)

func TestLookupInterpClamps(t *testing.T) {
	tab := []float64{1, 2, 3, 4}
	invDx := 3.0 / 3.0 // 3 divs over span 3
	if got := lookupInterp(tab, 0, invDx, -5); got != 1 {
		t.Errorf("below min: got %v, want 1", got)
	}
	if got := lookupInterp(tab, 0, invDx, 50); got != 4 {
		t.Errorf("above max: got %v, want 4", got)
	}
}

func TestLookupInterpMidpoint(t *testing.T) {
	tab := []float64{0, 10}
	got := lookupInterp(tab, 0, 1, 0.5)
	if math.Abs(got-5) > 1e-9 {
		t.Errorf("got %v, want 5", got)
	}
}

func TestResampleTablePreservesEndpoints(t *testing.T) {
	tab := []float64{0, 1, 4, 9, 16}
	invDx := 4.0 / 4.0
	out := resampleTable(tab, 0, invDx, 8, 0, 4)
	if len(out) != 9 {
		t.Fatalf("expected 9 samples, got %d", len(out))
	}
	if math.Abs(out[0]-0) > 1e-9 || math.Abs(out[8]-16) > 1e-9 {
		t.Errorf("endpoints not preserved: %v .. %v", out[0], out[8])
	}
}
