// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package index

import "testing"

func TestLookupKnown(t *testing.T) {
	cases := []struct {
		idx        string
		dim0, dim1 Dim
	}{
		{VoltIndex, Volt, None},
		{C1Index, C1, None},
		{C2Index, C2, None},
		{VoltC1Index, Volt, C1},
		{VoltC2Index, Volt, C2},
		{C1C2Index, C1, C2},
	}
	for _, c := range cases {
		d0, d1, err := Lookup(c.idx)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", c.idx, err)
		}
		if d0 != c.dim0 || d1 != c.dim1 {
			t.Errorf("Lookup(%q) = (%v, %v), want (%v, %v)", c.idx, d0, d1, c.dim0, c.dim1)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, _, err := Lookup("NOT_A_REAL_INDEX")
	if err == nil {
		t.Fatal("expected error for unrecognised index string")
	}
}

func TestDimString(t *testing.T) {
	if Volt.String() != "Vm" {
		t.Errorf("got %q, want %q", Volt.String(), "Vm")
	}
	if None.String() != "none" {
		t.Errorf("got %q, want %q", None.String(), "none")
	}
}
