// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package index implements the 2-D channel Input-Index Policy (spec S4.5):
a fixed table mapping each of six recognised index strings onto the pair
of external inputs (voltage, conc1, conc2) that feed a gate's v and c
positions.
*/
package index

import "fmt"

// Dim names an external input a gate position can be bound to.
type Dim int

const (
	// None means this position of the gate is unused (1-D binding).
	None Dim = iota
	// Volt is the compartment's membrane voltage.
	Volt
	// C1 is the first calcium-pool concentration.
	C1
	// C2 is the second calcium-pool concentration.
	C2
)

func (d Dim) String() string {
	switch d {
	case Volt:
		return "Vm"
	case C1:
		return "conc1"
	case C2:
		return "conc2"
	default:
		return "none"
	}
}

// The six recognised index strings.
const (
	VoltIndex    = "VOLT_INDEX"
	C1Index      = "C1_INDEX"
	C2Index      = "C2_INDEX"
	VoltC1Index  = "VOLT_C1_INDEX"
	VoltC2Index  = "VOLT_C2_INDEX"
	C1C2Index    = "C1_C2_INDEX"
)

var table = map[string][2]Dim{
	VoltIndex:   {Volt, None},
	C1Index:     {C1, None},
	C2Index:     {C2, None},
	VoltC1Index: {Volt, C1},
	VoltC2Index: {Volt, C2},
	C1C2Index:   {C1, C2},
}

// Lookup resolves an index string into the (dim0, dim1) pair of inputs
// that feed a gate's v and c positions. Any unrecognised string is
// rejected.
func Lookup(s string) (dim0, dim1 Dim, err error) {
	pair, ok := table[s]
	if !ok {
		return None, None, fmt.Errorf("hhgate/index: unrecognised index %q", s)
	}
	return pair[0], pair[1], nil
}
