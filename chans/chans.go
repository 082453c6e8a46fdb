// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chans provides standard reversal-potential and conductance
presets for the classic Hodgkin-Huxley squid giant axon channels --
sodium, potassium, and leak -- for seeding a harness.Compartment without
hand-copying the textbook constants into every test and example.
*/
package chans

// Squid holds the reversal potentials and maximum conductances Hodgkin
// and Huxley fit to the squid giant axon, in the mV/mS-per-cm^2
// convention used throughout this package's tests.
type Squid struct {
	ENa float64 `desc:"sodium reversal potential"`
	EK  float64 `desc:"potassium reversal potential"`
	EL  float64 `desc:"leak reversal potential"`

	GNa float64 `desc:"maximum sodium conductance"`
	GK  float64 `desc:"maximum potassium conductance"`
	GL  float64 `desc:"leak conductance"`
}

// DefaultSquid returns the original 1952 Hodgkin-Huxley squid axon
// parameters, referenced to a resting potential of 0 mV.
func DefaultSquid() Squid {
	return Squid{
		ENa: 115,
		EK:  -12,
		EL:  10.6,
		GNa: 120,
		GK:  36,
		GL:  0.3,
	}
}

// SetAll sets all six values at once.
func (s *Squid) SetAll(eNa, eK, eL, gNa, gK, gL float64) {
	s.ENa, s.EK, s.EL = eNa, eK, eL
	s.GNa, s.GK, s.GL = gNa, gK, gL
}
