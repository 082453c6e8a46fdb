// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gate

// Form records how a gate's rate parameters are supplied.
type Form int

const (
	// FormTable means tableA/tableB were assigned directly, or were
	// produced by one of the canonical parametric setup calls.
	FormTable Form = iota
	// FormAlphaBeta means alphaExpr/betaExpr supply the forward and
	// backward rates.
	FormAlphaBeta
	// FormTauInf means tauExpr/infExpr supply the time constant and
	// steady-state open fraction.
	FormTauInf
)

func (f Form) String() string {
	switch f {
	case FormTable:
		return "table"
	case FormAlphaBeta:
		return "alpha-beta"
	case FormTauInf:
		return "tau-inf"
	default:
		return "unknown"
	}
}
