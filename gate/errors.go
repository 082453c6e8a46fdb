// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gate

import "errors"

// Sentinel errors for the gate's synchronous failure modes (spec S7).
// Singularity healing is deliberately not one of these -- it is healed
// in place and never surfaced.
var (
	// ErrNotOriginal is returned when a mutating call arrives tagged with
	// a channel identity other than the one that originally owns the gate.
	ErrNotOriginal = errors.New("hhgate/gate: mutation rejected: caller is not the owning channel")

	// ErrShapeMismatch is returned when tableA and tableB disagree in length.
	ErrShapeMismatch = errors.New("hhgate/gate: tableA and tableB must be the same length")

	// ErrOutOfConfigRange covers divs < 1 at query time, min >= max, and
	// negative powers.
	ErrOutOfConfigRange = errors.New("hhgate/gate: out of configuration range")

	// ErrGateUninitialised is returned when a formula-backed gate is
	// queried before its expressions have been compiled and filled.
	ErrGateUninitialised = errors.New("hhgate/gate: gate has no tables")
)
