// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package channel

import "errors"

var (
	// ErrMissingGate is returned when a slot's power is > 0 but no gate
	// is attached -- fatal for the step it is discovered in (spec S4.4).
	ErrMissingGate = errors.New("hhgate/channel: gate missing for a slot with power > 0")

	// ErrBTooSmall is returned by Reinit when a gate's B value is below
	// the 1e-15 safety threshold; the gate is left un-initialised.
	ErrBTooSmall = errors.New("hhgate/channel: B is too small to safely reinit")

	// ErrNot2D is returned when index routing (SetIndex) is attempted on a
	// 1-D channel.
	ErrNot2D = errors.New("hhgate/channel: channel is not 2-D")
)
