// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package channel

// integrate advances a gate's open fraction g by one tick of size dt,
// given the current rate pair (A, B), using the exponential-Euler /
// Crank-Nicolson update standard in MOOSE-family HH simulators:
//
//	g_new = (g*(2/dt - B) + 2*A) / (2/dt + B)
//
// This form stays stable across the wide range of B encountered in
// realistic channels, unlike a naive forward-Euler step.
func integrate(g, dt, A, B float64) float64 {
	twoOverDt := 2 / dt
	return (g*(twoOverDt-B) + 2*A) / (twoOverDt + B)
}

// takePower raises x to a non-negative integer power, by repeated
// multiplication for the common small powers and a generic loop above
// that, matching spec S4.4's guidance for the hot per-step path.
func takePower(x float64, power int) float64 {
	switch power {
	case 0:
		return 1
	case 1:
		return x
	case 2:
		return x * x
	case 3:
		return x * x * x
	case 4:
		xx := x * x
		return xx * xx
	default:
		result := 1.0
		for i := 0; i < power; i++ {
			result *= x
		}
		return result
	}
}
