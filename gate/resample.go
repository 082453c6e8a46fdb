// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gate

// lookupInterp performs a clamped, linearly-interpolated lookup into tab,
// regardless of the gate's own useInterpolation setting -- resampling
// always interpolates, matching the original tabFill utility's behaviour
// of forcing interpolation mode while stretching a table onto a new grid.
func lookupInterp(tab []float64, min, invDx float64, x float64) float64 {
	n := len(tab)
	max := min + float64(n-1)/invDx
	if x <= min {
		return tab[0]
	}
	if x >= max {
		return tab[n-1]
	}
	idx := int((x - min) * invDx)
	if idx >= n-1 {
		return tab[n-1]
	}
	frac := (x - min - float64(idx)/invDx) * invDx
	return tab[idx]*(1-frac) + tab[idx+1]*frac
}

// resampleTable re-samples tab, currently spanning [min, min+(len(tab)-1)/invDx],
// onto a new grid of newDivs+1 points spanning [newMin, newMax], by linear
// interpolation (spec S4.2, "Resizing").
func resampleTable(tab []float64, min, invDx float64, newDivs uint, newMin, newMax float64) []float64 {
	out := make([]float64, newDivs+1)
	newDx := (newMax - newMin) / float64(newDivs)
	for i := 0; i <= int(newDivs); i++ {
		out[i] = lookupInterp(tab, min, invDx, newMin+float64(i)*newDx)
	}
	return out
}
