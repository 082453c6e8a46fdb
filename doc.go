// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hhgate is the overall repository for the Hodgkin-Huxley gating core
of a multi-scale neuronal simulator. This top level has no functional code --
everything is organized into the following sub-packages:

* expr: compiles and evaluates the small arithmetic expressions that back
formula-driven gates (alpha/beta or tau/inf curves as functions of voltage
and, for 2-D gates, concentration).

* gate: Gate1D and Gate2D, the table-backed and formula-backed HH gating
particles, their canonical parametric setup, singularity healing, and table
resizing.

* index: the fixed policy mapping a 2-D channel's Xindex/Yindex/Zindex
strings onto which external input (voltage, conc1, conc2) feeds which
position of a gate's rate function.

* channel: Channel, which composes up to three gates (X, Y, Z) with integer
powers into a conductance, integrates gate state every tick, and exposes the
steady-state reinit rule.

* harness: deterministic test and example collaborators -- in particular a
minimal Compartment that plays the role of the compartment solver well
enough to drive end-to-end scenarios, without implementing a real cable
equation solver.

* chans: reversal-potential and conductance presets for the classic
Hodgkin-Huxley squid giant axon channels, for seeding a harness.Compartment
without hand-copying textbook constants into every test.
*/
package hhgate
