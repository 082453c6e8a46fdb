// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package channel provides Channel, which composes up to three HH gates
(conventionally named X, Y, Z) with integer powers into a conductance,
advances each gate's state every simulated tick, and reports the
resulting conductance and driven current back to whatever plays the role
of the compartment solver.
*/
package channel

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/emer/hhgate/gate"
	"github.com/emer/hhgate/index"
)

// Slot names one of a channel's three gate positions.
type Slot int

const (
	SlotX Slot = iota
	SlotY
	SlotZ
	numSlots
)

func (s Slot) String() string {
	switch s {
	case SlotX:
		return "X"
	case SlotY:
		return "Y"
	case SlotZ:
		return "Z"
	default:
		return "?"
	}
}

// Instant is a bitmask selecting which slots are clamped to their
// steady-state value (A/B) every step rather than integrated.
type Instant uint8

const (
	InstantX Instant = 1 << iota
	InstantY
	InstantZ
)

// Driver tags whether a Channel steps itself or is stepped externally by
// a solver that has taken ownership of it. This replaces the original's
// in-place "zombie" class substitution with an explicit variant (spec S9,
// Design Notes): in the Solver-driven state, Process and Reinit are
// no-ops, and the field surface (Gk, Ik, gate states) is left for the
// solver to manage directly.
type Driver int

const (
	// SelfStepping is the default: the Channel steps its own gates in
	// response to Process/Reinit.
	SelfStepping Driver = iota
	// SolverDriven means an external solver has taken ownership; the
	// Channel's own Process/Reinit become no-ops.
	SolverDriven
)

// State is the lifecycle of a Channel: empty, configured, running.
type State int

const (
	StateEmpty State = iota
	StateConfigured
	StateRunning
)

type slot struct {
	power int
	gate1 *gate.Gate1D
	gate2 *gate.Gate2D
	val   float64
	inited bool

	indexStr   string
	dim0, dim1 index.Dim
}

// reinitEpsilon is the threshold below which Reinit refuses to set a
// gate's steady state (spec S4.4).
const reinitEpsilon = 1e-15

// Channel composes up to three gates into a conductance
// Gk = gBar * product(gate^power) * modulation, and the driven current
// Ik = (Ek - Vm) * Gk.
type Channel struct {
	id   uuid.UUID
	twoD bool

	slots [numSlots]slot

	gBar, ek       float64
	gk, ik         float64
	vm, conc1, conc2 float64
	modulation     float64

	instant Instant
	driver  Driver
	state   State
}

// New1D returns an empty, newly-identified 1-D Channel (gates query only
// Vm).
func New1D() *Channel {
	return &Channel{id: uuid.New(), modulation: 1}
}

// New2D returns an empty, newly-identified 2-D Channel (gates are routed
// via each slot's index string across Vm, conc1, conc2).
func New2D() *Channel {
	return &Channel{id: uuid.New(), twoD: true, modulation: 1}
}

// ID returns the channel's identity; this is the value a copy's gates
// keep rejecting once the copy is made (see Copy).
func (c *Channel) ID() uuid.UUID { return c.id }

// Copy returns a new Channel with its own identity, whose gates are
// shared, read-only, with the original's -- mutating a copy's gate fails
// with gate.ErrNotOriginal, exactly as if the call had arrived through
// any other non-owning channel.
func (c *Channel) Copy() *Channel {
	cp := *c
	cp.id = uuid.New()
	return &cp
}

// setPower allocates a gate for slot when its power transitions from 0,
// and destroys it when the power transitions back to 0.
func (c *Channel) setPower(s Slot, power int) error {
	if power < 0 {
		return fmt.Errorf("power: %w", gate.ErrOutOfConfigRange)
	}
	sl := &c.slots[s]
	switch {
	case power > 0 && sl.power == 0:
		if c.twoD {
			sl.gate2 = gate.NewGate2D(c.id)
		} else {
			sl.gate1 = gate.NewGate1D(c.id)
		}
		sl.inited = false
	case power == 0 && sl.power > 0:
		sl.gate1 = nil
		sl.gate2 = nil
		sl.inited = false
		sl.val = 0
	}
	sl.power = power
	if c.state == StateEmpty {
		c.state = StateConfigured
	}
	return nil
}

// SetXpower, SetYpower, SetZpower set the integer power for the named
// slot, lazily allocating or destroying its gate.
func (c *Channel) SetXpower(power int) error { return c.setPower(SlotX, power) }
func (c *Channel) SetYpower(power int) error { return c.setPower(SlotY, power) }
func (c *Channel) SetZpower(power int) error { return c.setPower(SlotZ, power) }

// Xpower, Ypower, Zpower report the current power for the named slot.
func (c *Channel) Xpower() int { return c.slots[SlotX].power }
func (c *Channel) Ypower() int { return c.slots[SlotY].power }
func (c *Channel) Zpower() int { return c.slots[SlotZ].power }

// Gate1D returns the 1-D gate attached to slot s, if the channel is 1-D
// and the slot is populated.
func (c *Channel) Gate1D(s Slot) (*gate.Gate1D, bool) {
	if c.twoD {
		return nil, false
	}
	g := c.slots[s].gate1
	return g, g != nil
}

// Gate2D returns the 2-D gate attached to slot s, if the channel is 2-D
// and the slot is populated.
func (c *Channel) Gate2D(s Slot) (*gate.Gate2D, bool) {
	if !c.twoD {
		return nil, false
	}
	g := c.slots[s].gate2
	return g, g != nil
}

// SetIndex assigns the input-index string for slot s on a 2-D channel,
// per the policy in package index.
func (c *Channel) SetIndex(s Slot, idx string) error {
	if !c.twoD {
		return ErrNot2D
	}
	d0, d1, err := index.Lookup(idx)
	if err != nil {
		return err
	}
	sl := &c.slots[s]
	sl.indexStr, sl.dim0, sl.dim1 = idx, d0, d1
	return nil
}

// Index returns the input-index string currently assigned to slot s.
func (c *Channel) Index(s Slot) string { return c.slots[s].indexStr }

// SetInstant sets the instant bitmask; a gate whose bit is set is
// clamped to A/B every step rather than integrated.
func (c *Channel) SetInstant(mask Instant) { c.instant = mask }
func (c *Channel) InstantMask() Instant    { return c.instant }

// SetGbar, Gbar set/get the maximum conductance.
func (c *Channel) SetGbar(g float64) { c.gBar = g }
func (c *Channel) Gbar() float64     { return c.gBar }

// SetEk, Ek set/get the reversal potential.
func (c *Channel) SetEk(ek float64) { c.ek = ek }
func (c *Channel) Ek() float64      { return c.ek }

// SetModulation sets the multiplicative scalar supplied by the channel's
// collaborators (default 1).
func (c *Channel) SetModulation(m float64) { c.modulation = m }

// SetDriver tags the channel as self-stepping or solver-driven (spec S9).
func (c *Channel) SetDriver(d Driver) { c.driver = d }
func (c *Channel) GetDriver() Driver  { return c.driver }

// State reports the channel's lifecycle state.
func (c *Channel) State() State { return c.state }

// Vm sets the current membrane voltage from the compartment (dest
// endpoint Vm(double), spec S6).
func (c *Channel) Vm(v float64) { c.vm = v }

// Concen, Concen2 set the two calcium-pool concentrations (dest
// endpoints concen(double)/concen2(double), 2-D channels only).
func (c *Channel) Concen(v float64)  { c.conc1 = v }
func (c *Channel) Concen2(v float64) { c.conc2 = v }

// Gk, Ik return the last computed conductance and driven current
// (src endpoints channelOut/IkOut, spec S6).
func (c *Channel) Gk() float64 { return c.gk }
func (c *Channel) Ik() float64 { return c.ik }

func (c *Channel) depValue(d index.Dim) float64 {
	switch d {
	case index.Volt:
		return c.vm
	case index.C1:
		return c.conc1
	case index.C2:
		return c.conc2
	default:
		return 0
	}
}

func (c *Channel) lookup(sl *slot) (A, B float64, err error) {
	if c.twoD {
		if sl.gate2 == nil {
			return 0, 0, ErrMissingGate
		}
		return sl.gate2.Lookup(c.depValue(sl.dim0), c.depValue(sl.dim1))
	}
	if sl.gate1 == nil {
		return 0, 0, ErrMissingGate
	}
	return sl.gate1.Lookup(c.vm)
}

func instantBit(s Slot) Instant {
	switch s {
	case SlotX:
		return InstantX
	case SlotY:
		return InstantY
	default:
		return InstantZ
	}
}

// Process advances the channel by one tick of size dt: each active gate
// is queried, clamped to A/B or integrated per its instant bit, and
// raised to its slot's power to accumulate Gk; Ik is then derived from
// Gk and the last Vm (spec S4.4). On a solver-driven channel this is a
// no-op.
func (c *Channel) Process(dt float64) error {
	if c.driver == SolverDriven {
		return nil
	}
	g := c.gBar
	for i := range c.slots {
		sl := &c.slots[i]
		if sl.power <= 0 {
			continue
		}
		A, B, err := c.lookup(sl)
		if err != nil {
			return fmt.Errorf("process: slot %s: %w", Slot(i), err)
		}
		if c.instant&instantBit(Slot(i)) != 0 {
			sl.val = A / B
		} else {
			sl.val = integrate(sl.val, dt, A, B)
		}
		g *= takePower(sl.val, sl.power)
	}
	c.gk = g * c.modulation
	c.ik = (c.ek - c.vm) * c.gk
	return nil
}

// Reinit resets the channel to its initial state: each active gate not
// already pre-seeded (inited) is set to its steady-state value A/B at
// the current Vm (and concentrations, for 2-D channels). If a gate's B
// is smaller than reinitEpsilon, reinit refuses to set that gate's state,
// logs a warning and returns ErrBTooSmall; the remaining slots are not
// visited and Gk, Ik and the lifecycle state are left unchanged. On a
// solver-driven channel this is a no-op.
func (c *Channel) Reinit() error {
	if c.driver == SolverDriven {
		return nil
	}
	g := c.gBar
	for i := range c.slots {
		sl := &c.slots[i]
		if sl.power <= 0 {
			continue
		}
		A, B, err := c.lookup(sl)
		if err != nil {
			return fmt.Errorf("reinit: slot %s: %w", Slot(i), err)
		}
		if B < reinitEpsilon {
			log.Printf("hhgate/channel: warning: B for slot %s is ~0; refusing reinit", Slot(i))
			return fmt.Errorf("reinit: slot %s: %w", Slot(i), ErrBTooSmall)
		}
		if !sl.inited {
			sl.val = A / B
			sl.inited = true
		}
		g *= takePower(sl.val, sl.power)
	}
	c.gk = g * c.modulation
	c.ik = (c.ek - c.vm) * c.gk
	c.state = StateRunning
	return nil
}
