// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package harness provides a minimal point-compartment collaborator for
exercising channel.Channel end to end. It plays the role of the
compartment solver well enough to drive realistic scenarios -- a leaky
RC circuit fed by one or more HH channels -- without implementing a real
multi-compartment cable equation solver.
*/
package harness

import (
	"fmt"

	"github.com/emer/hhgate/channel"
)

// Leak holds the passive leak conductance and reversal potential of a
// Compartment, split out the way the teacher's Chans struct separates
// excitatory, leak, inhibitory, and potassium conductances.
type Leak struct {
	G  float64 `desc:"leak conductance"`
	Ek float64 `desc:"leak reversal potential"`
}

// Compartment is a single isopotential patch of membrane: a capacitance
// Cm in parallel with a fixed leak conductance and any number of
// attached HH Channels. Its Vm is the shared voltage every attached
// channel reads on its next Process call.
type Compartment struct {
	Cm   float64 `desc:"membrane capacitance"`
	Vm   float64 `desc:"membrane potential"`
	Leak Leak    `desc:"passive leak channel"`

	channels []*channel.Channel
	inject   float64
}

// NewCompartment returns a Compartment with the given capacitance and
// initial voltage.
func NewCompartment(cm, vm float64) *Compartment {
	return &Compartment{Cm: cm, Vm: vm}
}

// AddChannel attaches ch to the compartment; ch will receive this
// compartment's Vm every tick and contribute its Gk/Ik to the membrane
// current balance.
func (c *Compartment) AddChannel(ch *channel.Channel) {
	c.channels = append(c.channels, ch)
}

// Channels returns the attached channels, in attachment order.
func (c *Compartment) Channels() []*channel.Channel { return c.channels }

// InjectCurrent sets a constant externally-applied current (e.g. a
// current-clamp stimulus), added to the membrane current balance every
// Step.
func (c *Compartment) InjectCurrent(i float64) { c.inject = i }

// Reinit reinitialises every attached channel's gates at the
// compartment's current Vm. Vm itself is not changed -- Reinit only
// settles the channels, exactly as the original Channel::reinit did not
// touch the parent compartment's Vm.
func (c *Compartment) Reinit() error {
	for _, ch := range c.channels {
		ch.Vm(c.Vm)
		if err := ch.Reinit(); err != nil {
			return fmt.Errorf("harness: reinit: %w", err)
		}
	}
	return nil
}

// Step advances the compartment by one tick of size dt: every attached
// channel is given the current Vm and processed, its Ik summed into the
// membrane current balance along with the leak current and any injected
// current, and Vm is integrated forward by dt/Cm * Itotal.
func (c *Compartment) Step(dt float64) error {
	itotal := c.inject + c.Leak.G*(c.Leak.Ek-c.Vm)
	for _, ch := range c.channels {
		ch.Vm(c.Vm)
		if err := ch.Process(dt); err != nil {
			return fmt.Errorf("harness: step: %w", err)
		}
		itotal += ch.Ik()
	}
	c.Vm += (dt / c.Cm) * itotal
	return nil
}
