// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package harness

import (
	"math"
	"testing"

	"github.com/emer/hhgate/chans"
	"github.com/emer/hhgate/channel"
	"github.com/emer/hhgate/gate"
)

// squidM, squidH (sodium, m^3 h) and squidN (potassium, n^4) are the
// classic 1952 Hodgkin-Huxley squid axon gate parameter sets, in the
// canonical 13-scalar form.
var (
	squidM = gate.AlphaParms{2.5, -0.1, -1, -25, -10, 4, 0, 0, 0, 18, 100, -100, 50}
	squidH = gate.AlphaParms{0.07, 0, 0, 0, 20, 1, 0, 1, -30, -10, 100, -100, 50}
	squidN = gate.AlphaParms{0.1, -0.01, -1, -10, -10, 0.125, 0, 0, 0, 80, 100, -100, 50}
)

func newSquidSodium(t *testing.T) *channel.Channel {
	t.Helper()
	c := channel.New1D()
	p := chans.DefaultSquid()
	if err := c.SetXpower(3); err != nil {
		t.Fatalf("SetXpower: %v", err)
	}
	if err := c.SetYpower(1); err != nil {
		t.Fatalf("SetYpower: %v", err)
	}
	m, _ := c.Gate1D(channel.SlotX)
	h, _ := c.Gate1D(channel.SlotY)
	if err := m.SetupAlpha(c.ID(), squidM); err != nil {
		t.Fatalf("m.SetupAlpha: %v", err)
	}
	if err := h.SetupAlpha(c.ID(), squidH); err != nil {
		t.Fatalf("h.SetupAlpha: %v", err)
	}
	c.SetGbar(p.GNa)
	c.SetEk(p.ENa)
	return c
}

func newSquidPotassium(t *testing.T) *channel.Channel {
	t.Helper()
	c := channel.New1D()
	p := chans.DefaultSquid()
	if err := c.SetXpower(4); err != nil {
		t.Fatalf("SetXpower: %v", err)
	}
	n, _ := c.Gate1D(channel.SlotX)
	if err := n.SetupAlpha(c.ID(), squidN); err != nil {
		t.Fatalf("n.SetupAlpha: %v", err)
	}
	c.SetGbar(p.GK)
	c.SetEk(p.EK)
	return c
}

func TestCompartmentIntegratesStably(t *testing.T) {
	p := chans.DefaultSquid()
	comp := NewCompartment(1, 0)
	comp.Leak.G = p.GL
	comp.Leak.Ek = p.EL
	comp.AddChannel(newSquidSodium(t))
	comp.AddChannel(newSquidPotassium(t))

	if err := comp.Reinit(); err != nil {
		t.Fatalf("Reinit: %v", err)
	}

	dt := 0.01
	for i := 0; i < 1000; i++ {
		if err := comp.Step(dt); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
		if math.IsNaN(comp.Vm) || math.IsInf(comp.Vm, 0) {
			t.Fatalf("Vm diverged at step %d: %v", i, comp.Vm)
		}
		if math.Abs(comp.Vm) > 1000 {
			t.Fatalf("Vm blew up at step %d: %v", i, comp.Vm)
		}
	}
}

func TestCompartmentRespondsToInjectedCurrent(t *testing.T) {
	p := chans.DefaultSquid()
	comp := NewCompartment(1, 0)
	comp.Leak.G = p.GL
	comp.Leak.Ek = p.EL
	comp.AddChannel(newSquidSodium(t))
	comp.AddChannel(newSquidPotassium(t))
	if err := comp.Reinit(); err != nil {
		t.Fatalf("Reinit: %v", err)
	}
	comp.InjectCurrent(50)

	start := comp.Vm
	for i := 0; i < 50; i++ {
		if err := comp.Step(0.01); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
	}
	if comp.Vm <= start {
		t.Errorf("expected depolarisation from injected current, Vm went from %v to %v", start, comp.Vm)
	}
}

func TestCopiedChannelDoesNotAffectOriginalCompartment(t *testing.T) {
	comp := NewCompartment(1, 0)
	na := newSquidSodium(t)
	comp.AddChannel(na)
	if err := comp.Reinit(); err != nil {
		t.Fatalf("Reinit: %v", err)
	}

	cp := na.Copy()
	m, _ := cp.Gate1D(channel.SlotX)
	if err := m.SetMax(cp.ID(), 200); err == nil {
		t.Fatal("expected the copy to be rejected mutating a shared gate")
	}
}
