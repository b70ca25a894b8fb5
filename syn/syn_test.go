// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syn

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/msnlab/msnmech/mech"
)

const difTol = float32(1.0e-5)

func TestKernelUpdate(t *testing.T) {
	kp := &KernelParams{Tau1: 1.9, Tau2: 4.8}
	if err := kp.Update("test"); err != nil {
		t.Fatalf("update: %v\n", err)
	}
	// t_peak = tau1*tau2/(tau2-tau1) * ln(tau2/tau1)
	cor := float32(1.9) * 4.8 / (4.8 - 1.9) * math32.Log(4.8/1.9)
	if dif := math32.Abs(kp.TPeak - cor); dif > difTol {
		t.Errorf("tpeak: %v, cor: %v\n", kp.TPeak, cor)
	}
	if kp.Factor <= 1 {
		t.Errorf("factor: %v, expected > 1\n", kp.Factor)
	}
}

func TestKernelPeakNormalization(t *testing.T) {
	kp := &KernelParams{Tau1: 1.9, Tau2: 4.8}
	if err := kp.Update("test"); err != nil {
		t.Fatalf("update: %v\n", err)
	}
	var k Kernel
	k.Init(1)
	if err := k.Deliver("test", kp, 1, 0); err != nil {
		t.Fatalf("deliver: %v\n", err)
	}
	// the step integration is exact, so one step of exactly TPeak lands
	// on the peak, where a unit event has G == 1
	k.Step(kp, kp.TPeak)
	if dif := math32.Abs(k.G() - 1); dif > difTol {
		t.Errorf("g at peak: %v, cor: 1\n", k.G())
	}
	// past the peak the conductance decays
	k.Step(kp, kp.TPeak)
	if k.G() >= 1 {
		t.Errorf("g past peak: %v, expected < 1\n", k.G())
	}
}

func TestKernelSuperposition(t *testing.T) {
	kp := &KernelParams{Tau1: 0.5, Tau2: 7.5}
	if err := kp.Update("test"); err != nil {
		t.Fatalf("update: %v\n", err)
	}
	// two half-weight events at the same time equal one unit event
	var k1, k2 Kernel
	k1.Init(1)
	k2.Init(1)
	k1.Deliver("test", kp, 1, 0)
	k2.Deliver("test", kp, 0.5, 0)
	k2.Deliver("test", kp, 0.5, 0)
	for i := 0; i < 10; i++ {
		k1.Step(kp, 0.7)
		k2.Step(kp, 0.7)
		if dif := math32.Abs(k1.G() - k2.G()); dif > difTol {
			t.Errorf("step %d: g1: %v, g2: %v\n", i, k1.G(), k2.G())
		}
	}
}

func TestKernelTauOrder(t *testing.T) {
	cases := []struct{ tau1, tau2 float32 }{
		{4.8, 1.9}, {2, 2}, {0, 5}, {-1, 5},
	}
	for _, c := range cases {
		kp := &KernelParams{Tau1: c.tau1, Tau2: c.tau2}
		err := kp.Update("test")
		if err == nil {
			t.Errorf("tau1: %v, tau2: %v: expected ConfigError\n", c.tau1, c.tau2)
			continue
		}
		if _, ok := err.(*mech.ConfigError); !ok {
			t.Errorf("tau1: %v, tau2: %v: expected *ConfigError, got %T\n", c.tau1, c.tau2, err)
		}
	}
}

func TestEventOrdering(t *testing.T) {
	sy := NewAMPA(nil, 1)
	if err := sy.Init(-80, 0, 22); err != nil {
		t.Fatalf("init: %v\n", err)
	}
	if err := sy.DeliverEvent(1, 5); err != nil {
		t.Errorf("t=5: %v\n", err)
	}
	if err := sy.DeliverEvent(1, 5); err != nil {
		t.Errorf("repeat t=5 must be allowed: %v\n", err)
	}
	err := sy.DeliverEvent(1, 4)
	if err == nil {
		t.Fatalf("t=4 after t=5: expected ArgError\n")
	}
	if _, ok := err.(*mech.ArgError); !ok {
		t.Errorf("expected *ArgError, got %T\n", err)
	}
	if err := sy.DeliverEvent(math32.NaN(), 6); err == nil {
		t.Errorf("NaN weight: expected ArgError\n")
	}
}

func TestRegistry(t *testing.T) {
	for _, nm := range Names {
		sy := New(nm, 1e-3)
		if sy == nil {
			t.Errorf("New(%q) = nil\n", nm)
			continue
		}
		if err := sy.Init(-80, 0, 35); err != nil {
			t.Errorf("%s Init: %v\n", nm, err)
			continue
		}
		ev, ok := sy.(mech.EventReceiver)
		if !ok {
			t.Errorf("%s is not an EventReceiver\n", nm)
			continue
		}
		if err := ev.DeliverEvent(1, 0); err != nil {
			t.Errorf("%s DeliverEvent: %v\n", nm, err)
		}
		if _, err := sy.Step(-80, 0, 0.025); err != nil {
			t.Errorf("%s Step: %v\n", nm, err)
		}
	}
}

func TestAMPACurrent(t *testing.T) {
	sy := NewAMPA(nil, 1)
	sy.Init(-80, 0, 22)
	sy.DeliverEvent(1, 0)
	sy.K.Step(&sy.Def.Kernel, sy.Def.Kernel.TPeak)
	// c.f. the kernel peak test: conductance is exactly gbar here, so the
	// current is gbar * (v - erev) in the nonspecific pool
	cu, err := sy.Step(-60, 0, 1e-7)
	if err != nil {
		t.Fatalf("step: %v\n", err)
	}
	cor := float32(1) * (-60 - 0)
	if dif := math32.Abs(cu.Ns - cor); dif > 1.0e-3 {
		t.Errorf("i: %v, cor: %v\n", cu.Ns, cor)
	}
	if cu.Na != 0 || cu.K != 0 || cu.Ca != 0 || cu.Cl != 0 {
		t.Errorf("ampa wrote a non-Ns pool: %+v\n", cu)
	}
}

func TestGABAPool(t *testing.T) {
	sy := NewGABA(nil, 1)
	sy.Init(-80, 0, 22)
	sy.DeliverEvent(1, 0)
	cu, _ := sy.Step(-40, 0, 1)
	if cu.Cl <= 0 {
		t.Errorf("gaba at -40 mV (erev -60): %v, expected outward (> 0)\n", cu.Cl)
	}
	cu, _ = sy.Step(-80, 0, 1)
	if cu.Cl >= 0 {
		t.Errorf("gaba at -80 mV (erev -60): %v, expected inward (< 0)\n", cu.Cl)
	}
}

func TestMgBlock(t *testing.T) {
	mp := &MgBlockParams{}
	mp.Defaults()
	// hand-computed closed form at -60 mV
	cor := 1 / (1 + float32(1)/3.57*math32.Exp(-0.062*-60))
	if dif := math32.Abs(mp.GFmV(-60) - cor); dif > difTol {
		t.Errorf("block at -60: %v, cor: %v\n", mp.GFmV(-60), cor)
	}
	// the block relieves with depolarization
	prev := float32(0)
	for _, v := range []float32{-90, -60, -30, 0, 30} {
		b := mp.GFmV(v)
		if b <= prev || b >= 1 {
			t.Errorf("block at %v: %v, prev: %v\n", v, b, prev)
		}
		prev = b
	}
}

func TestNMDASplit(t *testing.T) {
	sy := NewNMDA(nil, 1)
	sy.Init(-80, 0, 22)
	sy.DeliverEvent(1, 0)
	cu, err := sy.Step(-40, 0, 2)
	if err != nil {
		t.Fatalf("step: %v\n", err)
	}
	if cu.Ca == 0 || cu.Ns == 0 {
		t.Fatalf("nmda must split across Ca and Ns: %+v\n", cu)
	}
	// the split is exactly CaFrac : 1-CaFrac of the total
	tot := cu.Total()
	if dif := math32.Abs(cu.Ca - 0.1*tot); dif > difTol {
		t.Errorf("ca: %v, cor: %v\n", cu.Ca, 0.1*tot)
	}
	if dif := math32.Abs(cu.Ns - 0.9*tot); dif > difTol {
		t.Errorf("ns: %v, cor: %v\n", cu.Ns, 0.9*tot)
	}
}

func TestGlutRatio(t *testing.T) {
	// ratio 0 leaves only the fast AMPA component: long after the AMPA
	// kernel has decayed the current is essentially zero
	sy := NewGlut(nil, 1)
	sy.Ratio = 0
	sy.Init(-80, 0, 22)
	sy.DeliverEvent(1, 0)
	cu, _ := sy.Step(-40, 0, 100)
	if math32.Abs(cu.Total()) > 1.0e-4 {
		t.Errorf("ratio 0 at t=100: %v, expected ~0\n", cu.Total())
	}
	// doubling the ratio doubles the slow component
	s1 := NewGlut(nil, 1)
	s1.Ratio = 0.5
	s1.Init(-80, 0, 22)
	s1.DeliverEvent(1, 0)
	c1, _ := s1.Step(-40, 0, 100)
	s2 := NewGlut(nil, 1)
	s2.Ratio = 1
	s2.Init(-80, 0, 22)
	s2.DeliverEvent(1, 0)
	c2, _ := s2.Step(-40, 0, 100)
	if dif := math32.Abs(c2.Total() - 2*c1.Total()); dif > 1.0e-4 {
		t.Errorf("ratio 1: %v, 2x ratio 0.5: %v\n", c2.Total(), 2*c1.Total())
	}
}

func TestGlutSetParam(t *testing.T) {
	sy := NewGlut(nil, 1)
	if err := sy.SetParam("Ratio", 0.7); err != nil {
		t.Errorf("Ratio: %v\n", err)
	}
	if sy.Ratio != 0.7 {
		t.Errorf("Ratio: %v, cor: 0.7\n", sy.Ratio)
	}
	if err := sy.SetParam("NMaxMod", 1.3); err != nil {
		t.Errorf("NMaxMod: %v\n", err)
	}
	if sy.ModN.MaxMod != 1.3 {
		t.Errorf("NMaxMod: %v, cor: 1.3\n", sy.ModN.MaxMod)
	}
	if err := sy.SetParam("MaxMod", 1.2); err != nil {
		t.Errorf("MaxMod: %v\n", err)
	}
	if sy.Mod.MaxMod != 1.2 {
		t.Errorf("MaxMod: %v, cor: 1.2\n", sy.Mod.MaxMod)
	}
	if err := sy.SetParam("NoSuch", 1); err == nil {
		t.Errorf("unknown param: expected ConfigError\n")
	}
}

func TestModulationScalesSynapse(t *testing.T) {
	a := NewGABA(nil, 1)
	a.Init(-80, 0, 22)
	b := NewGABA(nil, 1)
	b.Mod.Damod = 1
	b.Mod.MaxMod = 0.8
	b.Mod.Level = 1
	b.Init(-80, 0, 22)
	a.DeliverEvent(1, 0)
	b.DeliverEvent(1, 0)
	ca, _ := a.Step(-40, 0, 1)
	cb, _ := b.Step(-40, 0, 1)
	if dif := math32.Abs(cb.Cl - 0.8*ca.Cl); dif > difTol {
		t.Errorf("modulated: %v, cor: %v\n", cb.Cl, 0.8*ca.Cl)
	}
}

func TestStepArgErrors(t *testing.T) {
	sy := NewAMPA(nil, 1)
	sy.Init(-80, 0, 22)
	if _, err := sy.Step(-80, 0, 0); err == nil {
		t.Errorf("dt 0: expected error\n")
	}
	if _, err := sy.Step(-80, 0, -1); err == nil {
		t.Errorf("dt < 0: expected error\n")
	}
	if _, err := sy.Step(math32.Inf(1), 0, 1); err == nil {
		t.Errorf("Inf v: expected error\n")
	}
}

func TestBadTauConfig(t *testing.T) {
	def := &AMPAParams{}
	def.Defaults()
	def.Kernel.Tau1 = 10
	sy := NewAMPA(def, 1)
	err := sy.Init(-80, 0, 22)
	if err == nil {
		t.Fatalf("tau1 > tau2: expected ConfigError\n")
	}
	ce, ok := err.(*mech.ConfigError)
	if !ok {
		t.Fatalf("expected *ConfigError, got %T\n", err)
	}
	if ce.Mech != "ampa" {
		t.Errorf("mech: %v, cor: ampa\n", ce.Mech)
	}
}
