// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syn

import (
	"github.com/chewxy/math32"

	"github.com/msnlab/msnmech/mech"
)

// MgBlockParams is the voltage-dependent magnesium block of the NMDA
// receptor, after Jahr & Stevens (1990): the open fraction is
// 1 / (1 + Mg/Kd * exp(-Gamma * v)).
type MgBlockParams struct {
	Mg    float32 `def:"1" desc:"external magnesium concentration (mM)"`
	Kd    float32 `def:"3.57" desc:"magnesium dissociation constant at 0 mV (mM)"`
	Gamma float32 `def:"0.062" desc:"voltage sensitivity of the block (1/mV)"`
}

func (mp *MgBlockParams) Defaults() {
	mp.Mg = 1
	mp.Kd = 3.57
	mp.Gamma = 0.062
}

// GFmV returns the unblocked fraction at the given voltage (mV), in (0, 1).
func (mp *MgBlockParams) GFmV(v float32) float32 {
	return 1 / (1 + mp.Mg/mp.Kd*math32.Exp(-mp.Gamma*v))
}

// NMDAParams is the immutable definition of the NMDA receptor synapse: a
// slow dual-exponential kernel gated by the magnesium block, with a fixed
// fraction of the current carried by calcium.
type NMDAParams struct {
	Kernel KernelParams  `view:"inline" desc:"conductance kernel: rise 5.52 msec, decay 231 msec, reversal 0 mV"`
	Mg     MgBlockParams `view:"inline" desc:"voltage-dependent magnesium block"`
	CaFrac float32       `def:"0.1" desc:"fraction of the current carried by calcium; the rest is nonspecific cation"`
}

func (np *NMDAParams) Defaults() {
	np.Kernel.Tau1 = 5.52
	np.Kernel.Tau2 = 231
	np.Kernel.Erev = 0
	np.Kernel.Q10.Q10 = 2
	np.Kernel.Q10.RefTemp = 22
	np.Mg.Defaults()
	np.CaFrac = 0.1
}

// NMDA is one NMDA synapse instance at a compartment.
type NMDA struct {
	SynBase
	Def *NMDAParams
	K   Kernel
}

// NewNMDA makes an nmda instance with the given definition (nil = standard
// defaults) and unit-event peak conductance.
func NewNMDA(def *NMDAParams, gbar float32) *NMDA {
	if def == nil {
		def = &NMDAParams{}
		def.Defaults()
	}
	sy := &NMDA{Def: def}
	sy.Nm = "nmda"
	sy.Gbar = gbar
	sy.Erev = def.Kernel.Erev
	sy.Mod.Defaults()
	return sy
}

func (sy *NMDA) Init(v, ca, celsius float32) error {
	if err := sy.initBase(&sy.Def.Kernel.Q10, celsius); err != nil {
		return err
	}
	if err := sy.Def.Kernel.Update(sy.Nm); err != nil {
		return err
	}
	sy.K.Init(sy.TempFact)
	return nil
}

func (sy *NMDA) Step(v, ca, dt float32) (mech.Current, error) {
	if err := mech.CheckStep(sy.Nm, v, ca, dt); err != nil {
		return mech.Current{}, err
	}
	sy.K.Step(&sy.Def.Kernel, dt)
	g := sy.Gbar * sy.K.G() * sy.Def.Mg.GFmV(v) * sy.Mod.Mod()
	i := g * (v - sy.Erev)
	cf := sy.Def.CaFrac
	return mech.Current{Ca: cf * i, Ns: (1 - cf) * i}, nil
}

func (sy *NMDA) DeliverEvent(weight, time float32) error {
	return sy.K.Deliver(sy.Nm, &sy.Def.Kernel, weight, time)
}
