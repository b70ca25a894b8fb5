// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syn

import "github.com/msnlab/msnmech/mech"

// GABAParams is the immutable definition of the GABA-A receptor synapse:
// a chloride-carried dual-exponential kernel.
type GABAParams struct {
	Kernel KernelParams `view:"inline" desc:"conductance kernel: rise 0.5 msec, decay 7.5 msec, reversal -60 mV"`
}

func (gp *GABAParams) Defaults() {
	gp.Kernel.Tau1 = 0.5
	gp.Kernel.Tau2 = 7.5
	gp.Kernel.Erev = -60
	gp.Kernel.Q10.Q10 = 2
	gp.Kernel.Q10.RefTemp = 22
}

// GABA is one GABA-A synapse instance at a compartment.
type GABA struct {
	SynBase
	Def *GABAParams
	K   Kernel
}

// NewGABA makes a gaba instance with the given definition (nil = standard
// defaults) and unit-event peak conductance.
func NewGABA(def *GABAParams, gbar float32) *GABA {
	if def == nil {
		def = &GABAParams{}
		def.Defaults()
	}
	sy := &GABA{Def: def}
	sy.Nm = "gaba"
	sy.Gbar = gbar
	sy.Erev = def.Kernel.Erev
	sy.Mod.Defaults()
	return sy
}

func (sy *GABA) Init(v, ca, celsius float32) error {
	if err := sy.initBase(&sy.Def.Kernel.Q10, celsius); err != nil {
		return err
	}
	if err := sy.Def.Kernel.Update(sy.Nm); err != nil {
		return err
	}
	sy.K.Init(sy.TempFact)
	return nil
}

func (sy *GABA) Step(v, ca, dt float32) (mech.Current, error) {
	if err := mech.CheckStep(sy.Nm, v, ca, dt); err != nil {
		return mech.Current{}, err
	}
	sy.K.Step(&sy.Def.Kernel, dt)
	g := sy.Gbar * sy.K.G() * sy.Mod.Mod()
	return mech.Current{Cl: g * (v - sy.Erev)}, nil
}

func (sy *GABA) DeliverEvent(weight, time float32) error {
	return sy.K.Deliver(sy.Nm, &sy.Def.Kernel, weight, time)
}
