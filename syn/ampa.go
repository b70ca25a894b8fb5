// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syn

import "github.com/msnlab/msnmech/mech"

// AMPAParams is the immutable definition of the AMPA receptor synapse:
// a fast dual-exponential kernel, linear in voltage.
type AMPAParams struct {
	Kernel KernelParams `view:"inline" desc:"conductance kernel: rise 1.9 msec, decay 4.8 msec, reversal 0 mV"`
}

func (ap *AMPAParams) Defaults() {
	ap.Kernel.Tau1 = 1.9
	ap.Kernel.Tau2 = 4.8
	ap.Kernel.Erev = 0
	ap.Kernel.Q10.Q10 = 2
	ap.Kernel.Q10.RefTemp = 22
}

// AMPA is one AMPA synapse instance at a compartment.
type AMPA struct {
	SynBase
	Def *AMPAParams
	K   Kernel
}

// NewAMPA makes an ampa instance with the given definition (nil = standard
// defaults) and unit-event peak conductance.
func NewAMPA(def *AMPAParams, gbar float32) *AMPA {
	if def == nil {
		def = &AMPAParams{}
		def.Defaults()
	}
	sy := &AMPA{Def: def}
	sy.Nm = "ampa"
	sy.Gbar = gbar
	sy.Erev = def.Kernel.Erev
	sy.Mod.Defaults()
	return sy
}

func (sy *AMPA) Init(v, ca, celsius float32) error {
	if err := sy.initBase(&sy.Def.Kernel.Q10, celsius); err != nil {
		return err
	}
	if err := sy.Def.Kernel.Update(sy.Nm); err != nil {
		return err
	}
	sy.K.Init(sy.TempFact)
	return nil
}

func (sy *AMPA) Step(v, ca, dt float32) (mech.Current, error) {
	if err := mech.CheckStep(sy.Nm, v, ca, dt); err != nil {
		return mech.Current{}, err
	}
	sy.K.Step(&sy.Def.Kernel, dt)
	g := sy.Gbar * sy.K.G() * sy.Mod.Mod()
	return mech.Current{Ns: g * (v - sy.Erev)}, nil
}

func (sy *AMPA) DeliverEvent(weight, time float32) error {
	return sy.K.Deliver(sy.Nm, &sy.Def.Kernel, weight, time)
}
