// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syn

import (
	"github.com/msnlab/msnmech/mech"
	"github.com/msnlab/msnmech/neuromod"
)

// GlutParams is the immutable definition of the co-released glutamate
// synapse: one presynaptic event drives both an AMPA and an NMDA kernel,
// with the relative NMDA amplitude set per instance by Ratio.
type GlutParams struct {
	AMPA   KernelParams  `view:"inline" desc:"AMPA component kernel"`
	NMDA   KernelParams  `view:"inline" desc:"NMDA component kernel"`
	Mg     MgBlockParams `view:"inline" desc:"magnesium block of the NMDA component"`
	CaFrac float32       `def:"0.1" desc:"calcium fraction of the NMDA component current"`
}

func (gp *GlutParams) Defaults() {
	gp.AMPA.Tau1 = 1.9
	gp.AMPA.Tau2 = 4.8
	gp.AMPA.Erev = 0
	gp.AMPA.Q10.Q10 = 2
	gp.AMPA.Q10.RefTemp = 22
	gp.NMDA.Tau1 = 5.52
	gp.NMDA.Tau2 = 231
	gp.NMDA.Erev = 0
	gp.NMDA.Q10.Q10 = 2
	gp.NMDA.Q10.RefTemp = 22
	gp.Mg.Defaults()
	gp.CaFrac = 0.1
}

// Glut is one co-released glutamate synapse instance at a compartment.
// Gbar and Mod (on SynBase) scale the AMPA component; the NMDA component
// peaks at Ratio times the AMPA peak and carries its own modulation, since
// dopamine scales the two receptors differently.
type Glut struct {
	SynBase
	Ratio  float32            `def:"1" desc:"NMDA to AMPA peak conductance ratio, applied to the NMDA event amplitude"`
	ModN   neuromod.ModParams `view:"inline" desc:"neuromodulation of the NMDA component"`
	Def    *GlutParams
	KA, KN Kernel
}

// NewGlut makes a glut instance with the given definition (nil = standard
// defaults) and unit-event AMPA peak conductance.
func NewGlut(def *GlutParams, gbar float32) *Glut {
	if def == nil {
		def = &GlutParams{}
		def.Defaults()
	}
	sy := &Glut{Def: def}
	sy.Nm = "glut"
	sy.Gbar = gbar
	sy.Erev = def.AMPA.Erev
	sy.Ratio = 1
	sy.Mod.Defaults()
	sy.ModN.Defaults()
	return sy
}

func (sy *Glut) Init(v, ca, celsius float32) error {
	if err := sy.initBase(&sy.Def.AMPA.Q10, celsius); err != nil {
		return err
	}
	if sy.Ratio < 0 {
		return &mech.ConfigError{Mech: sy.Nm, Param: "Ratio", Msg: "negative density"}
	}
	if err := sy.Def.AMPA.Update(sy.Nm); err != nil {
		return err
	}
	if err := sy.Def.NMDA.Update(sy.Nm); err != nil {
		return err
	}
	sy.KA.Init(sy.TempFact)
	sy.KN.Init(sy.Def.NMDA.Q10.Factor(celsius))
	return nil
}

func (sy *Glut) Step(v, ca, dt float32) (mech.Current, error) {
	if err := mech.CheckStep(sy.Nm, v, ca, dt); err != nil {
		return mech.Current{}, err
	}
	sy.KA.Step(&sy.Def.AMPA, dt)
	sy.KN.Step(&sy.Def.NMDA, dt)
	ga := sy.Gbar * sy.KA.G() * sy.Mod.Mod()
	gn := sy.Gbar * sy.KN.G() * sy.Def.Mg.GFmV(v) * sy.ModN.Mod()
	ia := ga * (v - sy.Def.AMPA.Erev)
	in := gn * (v - sy.Def.NMDA.Erev)
	cf := sy.Def.CaFrac
	return mech.Current{Ca: cf * in, Ns: ia + (1-cf)*in}, nil
}

// DeliverEvent adds one presynaptic event to both components, with the
// NMDA amplitude scaled by Ratio.
func (sy *Glut) DeliverEvent(weight, time float32) error {
	if err := sy.KA.Deliver(sy.Nm, &sy.Def.AMPA, weight, time); err != nil {
		return err
	}
	return sy.KN.Deliver(sy.Nm, &sy.Def.NMDA, weight*sy.Ratio, time)
}

// SetParam sets one parameter by name: Ratio, an NMDA modulation parameter
// prefixed with N (NDamod, NMaxMod, NLevel, NMax2, NLev2), or a SynBase
// parameter.
func (sy *Glut) SetParam(name string, val float32) error {
	if name == "Ratio" {
		sy.Ratio = val
		return nil
	}
	if len(name) > 1 && name[0] == 'N' && sy.ModN.SetParam(name[1:], val) {
		return nil
	}
	if sy.setBase(name, val) {
		return nil
	}
	return sy.errParam(name)
}
