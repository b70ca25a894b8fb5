// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import "github.com/msnlab/msnmech/mech"

// CaRParams is the immutable definition of the R-type calcium channel
// (car, Cav2.3): activation m cubed times inactivation h with fixed time
// constants, after Foehring et al (2000), carrying current by GHK flux.
type CaRParams struct {
	MVHalf float32        `def:"-10.3" desc:"half-activation voltage of m (mV)"`
	MSlope float32        `def:"-6.6" desc:"activation slope factor (mV)"`
	MTau   float32        `def:"1.7" desc:"activation time constant (msec), voltage independent"`
	HVHalf float32        `def:"-33.3" desc:"half-inactivation voltage of h (mV)"`
	HSlope float32        `def:"17" desc:"inactivation slope factor (mV)"`
	HTau   float32        `def:"86" desc:"inactivation time constant (msec), voltage independent"`
	Cao    float32        `def:"2" desc:"extracellular calcium concentration (mM)"`
	Q10    mech.Q10Params `view:"inline" desc:"temperature scaling of the kinetics"`
}

func (cp *CaRParams) Defaults() {
	cp.MVHalf = -10.3
	cp.MSlope = -6.6
	cp.MTau = 1.7
	cp.HVHalf = -33.3
	cp.HSlope = 17
	cp.HTau = 86
	cp.Cao = 2
	cp.Q10.Q10 = 3
	cp.Q10.RefTemp = 22
}

func (cp *CaRParams) MInfTau(v, ca float32) (inf, tau float32) {
	return Boltz(v, cp.MVHalf, cp.MSlope), cp.MTau
}

func (cp *CaRParams) HInfTau(v, ca float32) (inf, tau float32) {
	return Boltz(v, cp.HVHalf, cp.HSlope), cp.HTau
}

// CaR is one R-type calcium channel instance at a compartment.
type CaR struct {
	ChanBase
	Def  *CaRParams
	M, H mech.Gate
}

// NewCaR makes a car instance with the given definition (nil = standard
// defaults) and permeability density.
func NewCaR(def *CaRParams, pbar float32) *CaR {
	if def == nil {
		def = &CaRParams{}
		def.Defaults()
	}
	ch := &CaR{Def: def}
	ch.Nm = "car"
	ch.Gbar = pbar
	ch.Mod.Defaults()
	return ch
}

func (ch *CaR) Init(v, ca, celsius float32) error {
	if err := ch.initBase(&ch.Def.Q10, celsius); err != nil {
		return err
	}
	ch.M.Init(mech.InfTauFunc(ch.Def.MInfTau), v, ca, ch.TempFact)
	ch.H.Init(mech.InfTauFunc(ch.Def.HInfTau), v, ca, ch.TempFact)
	return nil
}

func (ch *CaR) Step(v, ca, dt float32) (mech.Current, error) {
	if err := mech.CheckStep(ch.Nm, v, ca, dt); err != nil {
		return mech.Current{}, err
	}
	ch.M.Step(mech.InfTauFunc(ch.Def.MInfTau), v, ca, dt)
	ch.H.Step(mech.InfTauFunc(ch.Def.HInfTau), v, ca, dt)
	m := ch.M.X
	p := ch.Gbar * m * m * m * ch.H.X * ch.Mod.Mod()
	return mech.Current{Ca: p * GHK(v, ca, ch.Def.Cao, ch.Celsius)}, nil
}
