// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import "github.com/msnlab/msnmech/mech"

// CaNParams is the immutable definition of the N-type calcium channel
// (can, Cav2.2): activation m squared with incomplete inactivation,
// m^2 * (a*h + (1-a)), after Bargas et al (1994), carrying current by GHK
// flux.
type CaNParams struct {
	MVHalf  float32        `def:"-8.7" desc:"half-activation voltage of m (mV)"`
	MSlope  float32        `def:"-7.4" desc:"activation slope factor (mV)"`
	MTauMin float32        `def:"0.2" desc:"floor of the m time constant (msec)"`
	MTauAmp float32        `def:"1" desc:"amplitude of the m time constant bell (msec)"`
	MTauVh  float32        `def:"-10" desc:"voltage of the m time constant peak (mV)"`
	MTauKUp float32        `def:"15" desc:"rising-rate slope factor of the m time constant (mV)"`
	MTauKDn float32        `def:"15" desc:"falling-rate slope factor of the m time constant (mV)"`
	HVHalf  float32        `def:"-74.8" desc:"half-inactivation voltage of h (mV)"`
	HSlope  float32        `def:"6.5" desc:"inactivation slope factor (mV)"`
	HTau    float32        `def:"70" desc:"inactivation time constant (msec)"`
	HFrac   float32        `def:"0.21" desc:"fraction of the conductance subject to inactivation"`
	Cao     float32        `def:"2" desc:"extracellular calcium concentration (mM)"`
	Q10     mech.Q10Params `view:"inline" desc:"temperature scaling of the kinetics"`
}

func (cp *CaNParams) Defaults() {
	cp.MVHalf = -8.7
	cp.MSlope = -7.4
	cp.MTauMin = 0.2
	cp.MTauAmp = 1
	cp.MTauVh = -10
	cp.MTauKUp = 15
	cp.MTauKDn = 15
	cp.HVHalf = -74.8
	cp.HSlope = 6.5
	cp.HTau = 70
	cp.HFrac = 0.21
	cp.Cao = 2
	cp.Q10.Q10 = 3
	cp.Q10.RefTemp = 22
}

func (cp *CaNParams) MInfTau(v, ca float32) (inf, tau float32) {
	return Boltz(v, cp.MVHalf, cp.MSlope),
		TauBell(v, cp.MTauMin, cp.MTauAmp, cp.MTauVh, cp.MTauKUp, cp.MTauKDn)
}

func (cp *CaNParams) HInfTau(v, ca float32) (inf, tau float32) {
	return Boltz(v, cp.HVHalf, cp.HSlope), cp.HTau
}

// CaN is one N-type calcium channel instance at a compartment.
type CaN struct {
	ChanBase
	Def  *CaNParams
	M, H mech.Gate
}

// NewCaN makes a can instance with the given definition (nil = standard
// defaults) and permeability density.
func NewCaN(def *CaNParams, pbar float32) *CaN {
	if def == nil {
		def = &CaNParams{}
		def.Defaults()
	}
	ch := &CaN{Def: def}
	ch.Nm = "can"
	ch.Gbar = pbar
	ch.Mod.Defaults()
	return ch
}

func (ch *CaN) Init(v, ca, celsius float32) error {
	if err := ch.initBase(&ch.Def.Q10, celsius); err != nil {
		return err
	}
	ch.M.Init(mech.InfTauFunc(ch.Def.MInfTau), v, ca, ch.TempFact)
	ch.H.Init(mech.InfTauFunc(ch.Def.HInfTau), v, ca, ch.TempFact)
	return nil
}

func (ch *CaN) Step(v, ca, dt float32) (mech.Current, error) {
	if err := mech.CheckStep(ch.Nm, v, ca, dt); err != nil {
		return mech.Current{}, err
	}
	ch.M.Step(mech.InfTauFunc(ch.Def.MInfTau), v, ca, dt)
	ch.H.Step(mech.InfTauFunc(ch.Def.HInfTau), v, ca, dt)
	m := ch.M.X
	a := ch.Def.HFrac
	p := ch.Gbar * m * m * (a*ch.H.X + (1 - a)) * ch.Mod.Mod()
	return mech.Current{Ca: p * GHK(v, ca, ch.Def.Cao, ch.Celsius)}, nil
}
