// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import "github.com/msnlab/msnmech/mech"

// CaLParams is the immutable definition of an L-type calcium channel
// (cal12 = Cav1.2, cal13 = Cav1.3): activation m times slow inactivation h,
// carrying current by GHK flux with a permeability density.  Cav1.3 differs
// from Cav1.2 only in its more hyperpolarized activation range.
type CaLParams struct {
	MVHalf  float32        `def:"-8.9,-33" desc:"half-activation voltage of m (mV); -8.9 for Cav1.2, -33 for Cav1.3"`
	MSlope  float32        `def:"-6.7" desc:"activation slope factor (mV)"`
	MTauMin float32        `def:"0.2" desc:"floor of the m time constant (msec)"`
	MTauAmp float32        `def:"1.2" desc:"amplitude of the m time constant bell (msec)"`
	MTauVh  float32        `def:"-15" desc:"voltage of the m time constant peak (mV)"`
	MTauKUp float32        `def:"15" desc:"rising-rate slope factor of the m time constant (mV)"`
	MTauKDn float32        `def:"15" desc:"falling-rate slope factor of the m time constant (mV)"`
	HVHalf  float32        `def:"-13.4" desc:"half-inactivation voltage of h (mV)"`
	HSlope  float32        `def:"11.9" desc:"inactivation slope factor (mV)"`
	HTau    float32        `def:"44.3" desc:"inactivation time constant (msec)"`
	Cao     float32        `def:"2" desc:"extracellular calcium concentration (mM)"`
	Q10     mech.Q10Params `view:"inline" desc:"temperature scaling of the kinetics"`
}

// Defaults sets the Cav1.2 parameters.
func (cp *CaLParams) Defaults() {
	cp.MVHalf = -8.9
	cp.MSlope = -6.7
	cp.MTauMin = 0.2
	cp.MTauAmp = 1.2
	cp.MTauVh = -15
	cp.MTauKUp = 15
	cp.MTauKDn = 15
	cp.HVHalf = -13.4
	cp.HSlope = 11.9
	cp.HTau = 44.3
	cp.Cao = 2
	cp.Q10.Defaults()
}

// Defaults13 sets the Cav1.3 parameters.
func (cp *CaLParams) Defaults13() {
	cp.Defaults()
	cp.MVHalf = -33
}

func (cp *CaLParams) MInfTau(v, ca float32) (inf, tau float32) {
	return Boltz(v, cp.MVHalf, cp.MSlope),
		TauBell(v, cp.MTauMin, cp.MTauAmp, cp.MTauVh, cp.MTauKUp, cp.MTauKDn)
}

func (cp *CaLParams) HInfTau(v, ca float32) (inf, tau float32) {
	return Boltz(v, cp.HVHalf, cp.HSlope), cp.HTau
}

// CaL is one L-type calcium channel instance at a compartment.  Gbar is the
// maximal permeability (cm/s); the whole current is in the calcium pool.
type CaL struct {
	ChanBase
	Def  *CaLParams
	M, H mech.Gate
}

// NewCaL12 makes a Cav1.2 instance with the given definition (nil =
// standard defaults) and permeability density.
func NewCaL12(def *CaLParams, pbar float32) *CaL {
	if def == nil {
		def = &CaLParams{}
		def.Defaults()
	}
	ch := &CaL{Def: def}
	ch.Nm = "cal12"
	ch.Gbar = pbar
	ch.Mod.Defaults()
	return ch
}

// NewCaL13 makes a Cav1.3 instance with the given definition (nil =
// standard defaults) and permeability density.
func NewCaL13(def *CaLParams, pbar float32) *CaL {
	if def == nil {
		def = &CaLParams{}
		def.Defaults13()
	}
	ch := &CaL{Def: def}
	ch.Nm = "cal13"
	ch.Gbar = pbar
	ch.Mod.Defaults()
	return ch
}

func (ch *CaL) Init(v, ca, celsius float32) error {
	if err := ch.initBase(&ch.Def.Q10, celsius); err != nil {
		return err
	}
	ch.M.Init(mech.InfTauFunc(ch.Def.MInfTau), v, ca, ch.TempFact)
	ch.H.Init(mech.InfTauFunc(ch.Def.HInfTau), v, ca, ch.TempFact)
	return nil
}

func (ch *CaL) Step(v, ca, dt float32) (mech.Current, error) {
	if err := mech.CheckStep(ch.Nm, v, ca, dt); err != nil {
		return mech.Current{}, err
	}
	ch.M.Step(mech.InfTauFunc(ch.Def.MInfTau), v, ca, dt)
	ch.H.Step(mech.InfTauFunc(ch.Def.HInfTau), v, ca, dt)
	p := ch.Gbar * ch.M.X * ch.H.X * ch.Mod.Mod()
	return mech.Current{Ca: p * GHK(v, ca, ch.Def.Cao, ch.Celsius)}, nil
}
