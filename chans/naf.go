// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import "github.com/msnlab/msnmech/mech"

// NafParams is the immutable definition of the fast transient sodium
// channel (naf): activation m cubed times inactivation h, with kinetics
// after Ogata & Tatebayashi (1990) as used in the MSN model.
type NafParams struct {
	MVHalf  float32        `def:"-23.9" desc:"half-activation voltage of m (mV)"`
	MSlope  float32        `def:"-11.8" desc:"activation slope factor (mV)"`
	MTauMin float32        `def:"0.02" desc:"floor of the m time constant (msec)"`
	MTauAmp float32        `def:"0.4" desc:"amplitude of the m time constant bell (msec)"`
	MTauVh  float32        `def:"-43" desc:"voltage of the m time constant peak (mV)"`
	MTauKUp float32        `def:"14" desc:"rising-rate slope factor of the m time constant (mV)"`
	MTauKDn float32        `def:"18" desc:"falling-rate slope factor of the m time constant (mV)"`
	HVHalf  float32        `def:"-62.9" desc:"half-inactivation voltage of h (mV)"`
	HSlope  float32        `def:"10.7" desc:"inactivation slope factor (mV)"`
	HTauMin float32        `def:"0.3" desc:"floor of the h time constant (msec)"`
	HTauAmp float32        `def:"6" desc:"amplitude of the h time constant bell (msec)"`
	HTauVh  float32        `def:"-58" desc:"voltage of the h time constant peak (mV)"`
	HTauKUp float32        `def:"12" desc:"rising-rate slope factor of the h time constant (mV)"`
	HTauKDn float32        `def:"15" desc:"falling-rate slope factor of the h time constant (mV)"`
	Q10     mech.Q10Params `view:"inline" desc:"temperature scaling of the kinetics"`
}

func (np *NafParams) Defaults() {
	np.MVHalf = -23.9
	np.MSlope = -11.8
	np.MTauMin = 0.02
	np.MTauAmp = 0.4
	np.MTauVh = -43
	np.MTauKUp = 14
	np.MTauKDn = 18
	np.HVHalf = -62.9
	np.HSlope = 10.7
	np.HTauMin = 0.3
	np.HTauAmp = 6
	np.HTauVh = -58
	np.HTauKUp = 12
	np.HTauKDn = 15
	np.Q10.Q10 = 1.3
	np.Q10.RefTemp = 22
}

// MInfTau is the activation rate law.
func (np *NafParams) MInfTau(v, ca float32) (inf, tau float32) {
	return Boltz(v, np.MVHalf, np.MSlope),
		TauBell(v, np.MTauMin, np.MTauAmp, np.MTauVh, np.MTauKUp, np.MTauKDn)
}

// HInfTau is the inactivation rate law.
func (np *NafParams) HInfTau(v, ca float32) (inf, tau float32) {
	return Boltz(v, np.HVHalf, np.HSlope),
		TauBell(v, np.HTauMin, np.HTauAmp, np.HTauVh, np.HTauKUp, np.HTauKDn)
}

// Naf is one fast sodium channel instance at a compartment.
type Naf struct {
	ChanBase
	Def  *NafParams `view:"no-inline" desc:"shared immutable definition"`
	M, H mech.Gate
}

// NewNaf makes a naf instance with the given definition (nil = standard
// defaults) and conductance density.
func NewNaf(def *NafParams, gbar float32) *Naf {
	if def == nil {
		def = &NafParams{}
		def.Defaults()
	}
	ch := &Naf{Def: def}
	ch.Nm = "naf"
	ch.Gbar = gbar
	ch.Erev = 50
	ch.Mod.Defaults()
	return ch
}

func (ch *Naf) Init(v, ca, celsius float32) error {
	if err := ch.initBase(&ch.Def.Q10, celsius); err != nil {
		return err
	}
	ch.M.Init(mech.InfTauFunc(ch.Def.MInfTau), v, ca, ch.TempFact)
	ch.H.Init(mech.InfTauFunc(ch.Def.HInfTau), v, ca, ch.TempFact)
	return nil
}

func (ch *Naf) Step(v, ca, dt float32) (mech.Current, error) {
	if err := mech.CheckStep(ch.Nm, v, ca, dt); err != nil {
		return mech.Current{}, err
	}
	ch.M.Step(mech.InfTauFunc(ch.Def.MInfTau), v, ca, dt)
	ch.H.Step(mech.InfTauFunc(ch.Def.HInfTau), v, ca, dt)
	m := ch.M.X
	g := ch.Gbar * m * m * m * ch.H.X * ch.Mod.Mod()
	return mech.Current{Na: g * (v - ch.Erev)}, nil
}
