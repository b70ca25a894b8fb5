// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import "github.com/msnlab/msnmech/mech"

// KafParams is the immutable definition of the fast A-type potassium
// channel (kaf, Kv4.2): activation m squared times inactivation h, after
// Tkatch, Baranauskas & Surmeier (2000).  Cholinergic modulation of kaf in
// dMSNs is a shift of the voltage dependence (the instance ModShift), not a
// conductance scaling.
type KafParams struct {
	MVHalf  float32        `def:"-10" desc:"half-activation voltage of m (mV)"`
	MSlope  float32        `def:"-17.7" desc:"activation slope factor (mV)"`
	MTauMin float32        `def:"0.2" desc:"floor of the m time constant (msec)"`
	MTauAmp float32        `def:"1.1" desc:"amplitude of the m time constant bell (msec)"`
	MTauVh  float32        `def:"-58" desc:"voltage of the m time constant peak (mV)"`
	MTauKUp float32        `def:"11" desc:"rising-rate slope factor of the m time constant (mV)"`
	MTauKDn float32        `def:"11" desc:"falling-rate slope factor of the m time constant (mV)"`
	HVHalf  float32        `def:"-75.6" desc:"half-inactivation voltage of h (mV)"`
	HSlope  float32        `def:"10" desc:"inactivation slope factor (mV)"`
	HTau    float32        `def:"14" desc:"inactivation time constant (msec), voltage independent"`
	Q10     mech.Q10Params `view:"inline" desc:"temperature scaling of the kinetics"`
}

func (kp *KafParams) Defaults() {
	kp.MVHalf = -10
	kp.MSlope = -17.7
	kp.MTauMin = 0.2
	kp.MTauAmp = 1.1
	kp.MTauVh = -58
	kp.MTauKUp = 11
	kp.MTauKDn = 11
	kp.HVHalf = -75.6
	kp.HSlope = 10
	kp.HTau = 14
	kp.Q10.Q10 = 1.3
	kp.Q10.RefTemp = 22
}

// MInfTau is the activation rate law at the (possibly shifted) voltage.
func (kp *KafParams) MInfTau(v, ca float32) (inf, tau float32) {
	return Boltz(v, kp.MVHalf, kp.MSlope),
		TauBell(v, kp.MTauMin, kp.MTauAmp, kp.MTauVh, kp.MTauKUp, kp.MTauKDn)
}

// HInfTau is the inactivation rate law at the (possibly shifted) voltage.
func (kp *KafParams) HInfTau(v, ca float32) (inf, tau float32) {
	return Boltz(v, kp.HVHalf, kp.HSlope), kp.HTau
}

// Kaf is one fast A-type potassium channel instance at a compartment.
type Kaf struct {
	ChanBase
	ModShift float32 `desc:"shift of the voltage dependence (mV); -10 under cholinergic modulation in dMSNs, 0 otherwise"`
	Def      *KafParams
	M, H     mech.Gate
}

// NewKaf makes a kaf instance with the given definition (nil = standard
// defaults) and conductance density.
func NewKaf(def *KafParams, gbar float32) *Kaf {
	if def == nil {
		def = &KafParams{}
		def.Defaults()
	}
	ch := &Kaf{Def: def}
	ch.Nm = "kaf"
	ch.Gbar = gbar
	ch.Erev = -85
	ch.Mod.Defaults()
	return ch
}

// vm is the rate-law voltage: ModShift moves the voltage dependence, so a
// negative shift makes the channel gate as if the membrane were more
// depolarized.
func (ch *Kaf) vm(v float32) float32 { return v - ch.ModShift }

func (ch *Kaf) Init(v, ca, celsius float32) error {
	if err := ch.initBase(&ch.Def.Q10, celsius); err != nil {
		return err
	}
	vm := ch.vm(v)
	ch.M.Init(mech.InfTauFunc(ch.Def.MInfTau), vm, ca, ch.TempFact)
	ch.H.Init(mech.InfTauFunc(ch.Def.HInfTau), vm, ca, ch.TempFact)
	return nil
}

func (ch *Kaf) Step(v, ca, dt float32) (mech.Current, error) {
	if err := mech.CheckStep(ch.Nm, v, ca, dt); err != nil {
		return mech.Current{}, err
	}
	vm := ch.vm(v)
	ch.M.Step(mech.InfTauFunc(ch.Def.MInfTau), vm, ca, dt)
	ch.H.Step(mech.InfTauFunc(ch.Def.HInfTau), vm, ca, dt)
	m := ch.M.X
	g := ch.Gbar * m * m * ch.H.X * ch.Mod.Mod()
	return mech.Current{K: g * (v - ch.Erev)}, nil
}

func (ch *Kaf) SetParam(name string, val float32) error {
	if name == "ModShift" {
		ch.ModShift = val
		return nil
	}
	return ch.ChanBase.SetParam(name, val)
}
