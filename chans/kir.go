// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import "github.com/msnlab/msnmech/mech"

// KirParams is the immutable definition of the inward rectifier potassium
// channel (kir, Kir2): a single gate that opens with hyperpolarization
// (positive Boltzmann slope), setting the strongly polarized MSN down state.
type KirParams struct {
	MVHalf  float32        `def:"-82" desc:"half-activation voltage of m (mV)"`
	MSlope  float32        `def:"13" desc:"slope factor (mV); positive: open fraction falls with depolarization"`
	MTauMin float32        `def:"0.2" desc:"floor of the m time constant (msec)"`
	MTauAmp float32        `def:"1" desc:"amplitude of the m time constant bell (msec)"`
	MTauVh  float32        `def:"-80" desc:"voltage of the m time constant peak (mV)"`
	MTauKUp float32        `def:"20" desc:"rising-rate slope factor of the m time constant (mV)"`
	MTauKDn float32        `def:"30" desc:"falling-rate slope factor of the m time constant (mV)"`
	Q10     mech.Q10Params `view:"inline" desc:"temperature scaling; kir kinetics are treated as temperature insensitive"`
}

func (kp *KirParams) Defaults() {
	kp.MVHalf = -82
	kp.MSlope = 13
	kp.MTauMin = 0.2
	kp.MTauAmp = 1
	kp.MTauVh = -80
	kp.MTauKUp = 20
	kp.MTauKDn = 30
	kp.Q10.Defaults()
}

func (kp *KirParams) MInfTau(v, ca float32) (inf, tau float32) {
	return Boltz(v, kp.MVHalf, kp.MSlope),
		TauBell(v, kp.MTauMin, kp.MTauAmp, kp.MTauVh, kp.MTauKUp, kp.MTauKDn)
}

// Kir is one inward rectifier instance at a compartment.
type Kir struct {
	ChanBase
	Def *KirParams
	M   mech.Gate
}

// NewKir makes a kir instance with the given definition (nil = standard
// defaults) and conductance density.
func NewKir(def *KirParams, gbar float32) *Kir {
	if def == nil {
		def = &KirParams{}
		def.Defaults()
	}
	ch := &Kir{Def: def}
	ch.Nm = "kir"
	ch.Gbar = gbar
	ch.Erev = -85
	ch.Mod.Defaults()
	return ch
}

func (ch *Kir) Init(v, ca, celsius float32) error {
	if err := ch.initBase(&ch.Def.Q10, celsius); err != nil {
		return err
	}
	ch.M.Init(mech.InfTauFunc(ch.Def.MInfTau), v, ca, ch.TempFact)
	return nil
}

func (ch *Kir) Step(v, ca, dt float32) (mech.Current, error) {
	if err := mech.CheckStep(ch.Nm, v, ca, dt); err != nil {
		return mech.Current{}, err
	}
	ch.M.Step(mech.InfTauFunc(ch.Def.MInfTau), v, ca, dt)
	g := ch.Gbar * ch.M.X * ch.Mod.Mod()
	return mech.Current{K: g * (v - ch.Erev)}, nil
}
