// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import "github.com/msnlab/msnmech/mech"

// KmParams is the immutable definition of the M-type potassium channel
// (km, Kv7/KCNQ), axonal in the MSN model: a single slow non-inactivating
// activation gate, after Shen et al (2005).
type KmParams struct {
	MVHalf  float32        `def:"-30" desc:"half-activation voltage of m (mV)"`
	MSlope  float32        `def:"-9" desc:"activation slope factor (mV)"`
	MTauMin float32        `def:"6" desc:"floor of the m time constant (msec)"`
	MTauAmp float32        `def:"120" desc:"amplitude of the m time constant bell (msec)"`
	MTauVh  float32        `def:"-35" desc:"voltage of the m time constant peak (mV)"`
	MTauKUp float32        `def:"20" desc:"rising-rate slope factor of the m time constant (mV)"`
	MTauKDn float32        `def:"20" desc:"falling-rate slope factor of the m time constant (mV)"`
	Q10     mech.Q10Params `view:"inline" desc:"temperature scaling of the kinetics"`
}

func (kp *KmParams) Defaults() {
	kp.MVHalf = -30
	kp.MSlope = -9
	kp.MTauMin = 6
	kp.MTauAmp = 120
	kp.MTauVh = -35
	kp.MTauKUp = 20
	kp.MTauKDn = 20
	kp.Q10.Q10 = 2.3
	kp.Q10.RefTemp = 22
}

func (kp *KmParams) MInfTau(v, ca float32) (inf, tau float32) {
	return Boltz(v, kp.MVHalf, kp.MSlope),
		TauBell(v, kp.MTauMin, kp.MTauAmp, kp.MTauVh, kp.MTauKUp, kp.MTauKDn)
}

// Km is one M-current instance at a compartment.
type Km struct {
	ChanBase
	Def *KmParams
	M   mech.Gate
}

// NewKm makes a km instance with the given definition (nil = standard
// defaults) and conductance density.
func NewKm(def *KmParams, gbar float32) *Km {
	if def == nil {
		def = &KmParams{}
		def.Defaults()
	}
	ch := &Km{Def: def}
	ch.Nm = "km"
	ch.Gbar = gbar
	ch.Erev = -85
	ch.Mod.Defaults()
	return ch
}

func (ch *Km) Init(v, ca, celsius float32) error {
	if err := ch.initBase(&ch.Def.Q10, celsius); err != nil {
		return err
	}
	ch.M.Init(mech.InfTauFunc(ch.Def.MInfTau), v, ca, ch.TempFact)
	return nil
}

func (ch *Km) Step(v, ca, dt float32) (mech.Current, error) {
	if err := mech.CheckStep(ch.Nm, v, ca, dt); err != nil {
		return mech.Current{}, err
	}
	ch.M.Step(mech.InfTauFunc(ch.Def.MInfTau), v, ca, dt)
	g := ch.Gbar * ch.M.X * ch.Mod.Mod()
	return mech.Current{K: g * (v - ch.Erev)}, nil
}
