// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import "github.com/msnlab/msnmech/mech"

// KasParams is the immutable definition of the slow A-type potassium
// channel (kas, Kv1.2): activation m squared with incomplete inactivation,
// m^2 * (a*h + (1-a)), after Shen et al (2004).
type KasParams struct {
	MVHalf  float32        `def:"-27" desc:"half-activation voltage of m (mV)"`
	MSlope  float32        `def:"-16" desc:"activation slope factor (mV)"`
	MTauMin float32        `def:"0.9" desc:"floor of the m time constant (msec)"`
	MTauAmp float32        `def:"5" desc:"amplitude of the m time constant bell (msec)"`
	MTauVh  float32        `def:"-40" desc:"voltage of the m time constant peak (mV)"`
	MTauKUp float32        `def:"15" desc:"rising-rate slope factor of the m time constant (mV)"`
	MTauKDn float32        `def:"20" desc:"falling-rate slope factor of the m time constant (mV)"`
	HVHalf  float32        `def:"-33.5" desc:"half-inactivation voltage of h (mV)"`
	HSlope  float32        `def:"21.5" desc:"inactivation slope factor (mV)"`
	HTau    float32        `def:"1098" desc:"inactivation time constant (msec)"`
	HFrac   float32        `def:"0.8" desc:"fraction of the conductance subject to inactivation; the rest is non-inactivating"`
	Q10     mech.Q10Params `view:"inline" desc:"temperature scaling of the kinetics"`
}

func (kp *KasParams) Defaults() {
	kp.MVHalf = -27
	kp.MSlope = -16
	kp.MTauMin = 0.9
	kp.MTauAmp = 5
	kp.MTauVh = -40
	kp.MTauKUp = 15
	kp.MTauKDn = 20
	kp.HVHalf = -33.5
	kp.HSlope = 21.5
	kp.HTau = 1098
	kp.HFrac = 0.8
	kp.Q10.Q10 = 3
	kp.Q10.RefTemp = 22
}

func (kp *KasParams) MInfTau(v, ca float32) (inf, tau float32) {
	return Boltz(v, kp.MVHalf, kp.MSlope),
		TauBell(v, kp.MTauMin, kp.MTauAmp, kp.MTauVh, kp.MTauKUp, kp.MTauKDn)
}

func (kp *KasParams) HInfTau(v, ca float32) (inf, tau float32) {
	return Boltz(v, kp.HVHalf, kp.HSlope), kp.HTau
}

// Kas is one slow A-type potassium channel instance at a compartment.
type Kas struct {
	ChanBase
	Def  *KasParams
	M, H mech.Gate
}

// NewKas makes a kas instance with the given definition (nil = standard
// defaults) and conductance density.
func NewKas(def *KasParams, gbar float32) *Kas {
	if def == nil {
		def = &KasParams{}
		def.Defaults()
	}
	ch := &Kas{Def: def}
	ch.Nm = "kas"
	ch.Gbar = gbar
	ch.Erev = -85
	ch.Mod.Defaults()
	return ch
}

func (ch *Kas) Init(v, ca, celsius float32) error {
	if err := ch.initBase(&ch.Def.Q10, celsius); err != nil {
		return err
	}
	ch.M.Init(mech.InfTauFunc(ch.Def.MInfTau), v, ca, ch.TempFact)
	ch.H.Init(mech.InfTauFunc(ch.Def.HInfTau), v, ca, ch.TempFact)
	return nil
}

func (ch *Kas) Step(v, ca, dt float32) (mech.Current, error) {
	if err := mech.CheckStep(ch.Nm, v, ca, dt); err != nil {
		return mech.Current{}, err
	}
	ch.M.Step(mech.InfTauFunc(ch.Def.MInfTau), v, ca, dt)
	ch.H.Step(mech.InfTauFunc(ch.Def.HInfTau), v, ca, dt)
	m := ch.M.X
	a := ch.Def.HFrac
	g := ch.Gbar * m * m * (a*ch.H.X + (1 - a)) * ch.Mod.Mod()
	return mech.Current{K: g * (v - ch.Erev)}, nil
}
