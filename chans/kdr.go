// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import "github.com/msnlab/msnmech/mech"

// KdrParams is the immutable definition of the delayed rectifier potassium
// channel (kdr, Kv2): a single non-inactivating activation gate.
type KdrParams struct {
	MVHalf  float32        `def:"-13.5" desc:"half-activation voltage of m (mV)"`
	MSlope  float32        `def:"-11.8" desc:"activation slope factor (mV)"`
	MTauMin float32        `def:"0.6" desc:"floor of the m time constant (msec)"`
	MTauAmp float32        `def:"15" desc:"amplitude of the m time constant bell (msec)"`
	MTauVh  float32        `def:"-40" desc:"voltage of the m time constant peak (mV)"`
	MTauKUp float32        `def:"20" desc:"rising-rate slope factor of the m time constant (mV)"`
	MTauKDn float32        `def:"20" desc:"falling-rate slope factor of the m time constant (mV)"`
	Q10     mech.Q10Params `view:"inline" desc:"temperature scaling of the kinetics"`
}

func (kp *KdrParams) Defaults() {
	kp.MVHalf = -13.5
	kp.MSlope = -11.8
	kp.MTauMin = 0.6
	kp.MTauAmp = 15
	kp.MTauVh = -40
	kp.MTauKUp = 20
	kp.MTauKDn = 20
	kp.Q10.Q10 = 3
	kp.Q10.RefTemp = 22
}

func (kp *KdrParams) MInfTau(v, ca float32) (inf, tau float32) {
	return Boltz(v, kp.MVHalf, kp.MSlope),
		TauBell(v, kp.MTauMin, kp.MTauAmp, kp.MTauVh, kp.MTauKUp, kp.MTauKDn)
}

// Kdr is one delayed rectifier instance at a compartment.
type Kdr struct {
	ChanBase
	Def *KdrParams
	M   mech.Gate
}

// NewKdr makes a kdr instance with the given definition (nil = standard
// defaults) and conductance density.
func NewKdr(def *KdrParams, gbar float32) *Kdr {
	if def == nil {
		def = &KdrParams{}
		def.Defaults()
	}
	ch := &Kdr{Def: def}
	ch.Nm = "kdr"
	ch.Gbar = gbar
	ch.Erev = -85
	ch.Mod.Defaults()
	return ch
}

func (ch *Kdr) Init(v, ca, celsius float32) error {
	if err := ch.initBase(&ch.Def.Q10, celsius); err != nil {
		return err
	}
	ch.M.Init(mech.InfTauFunc(ch.Def.MInfTau), v, ca, ch.TempFact)
	return nil
}

func (ch *Kdr) Step(v, ca, dt float32) (mech.Current, error) {
	if err := mech.CheckStep(ch.Nm, v, ca, dt); err != nil {
		return mech.Current{}, err
	}
	ch.M.Step(mech.InfTauFunc(ch.Def.MInfTau), v, ca, dt)
	g := ch.Gbar * ch.M.X * ch.Mod.Mod()
	return mech.Current{K: g * (v - ch.Erev)}, nil
}
