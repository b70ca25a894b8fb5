// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import "github.com/msnlab/msnmech/mech"

// CaTParams is the immutable definition of a low-threshold T-type calcium
// channel (cav32 = Cav3.2 after McRory et al (2001), cav33 = Cav3.3 with
// slower kinetics): activation m times inactivation h, carrying current by
// GHK flux.  T-type channels are restricted to distal dendrites in the MSN
// model.
type CaTParams struct {
	MVHalf  float32        `def:"-44.1,-54" desc:"half-activation voltage of m (mV); -44.1 for Cav3.2, -54 for Cav3.3"`
	MSlope  float32        `def:"-5.5,-6.5" desc:"activation slope factor (mV)"`
	MTauMin float32        `def:"1.5,4" desc:"floor of the m time constant (msec)"`
	MTauAmp float32        `def:"8,25" desc:"amplitude of the m time constant bell (msec)"`
	MTauVh  float32        `def:"-60" desc:"voltage of the m time constant peak (mV)"`
	MTauKUp float32        `def:"20" desc:"rising-rate slope factor of the m time constant (mV)"`
	MTauKDn float32        `def:"16" desc:"falling-rate slope factor of the m time constant (mV)"`
	HVHalf  float32        `def:"-72.8,-78" desc:"half-inactivation voltage of h (mV)"`
	HSlope  float32        `def:"4.7,5.5" desc:"inactivation slope factor (mV)"`
	HTauMin float32        `def:"10,50" desc:"floor of the h time constant (msec)"`
	HTauAmp float32        `def:"60,250" desc:"amplitude of the h time constant bell (msec)"`
	HTauVh  float32        `def:"-70" desc:"voltage of the h time constant peak (mV)"`
	HTauKUp float32        `def:"20" desc:"rising-rate slope factor of the h time constant (mV)"`
	HTauKDn float32        `def:"16" desc:"falling-rate slope factor of the h time constant (mV)"`
	Cao     float32        `def:"2" desc:"extracellular calcium concentration (mM)"`
	Q10     mech.Q10Params `view:"inline" desc:"temperature scaling of the kinetics"`
}

// Defaults sets the Cav3.2 parameters.
func (cp *CaTParams) Defaults() {
	cp.MVHalf = -44.1
	cp.MSlope = -5.5
	cp.MTauMin = 1.5
	cp.MTauAmp = 8
	cp.MTauVh = -60
	cp.MTauKUp = 20
	cp.MTauKDn = 16
	cp.HVHalf = -72.8
	cp.HSlope = 4.7
	cp.HTauMin = 10
	cp.HTauAmp = 60
	cp.HTauVh = -70
	cp.HTauKUp = 20
	cp.HTauKDn = 16
	cp.Cao = 2
	cp.Q10.Q10 = 3
	cp.Q10.RefTemp = 22
}

// Defaults33 sets the slower Cav3.3 parameters.
func (cp *CaTParams) Defaults33() {
	cp.Defaults()
	cp.MVHalf = -54
	cp.MSlope = -6.5
	cp.MTauMin = 4
	cp.MTauAmp = 25
	cp.HVHalf = -78
	cp.HSlope = 5.5
	cp.HTauMin = 50
	cp.HTauAmp = 250
}

func (cp *CaTParams) MInfTau(v, ca float32) (inf, tau float32) {
	return Boltz(v, cp.MVHalf, cp.MSlope),
		TauBell(v, cp.MTauMin, cp.MTauAmp, cp.MTauVh, cp.MTauKUp, cp.MTauKDn)
}

func (cp *CaTParams) HInfTau(v, ca float32) (inf, tau float32) {
	return Boltz(v, cp.HVHalf, cp.HSlope),
		TauBell(v, cp.HTauMin, cp.HTauAmp, cp.HTauVh, cp.HTauKUp, cp.HTauKDn)
}

// CaT is one T-type calcium channel instance at a compartment.
type CaT struct {
	ChanBase
	Def  *CaTParams
	M, H mech.Gate
}

// NewCav32 makes a Cav3.2 instance with the given definition (nil =
// standard defaults) and permeability density.
func NewCav32(def *CaTParams, pbar float32) *CaT {
	if def == nil {
		def = &CaTParams{}
		def.Defaults()
	}
	ch := &CaT{Def: def}
	ch.Nm = "cav32"
	ch.Gbar = pbar
	ch.Mod.Defaults()
	return ch
}

// NewCav33 makes a Cav3.3 instance with the given definition (nil =
// standard defaults) and permeability density.
func NewCav33(def *CaTParams, pbar float32) *CaT {
	if def == nil {
		def = &CaTParams{}
		def.Defaults33()
	}
	ch := &CaT{Def: def}
	ch.Nm = "cav33"
	ch.Gbar = pbar
	ch.Mod.Defaults()
	return ch
}

func (ch *CaT) Init(v, ca, celsius float32) error {
	if err := ch.initBase(&ch.Def.Q10, celsius); err != nil {
		return err
	}
	ch.M.Init(mech.InfTauFunc(ch.Def.MInfTau), v, ca, ch.TempFact)
	ch.H.Init(mech.InfTauFunc(ch.Def.HInfTau), v, ca, ch.TempFact)
	return nil
}

func (ch *CaT) Step(v, ca, dt float32) (mech.Current, error) {
	if err := mech.CheckStep(ch.Nm, v, ca, dt); err != nil {
		return mech.Current{}, err
	}
	ch.M.Step(mech.InfTauFunc(ch.Def.MInfTau), v, ca, dt)
	ch.H.Step(mech.InfTauFunc(ch.Def.HInfTau), v, ca, dt)
	p := ch.Gbar * ch.M.X * ch.H.X * ch.Mod.Mod()
	return mech.Current{Ca: p * GHK(v, ca, ch.Def.Cao, ch.Celsius)}, nil
}
