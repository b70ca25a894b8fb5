// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import (
	"github.com/chewxy/math32"

	"github.com/msnlab/msnmech/mech"
)

// BKParams is the immutable definition of the large-conductance
// calcium- and voltage-activated potassium channel (bk, KCa1.1), using the
// two-state Moczydlowski & Latorre (1983) scheme: the opening rate is
// alpha = abar * ca / (ca + k1 * exp(-2 d1 F v / RT)) and the closing rate
// beta = bbar * k2e / (k2e + ca) with k2e = k2 * exp(-2 d2 F v / RT), so
// both calcium binding steps feel a fraction (d1, d2) of the membrane field.
type BKParams struct {
	Abar float32        `def:"0.48" desc:"maximal opening rate (1/msec)"`
	Bbar float32        `def:"0.28" desc:"maximal closing rate (1/msec)"`
	K1   float32        `def:"0.18" desc:"calcium dissociation constant of the opening step at 0 mV (mM)"`
	K2   float32        `def:"0.011" desc:"calcium dissociation constant of the closing step at 0 mV (mM)"`
	D1   float32        `def:"0.84" desc:"fraction of the membrane field felt by the opening step"`
	D2   float32        `def:"1" desc:"fraction of the membrane field felt by the closing step"`
	Q10  mech.Q10Params `view:"inline" desc:"temperature scaling; the field term already carries the explicit temperature dependence"`
}

func (bp *BKParams) Defaults() {
	bp.Abar = 0.48
	bp.Bbar = 0.28
	bp.K1 = 0.18
	bp.K2 = 0.011
	bp.D1 = 0.84
	bp.D2 = 1
	bp.Q10.Defaults()
}

// AlphaBeta is the joint calcium / voltage rate law at the given
// temperature (degC).
func (bp *BKParams) AlphaBeta(v, ca, celsius float32) (alpha, beta float32) {
	// z = -2Fv/RT with v in mV; exp(d*z) is the voltage dependence of
	// the calcium dissociation constants
	z := -2 * faraday * v * 1e-3 / (gasConst * (celsius + kelvinZero))
	k1e := bp.K1 * math32.Exp(bp.D1*z)
	k2e := bp.K2 * math32.Exp(bp.D2*z)
	alpha = bp.Abar * ca / (ca + k1e)
	beta = bp.Bbar * k2e / (k2e + ca)
	return
}

// BK is one bk channel instance at a compartment.
type BK struct {
	ChanBase
	Def *BKParams
	O   mech.Gate
}

// NewBK makes a bk instance with the given definition (nil = standard
// defaults) and conductance density.
func NewBK(def *BKParams, gbar float32) *BK {
	if def == nil {
		def = &BKParams{}
		def.Defaults()
	}
	ch := &BK{Def: def}
	ch.Nm = "bk"
	ch.Gbar = gbar
	ch.Erev = -85
	ch.Mod.Defaults()
	return ch
}

// oInfTau is the open-fraction rate law, bound to the instance because the
// field term needs the simulation temperature fixed at Init.
func (ch *BK) oInfTau(v, ca float32) (inf, tau float32) {
	return mech.InfTauFmAlphaBeta(ch.Def.AlphaBeta(v, ca, ch.Celsius))
}

func (ch *BK) Init(v, ca, celsius float32) error {
	if err := ch.initBase(&ch.Def.Q10, celsius); err != nil {
		return err
	}
	ch.O.Init(mech.InfTauFunc(ch.oInfTau), v, ca, ch.TempFact)
	return nil
}

func (ch *BK) Step(v, ca, dt float32) (mech.Current, error) {
	if err := mech.CheckStep(ch.Nm, v, ca, dt); err != nil {
		return mech.Current{}, err
	}
	ch.O.Step(mech.InfTauFunc(ch.oInfTau), v, ca, dt)
	g := ch.Gbar * ch.O.X * ch.Mod.Mod()
	return mech.Current{K: g * (v - ch.Erev)}, nil
}
