// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import (
	"github.com/chewxy/math32"

	"github.com/msnlab/msnmech/mech"
)

// SKParams is the immutable definition of the small-conductance
// calcium-activated potassium channel (sk, SK2/KCa2): purely
// calcium-gated, a Hill function of intracellular calcium with a fixed
// activation time constant, after Koehler et al (1996) / Maylie et al
// (2004).  Voltage independent.
type SKParams struct {
	EC50 float32        `def:"0.00035" desc:"calcium concentration of half activation (mM)"`
	Hill float32        `def:"4" desc:"Hill coefficient of the calcium dependence"`
	Tau  float32        `def:"4.9" desc:"activation time constant (msec)"`
	Q10  mech.Q10Params `view:"inline" desc:"temperature scaling; sk kinetics are treated as temperature insensitive"`
}

func (sp *SKParams) Defaults() {
	sp.EC50 = 0.00035
	sp.Hill = 4
	sp.Tau = 4.9
	sp.Q10.Defaults()
}

// OInfTau is the calcium-dependent open fraction rate law; voltage is
// ignored.
func (sp *SKParams) OInfTau(v, ca float32) (inf, tau float32) {
	cn := math32.Pow(ca, sp.Hill)
	return cn / (cn + math32.Pow(sp.EC50, sp.Hill)), sp.Tau
}

// SK is one sk channel instance at a compartment.
type SK struct {
	ChanBase
	Def *SKParams
	O   mech.Gate
}

// NewSK makes an sk instance with the given definition (nil = standard
// defaults) and conductance density.
func NewSK(def *SKParams, gbar float32) *SK {
	if def == nil {
		def = &SKParams{}
		def.Defaults()
	}
	ch := &SK{Def: def}
	ch.Nm = "sk"
	ch.Gbar = gbar
	ch.Erev = -85
	ch.Mod.Defaults()
	return ch
}

func (ch *SK) Init(v, ca, celsius float32) error {
	if err := ch.initBase(&ch.Def.Q10, celsius); err != nil {
		return err
	}
	ch.O.Init(mech.InfTauFunc(ch.Def.OInfTau), v, ca, ch.TempFact)
	return nil
}

func (ch *SK) Step(v, ca, dt float32) (mech.Current, error) {
	if err := mech.CheckStep(ch.Nm, v, ca, dt); err != nil {
		return mech.Current{}, err
	}
	ch.O.Step(mech.InfTauFunc(ch.Def.OInfTau), v, ca, dt)
	g := ch.Gbar * ch.O.X * ch.Mod.Mod()
	return mech.Current{K: g * (v - ch.Erev)}, nil
}
