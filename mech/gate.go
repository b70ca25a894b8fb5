// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import "github.com/chewxy/math32"

// InfTauer is a rate law expressed directly as a steady-state value and a
// time constant: x relaxes toward Inf with time constant Tau at the given
// voltage (mV) and calcium (mM).  Laws that do not depend on calcium ignore
// the ca argument.
type InfTauer interface {
	InfTau(v, ca float32) (inf, tau float32)
}

// AlphaBetaer is a rate law expressed as forward (alpha) and backward
// (beta) rate constants per msec.
type AlphaBetaer interface {
	AlphaBeta(v, ca float32) (alpha, beta float32)
}

// InfTauFmAlphaBeta converts forward / backward rate constants to the
// equivalent steady state and time constant: inf = a/(a+b), tau = 1/(a+b).
func InfTauFmAlphaBeta(alpha, beta float32) (inf, tau float32) {
	s := alpha + beta
	return alpha / s, 1 / s
}

// InfTauFunc adapts an ordinary function to the InfTauer interface, so that
// rate-law methods on parameter structs can be passed to Gate directly.
type InfTauFunc func(v, ca float32) (inf, tau float32)

func (f InfTauFunc) InfTau(v, ca float32) (inf, tau float32) { return f(v, ca) }

// AlphaBetaFunc adapts an ordinary function to the AlphaBetaer interface.
type AlphaBetaFunc func(v, ca float32) (alpha, beta float32)

func (f AlphaBetaFunc) AlphaBeta(v, ca float32) (alpha, beta float32) { return f(v, ca) }

// InfTau returns the InfTauer view of an alpha / beta rate law.
func (f AlphaBetaFunc) InfTau(v, ca float32) (inf, tau float32) {
	return InfTauFmAlphaBeta(f(v, ca))
}

// Gate is one first-order gating state variable x, the fraction of channel
// subunits in the open / permissive configuration, evolving per
// x' = (inf - x) / tau with inf and tau recomputed from voltage and calcium
// before every step.
type Gate struct {
	X        float32 `desc:"current gating fraction, in [0,1] for any valid rate law"`
	Inf      float32 `inactive:"+" desc:"steady-state value at the last evaluated voltage / calcium"`
	Tau      float32 `inactive:"+" desc:"time constant (msec) at the last evaluated voltage / calcium, after temperature scaling"`
	TempFact float32 `view:"-" desc:"temperature factor dividing tau, fixed at Init"`
}

// Init sets the gate to its steady state at the given voltage and calcium,
// and fixes the temperature factor (rate speedup) for the run.  A zero or
// negative factor is treated as no temperature sensitivity (factor 1).
func (g *Gate) Init(law InfTauer, v, ca, tempFact float32) {
	if tempFact <= 0 {
		tempFact = 1
	}
	g.TempFact = tempFact
	g.Inf, g.Tau = law.InfTau(v, ca)
	g.Tau /= g.TempFact
	g.X = g.Inf
}

// Step advances the gate by dt msec using the exponential update
// x += (1 - exp(-dt/tau)) * (inf - x), the exact integral of the kinetics
// linearized over the step.  It is unconditionally stable and keeps x in
// [0,1] for any dt > 0 and any rate law with inf in [0,1], without clamping.
func (g *Gate) Step(law InfTauer, v, ca, dt float32) {
	g.Inf, g.Tau = law.InfTau(v, ca)
	g.Tau /= g.TempFact
	g.X += (1 - math32.Exp(-dt/g.Tau)) * (g.Inf - g.X)
}

// Q10Params models the temperature sensitivity of mechanism kinetics as a
// Q10 factor: rates scale by Q10 per 10 degC above the reference
// temperature at which the rate parameters were measured.  The factor is
// computed once per instance at Init (temperature is constant through a
// run) and divides every temperature-sensitive time constant.
type Q10Params struct {
	Q10     float32 `def:"1,2,3" desc:"fold change in kinetic rates per 10 degC; 0 or 1 = not temperature sensitive"`
	RefTemp float32 `def:"22,35" desc:"reference temperature (degC) at which the rate parameters were measured"`
}

func (qp *Q10Params) Defaults() {
	qp.Q10 = 1
	qp.RefTemp = 35
}

// Factor returns the rate scaling factor q10^((celsius - ref)/10) at the
// given simulation temperature.  Mechanisms without temperature sensitivity
// (Q10 of 0 or 1) get factor 1.
func (qp *Q10Params) Factor(celsius float32) float32 {
	if qp.Q10 <= 0 || qp.Q10 == 1 {
		return 1
	}
	return math32.Pow(qp.Q10, (celsius-qp.RefTemp)/10)
}
