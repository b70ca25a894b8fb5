// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chans implements the voltage- and calcium-gated ion channel
mechanisms of the striatal MSN model: the sodium channel naf, the potassium
channels kaf, kas, kdr, kir, km, the calcium-activated potassium channels
sk and bk, and the calcium channels cal12, cal13, can, car, cav32, cav33
(which use GHK flux with a permeability density rather than an ohmic
conductance).

Each channel type has an immutable Params definition shared across all its
instances (the closed-form rate laws and their constants), and an instance
type binding that definition to one compartment, with the per-compartment
density, neuromodulation, gating state, and the temperature factor fixed at
Init.  All instance types implement mech.Mechanism.
*/
package chans

import (
	"github.com/chewxy/math32"

	"github.com/msnlab/msnmech/mech"
	"github.com/msnlab/msnmech/neuromod"
)

// Boltz is the Boltzmann steady state 1/(1 + exp((v - vhalf)/slope)).
// A negative slope gives a fraction rising with depolarization (activation
// gates), a positive slope a falling one (inactivation gates).
func Boltz(v, vhalf, slope float32) float32 {
	return 1 / (1 + math32.Exp((v-vhalf)/slope))
}

// TauBell is the voltage-dependent time constant
// tmin + tamp / (exp((v-vhalf)/kup) + exp(-(v-vhalf)/kdn)),
// i.e. 1/(alpha + beta) for independent exponential rising and falling
// rates with their own slope factors, plus a floor tmin.
func TauBell(v, tmin, tamp, vhalf, kup, kdn float32) float32 {
	return tmin + tamp/(math32.Exp((v-vhalf)/kup)+math32.Exp(-(v-vhalf)/kdn))
}

// ChanBase is the per-instance state common to all channel mechanisms.
type ChanBase struct {
	Nm       string             `desc:"mechanism name, e.g. naf"`
	Cls      string             `desc:"compartment class, e.g. soma, dend, axon, for parameter sheet selectors"`
	Gbar     float32            `desc:"density at this compartment: maximal conductance (S/cm2), or maximal permeability (cm/s) for the GHK calcium channels"`
	Erev     float32            `desc:"reversal potential (mV); unused by the GHK calcium channels"`
	Mod      neuromod.ModParams `view:"inline" desc:"neuromodulation of the conductance"`
	TempFact float32            `view:"-" desc:"Q10 temperature factor, fixed at Init"`
	Celsius  float32            `view:"-" desc:"simulation temperature, fixed at Init"`
}

// Name returns the mechanism name, matched by #name parameter selectors.
func (cb *ChanBase) Name() string { return cb.Nm }

// Class returns the compartment class, matched by .class parameter
// selectors.
func (cb *ChanBase) Class() string { return cb.Cls }

// TypeName returns the type category for parameter paths.
func (cb *ChanBase) TypeName() string { return "Mech" }

// SetClass sets the compartment class.
func (cb *ChanBase) SetClass(cls string) { cb.Cls = cls }

// initBase validates the static configuration and fixes the temperature
// scaling for the run.
func (cb *ChanBase) initBase(q10 *mech.Q10Params, celsius float32) error {
	if cb.Gbar < 0 {
		return &mech.ConfigError{Mech: cb.Nm, Param: "Gbar", Msg: "negative density"}
	}
	cb.Celsius = celsius
	cb.TempFact = q10.Factor(celsius)
	return nil
}

// setBase sets the channel parameters common to all types, returning false
// if the name is not one of them.
func (cb *ChanBase) setBase(name string, val float32) bool {
	switch name {
	case "Gbar":
		cb.Gbar = val
	case "Erev":
		cb.Erev = val
	default:
		return cb.Mod.SetParam(name, val)
	}
	return true
}

// errParam is the ConfigError for an unknown parameter name: table values
// must never be silently dropped.
func (cb *ChanBase) errParam(name string) error {
	return &mech.ConfigError{Mech: cb.Nm, Param: name, Msg: "unknown parameter"}
}

// SetParam sets one parameter by name (Gbar, Erev, or a modulation
// parameter).  Channel types with extra settable parameters override this.
func (cb *ChanBase) SetParam(name string, val float32) error {
	if cb.setBase(name, val) {
		return nil
	}
	return cb.errParam(name)
}

// Names lists all channel mechanism names, in the conventional order.
var Names = []string{
	"naf", "kaf", "kas", "kdr", "kir", "km", "sk", "bk",
	"cal12", "cal13", "can", "car", "cav32", "cav33",
}

// New constructs a channel instance of the given mechanism name with its
// standard definition and the given density, or nil for an unknown name.
func New(name string, gbar float32) mech.Mechanism {
	switch name {
	case "naf":
		return NewNaf(nil, gbar)
	case "kaf":
		return NewKaf(nil, gbar)
	case "kas":
		return NewKas(nil, gbar)
	case "kdr":
		return NewKdr(nil, gbar)
	case "kir":
		return NewKir(nil, gbar)
	case "km":
		return NewKm(nil, gbar)
	case "sk":
		return NewSK(nil, gbar)
	case "bk":
		return NewBK(nil, gbar)
	case "cal12":
		return NewCaL12(nil, gbar)
	case "cal13":
		return NewCaL13(nil, gbar)
	case "can":
		return NewCaN(nil, gbar)
	case "car":
		return NewCaR(nil, gbar)
	case "cav32":
		return NewCav32(nil, gbar)
	case "cav33":
		return NewCav33(nil, gbar)
	}
	return nil
}
