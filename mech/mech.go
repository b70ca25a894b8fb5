// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package mech provides the generic kinetics engine shared by all membrane
mechanism types in the MSN model: rate-law interfaces, first-order gating
state variables with steady-state initialization and exact exponential
integration, Q10 temperature scaling, and ion-pool current contributions.

A mechanism instance binds one immutable mechanism definition (the shared
rate-law parameters) to one simulated location, with its own state variables
and per-location parameter overrides (e.g. conductance density).  The outer
compartmental driver calls Init once before the first step, then Step once
per timestep with the local membrane voltage and calcium concentration.
Instances are independent of each other within a timestep: Step reads only
the instance's own state and the supplied voltage / calcium, so instances
can be stepped in parallel for a fixed dt.
*/
package mech

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Mechanism is the driver-facing contract for one mechanism instance bound
// to a compartment or synapse site.
type Mechanism interface {
	// Init sets all state variables to their steady state at the given
	// membrane voltage (mV) and intracellular calcium (mM), and fixes the
	// temperature scaling of the kinetics for the run (celsius is the
	// simulation temperature).  Must be called before the first Step.
	Init(v, ca, celsius float32) error

	// Step advances the instance state by dt msec at the given voltage and
	// calcium, and returns the resulting membrane current contribution
	// split by ion pool.  dt must be > 0 and v, ca finite.
	Step(v, ca, dt float32) (Current, error)
}

// EventReceiver is implemented by event-driven (synaptic) mechanisms in
// addition to Mechanism.  Events for one instance must be delivered in
// nondecreasing time order; multiple events within one timestep are applied
// in arrival order, each by direct state increment, before the next Step.
type EventReceiver interface {
	DeliverEvent(weight, time float32) error
}

// Current is one mechanism's membrane current contribution for a step,
// split by ion pool.  The pool fractions of a given mechanism type are
// fixed at construction and sum to 1, so Total is always the full current.
// Outward (hyperpolarizing) current is positive, per the usual convention.
type Current struct {
	Na float32 `desc:"sodium (Na+) carried current"`
	K  float32 `desc:"potassium (K+) carried current"`
	Ca float32 `desc:"calcium (Ca2+) carried current"`
	Cl float32 `desc:"chloride (Cl-) carried current"`
	Ns float32 `desc:"nonspecific (mixed cation) current"`
}

// Total returns the summed current over all ion pools.
func (cu *Current) Total() float32 {
	return cu.Na + cu.K + cu.Ca + cu.Cl + cu.Ns
}

// Add accumulates the other contribution into this one, pool by pool.
func (cu *Current) Add(oth Current) {
	cu.Na += oth.Na
	cu.K += oth.K
	cu.Ca += oth.Ca
	cu.Cl += oth.Cl
	cu.Ns += oth.Ns
}

// ConfigError is an invalid static parameter detected when a mechanism
// instance is constructed or (re)configured: a decay time constant not
// greater than the rise time constant, a negative conductance density, or a
// required table parameter that is missing.  The instance must not be used.
type ConfigError struct {
	Mech  string // mechanism name
	Param string // offending parameter
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("mech %s: parameter %s: %s", e.Mech, e.Param, e.Msg)
}

// ArgError is an invalid runtime argument passed to Step or DeliverEvent:
// a non-positive timestep, a non-finite voltage or calcium, or a synaptic
// event delivered out of time order.  It is surfaced to the caller and
// never retried internally.
type ArgError struct {
	Mech string
	Arg  string
	Val  float32
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("mech %s: invalid %s: %g", e.Mech, e.Arg, e.Val)
}

// CheckStep validates the common Step arguments for the named mechanism,
// returning an ArgError for non-positive dt or non-finite v / ca.
func CheckStep(mech string, v, ca, dt float32) error {
	if !(dt > 0) { // NaN fails too
		return &ArgError{Mech: mech, Arg: "dt", Val: dt}
	}
	if math32.IsNaN(v) || math32.IsInf(v, 0) {
		return &ArgError{Mech: mech, Arg: "v", Val: v}
	}
	if math32.IsNaN(ca) || math32.IsInf(ca, 0) {
		return &ArgError{Mech: mech, Arg: "ca", Val: ca}
	}
	return nil
}

// ParamSetter is implemented by mechanism types that expose named parameter
// setters for the model builder (conductance / permeability density, time
// constants, reversal potentials, modulation).  Unknown names are a
// ConfigError: table values must never be silently dropped.
type ParamSetter interface {
	SetParam(name string, val float32) error
}
