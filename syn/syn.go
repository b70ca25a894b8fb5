// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package syn implements the event-driven synaptic mechanisms of the striatal
MSN model: ampa, gaba, nmda, and the co-released glutamate synapse glut
(AMPA + NMDA from one presynaptic event).

All of them are dual-exponential conductance kernels: a delivered event of
weight w produces a conductance transient w * gbar * (exp(-t/tau2) -
exp(-t/tau1)) / factor, where factor normalizes the transient so a unit
event peaks at exactly gbar.  The kernel state is two exponentials advanced
in closed form each Step, so events simply add to both states and arbitrary
numbers of overlapping events superpose without extra bookkeeping.
*/
package syn

import (
	"github.com/chewxy/math32"

	"github.com/msnlab/msnmech/mech"
	"github.com/msnlab/msnmech/neuromod"
)

// KernelParams is the immutable definition of a dual-exponential
// conductance kernel: the two time constants, the reversal potential, and
// the derived peak time and normalization factor.  Call Update after
// setting the time constants.
type KernelParams struct {
	Tau1   float32        `desc:"rise time constant (msec); must be < Tau2"`
	Tau2   float32        `desc:"decay time constant (msec)"`
	Erev   float32        `desc:"reversal potential (mV)"`
	TPeak  float32        `view:"-" desc:"time of the kernel peak after an event (msec), computed by Update"`
	Factor float32        `view:"-" desc:"normalization so a unit event peaks at exactly 1, computed by Update"`
	Q10    mech.Q10Params `view:"inline" desc:"temperature scaling of the kinetics"`
}

// Update computes the peak time and normalization factor from the time
// constants, returning a ConfigError for the given mechanism name if the
// time constants are not ordered Tau1 < Tau2 (the dual-exponential form
// degenerates at Tau1 == Tau2).
func (kp *KernelParams) Update(mech_ string) error {
	if !(kp.Tau2 > kp.Tau1) || !(kp.Tau1 > 0) {
		return &mech.ConfigError{Mech: mech_, Param: "Tau1", Msg: "time constants must satisfy 0 < Tau1 < Tau2"}
	}
	kp.TPeak = kp.Tau1 * kp.Tau2 / (kp.Tau2 - kp.Tau1) * math32.Log(kp.Tau2/kp.Tau1)
	kp.Factor = 1 / (math32.Exp(-kp.TPeak/kp.Tau2) - math32.Exp(-kp.TPeak/kp.Tau1))
	return nil
}

// Kernel is the live state of one dual-exponential kernel: the rising and
// falling exponentials, advanced exactly each Step.  The normalized
// conductance is G = B - A, in [0, peak-normalized units of the summed
// event weights].
type Kernel struct {
	A        float32 `desc:"rising exponential state (the fast Tau1 component)"`
	B        float32 `desc:"falling exponential state (the slow Tau2 component)"`
	TempFact float32 `view:"-" desc:"Q10 temperature factor, fixed at Init: scales the rate of both exponentials"`
	LastT    float32 `view:"-" desc:"delivery time of the most recent event (msec); events must arrive in nondecreasing time"`
}

// Init resets the kernel to zero conductance with the given temperature
// factor (<= 0 = no scaling).
func (k *Kernel) Init(tempFact float32) {
	if tempFact <= 0 {
		tempFact = 1
	}
	k.A = 0
	k.B = 0
	k.TempFact = tempFact
	k.LastT = math32.Inf(-1)
}

// Step advances both exponentials by dt (msec) in closed form.  The
// temperature factor rescales time, which speeds the kinetics without
// disturbing the peak normalization.
func (k *Kernel) Step(kp *KernelParams, dt float32) {
	dt *= k.TempFact
	k.A *= math32.Exp(-dt / kp.Tau1)
	k.B *= math32.Exp(-dt / kp.Tau2)
}

// Deliver adds one presynaptic event of the given weight at the given time
// (msec).  Times must be nondecreasing across calls; the weight must be
// finite.  The normalization factor makes a unit event peak at G == 1.
func (k *Kernel) Deliver(mech_ string, kp *KernelParams, weight, time float32) error {
	if math32.IsNaN(weight) || math32.IsInf(weight, 0) {
		return &mech.ArgError{Mech: mech_, Arg: "weight", Val: weight}
	}
	if math32.IsNaN(time) || time < k.LastT {
		return &mech.ArgError{Mech: mech_, Arg: "time", Val: time}
	}
	k.LastT = time
	w := weight * kp.Factor
	k.A += w
	k.B += w
	return nil
}

// G returns the current normalized conductance.
func (k *Kernel) G() float32 { return k.B - k.A }

// SynBase is the per-instance state common to all synaptic mechanisms.
type SynBase struct {
	Nm       string             `desc:"mechanism name, e.g. ampa"`
	Cls      string             `desc:"compartment class, e.g. soma, dend, axon, for parameter sheet selectors"`
	Gbar     float32            `desc:"peak conductance of a unit-weight event (uS)"`
	Erev     float32            `desc:"reversal potential (mV)"`
	Mod      neuromod.ModParams `view:"inline" desc:"neuromodulation of the conductance"`
	TempFact float32            `view:"-" desc:"Q10 temperature factor, fixed at Init"`
	Celsius  float32            `view:"-" desc:"simulation temperature, fixed at Init"`
}

// Name returns the mechanism name, matched by #name parameter selectors.
func (sb *SynBase) Name() string { return sb.Nm }

// Class returns the compartment class, matched by .class parameter
// selectors.
func (sb *SynBase) Class() string { return sb.Cls }

// TypeName returns the type category for parameter paths.
func (sb *SynBase) TypeName() string { return "Mech" }

// SetClass sets the compartment class.
func (sb *SynBase) SetClass(cls string) { sb.Cls = cls }

func (sb *SynBase) initBase(q10 *mech.Q10Params, celsius float32) error {
	if sb.Gbar < 0 {
		return &mech.ConfigError{Mech: sb.Nm, Param: "Gbar", Msg: "negative density"}
	}
	sb.Celsius = celsius
	sb.TempFact = q10.Factor(celsius)
	return nil
}

func (sb *SynBase) setBase(name string, val float32) bool {
	switch name {
	case "Gbar":
		sb.Gbar = val
	case "Erev":
		sb.Erev = val
	default:
		return sb.Mod.SetParam(name, val)
	}
	return true
}

func (sb *SynBase) errParam(name string) error {
	return &mech.ConfigError{Mech: sb.Nm, Param: name, Msg: "unknown parameter"}
}

// SetParam sets one parameter by name (Gbar, Erev, or a modulation
// parameter).  Synapse types with extra settable parameters override this.
func (sb *SynBase) SetParam(name string, val float32) error {
	if sb.setBase(name, val) {
		return nil
	}
	return sb.errParam(name)
}

// Names lists all synaptic mechanism names.
var Names = []string{"ampa", "gaba", "nmda", "glut"}

// New constructs a synapse instance of the given mechanism name with its
// standard definition and the given peak conductance, or nil for an
// unknown name.
func New(name string, gbar float32) mech.Mechanism {
	switch name {
	case "ampa":
		return NewAMPA(nil, gbar)
	case "gaba":
		return NewGABA(nil, gbar)
	case "nmda":
		return NewNMDA(nil, gbar)
	case "glut":
		return NewGlut(nil, gbar)
	}
	return nil
}
