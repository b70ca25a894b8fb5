// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package msnmech is the mechanism kinetics engine for conductance-based models
of striatal medium spiny neurons (MSNs), implemented in the Go language
(golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* mech: the generic engine shared by all mechanism types -- gating state
variables with steady-state initialization and exact exponential integration,
rate-law interfaces, Q10 temperature scaling, ion-pool current contributions,
and the driver-facing Mechanism contract.

* neuromod: the shared dopamine / acetylcholine conductance modulation model,
including the per-cell-type modulation strength tables.

* chans: the voltage- and calcium-gated ion channel mechanisms of the MSN
model (naf, kaf, kas, kdr, kir, km, sk, bk, and the GHK-based calcium
channels cal12, cal13, can, car, cav32, cav33).

* syn: the event-driven synapse mechanisms (ampa, nmda, gaba, and the
combined glutamate point process), built on a peak-normalized
dual-exponential conductance kernel.

* density: conductance / permeability parameter tables and the
somatic-distance channel density distributions used to decorate compartments.

* examples: runnable drivers -- examples/stepmech steps a full somatic
mechanism complement under voltage clamp and records the resulting currents.

The engine is called by an outer compartmental driver once per timestep per
mechanism instance; morphology, cable equations and calcium pool dynamics are
external to this repository.
*/
package msnmech
