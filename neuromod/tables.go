// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuromod

import "github.com/emer/emergent/v2/erand"

// CellTypes are the two MSN projection neuron types, which differ in their
// dopamine receptor expression and thus in how DA modulates them.
type CellTypes int32 //enums:enum

const (
	// DMSN is a direct-pathway MSN, primarily expressing D1 receptors.
	DMSN CellTypes = iota

	// IMSN is an indirect-pathway MSN, primarily expressing D2 receptors.
	IMSN

	CellTypesN
)

func (ct CellTypes) String() string {
	switch ct {
	case DMSN:
		return "dmsn"
	case IMSN:
		return "imsn"
	}
	return "CellTypes(unknown)"
}

// ModRange is a uniform sampling range for a maximal modulation factor.
// Lo == Hi denotes a fixed (non-sampled) factor.
type ModRange struct {
	Lo float32 `desc:"lower bound of the factor"`
	Hi float32 `desc:"upper bound of the factor"`
}

// Sample draws one factor uniformly from the range, using the global
// random source (pass thr -1 semantics of erand).
func (mr ModRange) Sample(rnd ...erand.Rand) float32 {
	if mr.Hi == mr.Lo {
		return mr.Lo
	}
	mean := float64(mr.Lo+mr.Hi) / 2
	rng := float64(mr.Hi-mr.Lo) / 2
	return float32(erand.UniformMeanRange(mean, rng, -1, rnd...))
}

// Mods is one sampled set of maximal modulation factors for a cell: per
// intrinsic channel mechanism and per synapse mechanism, plus the
// cholinergic kaf voltage-dependence shift (dMSN only, in mV).
type Mods struct {
	Intrinsic map[string]float32 `desc:"maximal modulation factor per channel mechanism name"`
	Synaptic  map[string]float32 `desc:"maximal modulation factor per synapse mechanism name"`
	KafShift  float32            `desc:"shift of kaf voltage dependence (mV); cholinergic modulation of kaf in dMSNs only"`
}

// Modulation factor ranges per cell type and transmitter.  Mechanisms not
// listed are not modulated by that transmitter.  Where a factor is reported
// as a single value rather than a range, Lo == Hi.
var (
	daDMSN = map[string]ModRange{
		"naf": {0.6, 0.8}, "kaf": {0.75, 0.85}, "kas": {0.65, 0.85},
		"kir": {0.85, 1.25}, "cal12": {1, 2}, "cal13": {1, 2}, "can": {0.2, 1},
	}
	daDMSNSyn = map[string]ModRange{
		"nmda": {1.3, 1.3}, "ampa": {1.2, 1.2}, "gaba": {0.8, 0.8},
	}
	daIMSN = map[string]ModRange{
		"naf": {0.95, 1.1}, "kaf": {1, 1.1}, "kas": {1, 1.1}, "kir": {0.8, 1},
		"cal12": {0.7, 0.8}, "cal13": {0.7, 0.8}, "can": {0.9, 1}, "car": {0.6, 0.8},
	}
	daIMSNSyn = map[string]ModRange{
		"nmda": {0.85, 1.05}, "ampa": {0.7, 0.9}, "gaba": {0.9, 1.1},
	}
	achDMSN = map[string]ModRange{
		"naf": {1, 1.2}, "kir": {0.8, 1}, "cal12": {0.3, 0.7},
		"cal13": {0.3, 0.7}, "can": {0.65, 0.85}, "km": {0, 0.4},
	}
	// ACh does not modulate the synaptic channels of dMSNs
	achDMSNSyn = map[string]ModRange{
		"nmda": {1, 1}, "ampa": {1, 1}, "gaba": {1, 1},
	}
	achIMSN = map[string]ModRange{
		"naf": {1, 1.2}, "kir": {0.5, 0.7}, "cal12": {0.3, 0.7},
		"cal13": {0.3, 0.7}, "can": {0.65, 0.85}, "km": {0, 0.4},
	}
	achIMSNSyn = map[string]ModRange{
		"nmda": {1, 1.05}, "ampa": {0.99, 1.01}, "gaba": {0.99, 1.01},
	}
)

func sampleMods(intr, syn map[string]ModRange, rnd ...erand.Rand) Mods {
	md := Mods{
		Intrinsic: make(map[string]float32, len(intr)),
		Synaptic:  make(map[string]float32, len(syn)),
	}
	for nm, mr := range intr {
		md.Intrinsic[nm] = mr.Sample(rnd...)
	}
	for nm, mr := range syn {
		md.Synaptic[nm] = mr.Sample(rnd...)
	}
	return md
}

// SampleDA draws a set of dopaminergic maximal modulation factors for the
// given cell type.  Apply via ModParams.MaxMod with Damod = 1, Level = 1.
func SampleDA(ct CellTypes, rnd ...erand.Rand) Mods {
	if ct == IMSN {
		return sampleMods(daIMSN, daIMSNSyn, rnd...)
	}
	return sampleMods(daDMSN, daDMSNSyn, rnd...)
}

// SampleACh draws a set of cholinergic maximal modulation factors for the
// given cell type.  Apply via ModParams.Max2 with Damod = 1, Lev2 = 1.
// For dMSNs it also sets the kaf voltage-dependence shift (-10 mV): ACh
// modulation of kaf is a shift in voltage dependence, not a conductance
// scaling.
func SampleACh(ct CellTypes, rnd ...erand.Rand) Mods {
	if ct == IMSN {
		return sampleMods(achIMSN, achIMSNSyn, rnd...)
	}
	md := sampleMods(achDMSN, achDMSNSyn, rnd...)
	md.KafShift = -10
	return md
}
