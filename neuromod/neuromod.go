// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package neuromod implements the shared neuromodulation model applied to every
channel and synapse mechanism in the MSN model: a multiplicative conductance
scaling factor computed from two independent modulator channels, nominally
dopamine (DA) and acetylcholine (ACh), so that both can act on a mechanism at
the same time.

The same computation is composed into every mechanism's conductance rather
than re-implemented per mechanism.  It also provides the per-cell-type
modulation strength tables (uniform sampling ranges for the maximal factors)
for direct-pathway (dMSN) and indirect-pathway (iMSN) cells.
*/
package neuromod

import "github.com/chewxy/math32"

// ModParams are the modulation parameters present on every mechanism
// instance.  The factor is 1 + damod * ((maxMod-1)*level + (max2-1)*lev2),
// clamped to be non-negative -- a saturating biological effect, not an
// error.  Damod is typically 0 (modulation off) or 1 (on); Level and Lev2
// can be driven over time to simulate non-static modulation.
type ModParams struct {
	Damod  float32 `desc:"modulation strength switch: 0 = off, 1 = on"`
	MaxMod float32 `def:"1" desc:"maximal modulation factor for the first modulator channel (DA)"`
	Level  float32 `desc:"level of the first modulator, in [0,1]"`
	Max2   float32 `def:"1" desc:"maximal modulation factor for the second modulator channel (ACh)"`
	Lev2   float32 `desc:"level of the second modulator, in [0,1]"`
}

func (mp *ModParams) Defaults() {
	mp.Damod = 0
	mp.MaxMod = 1
	mp.Level = 0
	mp.Max2 = 1
	mp.Lev2 = 0
}

// Mod returns the multiplicative conductance scaling factor.  It is pure:
// no state beyond the four inputs, and always >= 0.
func (mp *ModParams) Mod() float32 {
	m := 1 + mp.Damod*((mp.MaxMod-1)*mp.Level+(mp.Max2-1)*mp.Lev2)
	return math32.Max(m, 0)
}

// SetParam sets one modulation parameter by name, returning false if the
// name is not a modulation parameter.
func (mp *ModParams) SetParam(name string, val float32) bool {
	switch name {
	case "Damod":
		mp.Damod = val
	case "MaxMod":
		mp.MaxMod = val
	case "Level":
		mp.Level = val
	case "Max2":
		mp.Max2 = val
	case "Lev2":
		mp.Lev2 = val
	default:
		return false
	}
	return true
}
