// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import "github.com/chewxy/math32"

// physical constants used by the GHK flux and the bk field term
const (
	faraday    = float32(96485.309) // C/mol
	gasConst   = float32(8.3134)    // J/(mol K)
	kelvinZero = float32(273.15)
)

// efun is z / (exp(z) - 1), with the removable singularity at z = 0
// replaced by its series value 1 - z/2.
func efun(z float32) float32 {
	if math32.Abs(z) < 1e-4 {
		return 1 - z/2
	}
	return z / (math32.Exp(z) - 1)
}

// GHK is the Goldman-Hodgkin-Katz flux for a divalent cation at membrane
// voltage v (mV), with intracellular and extracellular concentrations ci
// and co (mM), at the given temperature (degC).  Multiplied by a
// permeability density (cm/s) it gives the membrane current density;
// negative values are inward current.
func GHK(v, ci, co, celsius float32) float32 {
	z := 1e-3 * 2 * faraday * v / (gasConst * (celsius + kelvinZero))
	eci := ci * efun(-z)
	eco := co * efun(z)
	return 1e-3 * 2 * faraday * (eci - eco)
}
