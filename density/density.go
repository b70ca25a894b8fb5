// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package density distributes channel densities over the cell: a conductance
table giving per-cell, per-mechanism, per-compartment peak densities, and
the distance profiles that scale those peaks along the dendrites and axon
as a function of somatic distance.

Profile parameters follow the p0..p3 convention of Table 2 in Lindroos et
al. (2018) and Table 1 in Lindroos & Hellgren Kotaleski (2020): p0 is a
log10 scale factor, p1 a sigmoid mixing fraction, p2 and p3 the sigmoid
midpoint (um) and slope (um).
*/
package density

import (
	"github.com/goki/mat32"

	"github.com/msnlab/msnmech/mech"
)

// Uniform is the distance-independent profile 10^p0 * gbar, used for all
// somatic channels and the distance-insensitive dendritic and axonal ones.
func Uniform(p0, gbar float32) float32 {
	return mat32.Pow(10, p0) * gbar
}

// StepProfile is the axonal naf profile: p0 * gbar inside the window
// (p2, p3) of somatic distance, p1 * gbar outside it.
func StepProfile(dist, p0, p1, p2, p3, gbar float32) float32 {
	if dist > p2 && dist < p3 {
		return p0 * gbar
	}
	return p1 * gbar
}

// sigm is the falling sigmoid of somatic distance with midpoint mid (um)
// and slope (um).
func sigm(dist, mid, slope float32) float32 {
	return 1 / (1 + mat32.FastExp((dist-mid)/slope))
}

// Value computes the density of a mechanism at a somatic distance (um),
// dispatching on compartment class and mechanism name exactly like the
// source model: the dendritic naf, kaf, kas, can, cav32 and cav33 profiles
// fall off sigmoidally with distance (each with its own mixing of uniform
// and sigmoid components), axonal naf is a step window, and everything
// else is uniform.  A negative result, a bad parameter count, or a
// mechanism with no profile in the given compartment is a ConfigError.
func Value(comp, mechNm string, dist float32, args []float32, gbar float32) (float32, error) {
	nargs := func(n int) error {
		if len(args) != n {
			return &mech.ConfigError{Mech: mechNm, Param: comp, Msg: "wrong number of density profile parameters"}
		}
		return nil
	}
	var d float32
	switch comp {
	case "dend":
		switch mechNm {
		case "naf":
			if err := nargs(4); err != nil {
				return 0, err
			}
			d = gbar * mat32.Pow(10, args[0]) * (1 - args[1] + args[1]*sigm(dist, args[2], args[3]))
		case "kaf":
			if err := nargs(4); err != nil {
				return 0, err
			}
			d = gbar * mat32.Pow(10, args[0]) * (1 + args[1]*sigm(dist, args[2], args[3]))
		case "kas":
			if err := nargs(3); err != nil {
				return 0, err
			}
			d = gbar * mat32.Pow(10, args[0]) * (0.1 + 0.9*sigm(dist, args[1], args[2]))
		case "kir", "sk":
			if err := nargs(1); err != nil {
				return 0, err
			}
			d = Uniform(args[0], gbar)
		case "can":
			if err := nargs(4); err != nil {
				return 0, err
			}
			// the can profile carries its own amplitude in 10^p0
			d = mat32.Pow(10, args[0]) * (1 - args[1] + args[1]*sigm(dist, args[2], args[3]))
		case "cav32", "cav33":
			if err := nargs(3); err != nil {
				return 0, err
			}
			d = mat32.Pow(10, args[0]) * sigm(dist, args[1], args[2])
		default:
			if err := nargs(1); err != nil {
				return 0, err
			}
			d = Uniform(args[0], gbar)
		}
	case "axon":
		switch mechNm {
		case "kas", "km":
			if err := nargs(1); err != nil {
				return 0, err
			}
			d = Uniform(args[0], gbar)
		case "naf":
			if err := nargs(4); err != nil {
				return 0, err
			}
			d = StepProfile(dist, args[0], args[1], args[2], args[3], gbar)
		default:
			return 0, &mech.ConfigError{Mech: mechNm, Param: comp, Msg: "no density profile for this compartment"}
		}
	case "soma":
		if err := nargs(1); err != nil {
			return 0, err
		}
		d = Uniform(args[0], gbar)
	default:
		return 0, &mech.ConfigError{Mech: mechNm, Param: comp, Msg: "unknown compartment class"}
	}
	if d < 0 {
		return 0, &mech.ConfigError{Mech: mechNm, Param: comp, Msg: "negative density"}
	}
	return d, nil
}
