// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuromod

import (
	"testing"

	"github.com/chewxy/math32"
)

const difTol = float32(1.0e-6)

func TestModOff(t *testing.T) {
	// with damod = 0 the factor is 1 regardless of the other inputs
	levels := []float32{0, 0.25, 0.5, 1}
	maxes := []float32{-2, 0, 0.5, 1, 2, 5}
	mp := ModParams{}
	mp.Defaults()
	for _, mx := range maxes {
		for _, lv := range levels {
			mp.MaxMod = mx
			mp.Level = lv
			mp.Max2 = mx
			mp.Lev2 = lv
			if m := mp.Mod(); m != 1 {
				t.Errorf("damod 0: max: %v, level: %v, mod: %v, cor: 1\n", mx, lv, m)
			}
		}
	}
}

func TestModClamp(t *testing.T) {
	// the factor is clamped at 0 -- never negative, for any inputs
	mp := ModParams{Damod: 1, MaxMod: -3, Level: 1, Max2: 0, Lev2: 1}
	if m := mp.Mod(); m != 0 {
		t.Errorf("clamp: mod: %v, cor: 0\n", m)
	}
	for _, strength := range []float32{-2, -1, 0, 0.5, 1, 2} {
		for _, mx := range []float32{-1, 0, 0.3, 1, 1.3, 4} {
			mp := ModParams{Damod: strength, MaxMod: mx, Level: 1, Max2: mx, Lev2: 0.5}
			if m := mp.Mod(); m < 0 {
				t.Errorf("clamp: strength: %v, max: %v, mod: %v < 0\n", strength, mx, m)
			}
		}
	}
}

func TestModValue(t *testing.T) {
	mp := ModParams{Damod: 1, MaxMod: 0.8, Level: 1, Max2: 1, Lev2: 1}
	if dif := math32.Abs(mp.Mod() - 0.8); dif > difTol {
		t.Errorf("da only: mod: %v, cor: 0.8\n", mp.Mod())
	}
	// both channels act additively on the deviation from 1
	mp = ModParams{Damod: 1, MaxMod: 1.3, Level: 1, Max2: 0.5, Lev2: 1}
	if dif := math32.Abs(mp.Mod() - 0.8); dif > difTol {
		t.Errorf("both: mod: %v, cor: 0.8\n", mp.Mod())
	}
	// level scales the effect
	mp = ModParams{Damod: 1, MaxMod: 2, Level: 0.5, Max2: 1, Lev2: 0}
	if dif := math32.Abs(mp.Mod() - 1.5); dif > difTol {
		t.Errorf("half level: mod: %v, cor: 1.5\n", mp.Mod())
	}
}

func TestSampleRanges(t *testing.T) {
	// sampled factors must stay inside their table ranges
	for _, ct := range []CellTypes{DMSN, IMSN} {
		var intr, syn map[string]ModRange
		if ct == DMSN {
			intr, syn = daDMSN, daDMSNSyn
		} else {
			intr, syn = daIMSN, daIMSNSyn
		}
		for i := 0; i < 20; i++ {
			md := SampleDA(ct)
			for nm, mr := range intr {
				v, ok := md.Intrinsic[nm]
				if !ok {
					t.Errorf("%v DA: missing intrinsic %s\n", ct, nm)
					continue
				}
				if v < mr.Lo-difTol || v > mr.Hi+difTol {
					t.Errorf("%v DA %s: %v outside [%v, %v]\n", ct, nm, v, mr.Lo, mr.Hi)
				}
			}
			for nm, mr := range syn {
				v := md.Synaptic[nm]
				if v < mr.Lo-difTol || v > mr.Hi+difTol {
					t.Errorf("%v DA syn %s: %v outside [%v, %v]\n", ct, nm, v, mr.Lo, mr.Hi)
				}
			}
		}
	}
}

func TestSampleAChKafShift(t *testing.T) {
	// cholinergic kaf modulation is a voltage shift, dMSN only
	md := SampleACh(DMSN)
	if md.KafShift != -10 {
		t.Errorf("dmsn ACh KafShift: %v, cor: -10\n", md.KafShift)
	}
	if _, ok := md.Intrinsic["kaf"]; ok {
		t.Errorf("dmsn ACh: kaf must not have a conductance factor\n")
	}
	md = SampleACh(IMSN)
	if md.KafShift != 0 {
		t.Errorf("imsn ACh KafShift: %v, cor: 0\n", md.KafShift)
	}
}
