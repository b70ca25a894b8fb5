// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package density

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chewxy/math32"

	"github.com/msnlab/msnmech/chans"
	"github.com/msnlab/msnmech/mech"
)

const difTol = float32(1.0e-5)

func TestUniform(t *testing.T) {
	// p0 = 0 leaves gbar unchanged
	if dif := math32.Abs(Uniform(0, 0.033) - 0.033); dif > difTol {
		t.Errorf("uniform p0=0: %v, cor: 0.033\n", Uniform(0, 0.033))
	}
	if dif := math32.Abs(Uniform(1, 0.01) - 0.1); dif > difTol {
		t.Errorf("uniform p0=1: %v, cor: 0.1\n", Uniform(1, 0.01))
	}
}

func TestStepProfile(t *testing.T) {
	// inside the (p2, p3) window the density is p0*gbar, outside p1*gbar
	if g := StepProfile(50, 1, 0.1, 30, 60, 2); g != 2 {
		t.Errorf("inside window: %v, cor: 2\n", g)
	}
	if g := StepProfile(70, 1, 0.1, 30, 60, 2); math32.Abs(g-0.2) > difTol {
		t.Errorf("outside window: %v, cor: 0.2\n", g)
	}
}

func TestDendProfiles(t *testing.T) {
	// dendritic naf falls off sigmoidally: density at the soma end exceeds
	// density far out, and far out it approaches the (1-p1) floor
	args := []float32{0, 0.5, 30, 10}
	near, err := Value("dend", "naf", 0, args, 1)
	if err != nil {
		t.Fatalf("near: %v\n", err)
	}
	far, err := Value("dend", "naf", 300, args, 1)
	if err != nil {
		t.Fatalf("far: %v\n", err)
	}
	if near <= far {
		t.Errorf("naf near: %v, far: %v, expected near > far\n", near, far)
	}
	if dif := math32.Abs(far - 0.5); dif > 1.0e-3 {
		t.Errorf("naf far: %v, cor floor: 0.5\n", far)
	}
	// kaf rises toward the soma up to 1+p1
	kn, _ := Value("dend", "kaf", 0, args, 1)
	kf, _ := Value("dend", "kaf", 300, args, 1)
	if kn <= kf {
		t.Errorf("kaf near: %v, far: %v, expected near > far\n", kn, kf)
	}
	// kas has the fixed 0.1 floor
	sf, _ := Value("dend", "kas", 300, []float32{0, 30, 10}, 1)
	if dif := math32.Abs(sf - 0.1); dif > 1.0e-3 {
		t.Errorf("kas far: %v, cor floor: 0.1\n", sf)
	}
	// cav32 decays to zero and ignores gbar (amplitude is 10^p0)
	cn, _ := Value("dend", "cav32", 0, []float32{-7, 100, 30}, 99)
	cf, _ := Value("dend", "cav33", 1000, []float32{-7, 100, 30}, 99)
	if cn <= cf {
		t.Errorf("cav32 near: %v, far: %v\n", cn, cf)
	}
	if cf > 1.0e-8 {
		t.Errorf("cav33 far: %v, expected ~0\n", cf)
	}
}

func TestValueErrors(t *testing.T) {
	// wrong parameter count
	if _, err := Value("dend", "naf", 0, []float32{0}, 1); err == nil {
		t.Errorf("short args: expected ConfigError\n")
	}
	// unknown compartment
	if _, err := Value("spine", "naf", 0, []float32{0, 0.5, 30, 10}, 1); err == nil {
		t.Errorf("unknown compartment: expected ConfigError\n")
	}
	// axon carries only naf, kas and km
	if _, err := Value("axon", "kir", 0, []float32{0}, 1); err == nil {
		t.Errorf("axonal kir: expected ConfigError\n")
	}
	// negative density from a negative step level
	_, err := Value("axon", "naf", 100, []float32{1, -0.5, 30, 60}, 1)
	if err == nil {
		t.Fatalf("negative density: expected ConfigError\n")
	}
	if _, ok := err.(*mech.ConfigError); !ok {
		t.Errorf("expected *ConfigError, got %T\n", err)
	}
}

func TestTablePrecedence(t *testing.T) {
	tb := NewTable()
	tb.Add("all", "naf", "soma", 10)
	tb.Add("dmsn", "naf", "soma", 15)
	tb.Add("all", "kir", "soma", 1)

	v, err := tb.Value("dmsn", "naf", "soma")
	if err != nil {
		t.Fatalf("dmsn naf: %v\n", err)
	}
	if v != 15 {
		t.Errorf("dmsn naf: %v, cor: 15 (cell row overrides all)\n", v)
	}
	v, err = tb.Value("imsn", "naf", "soma")
	if err != nil {
		t.Fatalf("imsn naf: %v\n", err)
	}
	if v != 10 {
		t.Errorf("imsn naf: %v, cor: 10 (all row)\n", v)
	}
	_, err = tb.Value("dmsn", "naf", "dend")
	if err == nil {
		t.Fatalf("missing row: expected ConfigError\n")
	}
	if _, ok := err.(*mech.ConfigError); !ok {
		t.Errorf("expected *ConfigError, got %T\n", err)
	}
}

func TestTableReadWrite(t *testing.T) {
	tb := NewTable()
	tb.Add("all", "naf", "soma", 10)
	tb.Add("dmsn", "kaf", "dend", 0.5)
	var buf bytes.Buffer
	if err := tb.WriteTable(&buf); err != nil {
		t.Fatalf("write: %v\n", err)
	}
	tb2, err := ReadTable(&buf)
	if err != nil {
		t.Fatalf("read: %v\n", err)
	}
	if tb2.Tab.Rows != 2 {
		t.Fatalf("rows: %v, cor: 2\n", tb2.Tab.Rows)
	}
	v, err := tb2.Value("dmsn", "kaf", "dend")
	if err != nil {
		t.Fatalf("value: %v\n", err)
	}
	if dif := math32.Abs(v - 0.5); dif > difTol {
		t.Errorf("value: %v, cor: 0.5\n", v)
	}
	// a table missing required columns is rejected
	if _, err := ReadTable(strings.NewReader("A\tB\nx\ty\n")); err == nil {
		t.Errorf("bad columns: expected error\n")
	}
}

func TestSheetApply(t *testing.T) {
	tb := NewTable()
	tb.Add("all", "naf", "soma", 0.01)
	tb.Add("dmsn", "naf", "soma", 0.02)
	tb.Add("all", "kdr", "soma", 0.003)

	sht := tb.Sheet("dmsn", "soma")
	if len(*sht) != 2 {
		t.Fatalf("sels: %v, cor: 2\n", len(*sht))
	}

	naf := chans.NewNaf(nil, 0)
	naf.Cls = "soma"
	kdr := chans.NewKdr(nil, 0)
	kdr.Cls = "soma"
	for _, ch := range []interface{ Name() string }{naf, kdr} {
		if _, err := sht.Apply(ch, false); err != nil {
			t.Fatalf("%s apply: %v\n", ch.Name(), err)
		}
	}
	if dif := math32.Abs(naf.Gbar - 0.02); dif > difTol {
		t.Errorf("naf gbar: %v, cor: 0.02 (cell row overrides all)\n", naf.Gbar)
	}
	if dif := math32.Abs(kdr.Gbar - 0.003); dif > difTol {
		t.Errorf("kdr gbar: %v, cor: 0.003\n", kdr.Gbar)
	}
}
