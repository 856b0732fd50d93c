// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermal

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/regencool/field"
	"github.com/cpmech/regencool/isen"
	"github.com/cpmech/regencool/jacket"
	"github.com/cpmech/regencool/transport"
	"github.com/cpmech/regencool/wall"
)

func buildStack(tst *testing.T) wall.Stack {
	cu, err := wall.NewMaterial("copper", 117e9, 70e6, 0.33, 17e-6, 385)
	if err != nil {
		tst.Fatalf("material: %v", err)
	}
	w1, _ := wall.NewWall(cu, 2e-3)
	s, err := wall.NewStack(w1)
	if err != nil {
		tst.Fatalf("stack: %v", err)
	}
	return s
}

func Test_density_fixed_point01(tst *testing.T) {
	chk.PrintTitle("density_fixed_point01")
	props := transport.NewConstant(1000, 8.9e-4, 0.6, 4180)
	rho, V, Pc := DensityFixedPoint(props, 300, 30e5, 2.0, 1e-3)
	chk.Scalar(tst, "rho matches constant model", 1e-9, rho, 1000)
	if V <= 0 {
		tst.Errorf("expected positive velocity, got %g", V)
	}
	if Pc >= 30e5 {
		tst.Errorf("static pressure should be below stagnation: Pc=%g", Pc)
	}
}

func Test_assemble_no_fins01(tst *testing.T) {
	chk.PrintTitle("assemble_no_fins01")
	walls := buildStack(tst)
	j, err := jacket.New(300, 30e5, 0.5, field.Const(3e-3), jacket.Vertical)
	if err != nil {
		tst.Fatalf("jacket: %v", err)
	}
	coolant := transport.NewConstant(1000, 8.9e-4, 0.6, 4180)
	exhaust := transport.NewConstant(2.0, 8e-5, 0.2, 2000)
	gas := GasState{M: 0.5, T: 2800, P: 15e5, Rho: 1.8, V: 1200, Gamma: 1.2}
	cfg := Config{ExhaustModel: ExhaustBartz, Chamber: isen.ChamberConditions{P0: 20e5, T0: 3000}}

	res, err := Assemble(cfg, 0.0, 0.05, walls, j, coolant, exhaust, gas, 300, 30e5, 320, 900, nil)
	if err != nil {
		tst.Errorf("Assemble failed: %v", err)
		return
	}
	if len(res.R) != 3 {
		tst.Errorf("expected 3 resistances (coolant, 1 wall, gas), got %d", len(res.R))
	}
	for i, r := range res.R {
		if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			tst.Errorf("resistance[%d]=%g is not a finite positive value", i, r)
		}
	}
	total := TotalResistance(res.R)
	for _, r := range res.R {
		if r > total {
			tst.Errorf("a single resistance exceeds the total")
		}
	}
}

func Test_fin_zero_when_no_blockage01(tst *testing.T) {
	chk.PrintTitle("fin_zero_when_no_blockage01")
	walls := buildStack(tst)
	j, _ := jacket.New(300, 30e5, 0.5, field.Const(3e-3), jacket.Vertical)
	q := FinExtraDQDx(0, 0.06, j, walls, 5000, 350, 300)
	chk.Scalar(tst, "no-fin extra dQ/dx", 1e-12, q, 0)
}

func Test_fin_nonzero_with_blockage01(tst *testing.T) {
	chk.PrintTitle("fin_nonzero_with_blockage01")
	walls := buildStack(tst)
	j, err := jacket.New(300, 30e5, 0.5, field.Const(3e-3), jacket.Vertical,
		jacket.WithBlockageRatio(field.Const(0.3)), jacket.WithNumberOfFins(20))
	if err != nil {
		tst.Fatalf("jacket: %v", err)
	}
	q := FinExtraDQDx(0, 0.06, j, walls, 5000, 350, 300)
	if q == 0 {
		tst.Errorf("expected nonzero fin contribution")
	}
}
