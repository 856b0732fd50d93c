// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stress

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/regencool/field"
	"github.com/cpmech/regencool/jacket"
	"github.com/cpmech/regencool/wall"
)

func Test_pressure_only_no_fins01(tst *testing.T) {
	chk.PrintTitle("pressure_only_no_fins01")
	cu, _ := wall.NewMaterial("copper", 117e9, 70e6, 0.33, 17e-6, 385)
	w1, _ := wall.NewWall(cu, 1e-3)
	walls, _ := wall.NewStack(w1)
	j, _ := jacket.New(300, 30e5, 0.5, field.Const(3e-3), jacket.Vertical)

	res := Tangential(0, 0, walls, 0.05, 0, 20e5, 1e5, j)
	D := 2*0.05 + 1e-3
	expected := (20e5 - 1e5) * D / (2 * 1e-3)
	chk.Scalar(tst, "sigma_press", 1e-6, res.SigmaPressure, expected)
	chk.Scalar(tst, "sigma_thermal zero heat flux", 1e-12, res.SigmaThermal, 0)
}

func Test_pressure_restrained_fins01(tst *testing.T) {
	chk.PrintTitle("pressure_restrained_fins01")
	cu, _ := wall.NewMaterial("copper", 117e9, 70e6, 0.33, 17e-6, 385)
	w1, _ := wall.NewWall(cu, 1e-3)
	walls, _ := wall.NewStack(w1)
	j, err := jacket.New(300, 30e5, 0.5, field.Const(3e-3), jacket.Vertical,
		jacket.WithBlockageRatio(field.Const(0.3)), jacket.WithNumberOfFins(20))
	if err != nil {
		tst.Fatalf("jacket: %v", err)
	}

	res := Tangential(0, 0, walls, 0.05, 0, 20e5, 1e5, j)
	if res.SigmaPressure <= 0 {
		tst.Errorf("expected positive pressure stress, got %g", res.SigmaPressure)
	}
}

func Test_thermal_stress_scales_with_heat_flux01(tst *testing.T) {
	chk.PrintTitle("thermal_stress_scales_with_heat_flux01")
	cu, _ := wall.NewMaterial("copper", 117e9, 70e6, 0.33, 17e-6, 385)
	w1, _ := wall.NewWall(cu, 1e-3)
	walls, _ := wall.NewStack(w1)
	j, _ := jacket.New(300, 30e5, 0.5, field.Const(3e-3), jacket.Vertical)

	r1 := Tangential(0, 0, walls, 0.05, 1e6, 20e5, 1e5, j)
	r2 := Tangential(0, 0, walls, 0.05, 2e6, 20e5, 1e5, j)
	chk.Scalar(tst, "linear in qdotPrime", 1e-3, r2.SigmaThermal, 2*r1.SigmaThermal)
}
