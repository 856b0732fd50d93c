// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package circuit implements the closed-form convection correlations
// (Dittus-Boelter, Sieder-Tate, Gnielinski, Bartz, Bartz-sigma, laminar) and
// the Darcy friction-factor models (laminar, Petukhov, Colebrook-White via
// Lambert-W) consumed by the thermal-resistance assembler.
//
// Convection models are a registry exactly like gofem/mconduct's
// Model/GetModel/allocators: a keyed map of named implementations, looked up
// by the string the caller configured (spec.md section 6,
// coolant_convection/exhaust_convection).
package circuit

import (
	"math"

	"github.com/cpmech/regencool/rerr"
)

// PipeFlowInputs are the dimensionless-group inputs shared by the
// tube-convection correlations (Dittus-Boelter, Sieder-Tate, Gnielinski,
// laminar), whether on the coolant or the exhaust side.
type PipeFlowInputs struct {
	Re     float64 // Reynolds number
	Pr     float64 // Prandtl number
	K      float64 // thermal conductivity (W/m/K)
	D      float64 // hydraulic/flow diameter (m)
	MuBulk float64 // bulk viscosity (Pa*s), for Sieder-Tate
	MuWall float64 // wall viscosity (Pa*s), for Sieder-Tate
	FDarcy float64 // Darcy friction factor, for Gnielinski
}

// PipeFlowModel computes h [W/m^2/K] from a set of dimensionless groups.
type PipeFlowModel func(in PipeFlowInputs) float64

// ReLaminarCutoff is the Reynolds number below which pipe flow is treated as
// laminar (spec.md section 6 constants).
const ReLaminarCutoff = 2300

// DittusBoelter: Nu = 0.023 Re^0.8 Pr^0.4; h = Nu k / D.
func DittusBoelter(in PipeFlowInputs) float64 {
	Nu := 0.023 * math.Pow(in.Re, 0.8) * math.Pow(in.Pr, 0.4)
	return Nu * in.K / in.D
}

// SiederTate: Nu = 0.027 Re^0.8 Pr^(1/3) (mu_bulk/mu_wall)^0.14.
func SiederTate(in PipeFlowInputs) float64 {
	Nu := 0.027 * math.Pow(in.Re, 0.8) * math.Pow(in.Pr, 1.0/3.0) * math.Pow(in.MuBulk/in.MuWall, 0.14)
	return Nu * in.K / in.D
}

// Gnielinski: Nu = (f/8)(Re-1000)Pr / (1 + 12.7 sqrt(f/8)(Pr^(2/3)-1)).
func Gnielinski(in PipeFlowInputs) float64 {
	f8 := in.FDarcy / 8
	Nu := f8 * (in.Re - 1000) * in.Pr / (1 + 12.7*math.Sqrt(f8)*(math.Pow(in.Pr, 2.0/3.0)-1))
	return Nu * in.K / in.D
}

// LaminarNuConstantT is the Nusselt number for fully-developed laminar pipe
// flow with constant wall temperature (spec.md default).
const LaminarNuConstantT = 3.66

// LaminarNuConstantQ is the Nusselt number for fully-developed laminar pipe
// flow with constant heat flux -- the configurable alternative named in
// spec.md section 9, Open Question (c).
const LaminarNuConstantQ = 4.36

// Laminar returns h for laminar flow (Re<2300) using the constant-wall-T
// Nusselt number.
func Laminar(in PipeFlowInputs) float64 {
	return LaminarNuConstantT * in.K / in.D
}

// LaminarConstantQ returns h for laminar flow using the constant-heat-flux
// Nusselt number (4.36) instead of the constant-wall-temperature one.
func LaminarConstantQ(in PipeFlowInputs) float64 {
	return LaminarNuConstantQ * in.K / in.D
}

// pipeFlowModels is the registry of named coolant-side convection models,
// keyed exactly as spec.md section 6 names them.
var pipeFlowModels = map[string]PipeFlowModel{
	"dittus-boelter": DittusBoelter,
	"sieder-tate":    SiederTate,
	"gnielinski":     Gnielinski,
}

// PipeFlowModelByName looks up a coolant-side convection model by name.
func PipeFlowModelByName(name string) (PipeFlowModel, error) {
	m, ok := pipeFlowModels[name]
	if !ok {
		return nil, rerr.Configf("circuit.PipeFlowModelByName", "unknown coolant_convection model %q", name)
	}
	return m, nil
}
