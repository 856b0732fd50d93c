// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circuit

import (
	"math"

	"github.com/cpmech/regencool/rerr"
)

// BartzInputs are the freestream/near-wall properties Bartz's correlation
// needs at a station (spec.md section 4.B).
type BartzInputs struct {
	D        float64 // local gas-side flow diameter (m)
	CpInf    float64 // freestream specific heat (J/kg/K)
	MuInf    float64 // freestream viscosity (Pa*s)
	PrInf    float64 // freestream Prandtl number
	RhoInf   float64 // freestream density (kg/m^3)
	VInf     float64 // freestream velocity (m/s)
	RhoAm    float64 // arithmetic-mean-temperature density (kg/m^3)
	MuAm     float64 // arithmetic-mean-temperature viscosity (Pa*s)
	Mu0      float64 // stagnation-temperature viscosity (Pa*s)
}

// Bartz: h = 0.026/D^0.2 * (cp mu^0.2 / Pr^0.6) * (rho V)^0.8 * (rho_am/rho) * (mu_am/mu0)^0.2.
func Bartz(in BartzInputs) float64 {
	h := 0.026 / math.Pow(in.D, 0.2)
	h *= in.CpInf * math.Pow(in.MuInf, 0.2) / math.Pow(in.PrInf, 0.6)
	h *= math.Pow(in.RhoInf*in.VInf, 0.8)
	h *= in.RhoAm / in.RhoInf
	h *= math.Pow(in.MuAm/in.Mu0, 0.2)
	return h
}

// BartzSigmaInputs are the stagnation/throat-referenced properties the
// sigma-corrected Bartz correlation needs (spec.md section 4.B).
type BartzSigmaInputs struct {
	Dt     float64 // throat diameter (m)
	Mu0    float64 // stagnation viscosity (Pa*s)
	Cp0    float64 // stagnation specific heat (J/kg/K)
	Pr0    float64 // stagnation Prandtl number
	Pc     float64 // chamber stagnation pressure (Pa)
	CStar  float64 // characteristic velocity (m/s)
	At     float64 // throat area (m^2)
	A      float64 // local area (m^2)
	Tw     float64 // local wall temperature (K)
	Tc     float64 // chamber stagnation temperature (K)
	M      float64 // local Mach number
	Gamma  float64 // ratio of specific heats
}

// BartzSigma: the classic sigma-corrected Bartz correlation, referenced
// entirely to stagnation/throat quantities so it needs no freestream state.
func BartzSigma(in BartzSigmaInputs) float64 {
	g := in.Gamma
	h := 0.026 / math.Pow(in.Dt, 0.2)
	h *= math.Pow(in.Mu0, 0.2) * in.Cp0 / math.Pow(in.Pr0, 0.6)
	h *= math.Pow(in.Pc/in.CStar, 0.8)
	h *= math.Pow(in.At/in.A, 0.9)
	factor := 1 + 0.5*(g-1)*in.M*in.M
	sigma := math.Pow(0.5*(in.Tw/in.Tc)*factor+0.5, 0.68) * math.Pow(factor, -0.12)
	h *= sigma
	return h
}

// ExhaustModel computes the gas-side film coefficient for a pipe-flow-style
// model (dittus-boelter reused on the freestream Reynolds number), given the
// same dimensionless groups as the coolant side.
type ExhaustModel func(in PipeFlowInputs) float64

var exhaustModels = map[string]ExhaustModel{
	"dittus-boelter": DittusBoelter,
}

// ExhaustModelByName looks up a freestream-Reynolds exhaust convection model
// (everything except bartz/bartz-sigma, which take their own input shape and
// are called directly).
func ExhaustModelByName(name string) (ExhaustModel, error) {
	m, ok := exhaustModels[name]
	if !ok {
		return nil, rerr.Configf("circuit.ExhaustModelByName", "unknown exhaust_convection model %q (use Bartz/BartzSigma directly for bartz/bartz-sigma)", name)
	}
	return m, nil
}
