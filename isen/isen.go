// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package isen implements the isentropic compressible-flow relations and the
// choked-mass-flow based Mach solver for a perfect-gas exhaust. Grounded on
// bamboo/engine.py's PerfectGas/ChamberConditions/Engine.M/T/p and on
// bamboo.isen.m_bar (cited by name in bamboo/engine.py but not present in
// original_source -- the dimensionless mass-flow function is reconstructed
// here directly from spec.md section 4.A, which states it in closed form).
package isen

import "math"

// RBar is the universal gas constant, J/(K*kmol).
const RBar = 8314.4621

// PerfectGas is an ideal gas with constant cp/cv, overdetermined by design:
// exactly two of {Gamma, MolecularWeight, Cp} must be supplied.
type PerfectGas struct {
	Gamma            float64 // ratio of specific heats, cp/cv
	Cp               float64 // specific heat at constant pressure (J/kg/K)
	R                float64 // specific gas constant (J/kg/K)
	MolecularWeight  float64 // molecular weight (kg/kmol)
}

// NewFromGammaMW builds a PerfectGas from gamma and molecular weight.
func NewFromGammaMW(gamma, mw float64) (*PerfectGas, error) {
	if gamma <= 1 {
		return nil, errGamma(gamma)
	}
	if mw <= 0 {
		return nil, errPositive("molecular_weight", mw)
	}
	g := &PerfectGas{Gamma: gamma, MolecularWeight: mw}
	g.R = RBar / mw
	g.Cp = (gamma * g.R) / (gamma - 1)
	return g, nil
}

// NewFromGammaCp builds a PerfectGas from gamma and cp.
func NewFromGammaCp(gamma, cp float64) (*PerfectGas, error) {
	if gamma <= 1 {
		return nil, errGamma(gamma)
	}
	if cp <= 0 {
		return nil, errPositive("cp", cp)
	}
	g := &PerfectGas{Gamma: gamma, Cp: cp}
	g.R = cp * (gamma - 1) / gamma
	g.MolecularWeight = RBar / g.R
	return g, nil
}

// ChamberConditions holds immutable stagnation conditions.
type ChamberConditions struct {
	P0 float64 // stagnation pressure (Pa)
	T0 float64 // stagnation temperature (K)
}

// MBar is the dimensionless choked-mass-flow function m_bar(M, gamma):
//
//	m_bar = gamma*M*(1 + (gamma-1)/2*M^2)^(-(gamma+1)/(2*(gamma-1))) / sqrt(gamma)
func MBar(M, gamma float64) float64 {
	return gamma * M * math.Pow(1+(gamma-1)/2*M*M, -(gamma+1)/(2*(gamma-1))) / math.Sqrt(gamma)
}

// ChokedMassFlow returns the choked mass flow rate through a throat of area
// At: mdot = At*p0*m_bar(1,gamma) / sqrt(cp*T0).
func ChokedMassFlow(At float64, chamber ChamberConditions, gas *PerfectGas) float64 {
	return At * chamber.P0 * MBar(1, gas.Gamma) / math.Sqrt(gas.Cp*chamber.T0)
}

// Temperature returns the static temperature at Mach M: T = T0/(1+(gamma-1)/2*M^2).
func Temperature(T0, M, gamma float64) float64 {
	return T0 / (1 + (gamma-1)/2*M*M)
}

// Pressure returns the static pressure at Mach M: p = p0*(T/T0)^(gamma/(gamma-1)).
func Pressure(p0, M, gamma float64) float64 {
	T0 := 1.0 // p(T/T0) is scale-invariant in T0, so use the ratio directly
	T := Temperature(T0, M, gamma)
	return p0 * math.Pow(T/T0, gamma/(gamma-1))
}

func errGamma(gamma float64) error {
	return errPositiveName("gamma", gamma, "must be greater than 1")
}

func errPositive(name string, v float64) error {
	return errPositiveName(name, v, "must be positive")
}
