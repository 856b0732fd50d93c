// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transport defines the TransportProperties interface consumed by
// the thermal-resistance assembler, plus a small constant-property reference
// implementation useful for tests and quick experiments.
// Real providers (tabulated, CoolProp-backed, bamboo's "thermo"-library
// equivalents, etc.) implement the same interface without depending on any
// solver internals.
//
// Grounded on gofem/mconduct's interface-first, registry-second layering
// (mconduct.Model), narrowed here to the five pure functions spec.md section
// 6 requires.
package transport

// Properties supplies the five pure functions every coolant or exhaust
// transport provider must implement.
type Properties interface {
	Rho(T, p float64) float64 // density (kg/m^3)
	Mu(T, p float64) float64  // absolute viscosity (Pa*s)
	K(T, p float64) float64   // thermal conductivity (W/m/K)
	Pr(T, p float64) float64  // Prandtl number
	Cp(T, p float64) float64  // specific heat at constant pressure (J/kg/K)
}

// Constant is a Properties implementation with fixed values, independent of
// T and p -- a convenient stand-in for incompressible, near-room-temperature
// liquids such as the "water-like coolant" of spec.md's end-to-end scenario 3.
type Constant struct {
	RhoV, MuV, KV, PrV, CpV float64
}

// NewConstant builds a Constant from rho, mu, k, cp; Pr is derived as
// mu*cp/k (consistent with its definition).
func NewConstant(rho, mu, k, cp float64) Constant {
	return Constant{RhoV: rho, MuV: mu, KV: k, PrV: mu * cp / k, CpV: cp}
}

// Rho returns the constant density.
func (c Constant) Rho(T, p float64) float64 { return c.RhoV }

// Mu returns the constant viscosity.
func (c Constant) Mu(T, p float64) float64 { return c.MuV }

// K returns the constant conductivity.
func (c Constant) K(T, p float64) float64 { return c.KV }

// Pr returns the constant Prandtl number.
func (c Constant) Pr(T, p float64) float64 { return c.PrV }

// Cp returns the constant specific heat.
func (c Constant) Cp(T, p float64) float64 { return c.CpV }
