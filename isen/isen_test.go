// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isen

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_mbar01(tst *testing.T) {
	chk.PrintTitle("mbar01")
	gamma := 1.2
	correct := gamma * math.Pow(2/(gamma+1), (gamma+1)/(2*(gamma-1))) / math.Sqrt(gamma)
	chk.Scalar(tst, "m_bar(1,gamma)", 1e-14, MBar(1, gamma), correct)
}

func Test_choked01(tst *testing.T) {
	chk.PrintTitle("choked01")
	gas, err := NewFromGammaCp(1.2, 1800)
	if err != nil {
		tst.Errorf("NewFromGammaCp failed: %v", err)
		return
	}
	chamber := ChamberConditions{P0: 20e5, T0: 3000}
	At := math.Pi * 0.05 * 0.05
	mdot := ChokedMassFlow(At, chamber, gas)
	correct := 7.99
	if math.Abs(mdot-correct)/correct > 0.02 {
		tst.Errorf("mdot = %g, want approx %g", mdot, correct)
	}
	// doubling p0 doubles mdot at fixed geometry and T0
	chamber2 := ChamberConditions{P0: 40e5, T0: 3000}
	mdot2 := ChokedMassFlow(At, chamber2, gas)
	chk.Scalar(tst, "mdot doubles with p0", 1e-10, mdot2, 2*mdot)
}

func Test_mach01(tst *testing.T) {
	chk.PrintTitle("mach01 -- pure nozzle Mach check")
	gas, _ := NewFromGammaCp(1.2, 1800)
	chamber := ChamberConditions{P0: 20e5, T0: 3000}
	xt := 0.0
	At := math.Pi * 0.05 * 0.05
	mdot := ChokedMassFlow(At, chamber, gas)

	// y(x): -0.1 -> 0.1; 0 -> 0.05; 0.1 -> 0.08 (linear)
	y := func(x float64) float64 {
		if x <= 0 {
			return 0.1 + (0.05-0.1)*(x-(-0.1))/(0-(-0.1))
		}
		return 0.05 + (0.08-0.05)*(x-0)/(0.1-0)
	}
	area := func(x float64) float64 { return math.Pi * y(x) * y(x) }

	Mt, err := Mach(0, xt, area, gas, chamber, mdot)
	if err != nil {
		tst.Errorf("Mach at throat failed: %v", err)
	}
	chk.Scalar(tst, "M(throat)", 1e-12, Mt, 1.0)

	Me, err := Mach(0.1, xt, area, gas, chamber, mdot)
	if err != nil {
		tst.Errorf("Mach at exit failed: %v", err)
		return
	}
	if math.Abs(Me-2.24)/2.24 > 0.02 {
		tst.Errorf("M(0.1) = %g, want approx 2.24", Me)
	}
}

func Test_round_trip01(tst *testing.T) {
	chk.PrintTitle("round_trip01")
	gamma, M, p0 := 1.3, 1.7, 1e6
	T0 := 2500.0
	T := Temperature(T0, M, gamma)
	p := Pressure(p0, M, gamma)
	// recompute p from T ratio directly
	pAgain := p0 * math.Pow(T/T0, gamma/(gamma-1))
	chk.Scalar(tst, "isentropic round-trip", 1e-10, pAgain, p)
}

func Test_gas_overdetermined01(tst *testing.T) {
	chk.PrintTitle("gas_overdetermined01")
	if _, err := NewFromGammaCp(1.0, 1000); err == nil {
		tst.Errorf("expected error for gamma<=1")
	}
	if _, err := NewFromGammaMW(1.2, -1); err == nil {
		tst.Errorf("expected error for negative molecular weight")
	}
}
