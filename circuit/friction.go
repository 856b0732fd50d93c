// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circuit

import "math"

// FDarcy returns the Darcy friction factor for flow in a tube of hydraulic
// diameter D, Reynolds number re, and absolute roughness eps (0 for a smooth
// wall). Grounded on bamboo/cooling.py's f_darcy: laminar 64/Re below
// ReLaminarCutoff; Petukhov's smooth-turbulent correlation when eps==0;
// otherwise the closed-form (Lambert-W) solution of the implicit
// Colebrook-White equation.
func FDarcy(re, D, eps float64) float64 {
	if re <= 0 {
		return 0
	}
	if re < ReLaminarCutoff {
		return 64 / re
	}
	if eps <= 0 {
		return petukhov(re)
	}
	return colebrookWhite(re, D, eps)
}

// petukhov: f = (0.79 ln(Re) - 1.64)^-2, valid for smooth pipes, 3000<Re<5e6.
func petukhov(re float64) float64 {
	t := 0.79*math.Log(re) - 1.64
	return 1 / (t * t)
}

// colebrookWhite solves 1/sqrt(f) = -2 log10(eps/(3.71 D) + 2.51/(Re sqrt(f)))
// exactly via the Lambert-W substitution u=1/sqrt(f):
//
//	a = eps/(3.71 D), b = 2.51/Re
//	C = exp(a ln10 / (2 b)) / b
//	u = (2/ln10) W(C ln10 / 2) - a/b
//	f = 1/u^2
func colebrookWhite(re, D, eps float64) float64 {
	const ln10 = 2.302585092994046
	a := eps / (3.71 * D)
	b := 2.51 / re
	C := math.Exp(a*ln10/(2*b)) / b
	z := lambertW0(C * ln10 / 2)
	u := (2/ln10)*z - a/b
	return 1 / (u * u)
}
