// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isen

import (
	"math"

	"github.com/cpmech/regencool/rerr"
)

// ThroatTol is the half-width, in x, within which a station is considered to
// be at the throat (M is then returned as exactly 1, per spec.md section 4.G).
const ThroatTol = 1e-12

// AreaFunc gives the flow area at an axial position (geom.Geometry.A).
type AreaFunc func(x float64) float64

// Mach solves for the exhaust Mach number at x by inverting
//
//	mdot*sqrt(cp*T0) / (A(x)*p0) = m_bar(M, gamma)
//
// bracketing [0,1] on the subsonic side (x < xt) and [1,500] on the
// supersonic side (x > xt), per spec.md section 4.G.
func Mach(x, xt float64, area AreaFunc, gas *PerfectGas, chamber ChamberConditions, mdot float64) (float64, error) {
	if math.Abs(x-xt) < ThroatTol {
		return 1, nil
	}
	target := mdot * math.Sqrt(gas.Cp*chamber.T0) / (area(x) * chamber.P0)
	residual := func(M float64) float64 {
		return target - MBar(M, gas.Gamma)
	}
	var lo, hi float64
	if x > xt {
		lo, hi = 1, 500
	} else {
		lo, hi = 1e-9, 1
	}
	M, err := brent(residual, lo, hi, 1e-10, 100)
	if err != nil {
		return 0, rerr.Numerical("isen.Mach", -1, x, target, err.Error())
	}
	return M, nil
}
