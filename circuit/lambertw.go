// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circuit

import "math"

// lambertW0 evaluates the principal (upper) branch of the Lambert W
// function via Halley's method, seeded with the standard asymptotic/series
// approximations. No Lambert-W implementation was found anywhere in the
// example pack (gosl/num has root-bracketing and Newton solvers but no
// special functions of this kind), so this is hand-rolled directly from the
// closed-form Colebrook-White-via-Lambert-W identity used by
// bamboo/cooling.py's f_darcy.
func lambertW0(x float64) float64 {
	if x == 0 {
		return 0
	}
	var w float64
	switch {
	case x < 1:
		// series expansion around 0
		w = x * (1 - x + 1.5*x*x)
	default:
		l1 := math.Log(x)
		l2 := math.Log(l1)
		w = l1 - l2 + l2/l1
	}
	for i := 0; i < 100; i++ {
		ew := math.Exp(w)
		wew := w * ew
		delta := (wew - x) / (ew*(w+1) - (w+2)*(wew-x)/(2*w+2))
		w -= delta
		if math.Abs(delta) < 1e-14*(1+math.Abs(w)) {
			break
		}
	}
	return w
}
