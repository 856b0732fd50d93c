// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isen

import (
	"fmt"
	"math"
)

// brent finds a root of f within [a,b], with f(a) and f(b) of opposite sign,
// using Brent's method (bisection + secant + inverse quadratic
// interpolation). This mirrors the Init/Solve shape of gosl/num.NlSolver
// (used throughout gofem/msolid and gofem/ana for 1-D residual solves) but,
// unlike NlSolver, is bracketed: no pack library exposes a bracketed 1-D
// root-finder, and spec.md section 4.G explicitly requires one for
// robustness near the throat and in the supersonic branch. tol is an
// absolute tolerance on x; maxit bounds the iteration count.
func brent(f func(float64) float64, a, b, tol float64, maxit int) (float64, error) {
	fa, fb := f(a), f(b)
	if fa*fb > 0 {
		return 0, fmt.Errorf("root not bracketed on [%g,%g]: f(a)=%g, f(b)=%g", a, b, fa, fb)
	}
	if math.Abs(fa) < math.Abs(fb) {
		a, b = b, a
		fa, fb = fb, fa
	}
	c, fc := a, fa
	mflag := true
	var d float64
	for it := 0; it < maxit; it++ {
		if fb == 0 || math.Abs(b-a) < tol {
			return b, nil
		}
		var s float64
		if fa != fc && fb != fc {
			// inverse quadratic interpolation
			s = a*fb*fc/((fa-fb)*(fa-fc)) +
				b*fa*fc/((fb-fa)*(fb-fc)) +
				c*fa*fb/((fc-fa)*(fc-fb))
		} else {
			// secant
			s = b - fb*(b-a)/(fb-fa)
		}
		cond1 := (s-(3*a+b)/4)*(s-b) >= 0
		cond2 := mflag && math.Abs(s-b) >= math.Abs(b-c)/2
		cond3 := !mflag && math.Abs(s-b) >= math.Abs(c-d)/2
		cond4 := mflag && math.Abs(b-c) < tol
		cond5 := !mflag && math.Abs(c-d) < tol
		if cond1 || cond2 || cond3 || cond4 || cond5 {
			s = (a + b) / 2
			mflag = true
		} else {
			mflag = false
		}
		fs := f(s)
		d = c
		c, fc = b, fb
		if fa*fs < 0 {
			b, fb = s, fs
		} else {
			a, fa = s, fs
		}
		if math.Abs(fa) < math.Abs(fb) {
			a, b = b, a
			fa, fb = fb, fa
		}
	}
	return 0, fmt.Errorf("did not converge within bracket [%g,%g] after %d iterations", a, b, maxit)
}
