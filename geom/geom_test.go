// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_geom01(tst *testing.T) {
	chk.PrintTitle("geom01")
	g, err := New([]float64{-0.1, 0, 0.1}, []float64{0.1, 0.05, 0.08})
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}
	chk.Scalar(tst, "Xt", 1e-15, g.Xt, 0)
	chk.Scalar(tst, "Rt", 1e-15, g.Rt, 0.05)
	chk.Scalar(tst, "At", 1e-12, g.At, math.Pi*0.05*0.05)
	chk.Scalar(tst, "Re", 1e-15, g.Re, 0.08)

	// A(x) >= At everywhere, with equality at the throat
	for _, x := range []float64{-0.1, -0.05, 0, 0.05, 0.1} {
		if g.A(x) < g.At-1e-12 {
			tst.Errorf("A(%g)=%g < At=%g", x, g.A(x), g.At)
		}
	}
	chk.Scalar(tst, "A(xt)", 1e-12, g.A(g.Xt), g.At)
}

func Test_geom_invalid01(tst *testing.T) {
	chk.PrintTitle("geom_invalid01")
	if _, err := New([]float64{0, 1}, []float64{1}); err == nil {
		tst.Errorf("expected error for mismatched lengths")
	}
	if _, err := New([]float64{1, 0}, []float64{1, 2}); err == nil {
		tst.Errorf("expected error for non-monotonic xs")
	}
	if _, err := New([]float64{0, 1}, []float64{1, -1}); err == nil {
		tst.Errorf("expected error for non-positive ys")
	}
}

func Test_geom_interp01(tst *testing.T) {
	chk.PrintTitle("geom_interp01")
	g, _ := New([]float64{0, 1, 2}, []float64{1, 2, 1})
	chk.Scalar(tst, "Y(0.5)", 1e-15, g.Y(0.5), 1.5)
	chk.Scalar(tst, "Y(1.5)", 1e-15, g.Y(1.5), 1.5)
}
