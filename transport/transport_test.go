// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transport

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_constant01(tst *testing.T) {
	chk.PrintTitle("constant01")
	c := NewConstant(1000, 8.9e-4, 0.6, 4180)
	chk.Scalar(tst, "rho", 1e-15, c.Rho(300, 1e5), 1000)
	chk.Scalar(tst, "mu", 1e-15, c.Mu(300, 1e5), 8.9e-4)
	chk.Scalar(tst, "k", 1e-15, c.K(300, 1e5), 0.6)
	chk.Scalar(tst, "cp", 1e-15, c.Cp(300, 1e5), 4180)
	chk.Scalar(tst, "pr", 1e-10, c.Pr(300, 1e5), 8.9e-4*4180/0.6)
}

func Test_constant_independent_of_state01(tst *testing.T) {
	chk.PrintTitle("constant_independent_of_state01")
	c := NewConstant(800, 5e-4, 0.4, 2500)
	chk.Scalar(tst, "rho at T1", 1e-15, c.Rho(250, 5e5), c.Rho(500, 1e7))
}
