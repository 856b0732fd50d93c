// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jacket

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/regencool/field"
)

func Test_vertical01(tst *testing.T) {
	chk.PrintTitle("vertical01")
	j, err := New(300, 30e5, 0.5, field.Const(3e-3), Vertical)
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}
	xa, xb := j.Extent(0, 0.2)
	chk.Scalar(tst, "extent default xa", 1e-15, xa, 0)
	chk.Scalar(tst, "extent default xb", 1e-15, xb, 0.2)
}

func Test_spiral_requires_pitch01(tst *testing.T) {
	chk.PrintTitle("spiral_requires_pitch01")
	if _, err := New(300, 30e5, 0.5, field.Const(3e-3), Spiral); err == nil {
		tst.Errorf("expected error: spiral requires pitch")
	}
	j, err := New(300, 30e5, 0.5, field.Const(3e-3), Spiral, WithPitch(field.Const(5e-3)))
	if err != nil {
		tst.Errorf("New with pitch failed: %v", err)
	}
	_ = j
}

func Test_vertical_blockage_requires_fins01(tst *testing.T) {
	chk.PrintTitle("vertical_blockage_requires_fins01")
	if _, err := New(300, 30e5, 0.5, field.Const(3e-3), Vertical, WithBlockageRatio(field.Const(0.3))); err == nil {
		tst.Errorf("expected error: vertical blockage_ratio>0 requires number_of_fins")
	}
	j, err := New(300, 30e5, 0.5, field.Const(3e-3), Vertical, WithBlockageRatio(field.Const(0.3)), WithNumberOfFins(20))
	if err != nil {
		tst.Errorf("New with fins failed: %v", err)
	}
	_ = j
}

func Test_explicit_extent01(tst *testing.T) {
	chk.PrintTitle("explicit_extent01")
	j, _ := New(300, 30e5, 0.5, field.Const(3e-3), Vertical, WithExtent(0.05, 0.15))
	xa, xb := j.Extent(0, 0.2)
	chk.Scalar(tst, "extent xa", 1e-15, xa, 0.05)
	chk.Scalar(tst, "extent xb", 1e-15, xb, 0.15)
}
