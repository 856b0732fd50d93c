// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wall

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_material01(tst *testing.T) {
	chk.PrintTitle("material01")
	if _, err := NewMaterial("copper", 117e9, 70e6, 0.33, 17e-6, 385); err != nil {
		tst.Errorf("NewMaterial failed: %v", err)
	}
	if _, err := NewMaterial("bad", -1, 70e6, 0.33, 17e-6, 385); err == nil {
		tst.Errorf("expected error for negative E")
	}
}

func Test_stack01(tst *testing.T) {
	chk.PrintTitle("stack01")
	cu, _ := NewMaterial("copper", 117e9, 70e6, 0.33, 17e-6, 385)
	w1, _ := NewWall(cu, 2e-3)
	w2, _ := NewWall(cu, 1e-3)
	s, err := NewStack(w1, w2)
	if err != nil {
		tst.Errorf("NewStack failed: %v", err)
		return
	}
	chk.Scalar(tst, "TotalThickness", 1e-15, s.TotalThickness(0), 3e-3)
}

func Test_wall_invalid01(tst *testing.T) {
	chk.PrintTitle("wall_invalid01")
	cu, _ := NewMaterial("copper", 117e9, 70e6, 0.33, 17e-6, 385)
	if _, err := NewWall(cu, -1e-3); err == nil {
		tst.Errorf("expected error for non-positive thickness")
	}
	if _, err := NewStack(); err == nil {
		tst.Errorf("expected error for empty stack")
	}
}
