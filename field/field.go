// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field implements scalar-or-function-of-x values, used throughout
// regencool for quantities that a caller may give as a constant or as a
// function of axial position (channel height, blockage ratio, pitch,
// roughness, wall thickness).
package field

// Field returns a value at a given axial position x.
//
// This mirrors the "callable or scalar" idiom of gofem/inp.FuncData and
// gosl/fun.Func, narrowed to a single spatial variable.
type Field interface {
	At(x float64) float64
}

// Const is a Field that does not vary with x.
type Const float64

// At returns the constant value, ignoring x.
func (c Const) At(x float64) float64 { return float64(c) }

// Func wraps a closure as a Field.
type Func func(x float64) float64

// At evaluates the wrapped closure.
func (f Func) At(x float64) float64 { return f(x) }

// Zero is the always-zero field, analogous to gosl/fun.Zero.
var Zero Field = Const(0)
