// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wall implements solid wall materials and the ordered wall stack
// between the hot gas and the coolant.
//
// Grounded on gofem/inp/mat.go (Material/MatDb) for the validated-constructor
// idiom, and on gofem/msolid/elasticity.go (SmallElasticity's E/Nu/K/G fields)
// for the elastic-constant struct shape -- narrowed here from a full
// elasticity tensor calculator to the scalar constants spec.md section 3
// requires (E, sigma_y, nu, alpha, k).
package wall

import (
	"github.com/cpmech/regencool/field"
	"github.com/cpmech/regencool/rerr"
)

// Material holds the solid properties needed by the thermal and stress
// models. All fields must be positive.
type Material struct {
	Name   string  // descriptive name, e.g. "copper-C106"
	E      float64 // Young's modulus (Pa)
	SigmaY float64 // 0.2% yield stress (Pa)
	Nu     float64 // Poisson's ratio
	Alpha  float64 // thermal expansion coefficient (1/K)
	K      float64 // thermal conductivity (W/m/K)
}

// NewMaterial validates and builds a Material.
func NewMaterial(name string, E, sigmaY, nu, alpha, k float64) (*Material, error) {
	if E <= 0 {
		return nil, rerr.Configf("wall.Material", "%s: E=%g must be positive", name, E)
	}
	if sigmaY <= 0 {
		return nil, rerr.Configf("wall.Material", "%s: sigma_y=%g must be positive", name, sigmaY)
	}
	if nu <= 0 {
		return nil, rerr.Configf("wall.Material", "%s: nu=%g must be positive", name, nu)
	}
	if alpha <= 0 {
		return nil, rerr.Configf("wall.Material", "%s: alpha=%g must be positive", name, alpha)
	}
	if k <= 0 {
		return nil, rerr.Configf("wall.Material", "%s: k=%g must be positive", name, k)
	}
	return &Material{Name: name, E: E, SigmaY: sigmaY, Nu: nu, Alpha: alpha, K: k}, nil
}

// Wall is one layer of the wall stack: a material and a (possibly
// axially-varying) thickness.
type Wall struct {
	Material  *Material
	Thickness field.Field
}

// NewWall validates and builds a Wall from a constant thickness.
func NewWall(material *Material, thickness float64) (*Wall, error) {
	if thickness <= 0 {
		return nil, rerr.Configf("wall.Wall", "%s: thickness=%g must be positive", material.Name, thickness)
	}
	return &Wall{Material: material, Thickness: field.Const(thickness)}, nil
}

// NewWallField builds a Wall from an axially-varying thickness field.
func NewWallField(material *Material, thickness field.Field) *Wall {
	return &Wall{Material: material, Thickness: thickness}
}

// T returns the wall thickness at x.
func (w *Wall) T(x float64) float64 { return w.Thickness.At(x) }

// Stack is the ordered sequence of walls from the hot side (index 0) to the
// cold side (index n-1).
type Stack []*Wall

// NewStack validates and builds a Stack.
func NewStack(walls ...*Wall) (Stack, error) {
	if len(walls) == 0 {
		return nil, rerr.Config("wall.Stack", "at least one wall is required")
	}
	return Stack(walls), nil
}

// TotalThickness sums every layer's thickness at x. Grounded on
// bamboo/engine.py Engine.total_wall_thickness.
func (s Stack) TotalThickness(x float64) float64 {
	total := 0.0
	for _, w := range s {
		total += w.T(x)
	}
	return total
}
