// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the engine-contour geometry: a piecewise-linear
// inner contour y(x), derived flow area A(x), and throat/exit properties.
//
// Grounded on bamboo/engine.py's Geometry class and on gofem/shp/lins.go's
// 1-D linear shape-function interpolation idiom (bracket + linear blend).
package geom

import (
	"math"
	"sort"

	"github.com/cpmech/regencool/rerr"
)

// Geometry is a strictly-increasing set of axial stations with the inner
// radius at each. Throat and exit quantities are derived once at
// construction time; xs/ys are never mutated afterwards.
type Geometry struct {
	xs []float64
	ys []float64

	It int     // index of the throat (argmin of ys)
	Xt float64 // throat x-position
	Rt float64 // throat radius
	At float64 // throat area
	Re float64 // exit radius
	Ae float64 // exit area
}

// New validates and builds a Geometry from strictly increasing xs and
// corresponding radii ys (all positive), per spec.md section 3.
func New(xs, ys []float64) (*Geometry, error) {
	if len(xs) != len(ys) || len(xs) < 2 {
		return nil, rerr.Configf("geom.New", "xs and ys must have equal length >= 2, got %d and %d", len(xs), len(ys))
	}
	for i, y := range ys {
		if y <= 0 {
			return nil, rerr.Configf("geom.New", "ys[%d]=%g must be positive", i, y)
		}
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, rerr.Configf("geom.New", "xs must be strictly increasing: xs[%d]=%g <= xs[%d]=%g", i, xs[i], i-1, xs[i-1])
		}
	}
	g := &Geometry{xs: append([]float64(nil), xs...), ys: append([]float64(nil), ys...)}
	g.It = 0
	for i, y := range g.ys {
		if y < g.ys[g.It] {
			g.It = i
		}
	}
	g.Xt = g.xs[g.It]
	g.Rt = g.ys[g.It]
	g.At = math.Pi * g.Rt * g.Rt
	g.Re = g.ys[len(g.ys)-1]
	g.Ae = math.Pi * g.Re * g.Re
	return g, nil
}

// Xmin is the first axial station.
func (g *Geometry) Xmin() float64 { return g.xs[0] }

// Xmax is the last axial station.
func (g *Geometry) Xmax() float64 { return g.xs[len(g.xs)-1] }

// Y returns the inner radius at x, by linear interpolation between the
// bracketing grid points (extrapolating flat beyond the ends).
func (g *Geometry) Y(x float64) float64 {
	n := len(g.xs)
	if x <= g.xs[0] {
		return g.ys[0]
	}
	if x >= g.xs[n-1] {
		return g.ys[n-1]
	}
	// i is the first index with xs[i] >= x
	i := sort.Search(n, func(i int) bool { return g.xs[i] >= x })
	if g.xs[i] == x {
		return g.ys[i]
	}
	x0, x1 := g.xs[i-1], g.xs[i]
	y0, y1 := g.ys[i-1], g.ys[i]
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}

// A returns the flow area at x: A(x) = pi*y(x)^2.
func (g *Geometry) A(x float64) float64 {
	y := g.Y(x)
	return math.Pi * y * y
}
