// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stress implements the Huzel & Huang tangential-stress
// post-processor: thermal stress from the through-wall heat flux, and
// pressure (hoop) stress with the fin-restrained branch for blocked
// cooling channels.
//
// Grounded on ana/pressurised_cylinder.go's Hill (thick-cylinder hoop
// stress under internal pressure) for the Go shape of a stress
// post-processor operating on a radius/material pair, narrowed and
// re-derived here to the thin-wall Huzel & Huang formulas bamboo/engine.py
// uses (Engine.R_th's wall-stack layering and lines ~1038-1087 for the
// exact stress expressions).
package stress

import (
	"math"

	"github.com/cpmech/regencool/jacket"
	"github.com/cpmech/regencool/wall"
)

// Result holds the tangential stress components at one wall layer.
type Result struct {
	SigmaThermal  float64 // thermal tangential stress (Pa)
	SigmaPressure float64 // pressure tangential stress (Pa)
	SigmaTotal    float64 // sum of the two (Pa)
}

// Tangential computes the thermal and pressure tangential stresses in wall
// layer j (0 = hot-gas-side layer) at axial station x, given the bore
// radius y(x), the per-unit-length heat flow qdotPrime, the coolant static
// pressure pc and the exhaust static pressure pExhaust.
func Tangential(x float64, j int, walls wall.Stack, y, qdotPrime, pc, pExhaust float64, jck *jacket.CoolingJacket) Result {
	w := walls[j]
	t := w.T(x)
	m := w.Material

	innerOffset := 0.0
	for k := 0; k < j; k++ {
		innerOffset += walls[k].T(x)
	}
	D := 2*(y+innerOffset) + t

	sigmaThermal := m.E * m.Alpha * (qdotPrime / (2 * math.Pi * y)) * t / (2 * (1 - m.Nu) * m.K)

	dp := pc - pExhaust
	br := jck.BlockageRatio.At(x)
	var sigmaPressure float64
	if br < 1e-12 || !jck.RestrainFins {
		sigmaPressure = dp * D / (2 * t)
	} else {
		n := float64(jck.NumberOfFins)
		var width float64
		if jck.Configuration == jacket.Spiral {
			width = jck.Pitch.At(x) * (1 - br)
		} else {
			width = math.Pi * D * (1 - br) / n
		}
		sigmaPressure = 0.5 * dp * (width / t) * (width / t)
	}

	return Result{SigmaThermal: sigmaThermal, SigmaPressure: sigmaPressure, SigmaTotal: sigmaThermal + sigmaPressure}
}

// AllLayers computes Tangential for every wall in the stack, ordered
// hot-to-cold (matching wall.Stack's own index convention).
func AllLayers(x float64, walls wall.Stack, y, qdotPrime, pc, pExhaust float64, jck *jacket.CoolingJacket) []Result {
	out := make([]Result, len(walls))
	for j := range walls {
		out[j] = Tangential(x, j, walls, y, qdotPrime, pc, pExhaust, jck)
	}
	return out
}
