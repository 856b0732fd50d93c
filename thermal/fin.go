// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermal

import (
	"math"

	"github.com/cpmech/regencool/jacket"
	"github.com/cpmech/regencool/wall"
)

// FinExtraDQDx returns the additional heat flow per unit axial length (W/m)
// contributed by extended-surface fins, beyond what the plain (no-fin)
// resistance network in Assemble already accounts for. Zero when the
// blockage ratio is negligible. Grounded on bamboo/engine.py
// Engine.extra_dQ_dx.
//
// R is the wall-stack outer radius (coolant side) at x; hc is the coolant
// film coefficient from the same station's Assemble call; Tb=Tcw is the fin
// base temperature, Tinf=Tc the coolant bulk temperature; walls is the wall
// stack, whose innermost (coolant-adjacent, index len-1) layer's
// conductivity conducts the fin.
func FinExtraDQDx(x, R float64, jck *jacket.CoolingJacket, walls wall.Stack, hc, Tb, Tinf float64) float64 {
	br := jck.BlockageRatio.At(x)
	if math.Abs(br) < 1e-12 || jck.NumberOfFins < 1 {
		return 0
	}
	h := jck.ChannelHeight.At(x)
	kw := walls[len(walls)-1].Material.K
	const Pfin = 2.0

	var Afin, baseNoFin float64
	switch jck.Configuration {
	case jacket.Spiral:
		pitch := jck.Pitch.At(x)
		Afin = pitch * br / float64(jck.NumberOfFins)
		baseNoFin = pitch * (1 - br)
	default:
		Afin = 2 * math.Pi * R * br / float64(jck.NumberOfFins)
		baseNoFin = 2 * math.Pi * R * (1 - br)
	}

	m := math.Sqrt(hc * Pfin / (kw * Afin))
	QfinSingle := math.Sqrt(hc*Pfin*kw*Afin) * (Tb - Tinf) * math.Tanh(m*h)

	return math.Abs(QfinSingle*float64(jck.NumberOfFins)) - baseNoFin*hc*(Tb-Tinf)
}
