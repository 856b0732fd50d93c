// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command regencool runs a demonstration steady-state regenerative-cooling
// solve over a built-in engine contour and prints the resulting coolant and
// wall-stress profile station by station.
//
// Grounded on gofem's main.go (flag-parsed entry point, utl/io-based
// colored console output) and tools/GeostCalc.go (a small standalone
// command built around a single analysis call), narrowed to a
// single-threaded run with no mpi, per spec.md's single-threaded model.
package main

import (
	"flag"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/regencool/engine"
	"github.com/cpmech/regencool/field"
	"github.com/cpmech/regencool/geom"
	"github.com/cpmech/regencool/hx"
	"github.com/cpmech/regencool/isen"
	"github.com/cpmech/regencool/jacket"
	"github.com/cpmech/regencool/thermal"
	"github.com/cpmech/regencool/transport"
	"github.com/cpmech/regencool/wall"
)

func main() {
	nStations := flag.Int("n", 21, "number of marching stations")
	flag.Parse()

	io.Pf("\nregencool -- steady-state regenerative-cooling solver\n\n")

	g, err := geom.New([]float64{-0.15, 0, 0.20}, []float64{0.10, 0.05, 0.12})
	die(err)

	gas, err := isen.NewFromGammaCp(1.22, 1850)
	die(err)

	chamber := isen.ChamberConditions{P0: 60e5, T0: 3400}

	copper, err := wall.NewMaterial("copper-C106", 117e9, 70e6, 0.33, 17e-6, 385)
	die(err)
	w1, err := wall.NewWall(copper, 1.5e-3)
	die(err)
	walls, err := wall.NewStack(w1)
	die(err)

	jck, err := jacket.New(300, 80e5, 2.5, field.Const(2.5e-3), jacket.Vertical,
		jacket.WithBlockageRatio(field.Const(0.25)), jacket.WithNumberOfFins(40))
	die(err)

	coolant := transport.NewConstant(800, 1.5e-4, 0.12, 2300) // kerosene-like
	exhaust := transport.NewConstant(2.5, 9e-5, 0.25, 2100)

	thermalCfg := thermal.Config{ExhaustModel: thermal.ExhaustBartz}
	eng, err := engine.New(g, gas, chamber, walls, jck, coolant, exhaust, thermalCfg,
		engine.WithDirection(hx.CounterFlow), engine.WithExhaustExitPressure(1.2e5))
	die(err)

	io.Pfcyan("mdot   = %.4f kg/s\n", eng.Mdot())
	io.Pfcyan("c_star = %.2f m/s\n\n", eng.CStar())

	res, err := eng.Run(hx.DefaultOptions(*nStations))
	die(err)

	io.Pfgreen("%10s %10s %10s %10s %12s %12s\n", "x", "Tc", "Tcw", "Thw", "sig_press", "sig_therm")
	for _, s := range res.Stations {
		sig := s.Stresses[len(s.Stresses)-1]
		io.Pf("%10.4f %10.2f %10.2f %10.2f %12.4e %12.4e\n",
			s.X, s.Tc, s.Tcw, s.Thw, sig.SigmaPressure, sig.SigmaTotal-sig.SigmaPressure)
	}
}

func die(err error) {
	if err != nil {
		io.PfRed("ERROR: %v\n", err)
		panic(err)
	}
}
