// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hx implements the coolant marching integrator: the core solver
// that steps the coolant state (temperature, stagnation pressure, wall
// interface temperatures) station by station along the engine axis, driven
// by the per-station thermal-resistance network from the thermal package.
//
// Grounded on gofem/msolid's Driver/Run shape (Init configures the model,
// Run walks a path accumulating a Res slice of states) and on
// bamboo/engine.py's Engine.steady_heating_analysis for the exact governing
// updates.
package hx

import (
	"math"

	"github.com/cpmech/regencool/geom"
	"github.com/cpmech/regencool/isen"
	"github.com/cpmech/regencool/jacket"
	"github.com/cpmech/regencool/rerr"
	"github.com/cpmech/regencool/thermal"
	"github.com/cpmech/regencool/transport"
	"github.com/cpmech/regencool/wall"
)

// Direction selects which way the coolant flows along x.
type Direction int

// Flow directions.
const (
	CoFlow      Direction = iota // coolant flows from xmin to xmax, same sense as increasing x
	CounterFlow                  // coolant flows from xmax to xmin
)

// Options configure the marching solver's discretization and fixed-point
// iteration counts (spec.md section 4.I).
type Options struct {
	NStations int // number of axial stations, >=2
	IterStart int // boundary/entry iteration count, default 5
	IterEach  int // per-station local iteration count, default 1
}

// DefaultOptions returns spec.md's default iteration counts.
func DefaultOptions(nStations int) Options {
	return Options{NStations: nStations, IterStart: 5, IterEach: 1}
}

// Station is the resolved state at one axial station after marching.
type Station struct {
	X         float64
	Tc        float64 // coolant bulk temperature (K)
	P0c       float64 // coolant stagnation pressure (Pa)
	Tcw       float64 // coolant-side wall interface temperature (K)
	Thw       float64 // hot-gas-side wall interface temperature (K)
	QdotPrime float64 // heat flow per unit axial length (W/m)
	Mach      float64
	Th        float64 // hot-gas static temperature (K)
	R         []float64
	ThermalResult *thermal.Result
}

// Driver assembles the geometry, gas, wall, jacket and transport models and
// marches the coupled coolant/wall system along x.
type Driver struct {
	Geom          *geom.Geometry
	Gas           *isen.PerfectGas
	Chamber       isen.ChamberConditions
	Mdot          float64
	Walls         wall.Stack
	Jacket        *jacket.CoolingJacket
	CoolantProps  transport.Properties
	ExhaustProps  transport.Properties
	ThermalConfig thermal.Config
	Direction     Direction
	Warner        rerr.Warner

	Res []*Station
}

// gasState resolves the hot-gas static state at x via the isentropic Mach
// solver (component G).
func (d *Driver) gasState(x float64) (thermal.GasState, error) {
	M, err := isen.Mach(x, d.Geom.Xt, d.Geom.A, d.Gas, d.Chamber, d.Mdot)
	if err != nil {
		return thermal.GasState{}, err
	}
	T := isen.Temperature(d.Chamber.T0, M, d.Gas.Gamma)
	P := isen.Pressure(d.Chamber.P0, M, d.Gas.Gamma)
	rho := P / (d.Gas.R * T)
	V := M * math.Sqrt(d.Gas.Gamma*d.Gas.R*T)
	return thermal.GasState{M: M, T: T, P: P, Rho: rho, V: V, Gamma: d.Gas.Gamma}, nil
}

// Run marches the coolant/wall system over [xmin,xmax] intersected with the
// jacket's extent, producing d.Res ordered by increasing x regardless of
// flow direction.
func (d *Driver) Run(xmin, xmax float64, opts Options) error {
	if opts.NStations < 2 {
		return rerr.Configf("hx.Driver.Run", "n_stations=%d must be >=2", opts.NStations)
	}
	xa, xb := d.Jacket.Extent(xmin, xmax)
	if xa < xmin {
		xa = xmin
	}
	if xb > xmax {
		xb = xmax
	}
	if xb <= xa {
		return rerr.Configf("hx.Driver.Run", "jacket extent [%g,%g] does not overlap engine range [%g,%g]", xa, xb, xmin, xmax)
	}

	n := opts.NStations
	xs := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = xa + (xb-xa)*float64(i)/float64(n-1)
	}

	// station order in the coolant's flow direction
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if d.Direction == CounterFlow {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}
	dx := (xb - xa) / float64(n-1)
	if d.Direction == CounterFlow {
		dx = -dx
	}

	iterStart := opts.IterStart
	if iterStart < 1 {
		iterStart = 1
	}
	iterEach := opts.IterEach
	if iterEach < 1 {
		iterEach = 1
	}

	// seed guesses: Tcw=Thw=Tc_in everywhere for the first pass.
	tcwGuess := make([]float64, n)
	thwGuess := make([]float64, n)
	for i := range tcwGuess {
		tcwGuess[i] = d.Jacket.TCoolantIn
		thwGuess[i] = d.Jacket.TCoolantIn
	}

	var stations []*Station
	for pass := 0; pass < iterStart; pass++ {
		stations = make([]*Station, n)
		Tc := d.Jacket.TCoolantIn
		P0c := d.Jacket.P0CoolantIn
		for oi, idx := range order {
			x := xs[idx]
			tcw := tcwGuess[idx]
			thw := thwGuess[idx]

			gas, err := d.gasState(x)
			if err != nil {
				return err
			}

			var res *thermal.Result
			var qdot float64
			for it := 0; it < iterEach; it++ {
				res, err = thermal.Assemble(d.ThermalConfig, x, d.Geom.Y(x), d.Walls, d.Jacket,
					d.CoolantProps, d.ExhaustProps, gas, Tc, P0c, tcw, thw, d.Warner)
				if err != nil {
					return err
				}
				total := thermal.TotalResistance(res.R)
				extra := thermal.FinExtraDQDx(x, d.Geom.Y(x)+d.Walls.TotalThickness(x), d.Jacket, d.Walls, res.HCoolant, tcw, Tc)
				qdot = (gas.T-Tc)/total + extra
				tcw, thw = interfaceTemperatures(Tc, qdot, res.R)
			}
			tcwGuess[idx], thwGuess[idx] = tcw, thw

			stations[idx] = &Station{
				X: x, Tc: Tc, P0c: P0c, Tcw: tcw, Thw: thw,
				QdotPrime: qdot, Mach: gas.M, Th: gas.T, R: res.R, ThermalResult: res,
			}

			if oi == len(order)-1 {
				break
			}
			cp := d.CoolantProps.Cp(Tc, P0c)
			Tc = Tc + qdot*dx/(d.Jacket.MdotCoolant*cp)

			R := d.Geom.Y(x) + d.Walls.TotalThickness(x)
			dpdL := res.FDarcy * (res.Rho / 2) * res.V * res.V / res.Dh
			dLdx := d.Jacket.DLDx(x, R)
			P0c = P0c - dpdL*dLdx*math.Abs(dx)
		}
	}

	d.Res = stations
	return nil
}

// interfaceTemperatures returns (Tcw, Thw) from the cumulative cold->hot
// resistance sums, per spec.md section 4.I.
func interfaceTemperatures(Tc, qdotPrime float64, R []float64) (Tcw, Thw float64) {
	cum := 0.0
	Ts := make([]float64, len(R))
	for j, r := range R {
		cum += r
		Ts[j] = Tc + qdotPrime*cum
	}
	Tcw = Ts[0]
	Thw = Ts[len(Ts)-2]
	return
}
