// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine orchestrates the full steady-state solve: it wires the
// isentropic gas path, the wall stack, the cooling jacket, the thermal
// assembler and the coolant marching integrator together, then
// post-processes wall stresses station by station.
//
// Grounded on gofem/fem's Start/Run orchestration shape (a single entry
// point assembling the sub-models configured elsewhere) and on
// out/quantity.go's node/ip-quantity extraction idiom, narrowed here to a
// single in-memory Results value rather than a file-backed output database
// (this solver has no persistence layer, per spec.md's Non-goals).
package engine

import (
	"math"

	"github.com/cpmech/regencool/geom"
	"github.com/cpmech/regencool/hx"
	"github.com/cpmech/regencool/isen"
	"github.com/cpmech/regencool/jacket"
	"github.com/cpmech/regencool/rerr"
	"github.com/cpmech/regencool/stress"
	"github.com/cpmech/regencool/thermal"
	"github.com/cpmech/regencool/transport"
	"github.com/cpmech/regencool/wall"
)

// Engine is the fully-configured rocket-engine model: geometry, gas,
// chamber conditions, wall stack, cooling jacket and transport-property
// providers, plus the options governing the marching solver and the
// convection model selection.
type Engine struct {
	Geom          *geom.Geometry
	Gas           *isen.PerfectGas
	Chamber       isen.ChamberConditions
	Walls         wall.Stack
	Jacket        *jacket.CoolingJacket
	CoolantProps  transport.Properties
	ExhaustProps  transport.Properties
	PExhaustExit  float64 // ambient/exit static pressure used by the stress post-processor
	ThermalConfig thermal.Config
	Direction     hx.Direction
	Warner        rerr.Warner

	mdot float64
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithDirection selects co-flow or counter-flow coolant circulation.
func WithDirection(d hx.Direction) Option { return func(e *Engine) { e.Direction = d } }

// WithWarner installs a custom physical-warning sink.
func WithWarner(w rerr.Warner) Option { return func(e *Engine) { e.Warner = w } }

// WithExhaustExitPressure sets the back-pressure used by the stress
// post-processor (defaults to 0, i.e. full Delta-p across each wall).
func WithExhaustExitPressure(p float64) Option { return func(e *Engine) { e.PExhaustExit = p } }

// New builds an Engine and resolves the choked mass flow from the throat
// area and chamber conditions.
func New(g *geom.Geometry, gas *isen.PerfectGas, chamber isen.ChamberConditions, walls wall.Stack,
	jck *jacket.CoolingJacket, coolantProps, exhaustProps transport.Properties, thermalCfg thermal.Config, opts ...Option) (*Engine, error) {
	if g == nil || gas == nil || jck == nil {
		return nil, rerr.Config("engine.New", "geometry, gas and jacket are required")
	}
	if len(walls) == 0 {
		return nil, rerr.Config("engine.New", "at least one wall layer is required")
	}
	thermalCfg.Gas = gas
	thermalCfg.Chamber = chamber
	thermalCfg.Throat = g
	e := &Engine{
		Geom: g, Gas: gas, Chamber: chamber, Walls: walls, Jacket: jck,
		CoolantProps: coolantProps, ExhaustProps: exhaustProps, ThermalConfig: thermalCfg,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.mdot = isen.ChokedMassFlow(g.At, chamber, gas)
	if thermalCfg.CStar == 0 {
		e.ThermalConfig.CStar = e.CStar()
	}
	return e, nil
}

// Mdot returns the choked mass flow rate (kg/s).
func (e *Engine) Mdot() float64 { return e.mdot }

// CStar returns the characteristic velocity c* = p0*At/mdot.
func (e *Engine) CStar() float64 {
	return e.Chamber.P0 * e.Geom.At / e.mdot
}

// Thrust returns the thrust estimate at the exit plane,
// F = mdot*Ve + (pe-pa)*Ae, given the exit static pressure pe and ambient
// pressure pa.
func (e *Engine) Thrust(pe, pa float64) float64 {
	Me, _ := isen.Mach(e.Geom.Xmax(), e.Geom.Xt, e.Geom.A, e.Gas, e.Chamber, e.mdot)
	Te := isen.Temperature(e.Chamber.T0, Me, e.Gas.Gamma)
	Ve := Me * math.Sqrt(e.Gas.Gamma*e.Gas.R*Te)
	return e.mdot*Ve + (pe-pa)*e.Geom.Ae
}

// Isp returns the specific impulse (m/s), Isp = Thrust/mdot, per spec.md's
// Isp = F/mdot (no standard-gravity divisor; matches bamboo/engine.py's
// isp()).
func (e *Engine) Isp(thrust float64) float64 {
	return thrust / e.mdot
}

// StationResult bundles the marching solver's station state with its
// derived per-wall stresses.
type StationResult struct {
	*hx.Station
	Stresses []stress.Result // ordered hot-to-cold, matching wall.Stack
}

// Results is the full solve output.
type Results struct {
	Stations []*StationResult
	Info     map[string]string
}

// Run marches the coolant/wall system over the full engine length and
// post-processes wall stresses at every station.
func (e *Engine) Run(opts hx.Options) (*Results, error) {
	warner := e.Warner
	if warner == nil {
		warner = &rerr.WarnOnce{Warner: rerr.LogWarner{}}
	}
	driver := &hx.Driver{
		Geom: e.Geom, Gas: e.Gas, Chamber: e.Chamber, Mdot: e.mdot,
		Walls: e.Walls, Jacket: e.Jacket,
		CoolantProps: e.CoolantProps, ExhaustProps: e.ExhaustProps,
		ThermalConfig: e.ThermalConfig, Direction: e.Direction, Warner: warner,
	}
	if err := driver.Run(e.Geom.Xmin(), e.Geom.Xmax(), opts); err != nil {
		return nil, err
	}

	stations := make([]*StationResult, len(driver.Res))
	for i, s := range driver.Res {
		stresses := stress.AllLayers(s.X, e.Walls, e.Geom.Y(s.X), s.QdotPrime, s.ThermalResult.Pc, e.PExhaustExit, e.Jacket)
		stations[i] = &StationResult{Station: s, Stresses: stresses}
	}

	info := map[string]string{
		"mdot":   formatFloat(e.mdot),
		"cstar":  formatFloat(e.CStar()),
		"n_walls": formatInt(len(e.Walls)),
	}
	return &Results{Stations: stations, Info: info}, nil
}
