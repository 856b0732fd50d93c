// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package thermal assembles, at a single axial station, the series
// thermal-resistance network between the hot gas and the coolant, plus the
// optional extended-surface (fin) enhancement term.
//
// Grounded on bamboo/engine.py's Engine.R_th and Engine.extra_dQ_dx for the
// exact formulas, and on gofem/msolid's Driver/State pattern (explicit,
// mutable per-station state threaded between calls rather than package
// globals) for the Go idiom.
package thermal

import (
	"math"

	"github.com/cpmech/regencool/circuit"
	"github.com/cpmech/regencool/geom"
	"github.com/cpmech/regencool/isen"
	"github.com/cpmech/regencool/jacket"
	"github.com/cpmech/regencool/rerr"
	"github.com/cpmech/regencool/transport"
	"github.com/cpmech/regencool/wall"
)

// GasState is the hot-gas state at a station, resolved independently by the
// isentropic solver (component G) before the thermal assembler runs.
type GasState struct {
	M     float64 // local Mach number
	T     float64 // static temperature (K)
	P     float64 // static pressure (Pa)
	Rho   float64 // static density (kg/m^3)
	V     float64 // velocity (m/s)
	Gamma float64 // ratio of specific heats
}

// ExhaustConvectionModel names the hot-side correlation to apply (spec.md
// section 4.B): "dittus-boelter", "bartz", or "bartz-sigma".
type ExhaustConvectionModel string

// Named exhaust convection models.
const (
	ExhaustDittusBoelter ExhaustConvectionModel = "dittus-boelter"
	ExhaustBartz         ExhaustConvectionModel = "bartz"
	ExhaustBartzSigma    ExhaustConvectionModel = "bartz-sigma"
)

// Config collects the engine-level options a station assembly needs.
type Config struct {
	CoolantModel        circuit.PipeFlowModel // override; nil => circuit.DittusBoelter
	ExhaustModel        ExhaustConvectionModel
	UseLaminarConstantQ bool // use Nu=4.36 instead of 3.66 for laminar coolant flow
	Gas                 *isen.PerfectGas
	Throat              *geom.Geometry // supplies Rt/At for bartz-sigma
	Chamber             isen.ChamberConditions
	CStar               float64 // characteristic velocity, for bartz-sigma
}

// Result is the outcome of assembling the resistance network at one
// station: the ordered resistances cold to hot, plus the coolant-side
// quantities the marching solver and the fin-enhancement step need.
type Result struct {
	R       []float64 // cold->hot: [R_coolant, R_wall_(n-1)...R_wall_0, R_gas], 1/(W/K) per unit length
	HCoolant float64  // coolant film coefficient (W/m^2/K)
	Dh      float64   // coolant hydraulic diameter (m)
	Re      float64   // coolant Reynolds number
	FDarcy  float64   // coolant Darcy friction factor
	Rho     float64   // coolant density (kg/m^3)
	V       float64   // coolant velocity (m/s)
	Pc      float64   // coolant static pressure (Pa)
	Ac      float64   // coolant flow area (m^2)
	LaminarWarned bool // true if Re<2300 forced the laminar override this call
}

// DensityFixedPoint resolves the coupled density/static-pressure pair for
// incompressible coolant flow: rho depends on p_c, which depends on rho via
// Bernoulli. Iterates rho <- rho(Tc, p_c(rho)) until |delta rho| < rho*1e-12.
// Grounded on bamboo/engine.py Engine.rho_coolant.
func DensityFixedPoint(props transport.Properties, Tc, P0c, mdot, Ac float64) (rho, V, Pc float64) {
	rho = props.Rho(Tc, P0c)
	for i := 0; i < 200; i++ {
		V = mdot / (rho * Ac)
		Pc = P0c - 0.5*rho*V*V
		rhoNew := props.Rho(Tc, Pc)
		if math.Abs(rhoNew-rho) < rho*1e-12 {
			rho = rhoNew
			break
		}
		rho = rhoNew
	}
	V = mdot / (rho * Ac)
	Pc = P0c - 0.5*rho*V*V
	return
}

// Assemble builds the thermal-resistance network at station x (spec.md
// section 4.H). y is the bore radius at x (geom.Geometry.Y); walls is the
// wall stack (index 0 adjacent to the hot gas); jck is the cooling jacket;
// coolantProps/exhaustProps are the transport-property providers; gas is the
// resolved hot-gas state; Tc/P0c are the current coolant temperature and
// stagnation pressure; Tcw/Thw are the current coolant-wall and hot-wall
// interface-temperature guesses (used by Sieder-Tate and bartz-sigma).
func Assemble(cfg Config, x, y float64, walls wall.Stack, jck *jacket.CoolingJacket,
	coolantProps, exhaustProps transport.Properties, gas GasState, Tc, P0c, Tcw, Thw float64,
	warn rerr.Warner) (*Result, error) {

	R := y + walls.TotalThickness(x)
	Ac, Dh := jck.FlowArea(x, R)
	if Ac <= 0 || Dh <= 0 {
		return nil, rerr.Numerical("thermal.Assemble", -1, x, Ac, "non-positive coolant flow area")
	}

	rho, V, Pc := DensityFixedPoint(coolantProps, Tc, P0c, jck.MdotCoolant, Ac)
	mu := coolantProps.Mu(Tc, Pc)
	k := coolantProps.K(Tc, Pc)
	Pr := coolantProps.Pr(Tc, Pc)
	Re := rho * V * Dh / mu
	if Re < 1e-6 {
		Re = 1e-6
	}

	roughness := 0.0
	if jck.Roughness != nil {
		roughness = jck.Roughness.At(x)
	}

	var hc float64
	laminarWarned := false
	if Re < circuit.ReLaminarCutoff {
		in := circuit.PipeFlowInputs{Re: Re, Pr: Pr, K: k, D: Dh}
		if cfg.UseLaminarConstantQ {
			hc = circuit.LaminarConstantQ(in)
		} else {
			hc = circuit.Laminar(in)
		}
		laminarWarned = true
		if warn != nil {
			warn.Warn(&rerr.Error{Kind: rerr.PhysicalWarning, Component: "thermal.Assemble", Station: x, Index: -1,
				Residual: Re, Msg: "coolant Re below 2300, forcing laminar correlation"})
		}
	} else {
		model := cfg.CoolantModel
		if model == nil {
			model = circuit.DittusBoelter
		}
		muWall := coolantProps.Mu(Tcw, Pc)
		f := circuit.FDarcy(Re, Dh, roughness)
		hc = model(circuit.PipeFlowInputs{Re: Re, Pr: Pr, K: k, D: Dh, MuBulk: mu, MuWall: muWall, FDarcy: f})
	}
	fDarcy := circuit.FDarcy(Re, Dh, roughness)

	Rcoolant := 1 / (hc * 2 * math.Pi * R)

	n := len(walls)
	R2 := R // outer radius, starts at coolant-side edge
	wallR := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		t := walls[i].T(x)
		R1 := R2 - t
		wallR[i] = math.Log(R2/R1) / (2 * math.Pi * walls[i].Material.K)
		R2 = R1
	}

	hg, err := exhaustCoefficient(cfg, x, y, gas, exhaustProps, Thw)
	if err != nil {
		return nil, err
	}
	Rgas := 1 / (hg * 2 * math.Pi * y)

	out := make([]float64, 0, n+2)
	out = append(out, Rcoolant)
	for i := n - 1; i >= 0; i-- {
		out = append(out, wallR[i])
	}
	out = append(out, Rgas)

	return &Result{
		R: out, HCoolant: hc, Dh: Dh, Re: Re, FDarcy: fDarcy,
		Rho: rho, V: V, Pc: Pc, Ac: Ac, LaminarWarned: laminarWarned,
	}, nil
}

// exhaustCoefficient dispatches to the configured hot-side convection model.
func exhaustCoefficient(cfg Config, x, y float64, gas GasState, props transport.Properties, Thw float64) (float64, error) {
	switch cfg.ExhaustModel {
	case ExhaustBartz, "":
		mu := props.Mu(gas.T, gas.P)
		Tam := 0.5 * (gas.T + Thw)
		rhoAm := props.Rho(Tam, gas.P)
		muAm := props.Mu(Tam, gas.P)
		mu0 := props.Mu(cfg.Chamber.T0, cfg.Chamber.P0)
		return circuit.Bartz(circuit.BartzInputs{
			D: 2 * y, CpInf: props.Cp(gas.T, gas.P), MuInf: mu, PrInf: props.Pr(gas.T, gas.P),
			RhoInf: gas.Rho, VInf: gas.V, RhoAm: rhoAm, MuAm: muAm, Mu0: mu0,
		}), nil
	case ExhaustBartzSigma:
		if cfg.Throat == nil {
			return 0, rerr.Config("thermal.exhaustCoefficient", "bartz-sigma requires Config.Throat")
		}
		mu0 := props.Mu(cfg.Chamber.T0, cfg.Chamber.P0)
		cp0 := props.Cp(cfg.Chamber.T0, cfg.Chamber.P0)
		pr0 := props.Pr(cfg.Chamber.T0, cfg.Chamber.P0)
		At := cfg.Throat.At
		A := math.Pi * y * y
		Dt := 2 * cfg.Throat.Rt
		return circuit.BartzSigma(circuit.BartzSigmaInputs{
			Dt: Dt, Mu0: mu0, Cp0: cp0, Pr0: pr0, Pc: cfg.Chamber.P0, CStar: cfg.CStar,
			At: At, A: A, Tw: Thw, Tc: cfg.Chamber.T0, M: gas.M, Gamma: gas.Gamma,
		}), nil
	case ExhaustDittusBoelter:
		Dh := 2 * y
		mu := props.Mu(gas.T, gas.P)
		Re := gas.Rho * gas.V * Dh / mu
		in := circuit.PipeFlowInputs{Re: Re, Pr: props.Pr(gas.T, gas.P), K: props.K(gas.T, gas.P), D: Dh}
		return circuit.DittusBoelter(in), nil
	default:
		return 0, rerr.Configf("thermal.exhaustCoefficient", "unknown exhaust convection model %q", cfg.ExhaustModel)
	}
}

// TotalResistance sums an ordered resistance list.
func TotalResistance(R []float64) float64 {
	sum := 0.0
	for _, r := range R {
		sum += r
	}
	return sum
}
