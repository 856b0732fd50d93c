// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jacket implements the cooling-jacket description: channel
// geometry (vertical annulus or helical spiral), blockage/fins, roughness,
// and inlet conditions.
//
// Grounded on bamboo/engine.py's CoolingJacket for the exact semantics, and
// on gofem/inp constructors (error-returning, rather than bamboo's
// assert-based validation) for the Go idiom.
package jacket

import (
	"math"

	"github.com/cpmech/regencool/field"
	"github.com/cpmech/regencool/rerr"
)

// Configuration selects the cooling-channel topology.
type Configuration int

// Configurations.
const (
	Vertical Configuration = iota
	Spiral
)

// String names a Configuration.
func (c Configuration) String() string {
	if c == Spiral {
		return "spiral"
	}
	return "vertical"
}

// CoolingJacket describes the coolant-side channel and inlet conditions.
// Built once via New and never mutated during a run.
type CoolingJacket struct {
	TCoolantIn    float64 // inlet coolant temperature (K)
	P0CoolantIn   float64 // inlet coolant stagnation pressure (Pa)
	MdotCoolant   float64 // coolant mass flow rate (kg/s)
	ChannelHeight field.Field
	Roughness     field.Field // nil => smooth wall
	Configuration Configuration
	BlockageRatio field.Field
	NumberOfFins  int
	Pitch         field.Field // required for Spiral
	XA, XB        float64     // axial extent; equal if not restricted
	HasExtent     bool
	RestrainFins  bool
}

// Option configures a CoolingJacket at construction time.
type Option func(*CoolingJacket)

// WithRoughness sets a (possibly axially varying) channel roughness. Absent
// by default, meaning a smooth-wall friction model is used.
func WithRoughness(r field.Field) Option { return func(j *CoolingJacket) { j.Roughness = r } }

// WithBlockageRatio sets the fraction of channel cross-section occupied by
// fins (scalar or function of x). Zero by default.
func WithBlockageRatio(br field.Field) Option { return func(j *CoolingJacket) { j.BlockageRatio = br } }

// WithNumberOfFins sets the fin count (vertical: around the circumference;
// spiral: per pitch / parallel helices).
func WithNumberOfFins(n int) Option { return func(j *CoolingJacket) { j.NumberOfFins = n } }

// WithPitch sets the axial pitch for a Spiral configuration.
func WithPitch(p field.Field) Option { return func(j *CoolingJacket) { j.Pitch = p } }

// WithExtent restricts the jacket to [xa,xb] instead of the full engine.
func WithExtent(xa, xb float64) Option {
	return func(j *CoolingJacket) {
		if xa > xb {
			xa, xb = xb, xa
		}
		j.XA, j.XB, j.HasExtent = xa, xb, true
	}
}

// WithRestrainFins overrides the restrain_fins default (true).
func WithRestrainFins(v bool) Option { return func(j *CoolingJacket) { j.RestrainFins = v } }

// New validates and builds a CoolingJacket, per the invariants in spec.md
// section 3: blockage_ratio=0 implies no fin contribution; spiral requires
// pitch; vertical with blockage_ratio>0 requires number_of_fins>=1.
func New(tIn, p0In, mdot float64, channelHeight field.Field, configuration Configuration, opts ...Option) (*CoolingJacket, error) {
	if tIn <= 0 {
		return nil, rerr.Configf("jacket.New", "T_coolant_in=%g must be positive", tIn)
	}
	if p0In <= 0 {
		return nil, rerr.Configf("jacket.New", "p0_coolant_in=%g must be positive", p0In)
	}
	if mdot <= 0 {
		return nil, rerr.Configf("jacket.New", "mdot_coolant=%g must be positive", mdot)
	}
	if channelHeight == nil {
		return nil, rerr.Config("jacket.New", "channel_height is required")
	}
	j := &CoolingJacket{
		TCoolantIn:    tIn,
		P0CoolantIn:   p0In,
		MdotCoolant:   mdot,
		ChannelHeight: channelHeight,
		Configuration: configuration,
		BlockageRatio: field.Const(0),
		RestrainFins:  true,
	}
	for _, opt := range opts {
		opt(j)
	}
	if j.Configuration == Spiral && j.Pitch == nil {
		return nil, rerr.Config("jacket.New", "pitch is required for configuration=spiral")
	}
	// only a constant blockage ratio is validated here (range and fin-count
	// invariants); a blockage ratio given as a function of x is not checked.
	if br, ok := j.BlockageRatio.(field.Const); ok {
		if float64(br) < 0 || float64(br) >= 1 {
			return nil, rerr.Configf("jacket.New", "blockage_ratio=%g must be in [0,1)", float64(br))
		}
		if float64(br) > 0 {
			if j.Configuration == Vertical && j.NumberOfFins < 1 {
				return nil, rerr.Config("jacket.New", "vertical configuration with blockage_ratio>0 requires number_of_fins>=1")
			}
			if j.Configuration == Spiral && j.NumberOfFins < 1 {
				return nil, rerr.Config("jacket.New", "spiral configuration requires number_of_fins>=1 when fins are present")
			}
		}
	}
	return j, nil
}

// Extent returns the axial range the jacket covers, defaulting to
// [engineXmin, engineXmax] when no explicit extent was set.
func (j *CoolingJacket) Extent(engineXmin, engineXmax float64) (float64, float64) {
	if j.HasExtent {
		return j.XA, j.XB
	}
	return engineXmin, engineXmax
}

// FlowArea returns the coolant flow cross-section Ac [m^2] and hydraulic
// diameter Dh [m] at x, given R, the radius of the engine's outer wall
// surface (the coolant side of the wall stack) at x. Grounded on
// bamboo/engine.py Engine.A_coolant/Dh_coolant (spec.md section 4.H step 4).
func (j *CoolingJacket) FlowArea(x, R float64) (Ac, Dh float64) {
	h := j.ChannelHeight.At(x)
	br := j.BlockageRatio.At(x)
	n := float64(j.NumberOfFins)
	switch j.Configuration {
	case Spiral:
		pitch := j.Pitch.At(x)
		Ac = pitch * h * (1 - br)
		P := 2*pitch + 2*h + 2*h*n
		Dh = 4 * Ac / P
	default: // Vertical
		Ac = math.Pi * ((R+h)*(R+h) - R*R) * (1 - br)
		P := (2*math.Pi*R+2*math.Pi*(R+h))*(1-br) + 2*n*h
		Dh = 4 * Ac / P
	}
	return
}

// DLDx returns the ratio dL/dx between coolant path length and axial
// distance. For a spiral jacket the coolant travels a helix of angle
// atan(2 pi R / pitch), so dL/dx = 1/cos(helix_angle); for a vertical
// jacket the coolant travels parallel to the axis, so dL/dx = 1.
// Grounded on bamboo/engine.py Engine.dp_dx's spiral helix-angle factor.
func (j *CoolingJacket) DLDx(x, R float64) float64 {
	if j.Configuration != Spiral {
		return 1
	}
	pitch := j.Pitch.At(x)
	helix := math.Atan2(2*math.Pi*R, pitch)
	return 1 / math.Cos(helix)
}
