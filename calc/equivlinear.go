// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calc implements the strain-compatible-properties iteration of
// spec §4.2: Driver drives shear modulus and damping toward
// strain-compatibility with the computed ground response; LinearElasticDriver
// returns the same driver set up for a single, non-updating pass.
package calc

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/arkottke/strata-sub000/motion"
	"github.com/arkottke/strata-sub000/soil"
	"github.com/arkottke/strata-sub000/wave"
)

// DefaultStrainRatio, DefaultErrorTolerance and DefaultMaxIterations are the
// common SHAKE-style defaults (spec §4.2).
const (
	DefaultStrainRatio    = 0.65
	DefaultErrorTolerance = 2.0 // percent
	DefaultMaxIterations  = 15
)

// Driver runs the equivalent-linear (or, with MaxIterations=1, the
// linear-elastic) iteration of spec §4.2.
type Driver struct {
	Profile *soil.SoilProfile
	Motion  motion.Motion

	InputLocation soil.Location
	InputType     motion.Type

	StrainRatio    float64 // r in (0, 1], default DefaultStrainRatio
	ErrorTolerance float64 // tau, percent, default DefaultErrorTolerance
	MaxIterations  int     // Kmax, default DefaultMaxIterations

	Gravity          float64 // default soil.DefaultGravity
	Verbose          bool    // print iteration diagnostics via gosl/io, as msolid.Driver does
	NoPropertyUpdate bool    // linear-elastic driver: compute the response but never overwrite ShearMod/Damping

	// Cancelled, if set, is polled between iterations and between
	// sub-layer updates (spec §4.6); a true result aborts Run early with a
	// non-converged Result rather than panicking or leaving partial state.
	Cancelled func() bool

	// Calculator is the wave kernel from the last completed iteration,
	// available after Run for output extraction (accel/strain/stress TFs).
	Calculator *wave.Calculator
}

// ErrCancelled is returned when Run stops early because the shared
// cancellation flag was raised (spec §4.6).
type ErrCancelled struct{}

func (e *ErrCancelled) Error() string { return "calc: iteration cancelled" }

func (d *Driver) cancelled() bool {
	return d.Cancelled != nil && d.Cancelled()
}

// Result reports the outcome of a Run (spec §4.2 "convergence flag is
// reported even if not converged").
type Result struct {
	Converged  bool
	Iterations int
	MaxError   float64 // percent, relative error that drove the last iteration
}

// NotConverged is returned (with a NaN-valued Result) when the wave kernel
// itself fails (spec §4.2 "run wave kernel; on failure return
// NotConverged(NaN)").
type NotConverged struct {
	Cause error
}

func (e *NotConverged) Error() string {
	return "calc: equivalent-linear iteration did not converge: " + e.Cause.Error()
}

func (e *NotConverged) Unwrap() error { return e.Cause }

// Failed is returned when a sub-layer's peak strain is non-positive,
// signalling the iteration cannot proceed (spec §4.2 "if gamma_max <= 0:
// return Failed").
type Failed struct {
	SubLayerIndex int
}

func (e *Failed) Error() string {
	return io.Sf("calc: equivalent-linear iteration failed at sub-layer %d (non-positive peak strain)", e.SubLayerIndex)
}

func (d *Driver) defaults() {
	if d.StrainRatio <= 0 {
		d.StrainRatio = DefaultStrainRatio
	}
	if d.ErrorTolerance <= 0 {
		d.ErrorTolerance = DefaultErrorTolerance
	}
	if d.MaxIterations <= 0 {
		d.MaxIterations = DefaultMaxIterations
	}
	if d.Gravity <= 0 {
		d.Gravity = soil.DefaultGravity
	}
}

// Run executes the algorithm of spec §4.2 and returns the final Result.
// Sub-layer ShearMod/Damping are mutated in place; MaxStrain/EffStrain/Error
// are updated on each soil.SubLayer for diagnostic and output purposes.
func (d *Driver) Run() (*Result, error) {
	d.defaults()
	if err := d.Profile.Validate(); err != nil {
		return nil, err
	}
	nsl := len(d.Profile.SubLayers)
	if nsl == 0 {
		return nil, chk.Err("calc: profile has no sub-layers; call Discretize first")
	}

	gmax := make([]float64, nsl)
	for i, sl := range d.Profile.SubLayers {
		gmax[i] = sl.ShearMod
	}

	res := &Result{}
	for k := 1; k <= d.MaxIterations; k++ {
		if d.cancelled() {
			return &Result{Converged: false, Iterations: k - 1, MaxError: math.NaN()}, &ErrCancelled{}
		}
		c := wave.NewCalculator(d.Profile, d.Motion.Freq(), d.Gravity)
		if err := c.Compute(); err != nil {
			return &Result{Converged: false, Iterations: k, MaxError: math.NaN()}, &NotConverged{Cause: err}
		}
		d.Calculator = c

		maxErr := math.Inf(-1)
		for l := 0; l < nsl; l++ {
			if d.cancelled() {
				return &Result{Converged: false, Iterations: k, MaxError: math.NaN()}, &ErrCancelled{}
			}
			sl := d.Profile.SubLayers[l]
			strainTF := c.StrainTF(d.InputLocation, d.InputType, l)
			gammaMax := 100 * d.Gravity * d.Motion.CalcMaxStrain(strainTF)
			if gammaMax <= 0 {
				return &Result{Converged: false, Iterations: k, MaxError: math.NaN()}, &Failed{SubLayerIndex: l}
			}
			sl.MaxStrain = gammaMax
			sl.EffStrain = d.StrainRatio * gammaMax

			st := d.Profile.Types[d.Profile.Layers[sl.LayerIndex].TypeIndex]
			gOverGmax, dampingNew := st.InterpAt(sl.EffStrain)
			gNew := gOverGmax * gmax[l]

			sl.SaveOld()
			errG := math.Abs(gNew-sl.ShearMod) / sl.ShearMod
			errD := math.Abs(dampingNew-sl.Damping) / math.Max(sl.Damping, 1e-12)
			sl.Error = math.Max(errG, errD) * 100
			if !d.NoPropertyUpdate {
				sl.ShearMod = gNew
				sl.Damping = dampingNew
			}

			if sl.Error > maxErr {
				maxErr = sl.Error
			}
		}
		res.Iterations = k
		res.MaxError = maxErr

		if d.Verbose {
			io.Pf("calc: iteration %d  maxErr = %.4f%%\n", k, maxErr)
		}

		if maxErr <= d.ErrorTolerance {
			res.Converged = true
			break
		}
	}
	return res, nil
}
