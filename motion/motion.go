// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package motion implements the time-series and random-vibration-theory
// motion abstractions of spec §3/§4.3/§4.7: a common interface exposing a
// Fourier spectrum and peak-response estimation, backed either by a sampled
// acceleration record (TimeSeriesMotion) or by spectral statistics alone
// (RvtMotion, CompatibleRvtMotion, SourceTheoryRvtMotion).
package motion

import "math"

// Type is the closed set of wavefield conventions relating a motion to the
// up/down-going wave amplitudes at the location it is defined (spec
// Glossary).
type Type int

const (
	Outcrop Type = iota
	Within
	IncomingOnly
)

func (t Type) String() string {
	switch t {
	case Outcrop:
		return "Outcrop"
	case Within:
		return "Within"
	case IncomingOnly:
		return "IncomingOnly"
	}
	return "Unknown"
}

// Motion is the capability set every concrete motion (time-series or RVT)
// implements (spec §3 AbstractMotion).
type Motion interface {
	// Freq returns the monotonically increasing frequency grid, starting at 0.
	Freq() []float64

	// MotionType returns this motion's wavefield convention.
	MotionType() Type

	// Pga returns the peak ground acceleration.
	Pga() float64

	// Pgv returns the peak ground velocity.
	Pgv() float64

	// CalcSdofTF returns the single-degree-of-freedom oscillator transfer
	// function for the given natural period (s) and damping ratio (percent),
	// sampled on Freq().
	CalcSdofTF(period, dampingPct float64) []complex128

	// Max returns the peak absolute acceleration response when this
	// motion's Fourier spectrum is filtered by tf.
	Max(tf []complex128) float64

	// MaxVel returns the peak absolute velocity response when this motion's
	// Fourier spectrum is filtered by tf.
	MaxVel(tf []complex128) float64

	// CalcMaxStrain returns the peak absolute strain response when this
	// motion's Fourier spectrum is filtered by tf (tf expressed against the
	// input velocity FAS, per spec §4.1 point 5).
	CalcMaxStrain(tf []complex128) float64

	// ComputeSa returns the pseudo-acceleration response spectrum at the
	// given periods (s) and damping ratio (percent), optionally pre-filtered
	// by accelTf (nil means the motion's own, unfiltered response).
	ComputeSa(periods []float64, dampingPct float64, accelTf []complex128) []float64
}

// CalcSdofTF evaluates the SDOF oscillator transfer function
//
//	H(f) = -fn^2 / (f^2 - fn^2 - 2i*(zeta/100)*fn*f)
//
// on the supplied frequency grid (spec §3).
func CalcSdofTF(freq []float64, period, dampingPct float64) []complex128 {
	tf := make([]complex128, len(freq))
	if period <= 0 {
		for i := range tf {
			tf[i] = 1
		}
		return tf
	}
	fn := 1.0 / period
	zeta := dampingPct / 100.0
	for i, f := range freq {
		den := complex(f*f-fn*fn, -2*zeta*fn*f)
		if den == 0 {
			tf[i] = complex(0, 0)
			continue
		}
		tf[i] = complex(-fn*fn, 0) / den
	}
	return tf
}

// OnesTF returns a unit (all-ones) transfer function of length n, the
// self-identity transfer function referenced by spec §8.
func OnesTF(n int) []complex128 {
	tf := make([]complex128, n)
	for i := range tf {
		tf[i] = 1
	}
	return tf
}

// AriasIntensity integrates a(t)^2 with the trapezoid rule and the standard
// pi/(2g) scaling factor, used by out.AriasIntensity.
func AriasIntensity(accel []float64, dt, gravity float64) float64 {
	if len(accel) < 2 {
		return 0
	}
	sum := 0.0
	for i := 1; i < len(accel); i++ {
		sum += 0.5 * (accel[i]*accel[i] + accel[i-1]*accel[i-1]) * dt
	}
	return math.Pi / (2 * gravity) * sum
}
