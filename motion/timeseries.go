// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package motion

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"

	"github.com/arkottke/strata-sub000/numeric"
)

// TimeSeriesMotion owns a sampled acceleration record and derives its
// Fourier representation by zero-padding to the next power of two (spec
// §3). It satisfies the Motion interface via time-domain peak-search:
// IFFT(tf * FourierAcc), truncated back to the original sample count.
type TimeSeriesMotion struct {
	Accel []float64 // sampled acceleration, same units as Pga()
	Dt    float64   // sample interval, s
	Typ   Type

	freq       []float64
	fourierAcc []complex128
	fourierVel []complex128
	nPad       int
}

// NewTimeSeriesMotion builds a TimeSeriesMotion and precomputes its Fourier
// representation.
func NewTimeSeriesMotion(accel []float64, dt float64, typ Type) (*TimeSeriesMotion, error) {
	if len(accel) == 0 {
		return nil, chk.Err("motion: acceleration record must not be empty")
	}
	if dt <= 0 {
		return nil, chk.Err("motion: sample interval must be > 0, got %g", dt)
	}
	m := &TimeSeriesMotion{Accel: accel, Dt: dt, Typ: typ}
	m.computeFourier()
	return m, nil
}

func (m *TimeSeriesMotion) computeFourier() {
	m.fourierAcc, m.nPad = numeric.RealFFT(m.Accel, m.Dt)
	m.freq = numeric.Freq(m.nPad, m.Dt)
	m.fourierVel = make([]complex128, len(m.fourierAcc))
	for k, f := range m.freq {
		if k == 0 || f == 0 {
			m.fourierVel[k] = 0
			continue
		}
		m.fourierVel[k] = m.fourierAcc[k] / complex(0, 2*math.Pi*f)
	}
}

// Freq implements Motion.
func (m *TimeSeriesMotion) Freq() []float64 { return m.freq }

// MotionType implements Motion.
func (m *TimeSeriesMotion) MotionType() Type { return m.Typ }

// Pga implements Motion.
func (m *TimeSeriesMotion) Pga() float64 { return numeric.PeakAbs(m.Accel) }

// Pgv implements Motion.
func (m *TimeSeriesMotion) Pgv() float64 {
	return numeric.PeakAbs(m.Integrate(m.Accel))
}

// Integrate applies trapezoid-rule time integration (spec §4.7).
func (m *TimeSeriesMotion) Integrate(x []float64) []float64 {
	out := make([]float64, len(x))
	for i := 1; i < len(x); i++ {
		out[i] = out[i-1] + 0.5*(x[i]+x[i-1])*m.Dt
	}
	return out
}

// CalcSdofTF implements Motion.
func (m *TimeSeriesMotion) CalcSdofTF(period, dampingPct float64) []complex128 {
	return CalcSdofTF(m.freq, period, dampingPct)
}

// filteredTimeSeries computes IFFT(tf * FourierAcc) truncated to the
// original sample count (spec §3).
func (m *TimeSeriesMotion) filteredTimeSeries(tf []complex128) []float64 {
	filtered := numeric.ApplyTF(m.fourierAcc, tf)
	return numeric.InverseRealFFT(filtered, m.nPad, len(m.Accel))
}

// FilteredAccel returns the time-domain acceleration response to tf (an
// Outputs-facing wrapper over filteredTimeSeries; package out uses it to
// build acceleration/velocity/displacement/strain time-series outputs).
func (m *TimeSeriesMotion) FilteredAccel(tf []complex128) []float64 {
	return m.filteredTimeSeries(tf)
}

// FilteredStrain returns the time-domain strain response to a transfer
// function expressed against the input velocity FAS (spec §4.1 point 5).
func (m *TimeSeriesMotion) FilteredStrain(tf []complex128) []float64 {
	filtered := numeric.ApplyTF(m.fourierVel, tf)
	return numeric.InverseRealFFT(filtered, m.nPad, len(m.Accel))
}

// FourierAmplitude returns |FourierAcc(f)| aligned with Freq().
func (m *TimeSeriesMotion) FourierAmplitude() []float64 {
	out := make([]float64, len(m.fourierAcc))
	for i, z := range m.fourierAcc {
		out[i] = cabs(z)
	}
	return out
}

// Max implements Motion.
func (m *TimeSeriesMotion) Max(tf []complex128) float64 {
	return numeric.PeakAbs(m.filteredTimeSeries(tf))
}

// MaxVel implements Motion.
func (m *TimeSeriesMotion) MaxVel(tf []complex128) float64 {
	accel := m.filteredTimeSeries(tf)
	return numeric.PeakAbs(m.Integrate(accel))
}

// CalcMaxStrain implements Motion. tf is expressed against the input
// velocity FAS (spec §4.1 point 5), so it is applied to fourierVel here,
// not fourierAcc.
func (m *TimeSeriesMotion) CalcMaxStrain(tf []complex128) float64 {
	filtered := numeric.ApplyTF(m.fourierVel, tf)
	ts := numeric.InverseRealFFT(filtered, m.nPad, len(m.Accel))
	return numeric.PeakAbs(ts)
}

// ComputeSa implements Motion via time-domain convolution (spec §4.7):
// for each period, apply the SDOF transfer function (optionally composed
// with accelTf) and take the peak absolute response.
func (m *TimeSeriesMotion) ComputeSa(periods []float64, dampingPct float64, accelTf []complex128) []float64 {
	sa := make([]float64, len(periods))
	for i, T := range periods {
		sdof := m.CalcSdofTF(T, dampingPct)
		tf := sdof
		if accelTf != nil {
			tf = make([]complex128, len(sdof))
			for k := range tf {
				tf[k] = sdof[k] * accelTf[k]
			}
		}
		sa[i] = m.Max(tf)
	}
	return sa
}

// Baseline performs the degree-4 polynomial baseline correction of spec
// §4.7/§9: fit {d^2, d^3, d^4} (excluding constant and linear terms) to the
// displacement record, subtract the fit's second derivative from
// acceleration, and re-integrate. The least-squares normal equations are
// solved with gonum.org/v1/gonum/mat, the same numerical library already
// wired in for the FFT.
func (m *TimeSeriesMotion) Baseline() error {
	vel := m.Integrate(m.Accel)
	disp := m.Integrate(vel)
	n := len(disp)

	// design matrix columns: t^2, t^3, t^4
	A := mat.NewDense(n, 3, nil)
	for i := 0; i < n; i++ {
		t := float64(i) * m.Dt
		A.Set(i, 0, t*t)
		A.Set(i, 1, t*t*t)
		A.Set(i, 2, t*t*t*t)
	}
	b := mat.NewVecDense(n, disp)

	var AtA mat.Dense
	AtA.Mul(A.T(), A)
	var Atb mat.VecDense
	Atb.MulVec(A.T(), b)

	var coeffs mat.VecDense
	if err := coeffs.SolveVec(&AtA, &Atb); err != nil {
		return chk.Err("motion: baseline fit is non-invertible: %v", err)
	}
	c2, c3, c4 := coeffs.AtVec(0), coeffs.AtVec(1), coeffs.AtVec(2)

	corrected := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) * m.Dt
		// second derivative of c2*t^2 + c3*t^3 + c4*t^4
		d2 := 2*c2 + 6*c3*t + 12*c4*t*t
		corrected[i] = m.Accel[i] - d2
	}
	m.Accel = corrected
	m.computeFourier()
	return nil
}

// PeriodsFromFreq returns response-spectrum-style periods (s) for the
// positive part of a frequency grid, descending-frequency order preserved.
func PeriodsFromFreq(freq []float64) []float64 {
	periods := make([]float64, 0, len(freq))
	for _, f := range freq {
		if f > 0 {
			periods = append(periods, 1.0/f)
		}
	}
	return periods
}
