// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package motion

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/arkottke/strata-sub000/numeric"
)

// DurationModel selects the oscillator-duration correction applied when
// estimating a response-spectrum ordinate (spec §4.3).
type DurationModel int

const (
	BooreJoyner1984 DurationModel = iota
	LiuPezeshk1999
)

// durationRatio returns Drms/D, the ratio between the oscillator response
// duration and the ground-motion duration, as a function of fn*Td and the
// oscillator damping ratio (percent). Both models are closed-form rational
// functions of (fn*Td, zeta), per spec §4.3.
func (m DurationModel) durationRatio(fnTd, zetaPct float64) float64 {
	switch m {
	case LiuPezeshk1999:
		// Liu & Pezeshk (1999): a smoother high-frequency roll-off than
		// Boore & Joyner, parameterized by damping as well as fn*Td.
		zeta := zetaPct / 100.0
		b1, b2, b3 := 0.852, 0.0498, 2.0
		num := math.Pow(fnTd, b1)
		return 1 + num/(num+b2) - b3*zeta*math.Pow(fnTd, 0.8)/(fnTd+1)
	default: // BooreJoyner1984
		b1, b2 := 2.0 / 3.0, 3.0 / 8.0
		num := math.Pow(fnTd, b1)
		return 1 - num/(num+b2)
	}
}

// AbstractRvtMotion holds the positive-frequency FAS and ground-motion
// duration shared by every RVT specialization (spec §3): peak response is
// estimated via extreme-value statistics, with no time-domain data.
type AbstractRvtMotion struct {
	FreqGrid      []float64
	Fas           []float64 // |F(f)|, aligned with FreqGrid
	Duration      float64   // Td, s
	Typ           Type
	Correction    DurationModel
	PeakFactorTol float64 // quadrature tolerance for the peak-factor integral; 0 uses a default
}

// Freq implements Motion.
func (m *AbstractRvtMotion) Freq() []float64 { return m.FreqGrid }

// MotionType implements Motion.
func (m *AbstractRvtMotion) MotionType() Type { return m.Typ }

// CalcSdofTF implements Motion.
func (m *AbstractRvtMotion) CalcSdofTF(period, dampingPct float64) []complex128 {
	return CalcSdofTF(m.FreqGrid, period, dampingPct)
}

func (m *AbstractRvtMotion) tol() float64 {
	if m.PeakFactorTol > 0 {
		return m.PeakFactorTol
	}
	return 1e-4
}

// spectralMoments computes m0, m1, m2 from G(f) = |tf(f)|*Fas(f) by the
// trapezoid rule over FreqGrid (spec §4.3 point 2): m_i = 2*int (2*pi*f)^i
// G(f)^2 df.
func (m *AbstractRvtMotion) spectralMoments(g []float64) (m0, m1, m2 float64) {
	n := len(m.FreqGrid)
	y0 := make([]float64, n)
	y1 := make([]float64, n)
	y2 := make([]float64, n)
	for i, f := range m.FreqGrid {
		w := 2 * math.Pi * f
		gg := g[i] * g[i]
		y0[i] = gg
		y1[i] = w * gg
		y2[i] = w * w * gg
	}
	m0 = 2 * numeric.Trapz(m.FreqGrid, y0)
	m1 = 2 * numeric.Trapz(m.FreqGrid, y1)
	m2 = 2 * numeric.Trapz(m.FreqGrid, y2)
	return
}

// peakFactor implements the Cartwright-Longuet-Higgins extreme-value
// estimate of spec §4.3 points 3-4.
func peakFactor(m0, m1, m2, td, tol float64) float64 {
	if m0 <= 0 || m2 <= 0 {
		return 0
	}
	nu := (1.0 / math.Pi) * math.Sqrt(m2/m0)
	arg := 1.0 - m1*m1/(m0*m2)
	if arg < 0 {
		arg = 0
	}
	delta := math.Sqrt(arg)
	n := nu * td
	if n < 2 {
		n = 2
	}
	integrand := func(z float64) float64 {
		base := 1.0 - delta*math.Exp(-z*z)
		if base < 0 {
			base = 0
		}
		return 1.0 - math.Pow(base, n)
	}
	integral := numeric.GaussLegendre(integrand, 0, 10, tol, 64)
	return math.Sqrt2 * integral
}

// peakFromFAS estimates the peak of the time series whose Fourier amplitude
// spectrum is g, given a (possibly duration-corrected) RMS duration, per
// spec §4.3 point 5.
func (m *AbstractRvtMotion) peakFromFAS(g []float64, tdRms float64) float64 {
	if tdRms <= 0 {
		return 0
	}
	m0, m1, m2 := m.spectralMoments(g)
	pf := peakFactor(m0, m1, m2, m.Duration, m.tol())
	return pf * math.Sqrt(m0/tdRms)
}

// applyTFMagnitude multiplies the FAS by |tf(f)|, ignoring phase (RVT works
// with amplitude spectra only).
func (m *AbstractRvtMotion) applyTFMagnitude(tf []complex128) []float64 {
	g := make([]float64, len(m.Fas))
	for i := range g {
		g[i] = cabs(tf[i]) * m.Fas[i]
	}
	return g
}

func cabs(z complex128) float64 {
	re, im := real(z), imag(z)
	return math.Sqrt(re*re + im*im)
}

// Pga implements Motion: peak of the unfiltered acceleration FAS.
func (m *AbstractRvtMotion) Pga() float64 {
	return m.peakFromFAS(m.Fas, m.Duration)
}

// Pgv implements Motion: peak of the velocity FAS, Fas(f)/(2*pi*f).
func (m *AbstractRvtMotion) Pgv() float64 {
	return m.MaxVel(OnesTF(len(m.FreqGrid)))
}

// Max implements Motion.
func (m *AbstractRvtMotion) Max(tf []complex128) float64 {
	g := m.applyTFMagnitude(tf)
	return m.peakFromFAS(g, m.Duration)
}

// MaxVel implements Motion: divides the filtered acceleration FAS by
// 2*pi*f before estimating the peak (the f=0 bin contributes zero).
func (m *AbstractRvtMotion) MaxVel(tf []complex128) float64 {
	g := m.applyTFMagnitude(tf)
	for i, f := range m.FreqGrid {
		if f == 0 {
			g[i] = 0
			continue
		}
		g[i] = g[i] / (2 * math.Pi * f)
	}
	return m.peakFromFAS(g, m.Duration)
}

// CalcMaxStrain implements Motion: tf is expressed against the input
// velocity FAS (spec §4.1 point 5), so no additional 1/(2*pi*f) scaling is
// applied here.
func (m *AbstractRvtMotion) CalcMaxStrain(tf []complex128) float64 {
	g := m.applyTFMagnitude(tf)
	return m.peakFromFAS(g, m.Duration)
}

// ComputeSa implements Motion using the oscillator-duration-corrected RMS
// duration of spec §4.3.
func (m *AbstractRvtMotion) ComputeSa(periods []float64, dampingPct float64, accelTf []complex128) []float64 {
	sa := make([]float64, len(periods))
	for i, T := range periods {
		if T <= 0 {
			sa[i] = m.Pga()
			continue
		}
		fn := 1.0 / T
		sdof := m.CalcSdofTF(T, dampingPct)
		tf := sdof
		if accelTf != nil {
			tf = make([]complex128, len(sdof))
			for k := range tf {
				tf[k] = sdof[k] * accelTf[k]
			}
		}
		g := m.applyTFMagnitude(tf)
		ratio := m.Correction.durationRatio(fn*m.Duration, dampingPct)
		if ratio <= 0 {
			ratio = 1
		}
		tdRms := m.Duration * ratio
		sa[i] = m.peakFromFAS(g, tdRms)
	}
	return sa
}

// Validate checks structural invariants shared by all RVT motions.
func (m *AbstractRvtMotion) Validate() error {
	if len(m.FreqGrid) != len(m.Fas) {
		return chk.Err("motion: FreqGrid and Fas must have the same length (%d != %d)", len(m.FreqGrid), len(m.Fas))
	}
	if len(m.FreqGrid) == 0 {
		return chk.Err("motion: RVT motion requires a non-empty frequency grid")
	}
	if m.Duration <= 0 {
		return chk.Err("motion: ground-motion duration must be > 0, got %g", m.Duration)
	}
	return nil
}

// RvtMotion is a user-defined Fourier amplitude spectrum (spec §3).
type RvtMotion struct {
	AbstractRvtMotion
}

// NewRvtMotion builds an RvtMotion from a user-supplied FAS.
func NewRvtMotion(freq, fas []float64, duration float64, typ Type) (*RvtMotion, error) {
	m := &RvtMotion{AbstractRvtMotion{FreqGrid: freq, Fas: fas, Duration: duration, Typ: typ}}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
