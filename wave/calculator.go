// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wave implements the 1-D SH-wave propagation kernel of spec §4.1:
// complex shear moduli, up/down-going wave amplitude recursion through a
// layered profile, and the acceleration/strain/stress transfer functions
// derived from them.
package wave

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/arkottke/strata-sub000/motion"
	"github.com/arkottke/strata-sub000/soil"
)

// EpsFreq is the near-zero-frequency threshold below which the kernel
// bypasses the recursion and returns unit amplitudes (spec §4.1 point 2).
const EpsFreq = 1e-6

// WaveComputationNaN is returned when any wave amplitude becomes NaN during
// the up/down-going recursion (spec §4.1 point 2).
type WaveComputationNaN struct {
	Freq float64
}

func (e *WaveComputationNaN) Error() string {
	return fmt.Sprintf("wave: amplitude computation produced NaN at f = %g Hz", e.Freq)
}

// Calculator is the AbstractCalculator of spec §4.1: given a discretized
// profile and a frequency grid, it computes the complex wavenumbers and the
// up/down-going wave amplitudes at every sub-layer (plus the terminating
// half-space), then derives transfer functions between any two locations.
type Calculator struct {
	Profile *soil.SoilProfile
	Freq    []float64
	Gravity float64

	// k[j][i] is the complex wavenumber of sub-layer/half-space j at
	// frequency Freq[i]; gstar[j][i] is the corresponding complex shear
	// modulus. A[j][i], B[j][i] are the up/down-going amplitudes, j ranging
	// over 0..nsl (nsl = half-space index).
	k     [][]complex128
	gstar [][]complex128
	a     [][]complex128
	b     [][]complex128
}

// NewCalculator builds a Calculator for profile evaluated on freq. Call
// Compute before querying transfer functions.
func NewCalculator(profile *soil.SoilProfile, freq []float64, gravity float64) *Calculator {
	if gravity <= 0 {
		gravity = soil.DefaultGravity
	}
	return &Calculator{Profile: profile, Freq: freq, Gravity: gravity}
}

// complexShearModulus implements G*(f) = G*(1 - D^2 + 2iD), Kramer's
// simplified complex-modulus form (spec §4.1 preamble), with D expressed as
// a fraction (damping is stored as a percent).
func complexShearModulus(gMax, dampingPct float64) complex128 {
	d := dampingPct / 100.0
	return complex(gMax*(1-d*d), 2*gMax*d)
}

// Compute derives the complex wavenumbers and up/down-going amplitudes for
// every sub-layer and the half-space, at every frequency in Freq (spec
// §4.1 points 1-2).
func (c *Calculator) Compute() error {
	nsl := len(c.Profile.SubLayers)
	nf := len(c.Freq)
	njl := nsl + 1 // + half-space

	c.k = make([][]complex128, njl)
	c.gstar = make([][]complex128, njl)
	c.a = make([][]complex128, njl)
	c.b = make([][]complex128, njl)
	for j := 0; j < njl; j++ {
		c.k[j] = make([]complex128, nf)
		c.gstar[j] = make([]complex128, nf)
		c.a[j] = make([]complex128, nf)
		c.b[j] = make([]complex128, nf)
	}

	g := c.Gravity
	densities := make([]float64, njl)
	thickness := make([]float64, njl)
	for j := 0; j < nsl; j++ {
		sl := c.Profile.SubLayers[j]
		densities[j] = sl.Density(g)
		thickness[j] = sl.Thickness
	}
	densities[nsl] = c.Profile.Rock.UnitWeight / g

	for i, f := range c.Freq {
		for j := 0; j < nsl; j++ {
			sl := c.Profile.SubLayers[j]
			c.gstar[j][i] = complexShearModulus(sl.ShearMod, sl.Damping)
			c.k[j][i] = waveNumber(2*math.Pi*f, c.gstar[j][i], densities[j])
		}
		rock := c.Profile.Rock
		c.gstar[nsl][i] = complexShearModulus(rock.ShearVel*rock.ShearVel*densities[nsl], rock.Damping)
		c.k[nsl][i] = waveNumber(2*math.Pi*f, c.gstar[nsl][i], densities[nsl])

		c.a[0][i] = 1
		c.b[0][i] = 1
		for j := 0; j < nsl; j++ {
			if f <= EpsFreq {
				c.a[j+1][i] = 1
				c.b[j+1][i] = 1
				continue
			}
			alpha := (c.k[j][i] * c.gstar[j][i]) / (c.k[j+1][i] * c.gstar[j+1][i])
			phi := complex(0, 1) * c.k[j][i] * complex(thickness[j], 0)
			ePlus := cmplx.Exp(phi)
			eMinus := cmplx.Exp(-phi)
			aCur, bCur := c.a[j][i], c.b[j][i]
			aNext := 0.5*aCur*(1+alpha)*ePlus + 0.5*bCur*(1-alpha)*eMinus
			bNext := 0.5*aCur*(1-alpha)*ePlus + 0.5*bCur*(1+alpha)*eMinus
			if cmplx.IsNaN(aNext) || cmplx.IsNaN(bNext) {
				return &WaveComputationNaN{Freq: f}
			}
			c.a[j+1][i] = aNext
			c.b[j+1][i] = bNext
		}
	}
	return nil
}

// waveNumber implements kⱼ(f) = ω / sqrt(G*ⱼ(f)/ρⱼ) (spec §4.1 point 1).
func waveNumber(omega float64, gstar complex128, density float64) complex128 {
	vs := cmplx.Sqrt(gstar / complex(density, 0))
	return complex(omega, 0) / vs
}

// Waves evaluates the wavefield at sub-layer/half-space index j, depth z
// within that layer, and motion type, per spec §4.1 point 3.
func (c *Calculator) Waves(j int, depth float64, typ motion.Type) []complex128 {
	nf := len(c.Freq)
	out := make([]complex128, nf)
	for i := range out {
		phi := complex(0, 1) * c.k[j][i] * complex(depth, 0)
		up := c.a[j][i] * cmplx.Exp(phi)
		down := c.b[j][i] * cmplx.Exp(-phi)
		switch typ {
		case motion.Within:
			out[i] = up + down
		case motion.Outcrop:
			out[i] = 2 * up
		default: // IncomingOnly
			out[i] = up
		}
	}
	return out
}

// wavesAt resolves a soil.Location to the (j, depth) pair Waves expects.
func (c *Calculator) wavesAt(loc soil.Location, typ motion.Type) []complex128 {
	nsl := len(c.Profile.SubLayers)
	if loc.InHalfSpace(nsl) {
		return c.Waves(nsl, 0, typ)
	}
	return c.Waves(loc.SubLayerIndex, loc.DepthWithin, typ)
}

// AccelTF returns the acceleration transfer function between (inLoc,
// inType) and (outLoc, outType): H_a(f) = waves(out)/waves(in) (spec §4.1
// point 4).
func (c *Calculator) AccelTF(inLoc soil.Location, inType motion.Type, outLoc soil.Location, outType motion.Type) []complex128 {
	win := c.wavesAt(inLoc, inType)
	wout := c.wavesAt(outLoc, outType)
	tf := make([]complex128, len(win))
	for i := range tf {
		if win[i] == 0 {
			tf[i] = 0
			continue
		}
		tf[i] = wout[i] / win[i]
	}
	return tf
}

// StrainTF returns the strain transfer function at the mid-depth of
// sub-layer subLayerIndex, expressed against the input velocity FAS (spec
// §4.1 point 5):
//
//	H_e(f) = -i * (Al*e^(+i*phi/2) - Bl*e^(-i*phi/2)) / (Vs*_l * waves(in, inType))
//
// The gravitational-acceleration factor that converts this ratio into
// consistent strain units is applied by the caller (package calc), which
// matches spec §4.2's "gamma_max = 100 * g * M.calcMaxStrain(H_e)" step.
func (c *Calculator) StrainTF(inLoc soil.Location, inType motion.Type, subLayerIndex int) []complex128 {
	nf := len(c.Freq)
	tf := make([]complex128, nf)
	win := c.wavesAt(inLoc, inType)
	densities := c.Profile.SubLayers[subLayerIndex].Density(c.Gravity)
	h := c.Profile.SubLayers[subLayerIndex].Thickness
	for i := range tf {
		if win[i] == 0 {
			tf[i] = 0
			continue
		}
		vsStar := cmplx.Sqrt(c.gstar[subLayerIndex][i] / complex(densities, 0))
		phiHalf := complex(0, 1) * c.k[subLayerIndex][i] * complex(h/2, 0)
		num := c.a[subLayerIndex][i]*cmplx.Exp(phiHalf) - c.b[subLayerIndex][i]*cmplx.Exp(-phiHalf)
		tf[i] = complex(0, -1) * num / (vsStar * win[i])
	}
	return tf
}

// StressTF returns the stress transfer function at the mid-depth of
// sub-layer subLayerIndex: G*_l * H_e (spec §4.1 point 5).
func (c *Calculator) StressTF(inLoc soil.Location, inType motion.Type, subLayerIndex int) []complex128 {
	strainTF := c.StrainTF(inLoc, inType, subLayerIndex)
	tf := make([]complex128, len(strainTF))
	for i := range tf {
		tf[i] = c.gstar[subLayerIndex][i] * strainTF[i]
	}
	return tf
}
