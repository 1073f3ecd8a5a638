// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nlprop

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// DarendeliParams holds the Darendeli (2001) regression inputs needed to
// derive modulus-reduction and damping curves for a soil type that has no
// directly tabulated curve.
type DarendeliParams struct {
	MeanStress      float64 // mean effective confining stress, atm
	PI              float64 // plasticity index, percent
	OCR             float64 // over-consolidation ratio
	Freq            float64 // loading frequency, Hz
	NumCycles       float64 // number of loading cycles
	MinDamping      float64 // small-strain damping, percent (added to Dmin term)
}

// darendeliCoeffs holds the published regression coefficients (Darendeli,
// 2001, "Development of a New Family of Normalized Modulus Reduction and
// Material Damping Curves").
var darendeliCoeffs = struct {
	phi1, phi2, phi3, phi4 float64 // reference strain
	a                      float64 // curvature
	phi5, phi6, phi7, phi8 float64 // Dmin
	phi9                   float64 // Dmin frequency term
	c1, c2, c3             float64 // Masing correction in ln(N)
	d                      float64 // G/Gmax exponent on Masing damping
}{
	phi1: 0.0352, phi2: 0.0010, phi3: 0.3246, phi4: 0.3483,
	a:    0.919,
	phi5: 0.8005, phi6: 0.0129, phi7: -0.1069, phi8: -0.2889, phi9: 0.2919,
	c1: 1.000, c2: -0.2523, c3: 0.0134,
	d: 0.1000,
}

// referenceStrain returns γr (percent) per Darendeli's regression.
func (p DarendeliParams) referenceStrain() float64 {
	c := darendeliCoeffs
	ocr := p.OCR
	if ocr <= 0 {
		ocr = 1
	}
	return (c.phi1 + c.phi2*p.PI*math.Pow(ocr, c.phi3)) * math.Pow(math.Max(p.MeanStress, 1e-6), c.phi4)
}

// modulusReductionAt returns G/Gmax at shear strain γ (percent).
func (p DarendeliParams) modulusReductionAt(gammaPct float64) float64 {
	c := darendeliCoeffs
	gr := p.referenceStrain()
	return 1.0 / (1.0 + math.Pow(gammaPct/gr, c.a))
}

// masingDampingAt returns the first-cycle (a=1) Masing damping, percent, per
// Darendeli eq. (the closed-form hyperbolic-Masing reduction).
func masingDampingAt(gammaPct, gr float64) float64 {
	if gammaPct <= 0 {
		return 0
	}
	num := 4 * (gammaPct - gr*math.Log((gammaPct+gr)/gr))
	den := gammaPct * gammaPct / (gammaPct + gr)
	if den <= 0 {
		return 0
	}
	return (100.0 / math.Pi) * (num/den - 2.0)
}

// minDamping returns Dmin (percent) per Darendeli's regression.
func (p DarendeliParams) minDamping() float64 {
	c := darendeliCoeffs
	ocr := p.OCR
	if ocr <= 0 {
		ocr = 1
	}
	freq := p.Freq
	if freq <= 0 {
		freq = 1
	}
	dmin := (c.phi5 + c.phi6*p.PI*math.Pow(ocr, c.phi7)) * math.Pow(math.Max(p.MeanStress, 1e-6), c.phi8) * (1 + c.phi9*math.Log(freq))
	return dmin + p.MinDamping
}

// dampingAt returns the Masing-corrected damping ratio (percent) at shear
// strain γ (percent).
func (p DarendeliParams) dampingAt(gammaPct float64) float64 {
	c := darendeliCoeffs
	gr := p.referenceStrain()
	gOverGmax := p.modulusReductionAt(gammaPct)
	n := p.NumCycles
	if n <= 0 {
		n = 10
	}
	lnN := math.Log(n)
	b := c.c1 + c.c2*lnN + c.c3*lnN*lnN
	return b*math.Pow(gOverGmax, c.d)*masingDampingAt(gammaPct, gr) + p.minDamping()
}

// GenerateCurves derives tabulated modulus-reduction and damping curves over
// strains (percent, strictly increasing and positive) from the Darendeli
// model.
func (p DarendeliParams) GenerateCurves(strains []float64) (modulus, damping *NonlinearProperty, err error) {
	if len(strains) == 0 {
		return nil, nil, chk.Err("nlprop: Darendeli generation needs at least one strain point")
	}
	gvals := make([]float64, len(strains))
	dvals := make([]float64, len(strains))
	for i, g := range strains {
		gvals[i] = p.modulusReductionAt(g)
		dvals[i] = p.dampingAt(g)
	}
	modulus, err = NewNonlinearProperty(ModulusReduction, strains, gvals)
	if err != nil {
		return nil, nil, err
	}
	damping, err = NewNonlinearProperty(Damping, strains, dvals)
	if err != nil {
		return nil, nil, err
	}
	return modulus, damping, nil
}
