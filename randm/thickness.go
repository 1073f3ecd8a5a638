// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randm

import (
	"math"
	"math/rand"
)

// ThicknessRandomizer default (Toro 1995) non-homogeneous Poisson process
// coefficients: lambda(d) = a*(d+b)^c (spec §4.4).
const (
	DefaultThicknessCoeff    = 1.98
	DefaultThicknessInitial  = 10.86
	DefaultThicknessExponent = -0.89
)

// ThicknessRandomizer draws a new layering via a non-homogeneous Poisson
// process with depth-dependent rate lambda(d) = Coeff*(d+Initial)^Exponent
// (spec §4.4). The inverted cumulative-rate function is the classic
// Toro (1995) formula; the last layer is trimmed to land exactly on
// depthToBedrock.
type ThicknessRandomizer struct {
	Coeff    float64 // a
	Initial  float64 // b
	Exponent float64 // c
}

// DefaultThicknessRandomizer returns the Toro (1995) default coefficients.
func DefaultThicknessRandomizer() ThicknessRandomizer {
	return ThicknessRandomizer{Coeff: DefaultThicknessCoeff, Initial: DefaultThicknessInitial, Exponent: DefaultThicknessExponent}
}

// Vary draws layer thicknesses until the cumulative depth reaches
// depthToBedrock, per spec §4.4.
func (t ThicknessRandomizer) Vary(depthToBedrock float64, src *rand.Rand) []float64 {
	if t.Coeff == 0 {
		t = DefaultThicknessRandomizer()
	}
	var thicknesses []float64
	sum := 0.0
	prevDepth := 0.0
	for prevDepth < depthToBedrock {
		sum += src.ExpFloat64()
		depth := math.Pow(
			(t.Exponent*sum)/t.Coeff+sum/t.Coeff+math.Pow(t.Initial, t.Exponent+1),
			1/(t.Exponent+1),
		) - t.Initial
		thicknesses = append(thicknesses, depth-prevDepth)
		prevDepth = depth
	}
	if len(thicknesses) > 0 {
		thicknesses[len(thicknesses)-1] -= prevDepth - depthToBedrock
	}
	return thicknesses
}
