// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randm implements the site randomizer of spec §4.4: velocity,
// layer-thickness, bedrock-depth and nonlinear-property variation, each
// independently enable/disable-able and driven by a single seeded RNG
// (package dist) so a realization count + seed reproduces an ensemble
// exactly.
package randm

import "math"

// CorrelationModel is the preset inter-layer velocity-correlation catalogue
// of spec §4.4 (Toro 1995).
type CorrelationModel int

const (
	CustomCorrelation CorrelationModel = iota
	GeoMatrixAB
	GeoMatrixCD
	USGSAB
	USGSCD
	USGSA
	USGSB
	USGSC
	USGSD
)

// CorrelationParams are the five Toro (1995) coefficients combining a
// depth-dependent term and a thickness-dependent term into the inter-layer
// correlation coefficient (spec §4.4).
type CorrelationParams struct {
	Initial   float64 // correlation-curve shift used by both the depth and thickness terms
	Final     float64 // asymptotic depth-dependent correlation
	Delta     float64 // thickness-decay length
	Intercept float64 // unused by the depth/thickness formula below; retained for round-trip fidelity
	Exponent  float64
}

var correlationPresets = map[CorrelationModel]CorrelationParams{
	GeoMatrixAB: {Initial: 0.96, Final: 0.96, Delta: 13.1, Exponent: 0.095},
	GeoMatrixCD: {Initial: 0.99, Final: 1.00, Delta: 8.0, Exponent: 0.160},
	USGSAB:      {Initial: 0.95, Final: 1.00, Delta: 4.2, Exponent: 0.138},
	USGSCD:      {Initial: 0.99, Final: 1.00, Delta: 3.9, Exponent: 0.293},
	USGSA:       {Initial: 0.95, Final: 0.42, Delta: 3.4, Exponent: 0.063},
	USGSB:       {Initial: 0.97, Final: 1.00, Delta: 3.8, Exponent: 0.293},
	USGSC:       {Initial: 0.99, Final: 0.98, Delta: 3.9, Exponent: 0.344},
	USGSD:       {Initial: 0.00, Final: 0.50, Delta: 5.0, Exponent: 0.744},
}

// Preset looks up a named correlation model's coefficients.
func Preset(model CorrelationModel) CorrelationParams {
	return correlationPresets[model]
}

// correlationDepthCap is the depth (m) beyond which the depth-dependent
// correlation term saturates at Final (Toro 1995, spec §4.4).
const correlationDepthCap = 200.0

// Correlation combines the thickness- and depth-dependent terms into the
// inter-layer correlation coefficient rho_l, per spec §4.4:
//
//	dCorrel = depthToMid <= 200 ? Final*((depthToMid+Initial)/(200+Initial))^Exponent : Final
//	tCorrel = Initial * exp(-thickness/Delta)
//	rho     = (1-dCorrel)*tCorrel + dCorrel
func (p CorrelationParams) Correlation(depthToMid, thickness float64) float64 {
	var dCorrel float64
	if depthToMid <= correlationDepthCap {
		dCorrel = p.Final * math.Pow((depthToMid+p.Initial)/(correlationDepthCap+p.Initial), p.Exponent)
	} else {
		dCorrel = p.Final
	}
	tCorrel := p.Initial * math.Exp(-thickness/p.Delta)
	return (1-dCorrel)*tCorrel + dCorrel
}

// correlatedNormal draws the next value of a correlated AR(1)-style normal
// sequence: next = rho*prev + sqrt(1-rho^2)*z, z ~ N(0,1) (spec §4.4,
// shared by both the inter-layer velocity correlation and the bivariate
// modulus/damping correlation).
func correlatedNormal(prev, rho, z float64) float64 {
	return rho*prev + math.Sqrt(1-rho*rho)*z
}
