// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randm

import (
	"math"
	"math/rand"

	"github.com/cpmech/gosl/chk"

	"github.com/arkottke/strata-sub000/expr"
	"github.com/arkottke/strata-sub000/soil"
)

var errMissingExpr = chk.Err("randm: custom sigma model selected but no expression supplied")

// SigmaModel selects how a nonlinear-property randomizer computes the
// strain-point standard deviations sigma_G (modulus reduction) and sigma_D
// (damping), spec §4.4.
type SigmaModel int

const (
	// DarendeliSigma uses the fixed Darendeli (2001) closed-form sigma
	// functions of G/Gmax and D.
	DarendeliSigma SigmaModel = iota
	// CustomSigma evaluates a user expression with bound variables
	// {strain, shearMod, damping}.
	CustomSigma
)

// Default bounds for the varied curves, spec §4.4.
const (
	DefaultModulusMin = 0.10
	DefaultModulusMax = 1.00
	DefaultDampingMin = 0.20
)

// NonlinearPropertyRandomizer draws correlated modulus-reduction/damping
// curve perturbations for a single SoilType, plus (optionally) the bedrock
// half-space's damping (spec §4.4).
type NonlinearPropertyRandomizer struct {
	Model           SigmaModel
	Correlation     float64   // rho between randG and randD; default -0.50 if zero
	ModulusGExpr    *expr.Expr // CustomSigma only: sigma_G(strain, shearMod, damping)
	DampingExpr     *expr.Expr // CustomSigma only: sigma_D(strain, shearMod, damping)
	ModulusMin      float64
	ModulusMax      float64
	DampingMinBound float64
}

// DefaultNonlinearPropertyRandomizer returns the spec's default bounds and
// correlation with the Darendeli sigma model.
func DefaultNonlinearPropertyRandomizer() NonlinearPropertyRandomizer {
	return NonlinearPropertyRandomizer{
		Model: DarendeliSigma, Correlation: -0.50,
		ModulusMin: DefaultModulusMin, ModulusMax: DefaultModulusMax, DampingMinBound: DefaultDampingMin,
	}
}

func (n NonlinearPropertyRandomizer) correlation() float64 {
	if n.Correlation == 0 {
		return -0.50
	}
	return n.Correlation
}

func (n NonlinearPropertyRandomizer) bounds() (modMin, modMax, dampMin float64) {
	modMin, modMax, dampMin = n.ModulusMin, n.ModulusMax, n.DampingMinBound
	if modMin == 0 && modMax == 0 {
		modMin, modMax = DefaultModulusMin, DefaultModulusMax
	}
	if dampMin == 0 {
		dampMin = DefaultDampingMin
	}
	return
}

// sigmaDarendeliModulus is spec §4.4's Darendeli sigma_G(G/Gmax).
func sigmaDarendeliModulus(gOverGmax float64) float64 {
	inner := 0.25/math.Exp(3.62) - (gOverGmax-0.5)*(gOverGmax-0.5)/math.Exp(3.62)
	if inner < 0 {
		inner = 0
	}
	return math.Exp(-4.23) + math.Sqrt(inner)
}

// sigmaDarendeliDamping is spec §4.4's Darendeli sigma_D(D), D in percent.
func sigmaDarendeliDamping(dampingPct float64) float64 {
	d := dampingPct
	if d < 0 {
		d = 0
	}
	return math.Exp(-5) + math.Exp(-0.25)*math.Sqrt(d)
}

// evalCustom evaluates a bound expr.Expr with the variables spec §4.4
// names: {strain, shearMod, damping}.
func evalCustom(e *expr.Expr, strain, shearMod, damping float64) (float64, error) {
	if e == nil {
		return 0, errMissingExpr
	}
	return e.Eval(map[string]float64{
		"strain": strain, "shearMod": shearMod, "damping": damping,
	})
}

// sigmas returns (sigma_G, sigma_D) at one strain point, per the selected
// model.
func (n NonlinearPropertyRandomizer) sigmas(strainPct, gOverGmax, dampingPct float64) (sigmaG, sigmaD float64, err error) {
	switch n.Model {
	case CustomSigma:
		sigmaG, err = evalCustom(n.ModulusGExpr, strainPct, gOverGmax, dampingPct)
		if err != nil {
			return 0, 0, err
		}
		sigmaD, err = evalCustom(n.DampingExpr, strainPct, gOverGmax, dampingPct)
		if err != nil {
			return 0, 0, err
		}
		return sigmaG, sigmaD, nil
	default:
		return sigmaDarendeliModulus(gOverGmax), sigmaDarendeliDamping(dampingPct), nil
	}
}

// VarySoilType overwrites st's Varied modulus-reduction/damping curves with
// a single bivariate-correlated draw applied at every strain point (spec
// §4.4): a single (randG, randD) pair is drawn once per soil type and held
// constant across the curve, matching the original point-in-time
// perturbation of an entire curve rather than an independent draw per
// point.
func (n NonlinearPropertyRandomizer) VarySoilType(st *soil.SoilType, src *rand.Rand) error {
	if !st.IsVaried {
		return nil
	}
	rho := n.correlation()
	randG := src.NormFloat64()
	z := src.NormFloat64()
	randD := correlatedNormal(randG, rho, z)

	modMin, modMax, dampMin := n.bounds()

	mr, dm := st.ModulusReduction, st.Damping
	for i, strain := range mr.Strains {
		gAvg := mr.Avg[i]
		dAvg := dm.Avg[i]
		sigmaG, sigmaD, err := n.sigmas(strain, gAvg, dAvg)
		if err != nil {
			return err
		}
		g := gAvg + sigmaG*randG
		if g < modMin {
			g = modMin
		} else if g > modMax {
			g = modMax
		}
		d := dAvg + sigmaD*randD
		if d < dampMin {
			d = dampMin
		}
		mr.Varied[i] = g
		dm.Varied[i] = d
	}
	return nil
}

// VaryRock overwrites the bedrock half-space's damping with a single
// randG-only draw (spec §4.4 "bedrock damping is varied once with randG
// only; value bounded by D >= 0").
func (n NonlinearPropertyRandomizer) VaryRock(rock *soil.RockLayer, src *rand.Rand) {
	if rock == nil || rock.DampingStd <= 0 {
		return
	}
	randG := src.NormFloat64()
	d := rock.DampingAvg + rock.DampingStd*randG
	if d < 0 {
		d = 0
	}
	rock.Damping = d
}
