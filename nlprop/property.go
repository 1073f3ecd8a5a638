// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nlprop implements strain-dependent nonlinear soil properties:
// modulus-reduction and damping curves, either tabulated directly or
// generated from a parametric model (Darendeli). Curve sources are
// registered in a name-keyed factory, the same way gofem's mreten package
// registers liquid-retention models.
package nlprop

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/arkottke/strata-sub000/numeric"
)

// Kind distinguishes what a NonlinearProperty's values represent.
type Kind int

const (
	ModulusReduction Kind = iota // G/Gmax, dimensionless in [0,1]
	Damping                     // damping ratio, in percent
)

func (k Kind) String() string {
	switch k {
	case ModulusReduction:
		return "ModulusReduction"
	case Damping:
		return "Damping"
	}
	return "Unknown"
}

// NonlinearProperty is a strain-indexed monotone sequence. Strains is the
// shear-strain axis in percent, strictly increasing. Avg is the unvaried
// (mean) curve; Varied defaults to a copy of Avg and is overwritten by a
// randomizer (see package randm).
type NonlinearProperty struct {
	Kind    Kind
	Strains []float64
	Avg     []float64
	Varied  []float64
}

// NewNonlinearProperty builds a property from tabulated strain/value pairs.
// strains must be strictly increasing and strictly positive.
func NewNonlinearProperty(kind Kind, strains, values []float64) (*NonlinearProperty, error) {
	if len(strains) != len(values) {
		return nil, chk.Err("nlprop: strains and values must have the same length (%d != %d)", len(strains), len(values))
	}
	if len(strains) == 0 {
		return nil, chk.Err("nlprop: at least one strain point is required")
	}
	for i := 1; i < len(strains); i++ {
		if strains[i] <= strains[i-1] {
			return nil, chk.Err("nlprop: strains must be strictly increasing (index %d: %g <= %g)", i, strains[i], strains[i-1])
		}
	}
	varied := make([]float64, len(values))
	copy(varied, values)
	return &NonlinearProperty{
		Kind:    kind,
		Strains: strains,
		Avg:     values,
		Varied:  varied,
	}, nil
}

// InterpAvg evaluates the average (unvaried) curve at strainPct (percent)
// via log-linear interpolation; outside the table the endpoint is held.
func (o *NonlinearProperty) InterpAvg(strainPct float64) float64 {
	return interpLogStrain(o.Strains, o.Avg, strainPct)
}

// InterpVaried evaluates the (possibly randomized) curve at strainPct.
func (o *NonlinearProperty) InterpVaried(strainPct float64) float64 {
	return interpLogStrain(o.Strains, o.Varied, strainPct)
}

// interpLogStrain interpolates values linearly against log(strain); outside
// the table the endpoint value is held.
func interpLogStrain(strains, values []float64, strainPct float64) float64 {
	logStrains := make([]float64, len(strains))
	for i, s := range strains {
		logStrains[i] = math.Log(s)
	}
	return numeric.InterpLinear(logStrains, values, math.Log(strainPct))
}

// ResetVaried copies Avg back into Varied, undoing any randomization.
func (o *NonlinearProperty) ResetVaried() {
	copy(o.Varied, o.Avg)
}

// Clone returns a deep copy, suitable for a randomized profile realization.
func (o *NonlinearProperty) Clone() *NonlinearProperty {
	strains := make([]float64, len(o.Strains))
	avg := make([]float64, len(o.Avg))
	varied := make([]float64, len(o.Varied))
	copy(strains, o.Strains)
	copy(avg, o.Avg)
	copy(varied, o.Varied)
	return &NonlinearProperty{Kind: o.Kind, Strains: strains, Avg: avg, Varied: varied}
}
