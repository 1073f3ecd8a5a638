// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package soil implements the physical data model of a layered site:
// SoilType, SoilLayer, RockLayer, SoilProfile, and the kernel-facing
// SubLayer discretization (spec §3).
package soil

import (
	"github.com/cpmech/gosl/chk"

	"github.com/arkottke/strata-sub000/nlprop"
)

// SoilType holds the physical attributes shared by every SoilLayer built
// from it: unit weight, small-strain damping, and the two nonlinear curves
// that drive the equivalent-linear iteration. A SoilLayer references its
// SoilType by a stable catalog index (see SoilProfile.Types) rather than a
// live pointer, so a randomized profile clone can share SoilTypes safely
// across realizations.
type SoilType struct {
	Name              string
	UnitWeight        float64 // kN/m^3 (or consistent unit)
	DampingMin        float64 // initial small-strain damping, percent
	ModulusReduction  *nlprop.NonlinearProperty
	Damping           *nlprop.NonlinearProperty
	IsVaried          bool
	Darendeli         *nlprop.DarendeliParams // optional; nil unless curves are Darendeli-derived
}

// Validate checks that the two curves are present and strain-indexed.
func (o *SoilType) Validate() error {
	if o.ModulusReduction == nil {
		return chk.Err("soil: soil type %q is missing a modulus-reduction curve", o.Name)
	}
	if o.Damping == nil {
		return chk.Err("soil: soil type %q is missing a damping curve", o.Name)
	}
	if o.ModulusReduction.Kind != nlprop.ModulusReduction {
		return chk.Err("soil: soil type %q modulus-reduction curve has the wrong kind", o.Name)
	}
	if o.Damping.Kind != nlprop.Damping {
		return chk.Err("soil: soil type %q damping curve has the wrong kind", o.Name)
	}
	if o.UnitWeight <= 0 {
		return chk.Err("soil: soil type %q unit weight must be > 0", o.Name)
	}
	return nil
}

// InterpAt returns (G/Gmax, damping%) at the given effective shear strain
// (percent), reading from the Varied curve (which equals Avg until a
// randomizer overwrites it).
func (o *SoilType) InterpAt(strainPct float64) (gOverGmax, dampingPct float64) {
	return o.ModulusReduction.InterpVaried(strainPct), o.Damping.InterpVaried(strainPct)
}

// Clone returns a deep copy suitable for an independent randomized profile.
func (o *SoilType) Clone() *SoilType {
	var darendeli *nlprop.DarendeliParams
	if o.Darendeli != nil {
		cp := *o.Darendeli
		darendeli = &cp
	}
	return &SoilType{
		Name:             o.Name,
		UnitWeight:       o.UnitWeight,
		DampingMin:       o.DampingMin,
		ModulusReduction: o.ModulusReduction.Clone(),
		Damping:          o.Damping.Clone(),
		IsVaried:         o.IsVaried,
		Darendeli:        darendeli,
	}
}
