// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soil

import (
	"github.com/cpmech/gosl/chk"
)

// RockLayer is the elastic half-space terminating the profile: infinite
// thickness, no strain dependence, but its own randomizable damping (spec
// §3 — "carries its own damping (randomized like a normal RV bounded below
// by 0)").
type RockLayer struct {
	UnitWeight  float64
	ShearVel    float64 // current (possibly randomized) value
	ShearVelAvg float64 // mean value used by the velocity randomizer; 0 disables bedrock velocity variation
	Damping     float64 // percent, current (possibly randomized) value
	DampingAvg  float64 // percent, mean value used by the randomizer
	DampingStd  float64 // percent, stdev used by the randomizer (0 disables)
	Depth       float64 // derived: sum of soil layer thicknesses
}

// Validate checks structural invariants.
func (o *RockLayer) Validate() error {
	if o.UnitWeight <= 0 {
		return chk.Err("soil: rock layer unit weight must be > 0")
	}
	if o.ShearVel <= 0 {
		return chk.Err("soil: rock layer shear velocity must be > 0")
	}
	if o.Damping < 0 {
		return chk.Err("soil: rock layer damping must be >= 0")
	}
	return nil
}

// Clone returns a deep copy.
func (o *RockLayer) Clone() *RockLayer {
	cp := *o
	return &cp
}
