// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soil

import (
	"github.com/cpmech/gosl/chk"

	"github.com/arkottke/strata-sub000/dist"
)

// VelocityDistribution describes how a layer's shear-wave velocity is
// drawn when randomization is enabled (spec §3, §4.4).
type VelocityDistribution struct {
	Avg, Stdev     float64
	HasMin, HasMax bool
	Min, Max       float64
	Kind           dist.Kind
}

// ToDistribution converts to the generic sampler.
func (v VelocityDistribution) ToDistribution() dist.Distribution {
	return dist.Distribution{
		Kind: v.Kind, Avg: v.Avg, Stdev: v.Stdev,
		HasMin: v.HasMin, Min: v.Min, HasMax: v.HasMax, Max: v.Max,
	}
}

// SoilLayer is one layer of the deterministic soil column. TypeIndex is a
// stable index into the owning SoilProfile.Types catalog.
type SoilLayer struct {
	Thickness float64
	Depth     float64 // derived: depth of the layer's top
	Vel       VelocityDistribution
	IsVaried  bool
	ShearVel  float64 // current (possibly randomized) shear-wave velocity
	TypeIndex int
}

// Validate checks structural invariants local to a single layer.
func (o *SoilLayer) Validate() error {
	if o.Thickness <= 0 {
		return chk.Err("soil: layer thickness must be > 0, got %g", o.Thickness)
	}
	if o.ShearVel <= 0 && o.Vel.Avg <= 0 {
		return chk.Err("soil: layer has no usable shear velocity")
	}
	return nil
}

// Clone returns a deep copy of the layer (SoilType catalog is shared by
// index, not copied here).
func (o *SoilLayer) Clone() *SoilLayer {
	cp := *o
	return &cp
}
