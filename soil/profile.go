// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soil

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// DefaultMaxFreq and DefaultWaveFraction are the common auto-discretization
// defaults named in spec §3.
const (
	DefaultMaxFreq       = 20.0
	DefaultWaveFraction  = 0.20
	DefaultGravity       = 9.80665
)

// SoilProfile owns an ordered sequence of SoilLayers, a terminating
// RockLayer, a water-table depth, a catalog of SoilTypes shared by index,
// and the derived SubLayer discretization the wave kernel operates on.
type SoilProfile struct {
	Types           []*SoilType
	Layers          []*SoilLayer
	Rock            *RockLayer
	WaterTableDepth float64
	Gravity         float64 // defaults to DefaultGravity if zero

	SubLayers []*SubLayer // derived by Discretize
}

// recomputeDepths fills in each layer's Depth and the rock layer's Depth so
// that depths form a non-decreasing sequence starting at 0 (spec §3
// invariant).
func (o *SoilProfile) recomputeDepths() {
	d := 0.0
	for _, l := range o.Layers {
		l.Depth = d
		d += l.Thickness
	}
	if o.Rock != nil {
		o.Rock.Depth = d
	}
}

// Validate checks the structural invariants of spec §3: layer depths
// non-decreasing from 0, rock depth equal to the thickness sum, every layer
// type index in range.
func (o *SoilProfile) Validate() error {
	if len(o.Layers) == 0 {
		return chk.Err("soil: profile must have at least one soil layer")
	}
	if o.Rock == nil {
		return chk.Err("soil: profile must have a terminating rock layer")
	}
	o.recomputeDepths()
	for i, l := range o.Layers {
		if l.TypeIndex < 0 || l.TypeIndex >= len(o.Types) {
			return chk.Err("soil: layer %d references out-of-range soil type index %d", i, l.TypeIndex)
		}
		if err := l.Validate(); err != nil {
			return err
		}
		if err := o.Types[l.TypeIndex].Validate(); err != nil {
			return err
		}
	}
	sum := 0.0
	for _, l := range o.Layers {
		sum += l.Thickness
	}
	if math.Abs(o.Rock.Depth-sum) > 1e-6*math.Max(1, sum) {
		return chk.Err("soil: rock depth (%g) must equal the sum of layer thicknesses (%g)", o.Rock.Depth, sum)
	}
	return o.Rock.Validate()
}

func (o *SoilProfile) gravity() float64 {
	if o.Gravity > 0 {
		return o.Gravity
	}
	return DefaultGravity
}

// Discretize builds the SubLayer sequence from the current Layers, honoring
// the auto-discretization rule of spec §3: each sub-layer's thickness must
// satisfy h <= Vs/(maxFreq*waveFraction), unless disabled, in which case
// every SoilLayer becomes exactly one SubLayer.
func (o *SoilProfile) Discretize(maxFreq, waveFraction float64, disableAuto bool) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if maxFreq <= 0 {
		maxFreq = DefaultMaxFreq
	}
	if waveFraction <= 0 {
		waveFraction = DefaultWaveFraction
	}
	g := o.gravity()
	var subs []*SubLayer
	depth := 0.0
	for li, l := range o.Layers {
		st := o.Types[l.TypeIndex]
		vs := l.ShearVel
		if vs <= 0 {
			vs = l.Vel.Avg
		}
		n := 1
		if !disableAuto && vs > 0 {
			hMax := vs / (maxFreq * waveFraction)
			if hMax > 0 {
				n = int(math.Ceil(l.Thickness / hMax))
				if n < 1 {
					n = 1
				}
			}
		}
		h := l.Thickness / float64(n)
		for i := 0; i < n; i++ {
			sub := &SubLayer{
				Thickness:       h,
				Depth:           depth,
				WaterTableDepth: o.WaterTableDepth,
				LayerIndex:      li,
				UnitWeight:      st.UnitWeight,
				ShearVel:        vs,
				Damping:         st.DampingMin,
				OldDamping:      st.DampingMin,
			}
			sub.ShearMod = st.UnitWeight / g * vs * vs
			sub.OldShearMod = sub.ShearMod
			subs = append(subs, sub)
			depth += h
		}
	}
	// vertical total stress at each sub-layer's base, accumulated top-down;
	// below the water table the unit weight is still the bulk value (spec
	// leaves buoyant-weight bookkeeping to the caller-supplied UnitWeight).
	stress := 0.0
	for _, s := range subs {
		stress += s.UnitWeight * s.Thickness
		s.TotalStressBase = stress
	}
	o.SubLayers = subs
	return nil
}

// InputLocation resolves a depth (negative meaning the bedrock surface, per
// spec §6 "inputLocationDepth: negative => bedrock surface") to a Location.
func (o *SoilProfile) InputLocation(depth float64) Location {
	nsl := len(o.SubLayers)
	if depth < 0 {
		return Location{SubLayerIndex: nsl}
	}
	for i, s := range o.SubLayers {
		if depth >= s.Depth && depth < s.Depth+s.Thickness {
			return Location{SubLayerIndex: i, DepthWithin: depth - s.Depth}
		}
	}
	return Location{SubLayerIndex: nsl}
}

// MidLocation returns the Location at the mid-depth of sub-layer index ℓ,
// as used by the strain transfer function (spec §4.1 point 5).
func (o *SoilProfile) MidLocation(subLayerIndex int) Location {
	return Location{SubLayerIndex: subLayerIndex, DepthWithin: o.SubLayers[subLayerIndex].Thickness / 2}
}

// Clone returns a deep, independent copy of the profile: SoilTypes are
// cloned (so variation doesn't leak across realizations), and Layers/Rock
// are cloned too. SubLayers are rebuilt by calling Discretize again.
func (o *SoilProfile) Clone() *SoilProfile {
	types := make([]*SoilType, len(o.Types))
	for i, t := range o.Types {
		types[i] = t.Clone()
	}
	layers := make([]*SoilLayer, len(o.Layers))
	for i, l := range o.Layers {
		layers[i] = l.Clone()
	}
	return &SoilProfile{
		Types:           types,
		Layers:          layers,
		Rock:            o.Rock.Clone(),
		WaterTableDepth: o.WaterTableDepth,
		Gravity:         o.Gravity,
	}
}
