// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randm

import (
	"math/rand"

	"github.com/arkottke/strata-sub000/soil"
)

// ProfileRandomizer composes the four independently enable/disable-able
// sub-models of spec §4.4 into the single per-realization profile-building
// step. A nil sub-model field disables that variation.
type ProfileRandomizer struct {
	Nonlinear *NonlinearPropertyRandomizer
	Bedrock   *BedrockDepthRandomizer
	Thickness *ThicknessRandomizer
	Velocity  *VelocityRandomizer
}

// Enabled reports whether any randomization is configured; the controller
// (package site) forces the realization count to 1 when this is false.
func (p ProfileRandomizer) Enabled() bool {
	return p.Nonlinear != nil || p.Bedrock != nil || p.Thickness != nil || p.Velocity != nil
}

// Realize builds realization i's profile from the deterministic base,
// following the ordering of spec §4.4 / original_source's
// SoilProfile::createSubLayers: nonlinear curves, then bedrock damping,
// then bedrock depth, then layering, then velocity, then re-discretize. base
// is never mutated.
func (p ProfileRandomizer) Realize(base *soil.SoilProfile, maxFreq, waveFraction float64, disableAuto bool, src *rand.Rand) (*soil.SoilProfile, error) {
	out := base.Clone()

	if p.Nonlinear != nil {
		for _, st := range out.Types {
			if err := p.Nonlinear.VarySoilType(st, src); err != nil {
				return nil, err
			}
		}
		if out.Rock != nil {
			p.Nonlinear.VaryRock(out.Rock, src)
		}
	}

	depthToBedrock := out.Rock.Depth
	if p.Bedrock != nil {
		depthToBedrock = p.Bedrock.Vary(depthToBedrock, src)
	}

	if p.Thickness != nil {
		thicknesses := p.Thickness.Vary(depthToBedrock, src)
		out.Layers = rebuildLayers(base.Layers, thicknesses)
	} else if depthToBedrock != out.Rock.Depth {
		rescaleLayers(out.Layers, depthToBedrock)
	}

	if p.Velocity != nil {
		p.Velocity.Vary(out, src)
	}

	if err := out.Discretize(maxFreq, waveFraction, disableAuto); err != nil {
		return nil, err
	}
	return out, nil
}

// rebuildLayers assigns each new thickness segment the representative
// SoilType/velocity of the base layer with the greatest shear-wave
// travel-time overlap in its depth range (spec §4.4, original_source
// SoilProfile::createRepresentativeSoilLayer).
func rebuildLayers(base []*soil.SoilLayer, thicknesses []float64) []*soil.SoilLayer {
	out := make([]*soil.SoilLayer, len(thicknesses))
	depth := 0.0
	for i, h := range thicknesses {
		rep := representativeLayer(base, depth, depth+h)
		out[i] = &soil.SoilLayer{
			Thickness: h,
			Depth:     depth,
			Vel:       rep.Vel,
			IsVaried:  rep.IsVaried,
			ShearVel:  rep.ShearVel,
			TypeIndex: rep.TypeIndex,
		}
		depth += h
	}
	return out
}

// representativeLayer picks the base layer whose overlap with [top,base]
// has the largest shear-wave travel time Σ overlap/Vs; falls back to the
// deepest layer when no overlap exists (e.g. top exceeds the profile's
// total depth).
func representativeLayer(base []*soil.SoilLayer, top, bottom float64) *soil.SoilLayer {
	var best *soil.SoilLayer
	bestTravelTime := -1.0
	for _, l := range base {
		lo := top
		if l.Depth > lo {
			lo = l.Depth
		}
		hi := bottom
		if l.Depth+l.Thickness < hi {
			hi = l.Depth + l.Thickness
		}
		overlap := hi - lo
		if overlap <= 0 {
			continue
		}
		vs := l.ShearVel
		if vs <= 0 {
			vs = l.Vel.Avg
		}
		if vs <= 0 {
			continue
		}
		tt := overlap / vs
		if tt > bestTravelTime {
			bestTravelTime, best = tt, l
		}
	}
	if best == nil && len(base) > 0 {
		best = base[len(base)-1]
	}
	return best
}

// rescaleLayers proportionally scales every layer's thickness so the
// column depth matches a varied bedrock depth when layering itself is not
// being randomized.
func rescaleLayers(layers []*soil.SoilLayer, depthToBedrock float64) {
	sum := 0.0
	for _, l := range layers {
		sum += l.Thickness
	}
	if sum <= 0 {
		return
	}
	factor := depthToBedrock / sum
	depth := 0.0
	for _, l := range layers {
		l.Thickness *= factor
		l.Depth = depth
		depth += l.Thickness
	}
}
