// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randm

import (
	"math"
	"math/rand"

	"github.com/arkottke/strata-sub000/soil"
)

// VelocityRandomizer draws each layer's shear-wave velocity from a
// correlated log-normal sequence (spec §4.4, Toro 1995):
//
//	randVar_1 = Z_1 * stdev_1
//	randVar_l = rho_l*randVar_{l-1} + Z_l*stdev_l*sqrt(1-rho_l^2),  l > 1
//	Vs_l      = avg_l * exp(randVar_l)
//
// The bedrock half-space, when its ShearVelAvg is set, is assumed
// perfectly correlated to the last soil layer (scaled by the ratio of
// standard deviations when per-layer stdevs are used) and floored at the
// last soil layer's velocity.
type VelocityRandomizer struct {
	Correlation  CorrelationParams
	Stdev        float64   // site-wide stdev, used unless StdevByLayer is set
	StdevByLayer []float64 // optional per-layer stdev, indexed like profile.Layers
}

func (v *VelocityRandomizer) stdevAt(i int) float64 {
	if len(v.StdevByLayer) > i {
		return v.StdevByLayer[i]
	}
	return v.Stdev
}

// Vary overwrites each layer's ShearVel (and, when configured, the rock
// half-space's ShearVel) with a correlated log-normal draw; Vel.Avg/
// ShearVelAvg are left untouched so repeated calls always vary from the
// same mean. A layer with IsVaried false is reset to its mean instead of
// drawn (spec §4.4's per-layer opt-out), but still feeds the correlation
// chain with randVar 0 so the next varied layer correlates against it
// correctly, mirroring the source's reset() path.
func (v *VelocityRandomizer) Vary(profile *soil.SoilProfile, src *rand.Rand) {
	var prevRandVar, prevStdev float64
	for i, layer := range profile.Layers {
		stdev := v.stdevAt(i)
		if !layer.IsVaried {
			layer.ShearVel = layer.Vel.Avg
			prevRandVar, prevStdev = 0, stdev
			continue
		}
		draw := src.NormFloat64() * stdev
		var randVar float64
		if i == 0 {
			randVar = draw
		} else {
			depthToMid := layer.Depth + layer.Thickness/2
			rho := v.Correlation.Correlation(depthToMid, layer.Thickness)
			randVar = rho*prevRandVar + draw*math.Sqrt(math.Max(1-rho*rho, 0))
		}
		layer.ShearVel = layer.Vel.Avg * math.Exp(randVar)
		prevRandVar, prevStdev = randVar, stdev
	}

	rock := profile.Rock
	if rock != nil && rock.ShearVelAvg > 0 && len(profile.Layers) > 0 {
		randVar := prevRandVar
		rockStdev := v.stdevAt(len(profile.Layers))
		if prevStdev > 0 && rockStdev > 0 {
			randVar *= rockStdev / prevStdev
		}
		last := profile.Layers[len(profile.Layers)-1].ShearVel
		rock.ShearVel = math.Max(rock.ShearVelAvg*math.Exp(randVar), last)
	}
}
