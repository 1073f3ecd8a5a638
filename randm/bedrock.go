// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randm

import (
	"math/rand"

	"github.com/arkottke/strata-sub000/dist"
)

// BedrockDepthRandomizer draws a new depth to the bedrock half-space from
// an abstract Distribution (spec §4.4 "normal/lognormal/uniform
// distribution with optional truncation").
type BedrockDepthRandomizer struct {
	Distribution dist.Distribution // Avg is overwritten with depth before each Vary call
}

// Vary draws a new bedrock depth; depth is clamped to be positive since a
// zero-thickness column is meaningless.
func (b BedrockDepthRandomizer) Vary(depth float64, src *rand.Rand) float64 {
	d := b.Distribution
	d.Avg = depth
	v := d.Sample(src)
	if v <= 0 {
		v = depth
	}
	return v
}
