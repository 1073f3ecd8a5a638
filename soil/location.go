// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soil

// Location addresses a point in the discretized profile: SubLayerIndex
// names which SubLayer the point falls in, and DepthWithin is the depth
// measured from that sub-layer's top. A SubLayerIndex past the last
// sub-layer refers to the half-space (spec §3).
type Location struct {
	SubLayerIndex int
	DepthWithin   float64
}

// InHalfSpace reports whether the location addresses the bedrock
// half-space rather than a finite sub-layer.
func (l Location) InHalfSpace(nsl int) bool {
	return l.SubLayerIndex >= nsl
}
