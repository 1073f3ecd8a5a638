// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

// canonicalDepthAxis builds the piecewise-densified depth vector of spec
// §4.5: starting at 0, stepping by 1/2/5/10/20 length units in depth bands
// <20/<60/<160/<360/else, until the vector reaches maxDepth (one point past
// maxDepth is kept so bedrock values are captured), grounded on
// original_source/trunk/src/SiteResponseOutput.cpp's computeDepthVector.
func canonicalDepthAxis(maxDepth float64) []float64 {
	depths := []float64{0}
	for depths[len(depths)-1] < maxDepth {
		last := depths[len(depths)-1]
		var increment float64
		switch {
		case last < 20:
			increment = 1
		case last < 60:
			increment = 2
		case last < 160:
			increment = 5
		case last < 360:
			increment = 10
		default:
			increment = 20
		}
		depths = append(depths, last+increment)
	}
	return depths
}
