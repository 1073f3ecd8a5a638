// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/arkottke/strata-sub000/motion"
	"github.com/arkottke/strata-sub000/soil"
	"github.com/arkottke/strata-sub000/wave"
)

// Context is everything one (realization, motion) pair's record() call
// needs: the converged profile and kernel, the driving motion, and the
// fixed axes (response-spectrum periods, oscillator damping) shared by
// every realization (spec §4.5 "Each Output owns its reference axis").
type Context struct {
	Profile       *soil.SoilProfile
	Motion        motion.Motion
	Calculator    *wave.Calculator
	InputLocation soil.Location
	InputType     motion.Type
	OutputType    motion.Type // wavefield convention used for profile/TF outputs, e.g. Within
	Periods       []float64   // response-spectrum period axis
	DampingPct    float64     // oscillator damping ratio, percent
}

// surfaceLocation is the Location at the top of sub-layer index i.
func surfaceLocation(i int) soil.Location {
	return soil.Location{SubLayerIndex: i}
}
