// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

// LinearElasticDriver returns a Driver configured as the linear-elastic
// special case of spec §4.2: a single pass (MaxIterations=1), so Gmax/D0
// are used throughout and no strain-compatible property update occurs
// ("the linear-elastic driver is the same algorithm with Kmax=1 and no
// property update").
func LinearElasticDriver(d Driver) *Driver {
	d.MaxIterations = 1
	d.NoPropertyUpdate = true
	return &d
}
