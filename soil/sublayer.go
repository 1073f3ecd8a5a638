// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soil

// SubLayer is the kernel-level discretization unit of a SoilLayer (spec
// §3). It carries the mutable state the equivalent-linear iteration (see
// package calc) updates every pass: current and previous shear modulus and
// damping, effective/max strain, and the relative error that drove
// convergence.
type SubLayer struct {
	Thickness       float64
	Depth           float64 // depth of the sub-layer's top
	TotalStressBase float64 // vertical total stress at the sub-layer's base
	WaterTableDepth float64
	LayerIndex      int // index into SoilProfile.Layers of the owning SoilLayer

	ShearMod    float64 // current shear modulus (small-strain * G/Gmax)
	Damping     float64 // current damping, percent
	OldShearMod float64
	OldDamping  float64
	EffStrain   float64 // effective (strain-ratio-scaled) shear strain, percent
	MaxStrain   float64 // peak shear strain, percent
	Error       float64 // relative error (percent) driving convergence

	UnitWeight float64
	ShearVel   float64 // current (possibly randomized) shear-wave velocity
}

// Density returns mass density consistent with UnitWeight and the given
// gravitational acceleration.
func (s *SubLayer) Density(gravity float64) float64 {
	return s.UnitWeight / gravity
}

// SaveOld snapshots the current properties as "old" before an iteration
// updates ShearMod/Damping, so the driver can measure relative error.
func (s *SubLayer) SaveOld() {
	s.OldShearMod = s.ShearMod
	s.OldDamping = s.Damping
}
