// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soil

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/arkottke/strata-sub000/nlprop"
)

func oneLayerProfile(tst *testing.T) *SoilProfile {
	modulus, err := nlprop.NewNonlinearProperty(nlprop.ModulusReduction, []float64{1e-4, 1.0}, []float64{1.0, 1.0})
	if err != nil {
		tst.Fatal(err)
	}
	damping, err := nlprop.NewNonlinearProperty(nlprop.Damping, []float64{1e-4, 1.0}, []float64{1.0, 1.0})
	if err != nil {
		tst.Fatal(err)
	}
	st := &SoilType{Name: "sand", UnitWeight: 19.0, DampingMin: 1.0, ModulusReduction: modulus, Damping: damping}
	layer := &SoilLayer{Thickness: 30.0, ShearVel: 300.0, Vel: VelocityDistribution{Avg: 300.0}}
	rock := &RockLayer{UnitWeight: 20.0, ShearVel: 300.0, Damping: 1.0}
	return &SoilProfile{Types: []*SoilType{st}, Layers: []*SoilLayer{layer}, Rock: rock}
}

func Test_profile01(tst *testing.T) {

	chk.PrintTitle("profile01: depth invariants")

	p := oneLayerProfile(tst)
	if err := p.Validate(); err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "layer depth", 1e-15, p.Layers[0].Depth, 0.0)
	chk.Scalar(tst, "rock depth", 1e-15, p.Rock.Depth, 30.0)
}

func Test_profile02(tst *testing.T) {

	chk.PrintTitle("profile02: auto-discretization respects Vs/(maxFreq*waveFraction)")

	p := oneLayerProfile(tst)
	if err := p.Discretize(20.0, 0.20, false); err != nil {
		tst.Fatal(err)
	}
	hMax := 300.0 / (20.0 * 0.20)
	sum := 0.0
	for _, s := range p.SubLayers {
		if s.Thickness > hMax+1e-9 {
			tst.Fatalf("sub-layer thickness %g exceeds hMax %g", s.Thickness, hMax)
		}
		sum += s.Thickness
	}
	chk.Scalar(tst, "sub-layer thickness sums to layer thickness", 1e-9, sum, 30.0)
}

func Test_profile03(tst *testing.T) {

	chk.PrintTitle("profile03: disabling auto-discretization yields one sub-layer per layer")

	p := oneLayerProfile(tst)
	if err := p.Discretize(20.0, 0.20, true); err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(len(p.SubLayers), 1)
}

func Test_profile04(tst *testing.T) {

	chk.PrintTitle("profile04: clone is independent")

	p := oneLayerProfile(tst)
	if err := p.Discretize(20, 0.2, false); err != nil {
		tst.Fatal(err)
	}
	q := p.Clone()
	q.Types[0].DampingMin = 99.0
	if p.Types[0].DampingMin == 99.0 {
		tst.Fatal("clone must not alias the original soil type")
	}
}
