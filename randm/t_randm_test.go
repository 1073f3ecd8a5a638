// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randm

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/arkottke/strata-sub000/dist"
	"github.com/arkottke/strata-sub000/nlprop"
	"github.com/arkottke/strata-sub000/soil"
)

func buildTestProfile(tst *testing.T) *soil.SoilProfile {
	strains := []float64{1e-4, 1e-3, 1e-2, 1e-1, 1}
	mr, err := nlprop.NewNonlinearProperty(nlprop.ModulusReduction, strains, []float64{1.0, 0.95, 0.7, 0.3, 0.1})
	if err != nil {
		tst.Fatal(err)
	}
	dm, err := nlprop.NewNonlinearProperty(nlprop.Damping, strains, []float64{1.0, 2.0, 5.0, 10.0, 15.0})
	if err != nil {
		tst.Fatal(err)
	}
	st := &soil.SoilType{Name: "clay", UnitWeight: 18.0, DampingMin: 1.0, ModulusReduction: mr, Damping: dm, IsVaried: true}
	profile := &soil.SoilProfile{
		Types: []*soil.SoilType{st},
		Layers: []*soil.SoilLayer{
			{Thickness: 10, Vel: soil.VelocityDistribution{Avg: 200}, ShearVel: 200, IsVaried: true, TypeIndex: 0},
			{Thickness: 15, Vel: soil.VelocityDistribution{Avg: 300}, ShearVel: 300, IsVaried: true, TypeIndex: 0},
		},
		Rock:    &soil.RockLayer{UnitWeight: 20.0, ShearVel: 760, ShearVelAvg: 760, Damping: 0.5, DampingAvg: 0.5, DampingStd: 0.1},
		Gravity: soil.DefaultGravity,
	}
	if err := profile.Discretize(20.0, 0.2, true); err != nil {
		tst.Fatal(err)
	}
	return profile
}

func Test_randm01(tst *testing.T) {

	chk.PrintTitle("randm01: correlation coefficient stays within [0,1]")

	p := Preset(USGSAB)
	for _, depth := range []float64{0, 10, 50, 150, 300} {
		for _, thickness := range []float64{1, 5, 20} {
			rho := p.Correlation(depth, thickness)
			if rho < 0 || rho > 1 {
				tst.Fatalf("correlation out of range at depth=%g thickness=%g: %g", depth, thickness, rho)
			}
		}
	}
}

func Test_randm02(tst *testing.T) {

	chk.PrintTitle("randm02: velocity randomizer reproduces an identical sequence for a fixed seed")

	profile := buildTestProfile(tst)
	v := &VelocityRandomizer{Correlation: Preset(USGSAB), Stdev: 0.2}

	p1 := profile.Clone()
	v.Vary(p1, rand.New(rand.NewSource(42)))

	p2 := profile.Clone()
	v.Vary(p2, rand.New(rand.NewSource(42)))

	for i := range p1.Layers {
		chk.Scalar(tst, "layer ShearVel reproducible", 1e-12, p1.Layers[i].ShearVel, p2.Layers[i].ShearVel)
	}
	chk.Scalar(tst, "rock ShearVel reproducible", 1e-12, p1.Rock.ShearVel, p2.Rock.ShearVel)
	if p1.Rock.ShearVel < p1.Layers[len(p1.Layers)-1].ShearVel-1e-9 {
		tst.Fatalf("rock velocity %g fell below last layer velocity %g", p1.Rock.ShearVel, p1.Layers[len(p1.Layers)-1].ShearVel)
	}
}

func Test_randm03(tst *testing.T) {

	chk.PrintTitle("randm03: thickness randomizer lands exactly on the bedrock depth")

	t := DefaultThicknessRandomizer()
	src := rand.New(rand.NewSource(7))
	depthToBedrock := 42.0
	thicknesses := t.Vary(depthToBedrock, src)
	if len(thicknesses) == 0 {
		tst.Fatal("expected at least one layer")
	}
	sum := 0.0
	for _, h := range thicknesses {
		if h <= 0 {
			tst.Fatalf("non-positive thickness %g", h)
		}
		sum += h
	}
	chk.Scalar(tst, "thicknesses sum to depthToBedrock", 1e-9, sum, depthToBedrock)
}

func Test_randm04(tst *testing.T) {

	chk.PrintTitle("randm04: Darendeli sigma model keeps varied curves within bounds")

	profile := buildTestProfile(tst)
	n := DefaultNonlinearPropertyRandomizer()
	src := rand.New(rand.NewSource(11))

	if err := n.VarySoilType(profile.Types[0], src); err != nil {
		tst.Fatal(err)
	}
	mr := profile.Types[0].ModulusReduction
	dm := profile.Types[0].Damping
	for i := range mr.Strains {
		if mr.Varied[i] < DefaultModulusMin-1e-9 || mr.Varied[i] > DefaultModulusMax+1e-9 {
			tst.Fatalf("varied G/Gmax[%d]=%g out of bounds", i, mr.Varied[i])
		}
		if dm.Varied[i] < DefaultDampingMin-1e-9 {
			tst.Fatalf("varied damping[%d]=%g below floor", i, dm.Varied[i])
		}
	}

	n.VaryRock(profile.Rock, src)
	if profile.Rock.Damping < 0 {
		tst.Fatalf("varied rock damping %g below zero", profile.Rock.Damping)
	}
}

func Test_randm05(tst *testing.T) {

	chk.PrintTitle("randm05: bedrock-depth randomizer samples around the deterministic depth")

	b := BedrockDepthRandomizer{Distribution: dist.Distribution{Kind: dist.Normal, Stdev: 1.0}}
	src := rand.New(rand.NewSource(3))
	depth := b.Vary(25.0, src)
	if depth <= 0 {
		tst.Fatalf("varied depth must stay positive, got %g", depth)
	}
	if math.Abs(depth-25.0) > 10 {
		tst.Fatalf("varied depth %g implausibly far from mean 25", depth)
	}
}

func Test_randm06(tst *testing.T) {

	chk.PrintTitle("randm06: profile randomizer produces a fully discretized, independent realization")

	base := buildTestProfile(tst)
	nonlinear := DefaultNonlinearPropertyRandomizer()
	thickness := DefaultThicknessRandomizer()
	pr := ProfileRandomizer{
		Nonlinear: &nonlinear,
		Thickness: &thickness,
		Velocity:  &VelocityRandomizer{Correlation: Preset(USGSAB), Stdev: 0.15},
	}
	src := rand.New(rand.NewSource(99))
	realized, err := pr.Realize(base, 20.0, 0.2, true, src)
	if err != nil {
		tst.Fatal(err)
	}
	if len(realized.SubLayers) == 0 {
		tst.Fatal("expected a non-empty discretization")
	}
	chk.Scalar(tst, "base profile untouched", 1e-9, base.Layers[0].Thickness, 10.0)
	chk.Scalar(tst, "realized rock depth matches sum of layers", 1e-6, realized.Rock.Depth, sumThickness(realized.Layers))
}

func Test_randm07(tst *testing.T) {

	chk.PrintTitle("randm07: a layer marked IsVaried false is left at its mean velocity")

	profile := buildTestProfile(tst)
	profile.Layers[0].IsVaried = false
	v := &VelocityRandomizer{Correlation: Preset(USGSAB), Stdev: 0.2}

	v.Vary(profile, rand.New(rand.NewSource(5)))

	chk.Scalar(tst, "unvaried layer stays at its mean", 1e-12, profile.Layers[0].ShearVel, profile.Layers[0].Vel.Avg)
	if profile.Layers[1].ShearVel == profile.Layers[1].Vel.Avg {
		tst.Fatal("the still-varied layer should have drawn away from its mean")
	}
}

func sumThickness(layers []*soil.SoilLayer) float64 {
	sum := 0.0
	for _, l := range layers {
		sum += l.Thickness
	}
	return sum
}
