// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wave

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/arkottke/strata-sub000/motion"
	"github.com/arkottke/strata-sub000/nlprop"
	"github.com/arkottke/strata-sub000/numeric"
	"github.com/arkottke/strata-sub000/soil"
)

func buildProfile(tst *testing.T) *soil.SoilProfile {
	strains := []float64{1e-4, 1e-3, 1e-2, 1e-1, 1}
	mr, err := nlprop.NewNonlinearProperty(nlprop.ModulusReduction, strains, []float64{1, 1, 1, 1, 1})
	if err != nil {
		tst.Fatal(err)
	}
	dm, err := nlprop.NewNonlinearProperty(nlprop.Damping, strains, []float64{1, 1, 1, 1, 1})
	if err != nil {
		tst.Fatal(err)
	}
	st := &soil.SoilType{Name: "elastic", UnitWeight: 18.0, DampingMin: 1.0, ModulusReduction: mr, Damping: dm}

	profile := &soil.SoilProfile{
		Types: []*soil.SoilType{st},
		Layers: []*soil.SoilLayer{
			{Thickness: 10, Vel: soil.VelocityDistribution{Avg: 200}, ShearVel: 200, TypeIndex: 0},
		},
		Rock:    &soil.RockLayer{UnitWeight: 20.0, ShearVel: 760, Damping: 0.5},
		Gravity: soil.DefaultGravity,
	}
	if err := profile.Discretize(20.0, 0.2, true); err != nil {
		tst.Fatal(err)
	}
	return profile
}

func Test_wave01(tst *testing.T) {

	chk.PrintTitle("wave01: unit amplitudes at zero frequency")

	profile := buildProfile(tst)
	freq := append([]float64{0}, numeric.LogSpace(0.1, 20, 50)...)
	c := NewCalculator(profile, freq, soil.DefaultGravity)
	if err := c.Compute(); err != nil {
		tst.Fatal(err)
	}
	if cmplx.Abs(c.a[len(c.a)-1][0]-1) > 1e-12 {
		tst.Fatalf("expected unit amplitude at f=0, got %v", c.a[len(c.a)-1][0])
	}
}

func Test_wave02(tst *testing.T) {

	chk.PrintTitle("wave02: surface outcrop AccelTF matches bedrock-outcrop-to-surface amplification")

	profile := buildProfile(tst)
	freq := append([]float64{0}, numeric.LogSpace(0.1, 20, 100)...)
	c := NewCalculator(profile, freq, soil.DefaultGravity)
	if err := c.Compute(); err != nil {
		tst.Fatal(err)
	}
	nsl := len(profile.SubLayers)
	inLoc := soil.Location{SubLayerIndex: nsl}
	outLoc := soil.Location{SubLayerIndex: 0}
	tf := c.AccelTF(inLoc, motion.Outcrop, outLoc, motion.Outcrop)
	for i, v := range tf {
		if math.IsNaN(real(v)) || math.IsNaN(imag(v)) {
			tst.Fatalf("tf[%d] is NaN", i)
		}
	}
	if cmplx.Abs(tf[0]-1) > 1e-6 {
		tst.Fatalf("expected near-unit amplification at f~0, got %v", tf[0])
	}
}

func Test_wave03(tst *testing.T) {

	chk.PrintTitle("wave03: StrainTF and StressTF are finite and related by the complex shear modulus")

	profile := buildProfile(tst)
	freq := numeric.LogSpace(0.1, 20, 64)
	c := NewCalculator(profile, freq, soil.DefaultGravity)
	if err := c.Compute(); err != nil {
		tst.Fatal(err)
	}
	nsl := len(profile.SubLayers)
	inLoc := soil.Location{SubLayerIndex: nsl}
	strainTF := c.StrainTF(inLoc, motion.Outcrop, 0)
	stressTF := c.StressTF(inLoc, motion.Outcrop, 0)
	for i := range strainTF {
		want := c.gstar[0][i] * strainTF[i]
		if cmplx.Abs(want-stressTF[i]) > 1e-9*math.Max(1, cmplx.Abs(want)) {
			tst.Fatalf("stressTF[%d] = %v, expected %v", i, stressTF[i], want)
		}
	}
}
