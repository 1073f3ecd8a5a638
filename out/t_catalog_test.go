// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/arkottke/strata-sub000/motion"
	"github.com/arkottke/strata-sub000/nlprop"
	"github.com/arkottke/strata-sub000/soil"
	"github.com/arkottke/strata-sub000/wave"
)

func buildContext(tst *testing.T) *Context {
	modulus, err := nlprop.NewNonlinearProperty(nlprop.ModulusReduction, []float64{1e-4, 1.0}, []float64{1.0, 0.5})
	if err != nil {
		tst.Fatal(err)
	}
	damping, err := nlprop.NewNonlinearProperty(nlprop.Damping, []float64{1e-4, 1.0}, []float64{1.0, 5.0})
	if err != nil {
		tst.Fatal(err)
	}
	st := &soil.SoilType{Name: "sand", UnitWeight: 18.0, DampingMin: 1.0, ModulusReduction: modulus, Damping: damping}
	layer := &soil.SoilLayer{Thickness: 30.0, ShearVel: 300.0, Vel: soil.VelocityDistribution{Avg: 300.0}}
	rock := &soil.RockLayer{UnitWeight: 20.0, ShearVel: 760.0, Damping: 0.5}
	profile := &soil.SoilProfile{Types: []*soil.SoilType{st}, Layers: []*soil.SoilLayer{layer}, Rock: rock}
	if err := profile.Discretize(20.0, 0.20, false); err != nil {
		tst.Fatal(err)
	}

	freq := []float64{0, 1, 2, 5, 10, 20}
	calc := wave.NewCalculator(profile, freq, profile.Gravity)
	if err := calc.Compute(); err != nil {
		tst.Fatal(err)
	}

	fas := make([]float64, len(freq))
	for i := range fas {
		fas[i] = 0.01
	}
	m, err := motion.NewRvtMotion(freq, fas, 20.0, motion.Outcrop)
	if err != nil {
		tst.Fatal(err)
	}

	return &Context{
		Profile:       profile,
		Motion:        m,
		Calculator:    calc,
		InputLocation: soil.Location{SubLayerIndex: len(profile.SubLayers)},
		InputType:     motion.Outcrop,
		OutputType:    motion.Within,
		Periods:       []float64{0.01, 0.1, 1.0},
		DampingPct:    5.0,
	}
}

func Test_out01(tst *testing.T) {

	chk.PrintTitle("out01: canonical depth axis bands")

	depths := canonicalDepthAxis(25.0)
	if depths[0] != 0 {
		tst.Fatal("axis must start at 0")
	}
	for i := 1; i < len(depths); i++ {
		step := depths[i] - depths[i-1]
		if depths[i-1] < 20 && step != 1 {
			tst.Fatalf("expected step 1 below depth 20, got %g at %g", step, depths[i-1])
		}
	}
	if depths[len(depths)-1] < 25.0 {
		tst.Fatal("axis must reach maxDepth")
	}
}

func Test_out02(tst *testing.T) {

	chk.PrintTitle("out02: log-normal and linear reductions")

	samples := []float64{90.0, 100.0, 110.0}
	lin := reduceLinear(samples)
	chk.Scalar(tst, "linear mean", 1e-9, lin.Mean, 100.0)

	logn := reduceLogNormal(samples)
	if logn.Mean <= 0 {
		tst.Fatal("log-normal mean must be positive")
	}
	if logn.Lower >= logn.Mean || logn.Upper <= logn.Mean {
		tst.Fatal("log-normal band must bracket the mean")
	}
}

func Test_out03(tst *testing.T) {

	chk.PrintTitle("out03: profile output records and finalizes across two realizations")

	o := NewOutput(VerticalStress, 2)
	ctx := buildContext(tst)
	if err := o.Record(0, ctx); err != nil {
		tst.Fatal(err)
	}
	if err := o.Record(1, ctx); err != nil {
		tst.Fatal(err)
	}
	o.Finalize([]bool{true, true})
	if len(o.Mean) != len(o.Abscissa) {
		tst.Fatal("Mean must align with Abscissa")
	}
	for i, v := range o.Mean {
		if v < 0 {
			tst.Fatalf("vertical stress must be non-negative, got %g at depth %g", v, o.Abscissa[i])
		}
	}
}

func Test_out04(tst *testing.T) {

	chk.PrintTitle("out04: disabled slot excluded from finalize")

	o := NewOutput(VerticalStress, 2)
	ctx := buildContext(tst)
	if err := o.Record(0, ctx); err != nil {
		tst.Fatal(err)
	}
	// slot 1 left nil (never recorded) simulates a failed realization
	o.Finalize([]bool{true, false})
	if len(o.Mean) == 0 {
		tst.Fatal("expected finalized statistics even with one excluded slot")
	}
}

func Test_out05(tst *testing.T) {

	chk.PrintTitle("out05: catalog fans out and writes CSV")

	ctx := buildContext(tst)
	c := NewCatalog([]Kind{VerticalStress, FourierSpectrum}, 2, 1, len(ctx.Profile.Types))
	for r := 0; r < 2; r++ {
		if err := c.Record(r, 0, ctx); err != nil {
			tst.Fatal(err)
		}
	}
	c.Finalize()
	csv := c.WriteCSV()
	if !strings.Contains(csv, "VerticalStress") {
		tst.Fatal("CSV output must contain the VerticalStress section")
	}
	if !strings.Contains(csv, "ModulusCurve") {
		tst.Fatal("CSV output must contain the soil type curve sections")
	}
}

func Test_out06(tst *testing.T) {

	chk.PrintTitle("out06: curve output tracks a specific soil type")

	o := NewOutput(ModulusCurve, 1)
	ctx := buildContext(tst)
	if err := o.Record(0, ctx); err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "curve abscissa length matches strains", 1e-15, float64(len(o.Abscissa)), float64(len(ctx.Profile.Types[0].ModulusReduction.Strains)))
}
