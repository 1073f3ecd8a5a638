// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/arkottke/strata-sub000/out"
)

func testProject() *Project {
	strains := []float64{1e-4, 1e-3, 1e-2, 1e-1, 1}
	freq := []float64{0.2, 1, 5, 10, 25}
	fas := []float64{0.01, 0.02, 0.015, 0.008, 0.002}
	return &Project{
		Types: []SoilTypeSpec{
			{
				Name: "sand", UnitWeight: 18.0, DampingMin: 1.0,
				Curves: CurveSpec{
					Source:  "tabulated",
					Strains: strains,
					Modulus: []float64{1.0, 0.9, 0.6, 0.3, 0.1},
					Damping: []float64{1.0, 2.0, 5.0, 10.0, 15.0},
				},
			},
		},
		Layers: []SoilLayerSpec{
			{Thickness: 20, Velocity: VelocityDistributionSpec{Avg: 250, Kind: "normal"}, TypeIndex: 0},
		},
		Rock: RockLayerSpec{UnitWeight: 21.0, ShearVelAvg: 760, DampingAvg: 0.5},
		Motions: []MotionSpec{
			{Name: "rvt-1", Freq: freq, Fas: fas, Duration: 20, Type: "outcrop"},
		},
		Config: ControllerConfig{
			Method:             RandomVibrationTheory,
			InputLocationDepth: -1, // bedrock surface
			MaxIterations:      10,
			ErrorTolerance:     2.0,
			StrainRatio:        0.65,
			Periods:            []float64{0.1, 0.5, 1.0},
			DampingPct:         5.0,
		},
		Outputs: map[string]OutputFlag{
			"MaxStrainProfile": {Enabled: true},
			"VerticalStress":   {Enabled: true},
		},
	}
}

func Test_project01(tst *testing.T) {

	chk.PrintTitle("project01: Build wires a project into a ready-to-run Controller")

	p := testProject()
	controller, kinds, err := p.Build()
	if err != nil {
		tst.Fatal(err)
	}
	if len(kinds) != 2 {
		tst.Fatalf("expected 2 enabled output kinds, got %d", len(kinds))
	}
	if controller.Profile == nil {
		tst.Fatal("expected a built profile")
	}
	if len(controller.Profile.SubLayers) == 0 {
		tst.Fatal("expected the profile to already be discretized before Run")
	}
	if !controller.InputLocation.InHalfSpace(len(controller.Profile.SubLayers)) {
		tst.Fatal("a negative InputLocationDepth must resolve into the half-space")
	}

	catalog, err := controller.Run(kinds)
	if err != nil {
		tst.Fatal(err)
	}
	if catalog.NumRealization != 1 {
		tst.Fatalf("expected a single realization, got %d", catalog.NumRealization)
	}
	for _, e := range catalog.Enabled {
		if !e {
			tst.Fatal("the one realization x motion pair must succeed")
		}
	}
}

func Test_project02(tst *testing.T) {

	chk.PrintTitle("project02: Save then Load round-trips a project")

	p := testProject()
	path := filepath.Join(tst.TempDir(), "project.json")
	if err := p.Save(path); err != nil {
		tst.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		tst.Fatal(err)
	}
	if loaded.SchemaVersion != CurrentSchemaVersion {
		tst.Fatalf("expected schema version %d, got %d", CurrentSchemaVersion, loaded.SchemaVersion)
	}
	if len(loaded.Types) != len(p.Types) {
		tst.Fatalf("expected %d soil types, got %d", len(p.Types), len(loaded.Types))
	}
	if len(loaded.Motions) != len(p.Motions) {
		tst.Fatalf("expected %d motions, got %d", len(p.Motions), len(loaded.Motions))
	}

	if _, _, err := loaded.Build(); err != nil {
		tst.Fatalf("a round-tripped project must still build: %v", err)
	}
}

func Test_project03(tst *testing.T) {

	chk.PrintTitle("project03: validate rejects an empty project")

	p := &Project{}
	if _, _, err := p.Build(); err == nil {
		tst.Fatal("expected an error for a project with no types, layers, or motions")
	}
}

func Test_project04(tst *testing.T) {

	chk.PrintTitle("project04: outputKinds filters to enabled flags only, in catalog order")

	p := testProject()
	p.Outputs = map[string]OutputFlag{
		"AriasIntensity":  {Enabled: true},
		"MaxVelProfile":   {Enabled: false},
		"VerticalStress":  {Enabled: true},
	}
	kinds, err := p.outputKinds()
	if err != nil {
		tst.Fatal(err)
	}
	if len(kinds) != 2 {
		tst.Fatalf("expected 2 enabled kinds, got %d", len(kinds))
	}
	if kinds[0] != out.VerticalStress || kinds[1] != out.AriasIntensity {
		tst.Fatalf("expected catalog-order [VerticalStress, AriasIntensity], got %v", kinds)
	}
}
