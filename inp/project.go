// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"

	"github.com/arkottke/strata-sub000/calc"
	"github.com/arkottke/strata-sub000/dist"
	"github.com/arkottke/strata-sub000/expr"
	"github.com/arkottke/strata-sub000/motion"
	"github.com/arkottke/strata-sub000/nlprop"
	"github.com/arkottke/strata-sub000/out"
	"github.com/arkottke/strata-sub000/randm"
	"github.com/arkottke/strata-sub000/site"
	"github.com/arkottke/strata-sub000/soil"
)

// CurrentSchemaVersion is written by Save; Load reads the stored value into
// Project.SchemaVersion without checking it. The source persists each top-level
// object as a versioned binary blob (spec §6); a project file here is
// instead one versioned JSON document, which the rewrite is explicitly
// free to do as long as its own files round-trip (spec §6 note).
const CurrentSchemaVersion = 1

// Method selects how a project's input motions are obtained (spec §6
// Configuration object: "method in {RecordedMotions, RandomVibrationTheory}").
type Method int

const (
	RecordedMotions Method = iota
	RandomVibrationTheory
)

// OutputFlag is the per-output {enabled, exportEnabled} pair of spec §6.
type OutputFlag struct {
	Enabled       bool `json:"enabled"`
	ExportEnabled bool `json:"exportEnabled"`
}

// CurveSpec describes one SoilType's modulus-reduction/damping curves:
// either tabulated directly or generated from Darendeli parameters over a
// caller-chosen strain axis (nlprop.Source).
type CurveSpec struct {
	Source  string                `json:"source"` // "tabulated" or "darendeli"
	Strains []float64             `json:"strains,omitempty"` // darendeli: strain axis, percent
	Modulus []float64             `json:"modulus,omitempty"` // tabulated: G/Gmax, same length as Strains
	Damping []float64             `json:"damping,omitempty"` // tabulated: percent, same length as Strains
	Darendeli *nlprop.DarendeliParams `json:"darendeli,omitempty"`
}

func (c CurveSpec) build() (modulus, damping *nlprop.NonlinearProperty, err error) {
	switch c.Source {
	case "", "tabulated":
		modulus, err = nlprop.NewNonlinearProperty(nlprop.ModulusReduction, c.Strains, c.Modulus)
		if err != nil {
			return nil, nil, err
		}
		damping, err = nlprop.NewNonlinearProperty(nlprop.Damping, c.Strains, c.Damping)
		if err != nil {
			return nil, nil, err
		}
		return modulus, damping, nil
	case "darendeli":
		if c.Darendeli == nil {
			return nil, nil, chk.Err("inp: curve source darendeli requires darendeli parameters")
		}
		return c.Darendeli.GenerateCurves(c.Strains)
	}
	return nil, nil, chk.Err("inp: unrecognized curve source %q", c.Source)
}

// SoilTypeSpec is the JSON form of soil.SoilType.
type SoilTypeSpec struct {
	Name       string    `json:"name"`
	UnitWeight float64   `json:"unitWeight"`
	DampingMin float64   `json:"dampingMin"`
	Curves     CurveSpec `json:"curves"`
	IsVaried   bool      `json:"isVaried"`
}

func (s SoilTypeSpec) build() (*soil.SoilType, error) {
	modulus, damping, err := s.Curves.build()
	if err != nil {
		return nil, chk.Err("inp: soil type %q: %v", s.Name, err)
	}
	return &soil.SoilType{
		Name: s.Name, UnitWeight: s.UnitWeight, DampingMin: s.DampingMin,
		ModulusReduction: modulus, Damping: damping, IsVaried: s.IsVaried,
	}, nil
}

// VelocityDistributionSpec is the JSON form of soil.VelocityDistribution.
type VelocityDistributionSpec struct {
	Avg    float64 `json:"avg"`
	Stdev  float64 `json:"stdev"`
	Kind   string  `json:"kind"` // "normal", "lognormal", "uniform"
	HasMin bool    `json:"hasMin,omitempty"`
	Min    float64 `json:"min,omitempty"`
	HasMax bool    `json:"hasMax,omitempty"`
	Max    float64 `json:"max,omitempty"`
}

func (v VelocityDistributionSpec) build() (soil.VelocityDistribution, error) {
	k, err := parseDistKind(v.Kind)
	if err != nil {
		return soil.VelocityDistribution{}, err
	}
	return soil.VelocityDistribution{
		Avg: v.Avg, Stdev: v.Stdev, Kind: k,
		HasMin: v.HasMin, Min: v.Min, HasMax: v.HasMax, Max: v.Max,
	}, nil
}

func parseDistKind(s string) (dist.Kind, error) {
	switch s {
	case "", "normal":
		return dist.Normal, nil
	case "lognormal":
		return dist.LogNormal, nil
	case "uniform":
		return dist.Uniform, nil
	}
	return 0, chk.Err("inp: unrecognized distribution kind %q", s)
}

// SoilLayerSpec is the JSON form of soil.SoilLayer.
type SoilLayerSpec struct {
	Thickness float64                  `json:"thickness"`
	Velocity  VelocityDistributionSpec `json:"velocity"`
	IsVaried  bool                     `json:"isVaried"`
	TypeIndex int                      `json:"typeIndex"`
}

func (l SoilLayerSpec) build() (*soil.SoilLayer, error) {
	vel, err := l.Velocity.build()
	if err != nil {
		return nil, err
	}
	return &soil.SoilLayer{
		Thickness: l.Thickness, Vel: vel, ShearVel: vel.Avg,
		IsVaried: l.IsVaried, TypeIndex: l.TypeIndex,
	}, nil
}

// RockLayerSpec is the JSON form of soil.RockLayer.
type RockLayerSpec struct {
	UnitWeight  float64 `json:"unitWeight"`
	ShearVelAvg float64 `json:"shearVelAvg"`
	DampingAvg  float64 `json:"dampingAvg"`
	DampingStd  float64 `json:"dampingStd,omitempty"`
}

func (r RockLayerSpec) build() *soil.RockLayer {
	return &soil.RockLayer{
		UnitWeight: r.UnitWeight, ShearVel: r.ShearVelAvg, ShearVelAvg: r.ShearVelAvg,
		Damping: r.DampingAvg, DampingAvg: r.DampingAvg, DampingStd: r.DampingStd,
	}
}

// VelocityRandomizerSpec is the JSON form of randm.VelocityRandomizer.
type VelocityRandomizerSpec struct {
	CorrelationModel string    `json:"correlationModel,omitempty"` // "geomatrixAB", "geomatrixCD", "custom"
	Correlation      *randm.CorrelationParams `json:"correlation,omitempty"` // custom model only
	Stdev            float64   `json:"stdev"`
	StdevByLayer     []float64 `json:"stdevByLayer,omitempty"`
}

func (v VelocityRandomizerSpec) build() (*randm.VelocityRandomizer, error) {
	corr, err := buildCorrelation(v.CorrelationModel, v.Correlation)
	if err != nil {
		return nil, err
	}
	return &randm.VelocityRandomizer{Correlation: corr, Stdev: v.Stdev, StdevByLayer: v.StdevByLayer}, nil
}

func buildCorrelation(model string, custom *randm.CorrelationParams) (randm.CorrelationParams, error) {
	switch model {
	case "", "geomatrixAB":
		return randm.Preset(randm.GeoMatrixAB), nil
	case "geomatrixCD":
		return randm.Preset(randm.GeoMatrixCD), nil
	case "custom":
		if custom == nil {
			return randm.CorrelationParams{}, chk.Err("inp: custom correlation model requires correlation parameters")
		}
		return *custom, nil
	}
	return randm.CorrelationParams{}, chk.Err("inp: unrecognized correlation model %q", model)
}

// NonlinearRandomizerSpec is the JSON form of randm.NonlinearPropertyRandomizer.
type NonlinearRandomizerSpec struct {
	Model           string  `json:"model"` // "darendeli" or "custom"
	Correlation     float64 `json:"correlation,omitempty"`
	ModulusGExpr    string  `json:"modulusGExpr,omitempty"`
	DampingExpr     string  `json:"dampingExpr,omitempty"`
	ModulusMin      float64 `json:"modulusMin,omitempty"`
	ModulusMax      float64 `json:"modulusMax,omitempty"`
	DampingMinBound float64 `json:"dampingMinBound,omitempty"`
}

func (n NonlinearRandomizerSpec) build() (*randm.NonlinearPropertyRandomizer, error) {
	r := randm.DefaultNonlinearPropertyRandomizer()
	if n.Correlation != 0 {
		r.Correlation = n.Correlation
	}
	if n.ModulusMin != 0 || n.ModulusMax != 0 {
		r.ModulusMin, r.ModulusMax = n.ModulusMin, n.ModulusMax
	}
	if n.DampingMinBound != 0 {
		r.DampingMinBound = n.DampingMinBound
	}
	switch n.Model {
	case "", "darendeli":
		r.Model = randm.DarendeliSigma
	case "custom":
		r.Model = randm.CustomSigma
		gExpr, err := expr.Parse(n.ModulusGExpr)
		if err != nil {
			return nil, chk.Err("inp: modulus sigma expression: %v", err)
		}
		dExpr, err := expr.Parse(n.DampingExpr)
		if err != nil {
			return nil, chk.Err("inp: damping sigma expression: %v", err)
		}
		r.ModulusGExpr, r.DampingExpr = gExpr, dExpr
	default:
		return nil, chk.Err("inp: unrecognized sigma model %q", n.Model)
	}
	return &r, nil
}

// RandomizerSpec is the JSON form of randm.ProfileRandomizer; a nil field
// disables that sub-model, same as the underlying struct.
type RandomizerSpec struct {
	Nonlinear *NonlinearRandomizerSpec `json:"nonlinear,omitempty"`
	BedrockDepthStdev float64          `json:"bedrockDepthStdev,omitempty"` // 0 disables bedrock-depth variation
	Thickness         bool             `json:"thickness,omitempty"`        // true enables Toro (1995) default coefficients
	Velocity          *VelocityRandomizerSpec `json:"velocity,omitempty"`
}

func (r RandomizerSpec) build() (randm.ProfileRandomizer, error) {
	var p randm.ProfileRandomizer
	if r.Nonlinear != nil {
		nl, err := r.Nonlinear.build()
		if err != nil {
			return p, err
		}
		p.Nonlinear = nl
	}
	if r.BedrockDepthStdev > 0 {
		p.Bedrock = &randm.BedrockDepthRandomizer{Distribution: dist.Distribution{Kind: dist.LogNormal, Stdev: r.BedrockDepthStdev}}
	}
	if r.Thickness {
		t := randm.DefaultThicknessRandomizer()
		p.Thickness = &t
	}
	if r.Velocity != nil {
		v, err := r.Velocity.build()
		if err != nil {
			return p, err
		}
		p.Velocity = v
	}
	return p, nil
}

// MotionSpec describes one input motion, either read from a recorded file
// or synthesized as an RVT motion from a Fourier amplitude spectrum.
type MotionSpec struct {
	Name string `json:"name"`

	// Recorded-motion fields (Method == RecordedMotions).
	File       *MotionFileJSON `json:"file,omitempty"`
	AT2        string          `json:"at2,omitempty"`

	// RVT fields (Method == RandomVibrationTheory): a frequency/FAS pair,
	// as produced by a crustal/source model upstream of this package.
	Freq []float64 `json:"freq,omitempty"`
	Fas  []float64 `json:"fas,omitempty"`

	Duration float64    `json:"duration,omitempty"` // RVT only, seconds
	Type     string     `json:"type"`                // "outcrop" or "within"
}

// MotionFileJSON is the JSON form of MotionFileSpec (Gravity is not stored
// per motion; MotionSpec.build receives the project gravity).
type MotionFileJSON struct {
	Path       string  `json:"path"`
	Format     string  `json:"format"` // "rows" or "columns"
	StartLine  int     `json:"startLine"`
	StopLine   int     `json:"stopLine,omitempty"`
	DataColumn int      `json:"dataColumn,omitempty"`
	Dt         float64 `json:"dt"`
	PointCount int     `json:"pointCount"`
	Scale      float64 `json:"scale"`
	Unit       string  `json:"unit,omitempty"`
}

func parseMotionType(s string) (motion.Type, error) {
	switch s {
	case "", "outcrop":
		return motion.Outcrop, nil
	case "within":
		return motion.Within, nil
	}
	return 0, chk.Err("inp: unrecognized motion type %q", s)
}

func (m MotionSpec) build(method Method, gravity float64) (motion.Motion, error) {
	typ, err := parseMotionType(m.Type)
	if err != nil {
		return nil, chk.Err("inp: motion %q: %v", m.Name, err)
	}

	switch method {
	case RecordedMotions:
		var accel []float64
		var dt float64
		switch {
		case m.AT2 != "":
			accel, dt, err = ReadAT2(m.AT2)
			if err != nil {
				return nil, err
			}
		case m.File != nil:
			format := Rows
			if m.File.Format == "columns" {
				format = Columns
			}
			unit, uerr := ParseAccelUnit(m.File.Unit)
			if uerr != nil {
				return nil, chk.Err("inp: motion %q: %v", m.Name, uerr)
			}
			scale := m.File.Scale
			if scale == 0 {
				scale = 1
			}
			accel, err = ReadMotionFile(MotionFileSpec{
				Path: m.File.Path, Format: format,
				StartLine: m.File.StartLine, StopLine: m.File.StopLine, DataColumn: m.File.DataColumn,
				Dt: m.File.Dt, PointCount: m.File.PointCount, Scale: scale, Unit: unit, Gravity: gravity,
			})
			if err != nil {
				return nil, err
			}
			dt = m.File.Dt
		default:
			return nil, chk.Err("inp: motion %q: RecordedMotions requires either file or at2", m.Name)
		}
		return motion.NewTimeSeriesMotion(accel, dt, typ)

	case RandomVibrationTheory:
		if len(m.Freq) == 0 || len(m.Fas) == 0 {
			return nil, chk.Err("inp: motion %q: RandomVibrationTheory requires freq and fas", m.Name)
		}
		duration := m.Duration
		if duration <= 0 {
			duration = 1.0
		}
		return motion.NewRvtMotion(m.Freq, m.Fas, duration, typ)
	}
	return nil, chk.Err("inp: unrecognized method")
}

// ControllerConfig mirrors spec §6's Configuration object, minus the
// profile and motions (which have their own top-level project fields).
type ControllerConfig struct {
	Method                    Method  `json:"method"`
	IsVaried                  bool    `json:"isVaried"`
	ProfileCount              int     `json:"profileCount"`
	WaterTableDepth           float64 `json:"waterTableDepth"`
	MaxFreq                   float64 `json:"maxFreq"`
	WaveFraction              float64 `json:"waveFraction"`
	DisableAutoDiscretization bool    `json:"disableAutoDiscretization"`
	InputLocationDepth        float64 `json:"inputLocationDepth"` // negative => bedrock surface
	StrainRatio               float64 `json:"strainRatio"`
	ErrorTolerance            float64 `json:"errorTolerance"`
	MaxIterations             int     `json:"maxIterations"`
	LinearElastic             bool    `json:"linearElastic"`
	Periods                   []float64 `json:"periods,omitempty"`
	DampingPct                float64   `json:"dampingPct,omitempty"`
	Seed                      int64   `json:"seed,omitempty"`
	Workers                   int     `json:"workers,omitempty"`
}

// Project is the top-level, versioned, JSON-persisted description of one
// site-response run (spec §6 "Project persistence").
type Project struct {
	SchemaVersion int `json:"schemaVersion"`

	Types      []SoilTypeSpec  `json:"types"`
	Layers     []SoilLayerSpec `json:"layers"`
	Rock       RockLayerSpec   `json:"rock"`
	Gravity    float64         `json:"gravity,omitempty"`
	Randomizer RandomizerSpec  `json:"randomizer,omitempty"`

	Motions []MotionSpec `json:"motions"`

	Config ControllerConfig `json:"config"`

	Outputs map[string]OutputFlag `json:"outputs"`
}

// Load reads and unmarshals a Project from path.
func Load(path string) (*Project, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("inp: cannot read project file %q: %v", path, err)
	}
	var p Project
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, chk.Err("inp: cannot parse project file %q: %v", path, err)
	}
	return &p, nil
}

// Save marshals the project as indented JSON and writes it to path,
// stamping SchemaVersion with CurrentSchemaVersion.
func (p *Project) Save(path string) error {
	p.SchemaVersion = CurrentSchemaVersion
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return chk.Err("inp: cannot marshal project: %v", err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return chk.Err("inp: cannot write project file %q: %v", path, err)
	}
	return nil
}

// buildProfile assembles the deterministic base soil.SoilProfile.
func (p *Project) buildProfile() (*soil.SoilProfile, error) {
	types := make([]*soil.SoilType, len(p.Types))
	for i, ts := range p.Types {
		st, err := ts.build()
		if err != nil {
			return nil, err
		}
		types[i] = st
	}
	layers := make([]*soil.SoilLayer, len(p.Layers))
	for i, ls := range p.Layers {
		sl, err := ls.build()
		if err != nil {
			return nil, chk.Err("inp: layer %d: %v", i, err)
		}
		layers[i] = sl
	}
	profile := &soil.SoilProfile{
		Types: types, Layers: layers, Rock: p.Rock.build(),
		WaterTableDepth: p.Config.WaterTableDepth, Gravity: p.Gravity,
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

// buildMotions assembles every configured input motion.
func (p *Project) buildMotions(gravity float64) ([]motion.Motion, error) {
	motions := make([]motion.Motion, len(p.Motions))
	for i, ms := range p.Motions {
		m, err := ms.build(p.Config.Method, gravity)
		if err != nil {
			return nil, err
		}
		motions[i] = m
	}
	return motions, nil
}

// outputKinds resolves the requested, enabled output kinds in
// out.AllKinds order, so the catalog's column order stays deterministic.
func (p *Project) outputKinds() ([]out.Kind, error) {
	var kinds []out.Kind
	for _, k := range out.AllKinds() {
		name := k.String()
		if name == "ModulusCurve" || name == "DampingCurve" {
			continue // added automatically by out.NewCatalog, one pair per soil type
		}
		flag, ok := p.Outputs[name]
		if !ok || !flag.Enabled {
			continue
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Build wires a Project into a ready-to-run site.Controller plus the list
// of output kinds it should record (spec §4.6/§6). The caller runs
// controller.Run(kinds) and reads the result with catalog.WriteCSV or its
// own inspection of the out.Catalog.
func (p *Project) Build() (*site.Controller, []out.Kind, error) {
	if err := p.validate(); err != nil {
		return nil, nil, err
	}
	profile, err := p.buildProfile()
	if err != nil {
		return nil, nil, err
	}
	gravity := resolveGravity(p.Gravity)
	motions, err := p.buildMotions(gravity)
	if err != nil {
		return nil, nil, err
	}
	kinds, err := p.outputKinds()
	if err != nil {
		return nil, nil, err
	}

	randomizer, err := p.Randomizer.build()
	if err != nil {
		return nil, nil, err
	}
	if !p.Config.IsVaried {
		randomizer = randm.ProfileRandomizer{}
	}

	c := p.Config
	method := site.EquivLinear
	if c.LinearElastic {
		method = site.LinearElastic
	}
	maxFreq := c.MaxFreq
	if maxFreq <= 0 {
		maxFreq = soil.DefaultMaxFreq
	}
	waveFraction := c.WaveFraction
	if waveFraction <= 0 {
		waveFraction = soil.DefaultWaveFraction
	}

	// Discretize once, with the same parameters every realization will use
	// to re-discretize its own clone (randm.ProfileRandomizer.Realize), so
	// InputLocation below addresses the sub-layer count the run will
	// actually see instead of the pre-discretization zero value.
	if err := profile.Discretize(maxFreq, waveFraction, c.DisableAutoDiscretization); err != nil {
		return nil, nil, err
	}

	controller := &site.Controller{
		Profile:               profile,
		Motions:               motions,
		Randomizer:            randomizer,
		Method:                method,
		RealizationCount:      c.ProfileCount,
		Seed:                  c.Seed,
		MaxFreq:               maxFreq,
		WaveFraction:          waveFraction,
		DisableAutoDiscretize: c.DisableAutoDiscretization,
		StrainRatio:           orDefault(c.StrainRatio, calc.DefaultStrainRatio),
		ErrorTolerance:        orDefault(c.ErrorTolerance, calc.DefaultErrorTolerance),
		MaxIterations:         c.MaxIterations,
		InputLocation:         profile.InputLocation(c.InputLocationDepth),
		InputType:             motion.Outcrop,
		OutputType:            motion.Within,
		Periods:               c.Periods,
		DampingPct:            c.DampingPct,
		Workers:               c.Workers,
	}
	return controller, kinds, nil
}

func orDefault(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

func (p *Project) validate() error {
	if len(p.Types) == 0 {
		return chk.Err("inp: project has no soil types")
	}
	if len(p.Layers) == 0 {
		return chk.Err("inp: project has no soil layers")
	}
	if len(p.Motions) == 0 {
		return chk.Err("inp: project has no input motions")
	}
	return nil
}
