// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package site implements the top-level site-response run controller of
// spec §4.6: for each realization of a (possibly randomized) soil profile
// and each input motion, it drives the strain-compatible-properties
// iteration of package calc and records every enabled output.
package site

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/arkottke/strata-sub000/calc"
	"github.com/arkottke/strata-sub000/dist"
	"github.com/arkottke/strata-sub000/motion"
	"github.com/arkottke/strata-sub000/out"
	"github.com/arkottke/strata-sub000/randm"
	"github.com/arkottke/strata-sub000/soil"
)

// Method selects the iteration driver (spec §4.2/§4.6).
type Method int

const (
	EquivLinear Method = iota
	LinearElastic
)

// Progress reports completion of one (realization, motion) pair.
type Progress struct {
	Realization, Motion       int
	NumRealization, NumMotion int
	Converged                 bool
	Err                       error
}

// Controller orchestrates a full run: N realizations x M motions, spec
// §4.6. Zero-value fields take the package calc/soil defaults.
type Controller struct {
	Profile    *soil.SoilProfile
	Motions    []motion.Motion
	Randomizer randm.ProfileRandomizer
	Method     Method

	RealizationCount int   // forced to 1 when Randomizer is disabled
	Seed             int64

	MaxFreq               float64
	WaveFraction          float64
	DisableAutoDiscretize bool

	StrainRatio    float64
	ErrorTolerance float64
	MaxIterations  int

	InputLocation soil.Location
	InputType     motion.Type
	OutputType    motion.Type

	Periods    []float64 // response-spectrum periods
	DampingPct float64   // oscillator damping, percent

	// Workers bounds worker-pool concurrency; <= 0 means runtime.NumCPU().
	Workers int

	// OnProgress, if set, is called after each (realization, motion) pair
	// completes (spec §4.6 "emits progress after each pair").
	OnProgress func(Progress)

	cancelled int32
}

// Cancel raises the cooperative-cancellation flag: in-flight iterations
// stop at their next checkpoint and no further realizations are scheduled
// (spec §4.6).
func (c *Controller) Cancel() { atomic.StoreInt32(&c.cancelled, 1) }

func (c *Controller) isCancelled() bool { return atomic.LoadInt32(&c.cancelled) != 0 }

func (c *Controller) realizationCount() int {
	if !c.Randomizer.Enabled() {
		return 1
	}
	if c.RealizationCount <= 0 {
		return 1
	}
	return c.RealizationCount
}

func (c *Controller) workerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	n := runtime.NumCPU()
	if n < 1 {
		n = 1
	}
	return n
}

// Run executes the full realization x motion grid and returns the
// finalized catalog (spec §4.5/§4.6). kinds lists every output to produce,
// motion-dependent or not; curve outputs for every soil type are added
// automatically by out.NewCatalog.
func (c *Controller) Run(kinds []out.Kind) (*out.Catalog, error) {
	if c.Profile == nil {
		return nil, chk.Err("site: Controller.Profile must not be nil")
	}
	if len(c.Motions) == 0 {
		return nil, chk.Err("site: Controller.Motions must not be empty")
	}
	n := c.realizationCount()
	m := len(c.Motions)
	catalog := out.NewCatalog(kinds, n, m, len(c.Profile.Types))

	workers := c.workerCount()
	if workers > n {
		workers = n
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			src := dist.NewRNG(c.Seed + int64(worker)*1_000_003)
			for realization := worker; realization < n; realization += workers {
				if c.isCancelled() {
					// disable this worker's entire remaining share so a
					// cancellation raised before scheduling starts still
					// leaves every pair excluded, not merely un-recorded.
					for r := realization; r < n; r += workers {
						for j := 0; j < m; j++ {
							catalog.Disable(r, j)
							c.reportProgress(r, j, n, m, false, &calc.ErrCancelled{})
						}
					}
					return
				}
				c.runRealization(realization, n, m, src, catalog)
			}
		}(w)
	}
	wg.Wait()

	catalog.Finalize()
	return catalog, nil
}

// runRealization builds one (possibly randomized) profile and drives every
// motion against it in order, so that motion-independent outputs are
// always recorded on motion index 0 first.
func (c *Controller) runRealization(realization, n, m int, src *rand.Rand, catalog *out.Catalog) {
	profile, err := c.Randomizer.Realize(c.Profile, c.MaxFreq, c.WaveFraction, c.DisableAutoDiscretize, src)
	if err != nil {
		io.Pf("site: realization %d: profile randomization failed: %v\n", realization, err)
		for j := 0; j < m; j++ {
			catalog.Disable(realization, j)
			c.reportProgress(realization, j, n, m, false, err)
		}
		return
	}

	for j, mot := range c.Motions {
		if c.isCancelled() {
			catalog.Disable(realization, j)
			c.reportProgress(realization, j, n, m, false, &calc.ErrCancelled{})
			continue
		}
		converged, err := c.runMotion(realization, j, profile, mot, catalog)
		if err != nil {
			io.Pf("site: realization %d motion %d: %v\n", realization, j, err)
			catalog.Disable(realization, j)
		}
		c.reportProgress(realization, j, n, m, converged, err)
	}
}

// runMotion drives the iteration for one (realization, motion) pair and
// records its outputs into the catalog.
func (c *Controller) runMotion(realization, motionIdx int, profile *soil.SoilProfile, mot motion.Motion, catalog *out.Catalog) (bool, error) {
	driver := &calc.Driver{
		Profile:        profile,
		Motion:         mot,
		InputLocation:  c.InputLocation,
		InputType:      c.InputType,
		StrainRatio:    c.StrainRatio,
		ErrorTolerance: c.ErrorTolerance,
		MaxIterations:  c.MaxIterations,
		Gravity:        profile.Gravity,
		Cancelled:      c.isCancelled,
	}
	if c.Method == LinearElastic {
		driver = calc.LinearElasticDriver(*driver)
	}

	result, err := driver.Run()
	if err != nil {
		return false, err
	}

	ctx := &out.Context{
		Profile:       profile,
		Motion:        mot,
		Calculator:    driver.Calculator,
		InputLocation: c.InputLocation,
		InputType:     c.InputType,
		OutputType:    c.OutputType,
		Periods:       c.Periods,
		DampingPct:    c.DampingPct,
	}
	if err := catalog.Record(realization, motionIdx, ctx); err != nil {
		return result.Converged, err
	}
	return result.Converged, nil
}

func (c *Controller) reportProgress(realization, motionIdx, n, m int, converged bool, err error) {
	if c.OnProgress == nil {
		return
	}
	c.OnProgress(Progress{
		Realization:    realization,
		Motion:         motionIdx,
		NumRealization: n,
		NumMotion:      m,
		Converged:      converged,
		Err:            err,
	})
}
