// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package motion

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"

	"github.com/arkottke/strata-sub000/numeric"
)

const (
	compatibleWorkingPoints = 1024
	compatibleFreqMin       = 0.05
	compatibleFreqMax       = 50.0
	compatibleLowFreqSlope  = 1.92
	compatibleMaxIters      = 30
	compatibleRmsTol        = 0.005
	compatibleChangeTol     = 0.0002
)

// CompatibleRvtMotion derives a Fourier amplitude spectrum whose RVT-
// predicted response spectrum matches a target Sa(T) (spec §3, §4.3
// "CompatibleRvtMotion.fit").
type CompatibleRvtMotion struct {
	AbstractRvtMotion
	Iterations int // iterations actually used by the last Fit call
	RmsError   float64
}

// NewCompatibleRvtMotion allocates an (unfit) CompatibleRvtMotion on the
// standard log-spaced working frequency grid (spec §4.3 point 2).
func NewCompatibleRvtMotion(duration float64, typ Type) *CompatibleRvtMotion {
	freq := numeric.LogSpace(compatibleFreqMin, compatibleFreqMax, compatibleWorkingPoints)
	fas := make([]float64, len(freq))
	return &CompatibleRvtMotion{AbstractRvtMotion: AbstractRvtMotion{FreqGrid: freq, Fas: fas, Duration: duration, Typ: typ}}
}

// Fit derives the FAS whose RVT response spectrum matches targetSa at
// targetPeriods (both may be supplied in any period order) and damping
// dampingPct, per spec §4.3.
func (m *CompatibleRvtMotion) Fit(targetPeriods, targetSa []float64, dampingPct float64) error {
	if len(targetPeriods) != len(targetSa) || len(targetPeriods) == 0 {
		return chk.Err("motion: target periods and Sa must be the same non-empty length")
	}
	periods := append([]float64(nil), targetPeriods...)
	sas := append([]float64(nil), targetSa...)
	idx := make([]int, len(periods))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return periods[idx[a]] < periods[idx[b]] })
	sortedPeriods := make([]float64, len(idx))
	sortedSas := make([]float64, len(idx))
	for i, j := range idx {
		sortedPeriods[i] = periods[j]
		sortedSas[i] = sas[j]
	}
	for i := 1; i < len(sortedPeriods); i++ {
		if sortedPeriods[i] <= sortedPeriods[i-1] {
			return chk.Err("motion: target response-spectrum periods must be strictly monotone (index %d)", i)
		}
	}

	if err := m.seedVanmarcke(sortedPeriods, sortedSas, dampingPct); err != nil {
		return err
	}

	m.Iterations = 0
	m.RmsError = math.Inf(1)
	for iter := 1; iter <= compatibleMaxIters; iter++ {
		current := m.ComputeSa(sortedPeriods, dampingPct, nil)
		rms := 0.0
		ratioAtPeriod := make([]float64, len(sortedPeriods))
		for i := range sortedPeriods {
			if current[i] <= 0 {
				ratioAtPeriod[i] = 1
				continue
			}
			r := sortedSas[i] / current[i]
			ratioAtPeriod[i] = r
			d := (current[i] - sortedSas[i]) / sortedSas[i]
			rms += d * d
		}
		rms = math.Sqrt(rms / float64(len(sortedPeriods)))
		m.RmsError = rms
		m.Iterations = iter

		freqAtPeriod := make([]float64, len(sortedPeriods))
		for i, T := range sortedPeriods {
			freqAtPeriod[len(sortedPeriods)-1-i] = 1.0 / T
		}
		ratioRev := make([]float64, len(ratioAtPeriod))
		for i, r := range ratioAtPeriod {
			ratioRev[len(ratioAtPeriod)-1-i] = r
		}
		maxChange := 0.0
		for k, f := range m.FreqGrid {
			r := numeric.InterpLogLog(freqAtPeriod, ratioRev, f)
			newVal := m.Fas[k] * r
			change := math.Abs(newVal-m.Fas[k]) / math.Max(m.Fas[k], 1e-30)
			if change > maxChange {
				maxChange = change
			}
			m.Fas[k] = newVal
		}

		if rms <= compatibleRmsTol || maxChange <= compatibleChangeTol {
			break
		}
	}
	return nil
}

// seedVanmarcke builds the initial FAS estimate by inverting the target
// response spectrum (spec §4.3 point 1-2): working from the longest to the
// shortest target period, solve for |F|^2 at that period's natural
// frequency, clamped at zero, with Σ tracking the cumulative trapezoid area
// of the |F|^2 curve already established at lower frequencies. The result
// is interpolated onto the working log-spaced grid and extrapolated at low
// frequency with an f^1.92 rise.
func (m *CompatibleRvtMotion) seedVanmarcke(periods, sas []float64, dampingPct float64) error {
	zeta := dampingPct / 100.0
	if zeta <= 0 {
		return chk.Err("motion: damping ratio must be > 0 for Vanmarcke inversion")
	}
	denomFactor := math.Pi/(4*zeta) - 1
	if denomFactor == 0 {
		denomFactor = 1e-6
	}

	n := len(periods)
	freqSeed := make([]float64, n)
	fas2Seed := make([]float64, n)
	sigma := 0.0
	prevFreq, prevVal := 0.0, 0.0
	for i := n - 1; i >= 0; i-- {
		T := periods[i]
		fn := 1.0 / T
		val := (m.Duration*sas[i]*sas[i]/(2*math.Pi*math.Pi) - sigma) / (fn * denomFactor)
		if val < 0 {
			val = 0
		}
		j := n - 1 - i
		freqSeed[j] = fn
		fas2Seed[j] = val
		sigma += 0.5 * (val + prevVal) * (fn - prevFreq)
		prevFreq, prevVal = fn, val
	}

	for k, f := range m.FreqGrid {
		var f2 float64
		switch {
		case f <= freqSeed[0]:
			if freqSeed[0] > 0 && fas2Seed[0] > 0 {
				f2 = fas2Seed[0] * math.Pow(math.Max(f, 1e-8)/freqSeed[0], 2*compatibleLowFreqSlope)
			}
		default:
			f2 = numeric.InterpLogLog(freqSeed, fas2Seed, f)
		}
		if f2 < 0 {
			f2 = 0
		}
		m.Fas[k] = math.Sqrt(f2)
	}
	return nil
}
