// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package motion

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/arkottke/strata-sub000/numeric"
)

func Test_motion01(tst *testing.T) {

	chk.PrintTitle("motion01: SDOF transfer function peaks at the natural frequency")

	freq := numeric.LogSpace(0.1, 50, 200)
	tf := CalcSdofTF(freq, 1.0, 5.0)
	peak := 0
	for i := range tf {
		if cabs(tf[i]) > cabs(tf[peak]) {
			peak = i
		}
	}
	chk.Scalar(tst, "peak freq ~ 1 Hz", 0.15, freq[peak], 1.0)
}

func Test_motion02(tst *testing.T) {

	chk.PrintTitle("motion02: RvtMotion Pga is positive for a flat FAS")

	freq := numeric.LogSpace(0.1, 50, 500)
	fas := make([]float64, len(freq))
	for i := range fas {
		fas[i] = 0.01
	}
	m, err := NewRvtMotion(freq, fas, 10.0, Outcrop)
	if err != nil {
		tst.Fatal(err)
	}
	if m.Pga() <= 0 {
		tst.Fatalf("expected positive PGA, got %g", m.Pga())
	}
	sa := m.ComputeSa([]float64{0.2, 1.0}, 5.0, nil)
	for i, v := range sa {
		if v <= 0 || math.IsNaN(v) {
			tst.Fatalf("Sa[%d] = %g, expected a finite positive value", i, v)
		}
	}
}

func Test_motion03(tst *testing.T) {

	chk.PrintTitle("motion03: TimeSeriesMotion Fourier round trip via unit transfer function")

	n := 256
	dt := 0.01
	accel := make([]float64, n)
	for i := range accel {
		t := float64(i) * dt
		accel[i] = math.Sin(2 * math.Pi * 5 * t)
	}
	m, err := NewTimeSeriesMotion(accel, dt, Outcrop)
	if err != nil {
		tst.Fatal(err)
	}
	ones := OnesTF(len(m.Freq()))
	recovered := m.filteredTimeSeries(ones)
	if len(recovered) != n {
		tst.Fatalf("expected %d samples, got %d", n, len(recovered))
	}
	chk.Scalar(tst, "pga unit-tf round trip", 1e-2, m.Max(ones), m.Pga())
}

func Test_motion04(tst *testing.T) {

	chk.PrintTitle("motion04: CompatibleRvtMotion.Fit converges toward the target spectrum")

	periods := []float64{0.05, 0.1, 0.2, 0.5, 1.0, 2.0}
	targetSa := []float64{0.8, 0.9, 0.7, 0.4, 0.2, 0.1}
	m := NewCompatibleRvtMotion(10.0, Outcrop)
	err := m.Fit(periods, targetSa, 5.0)
	if err != nil {
		tst.Fatal(err)
	}
	if m.Iterations == 0 {
		tst.Fatal("expected at least one fit iteration")
	}
	sa := m.ComputeSa(periods, 5.0, nil)
	for i, v := range sa {
		ratio := v / targetSa[i]
		if ratio < 0.5 || ratio > 2.0 {
			tst.Fatalf("Sa[%d] = %g too far from target %g (ratio %g)", i, v, targetSa[i], ratio)
		}
	}
}

func Test_motion05(tst *testing.T) {

	chk.PrintTitle("motion05: SourceTheoryRvtMotion produces a finite, nonnegative FAS")

	freq := numeric.LogSpace(0.1, 50, 300)
	m := NewSourceTheoryRvtMotion(freq, WUS, 6.5, 20.0, 8.0, Outcrop)
	if err := m.Compute(); err != nil {
		tst.Fatal(err)
	}
	if m.Duration <= 0 {
		tst.Fatalf("expected positive duration, got %g", m.Duration)
	}
	for i, v := range m.Fas {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			tst.Fatalf("Fas[%d] = %g is not a finite nonnegative value", i, v)
		}
	}
	if m.Pga() <= 0 {
		tst.Fatalf("expected positive PGA, got %g", m.Pga())
	}
}

func Test_motion06(tst *testing.T) {

	chk.PrintTitle("motion06: AriasIntensity is positive for a nonzero record")

	n := 100
	dt := 0.01
	accel := make([]float64, n)
	for i := range accel {
		accel[i] = math.Sin(2 * math.Pi * float64(i) * dt)
	}
	ia := AriasIntensity(accel, dt, 981.0)
	if ia <= 0 {
		tst.Fatalf("expected positive Arias intensity, got %g", ia)
	}
}
