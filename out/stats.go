// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import "math"

// pointStats are the per-abscissa-point reduced statistics of spec §4.5:
// mean and standard deviation, computed in log-space for log-normal
// outputs and linearly otherwise, with +/- one-stdev bands.
type pointStats struct {
	Mean, Stdev, Lower, Upper float64
}

// reduceLogNormal computes mean/stdev in log-space and bands
// mean*exp(+-stdev), per spec §4.5. Non-positive samples are skipped (they
// cannot contribute a logarithm); an empty or all-non-positive input
// returns the zero value.
func reduceLogNormal(samples []float64) pointStats {
	var sum, n float64
	for _, v := range samples {
		if v > 0 {
			sum += math.Log(v)
			n++
		}
	}
	if n == 0 {
		return pointStats{}
	}
	meanLog := sum / n
	var ss float64
	for _, v := range samples {
		if v > 0 {
			d := math.Log(v) - meanLog
			ss += d * d
		}
	}
	stdevLog := 0.0
	if n > 1 {
		stdevLog = math.Sqrt(ss / (n - 1))
	}
	mean := math.Exp(meanLog)
	return pointStats{
		Mean:  mean,
		Stdev: stdevLog,
		Lower: mean * math.Exp(-stdevLog),
		Upper: mean * math.Exp(stdevLog),
	}
}

// reduceLinear computes mean/stdev directly, with +-1-stdev bands.
func reduceLinear(samples []float64) pointStats {
	n := float64(len(samples))
	if n == 0 {
		return pointStats{}
	}
	sum := 0.0
	for _, v := range samples {
		sum += v
	}
	mean := sum / n
	ss := 0.0
	for _, v := range samples {
		d := v - mean
		ss += d * d
	}
	stdev := 0.0
	if n > 1 {
		stdev = math.Sqrt(ss / (n - 1))
	}
	return pointStats{Mean: mean, Stdev: stdev, Lower: mean - stdev, Upper: mean + stdev}
}
