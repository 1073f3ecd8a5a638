// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import "math"

// InterpLinear interpolates y(x) linearly at xq given a monotonically
// increasing x. Outside the table, the endpoint value is held.
func InterpLinear(x, y []float64, xq float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	if n == 1 || xq <= x[0] {
		return y[0]
	}
	if xq >= x[n-1] {
		return y[n-1]
	}
	i := bracket(x, xq)
	t := (xq - x[i]) / (x[i+1] - x[i])
	return y[i] + t*(y[i+1]-y[i])
}

// InterpLogLog interpolates y(x) using log-log interpolation: both axes
// are interpolated in log-space. x and y must be strictly positive.
// Outside the table, the endpoint value is held.
func InterpLogLog(x, y []float64, xq float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	if n == 1 || xq <= x[0] {
		return y[0]
	}
	if xq >= x[n-1] {
		return y[n-1]
	}
	i := bracket(x, xq)
	lx0, lx1 := math.Log(x[i]), math.Log(x[i+1])
	ly0, ly1 := math.Log(y[i]), math.Log(y[i+1])
	t := (math.Log(xq) - lx0) / (lx1 - lx0)
	return math.Exp(ly0 + t*(ly1-ly0))
}

// bracket returns the index i such that x[i] <= xq < x[i+1], via binary
// search. x must be monotonically increasing and xq within [x[0], x[n-1]).
func bracket(x []float64, xq float64) int {
	lo, hi := 0, len(x)-2
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if x[mid] <= xq {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
