// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numeric implements the small self-contained numerical helpers the
// site-response engine shares: axis generation, log-linear interpolation,
// trapezoid integration, fixed-order Gauss-Legendre quadrature, and a
// real-valued FFT/IFFT wrapper.
package numeric

import "math"

// LinSpace returns n points linearly spaced over [a,b], inclusive.
func LinSpace(a, b float64, n int) []float64 {
	if n < 2 {
		return []float64{a}
	}
	x := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := range x {
		x[i] = a + step*float64(i)
	}
	x[n-1] = b
	return x
}

// LogSpace returns n points log-spaced over [a,b] (a,b > 0), inclusive.
func LogSpace(a, b float64, n int) []float64 {
	la, lb := math.Log(a), math.Log(b)
	x := LinSpace(la, lb, n)
	for i := range x {
		x[i] = math.Exp(x[i])
	}
	return x
}
