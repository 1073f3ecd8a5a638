// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_trapz01(tst *testing.T) {

	chk.PrintTitle("trapz01: integral of a constant")

	n := 101
	T := 10.0
	x := LinSpace(0, T, n)
	y := make([]float64, n)
	c := 3.3
	for i := range y {
		y[i] = c
	}
	chk.Scalar(tst, "integrate(c) == c*T", 1e-10, Trapz(x, y), c*T)

	cum := CumTrapz(x, y)
	chk.Scalar(tst, "cumtrapz last == c*T", 1e-10, cum[len(cum)-1], c*T)
}

func Test_gauss01(tst *testing.T) {

	chk.PrintTitle("gauss01: Gauss-Legendre against known integral")

	// ∫_0^1 x^2 dx = 1/3
	res := GaussLegendre(func(x float64) float64 { return x * x }, 0, 1, 1e-12, 8)
	chk.Scalar(tst, "∫x²", 1e-10, res, 1.0/3.0)

	// ∫_0^∞ e^{-x²} dx = sqrt(pi)/2, truncated to a large finite bound
	res2 := GaussLegendre(func(x float64) float64 { return math.Exp(-x * x) }, 0, 8, 1e-10, 64)
	chk.Scalar(tst, "∫e^-x²", 1e-6, res2, math.Sqrt(math.Pi)/2.0)
}
