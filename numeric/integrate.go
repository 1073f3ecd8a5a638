// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

// Trapz integrates y(x) over the supplied grid using the composite
// trapezoid rule. x must be monotonically increasing.
func Trapz(x, y []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	sum := 0.0
	for i := 1; i < len(x); i++ {
		sum += 0.5 * (y[i] + y[i-1]) * (x[i] - x[i-1])
	}
	return sum
}

// CumTrapz returns the running trapezoid integral of y(x), cum[0] = 0.
func CumTrapz(x, y []float64) []float64 {
	cum := make([]float64, len(x))
	for i := 1; i < len(x); i++ {
		cum[i] = cum[i-1] + 0.5*(y[i]+y[i-1])*(x[i]-x[i-1])
	}
	return cum
}

// gauss16 holds abscissae and weights of the 16-point Gauss-Legendre
// quadrature rule on [-1,1] (symmetric; only the positive half is listed).
var gauss16Nodes = []float64{
	0.0950125098376374, 0.2816035507792589, 0.4580167776572274,
	0.6178762444026438, 0.7554044083550030, 0.8656312023878318,
	0.9445750230732326, 0.9894009349916499,
}

var gauss16Weights = []float64{
	0.1894506104550685, 0.1826034150449236, 0.1691565193950025,
	0.1495959888165767, 0.1246289712555339, 0.0951585116824928,
	0.0622535239386479, 0.0271524594117541,
}

// gaussLegendre16 integrates f over [a,b] with the fixed 16-point rule.
func gaussLegendre16(f func(float64) float64, a, b float64) float64 {
	c1 := 0.5 * (b - a)
	c2 := 0.5 * (b + a)
	sum := 0.0
	for i, xi := range gauss16Nodes {
		sum += gauss16Weights[i] * (f(c2+c1*xi) + f(c2-c1*xi))
	}
	return c1 * sum
}

// GaussLegendre integrates f over [a,b] with the 16-point Gauss-Legendre
// rule, subdividing the interval into panels until successive refinements
// agree to within tol (or maxPanels is reached). This backs the RVT
// peak-factor integral (spec §4.3 point 4), which needs a few dozen ordinary
// function evaluations over a finite truncated range, not a general
// adaptive-quadrature library.
func GaussLegendre(f func(float64) float64, a, b, tol float64, maxPanels int) float64 {
	if maxPanels < 1 {
		maxPanels = 1
	}
	prev := gaussLegendre16(f, a, b)
	for n := 2; n <= maxPanels; n *= 2 {
		h := (b - a) / float64(n)
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += gaussLegendre16(f, a+float64(i)*h, a+float64(i+1)*h)
		}
		if abs(sum-prev) <= tol*abs(sum)+tol {
			return sum
		}
		prev = sum
	}
	return prev
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
