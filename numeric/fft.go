// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// NextPow2 returns the smallest power of two >= n.
func NextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// RealFFT zero-pads a real sequence to the next power of two and returns its
// discrete Fourier transform's non-negative frequencies, along with the
// padded length used. Bin k corresponds to frequency k/(nPad*dt).
func RealFFT(a []float64, dt float64) (coeffs []complex128, nPad int) {
	nPad = NextPow2(len(a))
	if nPad == 0 {
		nPad = 1
	}
	padded := make([]float64, nPad)
	copy(padded, a)
	fft := fourier.NewFFT(nPad)
	coeffs = fft.Coefficients(nil, padded)
	return
}

// Freq returns the frequency grid (Hz) associated with RealFFT's output for
// a padded length nPad and sample interval dt.
func Freq(nPad int, dt float64) []float64 {
	fft := fourier.NewFFT(nPad)
	nf := nPad/2 + 1
	f := make([]float64, nf)
	for i := 0; i < nf; i++ {
		f[i] = fft.Freq(i) / dt
	}
	return f
}

// InverseRealFFT reconstructs the real time series of length n from the
// non-negative-frequency coefficients of a length-nPad transform, normalized
// by nPad and truncated back to the first n samples.
func InverseRealFFT(coeffs []complex128, nPad, n int) []float64 {
	fft := fourier.NewFFT(nPad)
	full := fft.Sequence(nil, coeffs)
	for i := range full {
		full[i] /= float64(nPad)
	}
	if n > len(full) {
		n = len(full)
	}
	return full[:n]
}

// ApplyTF multiplies a Fourier-domain representation by a (possibly
// frequency-dependent) complex transfer function, sample by sample.
func ApplyTF(coeffs, tf []complex128) []complex128 {
	out := make([]complex128, len(coeffs))
	for i := range coeffs {
		out[i] = coeffs[i] * tf[i]
	}
	return out
}

// Abs returns the elementwise magnitude of a complex slice.
func Abs(z []complex128) []float64 {
	out := make([]float64, len(z))
	for i, v := range z {
		out[i] = cmplx.Abs(v)
	}
	return out
}

// PeakAbs returns the maximum absolute value found in a real time series.
func PeakAbs(x []float64) float64 {
	peak := 0.0
	for _, v := range x {
		if av := math.Abs(v); av > peak {
			peak = av
		}
	}
	return peak
}
