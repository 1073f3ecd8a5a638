// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_dist01(tst *testing.T) {

	chk.PrintTitle("dist01: zero stdev collapses to the mean")

	d := Distribution{Kind: Normal, Avg: 300.0, Stdev: 0}
	src := NewRNG(1)
	for i := 0; i < 5; i++ {
		chk.Scalar(tst, "zero-stdev sample", 1e-15, d.Sample(src), 300.0)
	}
}

func Test_dist02(tst *testing.T) {

	chk.PrintTitle("dist02: truncation bounds are respected")

	d := Distribution{Kind: Normal, Avg: 0, Stdev: 1, HasMin: true, Min: -0.5, HasMax: true, Max: 0.5}
	src := NewRNG(42)
	for i := 0; i < 200; i++ {
		x := d.Sample(src)
		if x < d.Min-1e-9 || x > d.Max+1e-9 {
			tst.Fatalf("sample %g outside bounds [%g,%g]", x, d.Min, d.Max)
		}
	}
}

func Test_dist03(tst *testing.T) {

	chk.PrintTitle("dist03: same seed reproduces the same sequence")

	d := Distribution{Kind: LogNormal, Avg: 5.0, Stdev: 0.2}
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 50; i++ {
		chk.Scalar(tst, "reproducible", 0, d.Sample(a), d.Sample(b))
	}
}
