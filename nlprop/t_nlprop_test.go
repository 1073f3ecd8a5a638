// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nlprop

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_property01(tst *testing.T) {

	chk.PrintTitle("property01: interpolation identity and held endpoints")

	strains := []float64{1e-4, 1e-3, 1e-2, 1e-1, 1.0}
	values := []float64{1.0, 0.95, 0.70, 0.30, 0.05}

	p, err := NewNonlinearProperty(ModulusReduction, strains, values)
	if err != nil {
		tst.Fatal(err)
	}

	for i, g := range strains {
		chk.Scalar(tst, "interp(x)==avg(x)", 1e-12, p.InterpAvg(g), values[i])
	}
	chk.Scalar(tst, "below table", 1e-15, p.InterpAvg(1e-6), values[0])
	chk.Scalar(tst, "above table", 1e-15, p.InterpAvg(10.0), values[len(values)-1])

	// Varied defaults to Avg
	chk.Scalar(tst, "varied defaults to avg", 1e-15, p.InterpVaried(1e-2), p.InterpAvg(1e-2))
}

func Test_property02(tst *testing.T) {

	chk.PrintTitle("property02: rejects non-monotone strains")

	_, err := NewNonlinearProperty(Damping, []float64{1e-3, 1e-3}, []float64{1.0, 2.0})
	if err == nil {
		tst.Fatal("expected an error for non-increasing strains")
	}
}

func Test_darendeli01(tst *testing.T) {

	chk.PrintTitle("darendeli01: derived curves are bounded and monotone")

	p := DarendeliParams{MeanStress: 1.0, PI: 15, OCR: 1.0, Freq: 1.0, NumCycles: 10}
	strains := []float64{1e-4, 1e-3, 1e-2, 1e-1, 1.0}
	modulus, damping, err := p.GenerateCurves(strains)
	if err != nil {
		tst.Fatal(err)
	}

	last := 1.0
	for i, g := range strains {
		gg := modulus.InterpAvg(g)
		if gg < 0 || gg > 1.0001 {
			tst.Fatalf("G/Gmax out of [0,1] at strain %g: %g", g, gg)
		}
		if gg > last+1e-9 {
			tst.Fatalf("G/Gmax should be non-increasing with strain, index %d", i)
		}
		last = gg
		if damping.InterpAvg(g) < 0 {
			tst.Fatalf("damping should be non-negative at strain %g", g)
		}
	}
}

func Test_source01(tst *testing.T) {

	chk.PrintTitle("source01: factory lookup")

	_, err := New("darendeli")
	if err != nil {
		tst.Fatal(err)
	}
	_, err = New("tabulated")
	if err != nil {
		tst.Fatal(err)
	}
	_, err = New("does-not-exist")
	if err == nil {
		tst.Fatal("expected error for unknown source")
	}
}
