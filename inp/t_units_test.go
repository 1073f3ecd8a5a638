// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_units01(tst *testing.T) {

	chk.PrintTitle("units01: g is the identity unit")

	if f := UnitG.ScaleFactor(9.80665); f != 1.0 {
		tst.Fatalf("expected scale factor 1, got %v", f)
	}
}

func Test_units02(tst *testing.T) {

	chk.PrintTitle("units02: cm/s^2 and in/s^2 round-trip through gravity")

	gravity := 9.80665
	oneG := gravity * 100.0 // cm/s^2
	f := UnitCmPerSecSq.ScaleFactor(gravity)
	if got := f * oneG; got < 0.999 || got > 1.001 {
		tst.Fatalf("1g in cm/s^2 should scale back to 1g, got %v", got)
	}

	oneGInches := gravity / 0.0254 // in/s^2
	f = UnitInPerSecSq.ScaleFactor(gravity)
	if got := f * oneGInches; got < 0.999 || got > 1.001 {
		tst.Fatalf("1g in in/s^2 should scale back to 1g, got %v", got)
	}
}

func Test_units03(tst *testing.T) {

	chk.PrintTitle("units03: ParseAccelUnit recognizes every spec spelling")

	cases := map[string]AccelUnit{
		"":        UnitG,
		"g":       UnitG,
		"cm/s^2":  UnitCmPerSecSq,
		"cm/s2":   UnitCmPerSecSq,
		"in/s^2":  UnitInPerSecSq,
		"in/s2":   UnitInPerSecSq,
	}
	for s, want := range cases {
		got, err := ParseAccelUnit(s)
		if err != nil {
			tst.Fatalf("ParseAccelUnit(%q): %v", s, err)
		}
		if got != want {
			tst.Fatalf("ParseAccelUnit(%q) = %v, want %v", s, got, want)
		}
	}

	if _, err := ParseAccelUnit("furlong/s^2"); err == nil {
		tst.Fatal("expected an error for an unrecognized unit")
	}
}

func Test_units04(tst *testing.T) {

	chk.PrintTitle("units04: resolveGravity falls back to soil.DefaultGravity")

	if g := resolveGravity(0); g <= 0 {
		tst.Fatalf("expected a positive default gravity, got %v", g)
	}
	if g := resolveGravity(32.174); g != 32.174 {
		tst.Fatalf("expected the override to pass through unchanged, got %v", g)
	}
}
