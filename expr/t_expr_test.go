// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_expr01(tst *testing.T) {

	chk.PrintTitle("expr01: arithmetic and precedence")

	e, err := Parse("2 + 3 * 4 - 1")
	if err != nil {
		tst.Fatal(err)
	}
	v, err := e.Eval(nil)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "2+3*4-1", 1e-15, v, 13.0)
}

func Test_expr02(tst *testing.T) {

	chk.PrintTitle("expr02: bound identifiers and functions")

	e, err := Parse("exp(-4.23) + sqrt(0.25/exp(3.62) - (shearMod - 0.5)^2 / exp(3.62))")
	if err != nil {
		tst.Fatal(err)
	}
	_, err = e.Eval(map[string]float64{"shearMod": 0.5})
	if err != nil {
		tst.Fatal(err)
	}
}

func Test_expr03(tst *testing.T) {

	chk.PrintTitle("expr03: unbound identifier is an error")

	e, err := Parse("strain + 1")
	if err != nil {
		tst.Fatal(err)
	}
	_, err = e.Eval(nil)
	if err == nil {
		tst.Fatal("expected an error for unbound identifier 'strain'")
	}
}

func Test_expr04(tst *testing.T) {

	chk.PrintTitle("expr04: malformed expressions are rejected at parse time")

	if _, err := Parse("1 + "); err == nil {
		tst.Fatal("expected parse error")
	}
	if _, err := Parse("log(1,2)"); err == nil {
		tst.Fatal("expected arity error")
	}
	if _, err := Parse("foo(1)"); err == nil {
		tst.Fatal("expected unknown-function error")
	}
}

func Test_expr05(tst *testing.T) {

	chk.PrintTitle("expr05: right-associative power")

	e, err := Parse("2^3^2")
	if err != nil {
		tst.Fatal(err)
	}
	v, err := e.Eval(nil)
	if err != nil {
		tst.Fatal(err)
	}
	// right-associative: 2^(3^2) = 2^9 = 512
	chk.Scalar(tst, "2^3^2", 1e-9, v, 512.0)
}
