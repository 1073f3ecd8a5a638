// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_interp01(tst *testing.T) {

	chk.PrintTitle("interp01: linear interpolation identity")

	x := []float64{1e-6, 1e-5, 1e-4, 1e-3, 1e-2}
	y := []float64{1.0, 0.95, 0.80, 0.40, 0.10}

	for i, xi := range x {
		chk.Scalar(tst, "interp(x,y,x)==y", 1e-14, InterpLinear(x, y, xi), y[i])
	}

	// below/above the table holds the endpoint
	chk.Scalar(tst, "below table", 1e-14, InterpLinear(x, y, 1e-9), y[0])
	chk.Scalar(tst, "above table", 1e-14, InterpLinear(x, y, 1.0), y[len(y)-1])
}

func Test_interp02(tst *testing.T) {

	chk.PrintTitle("interp02: log-log interpolation identity")

	x := []float64{1e-6, 1e-5, 1e-4, 1e-3, 1e-2}
	y := []float64{1.0, 0.95, 0.80, 0.40, 0.10}

	for i, xi := range x {
		chk.Scalar(tst, "interpLogLog(x,y,x)==y", 1e-13, InterpLogLog(x, y, xi), y[i])
	}
}

func Test_interp03(tst *testing.T) {

	chk.PrintTitle("interp03: LinSpace and LogSpace endpoints")

	x := LinSpace(1.0, 10.0, 10)
	chk.Scalar(tst, "first", 1e-15, x[0], 1.0)
	chk.Scalar(tst, "last", 1e-15, x[len(x)-1], 10.0)

	lx := LogSpace(0.01, 100.0, 21)
	chk.Scalar(tst, "log first", 1e-12, lx[0], 0.01)
	chk.Scalar(tst, "log last", 1e-9, lx[len(lx)-1], 100.0)
}
