// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_motionfile01(tst *testing.T) {

	chk.PrintTitle("motionfile01: Rows format packs every field end to end")

	path := filepath.Join(tst.TempDir(), "rows.txt")
	body := "header line 1\nheader line 2\n0.1 0.2 0.3\n0.4 0.5\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		tst.Fatal(err)
	}

	accel, err := ReadMotionFile(MotionFileSpec{
		Path: path, Format: Rows, StartLine: 2, Dt: 0.01, PointCount: 5, Scale: 1, Unit: UnitG,
	})
	if err != nil {
		tst.Fatal(err)
	}
	want := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	if len(accel) != len(want) {
		tst.Fatalf("expected %d points, got %d", len(want), len(accel))
	}
	for i := range want {
		if accel[i] != want[i] {
			tst.Fatalf("point %d: expected %v, got %v", i, want[i], accel[i])
		}
	}
}

func Test_motionfile02(tst *testing.T) {

	chk.PrintTitle("motionfile02: Columns format reads a single fixed column")

	path := filepath.Join(tst.TempDir(), "columns.txt")
	body := "time,accel,extra\n0.00,1.0,9\n0.01,2.0,9\n0.02,3.0,9\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		tst.Fatal(err)
	}

	accel, err := ReadMotionFile(MotionFileSpec{
		Path: path, Format: Columns, StartLine: 1, DataColumn: 2,
		Dt: 0.01, PointCount: 3, Scale: 1, Unit: UnitG,
	})
	if err != nil {
		tst.Fatal(err)
	}
	want := []float64{1.0, 2.0, 3.0}
	for i := range want {
		if accel[i] != want[i] {
			tst.Fatalf("point %d: expected %v, got %v", i, want[i], accel[i])
		}
	}
}

func Test_motionfile03(tst *testing.T) {

	chk.PrintTitle("motionfile03: a unit other than g applies its scale factor")

	path := filepath.Join(tst.TempDir(), "units.txt")
	// 980.665 cm/s^2 is 1 g at standard gravity.
	body := "980.665\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		tst.Fatal(err)
	}

	accel, err := ReadMotionFile(MotionFileSpec{
		Path: path, Format: Rows, StartLine: 0, Dt: 0.01, PointCount: 1,
		Scale: 1, Unit: UnitCmPerSecSq,
	})
	if err != nil {
		tst.Fatal(err)
	}
	if accel[0] < 0.999 || accel[0] > 1.001 {
		tst.Fatalf("expected approximately 1g, got %v", accel[0])
	}
}

func Test_motionfile04(tst *testing.T) {

	chk.PrintTitle("motionfile04: too few points is an error")

	path := filepath.Join(tst.TempDir(), "short.txt")
	if err := os.WriteFile(path, []byte("0.1 0.2\n"), 0644); err != nil {
		tst.Fatal(err)
	}

	_, err := ReadMotionFile(MotionFileSpec{
		Path: path, Format: Rows, Dt: 0.01, PointCount: 5, Scale: 1,
	})
	if err == nil {
		tst.Fatal("expected an error when the file has fewer points than PointCount")
	}
}

func Test_motionfile05(tst *testing.T) {

	chk.PrintTitle("motionfile05: ReadAT2 parses the 4-line header and data")

	path := filepath.Join(tst.TempDir(), "ground.at2")
	body := "PEER STRONG MOTION DATABASE RECORD\n" +
		"IMPERIAL VALLEY\n" +
		"ACCELERATION TIME HISTORY IN UNITS OF G\n" +
		"   5  0.0200  NPTS, DT\n" +
		"0.01 -0.02 0.03\n" +
		"-0.04 0.05\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		tst.Fatal(err)
	}

	accel, dt, err := ReadAT2(path)
	if err != nil {
		tst.Fatal(err)
	}
	if dt != 0.02 {
		tst.Fatalf("expected dt=0.02, got %v", dt)
	}
	want := []float64{0.01, -0.02, 0.03, -0.04, 0.05}
	if len(accel) != len(want) {
		tst.Fatalf("expected %d points, got %d", len(want), len(accel))
	}
	for i := range want {
		if accel[i] != want[i] {
			tst.Fatalf("point %d: expected %v, got %v", i, want[i], accel[i])
		}
	}
}

func Test_motionfile06(tst *testing.T) {

	chk.PrintTitle("motionfile06: CLI line numbers are 1-based, internal indices 0-based")

	if got := CLILineToInternal(1); got != 0 {
		tst.Fatalf("expected 0, got %d", got)
	}
	if got := InternalLineToCLI(0); got != 1 {
		tst.Fatalf("expected 1, got %d", got)
	}
	for n := 1; n < 10; n++ {
		if InternalLineToCLI(CLILineToInternal(n)) != n {
			tst.Fatalf("round-trip failed for CLI line %d", n)
		}
	}
}
