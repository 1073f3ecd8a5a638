// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bufio"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// MotionFileFormat selects how a plain-text motion file's data lines are
// laid out (source's RecordedMotion::Format).
type MotionFileFormat int

const (
	// Rows reads every whitespace/comma/semicolon-delimited value on a
	// data line, in order, packing them end to end into the acceleration
	// series.
	Rows MotionFileFormat = iota
	// Columns reads a single fixed column (DataColumn, 1-based) from each
	// data line.
	Columns
)

// delimiter matches the source's "assume whitespace, comma, or semi-colon"
// field splitter.
var delimiter = regexp.MustCompile(`[ \t,;]+`)

// MotionFileSpec describes how to read one plain-text recorded-motion
// file (spec §6). StartLine/StopLine are 0-based internal line indices
// (spec §9 Open Question: never guess the off-by-one the source's two
// code trees disagree on; keep everything internally 0-based and surface
// a 1-based index only at the CLI boundary, see CLILineToInternal).
type MotionFileSpec struct {
	Path       string
	Format     MotionFileFormat
	StartLine  int // 0-based; first data line
	StopLine   int // 0-based, exclusive; 0 means read to EOF or PointCount
	DataColumn int // 1-based, Columns format only
	Dt         float64
	PointCount int
	Scale      float64   // applied after Unit's conversion factor
	Unit       AccelUnit
	Gravity    float64 // m/s^2; 0 means soil.DefaultGravity (resolved by the caller)
}

// CLILineToInternal converts a 1-based CLI-facing line number to the
// 0-based index MotionFileSpec expects.
func CLILineToInternal(n int) int { return n - 1 }

// InternalLineToCLI converts a 0-based internal line index to the 1-based
// number a user-facing message should show.
func InternalLineToCLI(n int) int { return n + 1 }

// ReadMotionFile reads the file named by spec and returns its acceleration
// series in g, following the source's RecordedMotion::load(): skip
// StartLine header lines, then read data lines until PointCount values are
// collected or StopLine is reached.
func ReadMotionFile(spec MotionFileSpec) ([]float64, error) {
	if spec.Dt <= 0 {
		return nil, chk.Err("inp: motion file %q: time step must be > 0", spec.Path)
	}
	if spec.StartLine < 0 {
		return nil, chk.Err("inp: motion file %q: start line must be >= 0", spec.Path)
	}
	if spec.PointCount <= 0 {
		return nil, chk.Err("inp: motion file %q: point count must be > 0", spec.Path)
	}

	f, err := os.Open(spec.Path)
	if err != nil {
		return nil, chk.Err("inp: cannot open motion file %q: %v", spec.Path, err)
	}
	defer f.Close()

	scale := spec.Scale * spec.Unit.ScaleFactor(resolveGravity(spec.Gravity))

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for lineNum < spec.StartLine && scanner.Scan() {
		lineNum++
	}

	accel := make([]float64, spec.PointCount)
	index := 0
	for index < spec.PointCount && scanner.Scan() {
		if spec.StopLine > 0 && lineNum >= spec.StopLine {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		lineNum++
		if line == "" {
			continue
		}
		fields := delimiter.Split(line, -1)

		switch spec.Format {
		case Rows:
			for _, tok := range fields {
				if index == spec.PointCount {
					break
				}
				v, err := strconv.ParseFloat(tok, 64)
				if err != nil {
					continue
				}
				accel[index] = scale * v
				index++
			}
		case Columns:
			col := spec.DataColumn - 1
			if col >= 0 && col < len(fields) {
				v, err := strconv.ParseFloat(fields[col], 64)
				if err == nil {
					accel[index] = scale * v
				}
			}
			index++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, chk.Err("inp: error reading motion file %q: %v", spec.Path, err)
	}
	if index < spec.PointCount {
		return nil, chk.Err("inp: motion file %q: expected %d points, found %d", spec.Path, spec.PointCount, index)
	}
	return accel, nil
}

// ReadAT2 reads a PEER-strong-motion-database AT2 file: a 4-line header
// whose 4th line carries "NPTS=  N, DT=  dt SEC" (spec §6: "AT2 files have
// a 4-line header followed by N points on line >= 5 with Dt, N parsed from
// line 4"), followed by whitespace-delimited acceleration values in g.
func ReadAT2(path string) (accel []float64, dt float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, chk.Err("inp: cannot open AT2 file %q: %v", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var headerLine string
	for i := 0; i < 4; i++ {
		if !scanner.Scan() {
			return nil, 0, chk.Err("inp: AT2 file %q: header truncated before line 4", path)
		}
		headerLine = scanner.Text()
	}

	npts, dt, err := parseAT2Header(headerLine)
	if err != nil {
		return nil, 0, chk.Err("inp: AT2 file %q: %v", path, err)
	}

	accel = make([]float64, 0, npts)
	for scanner.Scan() && len(accel) < npts {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		for _, tok := range delimiter.Split(line, -1) {
			if len(accel) == npts {
				break
			}
			v, perr := strconv.ParseFloat(tok, 64)
			if perr != nil {
				continue
			}
			accel = append(accel, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, chk.Err("inp: error reading AT2 file %q: %v", path, err)
	}
	if len(accel) != npts {
		return nil, 0, chk.Err("inp: AT2 file %q: header declares %d points, found %d", path, npts, len(accel))
	}
	return accel, dt, nil
}

var at2Numbers = regexp.MustCompile(`-?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][-+]?\d+)?`)

// parseAT2Header pulls NPTS and DT out of the free-form 4th header line,
// e.g. "5590  0.0050   NPTS, DT" or "NPTS=  5590, DT=  .0050 SEC".
func parseAT2Header(line string) (npts int, dt float64, err error) {
	nums := at2Numbers.FindAllString(line, -1)
	if len(nums) < 2 {
		return 0, 0, chk.Err("header line 4 does not contain NPTS and DT: %q", line)
	}
	n, perr := strconv.ParseFloat(nums[0], 64)
	if perr != nil {
		return 0, 0, chk.Err("cannot parse NPTS from header line 4: %q", line)
	}
	dt, perr = strconv.ParseFloat(nums[1], 64)
	if perr != nil {
		return 0, 0, chk.Err("cannot parse DT from header line 4: %q", line)
	}
	return int(n), dt, nil
}
