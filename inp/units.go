// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the external boundaries of spec §6 that are not
// the computational core: recorded-motion file ingestion, project
// persistence, and the unit conversions both need. It replaces the global
// Units singleton the source keeps (spec §9 design note) with a value
// threaded explicitly into the functions that need it.
package inp

import (
	"github.com/cpmech/gosl/chk"

	"github.com/arkottke/strata-sub000/soil"
)

// resolveGravity mirrors soil.SoilProfile's zero-means-default rule so a
// MotionFileSpec built before a profile exists can still convert units
// sensibly.
func resolveGravity(g float64) float64 {
	if g > 0 {
		return g
	}
	return soil.DefaultGravity
}

// AccelUnit is an input-acceleration unit a recorded-motion file may be
// authored in (spec §6: "an input-unit specifier in {g, cm/s^2, in/s^2}
// applied via a unit-conversion factor").
type AccelUnit int

const (
	UnitG AccelUnit = iota
	UnitCmPerSecSq
	UnitInPerSecSq
)

func (u AccelUnit) String() string {
	switch u {
	case UnitG:
		return "g"
	case UnitCmPerSecSq:
		return "cm/s^2"
	case UnitInPerSecSq:
		return "in/s^2"
	}
	return "unknown"
}

// ParseAccelUnit recognizes the same three spellings spec §6 names.
func ParseAccelUnit(s string) (AccelUnit, error) {
	switch s {
	case "g", "":
		return UnitG, nil
	case "cm/s^2", "cm/s2":
		return UnitCmPerSecSq, nil
	case "in/s^2", "in/s2":
		return UnitInPerSecSq, nil
	}
	return 0, chk.Err("inp: unrecognized acceleration unit %q", s)
}

// ScaleFactor returns the multiplier converting a value expressed in u into
// g, the unit every motion.Motion works in internally. gravity is the
// project's gravitational acceleration in m/s^2 (soil.DefaultGravity unless
// overridden), mirroring the source's Units::tsConv pairing of a length
// system with its own gravity constant.
func (u AccelUnit) ScaleFactor(gravity float64) float64 {
	switch u {
	case UnitCmPerSecSq:
		return 1.0 / (gravity * 100.0)
	case UnitInPerSecSq:
		return 1.0 / (gravity / 0.0254)
	}
	return 1.0
}
