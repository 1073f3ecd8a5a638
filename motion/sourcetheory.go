// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package motion

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/arkottke/strata-sub000/numeric"
)

// SourceRegion selects the default stress-drop, path-attenuation and
// crustal-amplification parameters of a SourceTheoryRvtMotion (Campbell
// 2003), or Custom to leave every parameter caller-supplied.
type SourceRegion int

const (
	CustomRegion SourceRegion = iota
	WUS                       // Western North America
	CEUS                      // Eastern North America (Central/Eastern US)
)

// crustalModel is the generic frequency-amplification table for a region,
// in Hz / dimensionless amplification pairs.
type crustalModel struct {
	freq []float64
	amp  []float64
}

var regionDefaults = map[SourceRegion]struct {
	stressDrop     float64
	pathAttenCoeff float64
	pathAttenPower float64
	shearVelocity  float64
	density        float64
	siteAtten      float64
	crustal        crustalModel
}{
	WUS: {
		stressDrop: 100, pathAttenCoeff: 180, pathAttenPower: 0.45,
		shearVelocity: 3.5, density: 2.8, siteAtten: 0.04,
		crustal: crustalModel{
			freq: []float64{0.01, 0.09, 0.16, 0.51, 0.84, 1.25, 2.26, 3.17, 6.05, 16.60, 61.20, 100.00},
			amp:  []float64{1.00, 1.10, 1.18, 1.42, 1.58, 1.74, 2.06, 2.25, 2.58, 3.13, 4.00, 4.40},
		},
	},
	CEUS: {
		stressDrop: 150, pathAttenCoeff: 680, pathAttenPower: 0.36,
		shearVelocity: 3.6, density: 2.8, siteAtten: 0.006,
		crustal: crustalModel{
			freq: []float64{0.01, 0.10, 0.20, 0.30, 0.50, 0.90, 1.25, 1.80, 3.00, 5.30, 8.00, 14.00, 30.00, 60.00, 100.00},
			amp:  []float64{1.00, 1.02, 1.03, 1.05, 1.07, 1.09, 1.11, 1.12, 1.13, 1.14, 1.15, 1.15, 1.15, 1.15, 1.15},
		},
	},
}

// SourceTheoryRvtMotion derives a Fourier amplitude spectrum from a Brune
// (1970) point-source model with geometric and anelastic path attenuation
// and generic (or site-specific) crustal amplification (spec Data Model:
// "FAS computed from a Brune point-source model with path attenuation and
// site amplification").
type SourceTheoryRvtMotion struct {
	AbstractRvtMotion

	Region    SourceRegion
	MomentMag float64 // moment magnitude, Mw
	Distance  float64 // epicentral distance, km
	Depth     float64 // focal depth, km

	StressDrop     float64 // bars
	PathAttenCoeff float64
	PathAttenPower float64
	ShearVelocity  float64 // km/s
	Density        float64 // g/cm^3
	SiteAtten      float64 // kappa0, s
	GeoAtten       float64 // geometric-spreading coefficient; 0 triggers auto-calc

	PathDurCoeff float64 // path-duration slope (s/km) outside CEUS; 0 means 0.05 for WUS; CEUS ignores it and uses its piecewise term

	// Site-specific crustal model (km thickness/velocity/density layers).
	// When CrustThickness is non-empty it overrides the region's generic
	// crustal amplification table.
	CrustThickness []float64
	CrustVelocity  []float64
	CrustDensity   []float64

	crustal crustalModel // resolved generic or site-specific amplification
}

// NewSourceTheoryRvtMotion builds a SourceTheoryRvtMotion seeded with a
// region's Campbell (2003) default parameters, evaluated at the given
// working frequency grid.
func NewSourceTheoryRvtMotion(freq []float64, region SourceRegion, momentMag, distance, depth float64, typ Type) *SourceTheoryRvtMotion {
	m := &SourceTheoryRvtMotion{
		AbstractRvtMotion: AbstractRvtMotion{FreqGrid: freq, Fas: make([]float64, len(freq)), Typ: typ},
		Region:            region,
		MomentMag:         momentMag,
		Distance:          distance,
		Depth:             depth,
	}
	if d, ok := regionDefaults[region]; ok {
		m.StressDrop = d.stressDrop
		m.PathAttenCoeff = d.pathAttenCoeff
		m.PathAttenPower = d.pathAttenPower
		m.ShearVelocity = d.shearVelocity
		m.Density = d.density
		m.SiteAtten = d.siteAtten
		m.crustal = d.crustal
	}
	return m
}

// seismicMoment converts moment magnitude to seismic moment (dyne-cm), per
// the Hanks & Kanamori (1979) relation.
func (m *SourceTheoryRvtMotion) seismicMoment() float64 {
	return math.Pow(10, 1.5*(m.MomentMag+10.7))
}

// cornerFreq returns the Brune corner frequency in Hz.
func (m *SourceTheoryRvtMotion) cornerFreq() float64 {
	return 4.9e6 * m.ShearVelocity * math.Pow(m.StressDrop/m.seismicMoment(), 1.0/3.0)
}

func (m *SourceTheoryRvtMotion) hypoDistance() float64 {
	return math.Sqrt(m.Depth*m.Depth + m.Distance*m.Distance)
}

// geoAtten returns the geometric-attenuation factor, auto-calculated per
// region from the piecewise power-law fits of Campbell (2003) unless
// GeoAtten has been set explicitly.
func (m *SourceTheoryRvtMotion) geoAtten() float64 {
	if m.GeoAtten != 0 {
		return m.GeoAtten
	}
	r := m.hypoDistance()
	switch m.Region {
	case WUS:
		if r < 40 {
			return 1.0 / r
		}
		return 1.0 / 40.0 * math.Sqrt(40.0/r)
	case CEUS:
		switch {
		case r < 70:
			return 1.0 / r
		case r < 130:
			return 1.0 / 70.0
		default:
			return 1.0 / 70.0 * math.Sqrt(130.0/r)
		}
	default:
		return 1.0 / r
	}
}

// pathDuration returns the piecewise-linear path-duration term of
// Campbell (2003), used together with the source duration 1/fCorner.
func (m *SourceTheoryRvtMotion) pathDuration() float64 {
	r := m.hypoDistance()
	if m.Region != CEUS {
		coeff := m.PathDurCoeff
		if coeff == 0 && m.Region == WUS {
			coeff = 0.05
		}
		return coeff * r
	}
	switch {
	case r <= 10:
		return 0
	case r <= 70:
		return 0.16 * (r - 10)
	case r <= 130:
		return 0.16*(70-10) + (-0.03)*(r-70)
	default:
		return 0.16*(70-10) - 0.03*(130-70) + 0.04*(r-130)
	}
}

// computeDuration returns the total (source + path) duration.
func (m *SourceTheoryRvtMotion) computeDuration() float64 {
	return 1.0/m.cornerFreq() + m.pathDuration()
}

// averageOverDepth averages property (aligned with thickness, last layer a
// half-space) to maxDepth.
func averageOverDepth(thickness, property []float64, maxDepth float64) float64 {
	depth, sum := 0.0, 0.0
	for i := range thickness {
		depth += thickness[i]
		if maxDepth < depth {
			sum += (thickness[i] - (depth - maxDepth)) * property[i]
			return sum / maxDepth
		}
		if i == len(thickness)-1 {
			sum += (maxDepth - depth) * property[len(property)-1]
			return sum / maxDepth
		}
		sum += thickness[i] * property[i]
	}
	return sum / maxDepth
}

// calcCrustalAmp derives the frequency-dependent square-root-impedance
// amplification from a layered crustal velocity model, iterating the
// frequency-dependent averaging depth to convergence (tolerance 0.5%, at
// most 10 iterations per frequency), per the original point-source model.
func (m *SourceTheoryRvtMotion) calcCrustalAmp() {
	freq := numeric.LogSpace(0.01, 100.0, 20)
	slowness := make([]float64, len(m.CrustVelocity))
	for i, v := range m.CrustVelocity {
		slowness[i] = 1.0 / v
	}
	amp := make([]float64, len(freq))
	for i, f := range freq {
		avgSlow := slowness[0]
		depthF := 0.0
		for count := 0; count < 10; count++ {
			depthF = 1.0 / (4 * f * avgSlow)
			old := avgSlow
			avgSlow = averageOverDepth(m.CrustThickness, slowness, depthF)
			if math.Abs((old-avgSlow)/avgSlow) <= 0.005 {
				break
			}
		}
		avgDensity := averageOverDepth(m.CrustThickness, m.CrustDensity, depthF)
		amp[i] = math.Sqrt((m.ShearVelocity * m.Density) / (avgDensity / avgSlow))
	}
	m.crustal = crustalModel{freq: freq, amp: amp}
}

// Compute derives the Fourier amplitude spectrum on FreqGrid and sets
// Duration, per the Brune point-source + path + site formulation.
func (m *SourceTheoryRvtMotion) Compute() error {
	if m.ShearVelocity <= 0 || m.Density <= 0 {
		return chk.Err("motion: source-theory motion requires shearVelocity > 0 and density > 0")
	}
	if len(m.CrustThickness) > 0 {
		m.calcCrustalAmp()
	}
	if len(m.crustal.freq) == 0 {
		return chk.Err("motion: source-theory motion has no crustal amplification model (set Region or a crustal velocity profile)")
	}

	m.Duration = m.computeDuration()
	seismicMoment := m.seismicMoment()
	fCorner := m.cornerFreq()
	geoAtten := m.geoAtten()
	hypoDist := m.hypoDistance()

	const conv = 1e-18 / 981.0
	c := (0.55 * 2) / (math.Sqrt2 * 4 * math.Pi * m.Density * math.Pow(m.ShearVelocity, 3))

	for i, f := range m.FreqGrid {
		if f == 0 {
			m.Fas[i] = 0
			continue
		}
		source := 1.0 / (1.0 + math.Pow(f/fCorner, 2))
		sourceComp := c * seismicMoment * source

		pathAtten := m.PathAttenCoeff * math.Pow(f, m.PathAttenPower)
		pathComp := geoAtten * math.Exp((-math.Pi*f*hypoDist)/(pathAtten*m.ShearVelocity))

		siteAmp := numeric.InterpLinear(m.crustal.freq, m.crustal.amp, f)
		siteDim := math.Exp(-math.Pi * m.SiteAtten * f)
		siteComp := siteAmp * siteDim

		m.Fas[i] = conv * math.Pow(2*math.Pi*f, 2) * sourceComp * pathComp * siteComp
	}
	return nil
}
