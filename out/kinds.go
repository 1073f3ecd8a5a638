// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out implements the output catalog of spec §4.5: a registry of
// ~25 named output kinds, each declaring its own shape (motion-dependent,
// site-dependent, time-series, log-normal), accumulated across realizations
// and reduced to per-abscissa statistics once a run completes.
package out

// Kind is the closed catalog of built-in output variants (spec §4.5).
type Kind int

const (
	ModulusCurve Kind = iota
	DampingCurve
	AccelTimeSeries
	VelTimeSeries
	DispTimeSeries
	StrainTimeSeries
	StressTimeSeries
	FourierSpectrum
	ResponseSpectrum
	SpectralRatio
	AccelTransferFunction
	StrainTransferFunction
	MaxAccelProfile
	MaxVelProfile
	MaxStrainProfile
	MaxStressProfile
	StressReducCoeff
	StressRatio
	VerticalStress
	InitialVelProfile
	FinalVelProfile
	ModulusProfile
	DampingProfile
	MaxErrorProfile
	AriasIntensity
)

func (k Kind) String() string {
	switch k {
	case ModulusCurve:
		return "ModulusCurve"
	case DampingCurve:
		return "DampingCurve"
	case AccelTimeSeries:
		return "AccelTimeSeries"
	case VelTimeSeries:
		return "VelTimeSeries"
	case DispTimeSeries:
		return "DispTimeSeries"
	case StrainTimeSeries:
		return "StrainTimeSeries"
	case StressTimeSeries:
		return "StressTimeSeries"
	case FourierSpectrum:
		return "FourierSpectrum"
	case ResponseSpectrum:
		return "ResponseSpectrum"
	case SpectralRatio:
		return "SpectralRatio"
	case AccelTransferFunction:
		return "AccelTransferFunction"
	case StrainTransferFunction:
		return "StrainTransferFunction"
	case MaxAccelProfile:
		return "MaxAccelProfile"
	case MaxVelProfile:
		return "MaxVelProfile"
	case MaxStrainProfile:
		return "MaxStrainProfile"
	case MaxStressProfile:
		return "MaxStressProfile"
	case StressReducCoeff:
		return "StressReducCoeff"
	case StressRatio:
		return "StressRatio"
	case VerticalStress:
		return "VerticalStress"
	case InitialVelProfile:
		return "InitialVelProfile"
	case FinalVelProfile:
		return "FinalVelProfile"
	case ModulusProfile:
		return "ModulusProfile"
	case DampingProfile:
		return "DampingProfile"
	case MaxErrorProfile:
		return "MaxErrorProfile"
	case AriasIntensity:
		return "AriasIntensity"
	}
	return "Unknown"
}

// allKinds lists every built-in Kind in declaration order, for callers
// (project loading, CLI flag parsing) that need to enumerate or parse them
// by name.
var allKinds = []Kind{
	ModulusCurve, DampingCurve,
	AccelTimeSeries, VelTimeSeries, DispTimeSeries, StrainTimeSeries, StressTimeSeries,
	FourierSpectrum, ResponseSpectrum, SpectralRatio,
	AccelTransferFunction, StrainTransferFunction,
	MaxAccelProfile, MaxVelProfile, MaxStrainProfile, MaxStressProfile,
	StressReducCoeff, StressRatio, VerticalStress,
	InitialVelProfile, FinalVelProfile, ModulusProfile, DampingProfile,
	MaxErrorProfile, AriasIntensity,
}

// AllKinds returns every built-in Kind in declaration order.
func AllKinds() []Kind {
	return append([]Kind(nil), allKinds...)
}

// ParseKind looks up a Kind by its String() spelling.
func ParseKind(name string) (Kind, bool) {
	for _, k := range allKinds {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// axis names the physical quantity an output's abscissa runs over.
type axis int

const (
	axisDepth axis = iota
	axisFreq
	axisPeriod
	axisTime
	axisStrain
	axisScalar // no abscissa; a single value per realization
)

// kindMeta is the fixed shape metadata for one Kind: whether its
// statistics are computed in log-space, whether it depends on the driving
// motion (vs. being purely profile/site data recorded once per
// realization), and what its abscissa represents.
type kindMeta struct {
	logNormal         bool
	motionIndependent bool
	axis              axis
}

var meta = map[Kind]kindMeta{
	ModulusCurve:           {logNormal: false, motionIndependent: true, axis: axisStrain},
	DampingCurve:           {logNormal: false, motionIndependent: true, axis: axisStrain},
	AccelTimeSeries:        {logNormal: false, motionIndependent: false, axis: axisTime},
	VelTimeSeries:          {logNormal: false, motionIndependent: false, axis: axisTime},
	DispTimeSeries:         {logNormal: false, motionIndependent: false, axis: axisTime},
	StrainTimeSeries:       {logNormal: false, motionIndependent: false, axis: axisTime},
	StressTimeSeries:       {logNormal: false, motionIndependent: false, axis: axisTime},
	FourierSpectrum:        {logNormal: true, motionIndependent: false, axis: axisFreq},
	ResponseSpectrum:       {logNormal: true, motionIndependent: false, axis: axisPeriod},
	SpectralRatio:          {logNormal: true, motionIndependent: false, axis: axisPeriod},
	AccelTransferFunction:  {logNormal: true, motionIndependent: false, axis: axisFreq},
	StrainTransferFunction: {logNormal: true, motionIndependent: false, axis: axisFreq},
	MaxAccelProfile:        {logNormal: true, motionIndependent: false, axis: axisDepth},
	MaxVelProfile:          {logNormal: true, motionIndependent: false, axis: axisDepth},
	MaxStrainProfile:       {logNormal: true, motionIndependent: false, axis: axisDepth},
	MaxStressProfile:       {logNormal: true, motionIndependent: false, axis: axisDepth},
	StressReducCoeff:       {logNormal: false, motionIndependent: false, axis: axisDepth},
	StressRatio:            {logNormal: true, motionIndependent: false, axis: axisDepth},
	VerticalStress:         {logNormal: false, motionIndependent: true, axis: axisDepth},
	InitialVelProfile:      {logNormal: false, motionIndependent: true, axis: axisDepth},
	FinalVelProfile:        {logNormal: false, motionIndependent: true, axis: axisDepth},
	ModulusProfile:         {logNormal: true, motionIndependent: false, axis: axisDepth},
	DampingProfile:         {logNormal: true, motionIndependent: false, axis: axisDepth},
	MaxErrorProfile:        {logNormal: false, motionIndependent: false, axis: axisDepth},
	AriasIntensity:         {logNormal: true, motionIndependent: false, axis: axisScalar},
}
