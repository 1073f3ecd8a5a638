// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"

	"github.com/arkottke/strata-sub000/motion"
	"github.com/arkottke/strata-sub000/numeric"
	"github.com/arkottke/strata-sub000/soil"
)

// Output is one named member of the catalog: a Kind plus the accumulated
// raw rows (one per recorded (realization, motion) pair, or per
// realization for motion-independent kinds) and, once Finalize runs, the
// per-abscissa-point reduced statistics (spec §4.5).
type Output struct {
	Kind          Kind
	SoilTypeIndex int // which soil type this curve belongs to, for ModulusCurve/DampingCurve
	Abscissa      []float64
	Rows          [][]float64 // raw, one row per recorded slot; nil row = not recorded

	Mean, Stdev, Lower, Upper []float64
}

// NewOutput allocates an Output with nSlots raw-row capacity (nSlots is
// N*M for motion-dependent kinds, N for motion-independent ones).
func NewOutput(kind Kind, nSlots int) *Output {
	return &Output{Kind: kind, Rows: make([][]float64, nSlots)}
}

func (o *Output) logNormal() bool         { return meta[o.Kind].logNormal }
func (o *Output) motionIndependent() bool { return meta[o.Kind].motionIndependent }
func (o *Output) axisKind() axis          { return meta[o.Kind].axis }

// stepConstant interpolates (x,y) onto xq holding the value of the last
// point with x <= xq constant within that layer (spec §4.5, used for
// modulus/damping/velocity profiles).
func stepConstant(x, y []float64, xq float64) float64 {
	if len(x) == 0 {
		return 0
	}
	idx := 0
	for i, xv := range x {
		if xv <= xq {
			idx = i
		} else {
			break
		}
	}
	return y[idx]
}

// Record stores one raw data row for a single (realization, motion) pair
// (slot). Kind-specific extraction logic reads whatever ctx provides;
// kinds whose data source is absent from ctx (e.g. time-series kinds fed a
// pure-RVT motion) silently skip the slot, which Finalize then excludes.
func (o *Output) Record(slot int, ctx *Context) error {
	switch o.Kind {

	case ModulusCurve, DampingCurve:
		return o.recordCurve(slot, ctx)

	case VerticalStress:
		return o.recordProfile(slot, ctx, func(sl *soil.SubLayer) float64 { return sl.TotalStressBase })

	case InitialVelProfile, FinalVelProfile:
		return o.recordProfile(slot, ctx, func(sl *soil.SubLayer) float64 { return sl.ShearVel })

	case ModulusProfile:
		return o.recordProfile(slot, ctx, func(sl *soil.SubLayer) float64 { return sl.ShearMod })

	case DampingProfile:
		return o.recordProfile(slot, ctx, func(sl *soil.SubLayer) float64 { return sl.Damping })

	case MaxStrainProfile:
		return o.recordProfile(slot, ctx, func(sl *soil.SubLayer) float64 { return sl.MaxStrain })

	case MaxStressProfile:
		return o.recordProfile(slot, ctx, func(sl *soil.SubLayer) float64 { return sl.MaxStrain / 100.0 * sl.ShearMod })

	case MaxErrorProfile:
		return o.recordProfile(slot, ctx, func(sl *soil.SubLayer) float64 { return sl.Error })

	case MaxAccelProfile:
		return o.recordAccelProfile(slot, ctx)

	case MaxVelProfile:
		return o.recordVelProfile(slot, ctx)

	case StressReducCoeff:
		return o.recordStressReducCoeff(slot, ctx)

	case StressRatio:
		return o.recordStressRatio(slot, ctx)

	case FourierSpectrum:
		return o.recordFourierSpectrum(slot, ctx)

	case ResponseSpectrum:
		return o.recordResponseSpectrum(slot, ctx)

	case SpectralRatio:
		return o.recordSpectralRatio(slot, ctx)

	case AccelTransferFunction:
		return o.recordAccelTF(slot, ctx)

	case StrainTransferFunction:
		return o.recordStrainTF(slot, ctx)

	case AccelTimeSeries, VelTimeSeries, DispTimeSeries, StrainTimeSeries, StressTimeSeries:
		return o.recordTimeSeries(slot, ctx)

	case AriasIntensity:
		return o.recordAriasIntensity(slot, ctx)
	}
	return chk.Err("out: kind %v has no record implementation", o.Kind)
}

// recordCurve records this Output's soil type's modulus-reduction or
// damping curve; the abscissa is the strain axis, identical across
// realizations (randomization shifts the curve's values, not its strain
// points), so it's captured once.
func (o *Output) recordCurve(slot int, ctx *Context) error {
	if o.SoilTypeIndex >= len(ctx.Profile.Types) {
		return chk.Err("out: soil type index %d out of range (%d types)", o.SoilTypeIndex, len(ctx.Profile.Types))
	}
	st := ctx.Profile.Types[o.SoilTypeIndex]
	var x, y []float64
	if o.Kind == ModulusCurve {
		x, y = st.ModulusReduction.Strains, st.ModulusReduction.Varied
	} else {
		x, y = st.Damping.Strains, st.Damping.Varied
	}
	if o.Abscissa == nil {
		o.Abscissa = append([]float64(nil), x...)
	}
	o.setRow(slot, append([]float64(nil), y...))
	return nil
}

// gravityOf mirrors soil.SoilProfile's own zero-means-default rule; the
// resolved value is never written back to Profile.Gravity by Discretize,
// so every gravity-dependent reduction here re-resolves it the same way.
func gravityOf(p *soil.SoilProfile) float64 {
	if p.Gravity > 0 {
		return p.Gravity
	}
	return soil.DefaultGravity
}

// recordProfile records one raw (sublayer depth, value) series and, on
// first use, establishes the canonical depth axis; the raw series is
// interpolated onto that axis linearly for stress and strain profiles
// (VerticalStress, MaxStrainProfile, MaxStressProfile) and with the
// hold-constant-within-layer rule for every other kind.
func (o *Output) recordProfile(slot int, ctx *Context, extract func(*soil.SubLayer) float64) error {
	subs := ctx.Profile.SubLayers
	if len(subs) == 0 {
		return chk.Err("out: profile has no sub-layers to record")
	}
	rawX := make([]float64, len(subs))
	rawY := make([]float64, len(subs))
	for i, sl := range subs {
		rawX[i] = sl.Depth
		rawY[i] = extract(sl)
	}
	if o.Abscissa == nil {
		maxDepth := ctx.Profile.Rock.Depth
		o.Abscissa = canonicalDepthAxis(maxDepth)
	}
	linear := o.Kind == VerticalStress || o.Kind == MaxStrainProfile || o.Kind == MaxStressProfile
	row := make([]float64, len(o.Abscissa))
	for i, d := range o.Abscissa {
		if linear {
			row[i] = numeric.InterpLinear(rawX, rawY, d)
		} else {
			row[i] = stepConstant(rawX, rawY, d)
		}
	}
	o.setRow(slot, row)
	return nil
}

func (o *Output) setRow(slot int, row []float64) {
	if slot >= len(o.Rows) {
		grown := make([][]float64, slot+1)
		copy(grown, o.Rows)
		o.Rows = grown
	}
	o.Rows[slot] = row
}

// recordAccelProfile records the peak acceleration response at each
// sub-layer's top (spec §4.5 MaxAccelProfile).
func (o *Output) recordAccelProfile(slot int, ctx *Context) error {
	return o.recordTFProfile(slot, ctx, func(tf []complex128) float64 { return ctx.Motion.Max(tf) })
}

// recordVelProfile records the peak velocity response at each sub-layer's
// top.
func (o *Output) recordVelProfile(slot int, ctx *Context) error {
	return o.recordTFProfile(slot, ctx, func(tf []complex128) float64 { return ctx.Motion.MaxVel(tf) })
}

// recordTFProfile is shared by the acceleration/velocity max-response
// profiles: for each sub-layer, build the accel transfer function from the
// input location to that sub-layer's top and apply reduce.
func (o *Output) recordTFProfile(slot int, ctx *Context, reduce func(tf []complex128) float64) error {
	subs := ctx.Profile.SubLayers
	rawX := make([]float64, len(subs))
	rawY := make([]float64, len(subs))
	for i, sl := range subs {
		tf := ctx.Calculator.AccelTF(ctx.InputLocation, ctx.InputType, surfaceLocation(i), ctx.OutputType)
		rawX[i] = sl.Depth
		rawY[i] = reduce(tf)
	}
	if o.Abscissa == nil {
		o.Abscissa = canonicalDepthAxis(ctx.Profile.Rock.Depth)
	}
	row := make([]float64, len(o.Abscissa))
	for i, d := range o.Abscissa {
		row[i] = numeric.InterpLinear(rawX, rawY, d)
	}
	o.setRow(slot, row)
	return nil
}

// recordStressReducCoeff records the Seed & Idriss stress-reduction
// coefficient rd(z) = (tau_max(z)/sigma_v0(z)) / (PHA_surface/g), the
// classic normalization of the wave-propagation shear stress by the
// rigid-body (PHA * sigma_v0/g) estimate.
func (o *Output) recordStressReducCoeff(slot int, ctx *Context) error {
	subs := ctx.Profile.SubLayers
	if len(subs) == 0 {
		return chk.Err("out: profile has no sub-layers to record")
	}
	pha := ctx.Motion.Max(ctx.Calculator.AccelTF(ctx.InputLocation, ctx.InputType, surfaceLocation(0), ctx.OutputType))
	rawX := make([]float64, len(subs))
	rawY := make([]float64, len(subs))
	for i, sl := range subs {
		strainTF := ctx.Calculator.StrainTF(ctx.InputLocation, ctx.InputType, i)
		gammaMax := 100 * gravityOf(ctx.Profile) * ctx.Motion.CalcMaxStrain(strainTF)
		tauMax := gammaMax / 100.0 * sl.ShearMod
		rigid := pha / gravityOf(ctx.Profile) * sl.TotalStressBase
		rawX[i] = sl.Depth
		if rigid > 0 {
			rawY[i] = tauMax / rigid
		}
	}
	if o.Abscissa == nil {
		o.Abscissa = canonicalDepthAxis(ctx.Profile.Rock.Depth)
	}
	row := make([]float64, len(o.Abscissa))
	for i, d := range o.Abscissa {
		row[i] = numeric.InterpLinear(rawX, rawY, d)
	}
	o.setRow(slot, row)
	return nil
}

// recordStressRatio records the cyclic stress ratio tau_max(z)/sigma_v0(z)
// at each sub-layer.
func (o *Output) recordStressRatio(slot int, ctx *Context) error {
	subs := ctx.Profile.SubLayers
	rawX := make([]float64, len(subs))
	rawY := make([]float64, len(subs))
	for i, sl := range subs {
		strainTF := ctx.Calculator.StrainTF(ctx.InputLocation, ctx.InputType, i)
		gammaMax := 100 * gravityOf(ctx.Profile) * ctx.Motion.CalcMaxStrain(strainTF)
		tauMax := gammaMax / 100.0 * sl.ShearMod
		rawX[i] = sl.Depth
		if sl.TotalStressBase > 0 {
			rawY[i] = tauMax / sl.TotalStressBase
		}
	}
	if o.Abscissa == nil {
		o.Abscissa = canonicalDepthAxis(ctx.Profile.Rock.Depth)
	}
	row := make([]float64, len(o.Abscissa))
	for i, d := range o.Abscissa {
		row[i] = numeric.InterpLinear(rawX, rawY, d)
	}
	o.setRow(slot, row)
	return nil
}

// recordFourierSpectrum records |FAS| at the input location.
func (o *Output) recordFourierSpectrum(slot int, ctx *Context) error {
	var amp []float64
	switch m := ctx.Motion.(type) {
	case *motion.RvtMotion:
		amp = m.Fas
	case *motion.CompatibleRvtMotion:
		amp = m.Fas
	case *motion.SourceTheoryRvtMotion:
		amp = m.Fas
	case *motion.TimeSeriesMotion:
		amp = m.FourierAmplitude()
	default:
		return nil
	}
	if o.Abscissa == nil {
		o.Abscissa = ctx.Motion.Freq()
	}
	o.setRow(slot, append([]float64(nil), amp...))
	return nil
}

// recordResponseSpectrum records the pseudo-acceleration response
// spectrum at the input location.
func (o *Output) recordResponseSpectrum(slot int, ctx *Context) error {
	if o.Abscissa == nil {
		o.Abscissa = ctx.Periods
	}
	sa := ctx.Motion.ComputeSa(ctx.Periods, ctx.DampingPct, nil)
	o.setRow(slot, sa)
	return nil
}

// recordSpectralRatio records Sa(output location)/Sa(input location).
func (o *Output) recordSpectralRatio(slot int, ctx *Context) error {
	if o.Abscissa == nil {
		o.Abscissa = ctx.Periods
	}
	accelTF := ctx.Calculator.AccelTF(ctx.InputLocation, ctx.InputType, surfaceLocation(0), ctx.OutputType)
	saOut := ctx.Motion.ComputeSa(ctx.Periods, ctx.DampingPct, accelTF)
	saIn := ctx.Motion.ComputeSa(ctx.Periods, ctx.DampingPct, nil)
	row := make([]float64, len(ctx.Periods))
	for i := range row {
		if saIn[i] != 0 {
			row[i] = saOut[i] / saIn[i]
		}
	}
	o.setRow(slot, row)
	return nil
}

// recordAccelTF records |AccelTF| from the input location to the surface.
func (o *Output) recordAccelTF(slot int, ctx *Context) error {
	if o.Abscissa == nil {
		o.Abscissa = ctx.Motion.Freq()
	}
	tf := ctx.Calculator.AccelTF(ctx.InputLocation, ctx.InputType, surfaceLocation(0), ctx.OutputType)
	o.setRow(slot, numeric.Abs(tf))
	return nil
}

// recordStrainTF records |StrainTF| at the deepest sub-layer's mid-depth,
// relative to the input location.
func (o *Output) recordStrainTF(slot int, ctx *Context) error {
	if o.Abscissa == nil {
		o.Abscissa = ctx.Motion.Freq()
	}
	last := len(ctx.Profile.SubLayers) - 1
	if last < 0 {
		return chk.Err("out: profile has no sub-layers to record")
	}
	tf := ctx.Calculator.StrainTF(ctx.InputLocation, ctx.InputType, last)
	o.setRow(slot, numeric.Abs(tf))
	return nil
}

// recordTimeSeries records a filtered time-domain series at the surface;
// only meaningful for a TimeSeriesMotion input (spec §4.7).
func (o *Output) recordTimeSeries(slot int, ctx *Context) error {
	ts, ok := ctx.Motion.(*motion.TimeSeriesMotion)
	if !ok {
		return nil
	}
	var series []float64
	switch o.Kind {
	case AccelTimeSeries:
		tf := ctx.Calculator.AccelTF(ctx.InputLocation, ctx.InputType, surfaceLocation(0), ctx.OutputType)
		series = ts.FilteredAccel(tf)
	case VelTimeSeries:
		tf := ctx.Calculator.AccelTF(ctx.InputLocation, ctx.InputType, surfaceLocation(0), ctx.OutputType)
		series = ts.Integrate(ts.FilteredAccel(tf))
	case DispTimeSeries:
		tf := ctx.Calculator.AccelTF(ctx.InputLocation, ctx.InputType, surfaceLocation(0), ctx.OutputType)
		series = ts.Integrate(ts.Integrate(ts.FilteredAccel(tf)))
	case StrainTimeSeries:
		last := len(ctx.Profile.SubLayers) - 1
		if last < 0 {
			return nil
		}
		tf := ctx.Calculator.StrainTF(ctx.InputLocation, ctx.InputType, last)
		series = ts.FilteredStrain(tf)
	case StressTimeSeries:
		last := len(ctx.Profile.SubLayers) - 1
		if last < 0 {
			return nil
		}
		tf := ctx.Calculator.StrainTF(ctx.InputLocation, ctx.InputType, last)
		strain := ts.FilteredStrain(tf)
		g := ctx.Profile.SubLayers[last].ShearMod
		series = make([]float64, len(strain))
		for i, e := range strain {
			series[i] = e / 100.0 * g
		}
	}
	if o.Abscissa == nil {
		o.Abscissa = make([]float64, len(series))
		for i := range o.Abscissa {
			o.Abscissa[i] = float64(i) * ts.Dt
		}
	}
	o.setRow(slot, series)
	return nil
}

// recordAriasIntensity records the scalar Arias intensity of the filtered
// surface acceleration; only meaningful for a TimeSeriesMotion input.
func (o *Output) recordAriasIntensity(slot int, ctx *Context) error {
	ts, ok := ctx.Motion.(*motion.TimeSeriesMotion)
	if !ok {
		return nil
	}
	tf := ctx.Calculator.AccelTF(ctx.InputLocation, ctx.InputType, surfaceLocation(0), ctx.OutputType)
	accel := ts.FilteredAccel(tf)
	ia := motion.AriasIntensity(accel, ts.Dt, gravityOf(ctx.Profile))
	o.setRow(slot, []float64{ia})
	return nil
}

// Finalize reduces every recorded, enabled row to per-abscissa-point
// statistics (spec §4.5). enabled has the same slot indexing as Rows;
// a nil row (never recorded, e.g. a TimeSeriesMotion-only kind fed an RVT
// motion) is always excluded regardless of its enabled flag.
func (o *Output) Finalize(enabled []bool) {
	if len(o.Abscissa) == 0 {
		return
	}
	n := len(o.Abscissa)
	o.Mean = make([]float64, n)
	o.Stdev = make([]float64, n)
	o.Lower = make([]float64, n)
	o.Upper = make([]float64, n)
	for p := 0; p < n; p++ {
		var samples []float64
		for slot, row := range o.Rows {
			if row == nil || (slot < len(enabled) && !enabled[slot]) {
				continue
			}
			if p < len(row) {
				samples = append(samples, row[p])
			}
		}
		var stats pointStats
		if o.logNormal() {
			stats = reduceLogNormal(samples)
		} else {
			stats = reduceLinear(samples)
		}
		o.Mean[p], o.Stdev[p], o.Lower[p], o.Upper[p] = stats.Mean, stats.Stdev, stats.Lower, stats.Upper
	}
}
