// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nlprop

import "github.com/cpmech/gosl/chk"

// Source generates a soil type's modulus-reduction and damping curves over
// a given strain axis (percent). Concrete sources are registered in
// allocators the same way gofem's mreten.Model variants register
// themselves, so a user-supplied (tabulated) curve and a derived
// (Darendeli) curve can be swapped without touching SoilType.
type Source interface {
	Name() string
	Generate(strains []float64) (modulus, damping *NonlinearProperty, err error)
}

// allocators holds all available curve sources, registered from init().
var allocators = map[string]func() Source{}

// New returns a newly allocated curve source by name.
func New(name string) (Source, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("nlprop: source %q is not available in the curve-source registry", name)
	}
	return allocator(), nil
}

// TabulatedSource wraps user-supplied strain/value pairs as a Source.
type TabulatedSource struct {
	ModulusStrains, ModulusValues []float64
	DampingStrains, DampingValues []float64
}

func init() {
	allocators["tabulated"] = func() Source { return new(TabulatedSource) }
	allocators["darendeli"] = func() Source { return new(DarendeliSource) }
}

// Name implements Source.
func (o *TabulatedSource) Name() string { return "tabulated" }

// Generate implements Source: the strains argument is ignored because a
// tabulated source carries its own strain axis per curve.
func (o *TabulatedSource) Generate(strains []float64) (modulus, damping *NonlinearProperty, err error) {
	modulus, err = NewNonlinearProperty(ModulusReduction, o.ModulusStrains, o.ModulusValues)
	if err != nil {
		return nil, nil, err
	}
	damping, err = NewNonlinearProperty(Damping, o.DampingStrains, o.DampingValues)
	if err != nil {
		return nil, nil, err
	}
	return modulus, damping, nil
}

// DarendeliSource wraps DarendeliParams as a Source over a caller-supplied
// strain axis.
type DarendeliSource struct {
	DarendeliParams
}

// Name implements Source.
func (o *DarendeliSource) Name() string { return "darendeli" }

// Generate implements Source.
func (o *DarendeliSource) Generate(strains []float64) (modulus, damping *NonlinearProperty, err error) {
	return o.DarendeliParams.GenerateCurves(strains)
}
