// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package retention implements capillary pressure and relative permeability laws
//  All laws are written in terms of the effective saturation of the wetting phase (Swe) and
//  the capillary pressure (pc = pn - pw). The generic functions accept any ad.Number; thus
//  derivatives with respect to the primary variables come for free when called with
//  ad.Evaluation.
//  References:
//   [1] Brooks RH and Corey AT (1964) Hydraulic properties of porous media. Hydrology Papers 3,
//       Colorado State University
//   [2] van Genuchten MTh (1980) A closed-form equation for predicting the hydraulic
//       conductivity of unsaturated soils. Soil Sci Soc Am J, 44(5) 892-898
//       http://dx.doi.org/10.2136/sssaj1980.03615995004400050002x
package retention

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/nairr/opm-material/ad"
)

// Model implements a capillary pressure <-> saturation law with plain values
type Model interface {
	Init(prms dbf.Params) error      // initialises model
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Pc(swe float64) float64          // capillary pressure
	Sw(pc float64) float64           // effective wetting saturation; inverse of Pc
	DpcDsw(swe float64) float64      // ∂pc/∂Swe
	DswDpc(pc float64) float64       // ∂Swe/∂pc
	Krw(swe float64) float64         // relative permeability of the wetting phase
	Krn(swe float64) float64         // relative permeability of the non-wetting phase
}

// New returns new capillary pressure model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'retention' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// generic dispatch //////////////////////////////////////////////////////////////////////////////

// Pc computes the capillary pressure of any model in this package
func Pc[T ad.Number[T]](mdl Model, swe T) T {
	switch m := mdl.(type) {
	case *BrooksCorey:
		return BcPc(m, swe)
	case *VanGen:
		return VgPc(m, swe)
	case *Lin:
		return LinPc(m, swe)
	}
	chk.Panic("retention: cannot compute Pc with model of type %T", mdl)
	return swe
}

// Sw computes the effective wetting saturation of any model in this package
func Sw[T ad.Number[T]](mdl Model, pc T) T {
	switch m := mdl.(type) {
	case *BrooksCorey:
		return BcSw(m, pc)
	case *VanGen:
		return VgSw(m, pc)
	case *Lin:
		return LinSw(m, pc)
	}
	chk.Panic("retention: cannot compute Sw with model of type %T", mdl)
	return pc
}

// Krw computes the wetting relative permeability of any model in this package
func Krw[T ad.Number[T]](mdl Model, swe T) T {
	switch m := mdl.(type) {
	case *BrooksCorey:
		return BcKrw(m, swe)
	case *VanGen:
		return VgKrw(m, swe)
	case *Lin:
		return LinKrw(m, swe)
	}
	chk.Panic("retention: cannot compute Krw with model of type %T", mdl)
	return swe
}

// Krn computes the non-wetting relative permeability of any model in this package
func Krn[T ad.Number[T]](mdl Model, swe T) T {
	switch m := mdl.(type) {
	case *BrooksCorey:
		return BcKrn(m, swe)
	case *VanGen:
		return VgKrn(m, swe)
	case *Lin:
		return LinKrn(m, swe)
	}
	chk.Panic("retention: cannot compute Krn with model of type %T", mdl)
	return swe
}

// validation ////////////////////////////////////////////////////////////////////////////////////

// CheckSwe returns an error if swe is not within [0, 1]
func CheckSwe(swe float64) error {
	if swe < 0 || swe > 1 {
		return chk.Err("effective saturation must be within [0, 1]. Swe = %g is invalid", swe)
	}
	return nil
}

// CheckPc returns an error if pc is negative
func CheckPc(pc float64) error {
	if pc < 0 {
		return chk.Err("capillary pressure must be non-negative. pc = %g is invalid", pc)
	}
	return nil
}

// assertSwe panics if swe is out of range; only with -tags debug
func assertSwe[T ad.Number[T]](swe T) {
	if ad.Debug {
		if err := CheckSwe(swe.Value()); err != nil {
			chk.Panic("%v", err)
		}
	}
}

// assertPc panics if pc is negative; only with -tags debug
func assertPc[T ad.Number[T]](pc T) {
	if ad.Debug {
		if err := CheckPc(pc.Value()); err != nil {
			chk.Panic("%v", err)
		}
	}
}
