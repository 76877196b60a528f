// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/nairr/opm-material/ad"
)

// VanGen implements van Genuchten's model with Mualem's relative permeabilities
//   pc  = ((Swe^(-1/m) - 1)^(1/n)) / α
//   krw = √Swe・(1 - (1 - Swe^(1/m))^m)²
//   krn = (1-Swe)^(1/3)・(1 - Swe^(1/m))^(2m)
type VanGen struct {

	// parameters
	α float64 // inverse of a reference pressure
	n float64 // shape parameter

	// derived
	m float64 // m = 1 - 1/n
}

// add model to factory
func init() {
	allocators["vg"] = func() Model { return new(VanGen) }
}

// Init initialises model
func (o *VanGen) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "alp", "alpha":
			o.α = p.V
		case "n":
			o.n = p.V
		default:
			return chk.Err("vg: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.α <= 0 {
		return chk.Err("vg: alpha must be positive. alpha = %g is invalid\n", o.α)
	}
	if o.n <= 1 {
		return chk.Err("vg: n must be greater than 1. n = %g is invalid\n", o.n)
	}
	o.m = 1.0 - 1.0/o.n
	return
}

// GetPrms gets (an example) of parameters
func (o VanGen) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "alpha", V: 3.7e-4},
			&dbf.P{N: "n", V: 4.7},
		}
	}
	return dbf.Params{
		&dbf.P{N: "alpha", V: o.α},
		&dbf.P{N: "n", V: o.n},
	}
}

// Pc computes pc(Swe)
func (o VanGen) Pc(swe float64) float64 { return VgPc(&o, ad.Real(swe)).Value() }

// Sw computes Swe(pc)
func (o VanGen) Sw(pc float64) float64 { return VgSw(&o, ad.Real(pc)).Value() }

// DpcDsw computes ∂pc/∂Swe
func (o VanGen) DpcDsw(swe float64) float64 { return VgDpcDsw(&o, ad.Real(swe)).Value() }

// DswDpc computes ∂Swe/∂pc
func (o VanGen) DswDpc(pc float64) float64 { return VgDswDpc(&o, ad.Real(pc)).Value() }

// Krw computes krw(Swe)
func (o VanGen) Krw(swe float64) float64 { return VgKrw(&o, ad.Real(swe)).Value() }

// Krn computes krn(Swe)
func (o VanGen) Krn(swe float64) float64 { return VgKrn(&o, ad.Real(swe)).Value() }

// VgPc computes the capillary pressure
//  Note: at Swe = 1 the result is 0 with zero derivatives
func VgPc[T ad.Number[T]](o *VanGen, swe T) T {
	assertSwe(swe)
	c := ad.Pow(swe, -1.0/o.m).AddScalar(-1)
	return ad.Pow(c, 1.0/o.n).MulScalar(1.0 / o.α)
}

// VgSw computes the effective saturation
//   Swe = ((α・pc)^n + 1)^(-m)
func VgSw[T ad.Number[T]](o *VanGen, pc T) T {
	assertPc(pc)
	c := ad.Pow(pc.MulScalar(o.α), o.n).AddScalar(1)
	return ad.Pow(c, -o.m)
}

// VgDpcDsw computes ∂pc/∂Swe
//   ∂pc/∂Swe = -1/(α・n・m)・(Swe^(-1/m) - 1)^(1/n-1)・Swe^(-1/m-1)
func VgDpcDsw[T ad.Number[T]](o *VanGen, swe T) T {
	assertSwe(swe)
	c := ad.Pow(swe, -1.0/o.m).AddScalar(-1)
	return ad.Pow(c, 1.0/o.n-1.0).Mul(ad.Pow(swe, -1.0/o.m-1.0)).MulScalar(-1.0 / (o.α * o.n * o.m))
}

// VgDswDpc computes ∂Swe/∂pc
//   ∂Swe/∂pc = -α・n・m・(α・pc)^(n-1)・((α・pc)^n + 1)^(-m-1)
func VgDswDpc[T ad.Number[T]](o *VanGen, pc T) T {
	assertPc(pc)
	αpc := pc.MulScalar(o.α)
	c := ad.Pow(αpc, o.n).AddScalar(1)
	return ad.Pow(αpc, o.n-1.0).Mul(ad.Pow(c, -o.m-1.0)).MulScalar(-o.α * o.n * o.m)
}

// VgKrw computes the relative permeability of the wetting phase
func VgKrw[T ad.Number[T]](o *VanGen, swe T) T {
	assertSwe(swe)
	r := ad.ScalarSub(1, ad.Pow(ad.ScalarSub(1, ad.Pow(swe, 1.0/o.m)), o.m))
	return ad.Sqrt(swe).Mul(ad.Sqr(r))
}

// VgKrn computes the relative permeability of the non-wetting phase
func VgKrn[T ad.Number[T]](o *VanGen, swe T) T {
	assertSwe(swe)
	r := ad.ScalarSub(1, ad.Pow(swe, 1.0/o.m))
	return ad.Pow(ad.ScalarSub(1, swe), 1.0/3.0).Mul(ad.Pow(r, 2.0*o.m))
}
