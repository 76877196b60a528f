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

// BrooksCorey implements Brooks and Corey' model
//   pc  = pe・Swe^(-1/α)
//   krw = Swe^((2+3α)/α)
//   krn = (1-Swe)²・(1 - Swe^((2+α)/α))
type BrooksCorey struct {
	Pe    float64 // entry pressure
	Alpha float64 // pore-size distribution index (λ)
}

// add model to factory
func init() {
	allocators["bc"] = func() Model { return new(BrooksCorey) }
}

// Init initialises model
func (o *BrooksCorey) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "pe":
			o.Pe = p.V
		case "alpha", "lam":
			o.Alpha = p.V
		default:
			return chk.Err("bc: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Pe <= 0 {
		return chk.Err("bc: entry pressure must be positive. pe = %g is invalid\n", o.Pe)
	}
	if o.Alpha <= 0 {
		return chk.Err("bc: pore-size distribution index must be positive. alpha = %g is invalid\n", o.Alpha)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o BrooksCorey) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "pe", V: 1000},
			&dbf.P{N: "alpha", V: 2},
		}
	}
	return dbf.Params{
		&dbf.P{N: "pe", V: o.Pe},
		&dbf.P{N: "alpha", V: o.Alpha},
	}
}

// Pc computes pc(Swe)
func (o BrooksCorey) Pc(swe float64) float64 { return BcPc(&o, ad.Real(swe)).Value() }

// Sw computes Swe(pc)
func (o BrooksCorey) Sw(pc float64) float64 { return BcSw(&o, ad.Real(pc)).Value() }

// DpcDsw computes ∂pc/∂Swe
func (o BrooksCorey) DpcDsw(swe float64) float64 { return BcDpcDsw(&o, ad.Real(swe)).Value() }

// DswDpc computes ∂Swe/∂pc
func (o BrooksCorey) DswDpc(pc float64) float64 { return BcDswDpc(&o, ad.Real(pc)).Value() }

// Krw computes krw(Swe)
func (o BrooksCorey) Krw(swe float64) float64 { return BcKrw(&o, ad.Real(swe)).Value() }

// Krn computes krn(Swe)
func (o BrooksCorey) Krn(swe float64) float64 { return BcKrn(&o, ad.Real(swe)).Value() }

// BcPc computes the capillary pressure
//   pc = pe・Swe^(-1/α)
func BcPc[T ad.Number[T]](o *BrooksCorey, swe T) T {
	assertSwe(swe)
	return ad.Pow(swe, -1.0/o.Alpha).MulScalar(o.Pe)
}

// BcSw computes the effective saturation; i.e. the inverse of BcPc clamped to [0, 1]
//   Swe = (pc/pe)^(-α)
func BcSw[T ad.Number[T]](o *BrooksCorey, pc T) T {
	assertPc(pc)
	tmp := ad.Pow(pc.MulScalar(1.0/o.Pe), -o.Alpha)
	return ad.Clamp(tmp, 0, 1)
}

// BcDpcDsw computes ∂pc/∂Swe
//   ∂pc/∂Swe = -pe/α・Swe^(-1/α-1)
func BcDpcDsw[T ad.Number[T]](o *BrooksCorey, swe T) T {
	assertSwe(swe)
	return ad.Pow(swe, -1.0/o.Alpha-1.0).MulScalar(-o.Pe / o.Alpha)
}

// BcDswDpc computes ∂Swe/∂pc
//   ∂Swe/∂pc = -α/pe・(pc/pe)^(-α-1)
func BcDswDpc[T ad.Number[T]](o *BrooksCorey, pc T) T {
	assertPc(pc)
	return ad.Pow(pc.MulScalar(1.0/o.Pe), -o.Alpha-1.0).MulScalar(-o.Alpha / o.Pe)
}

// BcKrw computes the relative permeability of the wetting phase
func BcKrw[T ad.Number[T]](o *BrooksCorey, swe T) T {
	assertSwe(swe)
	return ad.Pow(swe, (2.0+3.0*o.Alpha)/o.Alpha)
}

// BcKrn computes the relative permeability of the non-wetting phase
func BcKrn[T ad.Number[T]](o *BrooksCorey, swe T) T {
	assertSwe(swe)
	exponent := (2.0 + o.Alpha) / o.Alpha
	tmp := ad.ScalarSub(1, swe)
	return ad.Sqr(tmp).Mul(ad.ScalarSub(1, ad.Pow(swe, exponent)))
}
