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

// Lin implements a linear law: pc(Swe) := pcae + (1 - Swe)・(pcmax - pcae)
//  The relative permeabilities are krw = Swe and krn = 1 - Swe, both clamped to [0, 1]
type Lin struct {
	pcae  float64 // air-entry pressure; pc at Swe = 1
	pcmax float64 // maximum capillary pressure; pc at Swe = 0
}

// add model to factory
func init() {
	allocators["lin"] = func() Model { return new(Lin) }
}

// Init initialises model
func (o *Lin) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "pcae":
			o.pcae = p.V
		case "pcmax":
			o.pcmax = p.V
		default:
			return chk.Err("lin: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.pcmax <= o.pcae {
		return chk.Err("lin: pcmax must be greater than pcae. pcmax = %g and pcae = %g are invalid\n", o.pcmax, o.pcae)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Lin) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "pcae", V: 200},
			&dbf.P{N: "pcmax", V: 2e4},
		}
	}
	return dbf.Params{
		&dbf.P{N: "pcae", V: o.pcae},
		&dbf.P{N: "pcmax", V: o.pcmax},
	}
}

// Pc computes pc(Swe)
func (o Lin) Pc(swe float64) float64 { return LinPc(&o, ad.Real(swe)).Value() }

// Sw computes Swe(pc)
func (o Lin) Sw(pc float64) float64 { return LinSw(&o, ad.Real(pc)).Value() }

// DpcDsw computes ∂pc/∂Swe
func (o Lin) DpcDsw(swe float64) float64 { return o.pcae - o.pcmax }

// DswDpc computes ∂Swe/∂pc
func (o Lin) DswDpc(pc float64) float64 {
	if pc <= o.pcae || pc >= o.pcmax {
		return 0
	}
	return 1.0 / (o.pcae - o.pcmax)
}

// Krw computes krw(Swe)
func (o Lin) Krw(swe float64) float64 { return LinKrw(&o, ad.Real(swe)).Value() }

// Krn computes krn(Swe)
func (o Lin) Krn(swe float64) float64 { return LinKrn(&o, ad.Real(swe)).Value() }

// LinPc computes the capillary pressure
func LinPc[T ad.Number[T]](o *Lin, swe T) T {
	assertSwe(swe)
	return ad.ScalarSub(1, swe).MulScalar(o.pcmax - o.pcae).AddScalar(o.pcae)
}

// LinSw computes the effective saturation clamped to [0, 1]
func LinSw[T ad.Number[T]](o *Lin, pc T) T {
	assertPc(pc)
	swe := ad.ScalarSub(1, pc.AddScalar(-o.pcae).MulScalar(1.0/(o.pcmax-o.pcae)))
	return ad.Clamp(swe, 0, 1)
}

// LinKrw computes the relative permeability of the wetting phase
func LinKrw[T ad.Number[T]](o *Lin, swe T) T {
	return ad.Clamp(swe, 0, 1)
}

// LinKrn computes the relative permeability of the non-wetting phase
func LinKrn[T ad.Number[T]](o *Lin, swe T) T {
	return ad.Clamp(ad.ScalarSub(1, swe), 0, 1)
}
