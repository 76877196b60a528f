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

// EffToAbs converts absolute saturations to effective ones and vice-versa
//   Swe = (Sw - Swr) / (1 - Swr - Snr)
type EffToAbs struct {
	Swr float64 // residual saturation of the wetting phase
	Snr float64 // residual saturation of the non-wetting phase
}

// Init initialises this structure
func (o *EffToAbs) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "swr":
			o.Swr = p.V
		case "snr":
			o.Snr = p.V
		default:
			return chk.Err("efftoabs: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Swr < 0 || o.Snr < 0 || o.Swr+o.Snr >= 1 {
		return chk.Err("efftoabs: residual saturations must satisfy 0 ≤ Swr, 0 ≤ Snr and Swr + Snr < 1. Swr = %g and Snr = %g are invalid\n", o.Swr, o.Snr)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o EffToAbs) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "swr", V: 0.05},
			&dbf.P{N: "snr", V: 0.0},
		}
	}
	return dbf.Params{
		&dbf.P{N: "swr", V: o.Swr},
		&dbf.P{N: "snr", V: o.Snr},
	}
}

// DsweDsw returns ∂Swe/∂Sw
func (o EffToAbs) DsweDsw() float64 {
	return 1.0 / (1.0 - o.Swr - o.Snr)
}

// SwToSwe converts the absolute wetting saturation into the effective one
func SwToSwe[T ad.Number[T]](o *EffToAbs, sw T) T {
	return sw.AddScalar(-o.Swr).MulScalar(o.DsweDsw())
}

// SweToSw converts the effective wetting saturation into the absolute one
func SweToSw[T ad.Number[T]](o *EffToAbs, swe T) T {
	return swe.MulScalar(1.0 - o.Swr - o.Snr).AddScalar(o.Swr)
}
