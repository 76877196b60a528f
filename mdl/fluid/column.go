// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/nairr/opm-material/ad"
)

// Column computes the pressure (p) and intrinsic density (R) of a fluid along a column
// with gravity (g) where the fluid is linearly compressible:
//   R(p) = R0 + C・(p - p0)   thus   dR/dp = C
//  Units are SI: [kg/m³], [Pa], [kg/(m³・Pa)], [m] and [m/s²]
type Column struct {

	// material data
	R0  float64 // intrinsic density corresponding to p0
	P0  float64 // pressure corresponding to R0
	C   float64 // compressibility coefficient; e.g. R0/Kbulk or M/(R・θ)
	Gas bool    // is gas instead of liquid?

	// additional data
	H    float64 // elevation where (R0,p0) is known
	Grav float64 // gravity acceleration (positive constant)
}

// Init initialises this structure
func (o *Column) Init(prms dbf.Params, H, grav float64) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "r0":
			o.R0 = p.V
		case "p0":
			o.P0 = p.V
		case "c":
			o.C = p.V
		case "gas":
			o.Gas = p.V > 0
		default:
			return chk.Err("column: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.R0 <= 0 || o.C <= 0 {
		return chk.Err("column: R0 and C must be positive. R0 = %g and C = %g are invalid\n", o.R0, o.C)
	}
	if H < 0 || grav < 0 {
		return chk.Err("column: height and gravity must be non-negative. H = %g and grav = %g are invalid\n", H, grav)
	}
	o.H = H
	o.Grav = grav
	return
}

// GetPrms gets (an example of) parameters
//  Input:
//   example -- returns example of parameters; othewise returs current parameters
//  Note:
//   Gas variable is used to return dry air properties instead of water
func (o Column) GetPrms(example bool) dbf.Params {
	if example {
		if o.Gas {
			return dbf.Params{ // dry air
				&dbf.P{N: "R0", V: 1.2},    // [kg/m³]
				&dbf.P{N: "P0", V: 0.0},    // [Pa]
				&dbf.P{N: "C", V: 1.17e-5}, // [kg/(m³・Pa)]
				&dbf.P{N: "Gas", V: 1},     // [-]
			}
		}
		return dbf.Params{ // water
			&dbf.P{N: "R0", V: 1000.0}, // [kg/m³]
			&dbf.P{N: "P0", V: 0.0},    // [Pa]
			&dbf.P{N: "C", V: 4.53e-7}, // [kg/(m³・Pa)]
			&dbf.P{N: "Gas", V: 0},     // [-]
		}
	}
	var gas float64
	if o.Gas {
		gas = 1
	}
	return dbf.Params{
		&dbf.P{N: "R0", V: o.R0},
		&dbf.P{N: "P0", V: o.P0},
		&dbf.P{N: "C", V: o.C},
		&dbf.P{N: "Gas", V: gas},
	}
}

// Calc computes pressure and density at elevation z
func (o Column) Calc(z float64) (p, R float64) {
	pp, rr := ColumnCalc(&o, ad.Real(z))
	return pp.Value(), rr.Value()
}

// ColumnCalc computes pressure and density at elevation z
//   p = p0 + R0/C・(exp(C・g・(H - z)) - 1)
func ColumnCalc[T ad.Number[T]](o *Column, z T) (p, R T) {
	e := ad.Exp(ad.ScalarSub(o.H, z).MulScalar(o.C * o.Grav))
	p = e.AddScalar(-1).MulScalar(o.R0 / o.C).AddScalar(o.P0)
	R = p.AddScalar(-o.P0).MulScalar(o.C).AddScalar(o.R0)
	return
}
