// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package binary implements coefficients of binary mixtures: Henry's law coefficients and
// diffusion coefficients
//  References:
//   [1] IAPWS (2004) Guideline on the Henry's Constant and Vapor-Liquid Distribution Constant
//       for Gases in H2O and D2O at High Temperatures
//   [2] Fuller EN, Schettler PD and Giddings JC (1966) A new method for prediction of binary
//       gas-phase diffusion coefficients. Ind Eng Chem 58(5) 18-27
package binary

import (
	"math"

	"github.com/nairr/opm-material/ad"
)

// HenryCoeffs holds the species dependent coefficients of the IAPWS Henry law [1]
type HenryCoeffs struct {
	E, F, G, H float64
}

// HenryIAPWS computes the Henry coefficient [Pa] of a gas dissolved in water [1]
//   ln(kH/pv) = q・F + E/T・f(τ) + (F + G・τ^(2/3) + H・τ)・exp((273.16 - T)/100)
//  where τ = 1 - T/Tc and f(τ) is the water's saturation function
//  pv -- vapour pressure of water at temperature temp
func HenryIAPWS[T ad.Number[T]](c HenryCoeffs, temp, pv T) T {
	const (
		tcrit = 647.096
		q     = -0.023767
	)
	cf := []float64{1.99274064, 1.09965342, -0.510839303, -1.75493479, -45.5170352, -6.7469445e5}
	df := []float64{1.0 / 3.0, 2.0 / 3.0, 5.0 / 3.0, 16.0 / 3.0, 43.0 / 3.0, 110.0 / 3.0}

	τ := ad.ScalarSub(1, temp.MulScalar(1.0/tcrit))
	f := temp.Const(0)
	for i := range cf {
		f = f.Add(ad.Pow(τ, df[i]).MulScalar(cf[i]))
	}

	e := ad.ScalarDiv(c.E, temp).Mul(f).AddScalar(q * c.F)
	g := ad.Pow(τ, 2.0/3.0).MulScalar(c.G).Add(τ.MulScalar(c.H)).AddScalar(c.F)
	e = e.Add(g.Mul(ad.Exp(ad.ScalarSub(273.16, temp).MulScalar(0.01))))
	return ad.Exp(e).Mul(pv)
}

// FullerMethod computes the binary diffusion coefficient [m²/s] of gases A and B [2]
//   D = 1e-4・0.00143・T^1.75 / (p[bar]・√Mab・(Σvₐ^(1/3) + Σv_b^(1/3))²)
//  with Mab = 2/(1/Ma + 1/Mb) in [g/mol]
//  molarMass -- molar masses [g/mol]
//  sigmaNu   -- atomic diffusion volumes
func FullerMethod[T ad.Number[T]](molarMass, sigmaNu [2]float64, temp, pres T) T {
	mab := 2.0 / (1.0/molarMass[0] + 1.0/molarMass[1])
	s := math.Cbrt(sigmaNu[0]) + math.Cbrt(sigmaNu[1])
	den := pres.MulScalar(1e-5 * math.Sqrt(mab) * s * s)
	return ad.Pow(temp, 1.75).Div(den).MulScalar(1e-4 * 0.00143)
}
