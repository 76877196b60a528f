// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import "github.com/nairr/opm-material/ad"

// R is the universal gas constant [J/(mol・K)]
const R = 8.314472

// IdealGasDensity computes the density [kg/m³] of an ideal gas
//   ρ = p・M / (R・T)
//  mm -- (mean) molar mass [kg/mol]
func IdealGasDensity[T ad.Number[T]](mm, temp, pres T) T {
	return pres.Mul(mm).Div(temp).MulScalar(1.0 / R)
}

// IdealGasMolarDensity computes the molar density [mol/m³] of an ideal gas
//   c = p / (R・T)
func IdealGasMolarDensity[T ad.Number[T]](temp, pres T) T {
	return pres.Div(temp).MulScalar(1.0 / R)
}

// IdealGasPressure computes the pressure [Pa] of an ideal gas
//   p = c・R・T
//  rhoMolar -- molar density [mol/m³]
func IdealGasPressure[T ad.Number[T]](temp, rhoMolar T) T {
	return rhoMolar.Mul(temp).MulScalar(R)
}
