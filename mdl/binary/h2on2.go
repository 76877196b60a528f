// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binary

import (
	"github.com/nairr/opm-material/ad"
	"github.com/nairr/opm-material/mdl/component"
)

// H2oN2HenryCoeffs are the IAPWS coefficients of N2 in H2O
var H2oN2HenryCoeffs = HenryCoeffs{E: 2388.8777, F: -14.9593, G: 42.0179, H: -29.4396}

// H2oN2Henry computes the Henry coefficient [Pa] of N2 dissolved in liquid water
func H2oN2Henry[T ad.Number[T]](temp T) T {
	var h2o component.SimpleH2O[T]
	return HenryIAPWS(H2oN2HenryCoeffs, temp, h2o.VaporPressure(temp))
}

// H2oN2GasDiffCoeff computes the diffusion coefficient [m²/s] of H2O and N2 in the gas phase
func H2oN2GasDiffCoeff[T ad.Number[T]](temp, pres T) T {
	var h2o component.SimpleH2O[T]
	var n2 component.N2[T]
	mm := [2]float64{h2o.MolarMass() * 1e3, n2.MolarMass() * 1e3}
	sigmaNu := [2]float64{13.1, 18.5}
	return FullerMethod(mm, sigmaNu, temp, pres)
}

// H2oN2LiquidDiffCoeff computes the diffusion coefficient [m²/s] of N2 in liquid water
//   D = 2.01e-9・T/298.15
func H2oN2LiquidDiffCoeff[T ad.Number[T]](temp, pres T) T {
	return temp.MulScalar(2.01e-9 / 298.15)
}
