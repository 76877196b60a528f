// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package component implements properties of pure chemical species
//  All quantities are given in SI units: temperature [K], pressure [Pa], density [kg/m³],
//  enthalpy [J/kg] and viscosity [Pa・s]. The type parameter T selects plain values (ad.Real)
//  or values with derivatives (ad.Evaluation).
//  References:
//   [1] Wagner W et al. (2000) The IAPWS Industrial Formulation 1997 for the Thermodynamic
//       Properties of Water and Steam. J Eng Gas Turbines Power 122(1) 150-182
//   [2] Span R et al. (2000) A Reference Equation of State for the Thermodynamic Properties
//       of Nitrogen. J Phys Chem Ref Data 29(6) 1361-1433
//   [3] Poling BE, Prausnitz JM and O'Connell JP (2001) The Properties of Gases and Liquids,
//       5th edn. McGraw-Hill
package component

import (
	"math"

	"github.com/nairr/opm-material/ad"
)

// Component defines the properties of a pure chemical species
type Component[T ad.Number[T]] interface {
	Name() string                    // human readable name
	MolarMass() float64              // molar mass [kg/mol]
	CriticalTemperature() float64    // [K]
	CriticalPressure() float64       // [Pa]
	TripleTemperature() float64      // [K]
	TriplePressure() float64         // [Pa]
	VaporPressure(temp T) T          // saturation pressure at temp
	GasDensity(temp, pres T) T       // density of the pure gas
	LiquidDensity(temp, pres T) T    // density of the pure liquid
	GasPressure(temp, rho T) T       // pressure of the pure gas given its density
	LiquidPressure(temp, rho T) T    // pressure of the pure liquid given its density
	GasEnthalpy(temp, pres T) T      // specific enthalpy of the pure gas
	LiquidEnthalpy(temp, pres T) T   // specific enthalpy of the pure liquid
	GasViscosity(temp, pres T) T     // dynamic viscosity of the pure gas
	LiquidViscosity(temp, pres T) T  // dynamic viscosity of the pure liquid
}

// chungViscosity computes the viscosity of a gas using the method of Chung et al. [3]
//  tc     -- critical temperature [K]
//  vc     -- critical molar volume [cm³/mol]
//  ω      -- acentric factor
//  dipole -- dipole moment [debye]
//  mm     -- molar mass [kg/mol]
func chungViscosity[T ad.Number[T]](temp T, tc, vc, ω, dipole, mm float64) T {
	μr := 131.3 * dipole / math.Sqrt(vc*tc)
	μr4 := μr * μr * μr * μr
	fc := 1.0 - 0.2756*ω + 0.059035*μr4
	tstar := temp.MulScalar(1.2593 / tc)
	Ωv := ad.Pow(tstar, -0.14874).MulScalar(1.16145).
		Add(ad.Exp(tstar.MulScalar(-0.77320)).MulScalar(0.52487)).
		Add(ad.Exp(tstar.MulScalar(-2.43787)).MulScalar(2.16178))
	μ := ad.Sqrt(temp.MulScalar(mm * 1e3)).MulScalar(40.785 * fc / math.Pow(vc, 2.0/3.0)).Div(Ωv)
	return μ.MulScalar(1e-7) // μP → Pa・s
}
