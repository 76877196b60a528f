// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import (
	"github.com/cpmech/gosl/chk"
	"github.com/nairr/opm-material/ad"
)

// constants for N2
const (
	n2MolarMass = 28.0134e-3 // [kg/mol]
	n2Tcrit     = 126.192    // [K]
	n2Pcrit     = 3.39858e6  // [Pa]
	n2Ttriple   = 63.151     // [K]
	n2Ptriple   = 12.523e3   // [Pa]
	n2Vcrit     = 90.1       // critical molar volume [cm³/mol]
	n2Acentric  = 0.037      // acentric factor
)

// N2 implements molecular nitrogen as an ideal gas
//  Liquid nitrogen is not covered; the liquid properties panic
type N2[T ad.Number[T]] struct{}

func (o N2[T]) Name() string                 { return "N2" }
func (o N2[T]) MolarMass() float64           { return n2MolarMass }
func (o N2[T]) CriticalTemperature() float64 { return n2Tcrit }
func (o N2[T]) CriticalPressure() float64    { return n2Pcrit }
func (o N2[T]) TripleTemperature() float64   { return n2Ttriple }
func (o N2[T]) TriplePressure() float64      { return n2Ptriple }

// VaporPressure computes the vapour pressure of nitrogen [2]
//  Returns pcrit above the critical temperature and 0 below the triple point
func (o N2[T]) VaporPressure(temp T) T {
	if temp.Value() > n2Tcrit {
		return temp.Const(n2Pcrit)
	}
	if temp.Value() < n2Ttriple {
		return temp.Const(0)
	}
	const (
		a1 = -6.12445284
		a2 = 1.26327220
		a3 = -0.765910082
		a4 = -1.77570564
	)
	σ := ad.ScalarSub(1, temp.MulScalar(1.0/n2Tcrit))
	sqrtσ := ad.Sqrt(σ)
	σ3 := σ.Mul(σ).Mul(σ)
	poly := sqrtσ.MulScalar(a2).AddScalar(a1).Add(σ.Mul(sqrtσ.MulScalar(a3).Add(σ3.MulScalar(a4))))
	return ad.Exp(ad.ScalarDiv(n2Tcrit, temp).Mul(σ.Mul(poly))).MulScalar(n2Pcrit)
}

// GasDensity computes the density of nitrogen as an ideal gas
func (o N2[T]) GasDensity(temp, pres T) T {
	return IdealGasDensity(temp.Const(n2MolarMass), temp, pres)
}

// GasPressure computes the pressure of nitrogen as an ideal gas
func (o N2[T]) GasPressure(temp, rho T) T {
	return IdealGasPressure(temp, rho.MulScalar(1.0/n2MolarMass))
}

// GasEnthalpy computes the specific enthalpy of nitrogen gas by integrating the heat
// capacity of Joback's method [3] from 0 K
func (o N2[T]) GasEnthalpy(temp, pres T) T {
	const (
		cpA = 31.15
		cpB = -0.01357
		cpC = 2.680e-5
		cpD = -1.168e-8
	)
	// T・(A + T・(B/2 + T・(C/3 + T・D/4)))
	h := temp.MulScalar(cpD / 4).AddScalar(cpC / 3)
	h = h.Mul(temp).AddScalar(cpB / 2)
	h = h.Mul(temp).AddScalar(cpA)
	return h.Mul(temp).MulScalar(1.0 / n2MolarMass)
}

// GasViscosity computes the viscosity of nitrogen gas with Chung's method
func (o N2[T]) GasViscosity(temp, pres T) T {
	return chungViscosity(temp, n2Tcrit, n2Vcrit, n2Acentric, 0, n2MolarMass)
}

// LiquidDensity is not available
func (o N2[T]) LiquidDensity(temp, pres T) T {
	chk.Panic("n2: liquid density is not available")
	return temp
}

// LiquidPressure is not available
func (o N2[T]) LiquidPressure(temp, rho T) T {
	chk.Panic("n2: liquid pressure is not available")
	return temp
}

// LiquidEnthalpy is not available
func (o N2[T]) LiquidEnthalpy(temp, pres T) T {
	chk.Panic("n2: liquid enthalpy is not available")
	return temp
}

// LiquidViscosity is not available
func (o N2[T]) LiquidViscosity(temp, pres T) T {
	chk.Panic("n2: liquid viscosity is not available")
	return temp
}

var (
	_ Component[ad.Real]       = SimpleH2O[ad.Real]{}
	_ Component[ad.Evaluation] = N2[ad.Evaluation]{}
)
