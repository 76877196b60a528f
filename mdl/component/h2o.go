// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import "github.com/nairr/opm-material/ad"

// constants for SimpleH2O
const (
	h2oMolarMass   = 18e-3     // [kg/mol]
	h2oTcrit       = 647.096   // [K]
	h2oPcrit       = 22.064e6  // [Pa]
	h2oTtriple     = 273.16    // [K]
	h2oPtriple     = 611.657   // [Pa]
	h2oRhoRef      = 1000.0    // liquid density at h2oPref [kg/m³]
	h2oPref        = 1e5       // reference pressure of the liquid [Pa]
	h2oCompress    = 4.53e-7   // liquid compressibility coefficient: ∂ρ/∂p [kg/(m³・Pa)]
	h2oMuLiq       = 1e-3      // liquid viscosity [Pa・s]
	h2oCpLiq       = 4180.0    // specific heat of the liquid [J/(kg・K)]
	h2oCpVap       = 1846.0    // specific heat of the vapour [J/(kg・K)]
	h2oHvap0       = 2501000.0 // latent heat at 0°C [J/kg]
	h2oTenthalpy0  = 273.15    // temperature with zero liquid enthalpy [K]
	h2oVcrit       = 56.3      // critical molar volume [cm³/mol]
	h2oAcentric    = 0.344     // acentric factor
	h2oDipoleDebye = 1.8       // dipole moment [debye]
)

// SimpleH2O implements a simplified model of water
//  The vapour pressure follows the IAPWS-97 saturation line [1]; the liquid is slightly
//  compressible with ρ = ρ₀ + C・(p - p₀); the vapour is an ideal gas
type SimpleH2O[T ad.Number[T]] struct{}

func (o SimpleH2O[T]) Name() string                 { return "H2O" }
func (o SimpleH2O[T]) MolarMass() float64           { return h2oMolarMass }
func (o SimpleH2O[T]) CriticalTemperature() float64 { return h2oTcrit }
func (o SimpleH2O[T]) CriticalPressure() float64    { return h2oPcrit }
func (o SimpleH2O[T]) TripleTemperature() float64   { return h2oTtriple }
func (o SimpleH2O[T]) TriplePressure() float64      { return h2oPtriple }

// VaporPressure computes the saturation pressure using the IAPWS-97 region 4 equation
//  Returns pcrit above the critical temperature and 0 below the triple point
func (o SimpleH2O[T]) VaporPressure(temp T) T {
	if temp.Value() > h2oTcrit {
		return temp.Const(h2oPcrit)
	}
	if temp.Value() < h2oTtriple {
		return temp.Const(0)
	}
	n := []float64{
		0.11670521452767e4, -0.72421316703206e6, -0.17073846940092e2,
		0.12020824702470e5, -0.32325550322333e7, 0.14915108613530e2,
		-0.48232657361591e4, 0.40511340542057e6, -0.23855557567849,
		0.65017534844798e3,
	}
	σ := temp.Add(ad.ScalarDiv(n[8], temp.AddScalar(-n[9])))
	A := σ.AddScalar(n[0]).Mul(σ).AddScalar(n[1])
	B := σ.MulScalar(n[2]).AddScalar(n[3]).Mul(σ).AddScalar(n[4])
	C := σ.MulScalar(n[5]).AddScalar(n[6]).Mul(σ).AddScalar(n[7])
	disc := ad.Sqrt(B.Mul(B).Sub(A.Mul(C).MulScalar(4)))
	tmp := C.MulScalar(2).Div(disc.Sub(B))
	tmp = tmp.Mul(tmp)
	tmp = tmp.Mul(tmp)
	return tmp.MulScalar(1e6)
}

// GasDensity computes the density of steam as an ideal gas
func (o SimpleH2O[T]) GasDensity(temp, pres T) T {
	return IdealGasDensity(temp.Const(h2oMolarMass), temp, pres)
}

// GasPressure computes the pressure of steam as an ideal gas
func (o SimpleH2O[T]) GasPressure(temp, rho T) T {
	return IdealGasPressure(temp, rho.MulScalar(1.0/h2oMolarMass))
}

// LiquidDensity computes ρ = ρ₀ + C・(p - p₀)
func (o SimpleH2O[T]) LiquidDensity(temp, pres T) T {
	return pres.AddScalar(-h2oPref).MulScalar(h2oCompress).AddScalar(h2oRhoRef)
}

// LiquidPressure computes p = p₀ + (ρ - ρ₀)/C
func (o SimpleH2O[T]) LiquidPressure(temp, rho T) T {
	return rho.AddScalar(-h2oRhoRef).MulScalar(1.0 / h2oCompress).AddScalar(h2oPref)
}

// GasEnthalpy computes the specific enthalpy of steam
//   h = hvap₀ + cpᵥ・(T - 273.15)
func (o SimpleH2O[T]) GasEnthalpy(temp, pres T) T {
	return temp.AddScalar(-h2oTenthalpy0).MulScalar(h2oCpVap).AddScalar(h2oHvap0)
}

// LiquidEnthalpy computes the specific enthalpy of liquid water
//   h = cpₗ・(T - 273.15)
func (o SimpleH2O[T]) LiquidEnthalpy(temp, pres T) T {
	return temp.AddScalar(-h2oTenthalpy0).MulScalar(h2oCpLiq)
}

// GasViscosity computes the viscosity of steam with Chung's method
func (o SimpleH2O[T]) GasViscosity(temp, pres T) T {
	return chungViscosity(temp, h2oTcrit, h2oVcrit, h2oAcentric, h2oDipoleDebye, h2oMolarMass)
}

// LiquidViscosity returns a constant viscosity
func (o SimpleH2O[T]) LiquidViscosity(temp, pres T) T {
	return temp.Const(h2oMuLiq)
}
