// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements fluid systems and models for fluid density
package fluid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/nairr/opm-material/ad"
	"github.com/nairr/opm-material/mdl/binary"
	"github.com/nairr/opm-material/mdl/component"
)

// phase indices
const (
	Liquid = 0 // liquid phase; the wetting phase
	Gas    = 1 // gas phase; the non-wetting phase

	Wetting    = Liquid
	NonWetting = Gas

	NumPhases = 2
)

// component indices
const (
	H2O = 0
	N2  = 1

	NumComponents = 2
)

// molarMass returns the molar mass of component comp [kg/mol]
func molarMass(comp int) float64 {
	switch comp {
	case H2O:
		return component.SimpleH2O[ad.Real]{}.MolarMass()
	case N2:
		return component.N2[ad.Real]{}.MolarMass()
	}
	chk.Panic("fluid: invalid component index %d", comp)
	return 0
}

// H2oN2 implements a fluid system with a liquid and a gas phase, both made of water and
// molecular nitrogen. The gas phase is an ideal mixture of ideal gases
type H2oN2[T ad.Number[T]] struct {
	h2o component.SimpleH2O[T]
	n2  component.N2[T]
}

// ComponentName returns the human readable name of a component
func (o H2oN2[T]) ComponentName(comp int) string {
	switch comp {
	case H2O:
		return o.h2o.Name()
	case N2:
		return o.n2.Name()
	}
	chk.Panic("fluid: invalid component index %d", comp)
	return ""
}

// MolarMass returns the molar mass of a component [kg/mol]
func (o H2oN2[T]) MolarMass(comp int) float64 {
	return molarMass(comp)
}

// ComputePartialPressures computes the partial pressures of all components in the gas
// phase from its composition and stores them in st
//   pᵢ = pg・xᵢ
func (o H2oN2[T]) ComputePartialPressures(temp, pg T, st *State[T]) {
	for i := 0; i < NumComponents; i++ {
		st.SetPartialPressure(i, pg.Mul(st.MoleFrac(Gas, i)))
	}
}

// PhaseDensity returns the density of a phase [kg/m³]
//  The liquid is pure water; the gas is an ideal gas with the mean molar mass of st
func (o H2oN2[T]) PhaseDensity(phase int, temp, pres T, st *State[T]) T {
	switch phase {
	case Liquid:
		return o.h2o.LiquidDensity(temp, pres)
	case Gas:
		return component.IdealGasDensity(st.MeanMolarMass(Gas), temp, pres)
	}
	chk.Panic("fluid: invalid phase index %d", phase)
	return temp
}

// PhaseViscosity returns the dynamic viscosity of a phase [Pa・s]
//  The liquid is taken as pure water and the gas as pure nitrogen
func (o H2oN2[T]) PhaseViscosity(phase int, temp, pres T, st *State[T]) T {
	switch phase {
	case Liquid:
		return o.h2o.LiquidViscosity(temp, pres)
	case Gas:
		return o.n2.GasViscosity(temp, pres)
	}
	chk.Panic("fluid: invalid phase index %d", phase)
	return temp
}

// DegasPressure returns ∂pᵢ/∂xᵢ, the derivative of the equilibrium partial pressure of a
// component with respect to its mole fraction in the liquid. This is the vapour pressure
// for the solvent and the Henry coefficient for the solute
func (o H2oN2[T]) DegasPressure(comp int, temp, pres T) T {
	switch comp {
	case H2O:
		return o.h2o.VaporPressure(temp)
	case N2:
		return binary.H2oN2Henry(temp)
	}
	chk.Panic("fluid: invalid component index %d", comp)
	return temp
}

// ComponentDensity returns the density of a pure component in a phase [kg/m³]
//  Note: liquid nitrogen is not available and panics
func (o H2oN2[T]) ComponentDensity(phase, comp int, temp, pres T) T {
	checkComp(comp)
	switch phase {
	case Liquid:
		if comp == H2O {
			return o.h2o.LiquidDensity(temp, pres)
		}
		return o.n2.LiquidDensity(temp, pres)
	case Gas:
		if comp == H2O {
			return o.h2o.GasDensity(temp, pres)
		}
		return o.n2.GasDensity(temp, pres)
	}
	chk.Panic("fluid: invalid phase index %d", phase)
	return temp
}

// ComponentPressure returns the pressure of a pure component in a phase given its density [Pa]
//  Note: liquid nitrogen is not available and panics
func (o H2oN2[T]) ComponentPressure(phase, comp int, temp, rho T) T {
	checkComp(comp)
	switch phase {
	case Liquid:
		if comp == H2O {
			return o.h2o.LiquidPressure(temp, rho)
		}
		return o.n2.LiquidPressure(temp, rho)
	case Gas:
		if comp == H2O {
			return o.h2o.GasPressure(temp, rho)
		}
		return o.n2.GasPressure(temp, rho)
	}
	chk.Panic("fluid: invalid phase index %d", phase)
	return temp
}

// DiffCoeff returns the binary diffusion coefficient of components compI and compJ in a
// phase [m²/s]. The order of components does not matter
func (o H2oN2[T]) DiffCoeff(phase, compI, compJ int, temp, pres T, st *State[T]) T {
	checkPhase(phase)
	checkComp(compI)
	checkComp(compJ)
	if compI == compJ {
		chk.Panic("fluid: binary diffusion coefficient of component %d with itself is undefined", compI)
	}
	if phase == Liquid {
		return binary.H2oN2LiquidDiffCoeff(temp, pres)
	}
	return binary.H2oN2GasDiffCoeff(temp, pres)
}

// PhaseEnthalpy returns the specific enthalpy of a phase [J/kg]
//  The liquid is taken as pure water; the gas enthalpy is the mass weighted sum of the
//  components' enthalpies at their partial pressures
func (o H2oN2[T]) PhaseEnthalpy(phase int, temp, pres T, st *State[T]) T {
	switch phase {
	case Liquid:
		return o.h2o.LiquidEnthalpy(temp, pres)
	case Gas:
		hw := o.h2o.GasEnthalpy(temp, st.PartialPressure(H2O)).Mul(st.MassFrac(Gas, H2O))
		hn := o.n2.GasEnthalpy(temp, st.PartialPressure(N2)).Mul(st.MassFrac(Gas, N2))
		return hw.Add(hn)
	}
	chk.Panic("fluid: invalid phase index %d", phase)
	return temp
}

// PhaseInternalEnergy returns the specific internal energy of a phase [J/kg]
//   u = h - p/ρ
func (o H2oN2[T]) PhaseInternalEnergy(phase int, temp, pres T, st *State[T]) T {
	h := o.PhaseEnthalpy(phase, temp, pres, st)
	return h.Sub(pres.Div(o.PhaseDensity(phase, temp, pres, st)))
}
