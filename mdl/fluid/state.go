// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/nairr/opm-material/ad"
)

// State holds the thermodynamic state of the two phases
type State[T ad.Number[T]] struct {
	Temperature T            // [K]
	Pressure    [NumPhases]T // phase pressures [Pa]

	moleFrac        [NumPhases][NumComponents]T // x[phase][comp]
	partialPressure [NumComponents]T            // partial pressures in the gas phase [Pa]
}

// NewState returns a new state with all mole fractions and partial pressures set to zero
//  The zeros carry as many derivatives as temp
func NewState[T ad.Number[T]](temp, pl, pg T) *State[T] {
	o := &State[T]{Temperature: temp}
	o.Pressure[Liquid] = pl
	o.Pressure[Gas] = pg
	zero := temp.Const(0)
	for α := 0; α < NumPhases; α++ {
		for i := 0; i < NumComponents; i++ {
			o.moleFrac[α][i] = zero
		}
	}
	for i := 0; i < NumComponents; i++ {
		o.partialPressure[i] = zero
	}
	return o
}

// SetMoleFrac sets the mole fraction of component comp in phase
func (o *State[T]) SetMoleFrac(phase, comp int, x T) {
	checkPhase(phase)
	checkComp(comp)
	o.moleFrac[phase][comp] = x
}

// MoleFrac returns the mole fraction of component comp in phase
func (o *State[T]) MoleFrac(phase, comp int) T {
	checkPhase(phase)
	checkComp(comp)
	return o.moleFrac[phase][comp]
}

// MeanMolarMass returns Σ xᵢ・Mᵢ of phase [kg/mol]
func (o *State[T]) MeanMolarMass(phase int) T {
	checkPhase(phase)
	res := o.moleFrac[phase][0].MulScalar(molarMass(0))
	for i := 1; i < NumComponents; i++ {
		res = res.Add(o.moleFrac[phase][i].MulScalar(molarMass(i)))
	}
	return res
}

// MassFrac returns the mass fraction of component comp in phase
//   Xᵢ = xᵢ・Mᵢ / Σ xⱼ・Mⱼ
func (o *State[T]) MassFrac(phase, comp int) T {
	checkComp(comp)
	return o.MoleFrac(phase, comp).MulScalar(molarMass(comp)).Div(o.MeanMolarMass(phase))
}

// SetPartialPressure sets the partial pressure of component comp in the gas phase
func (o *State[T]) SetPartialPressure(comp int, p T) {
	checkComp(comp)
	o.partialPressure[comp] = p
}

// PartialPressure returns the partial pressure of component comp in the gas phase
func (o *State[T]) PartialPressure(comp int) T {
	checkComp(comp)
	return o.partialPressure[comp]
}

func checkPhase(phase int) {
	if phase < 0 || phase >= NumPhases {
		chk.Panic("fluid: invalid phase index %d", phase)
	}
}

func checkComp(comp int) {
	if comp < 0 || comp >= NumComponents {
		chk.Panic("fluid: invalid component index %d", comp)
	}
}
