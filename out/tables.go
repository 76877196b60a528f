// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements tables of material properties and their derivatives
package out

import (
	goio "io"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/gocarina/gocsv"
	"github.com/nairr/opm-material/ad"
	"github.com/nairr/opm-material/mdl/binary"
	"github.com/nairr/opm-material/mdl/conduct"
	"github.com/nairr/opm-material/mdl/fluid"
	"github.com/nairr/opm-material/mdl/retention"
)

// RetentionRow holds one station of a retention table; derivatives are with respect to Sw
type RetentionRow struct {
	Sw      float64 `csv:"sw"`
	Swe     float64 `csv:"swe"`
	Pc      float64 `csv:"pc"`
	DpcDsw  float64 `csv:"dpc_dsw"`
	Krw     float64 `csv:"krw"`
	DkrwDsw float64 `csv:"dkrw_dsw"`
	Krn     float64 `csv:"krn"`
	DkrnDsw float64 `csv:"dkrn_dsw"`
	Klr     float64 `csv:"klr"`
	Kgr     float64 `csv:"kgr"`
}

// FluidRow holds one station of a table of the H2O-N2 fluid system; derivatives are with
// respect to the temperature
type FluidRow struct {
	Temp     float64 `csv:"temp"`
	Pv       float64 `csv:"pv"`
	DpvDT    float64 `csv:"dpv_dT"`
	Henry    float64 `csv:"henry"`
	DhenryDT float64 `csv:"dhenry_dT"`
	RhoL     float64 `csv:"rho_l"`
	RhoG     float64 `csv:"rho_g"`
	DrhoGDT  float64 `csv:"drho_g_dT"`
	MuL      float64 `csv:"mu_l"`
	MuG      float64 `csv:"mu_g"`
	Hl       float64 `csv:"h_l"`
	Hg       float64 `csv:"h_g"`
	Ug       float64 `csv:"u_g"`
	Dl       float64 `csv:"d_l"`
	Dg       float64 `csv:"d_g"`
}

// ColumnRow holds one station of a fluid column
type ColumnRow struct {
	Z    float64 `csv:"z"`
	P    float64 `csv:"p"`
	Rho  float64 `csv:"rho"`
	DpDz float64 `csv:"dp_dz"`
}

// RetentionTable tabulates a retention model for np effective saturations in [sweMin, 1]
//  eff -- converter of saturations; may be nil for zero residual saturations
func RetentionTable(mdl retention.Model, eff *retention.EffToAbs, sweMin float64, np int) (rows []*RetentionRow, err error) {
	if np < 2 {
		return nil, chk.Err("number of points must be at least 2. np = %d is invalid", np)
	}
	if sweMin <= 0 || sweMin >= 1 {
		return nil, chk.Err("minimum effective saturation must be in (0, 1). sweMin = %g is invalid", sweMin)
	}
	if eff == nil {
		eff = new(retention.EffToAbs)
	}
	cnd, err := conduct.NewReten(mdl, eff)
	if err != nil {
		return
	}
	for _, swe := range utl.LinSpace(sweMin, 1, np) {
		sw := ad.Variable(retention.SweToSw(eff, ad.Real(swe)).Value(), 1, 0)
		s := ad.Clamp(retention.SwToSwe(eff, sw), 0, 1)
		pc := retention.Pc(mdl, s)
		krw := retention.Krw(mdl, s)
		krn := retention.Krn(mdl, s)
		rows = append(rows, &RetentionRow{
			Sw:      sw.Value(),
			Swe:     s.Value(),
			Pc:      pc.Value(),
			DpcDsw:  pc.Derivative(0),
			Krw:     krw.Value(),
			DkrwDsw: krw.Derivative(0),
			Krn:     krn.Value(),
			DkrnDsw: krn.Derivative(0),
			Klr:     cnd.Klr(sw.Value()),
			Kgr:     cnd.Kgr(1 - sw.Value()),
		})
	}
	return
}

// FluidTable tabulates the H2O-N2 fluid system for np temperatures in [tmin, tmax]
//  pg  -- gas pressure; also used as the liquid pressure
//  xN2 -- mole fraction of N2 in the gas phase
func FluidTable(tmin, tmax, pg, xN2 float64, np int) (rows []*FluidRow, err error) {
	if np < 2 {
		return nil, chk.Err("number of points must be at least 2. np = %d is invalid", np)
	}
	if tmin <= 0 || tmax <= tmin {
		return nil, chk.Err("temperatures must satisfy 0 < tmin < tmax. tmin = %g and tmax = %g are invalid", tmin, tmax)
	}
	if pg <= 0 {
		return nil, chk.Err("gas pressure must be positive. pg = %g is invalid", pg)
	}
	if xN2 < 0 || xN2 > 1 {
		return nil, chk.Err("mole fraction must be in [0, 1]. xN2 = %g is invalid", xN2)
	}
	var fs fluid.H2oN2[ad.Evaluation]
	for _, t := range utl.LinSpace(tmin, tmax, np) {
		temp := ad.Variable(t, 1, 0)
		p := temp.Const(pg)
		st := fluid.NewState(temp, p, p)
		st.SetMoleFrac(fluid.Gas, fluid.H2O, temp.Const(1-xN2))
		st.SetMoleFrac(fluid.Gas, fluid.N2, temp.Const(xN2))
		st.SetMoleFrac(fluid.Liquid, fluid.H2O, temp.Const(1))
		fs.ComputePartialPressures(temp, p, st)

		pv := fs.DegasPressure(fluid.H2O, temp, p)
		henry := fs.DegasPressure(fluid.N2, temp, p)
		rhoG := fs.PhaseDensity(fluid.Gas, temp, p, st)
		rows = append(rows, &FluidRow{
			Temp:     t,
			Pv:       pv.Value(),
			DpvDT:    pv.Derivative(0),
			Henry:    henry.Value(),
			DhenryDT: henry.Derivative(0),
			RhoL:     fs.PhaseDensity(fluid.Liquid, temp, p, st).Value(),
			RhoG:     rhoG.Value(),
			DrhoGDT:  rhoG.Derivative(0),
			MuL:      fs.PhaseViscosity(fluid.Liquid, temp, p, st).Value(),
			MuG:      fs.PhaseViscosity(fluid.Gas, temp, p, st).Value(),
			Hl:       fs.PhaseEnthalpy(fluid.Liquid, temp, p, st).Value(),
			Hg:       fs.PhaseEnthalpy(fluid.Gas, temp, p, st).Value(),
			Ug:       fs.PhaseInternalEnergy(fluid.Gas, temp, p, st).Value(),
			Dl:       binary.H2oN2LiquidDiffCoeff(temp, p).Value(),
			Dg:       fs.DiffCoeff(fluid.Gas, fluid.H2O, fluid.N2, temp, p, st).Value(),
		})
	}
	return
}

// ColumnTable tabulates pressure and density along a fluid column from z = 0 to z = H
func ColumnTable(col *fluid.Column, np int) (rows []*ColumnRow, err error) {
	if np < 2 {
		return nil, chk.Err("number of points must be at least 2. np = %d is invalid", np)
	}
	for _, z := range utl.LinSpace(0, col.H, np) {
		p, rho := fluid.ColumnCalc(col, ad.Variable(z, 1, 0))
		rows = append(rows, &ColumnRow{Z: z, P: p.Value(), Rho: rho.Value(), DpDz: p.Derivative(0)})
	}
	return
}

// WriteCSV writes rows (a slice of pointers to rows) in CSV format
func WriteCSV(w goio.Writer, rows interface{}) error {
	return gocsv.Marshal(rows, w)
}
