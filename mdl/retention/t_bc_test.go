// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/nairr/opm-material/ad"
)

func Test_bc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bc01. example: pe = 1000 Pa, alpha = 2")

	mdl := new(BrooksCorey)
	err := mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	pc := mdl.Pc(0.5)
	dpc := mdl.DpcDsw(0.5)
	io.Pforan("pc(0.5) = %v  ∂pc/∂Swe(0.5) = %v\n", pc, dpc)
	chk.Float64(tst, "pc(0.5)", 1e-12, pc, 1000*math.Pow(0.5, -0.5))
	chk.Float64(tst, "∂pc/∂Swe(0.5)", 1e-12, dpc, -1000.0/2.0*math.Pow(0.5, -1.5))
	chk.Float64(tst, "pc(0.5) ≈ 1414.2", 0.05, pc, 1414.2)
	chk.Float64(tst, "∂pc/∂Swe(0.5) ≈ -1414.2", 0.05, dpc, -1414.2)

	// with an Evaluation the derivative comes for free
	r := BcPc(mdl, ad.Variable(0.5, 1, 0))
	chk.Float64(tst, "ad: pc", 1e-12, r.Value(), pc)
	chk.Float64(tst, "ad: ∂pc/∂Swe", 1e-10, r.Derivative(0), dpc)
}

func Test_bc02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bc02. inverse consistency")

	mdl := new(BrooksCorey)
	err := mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	for _, swe := range utl.LinSpace(0.01, 1, 100) {
		chk.Float64(tst, io.Sf("Sw(pc(%g))", swe), 1e-13, mdl.Sw(mdl.Pc(swe)), swe)
	}

	// clamping
	chk.Float64(tst, "Sw(0)", 1e-17, mdl.Sw(0), 1)
	chk.Float64(tst, "Sw(pe/2)", 1e-17, mdl.Sw(500), 1)
	s := BcSw(mdl, ad.Variable(500, 1, 0))
	chk.Float64(tst, "∂Sw/∂pc below entry pressure", 1e-17, s.Derivative(0), 0)
	s = BcSw(mdl, ad.Variable(0, 1, 0))
	if ad.IsNaN(s) || math.IsNaN(s.Derivative(0)) {
		tst.Errorf("Sw(0) must not yield NaN: %v\n", s)
	}
}

func Test_bc03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bc03. derivatives")

	mdl, err := New("bc")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	CheckDerivs(tst, mdl, []float64{0.1, 0.3, 0.5, 0.7, 0.9}, 1e-6, chk.Verbose)

	// end points
	chk.Float64(tst, "krw(0)", 1e-17, mdl.Krw(0), 0)
	chk.Float64(tst, "krw(1)", 1e-17, mdl.Krw(1), 1)
	chk.Float64(tst, "krn(0)", 1e-17, mdl.Krn(0), 1)
	chk.Float64(tst, "krn(1)", 1e-17, mdl.Krn(1), 0)
}

func Test_bc04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bc04. parameters")

	var mdl BrooksCorey
	err := mdl.Init(dbf.Params{&dbf.P{N: "pe", V: 1000}, &dbf.P{N: "beta", V: 2}})
	if err == nil {
		tst.Errorf("Init should have failed with wrong parameter name\n")
	}
	err = mdl.Init(dbf.Params{&dbf.P{N: "pe", V: -1}, &dbf.P{N: "alpha", V: 2}})
	if err == nil {
		tst.Errorf("Init should have failed with negative entry pressure\n")
	}
	err = mdl.Init(dbf.Params{&dbf.P{N: "PE", V: 500}, &dbf.P{N: "lam", V: 3}})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	prms := mdl.GetPrms(false)
	chk.Float64(tst, "pe", 1e-17, prms[0].V, 500)
	chk.Float64(tst, "alpha", 1e-17, prms[1].V, 3)

	_, err = New("unknown")
	if err == nil {
		tst.Errorf("New should have failed with unknown model\n")
	}
}
