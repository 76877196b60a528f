// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/nairr/opm-material/ad"
	"github.com/nairr/opm-material/mdl/retention"
)

func Test_reten01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("reten01. conductivities from Brooks-Corey")

	lrm := new(retention.BrooksCorey)
	err := lrm.Init(lrm.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	eff := &retention.EffToAbs{Swr: 0.1, Snr: 0.05}

	var mdl Model
	mdl, err = NewReten(lrm, eff)
	if err != nil {
		tst.Errorf("NewReten failed: %v\n", err)
		return
	}

	// residual saturations
	chk.Float64(tst, "klr(Swr)", 1e-15, mdl.Klr(0.1), 0)
	chk.Float64(tst, "klr(1-Snr)", 1e-15, mdl.Klr(0.95), 1)
	chk.Float64(tst, "kgr(Snr)", 1e-15, mdl.Kgr(0.05), 0)
	chk.Float64(tst, "kgr(1-Swr)", 1e-15, mdl.Kgr(0.9), 1)

	// derivatives
	for _, s := range utl.LinSpace(0.2, 0.8, 7) {
		swe := retention.SwToSwe(eff, ad.Real(s)).Value()
		chk.Float64(tst, io.Sf("klr(%g)", s), 1e-15, mdl.Klr(s), lrm.Krw(swe))
		checkDeriv(tst, io.Sf("∂klr/∂sl @ %g", s), 1e-6, mdl.DklrDsl(s), s, mdl.Klr)
		checkDeriv(tst, io.Sf("∂kgr/∂sg @ %g", s), 1e-6, mdl.DkgrDsg(s), s, mdl.Kgr)
	}

	if _, err = NewReten(nil, nil); err == nil {
		tst.Errorf("nil retention model should have failed\n")
	}
}
