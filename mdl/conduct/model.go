// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package conduct implements models for liquid and gas conductivity in porous media
package conduct

import (
	"github.com/cpmech/gosl/chk"
	"github.com/nairr/opm-material/ad"
	"github.com/nairr/opm-material/mdl/retention"
)

// Model defines liquid-gas conductivity models
type Model interface {
	Klr(sl float64) float64     // Klr returns klr
	Kgr(sg float64) float64     // Kgr returns kgr
	DklrDsl(sl float64) float64 // DklrDsl returns ∂klr/∂sl
	DkgrDsg(sg float64) float64 // DkgrDsg returns ∂kgr/∂sg
}

// Reten computes the relative conductivities from the relative permeabilities of a
// retention model; i.e. klr = krw(Swe(sl)) and kgr = krn(Swe(1 - sg))
//  sl and sg are absolute saturations of liquid and gas
type Reten struct {
	Lrm retention.Model     // retention model
	Eff *retention.EffToAbs // converter of saturations
}

// NewReten returns a new conductivity model based on a retention model
//  eff -- converter of saturations; may be nil for zero residual saturations
func NewReten(lrm retention.Model, eff *retention.EffToAbs) (o *Reten, err error) {
	if lrm == nil {
		return nil, chk.Err("conduct: retention model must be given")
	}
	if eff == nil {
		eff = new(retention.EffToAbs)
	}
	return &Reten{lrm, eff}, nil
}

// Klr returns klr
func (o Reten) Klr(sl float64) float64 { return o.klr(ad.Variable(sl, 1, 0)).Value() }

// Kgr returns kgr
func (o Reten) Kgr(sg float64) float64 { return o.kgr(ad.Variable(sg, 1, 0)).Value() }

// DklrDsl returns ∂klr/∂sl
func (o Reten) DklrDsl(sl float64) float64 { return o.klr(ad.Variable(sl, 1, 0)).Derivative(0) }

// DkgrDsg returns ∂kgr/∂sg
func (o Reten) DkgrDsg(sg float64) float64 { return o.kgr(ad.Variable(sg, 1, 0)).Derivative(0) }

func (o Reten) klr(sl ad.Evaluation) ad.Evaluation {
	swe := ad.Clamp(retention.SwToSwe(o.Eff, sl), 0, 1)
	return retention.Krw(o.Lrm, swe)
}

func (o Reten) kgr(sg ad.Evaluation) ad.Evaluation {
	swe := ad.Clamp(retention.SwToSwe(o.Eff, ad.ScalarSub(1, sg)), 0, 1)
	return retention.Krn(o.Lrm, swe)
}
