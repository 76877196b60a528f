// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/io"
	"github.com/nairr/opm-material/ad"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"
)

// CheckDerivs checks, at each Swe station, the derivatives obtained by automatic
// differentiation against the analytical ones and against central finite differences
//  tol -- relative tolerance
func CheckDerivs(tst *testing.T, mdl Model, Swe []float64, tol float64, verbose bool) {
	for _, swe := range Swe {

		// pc and ∂pc/∂Swe
		pc := Pc(mdl, ad.Variable(swe, 1, 0))
		if verbose {
			io.Pforan("\nSwe=%g, pc=%v\n", swe, pc)
		}
		compare(tst, "pc(Swe)", tol, pc.Value(), mdl.Pc(swe))
		compare(tst, "∂pc/∂Swe: ad versus ana", tol, pc.Derivative(0), mdl.DpcDsw(swe))
		compare(tst, "∂pc/∂Swe: ad versus num", tol, pc.Derivative(0), numDeriv(mdl.Pc, swe))

		// Swe and ∂Swe/∂pc
		sw := Sw(mdl, ad.Variable(pc.Value(), 1, 0))
		compare(tst, "Swe(pc(Swe))", tol, sw.Value(), swe)
		compare(tst, "∂Swe/∂pc: ad versus ana", tol, sw.Derivative(0), mdl.DswDpc(pc.Value()))
		compare(tst, "∂Swe/∂pc: ad versus num", tol, sw.Derivative(0), numDeriv(mdl.Sw, pc.Value()))

		// relative permeabilities
		krw := Krw(mdl, ad.Variable(swe, 1, 0))
		krn := Krn(mdl, ad.Variable(swe, 1, 0))
		if verbose {
			io.Pforan("krw=%v, krn=%v\n", krw, krn)
		}
		compare(tst, "krw", tol, krw.Value(), mdl.Krw(swe))
		compare(tst, "krn", tol, krn.Value(), mdl.Krn(swe))
		compare(tst, "∂krw/∂Swe: ad versus num", tol, krw.Derivative(0), numDeriv(mdl.Krw, swe))
		compare(tst, "∂krn/∂Swe: ad versus num", tol, krn.Derivative(0), numDeriv(mdl.Krn, swe))
	}
}

// numDeriv computes df/dx with central differences and a step scaled by x
func numDeriv(f func(x float64) float64, x float64) float64 {
	h := 1e-6 * math.Max(1, math.Abs(x))
	return fd.Derivative(f, x, &fd.Settings{Formula: fd.Central, Step: h})
}

// compare reports an error if a and b differ by more than tol (relative) or 1e-12 (absolute)
func compare(tst *testing.T, msg string, tol, a, b float64) {
	if !scalar.EqualWithinAbsOrRel(a, b, 1e-12, tol) {
		tst.Errorf("%s failed: %v != %v\n", msg, a, b)
	}
}
