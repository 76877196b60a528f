// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// checkDeriv compares ana with a central finite difference of f at x; tol is relative
func checkDeriv(tst *testing.T, msg string, tol, ana, x float64, f func(x float64) float64) {
	h := 1e-6 * math.Max(1, math.Abs(x))
	num := fd.Derivative(f, x, &fd.Settings{Formula: fd.Central, Step: h})
	if chk.Verbose {
		io.Pforan("%s: ana = %23.15e  num = %23.15e\n", msg, ana, num)
	}
	if !scalar.EqualWithinAbsOrRel(ana, num, 1e-15, tol) {
		tst.Errorf("%s failed: %v != %v\n", msg, ana, num)
	}
}

// panics tells whether fcn panics
func panics(fcn func()) (res bool) {
	defer func() {
		if err := recover(); err != nil {
			res = true
		}
	}()
	fcn()
	return
}
