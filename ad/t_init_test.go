// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ad

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/diff/fd"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// checkDeriv compares an analytical derivative with a central finite difference of f at x
func checkDeriv(tst *testing.T, msg string, tol, ana, x float64, f func(x float64) float64) {
	num := fd.Derivative(f, x, &fd.Settings{Formula: fd.Central, Step: 1e-6})
	if chk.Verbose {
		io.Pforan("%s: ana = %23.15e  num = %23.15e\n", msg, ana, num)
	}
	chk.Float64(tst, msg, tol, ana, num)
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
