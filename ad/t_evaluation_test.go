// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ad

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_eval01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval01. construction")

	derivs := []float64{1, 2, 3}
	a := NewEvaluation(0.5, derivs...)
	derivs[0] = 666
	chk.Float64(tst, "value", 1e-17, a.Value(), 0.5)
	if a.Size() != 3 {
		tst.Errorf("size should be 3. %d is incorrect\n", a.Size())
	}
	chk.Array(tst, "derivs", 1e-17, a.Derivatives(), []float64{1, 2, 3})

	d := a.Derivatives()
	d[1] = 666
	chk.Float64(tst, "∂1 unchanged", 1e-17, a.Derivative(1), 2)

	x := Variable(2.5, 4, 2)
	chk.Float64(tst, "x", 1e-17, x.Value(), 2.5)
	chk.Array(tst, "∂x", 1e-17, x.Derivatives(), []float64{0, 0, 1, 0})

	c := x.Const(7)
	if c.Size() != 4 {
		tst.Errorf("size should be 4. %d is incorrect\n", c.Size())
	}
	chk.Array(tst, "∂c", 1e-17, c.Derivatives(), []float64{0, 0, 0, 0})

	io.Pforan("a = %v\n", a)
	if a.String() != "(0.5; 1, 2, 3)" {
		tst.Errorf("String failed: %q\n", a.String())
	}

	if !panics(func() { Variable(1, 2, 2) }) {
		tst.Errorf("Variable should panic with index out of range\n")
	}
	if !panics(func() { a.Derivative(3) }) {
		tst.Errorf("Derivative should panic with index out of range\n")
	}
}

func Test_eval02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval02. operators versus finite differences")

	x0, y0 := 1.3, -0.7
	ops := []struct {
		name string
		ev   func(a, b Evaluation) Evaluation
		fn   func(a, b float64) float64
	}{
		{"add", Evaluation.Add, func(a, b float64) float64 { return a + b }},
		{"sub", Evaluation.Sub, func(a, b float64) float64 { return a - b }},
		{"mul", Evaluation.Mul, func(a, b float64) float64 { return a * b }},
		{"div", Evaluation.Div, func(a, b float64) float64 { return a / b }},
	}

	// a(x,y) = x² + y and b(x,y) = x・y³ so that both operands depend on both variables
	for _, op := range ops {
		x := Variable(x0, 2, 0)
		y := Variable(y0, 2, 1)
		a := x.Mul(x).Add(y)
		b := x.Mul(y).Mul(y).Mul(y)
		r := op.ev(a, b)
		f := func(x, y float64) float64 { return op.fn(x*x+y, x*y*y*y) }
		chk.Float64(tst, op.name+": value", 1e-15, r.Value(), f(x0, y0))
		checkDeriv(tst, op.name+": ∂/∂x", 1e-8, r.Derivative(0), x0, func(x float64) float64 { return f(x, y0) })
		checkDeriv(tst, op.name+": ∂/∂y", 1e-8, r.Derivative(1), y0, func(y float64) float64 { return f(x0, y) })
	}
}

func Test_eval03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval03. mixing with scalars")

	x := NewEvaluation(2, 1, -1)

	r := x.AddScalar(3)
	chk.Float64(tst, "x+3", 1e-15, r.Value(), 5)
	chk.Array(tst, "∂(x+3)", 1e-15, r.Derivatives(), []float64{1, -1})

	r = x.MulScalar(3)
	chk.Float64(tst, "3x", 1e-15, r.Value(), 6)
	chk.Array(tst, "∂(3x)", 1e-15, r.Derivatives(), []float64{3, -3})

	r = ScalarSub(3, x)
	chk.Float64(tst, "3-x", 1e-15, r.Value(), 1)
	chk.Array(tst, "∂(3-x)", 1e-15, r.Derivatives(), []float64{-1, 1})

	r = ScalarDiv(3, x)
	chk.Float64(tst, "3/x", 1e-15, r.Value(), 1.5)
	chk.Array(tst, "∂(3/x)", 1e-15, r.Derivatives(), []float64{-0.75, 0.75})

	r = x.Neg()
	chk.Float64(tst, "-x", 1e-15, r.Value(), -2)
	chk.Array(tst, "∂(-x)", 1e-15, r.Derivatives(), []float64{-1, 1})

	chk.Array(tst, "x unchanged", 1e-15, x.Derivatives(), []float64{1, -1})
}

func Test_eval04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval04. division by zero and predicates")

	one := NewEvaluation(1, 1)
	zero := NewEvaluation(0, 1)

	r := one.Div(zero)
	io.Pforan("1/0 = %v\n", r)
	if !math.IsInf(r.Value(), 1) {
		tst.Errorf("1/0 should be +Inf. %v is incorrect\n", r.Value())
	}
	if IsFinite(r) || IsNaN(r) {
		tst.Errorf("predicates failed for 1/0\n")
	}

	r = zero.Div(zero)
	if !IsNaN(r) {
		tst.Errorf("0/0 should be NaN. %v is incorrect\n", r.Value())
	}

	// predicates look at the value only
	w := NewEvaluation(1, math.NaN(), math.Inf(1))
	if IsNaN(w) || !IsFinite(w) {
		tst.Errorf("predicates must ignore derivatives\n")
	}
}

func Test_eval05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval05. mismatched sizes")

	a := Constant(1, 2)
	b := Constant(1, 3)
	for name, fcn := range map[string]func(){
		"add":   func() { a.Add(b) },
		"sub":   func() { a.Sub(b) },
		"mul":   func() { a.Mul(b) },
		"div":   func() { a.Div(b) },
		"pown":  func() { a.PowN(b) },
		"atan2": func() { a.Atan2(b) },
	} {
		if !panics(fcn) {
			tst.Errorf("%s should panic with mismatched sizes\n", name)
		}
	}
	if !panics(func() { Constant(0, 0).PowN(Constant(2, 1)) }) {
		tst.Errorf("pown with zero base should panic with mismatched sizes\n")
	}
}

func Test_eval06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval06. comparison and equality")

	a := NewEvaluation(1, 1, 0)
	b := NewEvaluation(1, 0, 1)
	c := NewEvaluation(2, 1, 0)

	if !a.EqValue(b) || a.Equal(b) {
		tst.Errorf("a and b have the same value but different derivatives\n")
	}
	if !a.Equal(NewEvaluation(1, 1, 0)) {
		tst.Errorf("Equal failed\n")
	}
	if a.Equal(NewEvaluation(1, 1)) {
		tst.Errorf("Equal must be false for different sizes\n")
	}
	if !a.Lt(c) || !a.Le(b) || !c.Gt(a) || !a.Ge(b) || a.Gt(b) {
		tst.Errorf("comparisons failed\n")
	}
}
