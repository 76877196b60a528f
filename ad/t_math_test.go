// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ad

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/num/dual"
)

func Test_math01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("math01. toolbox versus finite differences")

	fcns := []struct {
		name string
		x0   float64
		ev   func(x Evaluation) Evaluation
		fn   func(x float64) float64
	}{
		{"abs+", 0.3, Abs[Evaluation], math.Abs},
		{"abs-", -0.3, Abs[Evaluation], math.Abs},
		{"sqrt", 2.2, Sqrt[Evaluation], math.Sqrt},
		{"exp", 0.7, Exp[Evaluation], math.Exp},
		{"log", 1.7, Log[Evaluation], math.Log},
		{"log10", 1.7, Log10[Evaluation], math.Log10},
		{"pow", 1.7, func(x Evaluation) Evaluation { return Pow(x, -0.75) }, func(x float64) float64 { return math.Pow(x, -0.75) }},
		{"powbase", 0.4, func(x Evaluation) Evaluation { return PowBase(3, x) }, func(x float64) float64 { return math.Pow(3, x) }},
		{"sin", 0.4, Sin[Evaluation], math.Sin},
		{"cos", 0.4, Cos[Evaluation], math.Cos},
		{"tan", 0.4, Tan[Evaluation], math.Tan},
		{"asin", 0.4, Asin[Evaluation], math.Asin},
		{"acos", 0.4, Acos[Evaluation], math.Acos},
		{"atan", 0.4, Atan[Evaluation], math.Atan},
		{"sqr", -1.1, Sqr[Evaluation], func(x float64) float64 { return x * x }},
	}

	for _, f := range fcns {
		x := Variable(f.x0, 1, 0)
		r := f.ev(x)
		chk.Float64(tst, f.name+": value", 1e-15, r.Value(), f.fn(f.x0))
		checkDeriv(tst, f.name+": derivative", 1e-8, r.Derivative(0), f.x0, f.fn)
	}
}

func Test_math02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("math02. binary functions")

	x0, y0 := 1.4, 0.6
	x := Variable(x0, 2, 0)
	y := Variable(y0, 2, 1)

	r := PowN(x, y)
	f := func(a, b float64) float64 { return math.Pow(a, b) }
	chk.Float64(tst, "xʸ", 1e-15, r.Value(), f(x0, y0))
	checkDeriv(tst, "∂xʸ/∂x", 1e-8, r.Derivative(0), x0, func(a float64) float64 { return f(a, y0) })
	checkDeriv(tst, "∂xʸ/∂y", 1e-8, r.Derivative(1), y0, func(b float64) float64 { return f(x0, b) })

	r = Atan2(y, x)
	g := func(b, a float64) float64 { return math.Atan2(b, a) }
	chk.Float64(tst, "atan2", 1e-15, r.Value(), g(y0, x0))
	checkDeriv(tst, "∂atan2/∂x", 1e-8, r.Derivative(0), x0, func(a float64) float64 { return g(y0, a) })
	checkDeriv(tst, "∂atan2/∂y", 1e-8, r.Derivative(1), y0, func(b float64) float64 { return g(b, x0) })
}

func Test_math03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("math03. pow with zero base")

	x := NewEvaluation(0, 1, 2)
	for _, c := range []float64{-1, -0.5, 0, 0.5, 1, 2} {
		r := Pow(x, c)
		io.Pforan("0^%g = %v\n", c, r)
		if IsNaN(r) {
			tst.Errorf("0^%g must not be NaN\n", c)
		}
		for i, d := range r.Derivatives() {
			if math.IsNaN(d) {
				tst.Errorf("∂(0^%g)/∂x%d must not be NaN\n", c, i)
			}
		}
		if c < 0 && !math.IsInf(r.Value(), 1) {
			tst.Errorf("0^%g should be +Inf\n", c)
		}
		if c > 0 {
			chk.Float64(tst, "0^c", 1e-17, r.Value(), 0)
		}
		d := r.Derivative(0)
		switch {
		case c == 0 || c > 1:
			chk.Float64(tst, io.Sf("∂(0^%g)/∂x", c), 1e-17, d, 0)
		case c == 1:
			chk.Float64(tst, "∂(0^1)/∂x", 1e-17, d, 1)
		case c > 0:
			if !math.IsInf(d, 1) {
				tst.Errorf("∂(0^%g)/∂x should be +Inf; got %g\n", c, d)
			}
		default:
			if !math.IsInf(d, -1) {
				tst.Errorf("∂(0^%g)/∂x should be -Inf; got %g\n", c, d)
			}
		}
	}

	// x^y at x = 0 with both operands carrying derivatives
	q := PowN(Variable(0, 2, 0), Variable(2, 2, 1))
	chk.Array(tst, "∂(0^y) with y = 2", 1e-17, q.Derivatives(), []float64{0, 0})
	q = PowN(Variable(0, 2, 0), Variable(1, 2, 1))
	chk.Array(tst, "∂(0^y) with y = 1", 1e-17, q.Derivatives(), []float64{1, 0})

	r := PowN(x, NewEvaluation(0.5, 1, 1))
	if IsNaN(r) || math.IsNaN(r.Derivative(0)) || math.IsNaN(r.Derivative(1)) {
		tst.Errorf("0^y must not yield NaN; got %v\n", r)
	}

	// plain values dispatch to the standard library
	for _, c := range []float64{-1, 0.5, 2} {
		if IsNaN(Pow(Real(0), c)) {
			tst.Errorf("Real: 0^%g must not be NaN\n", c)
		}
	}

	// a constant stays constant even where the derivative factor is infinite
	s := Sqrt(Constant(0, 2))
	chk.Array(tst, "∂√0 of constant", 1e-17, s.Derivatives(), []float64{0, 0})
}

func Test_math04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("math04. min and max")

	a := NewEvaluation(1, 1, 2)
	b := NewEvaluation(2, 3, 4)
	tie := NewEvaluation(1, 5, 6)

	chk.Array(tst, "∂min(a,b)", 1e-17, Min(a, b).Derivatives(), a.Derivatives())
	chk.Array(tst, "∂min(b,a)", 1e-17, Min(b, a).Derivatives(), a.Derivatives())
	chk.Array(tst, "∂max(a,b)", 1e-17, Max(a, b).Derivatives(), b.Derivatives())
	chk.Array(tst, "∂max(b,a)", 1e-17, Max(b, a).Derivatives(), b.Derivatives())

	// ties select the left operand
	chk.Array(tst, "∂min(a,tie)", 1e-17, Min(a, tie).Derivatives(), a.Derivatives())
	chk.Array(tst, "∂min(tie,a)", 1e-17, Min(tie, a).Derivatives(), tie.Derivatives())
	chk.Array(tst, "∂max(a,tie)", 1e-17, Max(a, tie).Derivatives(), a.Derivatives())
	chk.Array(tst, "∂max(tie,a)", 1e-17, Max(tie, a).Derivatives(), tie.Derivatives())

	r := Clamp(NewEvaluation(1.5, 1, 1), 0, 1)
	chk.Float64(tst, "clamp", 1e-17, r.Value(), 1)
	chk.Array(tst, "∂clamp", 1e-17, r.Derivatives(), []float64{0, 0})

	r = Clamp(NewEvaluation(0.5, 1, 1), 0, 1)
	chk.Array(tst, "∂clamp inside", 1e-17, r.Derivatives(), []float64{1, 1})
}

func Test_math05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("math05. gonum dual numbers as oracle")

	// e^x/(sqrt(sin(x)^3 + cos(x)^3))
	fnDual := func(x dual.Number) dual.Number {
		return dual.Mul(
			dual.Exp(x),
			dual.Inv(dual.Sqrt(
				dual.Add(
					dual.PowReal(dual.Sin(x), 3),
					dual.PowReal(dual.Cos(x), 3)))))
	}
	fnEval := func(x Evaluation) Evaluation {
		return Exp(x).Div(Sqrt(Pow(Sin(x), 3).Add(Pow(Cos(x), 3))))
	}

	for _, x0 := range []float64{0.1, 0.5, 1.0, 1.5} {
		want := fnDual(dual.Number{Real: x0, Emag: 1})
		got := fnEval(FromDual(dual.Number{Real: x0, Emag: 1})).Dual(0)
		chk.Float64(tst, io.Sf("f(%g)", x0), 1e-14, got.Real, want.Real)
		chk.Float64(tst, io.Sf("f'(%g)", x0), 1e-13, got.Emag, want.Emag)
	}

	// the same function with plain values
	r := fnEval(Variable(1.5, 1, 0))
	s := Exp(Real(1.5)).Div(Sqrt(Pow(Sin(Real(1.5)), 3).Add(Pow(Cos(Real(1.5)), 3))))
	chk.Float64(tst, "Real versus Evaluation", 1e-15, Decay(s), Decay(r))
}
