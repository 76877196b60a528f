// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ad implements dense forward-mode automatic differentiation
//  An Evaluation holds a value and its partial derivatives with respect to a fixed number of
//  independent variables. The material laws in this module are written against the Number
//  capability and thus run either with plain values (Real) or with Evaluations.
//  References:
//   [1] Griewank A and Walther A (2008) Evaluating Derivatives: Principles and Techniques of
//       Algorithmic Differentiation, 2nd edn. SIAM, http://dx.doi.org/10.1137/1.9780898717761
package ad

import "math"

// Number defines the arithmetic and elementary functions needed by the material laws.
// T is the implementing type itself; e.g. Real implements Number[Real]
type Number[T any] interface {
	Value() float64        // value without derivatives
	Const(v float64) T     // lifts v into a constant of the same kind (and size) as the receiver
	Add(y T) T             // x + y
	Sub(y T) T             // x - y
	Mul(y T) T             // x * y
	Div(y T) T             // x / y
	Neg() T                // -x
	AddScalar(c float64) T // x + c
	MulScalar(c float64) T // x * c
	Abs() T                // |x|
	Sqrt() T               // √x
	Exp() T                // eˣ
	Log() T                // ln(x)
	Log10() T              // log₁₀(x)
	Pow(c float64) T       // xᶜ
	PowN(y T) T            // xʸ
	Sin() T                // sin(x)
	Cos() T                // cos(x)
	Tan() T                // tan(x)
	Asin() T               // asin(x)
	Acos() T               // acos(x)
	Atan() T               // atan(x)
	Atan2(x T) T           // atan2(receiver, x)
}

// Real is a plain value without derivatives
type Real Scalar

// Value returns x as float64
func (x Real) Value() float64 { return float64(x) }

// Const returns v as Real
func (x Real) Const(v float64) Real { return Real(v) }

func (x Real) Add(y Real) Real          { return x + y }
func (x Real) Sub(y Real) Real          { return x - y }
func (x Real) Mul(y Real) Real          { return x * y }
func (x Real) Div(y Real) Real          { return x / y }
func (x Real) Neg() Real                { return -x }
func (x Real) AddScalar(c float64) Real { return x + Real(c) }
func (x Real) MulScalar(c float64) Real { return x * Real(c) }

func (x Real) Abs() Real   { return Real(math.Abs(float64(x))) }
func (x Real) Sqrt() Real  { return Real(math.Sqrt(float64(x))) }
func (x Real) Exp() Real   { return Real(math.Exp(float64(x))) }
func (x Real) Log() Real   { return Real(math.Log(float64(x))) }
func (x Real) Log10() Real { return Real(math.Log10(float64(x))) }
func (x Real) Sin() Real   { return Real(math.Sin(float64(x))) }
func (x Real) Cos() Real   { return Real(math.Cos(float64(x))) }
func (x Real) Tan() Real   { return Real(math.Tan(float64(x))) }
func (x Real) Asin() Real  { return Real(math.Asin(float64(x))) }
func (x Real) Acos() Real  { return Real(math.Acos(float64(x))) }
func (x Real) Atan() Real  { return Real(math.Atan(float64(x))) }

// Pow returns xᶜ following math.Pow; e.g. Pow(0, c<0) = +Inf and Pow(0, c>0) = 0
func (x Real) Pow(c float64) Real { return Real(math.Pow(float64(x), c)) }

// PowN returns xʸ
func (x Real) PowN(y Real) Real { return Real(math.Pow(float64(x), float64(y))) }

// Atan2 returns atan2(x, b)
func (x Real) Atan2(b Real) Real { return Real(math.Atan2(float64(x), float64(b))) }

var (
	_ Number[Real]       = Real(0)
	_ Number[Evaluation] = Evaluation{}
)
