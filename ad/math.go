// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ad

import "math"

// The functions below dispatch at compile time on the type parameter; e.g. Sqrt(Real(4))
// calls math.Sqrt whereas Sqrt(e) with e an Evaluation also propagates the derivatives

// Abs returns |x|
func Abs[T Number[T]](x T) T { return x.Abs() }

// Sqrt returns √x
func Sqrt[T Number[T]](x T) T { return x.Sqrt() }

// Exp returns eˣ
func Exp[T Number[T]](x T) T { return x.Exp() }

// Log returns ln(x)
func Log[T Number[T]](x T) T { return x.Log() }

// Log10 returns log₁₀(x)
func Log10[T Number[T]](x T) T { return x.Log10() }

// Pow returns xᶜ. A zero base never produces NaN derivatives
func Pow[T Number[T]](x T, c float64) T { return x.Pow(c) }

// PowN returns xʸ
func PowN[T Number[T]](x, y T) T { return x.PowN(y) }

// PowBase returns cˣ
func PowBase[T Number[T]](c float64, x T) T { return x.Const(c).PowN(x) }

// Sin returns sin(x)
func Sin[T Number[T]](x T) T { return x.Sin() }

// Cos returns cos(x)
func Cos[T Number[T]](x T) T { return x.Cos() }

// Tan returns tan(x)
func Tan[T Number[T]](x T) T { return x.Tan() }

// Asin returns asin(x)
func Asin[T Number[T]](x T) T { return x.Asin() }

// Acos returns acos(x)
func Acos[T Number[T]](x T) T { return x.Acos() }

// Atan returns atan(x)
func Atan[T Number[T]](x T) T { return x.Atan() }

// Atan2 returns atan2(y, x)
func Atan2[T Number[T]](y, x T) T { return y.Atan2(x) }

// Sqr returns x²
func Sqr[T Number[T]](x T) T { return x.Mul(x) }

// ScalarSub returns c - x
func ScalarSub[T Number[T]](c float64, x T) T { return x.Neg().AddScalar(c) }

// ScalarDiv returns c / x
func ScalarDiv[T Number[T]](c float64, x T) T { return x.Const(c).Div(x) }

// Min returns the operand with the smallest value, derivatives included.
// At ties, a is returned
func Min[T Number[T]](a, b T) T {
	if a.Value() <= b.Value() {
		return a
	}
	return b
}

// Max returns the operand with the largest value, derivatives included.
// At ties, a is returned
func Max[T Number[T]](a, b T) T {
	if a.Value() >= b.Value() {
		return a
	}
	return b
}

// Clamp returns x limited to [lo, hi]
func Clamp[T Number[T]](x T, lo, hi float64) T {
	return Min(Max(x, x.Const(lo)), x.Const(hi))
}

// IsNaN tells whether the value of x is NaN; derivatives are not inspected
func IsNaN[T Number[T]](x T) bool { return math.IsNaN(x.Value()) }

// IsFinite tells whether the value of x is neither NaN nor ±Inf; derivatives are not inspected
func IsFinite[T Number[T]](x T) bool { return isFinite(x.Value()) }
