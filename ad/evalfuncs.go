// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ad

import "math"

// Abs returns |o|. The derivative at zero is taken from the positive branch
func (o Evaluation) Abs() Evaluation {
	if o.val < 0 {
		return o.Neg()
	}
	return o.chain(float64(o.val), 1)
}

// Sqrt returns √o
//  Special cases are:
//   Sqrt(0+0ϵ) = 0+0ϵ
//   Sqrt(0+xϵ) = 0+Infϵ for x > 0
//   Sqrt(x < 0) = NaN
func (o Evaluation) Sqrt() Evaluation {
	s := math.Sqrt(float64(o.val))
	return o.chain(s, 0.5/s)
}

// Exp returns eᵒ
func (o Evaluation) Exp() Evaluation {
	e := math.Exp(float64(o.val))
	return o.chain(e, e)
}

// Log returns ln(o)
func (o Evaluation) Log() Evaluation {
	v := float64(o.val)
	return o.chain(math.Log(v), 1/v)
}

// Log10 returns log₁₀(o)
func (o Evaluation) Log10() Evaluation {
	v := float64(o.val)
	return o.chain(math.Log10(v), 1/(v*math.Ln10))
}

// Pow returns oᶜ
//  Special cases are:
//   Pow(0+xϵ, c) = math.Pow(0, c) + f・xϵ with f = 0 if c == 0 or c > 1, f = 1 if c == 1
//   and f = c・0ᶜ⁻¹ = ±Inf otherwise
func (o Evaluation) Pow(c float64) Evaluation {
	v := float64(o.val)
	p := math.Pow(v, c)
	if v == 0 {
		return o.chain(p, powZeroFactor(c))
	}
	return o.chain(p, p/v*c)
}

// PowN returns oʸ where the exponent also carries derivatives
//  d(oʸ) = y・oʸ⁻¹・do + ln(o)・oʸ・dy
//  Special cases are:
//   PowN(0+xϵ, y) uses the factor of Pow for do; the factor for dy is 0 if y > 0 and -Inf otherwise
func (o Evaluation) PowN(y Evaluation) Evaluation {
	v, w := float64(o.val), float64(y.val)
	p := math.Pow(v, w)
	if v == 0 {
		dgb := 0.0
		if w <= 0 {
			dgb = math.Inf(-1)
		}
		return chain2(o, y, p, powZeroFactor(w), dgb)
	}
	return chain2(o, y, p, p/v*w, math.Log(v)*p)
}

// powZeroFactor returns c・xᶜ⁻¹ at x = 0
func powZeroFactor(c float64) float64 {
	switch {
	case c == 0 || c > 1:
		return 0
	case c == 1:
		return 1
	}
	return c * math.Pow(0, c-1)
}

// Sin returns sin(o)
func (o Evaluation) Sin() Evaluation {
	v := float64(o.val)
	return o.chain(math.Sin(v), math.Cos(v))
}

// Cos returns cos(o)
func (o Evaluation) Cos() Evaluation {
	v := float64(o.val)
	return o.chain(math.Cos(v), -math.Sin(v))
}

// Tan returns tan(o)
func (o Evaluation) Tan() Evaluation {
	v := float64(o.val)
	c := math.Cos(v)
	return o.chain(math.Tan(v), 1/(c*c))
}

// Asin returns asin(o)
func (o Evaluation) Asin() Evaluation {
	v := float64(o.val)
	return o.chain(math.Asin(v), 1/math.Sqrt(1-v*v))
}

// Acos returns acos(o)
func (o Evaluation) Acos() Evaluation {
	v := float64(o.val)
	return o.chain(math.Acos(v), -1/math.Sqrt(1-v*v))
}

// Atan returns atan(o)
func (o Evaluation) Atan() Evaluation {
	v := float64(o.val)
	return o.chain(math.Atan(v), 1/(1+v*v))
}

// Atan2 returns atan2(o, x)
func (o Evaluation) Atan2(x Evaluation) Evaluation {
	a, b := float64(o.val), float64(x.val)
	den := a*a + b*b
	return chain2(o, x, math.Atan2(a, b), b/den, -a/den)
}
