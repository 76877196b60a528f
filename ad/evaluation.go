// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ad

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Evaluation holds a value and the partial derivatives of this value with respect to N
// independent variables. Evaluations are never modified after construction; all
// operations return new Evaluations. All operands of one expression must have the same N
type Evaluation struct {
	val Scalar   // value
	der []Scalar // ∂val/∂xᵢ; len(der) == N
}

// NewEvaluation returns a new Evaluation. derivs is copied
func NewEvaluation(value float64, derivs ...float64) Evaluation {
	o := Evaluation{val: Scalar(value), der: make([]Scalar, len(derivs))}
	for i, d := range derivs {
		o.der[i] = Scalar(d)
	}
	return o
}

// Value returns the value
func (o Evaluation) Value() float64 { return float64(o.val) }

// Size returns the number of derivatives N
func (o Evaluation) Size() int { return len(o.der) }

// Derivative returns ∂val/∂xᵢ
func (o Evaluation) Derivative(i int) float64 {
	if i < 0 || i >= len(o.der) {
		chk.Panic("ad: derivative index %d is out of range [0, %d)", i, len(o.der))
	}
	return float64(o.der[i])
}

// Derivatives returns a copy of all derivatives
func (o Evaluation) Derivatives() []float64 {
	res := make([]float64, len(o.der))
	for i, d := range o.der {
		res[i] = float64(d)
	}
	return res
}

// Const returns a constant Evaluation with the same size as o
func (o Evaluation) Const(v float64) Evaluation {
	return Constant(v, len(o.der))
}

// String returns a representation like (value; ∂₀, ∂₁, ...)
func (o Evaluation) String() string {
	strs := make([]string, len(o.der))
	for i, d := range o.der {
		strs[i] = io.Sf("%g", d)
	}
	return io.Sf("(%g; %s)", o.val, strings.Join(strs, ", "))
}

// arithmetic ////////////////////////////////////////////////////////////////////////////////////

// Add returns o + y
func (o Evaluation) Add(y Evaluation) Evaluation {
	r := o.alloc(y, o.val+y.val)
	for i := range r.der {
		r.der[i] = o.der[i] + y.der[i]
	}
	return r
}

// Sub returns o - y
func (o Evaluation) Sub(y Evaluation) Evaluation {
	r := o.alloc(y, o.val-y.val)
	for i := range r.der {
		r.der[i] = o.der[i] - y.der[i]
	}
	return r
}

// Mul returns o * y
func (o Evaluation) Mul(y Evaluation) Evaluation {
	r := o.alloc(y, o.val*y.val)
	for i := range r.der {
		r.der[i] = o.der[i]*y.val + o.val*y.der[i]
	}
	return r
}

// Div returns o / y
//  Division by a zero-valued y yields ±Inf or NaN as in IEEE 754
func (o Evaluation) Div(y Evaluation) Evaluation {
	r := o.alloc(y, o.val/y.val)
	yy := y.val * y.val
	for i := range r.der {
		r.der[i] = (o.der[i]*y.val - o.val*y.der[i]) / yy
	}
	return r
}

// Neg returns -o
func (o Evaluation) Neg() Evaluation {
	r := Evaluation{val: -o.val, der: make([]Scalar, len(o.der))}
	for i, d := range o.der {
		r.der[i] = -d
	}
	return r
}

// AddScalar returns o + c
func (o Evaluation) AddScalar(c float64) Evaluation {
	r := Evaluation{val: o.val + Scalar(c), der: make([]Scalar, len(o.der))}
	copy(r.der, o.der)
	return r
}

// MulScalar returns o * c
func (o Evaluation) MulScalar(c float64) Evaluation {
	r := Evaluation{val: o.val * Scalar(c), der: make([]Scalar, len(o.der))}
	for i, d := range o.der {
		r.der[i] = d * Scalar(c)
	}
	return r
}

// comparison ////////////////////////////////////////////////////////////////////////////////////

// Lt returns o < y considering values only
func (o Evaluation) Lt(y Evaluation) bool { return o.val < y.val }

// Le returns o ≤ y considering values only
func (o Evaluation) Le(y Evaluation) bool { return o.val <= y.val }

// Gt returns o > y considering values only
func (o Evaluation) Gt(y Evaluation) bool { return o.val > y.val }

// Ge returns o ≥ y considering values only
func (o Evaluation) Ge(y Evaluation) bool { return o.val >= y.val }

// EqValue returns o == y considering values only
func (o Evaluation) EqValue(y Evaluation) bool { return o.val == y.val }

// Equal returns true if the values and all derivatives are equal
func (o Evaluation) Equal(y Evaluation) bool {
	if o.val != y.val || len(o.der) != len(y.der) {
		return false
	}
	for i, d := range o.der {
		if d != y.der[i] {
			return false
		}
	}
	return true
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////

// checkSize panics if o and y have different numbers of derivatives
func (o Evaluation) checkSize(y Evaluation) {
	if len(o.der) != len(y.der) {
		chk.Panic("ad: cannot combine evaluations with %d and %d derivatives", len(o.der), len(y.der))
	}
}

// alloc allocates the result of a binary operation after checking the sizes
func (o Evaluation) alloc(y Evaluation, val Scalar) Evaluation {
	o.checkSize(y)
	return Evaluation{val: val, der: make([]Scalar, len(o.der))}
}

// chain returns an Evaluation with value g and derivatives dg·∂o/∂xᵢ
//  directions where ∂o/∂xᵢ == 0 stay zero even if dg is not finite
func (o Evaluation) chain(g, dg float64) Evaluation {
	r := Evaluation{val: Scalar(g), der: make([]Scalar, len(o.der))}
	for i, d := range o.der {
		if d != 0 {
			r.der[i] = Scalar(dg * float64(d))
		}
	}
	return r
}

// chain2 returns an Evaluation with value g and derivatives dga·∂a/∂xᵢ + dgb·∂b/∂xᵢ
func chain2(a, b Evaluation, g, dga, dgb float64) Evaluation {
	r := a.alloc(b, Scalar(g))
	for i := range r.der {
		var s float64
		if a.der[i] != 0 {
			s += dga * float64(a.der[i])
		}
		if b.der[i] != 0 {
			s += dgb * float64(b.der[i])
		}
		r.der[i] = Scalar(s)
	}
	return r
}

// zeroDerivs returns an Evaluation with value g and all derivatives equal to zero
func (o Evaluation) zeroDerivs(g float64) Evaluation {
	return Evaluation{val: Scalar(g), der: make([]Scalar, len(o.der))}
}

// isFinite tells whether v is neither NaN nor ±Inf
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
