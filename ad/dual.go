// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ad

import "gonum.org/v1/gonum/num/dual"

// FromDual returns an Evaluation with one derivative from a gonum dual number
func FromDual(d dual.Number) Evaluation {
	return NewEvaluation(d.Real, d.Emag)
}

// Dual returns the value and the i-th derivative of o as a gonum dual number
func (o Evaluation) Dual(i int) dual.Number {
	return dual.Number{Real: o.Value(), Emag: o.Derivative(i)}
}
