// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ad

import "github.com/cpmech/gosl/chk"

// Decay returns the plain value of x, dropping any derivatives
func Decay[T Number[T]](x T) float64 { return x.Value() }

// Constant returns an Evaluation with value v and n zero derivatives
func Constant(v float64, n int) Evaluation {
	if n < 0 {
		chk.Panic("ad: number of derivatives must be non-negative; n = %d is invalid", n)
	}
	return Evaluation{val: Scalar(v), der: make([]Scalar, n)}
}

// Variable returns an Evaluation representing the independent variable idx among n,
// i.e. with value v, ∂/∂x_idx = 1 and all other derivatives zero
func Variable(v float64, n, idx int) Evaluation {
	if idx < 0 || idx >= n {
		chk.Panic("ad: variable index %d is out of range [0, %d)", idx, n)
	}
	o := Constant(v, n)
	o.der[idx] = 1
	return o
}

// Values returns the plain values of all entries of xs
func Values[T Number[T]](xs []T) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = x.Value()
	}
	return res
}
