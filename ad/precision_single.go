// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build single

package ad

// Scalar is the storage type of values and derivatives
type Scalar = float32

// Huge is a numerically infinite value that is still representable by Scalar
const Huge Scalar = 1e30
