// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !debug

package ad

// Debug enables domain assertions in the material laws. Build with -tags debug to switch on.
const Debug = false
