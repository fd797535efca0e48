// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements special functions not provided by the
// standard math package.
package mathx // import "github.com/aclements/go-prior/mathx"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()

// Clamp returns x limited to the closed interval [lo, hi]. NaN is
// passed through.
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	} else if x > hi {
		return hi
	}
	return x
}
