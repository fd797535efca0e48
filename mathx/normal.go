// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

// UnitNormalPDF returns the density of the standard normal
// distribution at t.
func UnitNormalPDF(t float64) float64 {
	return math.Exp(-t*t/2) * invSqrt2Pi
}

// UnitNormalCDF returns the area of the lower tail of the standard
// normal density below t.
func UnitNormalCDF(t float64) float64 {
	switch {
	case math.IsInf(t, -1):
		return 0
	case math.IsInf(t, 1):
		return 1
	}
	// erfc keeps full relative precision in the lower tail, where
	// 1+erf(x) cancels.
	return math.Erfc(-t/math.Sqrt2) / 2
}

// UnitNormalInvCDF returns the quantile of the standard normal
// distribution at u. It returns -Inf for u == 0, +Inf for u == 1,
// and NaN for u outside [0, 1].
func UnitNormalInvCDF(u float64) float64 {
	switch {
	case !(u >= 0 && u <= 1):
		return nan
	case u == 0:
		return -inf
	case u == 1:
		return inf
	}
	return mathext.NormalQuantile(u)
}
