// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prior provides univariate probability distributions for use
// as Bayesian priors in numerical optimization.
//
// Every distribution exposes its density, log-density, cumulative
// distribution and quantile functions, sampling, and the first and
// second derivatives of the log-density with respect to the random
// variable, so that callers can assemble objective functions and
// Hessians from independent components.
//
// Distributions compose by wrapping: Truncated restricts a
// distribution to a closed sub-interval of its support and Scaled
// maps a distribution with finite support onto a new interval. Both
// adaptors satisfy Dist themselves, so they nest in either order.
//
// Distribution values carry no internal synchronization. Use Clone to
// give each goroutine its own instance.
package prior // import "github.com/aclements/go-prior/prior"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()

// ln(sqrt(2 * pi))
const lnSqrt2Pi = 0.918938533204672741780329736405617639861397473637783412817151540

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
