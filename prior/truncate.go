// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"math"

	"github.com/aclements/go-prior/mathx"
	"github.com/pkg/errors"
)

// truncation restricts an unbounded shape to the closed interval
// [lo, hi] and renormalizes by the enclosed mass. It holds no
// reference to the shape; callers pass it in so that the owner of
// the truncation stays a plain value.
type truncation struct {
	lo, hi  float64
	cdfLo   float64 // F(lo)
	mass    float64 // F(hi) - F(lo)
	logMass float64
}

// set validates [lo, hi] against the natural support of f and
// derives the mass. On error t is unchanged.
func (t *truncation) set(f Unbounded, lo, hi float64) error {
	nlo, nhi := f.UnboundedBounds()
	if !(lo < hi) {
		return errors.Wrapf(ErrParameterValue, "invalid bounds: lbound %v must be < ubound %v", lo, hi)
	}
	if lo < nlo || hi > nhi {
		return errors.Wrapf(ErrParameterValue, "bounds [%v, %v] outside support [%v, %v]", lo, hi, nlo, nhi)
	}
	cdfLo, cdfHi := f.UnboundedCDF(lo), f.UnboundedCDF(hi)
	mass := cdfHi - cdfLo
	if !(mass > 0) {
		return errors.Wrapf(ErrParameterValue, "bounds [%v, %v] enclose no probability mass", lo, hi)
	}
	*t = truncation{lo: lo, hi: hi, cdfLo: cdfLo, mass: mass, logMass: math.Log(mass)}
	return nil
}

// update re-derives the mass after the parameters of f changed.
func (t *truncation) update(f Unbounded) error {
	return t.set(f, t.lo, t.hi)
}

func (t *truncation) contains(x float64) bool {
	return x >= t.lo && x <= t.hi
}

func (t *truncation) pdf(f Unbounded, x float64) float64 {
	if !t.contains(x) {
		return 0
	}
	return f.UnboundedPDF(x) / t.mass
}

func (t *truncation) cdf(f Unbounded, x float64) float64 {
	if x < t.lo {
		return 0
	} else if x >= t.hi {
		return 1
	}
	return mathx.Clamp((f.UnboundedCDF(x)-t.cdfLo)/t.mass, 0, 1)
}

func (t *truncation) invCDF(f Unbounded, u float64) float64 {
	switch {
	case !(u >= 0 && u <= 1):
		return nan
	case u == 0:
		return t.lo
	case u == 1:
		return t.hi
	}
	return mathx.Clamp(f.UnboundedInvCDF(t.cdfLo+u*t.mass), t.lo, t.hi)
}

func (t *truncation) llh(f Unbounded, x float64) float64 {
	if !t.contains(x) {
		return -inf
	}
	return f.UnboundedLLH(x) - t.logMass
}
