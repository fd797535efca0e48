// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import "gonum.org/v1/gonum/mat"

// A Source supplies the random variates consumed by Sample.
// *math/rand.Rand satisfies Source.
type Source interface {
	// Float64 returns a uniform variate in [0, 1).
	Float64() float64

	// NormFloat64 returns a standard normal variate.
	NormFloat64() float64
}

// A Dist is a univariate continuous distribution with differentiable
// log-density and a vector of free parameters.
//
// A Dist is never observable in a state where its parameters are
// invalid or its cached constants disagree with its parameters. A
// mutator that returns an error leaves the distribution unchanged.
type Dist interface {
	// NumParams returns the number of free parameters.
	NumParams() int

	// ParamNames returns the canonical name of each parameter.
	ParamNames() []string

	// ParamLBound and ParamUBound return the admissible range of
	// each parameter. These bound parameter values, not the
	// support of the distribution.
	ParamLBound() []float64
	ParamUBound() []float64

	// Param returns parameter idx, or NaN if idx is out of range.
	Param(idx int) float64

	// SetParam sets parameter idx to v. If idx is out of range,
	// SetParam does nothing and returns nil. If v is invalid, it
	// returns an error and leaves the distribution unchanged.
	SetParam(idx int, v float64) error

	// Params returns all parameters as a vector.
	Params() *mat.VecDense

	// SetParams sets all parameters at once. It either sets every
	// parameter or none.
	SetParams(p mat.Vector) error

	// CheckParams reports whether p is a valid parameter vector
	// for this kind of distribution. It has no side effects.
	CheckParams(p mat.Vector) bool

	// Bounds returns the support of the distribution. Either
	// bound may be infinite.
	Bounds() (lo, hi float64)

	// PDF returns the value of the probability density function
	// at x.
	PDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function at x.
	CDF(x float64) float64

	// InvCDF returns the inverse of the CDF for u in [0, 1]. It
	// returns the support bounds, possibly infinite, at 0 and 1
	// and NaN outside [0, 1].
	InvCDF(u float64) float64

	// LLH returns the log of the density at x. It equals RLLH(x)
	// plus a constant that depends only on the parameters.
	LLH(x float64) float64

	// RLLH returns the x-dependent part of LLH.
	RLLH(x float64) float64

	// Grad and Grad2 return the first and second derivatives of
	// LLH with respect to x.
	Grad(x float64) float64
	Grad2(x float64) float64

	// GradGrad2Accumulate adds Grad(x) to *g and Grad2(x) to *g2.
	GradGrad2Accumulate(x float64, g, g2 *float64)

	// Sample draws a variate using rng. Two calls with sources in
	// identical states return identical values.
	Sample(rng Source) float64

	// Clone returns an independent copy of the distribution.
	Clone() Dist
}

// Unbounded is implemented by distributions whose own support is cut
// from a wider natural support. The methods describe the uncut shape,
// so an adaptor can re-truncate the distribution without the leaf
// doing any truncation arithmetic itself.
type Unbounded interface {
	// UnboundedBounds returns the natural support.
	UnboundedBounds() (lo, hi float64)

	UnboundedPDF(x float64) float64
	UnboundedCDF(x float64) float64
	UnboundedInvCDF(u float64) float64
	UnboundedLLH(x float64) float64
}

// natural presents a distribution's public functions as its unbounded
// shape.
type natural struct{ d Dist }

func (n natural) UnboundedBounds() (float64, float64) { return n.d.Bounds() }
func (n natural) UnboundedPDF(x float64) float64 { return n.d.PDF(x) }
func (n natural) UnboundedCDF(x float64) float64 { return n.d.CDF(x) }
func (n natural) UnboundedInvCDF(u float64) float64 { return n.d.InvCDF(u) }
func (n natural) UnboundedLLH(x float64) float64 { return n.d.LLH(x) }

// shapeOf returns the widest shape of d that truncation can measure
// mass against.
func shapeOf(d Dist) Unbounded {
	if u, ok := d.(Unbounded); ok {
		return u
	}
	return natural{d}
}
