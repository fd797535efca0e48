// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/mathext"
)

var gammaParams = &paramTable{
	kind:   "gamma",
	names:  []string{"scale", "shape"},
	lbound: []float64{0, 0},
	ubound: []float64{inf, inf},
}

// GammaDist is a gamma distribution on [0, +Inf) with scale θ and
// shape k:
//
//	f(x) = x^(k-1) exp(-x/θ) / (Γ(k) θ^k)
type GammaDist struct {
	scale, shape float64
	scaleInv     float64
	llhConst     float64 // -lgamma(k) - k*log(θ)
}

// NewGammaDist returns a gamma distribution with the given scale and
// shape.
func NewGammaDist(scale, shape float64) (*GammaDist, error) {
	d := new(GammaDist)
	if err := d.Set(scale, shape); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *GammaDist) recompute() {
	lg, _ := math.Lgamma(d.shape)
	d.scaleInv = 1 / d.scale
	d.llhConst = -lg - d.shape*math.Log(d.scale)
}

func (d *GammaDist) Scale() float64 { return d.scale }
func (d *GammaDist) Shape() float64 { return d.shape }
func (d *GammaDist) Mean() float64 { return d.scale * d.shape }

// Set sets both parameters at once.
func (d *GammaDist) Set(scale, shape float64) error {
	if err := gammaParams.check(scale, shape); err != nil {
		return err
	}
	d.scale, d.shape = scale, shape
	d.recompute()
	return nil
}

func (d *GammaDist) NumParams() int { return gammaParams.NumParams() }
func (d *GammaDist) ParamNames() []string { return gammaParams.Names() }
func (d *GammaDist) ParamLBound() []float64 { return gammaParams.LBound() }
func (d *GammaDist) ParamUBound() []float64 { return gammaParams.UBound() }

func (d *GammaDist) Param(idx int) float64 {
	switch idx {
	case 0:
		return d.scale
	case 1:
		return d.shape
	}
	return nan
}

func (d *GammaDist) SetParam(idx int, v float64) error {
	switch idx {
	case 0:
		return d.Set(v, d.shape)
	case 1:
		return d.Set(d.scale, v)
	}
	return nil
}

func (d *GammaDist) Params() *mat.VecDense {
	return mat.NewVecDense(2, []float64{d.scale, d.shape})
}

func (d *GammaDist) SetParams(p mat.Vector) error {
	if err := gammaParams.checkVec(p); err != nil {
		return err
	}
	return d.Set(p.AtVec(0), p.AtVec(1))
}

func (d *GammaDist) CheckParams(p mat.Vector) bool {
	return gammaParams.checkVec(p) == nil
}

func (d *GammaDist) Bounds() (float64, float64) {
	return 0, inf
}

func (d *GammaDist) PDF(x float64) float64 {
	return math.Exp(d.LLH(x))
}

func (d *GammaDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	} else if math.IsInf(x, 1) {
		return 1
	}
	return mathext.GammaIncReg(d.shape, x*d.scaleInv)
}

func (d *GammaDist) InvCDF(u float64) float64 {
	switch {
	case !(u >= 0 && u <= 1):
		return nan
	case u == 0:
		return 0
	case u == 1:
		return inf
	}
	return d.scale * mathext.GammaIncRegInv(d.shape, u)
}

func (d *GammaDist) RLLH(x float64) float64 {
	return xlogy(d.shape-1, x) - x*d.scaleInv
}

func (d *GammaDist) LLH(x float64) float64 {
	if x < 0 {
		return -inf
	}
	return d.RLLH(x) + d.llhConst
}

func (d *GammaDist) Grad(x float64) float64 {
	return (d.shape-1)/x - d.scaleInv
}

func (d *GammaDist) Grad2(x float64) float64 {
	return -(d.shape - 1) / (x * x)
}

func (d *GammaDist) GradGrad2Accumulate(x float64, g, g2 *float64) {
	km1ox := (d.shape - 1) / x
	*g += km1ox - d.scaleInv
	*g2 -= km1ox / x
}

func (d *GammaDist) Sample(rng Source) float64 {
	return d.InvCDF(rng.Float64())
}

func (d *GammaDist) Clone() Dist {
	c := *d
	return &c
}

// NewBoundedGammaDist returns a gamma distribution truncated to
// [lbound, ubound].
func NewBoundedGammaDist(scale, shape, lbound, ubound float64) (*Truncated[*GammaDist], error) {
	d, err := NewGammaDist(scale, shape)
	if err != nil {
		return nil, err
	}
	return NewTruncated(d, lbound, ubound)
}

// xlogy returns x*log(y), taking 0*log(0) to be 0.
func xlogy(x, y float64) float64 {
	if x == 0 {
		return 0
	}
	return x * math.Log(y)
}
