// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"math"

	"github.com/aclements/go-prior/mathx"
	"gonum.org/v1/gonum/mat"
)

var normalParams = &paramTable{
	kind:   "normal",
	names:  []string{"mu", "sigma"},
	lbound: []float64{-inf, 0},
	ubound: []float64{inf, inf},
}

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	mu    float64
	sigma float64
	// sigma is kept alongside sigmaInv because 1/(1/sigma) need
	// not equal sigma.
	sigmaInv float64
	llhConst float64
}

// NewNormalDist returns a normal distribution with mean mu and
// standard deviation sigma.
func NewNormalDist(mu, sigma float64) (*NormalDist, error) {
	d := new(NormalDist)
	if err := d.Set(mu, sigma); err != nil {
		return nil, err
	}
	return d, nil
}

// StdNormal returns the standard normal distribution (Mu = 0,
// Sigma = 1).
func StdNormal() *NormalDist {
	d := &NormalDist{mu: 0, sigma: 1}
	d.recompute()
	return d
}

func (d *NormalDist) recompute() {
	d.sigmaInv = 1 / d.sigma
	d.llhConst = -math.Log(d.sigma) - lnSqrt2Pi
}

func (d *NormalDist) Mu() float64 { return d.mu }
func (d *NormalDist) Sigma() float64 { return d.sigma }
func (d *NormalDist) Mean() float64 { return d.mu }
func (d *NormalDist) Median() float64 { return d.mu }

func (d *NormalDist) SetMu(mu float64) error {
	return d.Set(mu, d.sigma)
}

func (d *NormalDist) SetSigma(sigma float64) error {
	return d.Set(d.mu, sigma)
}

// Set sets both parameters at once.
func (d *NormalDist) Set(mu, sigma float64) error {
	if err := normalParams.check(mu, sigma); err != nil {
		return err
	}
	d.mu, d.sigma = mu, sigma
	d.recompute()
	return nil
}

func (d *NormalDist) NumParams() int { return normalParams.NumParams() }
func (d *NormalDist) ParamNames() []string { return normalParams.Names() }
func (d *NormalDist) ParamLBound() []float64 { return normalParams.LBound() }
func (d *NormalDist) ParamUBound() []float64 { return normalParams.UBound() }

func (d *NormalDist) Param(idx int) float64 {
	switch idx {
	case 0:
		return d.mu
	case 1:
		return d.sigma
	}
	return nan
}

func (d *NormalDist) SetParam(idx int, v float64) error {
	switch idx {
	case 0:
		return d.SetMu(v)
	case 1:
		return d.SetSigma(v)
	}
	return nil
}

func (d *NormalDist) Params() *mat.VecDense {
	return mat.NewVecDense(2, []float64{d.mu, d.sigma})
}

func (d *NormalDist) SetParams(p mat.Vector) error {
	if err := normalParams.checkVec(p); err != nil {
		return err
	}
	return d.Set(p.AtVec(0), p.AtVec(1))
}

func (d *NormalDist) CheckParams(p mat.Vector) bool {
	return normalParams.checkVec(p) == nil
}

func (d *NormalDist) Bounds() (float64, float64) {
	return -inf, inf
}

func (d *NormalDist) PDF(x float64) float64 {
	return mathx.UnitNormalPDF((x-d.mu)*d.sigmaInv) * d.sigmaInv
}

func (d *NormalDist) CDF(x float64) float64 {
	return mathx.UnitNormalCDF((x - d.mu) * d.sigmaInv)
}

func (d *NormalDist) InvCDF(u float64) float64 {
	return d.mu + d.sigma*mathx.UnitNormalInvCDF(u)
}

func (d *NormalDist) RLLH(x float64) float64 {
	z := (x - d.mu) * d.sigmaInv
	return -z * z / 2
}

func (d *NormalDist) LLH(x float64) float64 {
	return d.RLLH(x) + d.llhConst
}

func (d *NormalDist) Grad(x float64) float64 {
	return -(x - d.mu) * d.sigmaInv * d.sigmaInv
}

func (d *NormalDist) Grad2(x float64) float64 {
	return -d.sigmaInv * d.sigmaInv
}

func (d *NormalDist) GradGrad2Accumulate(x float64, g, g2 *float64) {
	s2 := d.sigmaInv * d.sigmaInv
	*g -= (x - d.mu) * s2
	*g2 -= s2
}

func (d *NormalDist) Sample(rng Source) float64 {
	return d.mu + d.sigma*rng.NormFloat64()
}

func (d *NormalDist) Clone() Dist {
	c := *d
	return &c
}

// NewBoundedNormalDist returns a normal distribution truncated to
// [lbound, ubound].
func NewBoundedNormalDist(mu, sigma, lbound, ubound float64) (*Truncated[*NormalDist], error) {
	d, err := NewNormalDist(mu, sigma)
	if err != nil {
		return nil, err
	}
	return NewTruncated(d, lbound, ubound)
}
