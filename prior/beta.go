// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/mathext"
)

var betaParams = &paramTable{
	kind:   "beta",
	names:  []string{"alpha", "beta"},
	lbound: []float64{0, 0},
	ubound: []float64{inf, inf},
}

// BetaDist is a beta distribution on [0, 1]. Use Scaled to move it
// onto another finite interval.
type BetaDist struct {
	alpha, beta float64
	llhConst    float64 // -log B(alpha, beta)
}

// NewBetaDist returns a beta distribution with shapes alpha and beta.
func NewBetaDist(alpha, beta float64) (*BetaDist, error) {
	d := new(BetaDist)
	if err := d.Set(alpha, beta); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *BetaDist) Alpha() float64 { return d.alpha }
func (d *BetaDist) Beta() float64 { return d.beta }

// Set sets both parameters at once.
func (d *BetaDist) Set(alpha, beta float64) error {
	if err := betaParams.check(alpha, beta); err != nil {
		return err
	}
	d.alpha, d.beta = alpha, beta
	d.llhConst = -mathext.Lbeta(alpha, beta)
	return nil
}

func (d *BetaDist) NumParams() int { return betaParams.NumParams() }
func (d *BetaDist) ParamNames() []string { return betaParams.Names() }
func (d *BetaDist) ParamLBound() []float64 { return betaParams.LBound() }
func (d *BetaDist) ParamUBound() []float64 { return betaParams.UBound() }

func (d *BetaDist) Param(idx int) float64 {
	switch idx {
	case 0:
		return d.alpha
	case 1:
		return d.beta
	}
	return nan
}

func (d *BetaDist) SetParam(idx int, v float64) error {
	switch idx {
	case 0:
		return d.Set(v, d.beta)
	case 1:
		return d.Set(d.alpha, v)
	}
	return nil
}

func (d *BetaDist) Params() *mat.VecDense {
	return mat.NewVecDense(2, []float64{d.alpha, d.beta})
}

func (d *BetaDist) SetParams(p mat.Vector) error {
	if err := betaParams.checkVec(p); err != nil {
		return err
	}
	return d.Set(p.AtVec(0), p.AtVec(1))
}

func (d *BetaDist) CheckParams(p mat.Vector) bool {
	return betaParams.checkVec(p) == nil
}

func (d *BetaDist) Bounds() (float64, float64) {
	return 0, 1
}

func (d *BetaDist) PDF(x float64) float64 {
	return math.Exp(d.LLH(x))
}

func (d *BetaDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	} else if x >= 1 {
		return 1
	}
	return mathext.RegIncBeta(d.alpha, d.beta, x)
}

func (d *BetaDist) InvCDF(u float64) float64 {
	switch {
	case !(u >= 0 && u <= 1):
		return nan
	case u == 0:
		return 0
	case u == 1:
		return 1
	}
	return mathext.InvRegIncBeta(d.alpha, d.beta, u)
}

func (d *BetaDist) RLLH(x float64) float64 {
	return xlogy(d.alpha-1, x) + xlogy(d.beta-1, 1-x)
}

func (d *BetaDist) LLH(x float64) float64 {
	if x < 0 || x > 1 {
		return -inf
	}
	return d.RLLH(x) + d.llhConst
}

func (d *BetaDist) Grad(x float64) float64 {
	return (d.alpha-1)/x - (d.beta-1)/(1-x)
}

func (d *BetaDist) Grad2(x float64) float64 {
	return -(d.alpha-1)/(x*x) - (d.beta-1)/((1-x)*(1-x))
}

func (d *BetaDist) GradGrad2Accumulate(x float64, g, g2 *float64) {
	a, b := (d.alpha-1)/x, (d.beta-1)/(1-x)
	*g += a - b
	*g2 -= a/x + b/(1-x)
}

func (d *BetaDist) Sample(rng Source) float64 {
	return d.InvCDF(rng.Float64())
}

func (d *BetaDist) Clone() Dist {
	c := *d
	return &c
}

// NewScaledBetaDist returns a beta distribution with shapes alpha and
// beta stretched onto [lbound, ubound].
func NewScaledBetaDist(alpha, beta, lbound, ubound float64) (*Scaled[*BetaDist], error) {
	d, err := NewBetaDist(alpha, beta)
	if err != nil {
		return nil, err
	}
	return NewScaled(d, lbound, ubound)
}
