// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

var paretoParams = &paramTable{
	kind:   "pareto",
	names:  []string{"alpha"},
	lbound: []float64{0},
	ubound: []float64{inf},
}

// ParetoDist is a Pareto distribution with shape Alpha and scale
// LBound, optionally cut off above at a finite UBound.
//
// The natural support of the distribution is [LBound, +Inf). A finite
// upper bound renormalizes the density by the mass below it.
type ParetoDist struct {
	alpha  float64
	lbound float64
	trunc  truncation

	// log(alpha) + alpha*log(lbound) - log(mass)
	llhConst float64
}

// NewParetoDist returns a Pareto distribution with shape alpha on
// [lbound, +Inf).
func NewParetoDist(alpha, lbound float64) (*ParetoDist, error) {
	return NewBoundedParetoDist(alpha, lbound, inf)
}

// NewBoundedParetoDist returns a Pareto distribution with shape alpha
// on [lbound, ubound]. ubound may be +Inf.
func NewBoundedParetoDist(alpha, lbound, ubound float64) (*ParetoDist, error) {
	d := new(ParetoDist)
	if err := d.set(alpha, lbound, ubound); err != nil {
		return nil, err
	}
	return d, nil
}

// set validates and installs all state at once. On error d is
// unchanged.
func (d *ParetoDist) set(alpha, lbound, ubound float64) error {
	if err := paretoParams.check(alpha); err != nil {
		return err
	}
	if !isFinite(lbound) || !(lbound > 0) {
		return errors.Wrapf(ErrParameterValue, "pareto: lbound %v must be positive and finite", lbound)
	}
	next := ParetoDist{alpha: alpha, lbound: lbound}
	if err := next.trunc.set(&next, lbound, ubound); err != nil {
		return errors.Wrap(err, "pareto")
	}
	next.llhConst = math.Log(alpha) + alpha*math.Log(lbound) - next.trunc.logMass
	*d = next
	return nil
}

func (d *ParetoDist) Alpha() float64 { return d.alpha }

// SetAlpha sets the shape parameter.
func (d *ParetoDist) SetAlpha(alpha float64) error {
	return d.set(alpha, d.lbound, d.trunc.hi)
}

// SetBounds sets the support to [lbound, ubound]. Both bounds change
// together.
func (d *ParetoDist) SetBounds(lbound, ubound float64) error {
	return d.set(d.alpha, lbound, ubound)
}

func (d *ParetoDist) NumParams() int { return paretoParams.NumParams() }
func (d *ParetoDist) ParamNames() []string { return paretoParams.Names() }
func (d *ParetoDist) ParamLBound() []float64 { return paretoParams.LBound() }
func (d *ParetoDist) ParamUBound() []float64 { return paretoParams.UBound() }

func (d *ParetoDist) Param(idx int) float64 {
	if idx == 0 {
		return d.alpha
	}
	return nan
}

func (d *ParetoDist) SetParam(idx int, v float64) error {
	if idx == 0 {
		return d.SetAlpha(v)
	}
	return nil
}

func (d *ParetoDist) Params() *mat.VecDense {
	return mat.NewVecDense(1, []float64{d.alpha})
}

func (d *ParetoDist) SetParams(p mat.Vector) error {
	if err := paretoParams.checkVec(p); err != nil {
		return err
	}
	return d.SetAlpha(p.AtVec(0))
}

func (d *ParetoDist) CheckParams(p mat.Vector) bool {
	return paretoParams.checkVec(p) == nil
}

func (d *ParetoDist) Bounds() (float64, float64) {
	return d.trunc.lo, d.trunc.hi
}

func (d *ParetoDist) UnboundedBounds() (float64, float64) {
	return d.lbound, inf
}

func (d *ParetoDist) UnboundedPDF(x float64) float64 {
	if x < d.lbound {
		return 0
	}
	return d.alpha / x * math.Pow(d.lbound/x, d.alpha)
}

func (d *ParetoDist) UnboundedCDF(x float64) float64 {
	if x <= d.lbound {
		return 0
	}
	return 1 - math.Pow(d.lbound/x, d.alpha)
}

func (d *ParetoDist) UnboundedInvCDF(u float64) float64 {
	switch {
	case !(u >= 0 && u <= 1):
		return nan
	case u == 1:
		return inf
	}
	return d.lbound / math.Pow(1-u, 1/d.alpha)
}

func (d *ParetoDist) UnboundedLLH(x float64) float64 {
	if x < d.lbound {
		return -inf
	}
	return d.RLLH(x) + d.llhConst + d.trunc.logMass
}

func (d *ParetoDist) PDF(x float64) float64 {
	return d.trunc.pdf(d, x)
}

func (d *ParetoDist) CDF(x float64) float64 {
	return d.trunc.cdf(d, x)
}

func (d *ParetoDist) InvCDF(u float64) float64 {
	return d.trunc.invCDF(d, u)
}

func (d *ParetoDist) RLLH(x float64) float64 {
	return -(d.alpha + 1) * math.Log(x)
}

func (d *ParetoDist) LLH(x float64) float64 {
	if !d.trunc.contains(x) {
		return -inf
	}
	return d.RLLH(x) + d.llhConst
}

func (d *ParetoDist) Grad(x float64) float64 {
	return -(d.alpha + 1) / x
}

func (d *ParetoDist) Grad2(x float64) float64 {
	return (d.alpha + 1) / (x * x)
}

func (d *ParetoDist) GradGrad2Accumulate(x float64, g, g2 *float64) {
	ap1ox := (d.alpha + 1) / x
	*g -= ap1ox
	*g2 += ap1ox / x
}

func (d *ParetoDist) Sample(rng Source) float64 {
	return d.InvCDF(rng.Float64())
}

func (d *ParetoDist) Clone() Dist {
	c := *d
	return &c
}
