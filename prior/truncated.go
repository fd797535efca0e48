// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Truncated restricts a distribution to the closed interval
// [lbound, ubound] and renormalizes it by the enclosed mass
//
//	M = F(ubound) - F(lbound)
//
// If the base distribution implements Unbounded, the mass is measured
// on its uncut shape, so the bounds replace any cut the base applies
// itself and may extend to its natural support. Otherwise the bounds
// must lie within the base's support.
//
// A Truncated owns a private copy of its base distribution. Parameter
// accessors address the base distribution's parameters.
type Truncated[D Dist] struct {
	base  D
	trunc truncation
}

// NewTruncated returns base truncated to [lbound, ubound].
func NewTruncated[D Dist](base D, lbound, ubound float64) (*Truncated[D], error) {
	t := &Truncated[D]{base: base.Clone().(D)}
	if err := t.SetBounds(lbound, ubound); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Truncated[D]) shape() Unbounded {
	return shapeOf(t.base)
}

// Base returns a copy of the untruncated distribution.
func (t *Truncated[D]) Base() D {
	return t.base.Clone().(D)
}

// Mass returns the probability mass of the base distribution inside
// the bounds.
func (t *Truncated[D]) Mass() float64 {
	return t.trunc.mass
}

// SetBounds sets the support to [lbound, ubound]. Both bounds change
// together; on error neither changes.
func (t *Truncated[D]) SetBounds(lbound, ubound float64) error {
	return errors.Wrap(t.trunc.set(t.shape(), lbound, ubound), "truncated")
}

// SetLBound moves the lower bound, keeping the upper bound.
func (t *Truncated[D]) SetLBound(lbound float64) error {
	return t.SetBounds(lbound, t.trunc.hi)
}

// SetUBound moves the upper bound, keeping the lower bound.
func (t *Truncated[D]) SetUBound(ubound float64) error {
	return t.SetBounds(t.trunc.lo, ubound)
}

func (t *Truncated[D]) NumParams() int { return t.base.NumParams() }
func (t *Truncated[D]) ParamNames() []string { return t.base.ParamNames() }
func (t *Truncated[D]) ParamLBound() []float64 { return t.base.ParamLBound() }
func (t *Truncated[D]) ParamUBound() []float64 { return t.base.ParamUBound() }
func (t *Truncated[D]) Param(idx int) float64 { return t.base.Param(idx) }
func (t *Truncated[D]) Params() *mat.VecDense { return t.base.Params() }
func (t *Truncated[D]) CheckParams(p mat.Vector) bool { return t.base.CheckParams(p) }

func (t *Truncated[D]) SetParam(idx int, v float64) error {
	old := t.base.Param(idx)
	if err := t.base.SetParam(idx, v); err != nil {
		return err
	}
	if err := t.trunc.update(t.shape()); err != nil {
		t.base.SetParam(idx, old)
		t.trunc.update(t.shape())
		return errors.Wrap(err, "truncated")
	}
	return nil
}

func (t *Truncated[D]) SetParams(p mat.Vector) error {
	old := t.base.Params()
	if err := t.base.SetParams(p); err != nil {
		return err
	}
	if err := t.trunc.update(t.shape()); err != nil {
		t.base.SetParams(old)
		t.trunc.update(t.shape())
		return errors.Wrap(err, "truncated")
	}
	return nil
}

func (t *Truncated[D]) Bounds() (float64, float64) {
	return t.trunc.lo, t.trunc.hi
}

func (t *Truncated[D]) PDF(x float64) float64 {
	return t.trunc.pdf(t.shape(), x)
}

func (t *Truncated[D]) CDF(x float64) float64 {
	return t.trunc.cdf(t.shape(), x)
}

func (t *Truncated[D]) InvCDF(u float64) float64 {
	return t.trunc.invCDF(t.shape(), u)
}

func (t *Truncated[D]) LLH(x float64) float64 {
	return t.trunc.llh(t.shape(), x)
}

func (t *Truncated[D]) RLLH(x float64) float64 {
	return t.base.RLLH(x)
}

func (t *Truncated[D]) Grad(x float64) float64 {
	return t.base.Grad(x)
}

func (t *Truncated[D]) Grad2(x float64) float64 {
	return t.base.Grad2(x)
}

func (t *Truncated[D]) GradGrad2Accumulate(x float64, g, g2 *float64) {
	t.base.GradGrad2Accumulate(x, g, g2)
}

// Sample draws by inverse transform through InvCDF.
func (t *Truncated[D]) Sample(rng Source) float64 {
	return t.InvCDF(rng.Float64())
}

func (t *Truncated[D]) Clone() Dist {
	c := *t
	c.base = t.base.Clone().(D)
	return &c
}
