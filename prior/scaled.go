// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Scaled maps a distribution with finite support [a, b] onto a new
// finite interval [L, U] by the affine map
//
//	x = L + (u - a) * r,  r = (U - L) / (b - a)
//
// The density is divided by r, the log-density shifted by -log(r),
// and CDF and InvCDF pass through the change of coordinates.
//
// A Scaled owns a private copy of its base distribution. Parameter
// accessors address the base distribution's parameters.
type Scaled[D Dist] struct {
	base D

	lo, hi   float64 // scaled support
	baseLo   float64 // unscaled lower bound
	ratio    float64 // (hi - lo) / unscaled delta
	llhConst float64 // -log(ratio)
}

// NewScaled returns base rescaled onto [lbound, ubound]. The base
// distribution must have finite support.
func NewScaled[D Dist](base D, lbound, ubound float64) (*Scaled[D], error) {
	s := &Scaled[D]{base: base.Clone().(D)}
	if err := s.SetBounds(lbound, ubound); err != nil {
		return nil, err
	}
	return s, nil
}

// Base returns a copy of the unscaled distribution.
func (s *Scaled[D]) Base() D {
	return s.base.Clone().(D)
}

// UnscaledBounds returns the support of the base distribution.
func (s *Scaled[D]) UnscaledBounds() (float64, float64) {
	return s.base.Bounds()
}

// SetBounds moves the support to [lbound, ubound]. Both bounds change
// together; on error neither changes.
func (s *Scaled[D]) SetBounds(lbound, ubound float64) error {
	if !(lbound < ubound) || !isFinite(lbound) || !isFinite(ubound) {
		return errors.Wrapf(ErrParameterValue, "scaled: invalid bounds: lbound %v should be < ubound %v, both finite", lbound, ubound)
	}
	blo, bhi := s.base.Bounds()
	delta := bhi - blo
	if !isFinite(delta) || !(delta > 0) {
		return errors.Wrapf(ErrParameterValue, "scaled: distribution with non-finite support [%v, %v] cannot be scaled", blo, bhi)
	}
	s.ratio = (ubound - lbound) / delta
	s.llhConst = -math.Log(s.ratio)
	s.lo, s.hi, s.baseLo = lbound, ubound, blo
	return nil
}

// SetLBound moves the lower bound, keeping the upper bound.
func (s *Scaled[D]) SetLBound(lbound float64) error {
	return s.SetBounds(lbound, s.hi)
}

// SetUBound moves the upper bound, keeping the lower bound.
func (s *Scaled[D]) SetUBound(ubound float64) error {
	return s.SetBounds(s.lo, ubound)
}

func (s *Scaled[D]) toUnscaled(x float64) float64 {
	return (x-s.lo)/s.ratio + s.baseLo
}

func (s *Scaled[D]) fromUnscaled(u float64) float64 {
	return s.lo + (u-s.baseLo)*s.ratio
}

// recompute re-derives the scaling after the base changed.
func (s *Scaled[D]) recompute() error {
	return s.SetBounds(s.lo, s.hi)
}

func (s *Scaled[D]) NumParams() int { return s.base.NumParams() }
func (s *Scaled[D]) ParamNames() []string { return s.base.ParamNames() }
func (s *Scaled[D]) ParamLBound() []float64 { return s.base.ParamLBound() }
func (s *Scaled[D]) ParamUBound() []float64 { return s.base.ParamUBound() }
func (s *Scaled[D]) Param(idx int) float64 { return s.base.Param(idx) }
func (s *Scaled[D]) Params() *mat.VecDense { return s.base.Params() }
func (s *Scaled[D]) CheckParams(p mat.Vector) bool { return s.base.CheckParams(p) }

func (s *Scaled[D]) SetParam(idx int, v float64) error {
	old := s.base.Param(idx)
	if err := s.base.SetParam(idx, v); err != nil {
		return err
	}
	if err := s.recompute(); err != nil {
		s.base.SetParam(idx, old)
		s.recompute()
		return err
	}
	return nil
}

func (s *Scaled[D]) SetParams(p mat.Vector) error {
	old := s.base.Params()
	if err := s.base.SetParams(p); err != nil {
		return err
	}
	if err := s.recompute(); err != nil {
		s.base.SetParams(old)
		s.recompute()
		return err
	}
	return nil
}

func (s *Scaled[D]) Bounds() (float64, float64) {
	return s.lo, s.hi
}

func (s *Scaled[D]) PDF(x float64) float64 {
	return s.base.PDF(s.toUnscaled(x)) / s.ratio
}

func (s *Scaled[D]) CDF(x float64) float64 {
	return s.base.CDF(s.toUnscaled(x))
}

func (s *Scaled[D]) InvCDF(u float64) float64 {
	// Pin the endpoints; the affine map need not reproduce them
	// exactly.
	switch u {
	case 0:
		return s.lo
	case 1:
		return s.hi
	}
	return s.fromUnscaled(s.base.InvCDF(u))
}

func (s *Scaled[D]) LLH(x float64) float64 {
	return s.base.LLH(s.toUnscaled(x)) + s.llhConst
}

func (s *Scaled[D]) RLLH(x float64) float64 {
	return s.base.RLLH(s.toUnscaled(x))
}

// Grad and Grad2 follow the chain rule through du/dx = 1/r.
func (s *Scaled[D]) Grad(x float64) float64 {
	return s.base.Grad(s.toUnscaled(x)) / s.ratio
}

func (s *Scaled[D]) Grad2(x float64) float64 {
	return s.base.Grad2(s.toUnscaled(x)) / (s.ratio * s.ratio)
}

func (s *Scaled[D]) GradGrad2Accumulate(x float64, g, g2 *float64) {
	var bg, bg2 float64
	s.base.GradGrad2Accumulate(s.toUnscaled(x), &bg, &bg2)
	*g += bg / s.ratio
	*g2 += bg2 / (s.ratio * s.ratio)
}

func (s *Scaled[D]) Sample(rng Source) float64 {
	return s.fromUnscaled(s.base.Sample(rng))
}

func (s *Scaled[D]) Clone() Dist {
	c := *s
	c.base = s.base.Clone().(D)
	return &c
}
