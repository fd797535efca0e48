// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestScaledBetaDist(t *testing.T) {
	d, err := NewScaledBetaDist(2, 3, -5, 5)
	require.NoError(t, err)
	base, err := NewBetaDist(2, 3)
	require.NoError(t, err)

	lo, hi := d.Bounds()
	require.Equal(t, [2]float64{-5, 5}, [2]float64{lo, hi})
	ulo, uhi := d.UnscaledBounds()
	require.Equal(t, [2]float64{0, 1}, [2]float64{ulo, uhi})

	testFunc(t, "ScaledBetaDist.CDF", d.CDF, map[float64]float64{
		-6: 0,
		-5: 0,
		0:  base.CDF(0.5),
		5:  1,
		6:  1,
	})
	testFunc(t, "ScaledBetaDist.PDF", d.PDF, map[float64]float64{
		-6: 0,
		0:  base.PDF(0.5) / 10,
		3:  base.PDF(0.8) / 10,
	})
	require.InDelta(t, base.LLH(0.8)-math.Log(10), d.LLH(3), 1e-14)

	xs := []float64{-4.5, -2, 0, 1.3, 4.6}
	for _, x := range xs {
		require.InDelta(t, x, d.InvCDF(d.CDF(x)), 1e-9, "InvCDF(CDF(%v))", x)
	}
	testLLH(t, "ScaledBetaDist", d, xs)
	testDerivs(t, "ScaledBetaDist", d, xs)
	testInvCDF(t, "ScaledBetaDist", d)
	testSample(t, "ScaledBetaDist", d)
	testParamIndex(t, "ScaledBetaDist", d)
	testClone(t, "ScaledBetaDist", d)
	testNormalized(t, "ScaledBetaDist", d, -5, 5)
}

func TestScaledBounds(t *testing.T) {
	beta, err := NewBetaDist(2, 2)
	require.NoError(t, err)
	for _, b := range [][2]float64{
		{1, 1},
		{2, 1},
		{math.NaN(), 1},
		{0, math.Inf(1)},
		{math.Inf(-1), 0},
	} {
		_, err := NewScaled(beta, b[0], b[1])
		require.ErrorIs(t, err, ErrParameterValue, "bounds %v", b)
	}

	// Distributions with infinite support cannot be scaled.
	norm := StdNormal()
	_, err = NewScaled(norm, 0, 1)
	require.ErrorIs(t, err, ErrParameterValue)
	pareto, err := NewParetoDist(2, 1)
	require.NoError(t, err)
	_, err = NewScaled(pareto, 0, 1)
	require.ErrorIs(t, err, ErrParameterValue)

	d, err := NewScaled(beta, 0, 4)
	require.NoError(t, err)
	require.ErrorIs(t, d.SetLBound(4), ErrParameterValue)
	require.ErrorIs(t, d.SetUBound(-1), ErrParameterValue)
	lo, hi := d.Bounds()
	require.Equal(t, [2]float64{0, 4}, [2]float64{lo, hi})

	require.NoError(t, d.SetUBound(8))
	require.NoError(t, d.SetLBound(6))
	lo, hi = d.Bounds()
	require.Equal(t, [2]float64{6, 8}, [2]float64{lo, hi})
	require.InDelta(t, 0.5, d.CDF(7), 1e-14)
	require.InDelta(t, beta.PDF(0.5)/2, d.PDF(7), 1e-14)
	testNormalized(t, "Scaled[6,8]", d, 6, 8)
}

func TestScaledBoundedPareto(t *testing.T) {
	pareto, err := NewBoundedParetoDist(2, 1, 10)
	require.NoError(t, err)
	d, err := NewScaled(pareto, 0, 1)
	require.NoError(t, err)

	// r = 1/9
	require.InDelta(t, pareto.PDF(1+9*0.2)*9, d.PDF(0.2), 1e-12)
	require.InDelta(t, pareto.Grad(1+9*0.2)*9, d.Grad(0.2), 1e-12)
	require.InDelta(t, pareto.Grad2(1+9*0.2)*81, d.Grad2(0.2), 1e-10)

	xs := []float64{0.05, 0.3, 0.9}
	testLLH(t, "ScaledPareto", d, xs)
	testDerivs(t, "ScaledPareto", d, xs)
	testInvCDF(t, "ScaledPareto", d)
	testNormalized(t, "ScaledPareto", d, 0, 1)

	// Parameters address the base distribution.
	require.NoError(t, d.SetParam(0, 3))
	require.Equal(t, 3.0, d.Param(0))
	require.Equal(t, 3.0, d.Base().Alpha())
	require.ErrorIs(t, d.SetParam(0, -1), ErrBadParameter)
	require.Equal(t, 3.0, d.Param(0))
	require.Error(t, d.SetParams(mat.NewVecDense(1, []float64{0})))
	require.Equal(t, 3.0, d.Param(0))
	testNormalized(t, "ScaledPareto(alpha=3)", d, 0, 1)
}

func TestScaledOwnsBase(t *testing.T) {
	beta, err := NewBetaDist(2, 2)
	require.NoError(t, err)
	d, err := NewScaled(beta, 0, 10)
	require.NoError(t, err)

	require.NoError(t, beta.Set(5, 1))
	require.Equal(t, 2.0, d.Param(0))

	b := d.Base()
	require.NoError(t, b.Set(7, 7))
	require.Equal(t, 2.0, d.Param(0))
}
