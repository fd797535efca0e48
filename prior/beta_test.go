// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestBetaDist(t *testing.T) {
	d, err := NewBetaDist(2, 3)
	require.NoError(t, err)
	ref := distuv.Beta{Alpha: 2, Beta: 3}

	xs := []float64{0.05, 0.2, 0.5, 0.7, 0.93}
	for _, x := range xs {
		require.InDelta(t, ref.Prob(x), d.PDF(x), 1e-12, "PDF(%v)", x)
		require.InDelta(t, ref.CDF(x), d.CDF(x), 1e-12, "CDF(%v)", x)
	}
	// B(2,3) = 1/12, so f(x) = 12 x (1-x)^2.
	testFunc(t, "BetaDist.PDF", d.PDF, map[float64]float64{
		-0.5: 0,
		0:    0,
		0.5:  1.5,
		1:    0,
		1.5:  0,
	})
	testFunc(t, "BetaDist.CDF", d.CDF, map[float64]float64{-1: 0, 0: 0, 1: 1, 2: 1})

	testLLH(t, "BetaDist", d, xs)
	testDerivs(t, "BetaDist", d, xs)
	testInvCDF(t, "BetaDist", d)
	testSample(t, "BetaDist", d)
	testParamIndex(t, "BetaDist", d)
	testClone(t, "BetaDist", d)
	testNormalized(t, "BetaDist", d, 0, 1)
}

func TestBetaDistParams(t *testing.T) {
	for _, p := range [][2]float64{{0, 1}, {1, -1}, {math.NaN(), 2}} {
		_, err := NewBetaDist(p[0], p[1])
		require.ErrorIs(t, err, ErrBadParameter, "NewBetaDist(%v, %v)", p[0], p[1])
	}
	d, err := NewBetaDist(1, 1)
	require.NoError(t, err)
	require.InDelta(t, 1.0, d.PDF(0.3), 1e-15)
	require.Equal(t, 0.0, d.Grad(0.3))
	require.Equal(t, []string{"alpha", "beta"}, d.ParamNames())
	require.Equal(t, []float64{0, 0}, d.ParamLBound())
}
