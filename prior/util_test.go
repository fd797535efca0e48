// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/mat"
)

func aeq(expect, got float64) bool {
	return expect == got || math.Abs(expect-got) < 0.00001
}

// testFunc checks f against a table of expected values.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if math.IsNaN(want) && math.IsNaN(got) {
			continue
		}
		if !aeq(want, got) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
		}
	}
}

// testNormalized checks that d.PDF integrates to 1 over [lo, hi].
func testNormalized(t *testing.T, name string, d Dist, lo, hi float64) {
	t.Helper()
	if got := quad.Fixed(d.PDF, lo, hi, 200, nil, 1); math.Abs(got-1) > 1e-8 {
		t.Errorf("%s: integral of PDF over [%v, %v] = %v, want 1", name, lo, hi, got)
	}
}

// testDerivs checks Grad and Grad2 against finite differences of LLH
// and checks that GradGrad2Accumulate adds the same values.
func testDerivs(t *testing.T, name string, d Dist, xs []float64) {
	t.Helper()
	for _, x := range xs {
		g := fd.Derivative(d.LLH, x, &fd.Settings{Formula: fd.Central})
		if got := d.Grad(x); !scalar.EqualWithinAbsOrRel(got, g, 1e-6, 1e-6) {
			t.Errorf("%s.Grad(%v) = %v, finite difference %v", name, x, got, g)
		}
		g2 := fd.Derivative(d.LLH, x, &fd.Settings{Formula: fd.Central2nd})
		if got := d.Grad2(x); !scalar.EqualWithinAbsOrRel(got, g2, 1e-4, 1e-4) {
			t.Errorf("%s.Grad2(%v) = %v, finite difference %v", name, x, got, g2)
		}

		ag, ag2 := 1.0, 2.0
		d.GradGrad2Accumulate(x, &ag, &ag2)
		if !scalar.EqualWithinAbsOrRel(ag, 1+d.Grad(x), 1e-12, 1e-12) ||
			!scalar.EqualWithinAbsOrRel(ag2, 2+d.Grad2(x), 1e-12, 1e-12) {
			t.Errorf("%s.GradGrad2Accumulate(%v) gave (%v, %v), want (%v, %v)",
				name, x, ag-1, ag2-2, d.Grad(x), d.Grad2(x))
		}
	}
}

// testLLH checks that LLH is the log of PDF and that LLH - RLLH does
// not depend on x.
func testLLH(t *testing.T, name string, d Dist, xs []float64) {
	t.Helper()
	c := d.LLH(xs[0]) - d.RLLH(xs[0])
	for _, x := range xs {
		if got, want := d.LLH(x), math.Log(d.PDF(x)); !scalar.EqualWithinAbsOrRel(got, want, 1e-10, 1e-10) {
			t.Errorf("%s.LLH(%v) = %v, want log(PDF) = %v", name, x, got, want)
		}
		if got := d.LLH(x) - d.RLLH(x); !scalar.EqualWithinAbsOrRel(got, c, 1e-10, 1e-10) {
			t.Errorf("%s: LLH-RLLH at %v = %v, want constant %v", name, x, got, c)
		}
	}
}

// testInvCDF checks that CDF(InvCDF(u)) = u and that InvCDF maps 0
// and 1 to the support bounds.
func testInvCDF(t *testing.T, name string, d Dist) {
	t.Helper()
	for _, u := range []float64{0.001, 0.05, 0.25, 0.5, 0.75, 0.95, 0.999} {
		if got := d.CDF(d.InvCDF(u)); math.Abs(got-u) > 1e-9 {
			t.Errorf("%s.CDF(InvCDF(%v)) = %v", name, u, got)
		}
	}
	lo, hi := d.Bounds()
	if got := d.InvCDF(0); got != lo {
		t.Errorf("%s.InvCDF(0) = %v, want %v", name, got, lo)
	}
	if got := d.InvCDF(1); got != hi {
		t.Errorf("%s.InvCDF(1) = %v, want %v", name, got, hi)
	}
	for _, u := range []float64{-0.5, 1.5, math.NaN()} {
		if got := d.InvCDF(u); !math.IsNaN(got) {
			t.Errorf("%s.InvCDF(%v) = %v, want NaN", name, u, got)
		}
	}
}

// testSample checks that sampling is reproducible and stays in the
// support.
func testSample(t *testing.T, name string, d Dist) {
	t.Helper()
	r1, r2 := rand.New(rand.NewSource(1)), rand.New(rand.NewSource(1))
	lo, hi := d.Bounds()
	for i := 0; i < 100; i++ {
		x1, x2 := d.Sample(r1), d.Sample(r2)
		if x1 != x2 {
			t.Fatalf("%s.Sample not reproducible: %v != %v", name, x1, x2)
		}
		if x1 < lo || x1 > hi {
			t.Fatalf("%s.Sample = %v outside [%v, %v]", name, x1, lo, hi)
		}
	}
}

// testParamIndex checks the quiet positional accessors.
func testParamIndex(t *testing.T, name string, d Dist) {
	t.Helper()
	n := d.NumParams()
	if len(d.ParamNames()) != n || len(d.ParamLBound()) != n || len(d.ParamUBound()) != n {
		t.Errorf("%s: parameter metadata lengths do not match NumParams %d", name, n)
	}
	for _, idx := range []int{-1, n, n + 5} {
		if got := d.Param(idx); !math.IsNaN(got) {
			t.Errorf("%s.Param(%d) = %v, want NaN", name, idx, got)
		}
		before := d.Params()
		if err := d.SetParam(idx, 0.5); err != nil {
			t.Errorf("%s.SetParam(%d) = %v, want nil", name, idx, err)
		}
		if !mat.Equal(before, d.Params()) {
			t.Errorf("%s.SetParam(%d) changed parameters from %v to %v", name, idx, mat.Formatted(before.T()), mat.Formatted(d.Params().T()))
		}
	}
	if !d.CheckParams(d.Params()) {
		t.Errorf("%s.CheckParams rejects current parameters %v", name, mat.Formatted(d.Params().T()))
	}
}

// testClone checks that a clone is independent of the original.
func testClone(t *testing.T, name string, d Dist) {
	t.Helper()
	c := d.Clone()
	if !mat.Equal(c.Params(), d.Params()) {
		t.Fatalf("%s: clone parameters differ", name)
	}
	x := d.InvCDF(0.3)
	if c.PDF(x) != d.PDF(x) {
		t.Errorf("%s: clone PDF(%v) = %v, want %v", name, x, c.PDF(x), d.PDF(x))
	}
	p := c.Params()
	p.SetVec(0, p.AtVec(0)*1.5+0.25)
	if err := c.SetParams(p); err != nil {
		t.Fatalf("%s: SetParams on clone: %v", name, err)
	}
	if mat.Equal(c.Params(), d.Params()) {
		t.Errorf("%s: modifying clone modified original", name)
	}
}
