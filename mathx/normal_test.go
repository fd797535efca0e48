// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 1e-12
}

func TestUnitNormalCDF(t *testing.T) {
	for _, tc := range []struct{ x, want float64 }{
		{math.Inf(-1), 0},
		{-3, 0.0013498980316300946},
		{-1, 0.15865525393145707},
		{0, 0.5},
		{1, 0.8413447460685429},
		{1.959963984540054, 0.975},
		{math.Inf(1), 1},
	} {
		if got := UnitNormalCDF(tc.x); !aeq(tc.want, got) {
			t.Errorf("UnitNormalCDF(%v): want %v, got %v", tc.x, tc.want, got)
		}
	}
	if got := UnitNormalCDF(-40); got < 0 || got > 1e-300 {
		t.Errorf("UnitNormalCDF(-40): want tiny positive, got %v", got)
	}
}

func TestUnitNormalInvCDF(t *testing.T) {
	if got := UnitNormalInvCDF(0); !math.IsInf(got, -1) {
		t.Errorf("UnitNormalInvCDF(0): want -Inf, got %v", got)
	}
	if got := UnitNormalInvCDF(1); !math.IsInf(got, 1) {
		t.Errorf("UnitNormalInvCDF(1): want +Inf, got %v", got)
	}
	for _, u := range []float64{-0.1, 1.1, math.NaN()} {
		if got := UnitNormalInvCDF(u); !math.IsNaN(got) {
			t.Errorf("UnitNormalInvCDF(%v): want NaN, got %v", u, got)
		}
	}
	if got := UnitNormalInvCDF(0.5); !aeq(0, got) {
		t.Errorf("UnitNormalInvCDF(0.5): want 0, got %v", got)
	}
	for _, u := range []float64{1e-10, 0.001, 0.025, 0.3, 0.5, 0.7, 0.975, 0.999999} {
		x := UnitNormalInvCDF(u)
		if got := UnitNormalCDF(x); math.Abs(got-u) > 1e-12*math.Max(1, u/1e-4) {
			t.Errorf("UnitNormalCDF(UnitNormalInvCDF(%v)) = %v", u, got)
		}
	}
}

func TestUnitNormalPDF(t *testing.T) {
	if got := UnitNormalPDF(0); !aeq(invSqrt2Pi, got) {
		t.Errorf("UnitNormalPDF(0): want %v, got %v", invSqrt2Pi, got)
	}
	if got, want := UnitNormalPDF(2), UnitNormalPDF(-2); got != want {
		t.Errorf("UnitNormalPDF not symmetric: %v != %v", got, want)
	}
	if got := UnitNormalPDF(math.Inf(1)); got != 0 {
		t.Errorf("UnitNormalPDF(+Inf): want 0, got %v", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-0.5, 0, 1); got != 0 {
		t.Errorf("Clamp(-0.5): got %v", got)
	}
	if got := Clamp(1.5, 0, 1); got != 1 {
		t.Errorf("Clamp(1.5): got %v", got)
	}
	if got := Clamp(0.25, 0, 1); got != 0.25 {
		t.Errorf("Clamp(0.25): got %v", got)
	}
	if got := Clamp(math.NaN(), 0, 1); !math.IsNaN(got) {
		t.Errorf("Clamp(NaN): got %v", got)
	}
}
