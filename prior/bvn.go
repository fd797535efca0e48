// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"math"

	"github.com/aclements/go-prior/mathx"
	"github.com/pkg/errors"
)

// bvnEps is the term magnitude below which the BVNIntegral series is
// considered converged.
const bvnEps = 1e-15

// BVNIntegral returns the probability that two standard normal
// variates X and Y with correlation r satisfy X >= ah and Y >= ak.
// By symmetry this is also P(X <= -ah, Y <= -ak).
//
// r must be in [-1, 1]. Infinite thresholds are allowed.
//
// This uses the algorithm of Thomas Donnelly, "Algorithm 462:
// Bivariate Normal Distribution", Communications of the ACM 16(10),
// October 1973, page 638.
func BVNIntegral(ah, ak, r float64) (float64, error) {
	if !(r >= -1 && r <= 1) {
		return nan, errors.Wrapf(ErrParameterValue, "bvn: correlation %v not in [-1, 1]", r)
	}

	// Saturated thresholds reduce to a univariate tail.
	switch {
	case math.IsInf(ah, 1) || math.IsInf(ak, 1):
		return 0, nil
	case math.IsInf(ah, -1):
		return mathx.UnitNormalCDF(-ak), nil
	case math.IsInf(ak, -1):
		return mathx.UnitNormalCDF(-ah), nil
	}

	gh := mathx.UnitNormalCDF(-ah) / 2
	gk := mathx.UnitNormalCDF(-ak) / 2

	if r == 0 {
		return mathx.Clamp(4*gh*gk, 0, 1), nil
	}

	rr := (1 + r) * (1 - r)
	if rr == 0 {
		// Perfect (anti-)correlation.
		b := 0.0
		if r < 0 {
			if ah+ak < 0 {
				b = 2*(gh+gk) - 1
			}
		} else if ah-ak < 0 {
			b = 2 * gk
		} else {
			b = 2 * gh
		}
		return mathx.Clamp(b, 0, 1), nil
	}

	if ah == 0 && ak == 0 {
		return mathx.Clamp(0.25+math.Asin(r)/(2*math.Pi), 0, 1), nil
	}

	sqr := math.Sqrt(rr)
	con := math.Pi * bvnEps

	var b, wh, wk, gw float64
	var is int
	if ah == 0 {
		b = gk
		wh = -ak
		wk = (ah/ak - r) / sqr
		gw = 2 * gk
		is = 1
	} else {
		b = gh
		if ak != 0 {
			b = gh + gk
			if ah*ak < 0 {
				b -= 0.5
			}
		}
		wh = -ah
		wk = (ak/ah - r) / sqr
		gw = 2 * gh
		is = -1
	}

	for {
		sgn := -1.0
		if wk != 0 {
			if math.Abs(wk) == 1 {
				b += sgn * wk * gw * (1 - gw) / 2
			} else {
				if math.Abs(wk) > 1 {
					// Reflect so the series argument is
					// less than 1 in magnitude.
					sgn = -sgn
					wh *= wk
					g2 := mathx.UnitNormalCDF(wh)
					wk = 1 / wk
					if wk < 0 {
						b += 0.5
					}
					b += gw*g2 - (gw+g2)/2
				}
				b += sgn * bvnSeries(wh, wk, con)
			}
		}
		if is >= 0 || ak == 0 {
			break
		}
		// Second pass with the roles of h and k swapped.
		wh = -ak
		wk = (ah/ak - r) / sqr
		gw = 2 * gk
		is = 1
	}
	return mathx.Clamp(b, 0, 1), nil
}

// bvnSeries sums Owen's T function T(wh, wk) for |wk| < 1.
func bvnSeries(wh, wk, con float64) float64 {
	h4 := wh * wh / 2
	a2 := wk * wk
	ex := math.Exp(-h4)
	w2 := h4 * ex
	ap := 1.0
	s2 := ap - ex
	sp := ap
	s1, sn := 0.0, 0.0
	conex := math.Abs(con / wk)
	for {
		cn := ap * s2 / (sn + sp)
		s1 += cn
		if math.Abs(cn) <= conex {
			break
		}
		sn = sp
		sp++
		s2 -= w2
		w2 *= h4 / sp
		ap = -ap * a2
	}
	return (math.Atan(wk) - wk*s1) / (2 * math.Pi)
}

// BVNCDF returns P(X <= x, Y <= y) for standard normal variates X and
// Y with correlation r.
func BVNCDF(x, y, r float64) (float64, error) {
	return BVNIntegral(-x, -y, r)
}

// BVNRectangle returns the probability that standard normal variates
// X and Y with correlation r fall in the box
// [lo[0], hi[0]] x [lo[1], hi[1]].
func BVNRectangle(lo, hi [2]float64, r float64) (float64, error) {
	for i := range lo {
		if !(lo[i] <= hi[i]) {
			return nan, errors.Wrapf(ErrParameterValue, "bvn: invalid box: lbound %v > ubound %v", lo[i], hi[i])
		}
	}
	var p float64
	for _, c := range []struct {
		x, y, sign float64
	}{
		{hi[0], hi[1], 1},
		{lo[0], hi[1], -1},
		{hi[0], lo[1], -1},
		{lo[0], lo[1], 1},
	} {
		f, err := BVNCDF(c.x, c.y, r)
		if err != nil {
			return nan, err
		}
		p += c.sign * f
	}
	return mathx.Clamp(p, 0, 1), nil
}

// BVNormalMass returns the probability mass of the bivariate normal
// distribution with means mu, standard deviations sigma and
// correlation rho inside the box [lo[0], hi[0]] x [lo[1], hi[1]]. This
// is the normalization constant of the same distribution bounded to
// that box.
func BVNormalMass(mu, sigma [2]float64, rho float64, lo, hi [2]float64) (float64, error) {
	var zlo, zhi [2]float64
	for i := range mu {
		if !isFinite(mu[i]) || !isFinite(sigma[i]) || !(sigma[i] > 0) {
			return nan, errors.Wrapf(ErrParameterValue, "bvn: invalid mu=%v sigma=%v", mu[i], sigma[i])
		}
		zlo[i] = (lo[i] - mu[i]) / sigma[i]
		zhi[i] = (hi[i] - mu[i]) / sigma[i]
	}
	return BVNRectangle(zlo, zhi, rho)
}
