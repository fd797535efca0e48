// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

// PDFEach returns d.PDF(xs[i]) for each i.
func PDFEach(d Dist, xs []float64) []float64 {
	return each(d.PDF, xs)
}

// CDFEach returns d.CDF(xs[i]) for each i.
func CDFEach(d Dist, xs []float64) []float64 {
	return each(d.CDF, xs)
}

// InvCDFEach returns d.InvCDF(us[i]) for each i.
func InvCDFEach(d Dist, us []float64) []float64 {
	return each(d.InvCDF, us)
}

// LLHEach returns d.LLH(xs[i]) for each i.
func LLHEach(d Dist, xs []float64) []float64 {
	return each(d.LLH, xs)
}

func each(f func(float64) float64, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = f(x)
	}
	return res
}

// SumLLH returns the log-likelihood of independent observations xs
// under d.
func SumLLH(d Dist, xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += d.LLH(x)
	}
	return s
}

// AccumulateGradGrad2 returns the sums of d.Grad and d.Grad2 over xs.
func AccumulateGradGrad2(d Dist, xs []float64) (g, g2 float64) {
	for _, x := range xs {
		d.GradGrad2Accumulate(x, &g, &g2)
	}
	return
}
