// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// paramTable is the metadata shared by every instance of one kind of
// distribution. Tables are package-level and never modified.
type paramTable struct {
	kind   string
	names  []string
	lbound []float64 // exclusive
	ubound []float64 // exclusive
}

func (t *paramTable) Names() []string { return append([]string(nil), t.names...) }
func (t *paramTable) LBound() []float64 { return append([]float64(nil), t.lbound...) }
func (t *paramTable) UBound() []float64 { return append([]float64(nil), t.ubound...) }
func (t *paramTable) NumParams() int { return len(t.names) }

// check returns an error describing every entry of p that is
// non-finite or outside its admissible open interval.
func (t *paramTable) check(p ...float64) error {
	if len(p) != len(t.names) {
		return errors.Wrapf(ErrParameterValue, "%s: got %d parameters, want %d", t.kind, len(p), len(t.names))
	}
	var result *multierror.Error
	for i, v := range p {
		if !isFinite(v) || !(v > t.lbound[i] && v < t.ubound[i]) {
			result = multierror.Append(result, errors.Wrapf(ErrBadParameter,
				"%s: %s=%v outside (%v, %v)", t.kind, t.names[i], v, t.lbound[i], t.ubound[i]))
		}
	}
	return result.ErrorOrNil()
}

// checkVec is check for a gonum vector.
func (t *paramTable) checkVec(p mat.Vector) error {
	return t.check(vecData(p)...)
}

func vecData(p mat.Vector) []float64 {
	if p == nil {
		return nil
	}
	out := make([]float64, p.Len())
	for i := range out {
		out[i] = p.AtVec(i)
	}
	return out
}

// ParamAt returns parameter idx of d. Unlike d.Param, it reports an
// out-of-range index as ErrIndex.
func ParamAt(d Dist, idx int) (float64, error) {
	if idx < 0 || idx >= d.NumParams() {
		return nan, errors.Wrapf(ErrIndex, "index %d not in [0, %d)", idx, d.NumParams())
	}
	return d.Param(idx), nil
}

// SetParamAt sets parameter idx of d. Unlike d.SetParam, it reports an
// out-of-range index as ErrIndex.
func SetParamAt(d Dist, idx int, v float64) error {
	if idx < 0 || idx >= d.NumParams() {
		return errors.Wrapf(ErrIndex, "index %d not in [0, %d)", idx, d.NumParams())
	}
	return d.SetParam(idx, v)
}

// ParamIndex returns the index of the parameter of d called name.
func ParamIndex(d Dist, name string) (int, error) {
	for i, n := range d.ParamNames() {
		if n == name {
			return i, nil
		}
	}
	return -1, errors.Wrapf(ErrIndex, "no parameter named %q in %v", name, d.ParamNames())
}

// ParamByName returns the parameter of d called name.
func ParamByName(d Dist, name string) (float64, error) {
	idx, err := ParamIndex(d, name)
	if err != nil {
		return nan, err
	}
	return d.Param(idx), nil
}

// SetParamByName sets the parameter of d called name.
func SetParamByName(d Dist, name string, v float64) error {
	idx, err := ParamIndex(d, name)
	if err != nil {
		return err
	}
	return d.SetParam(idx, v)
}

// ParamDescs returns a description of each parameter of d qualified
// by the name of the random variable it governs, such as "mu_x".
func ParamDescs(d Dist, varName string) []string {
	names := d.ParamNames()
	for i, n := range names {
		names[i] = fmt.Sprintf("%s_%s", n, varName)
	}
	return names
}
