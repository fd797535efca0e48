// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config builds prior distributions from YAML descriptions.
//
// A description names a leaf distribution and an optional list of
// wrappers applied in order:
//
//	dist:
//	  kind: normal
//	  params: {mu: 0, sigma: 2}
//	wrap:
//	  - truncate: {lbound: -1, ubound: .inf}
//	  - scale: {lbound: 0, ubound: 10}
//
// Numbers may be given as YAML numbers (including .inf and -.inf) or
// as strings such as "inf" and "1e-3".
package config

import (
	"bytes"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/aclements/go-prior/prior"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// ErrConfig is returned, wrapped, for malformed descriptions.
var ErrConfig = errors.New("invalid prior description")

// Prior is the top-level description of a prior.
type Prior struct {
	Dist Leaf   `yaml:"dist"`
	Wrap []Wrap `yaml:"wrap,omitempty"`
}

// Leaf describes a leaf distribution. LBound and UBound are optional
// and behave like an Interval. For a Pareto leaf LBound is the scale
// and is required. For a Beta leaf the bounds rescale [0, 1]. For the
// other kinds they truncate.
type Leaf struct {
	Kind   string                 `yaml:"kind"`
	Params map[string]interface{} `yaml:"params,omitempty"`
	LBound interface{}            `yaml:"lbound,omitempty"`
	UBound interface{}            `yaml:"ubound,omitempty"`
}

// Wrap is one adaptor. Exactly one field must be set.
type Wrap struct {
	Truncate *Interval `yaml:"truncate,omitempty"`
	Scale    *Interval `yaml:"scale,omitempty"`
}

// Interval is a pair of bounds. A missing bound keeps the bound of
// the distribution it applies to.
type Interval struct {
	LBound interface{} `yaml:"lbound,omitempty"`
	UBound interface{} `yaml:"ubound,omitempty"`
}

// kinds maps each leaf kind to its parameter names in order.
var kinds = map[string][]string{
	"normal": {"mu", "sigma"},
	"pareto": {"alpha"},
	"gamma":  {"scale", "shape"},
	"beta":   {"alpha", "beta"},
}

// Kinds returns the supported leaf kinds.
func Kinds() []string {
	var ks []string
	for k := range kinds {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

// Parse decodes a YAML description. Unknown fields are rejected.
func Parse(data []byte) (*Prior, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var p Prior
	if err := dec.Decode(&p); err != nil {
		if err == io.EOF {
			return nil, errors.Wrap(ErrConfig, "empty description")
		}
		return nil, errors.Wrap(err, "decoding prior description")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads and decodes the description in file path.
func Load(path string) (*Prior, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return p, nil
}

// Validate checks the structure of p without constructing anything.
// All problems are reported together.
func (p *Prior) Validate() error {
	var result *multierror.Error
	names, ok := kinds[strings.ToLower(p.Dist.Kind)]
	if !ok {
		result = multierror.Append(result, errors.Wrapf(ErrConfig, "unknown kind %q (want one of %v)", p.Dist.Kind, Kinds()))
	} else {
		for name := range p.Dist.Params {
			if !contains(names, name) {
				result = multierror.Append(result, errors.Wrapf(ErrConfig, "%s: unknown parameter %q", p.Dist.Kind, name))
			}
		}
		for _, name := range names {
			if _, ok := p.Dist.Params[name]; !ok {
				result = multierror.Append(result, errors.Wrapf(ErrConfig, "%s: missing parameter %q", p.Dist.Kind, name))
			}
		}
	}
	for i, w := range p.Wrap {
		if (w.Truncate == nil) == (w.Scale == nil) {
			result = multierror.Append(result, errors.Wrapf(ErrConfig, "wrap[%d]: need exactly one of truncate or scale", i))
		}
	}
	return result.ErrorOrNil()
}

// Build constructs the described distribution.
func (p *Prior) Build() (prior.Dist, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	d, err := p.Dist.build()
	if err != nil {
		return nil, errors.Wrapf(err, "dist %s", p.Dist.Kind)
	}
	for i, w := range p.Wrap {
		switch {
		case w.Truncate != nil:
			lo, hi, err := w.Truncate.bounds(d)
			if err == nil {
				d, err = prior.NewTruncated(d, lo, hi)
			}
			if err != nil {
				return nil, errors.Wrapf(err, "wrap[%d]: truncate", i)
			}
		case w.Scale != nil:
			lo, hi, err := w.Scale.bounds(d)
			if err == nil {
				d, err = prior.NewScaled(d, lo, hi)
			}
			if err != nil {
				return nil, errors.Wrapf(err, "wrap[%d]: scale", i)
			}
		}
	}
	return d, nil
}

func (l *Leaf) build() (prior.Dist, error) {
	kind := strings.ToLower(l.Kind)
	p, err := l.params(kinds[kind])
	if err != nil {
		return nil, err
	}

	var d prior.Dist
	switch kind {
	case "normal":
		d, err = prior.NewNormalDist(p[0], p[1])
	case "pareto":
		if l.LBound == nil {
			return nil, errors.Wrap(ErrConfig, "pareto requires lbound")
		}
		lb, err := toFloat(l.LBound, 0)
		if err != nil {
			return nil, errors.Wrap(err, "lbound")
		}
		ub, err := toFloat(l.UBound, math.Inf(1))
		if err != nil {
			return nil, errors.Wrap(err, "ubound")
		}
		return prior.NewBoundedParetoDist(p[0], lb, ub)
	case "gamma":
		d, err = prior.NewGammaDist(p[0], p[1])
	case "beta":
		d, err = prior.NewBetaDist(p[0], p[1])
	default:
		return nil, errors.Wrapf(ErrConfig, "unknown kind %q", l.Kind)
	}
	if err != nil || (l.LBound == nil && l.UBound == nil) {
		return d, err
	}

	lo, hi, err := (&Interval{l.LBound, l.UBound}).bounds(d)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "normal":
		return prior.NewBoundedNormalDist(p[0], p[1], lo, hi)
	case "gamma":
		return prior.NewBoundedGammaDist(p[0], p[1], lo, hi)
	}
	return prior.NewScaledBetaDist(p[0], p[1], lo, hi)
}

// params returns the named parameters in order.
func (l *Leaf) params(names []string) ([]float64, error) {
	var result *multierror.Error
	vals := make([]float64, len(names))
	for i, name := range names {
		v, err := toFloat(l.Params[name], math.NaN())
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "parameter %s", name))
		}
		vals[i] = v
	}
	return vals, result.ErrorOrNil()
}

// bounds returns the interval, taking missing bounds from d's support.
func (iv *Interval) bounds(d prior.Dist) (lo, hi float64, err error) {
	dlo, dhi := d.Bounds()
	if lo, err = toFloat(iv.LBound, dlo); err != nil {
		return 0, 0, errors.Wrap(err, "lbound")
	}
	if hi, err = toFloat(iv.UBound, dhi); err != nil {
		return 0, 0, errors.Wrap(err, "ubound")
	}
	return lo, hi, nil
}

// toFloat converts a loosely typed YAML value. A nil value yields def.
func toFloat(v interface{}, def float64) (float64, error) {
	if v == nil {
		return def, nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, errors.Wrapf(ErrConfig, "%v", err)
	}
	return f, nil
}

func contains(xs []string, x string) bool {
	for _, y := range xs {
		if x == y {
			return true
		}
	}
	return false
}
