// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"log/slog"
	"strings"

	"github.com/aclements/go-prior/config"
	"github.com/aclements/go-prior/prior"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

// addPriorFlag registers the --prior flag on cmd.
func addPriorFlag(cmd *cobra.Command, path *string) {
	cmd.Flags().StringVarP(path, "prior", "p", "", "YAML description of the prior")
	_ = cmd.MarkFlagRequired("prior")
}

func loadPrior(path string) (prior.Dist, error) {
	desc, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	d, err := desc.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "building %s", path)
	}
	lo, hi := d.Bounds()
	slog.Debug("loaded prior", "path", path, "kind", desc.Dist.Kind,
		"params", prior.ParamDescs(d, "x"), "values", d.Params().RawVector().Data,
		"lbound", lo, "ubound", hi)
	return d, nil
}

// readInput reads whitespace-separated numbers from r.
func readInput(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		for _, f := range strings.Fields(scanner.Text()) {
			x, err := parseFloat(f)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			xs = append(xs, x)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return xs, nil
}

func parseFloat(s string) (float64, error) {
	x, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, errors.Errorf("not a number: %q", s)
	}
	return x, nil
}

func parseFloats(args []string) ([]float64, error) {
	xs := make([]float64, len(args))
	for i, a := range args {
		x, err := parseFloat(a)
		if err != nil {
			return nil, err
		}
		xs[i] = x
	}
	return xs, nil
}
