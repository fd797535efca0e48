// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"github.com/aclements/go-prior/prior"
	"github.com/spf13/cobra"
)

// NewBVNCmd returns the command that computes bivariate normal
// orthant probabilities.
func NewBVNCmd() *cobra.Command {
	var lower bool

	cmd := &cobra.Command{
		Use:   "bvn h k r",
		Short: "Print P(X >= h, Y >= k) for standard normals with correlation r",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			f := prior.BVNIntegral
			if lower {
				f = prior.BVNCDF
			}
			p, err := f(v[0], v[1], v[2])
			if err != nil {
				return err
			}
			slog.Debug("bvn", "h", v[0], "k", v[1], "r", v[2], "lower", lower)
			fmt.Fprintf(cmd.OutOrStdout(), "%.15g\n", p)
			return nil
		},
	}

	cmd.Flags().BoolVar(&lower, "cdf", false, "compute the lower orthant P(X <= h, Y <= k)")

	return cmd
}
