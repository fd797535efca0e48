// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewQuantileCmd returns the command that inverts a prior's CDF.
func NewQuantileCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "quantile u...",
		Short: "Print the quantiles of a prior at probabilities u",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			us, err := parseFloats(args)
			if err != nil {
				return err
			}
			for _, u := range us {
				if !(u >= 0 && u <= 1) {
					return errors.Errorf("probability %v not in [0, 1]", u)
				}
			}
			d, err := loadPrior(path)
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout(), "u", "x")
			for _, u := range us {
				t.Append(row(u, d.InvCDF(u)))
			}
			t.Render()
			return nil
		},
	}

	addPriorFlag(cmd, &path)

	return cmd
}
