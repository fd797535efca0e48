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

// NewEvalCmd returns the command that evaluates a prior at points read
// from stdin.
func NewEvalCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate pdf, cdf, llh and derivatives at points read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadPrior(path)
			if err != nil {
				return err
			}
			xs, err := readInput(cmd.InOrStdin())
			if err != nil {
				return err
			}
			slog.Debug("evaluating", "n", len(xs))

			t := newTable(cmd.OutOrStdout(), "x", "pdf", "cdf", "llh", "grad", "grad2")
			for _, x := range xs {
				t.Append(row(x, d.PDF(x), d.CDF(x), d.LLH(x), d.Grad(x), d.Grad2(x)))
			}
			g, g2 := prior.AccumulateGradGrad2(d, xs)
			t.SetFooter([]string{"total", "", "", fmt.Sprintf("%.6g", prior.SumLLH(d, xs)),
				fmt.Sprintf("%.6g", g), fmt.Sprintf("%.6g", g2)})
			t.Render()
			return nil
		},
	}

	addPriorFlag(cmd, &path)

	return cmd
}
