// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

// NewSampleCmd returns the command that draws samples from a prior.
func NewSampleCmd() *cobra.Command {
	var (
		path    string
		n       int
		seed    int64
		summary bool
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw samples from a prior",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 0 {
				return errors.Errorf("negative sample count %d", n)
			}
			d, err := loadPrior(path)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			slog.Debug("sampling", "n", n, "seed", seed)

			rng := rand.New(rand.NewSource(seed))
			out := cmd.OutOrStdout()
			xs := make([]float64, n)
			for i := range xs {
				xs[i] = d.Sample(rng)
				if !summary {
					fmt.Fprintf(out, "%.17g\n", xs[i])
				}
			}
			if summary {
				printSummary(out, xs)
			}
			return nil
		},
	}

	addPriorFlag(cmd, &path)
	cmd.Flags().IntVarP(&n, "n", "n", 1, "number of samples")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: time based)")
	cmd.Flags().BoolVar(&summary, "summary", false, "print summary statistics instead of the samples")

	return cmd
}

// printSummary describes the sample xs.
func printSummary(w io.Writer, xs []float64) {
	if len(xs) == 0 {
		fmt.Fprintln(w, "N 0")
		return
	}
	sort.Float64s(xs)
	mean, std := stat.MeanStdDev(xs, nil)
	fmt.Fprintf(w, "N %d  mean %.6g  std dev %.6g\n\n", len(xs), mean, std)

	// Quartiles and tails.
	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	t := newTable(w, "", "x")
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		var x float64
		switch p {
		case 0:
			x = xs[0]
		case 100:
			x = xs[len(xs)-1]
		default:
			x = stat.Quantile(float64(p)/100, stat.Empirical, xs, nil)
		}
		t.Append([]string{label, fmt.Sprintf("%.6g", x)})
	}
	t.Render()
}
