// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// prior evaluates, samples and inverts prior distributions described
// in YAML, and computes bivariate normal probabilities.
//
// Usage:
//
//	prior eval -p prior.yaml < xs
//	prior sample -p prior.yaml -n 10 --seed 1
//	prior quantile -p prior.yaml 0.05 0.5 0.95
//	prior bvn [--cdf] h k r
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		slog.Error("prior failed", "err", err)
		os.Exit(1)
	}
}

// NewRootCmd returns the top-level command.
func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "prior",
		Short:         "Work with prior distributions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
				Level:      level,
				TimeFormat: time.Kitchen,
			})))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(NewEvalCmd())
	cmd.AddCommand(NewSampleCmd())
	cmd.AddCommand(NewQuantileCmd())
	cmd.AddCommand(NewBVNCmd())

	return cmd
}
