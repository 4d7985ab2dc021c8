// Copyright 2025 The HUBsim Authors. All rights reserved.

// hubtab generates the CSV operation tables consumed by hardware test
// benches: either the special-value cross product of an operation or a
// reproducible table over the whole packed domain.
//
//	hubtab --op add --special --numeric
//	hubtab --op mul --samples 100000 --seed 42 --out mul.csv
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/HUBformat/HUBsim/hubio"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		opName  string
		special bool
		numeric bool
		out     string
		cfg     = hubio.DefaultTableConfig()
	)
	cmd := &cobra.Command{
		Use:          "hubtab",
		Short:        "generate CSV operation tables for the hub format",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := hubio.Operations()[opName]
			if !ok {
				return fmt.Errorf("unknown operation %q, have %v", opName, opNames())
			}
			w := io.Writer(cmd.OutOrStdout())
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if special {
				return hubio.WriteSpecial(w, op, numeric)
			}
			return hubio.WriteTable(w, op, cfg)
		},
	}
	cmd.Flags().StringVar(&opName, "op", "add", "operation to tabulate, one of "+fmt.Sprint(opNames()))
	cmd.Flags().BoolVar(&special, "special", false, "cross the named special values instead of sampling the domain")
	cmd.Flags().BoolVar(&numeric, "numeric", false, "mirror hex columns with decimal values (special tables only)")
	cmd.Flags().Uint64Var(&cfg.MaxExhaustive, "max-exhaustive", cfg.MaxExhaustive, "largest domain tabulated exhaustively")
	cmd.Flags().IntVar(&cfg.Samples, "samples", cfg.Samples, "rows to sample when the domain is too large")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "sampling seed; equal seeds regenerate equal tables")
	cmd.Flags().StringVar(&out, "out", "", "output file, stdout when empty")
	return cmd
}

func opNames() []string {
	ops := hubio.Operations()
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
