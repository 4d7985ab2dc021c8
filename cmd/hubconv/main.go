// Copyright 2025 The HUBsim Authors. All rights reserved.

// hubconv converts values between the textual forms of the hub format:
// decimal numbers, packed hex words and packed binary words.
//
//	hubconv 3.14159 0x40C90FDB "0|10000001|000000000000000000000001"
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	hub "github.com/HUBformat/HUBsim"
	"github.com/HUBformat/HUBsim/hubio"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var interactive bool
	cmd := &cobra.Command{
		Use:   "hubconv [value ...]",
		Short: "convert between decimal, hex and binary hub values",
		Long: "hubconv parses each argument as a decimal number, a packed hex word\n" +
			"(0x prefix) or a packed binary word, and prints every rendering of\n" +
			"the quantized value.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return convertLines(cmd)
			}
			if len(args) == 0 {
				return cmd.Usage()
			}
			for _, arg := range args {
				if err := convert(cmd, arg); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "read values from stdin, one per line")
	return cmd
}

func convert(cmd *cobra.Command, arg string) error {
	v, err := hubio.Parse(arg)
	if err != nil {
		return err
	}
	printValue(cmd, arg, v)
	return nil
}

func convertLines(cmd *cobra.Command) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := convert(cmd, line); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
		}
	}
	return scanner.Err()
}

func printValue(cmd *cobra.Command, arg string, v hub.Value) {
	fl := v.Fields()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", arg)
	fmt.Fprintf(out, "  value:    %s\n", v)
	fmt.Fprintf(out, "  hex:      %s\n", v.HexString())
	fmt.Fprintf(out, "  binary:   %s\n", v.BinaryString())
	fmt.Fprintf(out, "  fields:   sign=%d exp=%d frac=0x%X\n", fl.Sign, fl.CustomExp, fl.CustomFrac)
	fmt.Fprintf(out, "  storage:  0x%016X\n", v.Bits())
}
