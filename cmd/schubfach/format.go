// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-schubfach/schubfach/internal/service"
)

func newFormatCmd() *cobra.Command {
	var (
		asFloat32 bool
		bitsHex   string
	)
	cmd := &cobra.Command{
		Use:   "format [value]",
		Short: "Format a single value as its shortest round-trip decimal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				v   float64
				err error
			)
			switch {
			case bitsHex != "":
				if len(args) != 0 {
					return fmt.Errorf("--bits and a positional value are mutually exclusive")
				}
				v, err = service.ParseBits(bitsHex, asFloat32)
			case len(args) == 1:
				v, err = service.ParseValue(args[0])
			default:
				return fmt.Errorf("requires either a value argument or --bits")
			}
			if err != nil {
				return err
			}
			s, _ := service.Format(v, asFloat32)
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asFloat32, "float32", false, "format as binary32 instead of binary64")
	cmd.Flags().StringVar(&bitsHex, "bits", "", "raw hex IEEE 754 bit pattern (with or without 0x), for exact reproduction of seed values")
	return cmd
}
