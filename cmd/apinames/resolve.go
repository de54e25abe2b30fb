// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newResolveCmd(a *app) *cobra.Command {
	var (
		src      source
		messages []string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resource name table of a service description",
		Long: `Resolve the resource fields of every message and print one row per
field. Messages listed in the config file's resource_name_generation
section use the explicit mapping; every other message is resolved from
its resource reference annotations.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			in, err := a.load(cmd.Context(), src)
			if err != nil {
				return err
			}
			rows, err := in.rows(messages)
			if err != nil {
				return err
			}

			if format == formatJSON {
				if rows == nil {
					return writeJSON(a.stdout, []any{})
				}
				return writeJSON(a.stdout, rows)
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "MESSAGE\tFIELD\tENTITY\tTYPE")
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Message, r.Field, r.Entity, r.TypeName)
			}
			return tw.Flush()
		},
	}

	src.addFlags(cmd)
	cmd.Flags().StringSliceVarP(&messages, "messages", "m", nil, "Messages to include (default: all)")
	cmd.Flags().StringVar(&format, "format", formatHuman, "Output format (human, json)")
	return cmd
}
