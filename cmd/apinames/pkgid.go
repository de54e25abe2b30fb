// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/apinames/pkgid"
)

type pkgidResult struct {
	Raw          string `json:"raw"`
	Identifier   string `json:"identifier"`
	Vendor       string `json:"vendor"`
	Project      string `json:"project"`
	Version      string `json:"version,omitempty"`
	MetadataName string `json:"metadata_name"`
}

func newPkgidCmd(a *app) *cobra.Command {
	var (
		styleName string
		override  string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "pkgid <package>...",
		Short: "Derive the package identifier of versioned package names",
		Long: `Derive the vendor/project package identifier of each package name.

Styles:
  default  Acme::Library::V2        -> acme/library
  php      Google\Cloud\Storage\V1  -> google/cloudstorage
  ruby     Google::Cloud::PubSub::V1 -> google-cloud-pub-sub`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			style, err := pkgid.Lookup(styleName)
			if err != nil {
				return err
			}

			results := make([]pkgidResult, 0, len(args))
			for _, raw := range args {
				id, err := style.Derive(raw, override)
				if err != nil {
					return err
				}
				a.logger.Debug("derived package identifier",
					"raw", raw,
					"style", styleName,
					"identifier", id.String(),
					"version", id.Version)
				results = append(results, pkgidResult{
					Raw:          raw,
					Identifier:   id.String(),
					Vendor:       id.Vendor,
					Project:      id.Project,
					Version:      id.Version,
					MetadataName: id.MetadataName(),
				})
			}

			if format == formatJSON {
				return writeJSON(a.stdout, results)
			}
			for _, r := range results {
				fmt.Fprintln(a.stdout, r.Identifier)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&styleName, "style", "s", "default",
		"Package naming style ("+strings.Join(pkgid.StyleNames(), ", ")+")")
	cmd.Flags().StringVar(&override, "override", "", "Vendor override (domain layer location)")
	cmd.Flags().StringVar(&format, "format", formatHuman, "Output format (human, json)")
	return cmd
}
