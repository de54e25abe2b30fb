// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import "github.com/albertocavalcante/apinames/resource"

// Config contains generator configuration.
type Config struct {
	// PackageName is the target package name (e.g., `Google\Cloud\Library\V1`).
	PackageName string

	// DomainLayerLocation overrides the vendor part of the package
	// identifier when non-empty.
	DomainLayerLocation string

	// Resources holds the resolved resource names of the run.
	Resources *resource.Index

	// Messages filters the resource name table to specific fully-qualified
	// message names (empty = all).
	Messages []string

	// Source is the service description path (for headers).
	Source string

	// Options contains target-specific options.
	Options map[string]string
}

// Option returns a target-specific option with default.
func (c Config) Option(key, defaultValue string) string {
	if v, ok := c.Options[key]; ok {
		return v
	}
	return defaultValue
}
