// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines the interface for per-ecosystem package
// metadata generators.
package generator

import (
	"context"

	"github.com/albertocavalcante/apinames/model"
)

// Generator is the interface that all metadata generators must implement.
type Generator interface {
	// Metadata returns information about this generator.
	Metadata() Metadata

	// Generate produces output files from the service description and the
	// names resolved for it.
	Generate(ctx context.Context, svc *model.Service, cfg Config) (*Output, error)
}

// Metadata describes a generator.
type Metadata struct {
	// Name is the short identifier, also the language settings key
	// (e.g., "php", "ruby").
	Name string

	// Version is the generator version (semver).
	Version string

	// Description is a human-readable description.
	Description string

	// Style is the package identifier style name understood by pkgid.Lookup.
	Style string

	// FileExtensions lists typical output extensions (e.g., [".json"]).
	FileExtensions []string
}
