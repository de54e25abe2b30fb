// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package php generates Composer package metadata.
package php

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/albertocavalcante/apinames/generator"
	"github.com/albertocavalcante/apinames/model"
	"github.com/albertocavalcante/apinames/name"
	"github.com/albertocavalcante/apinames/pkgid"
)

// Generator implements [generator.Generator] for PHP (Composer).
type Generator struct{}

// NewGenerator creates a new PHP generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "php",
		Version:        "1.0.0",
		Description:    "Generate composer.json package metadata",
		Style:          "php",
		FileExtensions: []string{".json"},
	}
}

// Generate produces composer.json for the configured package.
func (g *Generator) Generate(ctx context.Context, svc *model.Service, cfg generator.Config) (*generator.Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id, err := pkgid.PHP.Derive(cfg.PackageName, cfg.DomainLayerLocation)
	if err != nil {
		return nil, fmt.Errorf("php: %w", err)
	}

	rows, err := generator.ResourceNames(cfg.Resources, cfg.Messages)
	if err != nil {
		return nil, fmt.Errorf("php: %w", err)
	}

	manifest := composerManifest{
		Name:        id.String(),
		Description: id.Service.ToSeparated(" ", name.Title) + " client library",
		License:     cfg.Option("license", "Apache-2.0"),
		Autoload: composerAutoload{
			PSR4: map[string]string{namespace(cfg.PackageName): "src/"},
		},
		Extra: composerExtra{
			APIPackage:    svc.Package,
			MetadataName:  id.MetadataName(),
			ResourceNames: rows,
		},
	}

	data, err := json.MarshalIndent(manifest, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("php: encode composer.json: %w", err)
	}

	out := generator.NewOutput()
	out.Add("composer.json", append(data, '\n'))
	return out, nil
}

// namespace returns the PSR-4 prefix for a PHP package name.
func namespace(packageName string) string {
	return strings.TrimPrefix(packageName, pkgid.PHP.PackageSeparator) + pkgid.PHP.PackageSeparator
}
