// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package ruby generates RubyGems package metadata.
package ruby

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

// Generator implements [generator.Generator] for Ruby gems.
type Generator struct{}

// NewGenerator creates a new Ruby generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "ruby",
		Version:        "1.0.0",
		Description:    "Generate gemspec package metadata",
		Style:          "ruby",
		FileExtensions: []string{".gemspec", ".json"},
	}
}

// Generate produces <gem>.gemspec and resource_names.json.
func (g *Generator) Generate(ctx context.Context, svc *model.Service, cfg generator.Config) (*generator.Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id, err := pkgid.Ruby.Derive(cfg.PackageName, cfg.DomainLayerLocation)
	if err != nil {
		return nil, fmt.Errorf("ruby: %w", err)
	}
	segments, version, err := pkgid.Ruby.Segments(cfg.PackageName)
	if err != nil {
		return nil, fmt.Errorf("ruby: %w", err)
	}

	rows, err := generator.ResourceNames(cfg.Resources, cfg.Messages)
	if err != nil {
		return nil, fmt.Errorf("ruby: %w", err)
	}

	out := generator.NewOutput()
	out.Add(id.String()+".gemspec", gemspec(id, requirePath(segments, version), svc.Package, cfg))

	if len(rows) > 0 {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("ruby: encode resource names: %w", err)
		}
		out.Add("resource_names.json", append(data, '\n'))
	}
	return out, nil
}

// requirePath returns the library entry point ("google/cloud/pub_sub/v1").
func requirePath(segments []name.Name, version string) string {
	parts := make([]string, 0, len(segments)+1)
	for _, s := range segments {
		parts = append(parts, s.ToSnake())
	}
	if version != "" {
		parts = append(parts, strings.ToLower(version))
	}
	return strings.Join(parts, "/")
}

func gemspec(id pkgid.Identifier, entry, apiPackage string, cfg generator.Config) []byte {
	var b strings.Builder
	b.WriteString("# -*- ruby -*-\n")
	if cfg.Source != "" {
		fmt.Fprintf(&b, "# Generated by apinames from %s. DO NOT EDIT.\n", cfg.Source)
	} else {
		b.WriteString("# Generated by apinames. DO NOT EDIT.\n")
	}
	b.WriteString("\n")
	b.WriteString("Gem::Specification.new do |gem|\n")
	fmt.Fprintf(&b, "  gem.name          = %q\n", id.String())
	fmt.Fprintf(&b, "  gem.summary       = %q\n", id.Service.ToSeparated(" ", name.Title)+" client library")
	fmt.Fprintf(&b, "  gem.license       = %q\n", cfg.Option("license", "Apache-2.0"))
	b.WriteString("  gem.files         = Dir.glob(\"lib/**/*.rb\")\n")
	b.WriteString("  gem.require_paths = [\"lib\"]\n")
	fmt.Fprintf(&b, "  gem.metadata[\"entry_point\"] = %q\n", entry)
	fmt.Fprintf(&b, "  gem.metadata[\"api_package\"] = %q\n", apiPackage)
	b.WriteString("end\n")
	return []byte(b.String())
}
