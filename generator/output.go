// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
)

// Output contains generated files.
type Output struct {
	// Files maps slash-separated relative paths to content.
	Files map[string][]byte
}

// NewOutput creates a new Output.
func NewOutput() *Output {
	return &Output{Files: make(map[string][]byte)}
}

// Add adds a file to the output.
func (o *Output) Add(name string, content []byte) {
	o.Files[name] = content
}

// Merge copies the files of other into o, prefixing each path with dir.
// A path produced twice is an error.
func (o *Output) Merge(dir string, other *Output) error {
	for name, content := range other.Files {
		p := filepath.ToSlash(filepath.Join(dir, name))
		if _, exists := o.Files[p]; exists {
			return fmt.Errorf("output file %q produced twice", p)
		}
		o.Files[p] = content
	}
	return nil
}

// Names returns the file paths, sorted.
func (o *Output) Names() []string {
	return slices.Sorted(maps.Keys(o.Files))
}

// WriteDir writes every file below dir, creating directories as needed.
func (o *Output) WriteDir(dir string) error {
	for _, name := range o.Names() {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		if err := os.WriteFile(path, o.Files[name], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}
