// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package pkgid

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
)

// Built-in styles.
var (
	// Default uses "::" between segments and "/" in the identifier.
	Default = Style{
		PackageSeparator:    "::",
		IdentifierSeparator: "/",
	}

	// PHP follows Composer: "Google\Cloud\Storage\V1" -> "google/cloudstorage".
	PHP = Style{
		PackageSeparator:    `\`,
		IdentifierSeparator: "/",
		Version:             regexp.MustCompile(`^V[0-9]+(([Aa]lpha|[Bb]eta)[0-9]*)?$`),
	}

	// Ruby follows RubyGems: "Google::Cloud::Storage::V1" -> "google-cloud-storage".
	Ruby = Style{
		PackageSeparator:    "::",
		IdentifierSeparator: "-",
		WordSeparator:       "-",
		Version:             regexp.MustCompile(`^V[0-9]+(([Aa]lpha|[Bb]eta)[0-9]*)?$`),
	}
)

var styles = map[string]Style{
	"default": Default,
	"php":     PHP,
	"ruby":    Ruby,
}

// Lookup returns the built-in style with the given name.
func Lookup(styleName string) (Style, error) {
	s, ok := styles[styleName]
	if !ok {
		return Style{}, fmt.Errorf("unknown package style %q (available: %v)", styleName, StyleNames())
	}
	return s, nil
}

// StyleNames returns the names of the built-in styles, sorted.
func StyleNames() []string {
	return slices.Sorted(maps.Keys(styles))
}
