// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package pkgid derives vendor/project package identifiers from
// hierarchical, versioned package names.
//
// A package name such as "Google\Cloud\Storage\V1" is expected to encode
// <vendor>[\<...>]\<service>[\<version>]. Derivation strips the version,
// then picks the vendor and project parts:
//
//   - with a non-empty override, the identifier is override/<whole name>
//   - with a single segment, the segment is used for both parts
//   - otherwise the first segment is the vendor and the rest the project
//
// Every part is normalized through [name.Name], so "CloudStorage",
// "cloud_storage" and "cloudStorage" all derive the same identifier.
// A segment that starts or ends with a character of the package separator
// ("Acme:::Library") is rejected rather than normalized away.
package pkgid

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/albertocavalcante/apinames/name"
)

// ErrInvalidPackageName is matched by [*InvalidPackageNameError].
var ErrInvalidPackageName = errors.New("invalid package name")

// InvalidPackageNameError reports a package name that cannot produce an
// identifier.
type InvalidPackageNameError struct {
	Raw    string
	Reason string
	Err    error
}

func (e *InvalidPackageNameError) Error() string {
	msg := fmt.Sprintf("invalid package name %q: %s", e.Raw, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying name parse error, if any.
func (e *InvalidPackageNameError) Unwrap() error { return e.Err }

// Is reports whether target is [ErrInvalidPackageName].
func (e *InvalidPackageNameError) Is(target error) bool {
	return target == ErrInvalidPackageName
}

// DefaultVersionPattern matches version segments such as "V1", "v2" and
// "v1beta2".
var DefaultVersionPattern = regexp.MustCompile(`^[vV][0-9]+[a-zA-Z0-9]*$`)

// Style describes the package naming conventions of one ecosystem.
type Style struct {
	// PackageSeparator separates segments of the raw package name.
	PackageSeparator string

	// IdentifierSeparator joins vendor and project in the identifier.
	IdentifierSeparator string

	// WordSeparator joins the words of a part ("" renders "cloudstorage").
	WordSeparator string

	// Version matches a trailing version segment.
	// Nil means DefaultVersionPattern.
	Version *regexp.Regexp
}

// Identifier is a derived vendor/project package identifier.
type Identifier struct {
	Vendor    string
	Project   string
	Separator string

	// Service is the version-stripped package name as a single Name.
	Service name.Name

	// Version is the stripped version segment, or "".
	Version string
}

// String returns Vendor + Separator + Project.
func (id Identifier) String() string {
	return id.Vendor + id.Separator + id.Project
}

// MetadataName returns the display name of the package ("AcmeLibrary").
func (id Identifier) MetadataName() string {
	return id.Service.ToUpperCamel()
}

// Derive derives an identifier with the [Default] style.
func Derive(raw, override string) (Identifier, error) {
	return Default.Derive(raw, override)
}

// Derive derives the identifier for raw. A non-empty override replaces the
// inferred vendor.
func (s Style) Derive(raw, override string) (Identifier, error) {
	names, version, err := s.Segments(raw)
	if err != nil {
		return Identifier{}, err
	}

	service := names[0].Join(names[1:]...)
	id := Identifier{
		Separator: s.IdentifierSeparator,
		Service:   service,
		Version:   version,
	}

	switch {
	case override != "":
		id.Vendor = override
		id.Project = s.render(service)
	case len(names) == 1:
		id.Vendor = s.render(names[0])
		id.Project = id.Vendor
	default:
		id.Vendor = s.render(names[0])
		id.Project = s.render(names[1].Join(names[2:]...))
	}
	return id, nil
}

// Segments strips the trailing version and one leading separator from raw
// and parses every remaining segment. It returns at least one segment, and
// the stripped version.
func (s Style) Segments(raw string) ([]name.Name, string, error) {
	if s.PackageSeparator == "" {
		return nil, "", errors.New("pkgid: style has no package separator")
	}
	invalid := func(reason string, err error) ([]name.Name, string, error) {
		return nil, "", &InvalidPackageNameError{Raw: raw, Reason: reason, Err: err}
	}

	trimmed, version := s.StripVersion(raw)
	trimmed = strings.TrimPrefix(trimmed, s.PackageSeparator)
	if trimmed == "" {
		return invalid("empty package name", nil)
	}

	segments := strings.Split(trimmed, s.PackageSeparator)
	names := make([]name.Name, len(segments))
	for i, seg := range segments {
		if seg == "" {
			return invalid(fmt.Sprintf("empty segment at position %d", i), nil)
		}
		if strings.ContainsAny(seg[:1], s.PackageSeparator) || strings.ContainsAny(seg[len(seg)-1:], s.PackageSeparator) {
			return invalid(fmt.Sprintf("stray separator character in segment %q", seg), nil)
		}
		n, err := name.AnyCamel(seg)
		if err != nil {
			return invalid(fmt.Sprintf("segment %q", seg), err)
		}
		names[i] = n
	}
	return names, version, nil
}

// StripVersion removes a trailing version segment from raw. Only the last
// segment is inspected. It returns the remaining name and the removed
// segment, or raw and "" when the last segment is not a version.
func (s Style) StripVersion(raw string) (rest, version string) {
	re := s.Version
	if re == nil {
		re = DefaultVersionPattern
	}
	rest, last := "", raw
	if i := strings.LastIndex(raw, s.PackageSeparator); i >= 0 {
		rest, last = raw[:i], raw[i+len(s.PackageSeparator):]
	}
	if !re.MatchString(last) {
		return raw, ""
	}
	return rest, last
}

func (s Style) render(n name.Name) string {
	return n.ToSeparated(s.WordSeparator, name.Lower)
}
