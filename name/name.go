// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package name provides a case-convention-agnostic identifier model.
//
// A [Name] is an ordered list of lowercase ASCII word pieces. Names are
// parsed at the boundary (from snake_case configuration or from camel-case
// schema identifiers) and rendered into whatever convention a target needs,
// so nothing downstream has to branch on the input convention.
//
// Any-camel tokenization rules:
//
//   - a non-alphanumeric byte is a separator and ends the current token
//   - a lowercase letter or digit followed by an uppercase letter starts a token
//   - in an uppercase run followed by a lowercase letter, the last uppercase
//     letter starts a token ("HTTPServer" -> http, server)
//   - digits stay attached to the token in progress ("Server2Config" -> server2, config)
package name

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalid is matched by all parse errors in this package.
var ErrInvalid = errors.New("invalid name")

// ParseError describes why an input could not be parsed into a Name.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid name %q: %s", e.Input, e.Reason)
}

// Is reports whether target is [ErrInvalid].
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalid
}

// Name is an identifier independent of display convention.
// The zero value is the empty name.
type Name struct {
	tokens []string
}

// Snake parses a lower_underscore identifier. Every piece between
// underscores must be non-empty and consist of [a-z0-9].
func Snake(s string) (Name, error) {
	if s == "" {
		return Name{}, &ParseError{Input: s, Reason: "empty"}
	}
	pieces := strings.Split(s, "_")
	for _, p := range pieces {
		if p == "" {
			return Name{}, &ParseError{Input: s, Reason: "empty piece"}
		}
		for i := 0; i < len(p); i++ {
			if !isLower(p[i]) && !isDigit(p[i]) {
				return Name{}, &ParseError{Input: s, Reason: fmt.Sprintf("unexpected %q in snake case", p[i])}
			}
		}
	}
	return Name{tokens: pieces}, nil
}

// AnyCamel parses an identifier written in upper camel, lower camel or a
// mix of camel and separated styles.
func AnyCamel(s string) (Name, error) {
	tokens, err := splitCamel(s)
	if err != nil {
		return Name{}, err
	}
	return Name{tokens: tokens}, nil
}

// From composes a Name from snake_case pieces.
func From(pieces ...string) (Name, error) {
	var n Name
	for _, p := range pieces {
		part, err := Snake(p)
		if err != nil {
			return Name{}, err
		}
		n.tokens = append(n.tokens, part.tokens...)
	}
	return n, nil
}

// UpperCamel composes a Name from camel-case pieces.
func UpperCamel(pieces ...string) (Name, error) {
	var n Name
	for _, p := range pieces {
		part, err := AnyCamel(p)
		if err != nil {
			return Name{}, err
		}
		n.tokens = append(n.tokens, part.tokens...)
	}
	return n, nil
}

// MustSnake is like [Snake] but panics on error.
func MustSnake(s string) Name {
	n, err := Snake(s)
	if err != nil {
		panic(err)
	}
	return n
}

// MustAnyCamel is like [AnyCamel] but panics on error.
func MustAnyCamel(s string) Name {
	n, err := AnyCamel(s)
	if err != nil {
		panic(err)
	}
	return n
}

// Join returns a new Name with the tokens of others appended to n.
func (n Name) Join(others ...Name) Name {
	size := len(n.tokens)
	for _, o := range others {
		size += len(o.tokens)
	}
	tokens := make([]string, 0, size)
	tokens = append(tokens, n.tokens...)
	for _, o := range others {
		tokens = append(tokens, o.tokens...)
	}
	return Name{tokens: tokens}
}

// Tokens returns a copy of the word pieces.
func (n Name) Tokens() []string {
	return slices.Clone(n.tokens)
}

// Len returns the number of tokens.
func (n Name) Len() int {
	return len(n.tokens)
}

// IsEmpty reports whether n has no tokens.
func (n Name) IsEmpty() bool {
	return len(n.tokens) == 0
}

// Equal reports whether n and o have the same token sequence.
func (n Name) Equal(o Name) bool {
	return slices.Equal(n.tokens, o.tokens)
}

// String returns the snake_case rendering.
func (n Name) String() string {
	return n.ToSnake()
}
