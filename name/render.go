// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package name

import "strings"

// Case selects how each token is cased by [Name.ToSeparated].
type Case int

const (
	// Lower renders every token in lowercase.
	Lower Case = iota
	// Upper renders every token in uppercase.
	Upper
	// Title uppercases the first letter of every token.
	Title
)

// ToUpperCamel renders n as UpperCamelCase ("HttpServer2Config").
func (n Name) ToUpperCamel() string {
	return n.ToSeparated("", Title)
}

// ToLowerCamel renders n as lowerCamelCase ("httpServer2Config").
func (n Name) ToLowerCamel() string {
	if len(n.tokens) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(n.tokens[0])
	for _, t := range n.tokens[1:] {
		b.WriteString(title(t))
	}
	return b.String()
}

// ToSnake renders n as lower_underscore.
func (n Name) ToSnake() string {
	return n.ToSeparated("_", Lower)
}

// ToScreamingSnake renders n as UPPER_UNDERSCORE.
func (n Name) ToScreamingSnake() string {
	return n.ToSeparated("_", Upper)
}

// ToKebab renders n as lower-hyphen.
func (n Name) ToKebab() string {
	return n.ToSeparated("-", Lower)
}

// ToLowerJoined renders n as all tokens lowercased with no separator.
func (n Name) ToLowerJoined() string {
	return n.ToSeparated("", Lower)
}

// ToSeparated joins the tokens with sep, casing each one according to c.
func (n Name) ToSeparated(sep string, c Case) string {
	parts := make([]string, len(n.tokens))
	for i, t := range n.tokens {
		switch c {
		case Upper:
			parts[i] = strings.ToUpper(t)
		case Title:
			parts[i] = title(t)
		default:
			parts[i] = t
		}
	}
	return strings.Join(parts, sep)
}

// title uppercases the first byte of an ASCII token.
func title(t string) string {
	if t == "" || !isLower(t[0]) {
		return t
	}
	return string(t[0]-'a'+'A') + t[1:]
}
