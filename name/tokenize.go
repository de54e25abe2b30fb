// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package name

import "strings"

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlnum(c byte) bool {
	return isLower(c) || isUpper(c) || isDigit(c)
}

// splitCamel tokenizes s following the package-level rules.
func splitCamel(s string) ([]string, error) {
	if s == "" {
		return nil, &ParseError{Input: s, Reason: "empty"}
	}

	var (
		tokens []string
		cur    strings.Builder
	)
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, strings.ToLower(cur.String()))
			cur.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 {
			return nil, &ParseError{Input: s, Reason: "non-ASCII character"}
		}
		if !isAlnum(c) {
			flush()
			continue
		}
		if isUpper(c) && i > 0 {
			prev := s[i-1]
			switch {
			case isLower(prev) || isDigit(prev):
				flush()
			case isUpper(prev) && i+1 < len(s) && isLower(s[i+1]):
				// Acronym boundary: "HTTPServer" splits before "S".
				flush()
			}
		}
		cur.WriteByte(c)
	}
	flush()

	if len(tokens) == 0 {
		return nil, &ParseError{Input: s, Reason: "no word characters"}
	}
	return tokens, nil
}
