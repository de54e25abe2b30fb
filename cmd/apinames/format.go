// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
)

const (
	formatHuman = "human"
	formatJSON  = "json"
)

func checkFormat(format string) error {
	switch format {
	case formatHuman, formatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported format %q (want %s or %s)", format, formatHuman, formatJSON)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}
