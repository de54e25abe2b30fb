// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command apinames derives package identifiers and resource names for
// generated client libraries.
//
// Usage:
//
//	apinames pkgid [--style php|ruby|default] [--override vendor] <package>...
//	apinames resolve --description svc.yaml [--config config.yaml]
//	apinames generate --description svc.yaml --config config.yaml [-l php] [-o dir]
//	apinames version
package main

import (
	"fmt"
	"os"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
