// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"github.com/albertocavalcante/apinames/generator"
	"github.com/albertocavalcante/apinames/generators/php"
	"github.com/albertocavalcante/apinames/generators/ruby"
)

func init() {
	generator.Register(php.NewGenerator())
	generator.Register(ruby.NewGenerator())
}
