// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package php

import "github.com/albertocavalcante/apinames/generator"

// composerManifest is the subset of composer.json the generator owns.
type composerManifest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	License     string           `json:"license"`
	Autoload    composerAutoload `json:"autoload"`
	Extra       composerExtra    `json:"extra"`
}

type composerAutoload struct {
	PSR4 map[string]string `json:"psr-4"`
}

type composerExtra struct {
	APIPackage    string                   `json:"api_package"`
	MetadataName  string                   `json:"metadata_name"`
	ResourceNames []generator.ResourceName `json:"resource_names,omitempty"`
}
