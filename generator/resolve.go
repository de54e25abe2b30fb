// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"fmt"
	"slices"

	"github.com/albertocavalcante/apinames/resource"
)

// ResourceName is one row of the resource name table handed to templates.
type ResourceName struct {
	// Message is the fully-qualified message name.
	Message string `json:"message"`

	// Field is the simple field name.
	Field string `json:"field"`

	// Entity is the entity name as configured or derived.
	Entity string `json:"entity"`

	// TypeName is the UpperCamel name of the generated resource name
	// type (e.g., "ShelfBookName").
	TypeName string `json:"type_name"`
}

// ResourceNames flattens idx into rows sorted by message, then field.
// A non-empty filter restricts the table to the listed messages.
//
// Entity names from configuration are snake_case and derived ones may be
// UpperCamelCase; both are normalized through resource.EntityNameToName.
func ResourceNames(idx *resource.Index, filter []string) ([]ResourceName, error) {
	if idx == nil {
		return nil, nil
	}

	var rows []ResourceName
	for _, msg := range idx.Messages() {
		if len(filter) > 0 && !slices.Contains(filter, msg) {
			continue
		}
		mc, _ := idx.Get(msg)
		for _, field := range mc.Fields() {
			entity, _ := mc.EntityNameForField(field)
			n, err := resource.EntityNameToName(entity)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: entity name: %w", msg, field, err)
			}
			rows = append(rows, ResourceName{
				Message:  msg,
				Field:    field,
				Entity:   entity,
				TypeName: n.ToUpperCamel() + "Name",
			})
		}
	}
	return rows, nil
}
