// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package resource resolves which message fields reference resources and
// which entity name each of those fields maps to.
//
// A [MessageConfig] is built either from an explicit configuration record
// ([FromConfig]) or by scanning the resource annotations of a message
// ([FromAnnotations]). The two paths are exclusive for a given message;
// [BuildIndex] applies that rule to a whole service description.
package resource

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/albertocavalcante/apinames/model"
	"github.com/albertocavalcante/apinames/name"
)

// MessageConfig maps the fields of one message to resource entity names.
// It is immutable and safe for concurrent use.
type MessageConfig struct {
	messageName string
	fieldEntity map[string]string
}

// FromConfig builds a MessageConfig from an explicit record. The message
// name is qualified against defaultPackage; entity names are copied verbatim
// and not checked against any registry.
func FromConfig(rec model.ResourceNameGeneration, defaultPackage string) *MessageConfig {
	fieldEntity := maps.Clone(rec.FieldEntityMap)
	if fieldEntity == nil {
		fieldEntity = make(map[string]string)
	}
	return &MessageConfig{
		messageName: QualifyMessageName(defaultPackage, rec.MessageName),
		fieldEntity: fieldEntity,
	}
}

// FromAnnotations builds a MessageConfig from the resource references on
// the fields of msg. A reference uses its Type, or ChildType when Type is
// empty. A reference to a type missing from reg fails with
// [*UnknownResourceReferenceError].
func FromAnnotations(msg *model.Message, reg *Registry) (*MessageConfig, error) {
	fieldEntity := make(map[string]string)
	for _, f := range msg.Fields {
		ref := f.ResourceReference
		if ref == nil {
			continue
		}
		typ := ref.Type
		if typ == "" {
			typ = ref.ChildType
		}
		d, ok := reg.Lookup(typ)
		if !ok {
			return nil, &UnknownResourceReferenceError{
				Message: msg.FullName,
				Field:   f.Name,
				Type:    typ,
				Known:   reg.Types(),
			}
		}
		entity, err := d.DerivedEntityName()
		if err != nil {
			return nil, fmt.Errorf("resource type %q: entity name: %w", typ, err)
		}
		fieldEntity[f.Name] = entity
	}
	return &MessageConfig{messageName: msg.FullName, fieldEntity: fieldEntity}, nil
}

// QualifyMessageName returns messageName unchanged when it is already
// qualified, otherwise defaultPackage + "." + messageName.
func QualifyMessageName(defaultPackage, messageName string) string {
	return model.Qualify(defaultPackage, messageName)
}

// MessageName returns the fully-qualified message name.
func (c *MessageConfig) MessageName() string {
	return c.messageName
}

// EntityNameForField returns the entity name mapped to fieldSimpleName.
// The second result is false for fields that do not reference a resource.
func (c *MessageConfig) EntityNameForField(fieldSimpleName string) (string, bool) {
	e, ok := c.fieldEntity[fieldSimpleName]
	return e, ok
}

// Fields returns the names of the mapped fields, sorted.
func (c *MessageConfig) Fields() []string {
	return slices.Sorted(maps.Keys(c.fieldEntity))
}

// FieldEntityMap returns a copy of the field to entity name mapping.
func (c *MessageConfig) FieldEntityMap() map[string]string {
	return maps.Clone(c.fieldEntity)
}

// Len returns the number of mapped fields.
func (c *MessageConfig) Len() int {
	return len(c.fieldEntity)
}

// EntityNameToName converts an entity name to a [name.Name]. Hand-written
// configuration uses snake_case and annotation-derived names use
// UpperCamelCase; an underscore selects the snake parser.
func EntityNameToName(entityName string) (name.Name, error) {
	if strings.Contains(entityName, "_") {
		return name.Snake(entityName)
	}
	return name.AnyCamel(entityName)
}
