// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package model defines the service description consumed by the naming layer.
//
// A service description is a flattened view of a protocol schema: the messages
// of one API package, the fields of each message with their optional resource
// reference annotations, and the resource definitions those annotations point to.
// It is read from YAML or JSON (JSON being a subset of YAML).
package model

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// PackageSeparator separates the package from the simple name in a
// fully-qualified message name.
const PackageSeparator = "."

// Service is a parsed service description.
type Service struct {
	// Package is the schema package (e.g., "google.example.library.v1").
	Package string `yaml:"package"`

	// Messages lists the messages declared in the package.
	Messages []*Message `yaml:"messages"`

	// Resources lists the resource types known to this run.
	Resources []ResourceDefinition `yaml:"resources,omitempty"`
}

// Message is a schema message.
type Message struct {
	// Name is the message name as written in the description. It may be
	// unqualified, in which case it belongs to the service package.
	Name string `yaml:"name"`

	// FullName is the fully-qualified name, filled in by Parse.
	FullName string `yaml:"-"`

	// Fields lists the message fields in declaration order.
	Fields []Field `yaml:"fields,omitempty"`
}

// Field is a message field.
type Field struct {
	// Name is the simple field name (e.g., "parent").
	Name string `yaml:"name"`

	// ResourceReference is set when the field identifies a resource.
	ResourceReference *ResourceReference `yaml:"resource_reference,omitempty"`
}

// ResourceReference is the resource annotation on a field.
// A reference points either to a concrete resource type or, when Type is
// empty, to the type whose child collection the field names.
type ResourceReference struct {
	Type      string `yaml:"type,omitempty"`
	ChildType string `yaml:"child_type,omitempty"`
}

// ResourceDefinition declares a resource type.
type ResourceDefinition struct {
	// Type is the resource type key (e.g., "library.googleapis.com/Book").
	Type string `yaml:"type"`

	// Pattern lists the resource name templates.
	Pattern []string `yaml:"pattern,omitempty"`

	// EntityName overrides the entity name derived from Type.
	EntityName string `yaml:"entity_name,omitempty"`
}

// ResourceNameGeneration is an explicit configuration record mapping the
// fields of one message to resource entity names.
type ResourceNameGeneration struct {
	// MessageName may be unqualified; it is then resolved against the
	// default package.
	MessageName string `json:"message_name" yaml:"message_name" toml:"message_name" mapstructure:"message_name" validate:"required"`

	// FieldEntityMap maps field simple names to entity names.
	FieldEntityMap map[string]string `json:"field_entity_map" yaml:"field_entity_map" toml:"field_entity_map" mapstructure:"field_entity_map"`
}

// Qualify returns name unchanged if it already contains a package separator,
// otherwise it prefixes name with pkg.
func Qualify(pkg, name string) string {
	if strings.Contains(name, PackageSeparator) {
		return name
	}
	return pkg + PackageSeparator + name
}

// HasResourceReferences reports whether any field of m carries a resource
// reference.
func (m *Message) HasResourceReferences() bool {
	for _, f := range m.Fields {
		if f.ResourceReference != nil {
			return true
		}
	}
	return false
}

// Message returns the message with the given fully-qualified name.
func (s *Service) Message(fullName string) (*Message, bool) {
	for _, m := range s.Messages {
		if m.FullName == fullName {
			return m, true
		}
	}
	return nil, false
}

// Load reads and parses a service description file.
func Load(path string) (*Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read service description: %w", err)
	}
	svc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return svc, nil
}

// Parse decodes a service description and fills in fully-qualified
// message names. Unknown keys are rejected.
func Parse(data []byte) (*Service, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var svc Service
	if err := dec.Decode(&svc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty service description")
		}
		return nil, fmt.Errorf("decode service description: %w", err)
	}

	if err := svc.normalize(); err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *Service) normalize() error {
	if s.Package == "" {
		return errors.New("service description: missing package")
	}

	seen := make(map[string]bool, len(s.Messages))
	for i, m := range s.Messages {
		if m == nil || m.Name == "" {
			return fmt.Errorf("message %d: missing name", i)
		}
		m.FullName = Qualify(s.Package, m.Name)
		if seen[m.FullName] {
			return fmt.Errorf("message %q declared more than once", m.FullName)
		}
		seen[m.FullName] = true

		for j, f := range m.Fields {
			if f.Name == "" {
				return fmt.Errorf("message %q: field %d: missing name", m.FullName, j)
			}
		}
	}

	for i, r := range s.Resources {
		if r.Type == "" {
			return fmt.Errorf("resource %d: missing type", i)
		}
	}
	return nil
}
