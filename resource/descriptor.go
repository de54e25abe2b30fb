// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package resource

import (
	"fmt"
	"slices"
	"strings"

	"github.com/albertocavalcante/apinames/model"
	"github.com/albertocavalcante/apinames/name"
)

// Descriptor describes one resource type.
type Descriptor struct {
	// Type is the registry key (e.g., "library.googleapis.com/Book").
	Type string

	// Patterns lists the resource name templates.
	Patterns []string

	// EntityName, when set, replaces the entity name derived from Type.
	EntityName string
}

// DescriptorFromDefinition converts a service description entry.
func DescriptorFromDefinition(def model.ResourceDefinition) Descriptor {
	return Descriptor{
		Type:       def.Type,
		Patterns:   slices.Clone(def.Pattern),
		EntityName: def.EntityName,
	}
}

// DerivedEntityName returns the canonical entity name of the resource:
// EntityName when set, otherwise the snake_case form of the last
// "/"-separated segment of Type ("library.googleapis.com/ShelfBook" -> "shelf_book").
// An entity name that does not parse as a name fails with [name.ErrInvalid].
func (d Descriptor) DerivedEntityName() (string, error) {
	if d.EntityName != "" {
		if _, err := EntityNameToName(d.EntityName); err != nil {
			return "", err
		}
		return d.EntityName, nil
	}
	short := d.Type[strings.LastIndex(d.Type, "/")+1:]
	n, err := name.AnyCamel(short)
	if err != nil {
		return "", err
	}
	return n.ToSnake(), nil
}

// Registry maps resource type keys to descriptors. A Registry is immutable
// once built and safe for concurrent use.
type Registry struct {
	byType map[string]Descriptor
	types  []string
}

// NewRegistry builds a registry. Empty and duplicate type keys are errors,
// as is a descriptor without a valid entity name.
func NewRegistry(descriptors ...Descriptor) (*Registry, error) {
	r := &Registry{byType: make(map[string]Descriptor, len(descriptors))}
	for _, d := range descriptors {
		if d.Type == "" {
			return nil, fmt.Errorf("resource descriptor with empty type")
		}
		if _, exists := r.byType[d.Type]; exists {
			return nil, fmt.Errorf("resource type %q registered more than once", d.Type)
		}
		if _, err := d.DerivedEntityName(); err != nil {
			return nil, fmt.Errorf("resource type %q: entity name: %w", d.Type, err)
		}
		r.byType[d.Type] = d
		r.types = append(r.types, d.Type)
	}
	slices.Sort(r.types)
	return r, nil
}

// RegistryFromService builds a registry from the resources of a service
// description.
func RegistryFromService(svc *model.Service) (*Registry, error) {
	descs := make([]Descriptor, 0, len(svc.Resources))
	for _, def := range svc.Resources {
		descs = append(descs, DescriptorFromDefinition(def))
	}
	return NewRegistry(descs...)
}

// Lookup returns the descriptor registered for typ.
func (r *Registry) Lookup(typ string) (Descriptor, bool) {
	d, ok := r.byType[typ]
	return d, ok
}

// Types returns all registered type keys, sorted.
func (r *Registry) Types() []string {
	return slices.Clone(r.types)
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.types)
}
