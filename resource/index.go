// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package resource

import (
	"context"
	"fmt"
	"maps"
	"runtime"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/albertocavalcante/apinames/model"
)

// Index holds the message configs of one generation run, keyed by
// fully-qualified message name.
type Index struct {
	mu      sync.RWMutex
	configs map[string]*MessageConfig
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{configs: make(map[string]*MessageConfig)}
}

// Add stores c. A second config for the same message is rejected with
// [*DuplicateMessageError]; configs are never merged.
func (x *Index) Add(c *MessageConfig) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if _, exists := x.configs[c.MessageName()]; exists {
		return &DuplicateMessageError{Message: c.MessageName()}
	}
	x.configs[c.MessageName()] = c
	return nil
}

// Get returns the config for a fully-qualified message name.
func (x *Index) Get(messageName string) (*MessageConfig, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	c, ok := x.configs[messageName]
	return c, ok
}

// Messages returns the indexed message names, sorted.
func (x *Index) Messages() []string {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return slices.Sorted(maps.Keys(x.configs))
}

// Len returns the number of indexed messages.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.configs)
}

// BuildIndex resolves the resource fields of every message in svc.
//
// Messages named by an explicit record are configured from that record.
// Every other message carrying at least one resource reference is resolved
// from its annotations against reg. Resolution runs concurrently and stops
// at the first error.
func BuildIndex(ctx context.Context, svc *model.Service, records []model.ResourceNameGeneration, defaultPackage string, reg *Registry) (*Index, error) {
	idx := NewIndex()

	for _, rec := range records {
		if err := idx.Add(FromConfig(rec, defaultPackage)); err != nil {
			return nil, err
		}
	}

	var pending []*model.Message
	for _, m := range svc.Messages {
		if _, explicit := idx.Get(m.FullName); explicit {
			continue
		}
		if m.HasResourceReferences() {
			pending = append(pending, m)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, m := range pending {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := FromAnnotations(m, reg)
			if err != nil {
				return fmt.Errorf("resolve %s: %w", m.FullName, err)
			}
			return idx.Add(c)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return idx, nil
}
