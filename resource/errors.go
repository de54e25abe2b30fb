// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package resource

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownResourceReference is matched by [*UnknownResourceReferenceError].
	ErrUnknownResourceReference = errors.New("unknown resource reference")

	// ErrDuplicateMessage is matched by [*DuplicateMessageError].
	ErrDuplicateMessage = errors.New("duplicate message config")
)

// UnknownResourceReferenceError reports a field annotation naming a resource
// type that is not in the registry.
type UnknownResourceReferenceError struct {
	// Message and Field locate the annotation.
	Message string
	Field   string

	// Type is the referenced type.
	Type string

	// Known lists every registered type, sorted.
	Known []string
}

func (e *UnknownResourceReferenceError) Error() string {
	return fmt.Sprintf("unknown resource reference %q on %s.%s, known types: [%s]",
		e.Type, e.Message, e.Field, strings.Join(e.Known, ", "))
}

// Is reports whether target is [ErrUnknownResourceReference].
func (e *UnknownResourceReferenceError) Is(target error) bool {
	return target == ErrUnknownResourceReference
}

// DuplicateMessageError reports a second config for a message that already
// has one.
type DuplicateMessageError struct {
	Message string
}

func (e *DuplicateMessageError) Error() string {
	return fmt.Sprintf("resource name config for message %q defined more than once", e.Message)
}

// Is reports whether target is [ErrDuplicateMessage].
func (e *DuplicateMessageError) Is(target error) bool {
	return target == ErrDuplicateMessage
}
