// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"sort"
	"strings"
)

// FieldErrors maps a field name to its validation message. A field that is
// absent from the map is valid.
//
// FieldErrors implements error so that field-scoped validators can return it
// through the generic [error] channel.
type FieldErrors map[string]string

// Error implements error. Messages are ordered by field name so the text is
// stable.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e[name])
	}
	return strings.Join(parts, "; ")
}

// HasErrors reports whether at least one field is invalid.
func (e FieldErrors) HasErrors() bool {
	return len(e) > 0
}

// Clone returns an independent copy.
func (e FieldErrors) Clone() FieldErrors {
	out := make(FieldErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Touched marks the fields the user has interacted with.
type Touched map[string]bool

// Clone returns an independent copy.
func (t Touched) Clone() Touched {
	out := make(Touched, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}
