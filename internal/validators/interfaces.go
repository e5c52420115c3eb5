// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the field rules of the invoice form and the
// login/signup forms.
//
// The invoice rules are exposed twice: as the pure [ValidateInvoice]
// function used by the form controller, and behind the generic [Validator]
// interface for callers that validate a subset of fields.
package validators

import "context"

// Validator validates an arbitrary value, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
