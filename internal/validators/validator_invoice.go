// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/invoice-entry/models"
)

// InvoiceValidator adapts [ValidateInvoice] to the [Validator] interface.
// A failed validation is reported as [models.FieldErrors].
type InvoiceValidator struct {
}

func NewInvoiceValidator() Validator {
	return &InvoiceValidator{}
}

func (v *InvoiceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.InvoiceRecord:
		return v.validateRecord(ctx, value, fields...)
	case *models.InvoiceRecord:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRecord(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *InvoiceValidator) validateRecord(_ context.Context, record models.InvoiceRecord, fields ...string) error {
	var errs models.FieldErrors
	if len(fields) == 0 {
		errs = ValidateInvoice(record)
	} else {
		errs = make(models.FieldErrors)
		for _, field := range fields {
			value, ok := record.Get(field)
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, field)
			}
			if msg := ValidateInvoiceField(field, value); msg != "" {
				errs[field] = msg
			}
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
