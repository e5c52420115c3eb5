// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/invoice-entry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validRecord() models.InvoiceRecord {
	return models.InvoiceRecord{
		Vendor:              "A-1 Exterminators",
		PurchaseOrderNumber: "PO-001",
		InvoiceNumber:       "INV-2024-001",
		InvoiceDate:         "01/15/2024",
		DueDate:             "02/15/2024",
		TotalAmount:         "1,250.00",
		Description:         "Monthly pest control services for office building",
		PaymentTerms:        "Net 30",
		GLPostDate:          "01/15/2024",
		LineAmount:          "1,250.00",
		Account:             "Office Maintenance",
		Department:          "Facilities",
		Location:            "Main Office",
	}
}

// ---------------------------------------------------------------------------
// ValidateInvoice
// ---------------------------------------------------------------------------

func TestValidateInvoice_ValidRecord(t *testing.T) {
	errs := ValidateInvoice(validRecord())
	assert.Empty(t, errs)
	assert.False(t, errs.HasErrors())
}

func TestValidateInvoice_EmptyRecord(t *testing.T) {
	errs := ValidateInvoice(models.InvoiceRecord{})

	expected := models.FieldErrors{
		models.FieldVendor:              "Vendor is required",
		models.FieldPurchaseOrderNumber: "Purchase Order Number is required",
		models.FieldInvoiceNumber:       "Invoice Number is required",
		models.FieldInvoiceDate:         "Invoice Date is required",
		models.FieldDueDate:             "Due Date is required",
		models.FieldTotalAmount:         "Total Amount is required",
		models.FieldPaymentTerms:        "Payment Terms is required",
		models.FieldGLPostDate:          "GL Post Date is required",
		models.FieldDescription:         "Description is required",
		models.FieldLineAmount:          "Line Amount is required",
		models.FieldAccount:             "Account is required",
		models.FieldDepartment:          "Department is required",
		models.FieldLocation:            "Location is required",
	}
	assert.Equal(t, expected, errs)
}

func TestValidateInvoice_WhitespaceIsEmpty(t *testing.T) {
	r := validRecord()
	r.Vendor = "   \t"

	errs := ValidateInvoice(r)
	assert.Equal(t, models.FieldErrors{models.FieldVendor: "Vendor is required"}, errs)
}

func TestValidateInvoice_CommentsNeverValidated(t *testing.T) {
	r := validRecord()
	r.Comments = ""
	assert.Empty(t, ValidateInvoice(r))
}

func TestValidateInvoice_PureAndDeterministic(t *testing.T) {
	r := validRecord()
	r.Account = ""
	r.DueDate = "02/30/2024"

	first := ValidateInvoice(r)
	second := ValidateInvoice(r)
	assert.Equal(t, first, second)

	first[models.FieldVendor] = "mutated"
	assert.NotContains(t, ValidateInvoice(r), models.FieldVendor, "results must not share state")
}

func TestValidateInvoice_Dates(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"valid date", "01/15/2024", ""},
		{"leap day", "02/29/2024", ""},
		{"non-leap Feb 29", "02/29/2023", MsgInvalidDate},
		{"Feb 30", "02/30/2024", MsgInvalidDate},
		{"month 13", "13/01/2024", MsgInvalidDate},
		{"month zero", "00/10/2024", MsgInvalidDate},
		{"year zero", "01/01/0000", MsgInvalidDate},
		{"two-digit year", "01/01/0050", MsgInvalidDate},
		{"first accepted year", "01/01/0100", ""},
		{"day zero", "01/00/2024", MsgInvalidDate},
		{"April 31", "04/31/2024", MsgInvalidDate},
		{"ISO format", "2024-01-15", MsgInvalidDate},
		{"single digit month", "1/15/2024", MsgInvalidDate},
		{"empty", "", "Invoice Date is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			r.InvoiceDate = tt.value
			errs := ValidateInvoice(r)
			if tt.want == "" {
				assert.NotContains(t, errs, models.FieldInvoiceDate)
				return
			}
			assert.Equal(t, tt.want, errs[models.FieldInvoiceDate])
		})
	}
}

func TestValidateInvoice_Amounts(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"thousands separator", "1,250.00", ""},
		{"dollar sign", "$1,250.00", ""},
		{"plain integer", "1250", ""},
		{"large without separators", "1250000.00", ""},
		{"three decimals", "1,250.005", MsgInvalidAmount},
		{"one decimal", "1250.5", MsgInvalidAmount},
		{"letters", "abc", MsgInvalidAmount},
		{"negative", "-5.00", MsgInvalidAmount},
		{"empty", "", "Total Amount is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			r.TotalAmount = tt.value
			errs := ValidateInvoice(r)
			if tt.want == "" {
				assert.NotContains(t, errs, models.FieldTotalAmount)
				return
			}
			assert.Equal(t, tt.want, errs[models.FieldTotalAmount])
		})
	}
}

func TestValidateInvoiceField(t *testing.T) {
	assert.Equal(t, "", ValidateInvoiceField(models.FieldLineAmount, "$10.00"))
	assert.Equal(t, MsgInvalidAmount, ValidateInvoiceField(models.FieldLineAmount, "10.0"))
	assert.Equal(t, "Location is required", ValidateInvoiceField(models.FieldLocation, " "))
	assert.Equal(t, "", ValidateInvoiceField(models.FieldComments, ""))
	assert.Equal(t, "", ValidateInvoiceField("unknown", ""))
}

// ---------------------------------------------------------------------------
// InvoiceValidator
// ---------------------------------------------------------------------------

func TestInvoiceValidator_Dispatch(t *testing.T) {
	v := NewInvoiceValidator()
	ctx := context.Background()
	r := validRecord()

	require.NoError(t, v.Validate(ctx, r))
	require.NoError(t, v.Validate(ctx, &r))
	assert.ErrorIs(t, v.Validate(ctx, "not a record"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, (*models.InvoiceRecord)(nil)), ErrUnsupportedType)
}

func TestInvoiceValidator_ReturnsFieldErrors(t *testing.T) {
	v := NewInvoiceValidator()
	r := validRecord()
	r.Account = ""

	err := v.Validate(context.Background(), r)
	require.Error(t, err)

	var fieldErrs models.FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Equal(t, models.FieldErrors{models.FieldAccount: "Account is required"}, fieldErrs)
}

func TestInvoiceValidator_FieldScoping(t *testing.T) {
	v := NewInvoiceValidator()
	r := models.InvoiceRecord{Vendor: "Acme"}

	require.NoError(t, v.Validate(context.Background(), r, models.FieldVendor))

	err := v.Validate(context.Background(), r, models.FieldVendor, models.FieldDueDate)
	var fieldErrs models.FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Equal(t, models.FieldErrors{models.FieldDueDate: "Due Date is required"}, fieldErrs)

	assert.ErrorIs(t, v.Validate(context.Background(), r, "nope"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// CredentialsValidator
// ---------------------------------------------------------------------------

func TestCredentialsValidator_Credentials(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.Credentials{Username: "admin", Password: "password"}))

	err := v.Validate(ctx, models.Credentials{Username: "ab", Password: "12345"})
	assert.ErrorIs(t, err, ErrUsernameTooShort)
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	require.NoError(t, v.Validate(ctx, &models.Credentials{Username: "abc", Password: "x"}, FieldUsername))
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{}, FieldEmail), ErrUnknownField)
}

func TestCredentialsValidator_Account(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	ok := models.UserAccount{Username: "jane", Password: "secret1", Email: "jane@example.com"}
	require.NoError(t, v.Validate(ctx, ok))

	bad := ok
	bad.Email = "jane.example.com"
	assert.ErrorIs(t, v.Validate(ctx, bad), ErrInvalidEmail)

	bad.Email = "@example.com"
	assert.ErrorIs(t, v.Validate(ctx, &bad), ErrInvalidEmail)

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
}
