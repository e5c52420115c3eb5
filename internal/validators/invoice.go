// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/invoice-entry/models"
)

// Messages shown next to invalid fields.
const (
	MsgInvalidDate   = "Please enter a valid date (MM/DD/YYYY)"
	MsgInvalidAmount = "Please enter a valid amount"
)

var (
	datePattern   = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	amountPattern = regexp.MustCompile(`^\$?[\d,]+(\.\d{2})?$`)
)

type ruleKind int

const (
	ruleRequired ruleKind = iota
	ruleDate
	ruleAmount
)

// invoiceRules lists every validated field in form order. Fields that are
// not listed (comments) are never invalid.
var invoiceRules = []struct {
	field string
	kind  ruleKind
}{
	{models.FieldVendor, ruleRequired},
	{models.FieldPurchaseOrderNumber, ruleRequired},
	{models.FieldInvoiceNumber, ruleRequired},
	{models.FieldInvoiceDate, ruleDate},
	{models.FieldDueDate, ruleDate},
	{models.FieldTotalAmount, ruleAmount},
	{models.FieldPaymentTerms, ruleRequired},
	{models.FieldGLPostDate, ruleDate},
	{models.FieldDescription, ruleRequired},
	{models.FieldLineAmount, ruleAmount},
	{models.FieldAccount, ruleRequired},
	{models.FieldDepartment, ruleRequired},
	{models.FieldLocation, ruleRequired},
}

// ValidateInvoice checks every field of record and returns the complete
// error mapping. The result is a fresh map: callers replace their previous
// validation state with it.
func ValidateInvoice(record models.InvoiceRecord) models.FieldErrors {
	errs := make(models.FieldErrors)
	for _, rule := range invoiceRules {
		value, _ := record.Get(rule.field)
		if msg := checkRule(rule.field, rule.kind, value); msg != "" {
			errs[rule.field] = msg
		}
	}
	return errs
}

// ValidateInvoiceField checks a single field and returns its message, or ""
// when the value is valid. Unknown and unvalidated fields are always valid.
func ValidateInvoiceField(field, value string) string {
	for _, rule := range invoiceRules {
		if rule.field == field {
			return checkRule(rule.field, rule.kind, value)
		}
	}
	return ""
}

func checkRule(field string, kind ruleKind, value string) string {
	if strings.TrimSpace(value) == "" {
		return requiredMessage(field)
	}

	switch kind {
	case ruleDate:
		if !IsValidDate(value) {
			return MsgInvalidDate
		}
	case ruleAmount:
		if !IsValidAmount(value) {
			return MsgInvalidAmount
		}
	}
	return ""
}

func requiredMessage(field string) string {
	return models.FieldLabel(field) + " is required"
}

// minDateYear is the first accepted year. Two-digit years written with
// leading zeros (0000-0099) are rejected.
const minDateYear = 100

// IsValidDate reports whether s is an MM/DD/YYYY string naming a real
// calendar day.
func IsValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}

	month, _ := strconv.Atoi(s[0:2])
	day, _ := strconv.Atoi(s[3:5])
	year, _ := strconv.Atoi(s[6:10])
	if year < minDateYear {
		return false
	}

	// time.Date normalizes overflowing days (02/30 becomes 03/01), so a
	// round trip exposes impossible dates.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// IsValidAmount reports whether s is a decimal amount with an optional "$",
// optional thousands separators and an optional two-digit fraction.
func IsValidAmount(s string) bool {
	return amountPattern.MatchString(s)
}
