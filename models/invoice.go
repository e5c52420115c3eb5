// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Invoice record field names. They double as JSON keys and as keys of
// [FieldErrors] and [Touched].
const (
	FieldVendor              = "vendor"
	FieldPurchaseOrderNumber = "purchaseOrderNumber"
	FieldInvoiceNumber       = "invoiceNumber"
	FieldInvoiceDate         = "invoiceDate"
	FieldDueDate             = "dueDate"
	FieldTotalAmount         = "totalAmount"
	FieldDescription         = "description"
	FieldPaymentTerms        = "paymentTerms"
	FieldGLPostDate          = "glPostDate"
	FieldLineAmount          = "lineAmount"
	FieldAccount             = "account"
	FieldDepartment          = "department"
	FieldLocation            = "location"
	FieldComments            = "comments"
)

// InvoiceRecord is the invoice currently being edited. Every field is kept
// as the string the user typed: dates as MM/DD/YYYY, amounts as decimal
// strings with optional "$" and thousands separators.
type InvoiceRecord struct {
	Vendor              string `json:"vendor"`
	PurchaseOrderNumber string `json:"purchaseOrderNumber"`
	InvoiceNumber       string `json:"invoiceNumber"`
	InvoiceDate         string `json:"invoiceDate"`
	DueDate             string `json:"dueDate"`
	TotalAmount         string `json:"totalAmount"`
	Description         string `json:"description"`
	PaymentTerms        string `json:"paymentTerms"`
	GLPostDate          string `json:"glPostDate"`
	LineAmount          string `json:"lineAmount"`
	Account             string `json:"account"`
	Department          string `json:"department"`
	Location            string `json:"location"`
	Comments            string `json:"comments"`
}

// InvoiceFields lists every record field in form order.
var InvoiceFields = []string{
	FieldVendor,
	FieldPurchaseOrderNumber,
	FieldInvoiceNumber,
	FieldInvoiceDate,
	FieldDueDate,
	FieldTotalAmount,
	FieldDescription,
	FieldPaymentTerms,
	FieldGLPostDate,
	FieldLineAmount,
	FieldAccount,
	FieldDepartment,
	FieldLocation,
	FieldComments,
}

// fieldLabels holds the human readable name of every field.
var fieldLabels = map[string]string{
	FieldVendor:              "Vendor",
	FieldPurchaseOrderNumber: "Purchase Order Number",
	FieldInvoiceNumber:       "Invoice Number",
	FieldInvoiceDate:         "Invoice Date",
	FieldDueDate:             "Due Date",
	FieldTotalAmount:         "Total Amount",
	FieldDescription:         "Description",
	FieldPaymentTerms:        "Payment Terms",
	FieldGLPostDate:          "GL Post Date",
	FieldLineAmount:          "Line Amount",
	FieldAccount:             "Account",
	FieldDepartment:          "Department",
	FieldLocation:            "Location",
	FieldComments:            "Comments",
}

// FieldLabel returns the display label of a field, or the name itself when
// the field is unknown.
func FieldLabel(name string) string {
	if label, ok := fieldLabels[name]; ok {
		return label
	}
	return name
}

// IsInvoiceField reports whether name is one of [InvoiceFields].
func IsInvoiceField(name string) bool {
	_, ok := fieldLabels[name]
	return ok
}

// field returns a pointer to the named field, or nil for unknown names.
func (r *InvoiceRecord) field(name string) *string {
	switch name {
	case FieldVendor:
		return &r.Vendor
	case FieldPurchaseOrderNumber:
		return &r.PurchaseOrderNumber
	case FieldInvoiceNumber:
		return &r.InvoiceNumber
	case FieldInvoiceDate:
		return &r.InvoiceDate
	case FieldDueDate:
		return &r.DueDate
	case FieldTotalAmount:
		return &r.TotalAmount
	case FieldDescription:
		return &r.Description
	case FieldPaymentTerms:
		return &r.PaymentTerms
	case FieldGLPostDate:
		return &r.GLPostDate
	case FieldLineAmount:
		return &r.LineAmount
	case FieldAccount:
		return &r.Account
	case FieldDepartment:
		return &r.Department
	case FieldLocation:
		return &r.Location
	case FieldComments:
		return &r.Comments
	}
	return nil
}

// Get returns the value of the named field. The second result is false for
// unknown field names.
func (r InvoiceRecord) Get(name string) (string, bool) {
	p := r.field(name)
	if p == nil {
		return "", false
	}
	return *p, true
}

// Set writes value into the named field and reports whether the field
// exists. Unknown names leave the record unchanged.
func (r *InvoiceRecord) Set(name, value string) bool {
	p := r.field(name)
	if p == nil {
		return false
	}
	*p = value
	return true
}

// IsEmpty reports whether every field is blank.
func (r InvoiceRecord) IsEmpty() bool {
	for _, name := range InvoiceFields {
		if v, _ := r.Get(name); strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
