// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Section is a tab of the invoice form.
type Section string

// Form sections in display order.
const (
	SectionVendor   Section = "vendor"
	SectionInvoice  Section = "invoice"
	SectionComments Section = "comments"
)

// Sections lists the tabs in display order.
var Sections = []Section{SectionVendor, SectionInvoice, SectionComments}

// Label returns the tab title.
func (s Section) Label() string {
	switch s {
	case SectionVendor:
		return "Vendor Details"
	case SectionInvoice:
		return "Invoice Details"
	case SectionComments:
		return "Comments"
	}
	return string(s)
}

// IsValid reports whether s is one of [Sections].
func (s Section) IsValid() bool {
	for _, known := range Sections {
		if s == known {
			return true
		}
	}
	return false
}

// SectionFields maps every tab to the record fields it edits.
var SectionFields = map[Section][]string{
	SectionVendor: {
		FieldVendor,
		FieldPurchaseOrderNumber,
	},
	SectionInvoice: {
		FieldInvoiceNumber,
		FieldInvoiceDate,
		FieldDueDate,
		FieldTotalAmount,
		FieldPaymentTerms,
		FieldDescription,
	},
	SectionComments: {
		FieldGLPostDate,
		FieldLineAmount,
		FieldAccount,
		FieldDepartment,
		FieldLocation,
		FieldComments,
	},
}

// NoticeKind classifies a banner shown above the form.
type NoticeKind string

// Notice kinds.
const (
	NoticeSuccess NoticeKind = "success"
	NoticeFailure NoticeKind = "failure"
	NoticeInfo    NoticeKind = "info"
)

// Notice is a transient user-visible message.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

// FormState is a read-only snapshot of the form controller. Every map and
// pointer in it is a copy owned by the caller.
type FormState struct {
	Record        InvoiceRecord  `json:"record"`
	Validation    FieldErrors    `json:"validation"`
	Touched       Touched        `json:"touched"`
	ActiveSection Section        `json:"activeSection"`
	Attachment    *PdfAttachment `json:"attachment,omitempty"`
	Submitted     bool           `json:"submitted"`
	Extracting    bool           `json:"extracting"`
	Notice        *Notice        `json:"notice,omitempty"`
}

// VisibleErrors returns the errors the UI should display: those of touched
// fields, or all of them once a submission was attempted.
func (s FormState) VisibleErrors() FieldErrors {
	visible := make(FieldErrors, len(s.Validation))
	for name, msg := range s.Validation {
		if s.Submitted || s.Touched[name] {
			visible[name] = msg
		}
	}
	return visible
}
