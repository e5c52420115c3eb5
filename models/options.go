// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FieldOptions holds the closed choice lists offered by the form pickers.
// Fields absent from the map are free text.
var FieldOptions = map[string][]string{
	FieldVendor:              {"A-1 Exterminators", "Other Vendor"},
	FieldPurchaseOrderNumber: {"PO-001", "PO-002"},
	FieldInvoiceNumber:       {"INV-2024-001", "INV-2024-002"},
	FieldPaymentTerms:        {"Net 30", "Net 60", "Due on Receipt"},
	FieldAccount:             {"Office Maintenance", "IT Services", "Utilities"},
	FieldDepartment:          {"Facilities", "IT", "Finance", "Operations"},
	FieldLocation:            {"Main Office", "New York", "California", "Texas"},
}
