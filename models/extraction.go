// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ExtractionPayload is the structured result of reading an uploaded invoice.
// Nested sections are optional: a provider may omit any of them.
type ExtractionPayload struct {
	Vendor    *ExtractedVendor    `json:"vendor,omitempty"`
	Invoice   *ExtractedInvoice   `json:"invoice,omitempty"`
	LineItems []ExtractedLineItem `json:"lineItems,omitempty"`
}

// ExtractedVendor describes the invoice issuer.
type ExtractedVendor struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// ExtractedInvoice holds the invoice header values.
type ExtractedInvoice struct {
	Number              string `json:"number"`
	Date                string `json:"date"`
	DueDate             string `json:"dueDate"`
	TotalAmount         string `json:"totalAmount"`
	Description         string `json:"description"`
	PaymentTerms        string `json:"paymentTerms"`
	PurchaseOrderNumber string `json:"purchaseOrderNumber"`
	GLPostDate          string `json:"glPostDate"`
	Comments            string `json:"comments"`
}

// ExtractedLineItem is a single expense line. Only the first line item is
// mapped onto the invoice record.
type ExtractedLineItem struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Account     string `json:"account"`
	Department  string `json:"department"`
	Location    string `json:"location"`
}
