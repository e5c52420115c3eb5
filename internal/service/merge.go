// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"strings"

	"dario.cat/mergo"

	"github.com/MKhiriev/invoice-entry/models"
)

// MergeExtraction fills the blank fields of record from payload. A field
// the user already filled in (anything but whitespace) is never replaced.
// Merging the same payload twice yields the same record.
//
// Only the first line item is used.
func MergeExtraction(record models.InvoiceRecord, payload models.ExtractionPayload) (models.InvoiceRecord, error) {
	incoming := extractedRecord(payload)

	merged := record
	for _, name := range models.InvoiceFields {
		current, _ := merged.Get(name)
		value, _ := incoming.Get(name)

		if strings.TrimSpace(value) == "" {
			// blank payload values never win, even over a blank field
			incoming.Set(name, "")
			continue
		}
		if strings.TrimSpace(current) == "" {
			// whitespace counts as empty; zero it so mergo fills it
			merged.Set(name, "")
		}
	}

	if err := mergo.Merge(&merged, incoming); err != nil {
		return record, fmt.Errorf("error merging extracted data: %w", err)
	}

	return merged, nil
}

// extractedRecord flattens payload onto the record layout.
func extractedRecord(payload models.ExtractionPayload) models.InvoiceRecord {
	var r models.InvoiceRecord

	if v := payload.Vendor; v != nil {
		r.Vendor = v.Name
	}

	if inv := payload.Invoice; inv != nil {
		r.PurchaseOrderNumber = inv.PurchaseOrderNumber
		r.InvoiceNumber = inv.Number
		r.InvoiceDate = inv.Date
		r.DueDate = inv.DueDate
		r.TotalAmount = inv.TotalAmount
		r.Description = inv.Description
		r.PaymentTerms = inv.PaymentTerms
		r.GLPostDate = inv.GLPostDate
		r.Comments = inv.Comments
	}

	if len(payload.LineItems) > 0 {
		item := payload.LineItems[0]
		r.LineAmount = item.Amount
		r.Account = item.Account
		r.Department = item.Department
		r.Location = item.Location
	}

	return r
}
