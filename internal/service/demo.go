// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/invoice-entry/models"

// SampleRecord is the invoice loaded by "load sample data". It passes
// validation as is.
func SampleRecord() models.InvoiceRecord {
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
