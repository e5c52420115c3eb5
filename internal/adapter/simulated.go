// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/invoice-entry/internal/logger"
	"github.com/MKhiriev/invoice-entry/models"
)

type simulatedExtractor struct {
	delay  time.Duration
	logger *logger.Logger
}

// NewSimulatedExtractor returns a provider that ignores the document and
// answers with [CannedPayload] after delay.
func NewSimulatedExtractor(delay time.Duration, log *logger.Logger) ExtractionProvider {
	return &simulatedExtractor{delay: delay, logger: log}
}

func (s *simulatedExtractor) Extract(ctx context.Context, file models.PdfFile) (models.ExtractionPayload, error) {
	log := logger.FromContextOr(ctx, s.logger)
	log.Debug().Str("func", "*simulatedExtractor.Extract").Str("file", file.Name).Dur("delay", s.delay).Msg("simulating extraction")

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return models.ExtractionPayload{}, fmt.Errorf("%w: %w", ErrExtractionFailed, ctx.Err())
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return models.ExtractionPayload{}, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	return CannedPayload(), nil
}

// CannedPayload is the fixed answer of the simulated provider. Each call
// returns a fresh value.
func CannedPayload() models.ExtractionPayload {
	return models.ExtractionPayload{
		Vendor: &models.ExtractedVendor{
			Name:    "A-1 Exterminators",
			Address: "550 Main St, Lynn",
			Phone:   "(555) 123-4567",
			Email:   "info@a1exterminators.com",
		},
		Invoice: &models.ExtractedInvoice{
			Number:              "INV-2024-001",
			Date:                "01/15/2024",
			DueDate:             "02/15/2024",
			TotalAmount:         "1,250.00",
			Description:         "Monthly pest control services for office building",
			PaymentTerms:        "Net 30",
			PurchaseOrderNumber: "PO-001",
			GLPostDate:          "01/15/2024",
			Comments:            "Regular monthly service - all areas covered",
		},
		LineItems: []models.ExtractedLineItem{
			{
				Description: "Monthly pest control service",
				Amount:      "1,250.00",
				Account:     "Office Maintenance",
				Department:  "Facilities",
				Location:    "Main Office",
			},
		},
	}
}
