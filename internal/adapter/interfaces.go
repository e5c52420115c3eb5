// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter connects the form controller to the invoice extraction
// provider.
//
// The primary abstraction is [ExtractionProvider]. The package ships a
// simulated provider that returns canned data after a fixed delay and an
// HTTP/REST provider for a remote extraction service. [NewExtractionProvider]
// picks one from the adapter configuration.
//
// Every failure is wrapped in [ErrExtractionFailed]; transport errors are
// additionally mapped from HTTP status codes by mapHTTPError so callers can
// use [errors.Is] on them (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/invoice-entry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/extraction_provider_mock.go -package=mock

// ExtractionProvider reads a document and returns the invoice data found in
// it. Implementations must honour ctx cancellation.
type ExtractionProvider interface {
	Extract(ctx context.Context, file models.PdfFile) (models.ExtractionPayload, error)
}
