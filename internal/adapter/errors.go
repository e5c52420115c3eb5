// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// ErrExtractionFailed wraps every error returned by an [ExtractionProvider].
var ErrExtractionFailed = errors.New("failed to extract data from pdf")

// Transport errors of the HTTP provider.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrUnsupportedMedia    = errors.New("unsupported media type")
	ErrUnprocessable       = errors.New("document could not be processed")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")
)
