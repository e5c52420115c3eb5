// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/invoice-entry/internal/adapter"
)

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Form errors.
var (
	ErrUnknownField      = errors.New("unknown field")
	ErrUnknownSection    = errors.New("unknown section")
	ErrSubmissionInvalid = errors.New("invoice has validation errors")
	ErrSubmissionFailed  = errors.New("failed to submit invoice")
	ErrDraftNotSaved     = errors.New("failed to save draft")
	ErrNoAttachment      = errors.New("no pdf attached")
	ErrInvalidFileType   = errors.New("please select a valid PDF file")
	ErrFormClosed        = errors.New("form is closed")
	ErrObjectNotFound    = errors.New("attachment not found")

	// ErrExtractionFailed is the provider failure, re-exported so callers
	// need not import the adapter package.
	ErrExtractionFailed = adapter.ErrExtractionFailed
	// ErrExtractionDiscarded is returned by an extraction task whose result
	// arrived after the attachment changed or the form was closed.
	ErrExtractionDiscarded = errors.New("extraction result discarded")
	// ErrExtractionInProgress is returned when an extraction is already running.
	ErrExtractionInProgress = errors.New("extraction already in progress")
)

// Identity errors.
var (
	ErrDuplicateUsername       = errors.New("username already exists")
	ErrUserNotFound            = errors.New("user not found")
	ErrInvalidPassword         = errors.New("invalid password")
	ErrRegistrationFailed      = errors.New("registration failed")
	ErrSessionNotFound         = errors.New("no active session")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)
