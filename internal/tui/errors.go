// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/invoice-entry/internal/service"
	"github.com/MKhiriev/invoice-entry/internal/validators"
)

var (
	// ErrUserQuit is returned by the programs when the user pressed ctrl+c.
	ErrUserQuit = errors.New("user quit")

	errEmptyPath     = errors.New("empty file path")
	errPasswordMatch = errors.New("passwords do not match")
)

// humanizeError turns service errors into messages for the status line.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrInvalidPassword):
		return "Invalid username or password"
	case errors.Is(err, service.ErrDuplicateUsername):
		return "Username already exists"
	case errors.Is(err, validators.ErrUsernameTooShort):
		return "Username must be at least 3 characters"
	case errors.Is(err, validators.ErrPasswordTooShort):
		return "Password must be at least 6 characters"
	case errors.Is(err, validators.ErrInvalidEmail):
		return "Please enter a valid email address"
	case errors.Is(err, errPasswordMatch):
		return "Passwords do not match"
	case errors.Is(err, errEmptyPath):
		return "Please enter the path of a PDF file"
	case errors.Is(err, service.ErrInvalidFileType):
		return "Please select a valid PDF file"
	case errors.Is(err, service.ErrNoAttachment):
		return "Attach a PDF before running extraction"
	case errors.Is(err, service.ErrExtractionInProgress):
		return "Extraction is already running"
	}

	return err.Error()
}
