// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/invoice-entry/models"

// NavigateTo switches the active page of [RootModel]. A non-nil Payload is
// delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login page once the identity service
// answers.
type LoginResult struct {
	Session models.Session
	Err     error
}

// RegisterResult is produced by the register page once the identity service
// answers.
type RegisterResult struct {
	Username string
	Err      error
}

// RegisterSuccessNotice is shown by the menu after a registration.
type RegisterSuccessNotice struct {
	Username string
}

type actionDoneMsg struct {
	err error
}

type submitDoneMsg struct {
	submission models.SubmissionRecord
	err        error
}

type extractionDoneMsg struct {
	err error
}

type submissionsLoadedMsg struct {
	items []models.SubmissionRecord
}

type copiedMsg struct {
	id  string
	err error
}

type clearStatusMsg struct{}
