// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the invoice form controller, the identity service
// that manages local accounts and sessions, and the jobs built on top of
// them.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/invoice-entry/internal/task"
	"github.com/MKhiriev/invoice-entry/models"
)

// FormController owns the single live invoice record of a session. All
// mutations are serialized; readers get deep copies.
//
// Mutating methods either apply fully or leave the state untouched.
type FormController interface {
	// State returns a snapshot of the form for rendering.
	State(ctx context.Context) models.FormState

	// SetField writes value into the named field, marks it touched,
	// revalidates the record and persists the draft.
	SetField(ctx context.Context, name, value string) error
	// SetSection switches the active tab.
	SetSection(ctx context.Context, section models.Section) error

	// SaveDraft persists the record as it is, without validation.
	SaveDraft(ctx context.Context) error
	// Submit validates the record and, when valid, appends it to the
	// submission log and resets the form.
	Submit(ctx context.Context) (models.SubmissionRecord, error)
	// Reset clears the form and every persisted draft and attachment.
	Reset(ctx context.Context) error
	// LoadDummy replaces the record and attachment with the sample invoice.
	LoadDummy(ctx context.Context) error

	// AttachFile replaces the attachment with file.
	AttachFile(ctx context.Context, file models.PdfFile) error
	// DetachFile removes the attachment.
	DetachFile(ctx context.Context) error
	// Object returns the content behind a live attachment URL id.
	Object(ctx context.Context, id string) (models.PdfFile, error)

	// LoadExtraction merges payload into the record without overwriting
	// values the user already entered.
	LoadExtraction(ctx context.Context, payload models.ExtractionPayload) error
	// StartExtraction runs the extraction provider over the attachment in
	// the background.
	StartExtraction(ctx context.Context) (*task.Task, error)

	// Submissions returns the submission log in append order.
	Submissions(ctx context.Context) []models.SubmissionRecord

	// Autosave persists the record if it changed since the last successful
	// save. It reports whether anything was written.
	Autosave(ctx context.Context) (bool, error)

	// Close detaches the controller. Pending extraction results are
	// dropped afterwards.
	Close()
}

// FormSessions hands out the form controller of the signed-in user.
type FormSessions interface {
	// Current returns the live controller, creating it on first use.
	Current(ctx context.Context) (FormController, error)
	// End closes the live controller, if any.
	End()
}

// IdentityService manages the local user registry and the session.
type IdentityService interface {
	// Register stores a new account.
	Register(ctx context.Context, account models.UserAccount) (models.UserAccount, error)
	// Authenticate checks credentials against the registry.
	Authenticate(ctx context.Context, username, password string) (models.UserAccount, error)
	// Login authenticates and persists a new session.
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)
	// Logout clears the session together with the draft and attachment data.
	Logout(ctx context.Context) error

	// IsActive reports whether session is younger than the session TTL. An
	// expired session is removed from storage.
	IsActive(ctx context.Context, session models.Session) bool
	// CurrentSession returns the stored session if it is still active.
	CurrentSession(ctx context.Context) (models.Session, bool)
	// Authorize resolves a bearer token to the active session it belongs to.
	Authorize(ctx context.Context, token string) (models.Session, error)

	// EnsureSeedAccount creates the default administrator if it is missing.
	EnsureSeedAccount(ctx context.Context) error
}

// AppInfoService exposes build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AutosaveJob periodically persists the open draft.
type AutosaveJob interface {
	// Start launches the job. A running job is stopped first.
	Start(ctx context.Context)
	// Stop cancels the job and waits for it to exit.
	Stop()
	// Interval returns the save period.
	Interval() time.Duration
}
