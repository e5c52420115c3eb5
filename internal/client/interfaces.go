// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/invoice-entry/internal/service"
	"github.com/MKhiriev/invoice-entry/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive surface driven by [App].
type UI interface {
	// LoginFlow blocks until the user logs in or quits.
	LoginFlow(ctx context.Context) (models.Session, error)
	// MainLoop runs the invoice form and reports whether the user logged out.
	MainLoop(ctx context.Context, session models.Session, form service.FormController) (logout bool, err error)
}
