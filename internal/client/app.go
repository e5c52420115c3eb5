// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/invoice-entry/internal/logger"
	"github.com/MKhiriev/invoice-entry/internal/service"
	"github.com/MKhiriev/invoice-entry/internal/tui"
	"github.com/MKhiriev/invoice-entry/internal/workers"
	"github.com/MKhiriev/invoice-entry/models"
)

var (
	errNoServices = errors.New("client: services are required")
	errNoUI       = errors.New("client: ui is required")
)

// App is the terminal client.
type App struct {
	services *service.Services
	ui       UI
	logger   *logger.Logger
}

// NewApp creates the client over services and ui.
func NewApp(services *service.Services, ui UI, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errNoServices
	}
	if ui == nil {
		return nil, errNoUI
	}
	return &App{services: services, ui: ui, logger: log}, nil
}

// Run restores the stored session if it is still active, otherwise asks the
// user to log in, then runs the invoice form. A logout starts over; quitting
// returns nil.
func (a *App) Run(ctx context.Context) error {
	for {
		session, ok := a.services.IdentityService.CurrentSession(ctx)
		if ok {
			a.logger.Info().Str("username", session.Username).Msg("session restored")
		} else {
			var err error
			session, err = a.ui.LoginFlow(ctx)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("login flow: %w", err)
			}
			a.logger.Info().Str("username", session.Username).Msg("logged in")
		}

		logout, err := a.runForm(ctx, session)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		if err := a.services.IdentityService.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		a.logger.Info().Str("username", session.Username).Msg("logged out")
	}
}

// runForm opens the form controller of session and keeps the autosave
// worker running while the form is on screen.
func (a *App) runForm(ctx context.Context, session models.Session) (bool, error) {
	form, err := a.services.FormSessions.Current(ctx)
	if err != nil {
		return false, fmt.Errorf("open form: %w", err)
	}
	defer a.services.FormSessions.End()

	jobs := workers.NewWorkers(a.services.NewAutosaveJob(form))
	jobs.Start(ctx)
	defer jobs.Stop()

	logout, err := a.ui.MainLoop(ctx, session, form)

	if !logout {
		if _, saveErr := form.Autosave(ctx); saveErr != nil {
			a.logger.Err(saveErr).Str("func", "*App.runForm").Msg("final autosave failed")
		}
	}

	return logout, err
}
