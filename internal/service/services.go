// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/invoice-entry/internal/adapter"
	"github.com/MKhiriev/invoice-entry/internal/config"
	"github.com/MKhiriev/invoice-entry/internal/logger"
	"github.com/MKhiriev/invoice-entry/internal/objecturl"
	"github.com/MKhiriev/invoice-entry/internal/store"
)

// Services bundles everything the outer layers (HTTP API, terminal UI)
// call into.
type Services struct {
	IdentityService IdentityService
	AppInfoService  AppInfoService
	FormSessions    FormSessions

	// NewAutosaveJob builds the autosave job of a controller.
	NewAutosaveJob func(form Autosaver) AutosaveJob
}

// NewServices wires the services over gateway and makes sure the seed
// account exists.
func NewServices(ctx context.Context, gateway *store.Gateway, appCfg config.App, adapterCfg config.Adapter, workersCfg config.Workers, log *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(appCfg, log)
	if err != nil {
		return nil, err
	}

	extractor, err := adapter.NewExtractionProvider(adapterCfg, log)
	if err != nil {
		return nil, fmt.Errorf("error creating extraction provider: %w", err)
	}

	identity := NewIdentityService(gateway, appCfg, log)
	if err := identity.EnsureSeedAccount(ctx); err != nil {
		return nil, err
	}

	objects := objecturl.NewRegistry()
	newForm := func(ctx context.Context) (FormController, error) {
		return NewFormController(ctx, gateway, extractor, objects, log), nil
	}

	return &Services{
		IdentityService: identity,
		AppInfoService:  appInfo,
		FormSessions:    NewFormSessions(newForm),
		NewAutosaveJob: func(form Autosaver) AutosaveJob {
			return NewAutosaveJob(form, workersCfg.AutosaveInterval, log)
		},
	}, nil
}
