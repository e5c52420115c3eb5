// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/invoice-entry/internal/config"
	"github.com/MKhiriev/invoice-entry/internal/logger"
	"github.com/MKhiriev/invoice-entry/internal/service"
	"github.com/MKhiriev/invoice-entry/internal/store"
	"github.com/MKhiriev/invoice-entry/models"
)

func newServicesForTest(t *testing.T, appCfg config.App) (*service.Services, error) {
	t.Helper()

	gateway := store.NewGateway(store.NewMemoryKeyValueStore(), logger.Nop())
	return service.NewServices(
		context.Background(),
		gateway,
		appCfg,
		config.Adapter{ExtractionDelay: time.Millisecond},
		config.Workers{AutosaveInterval: 3 * time.Second},
		logger.Nop(),
	)
}

func TestNewServices_RequiresVersion(t *testing.T) {
	services, err := newServicesForTest(t, config.App{SessionTTL: time.Hour, TokenSignKey: "k"})

	assert.Nil(t, services)
	assert.ErrorIs(t, err, service.ErrVersionIsNotSpecified)
}

func TestNewServices_Wiring(t *testing.T) {
	ctx := context.Background()
	services, err := newServicesForTest(t, config.App{
		SessionTTL:   time.Hour,
		TokenSignKey: "services-test-key",
		TokenIssuer:  "invoice-entry-test",
		Version:      "2.1.0",
	})
	require.NoError(t, err)

	assert.Equal(t, "2.1.0", services.AppInfoService.GetAppVersion(ctx))

	// the seed account is created up front
	session, err := services.IdentityService.Login(ctx, models.Credentials{
		Username: service.SeedUsername,
		Password: service.SeedPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, service.SeedUsername, session.Username)

	form, err := services.FormSessions.Current(ctx)
	require.NoError(t, err)
	t.Cleanup(services.FormSessions.End)

	state := form.State(ctx)
	assert.Equal(t, models.SectionVendor, state.ActiveSection)
	assert.Nil(t, state.Attachment)

	job := services.NewAutosaveJob(form)
	assert.Equal(t, 3*time.Second, job.Interval())
}

func TestNewServices_SampleExtraction(t *testing.T) {
	ctx := context.Background()
	services, err := newServicesForTest(t, config.App{
		SessionTTL:   time.Hour,
		TokenSignKey: "services-test-key",
		Version:      "1.0.0",
	})
	require.NoError(t, err)

	form, err := services.FormSessions.Current(ctx)
	require.NoError(t, err)
	t.Cleanup(services.FormSessions.End)

	require.NoError(t, form.LoadDummy(ctx))
	require.NotNil(t, form.State(ctx).Attachment)

	extraction, err := form.StartExtraction(ctx)
	require.NoError(t, err)
	require.NoError(t, extraction.Wait(ctx))

	state := form.State(ctx)
	assert.False(t, state.Extracting)
	assert.Equal(t, "A-1 Exterminators", state.Record.Vendor)
	assert.Empty(t, state.Validation)
}
