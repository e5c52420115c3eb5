// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command client runs the invoice entry terminal UI.
package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/invoice-entry/internal/client"
	"github.com/MKhiriev/invoice-entry/internal/config"
	"github.com/MKhiriev/invoice-entry/internal/logger"
	"github.com/MKhiriev/invoice-entry/internal/service"
	"github.com/MKhiriev/invoice-entry/internal/store"
	"github.com/MKhiriev/invoice-entry/internal/tui"
	"github.com/MKhiriev/invoice-entry/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("invoice-entry-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("invoice-entry-client", cfg.App.LogFile)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services, err := service.NewServices(ctx, storages.Gateway, cfg.App, cfg.Adapter, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
