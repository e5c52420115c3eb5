// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command server runs the local invoice entry HTTP API.
package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/invoice-entry/internal/config"
	"github.com/MKhiriev/invoice-entry/internal/handler"
	"github.com/MKhiriev/invoice-entry/internal/logger"
	"github.com/MKhiriev/invoice-entry/internal/server"
	"github.com/MKhiriev/invoice-entry/internal/service"
	"github.com/MKhiriev/invoice-entry/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("invoice-entry-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("backend", store.BackendFromDSN(cfg.Storage.DB.DSN)).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(ctx, storages.Gateway, cfg.App, cfg.Adapter, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}
	defer services.FormSessions.End()

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
