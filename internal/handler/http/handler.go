// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/invoice-entry/internal/logger"
	"github.com/MKhiriev/invoice-entry/internal/service"
	"github.com/MKhiriev/invoice-entry/internal/validators"
)

// maxUploadSize caps multipart attachment uploads.
const maxUploadSize = 32 << 20

type Handler struct {
	services *service.Services
	checker  validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		checker:  validators.NewInvoiceValidator(),
		logger:   logger,
	}
}
