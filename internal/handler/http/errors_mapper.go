// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/invoice-entry/internal/logger"
	"github.com/MKhiriev/invoice-entry/internal/service"
	"github.com/MKhiriev/invoice-entry/internal/utils"
	"github.com/MKhiriev/invoice-entry/internal/validators"
	"github.com/MKhiriev/invoice-entry/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrMissingFile:                http.StatusBadRequest,
	ErrUploadTooLarge:             http.StatusRequestEntityTooLarge,
	ErrMissingBlobID:              http.StatusBadRequest,
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrDuplicateUsername:       http.StatusConflict,
	service.ErrUserNotFound:            http.StatusUnauthorized,
	service.ErrInvalidPassword:         http.StatusUnauthorized,
	service.ErrSessionNotFound:         http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrRegistrationFailed:      http.StatusInternalServerError,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	service.ErrUnknownField:         http.StatusNotFound,
	service.ErrUnknownSection:       http.StatusBadRequest,
	service.ErrSubmissionInvalid:    http.StatusUnprocessableEntity,
	service.ErrSubmissionFailed:     http.StatusInternalServerError,
	service.ErrDraftNotSaved:        http.StatusInternalServerError,
	service.ErrInvalidFileType:      http.StatusUnsupportedMediaType,
	service.ErrNoAttachment:         http.StatusConflict,
	service.ErrExtractionInProgress: http.StatusConflict,
	service.ErrExtractionDiscarded:  http.StatusConflict,
	service.ErrExtractionFailed:     http.StatusBadGateway,
	service.ErrFormClosed:           http.StatusConflict,
	service.ErrObjectNotFound:       http.StatusNotFound,

	validators.ErrUnknownField: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the status mapped from it. Server
// errors hide their details; validation failures carry the field messages.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
		utils.WriteError(w, http.StatusText(status), nil, status)
		return
	}

	log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")

	var fields models.FieldErrors
	if errors.As(err, &fields) {
		utils.WriteError(w, service.NoticeSubmitInvalid, fields, status)
		return
	}
	utils.WriteError(w, err.Error(), nil, status)
}
