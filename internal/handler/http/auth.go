// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/invoice-entry/internal/logger"
	"github.com/MKhiriev/invoice-entry/internal/utils"
	"github.com/MKhiriev/invoice-entry/models"
)

// sessionResponse is the body of a successful login.
type sessionResponse struct {
	Username  string    `json:"username"`
	LoginTime time.Time `json:"loginTime"`
	Token     string    `json:"token"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var account models.UserAccount
	if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("Invalid JSON was passed")
		writeError(w, r, "*Handler.register", ErrInvalidJSON)
		return
	}

	registered, err := h.services.IdentityService.Register(ctx, account)
	if err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	registered.Password = ""
	utils.WriteJSON(w, registered, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("Invalid JSON was passed")
		writeError(w, r, "*Handler.login", ErrInvalidJSON)
		return
	}

	session, err := h.services.IdentityService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	// the next form request hydrates a controller for the new session
	h.services.FormSessions.End()

	log.Debug().Str("username", session.Username).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", session.Token))
	utils.WriteJSON(w, sessionResponse(session), http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.services.FormSessions.End()

	if err := h.services.IdentityService.Logout(r.Context()); err != nil {
		writeError(w, r, "*Handler.logout", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
