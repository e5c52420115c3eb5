// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/invoice-entry/internal/logger"
	"github.com/MKhiriev/invoice-entry/internal/service"
	"github.com/MKhiriev/invoice-entry/internal/utils"
	"github.com/MKhiriev/invoice-entry/models"
)

type fieldRequest struct {
	Value string `json:"value"`
}

type sectionRequest struct {
	Section models.Section `json:"section"`
}

type validationResponse struct {
	Valid  bool               `json:"valid"`
	Errors models.FieldErrors `json:"errors"`
}

// form returns the controller of the logged-in user, answering the request
// itself when none can be built.
func (h *Handler) form(w http.ResponseWriter, r *http.Request, funcName string) (service.FormController, bool) {
	form, err := h.services.FormSessions.Current(r.Context())
	if err != nil {
		writeError(w, r, funcName, fmt.Errorf("error opening form: %w", err))
		return nil, false
	}
	return form, true
}

func (h *Handler) writeState(w http.ResponseWriter, r *http.Request, form service.FormController, status int) {
	utils.WriteJSON(w, form.State(r.Context()), status)
}

func (h *Handler) getInvoice(w http.ResponseWriter, r *http.Request) {
	form, ok := h.form(w, r, "*Handler.getInvoice")
	if !ok {
		return
	}

	h.writeState(w, r, form, http.StatusOK)
}

// validate checks the posted record without touching the form. The
// repeated "field" query parameter narrows the check to those fields.
func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	var record models.InvoiceRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		writeError(w, r, "*Handler.validate", ErrInvalidJSON)
		return
	}

	resp := validationResponse{Valid: true, Errors: models.FieldErrors{}}
	if err := h.checker.Validate(r.Context(), record, r.URL.Query()["field"]...); err != nil {
		var fields models.FieldErrors
		if !errors.As(err, &fields) {
			writeError(w, r, "*Handler.validate", err)
			return
		}
		resp = validationResponse{Valid: false, Errors: fields}
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) setField(w http.ResponseWriter, r *http.Request) {
	var req fieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "*Handler.setField", ErrInvalidJSON)
		return
	}

	form, ok := h.form(w, r, "*Handler.setField")
	if !ok {
		return
	}

	if err := form.SetField(r.Context(), chi.URLParam(r, "field"), req.Value); err != nil {
		writeError(w, r, "*Handler.setField", err)
		return
	}

	h.writeState(w, r, form, http.StatusOK)
}

func (h *Handler) setSection(w http.ResponseWriter, r *http.Request) {
	var req sectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "*Handler.setSection", ErrInvalidJSON)
		return
	}

	form, ok := h.form(w, r, "*Handler.setSection")
	if !ok {
		return
	}

	if err := form.SetSection(r.Context(), req.Section); err != nil {
		writeError(w, r, "*Handler.setSection", err)
		return
	}

	h.writeState(w, r, form, http.StatusOK)
}

func (h *Handler) saveDraft(w http.ResponseWriter, r *http.Request) {
	form, ok := h.form(w, r, "*Handler.saveDraft")
	if !ok {
		return
	}

	if err := form.SaveDraft(r.Context()); err != nil {
		writeError(w, r, "*Handler.saveDraft", err)
		return
	}

	h.writeState(w, r, form, http.StatusOK)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	form, ok := h.form(w, r, "*Handler.submit")
	if !ok {
		return
	}

	submission, err := form.Submit(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.submit", err)
		return
	}

	utils.WriteJSON(w, submission, http.StatusCreated)
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	form, ok := h.form(w, r, "*Handler.reset")
	if !ok {
		return
	}

	if err := form.Reset(r.Context()); err != nil {
		writeError(w, r, "*Handler.reset", err)
		return
	}

	h.writeState(w, r, form, http.StatusOK)
}

func (h *Handler) loadSample(w http.ResponseWriter, r *http.Request) {
	form, ok := h.form(w, r, "*Handler.loadSample")
	if !ok {
		return
	}

	if err := form.LoadDummy(r.Context()); err != nil {
		writeError(w, r, "*Handler.loadSample", err)
		return
	}

	h.writeState(w, r, form, http.StatusOK)
}

// extract runs an extraction and answers once it has finished. A client
// that goes away cancels the extraction.
func (h *Handler) extract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	form, ok := h.form(w, r, "*Handler.extract")
	if !ok {
		return
	}

	extraction, err := form.StartExtraction(ctx)
	if err != nil {
		writeError(w, r, "*Handler.extract", err)
		return
	}
	defer extraction.Cancel()

	if err := extraction.Wait(ctx); err != nil {
		writeError(w, r, "*Handler.extract", err)
		return
	}

	h.writeState(w, r, form, http.StatusOK)
}

func (h *Handler) attach(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Err(err).Str("func", "*Handler.attach").Msg("error parsing multipart form")
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, "*Handler.attach", ErrUploadTooLarge)
			return
		}
		writeError(w, r, "*Handler.attach", ErrMissingFile)
		return
	}

	part, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, "*Handler.attach", ErrMissingFile)
		return
	}
	defer part.Close()

	content, err := io.ReadAll(part)
	if err != nil {
		writeError(w, r, "*Handler.attach", fmt.Errorf("error reading upload: %w", err))
		return
	}

	form, ok := h.form(w, r, "*Handler.attach")
	if !ok {
		return
	}

	file := models.PdfFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	}
	if err := form.AttachFile(r.Context(), file); err != nil {
		writeError(w, r, "*Handler.attach", err)
		return
	}

	h.writeState(w, r, form, http.StatusCreated)
}

func (h *Handler) detach(w http.ResponseWriter, r *http.Request) {
	form, ok := h.form(w, r, "*Handler.detach")
	if !ok {
		return
	}

	if err := form.DetachFile(r.Context()); err != nil {
		writeError(w, r, "*Handler.detach", err)
		return
	}

	h.writeState(w, r, form, http.StatusOK)
}

func (h *Handler) listSubmissions(w http.ResponseWriter, r *http.Request) {
	form, ok := h.form(w, r, "*Handler.listSubmissions")
	if !ok {
		return
	}

	submissions := form.Submissions(r.Context())
	if submissions == nil {
		submissions = []models.SubmissionRecord{}
	}

	utils.WriteJSON(w, submissions, http.StatusOK)
}

// getBlob serves the bytes behind a live object URL.
func (h *Handler) getBlob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, r, "*Handler.getBlob", ErrMissingBlobID)
		return
	}

	form, ok := h.form(w, r, "*Handler.getBlob")
	if !ok {
		return
	}

	file, err := form.Object(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.getBlob", err)
		return
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = models.PDFContentType
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", file.Name))
	w.WriteHeader(http.StatusOK)
	w.Write(file.Content)
}
