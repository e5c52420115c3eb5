// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse is the JSON body of every non-2xx API answer.
type ErrorResponse struct {
	Error string `json:"error"`
	// Fields carries per-field validation messages when the request was
	// rejected by form validation.
	Fields map[string]string `json:"fields,omitempty"`
}

// WriteJSON serializes data and writes it with the given status code and a
// "Content-Type: application/json" header.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, state, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes an [ErrorResponse] carrying msg and, when non-empty,
// the field messages.
func WriteError(w http.ResponseWriter, msg string, fields map[string]string, statusCode int) {
	_, _ = WriteJSON(w, ErrorResponse{Error: msg, Fields: fields}, statusCode)
}
