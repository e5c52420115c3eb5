// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/invoice-entry/internal/config"
	"github.com/MKhiriev/invoice-entry/internal/logger"
	"github.com/MKhiriev/invoice-entry/models"
)

// newTestExtractor creates an httpExtractor pointed at the test server.
func newTestExtractor(t *testing.T, serverURL string) ExtractionProvider {
	t.Helper()
	p, err := NewHTTPExtractor(config.Adapter{ExtractionURL: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return p
}

var testFile = models.PdfFile{
	Name:        "invoice.pdf",
	ContentType: models.PDFContentType,
	Content:     []byte("%PDF-1.4 test"),
}

// ── Extract ─────────────────────────────────────────────────────────────────

func TestHTTPExtract_Success(t *testing.T) {
	want := CannedPayload()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/extract", r.URL.Path)

		f, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		body, _ := io.ReadAll(f)
		assert.Equal(t, "invoice.pdf", header.Filename)
		assert.Equal(t, models.PDFContentType, header.Header.Get("Content-Type"))
		assert.Equal(t, testFile.Content, body)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	got, err := newTestExtractor(t, srv.URL).Extract(context.Background(), testFile)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestHTTPExtract_PartialPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"invoice":{"number":"INV-9"}}`))
	}))
	defer srv.Close()

	got, err := newTestExtractor(t, srv.URL).Extract(context.Background(), testFile)
	require.NoError(t, err)
	assert.Nil(t, got.Vendor)
	require.NotNil(t, got.Invoice)
	assert.Equal(t, "INV-9", got.Invoice.Number)
	assert.Empty(t, got.LineItems)
}

func TestHTTPExtract_StatusErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"unsupported media", http.StatusUnsupportedMediaType, ErrUnsupportedMedia},
		{"unprocessable", http.StatusUnprocessableEntity, ErrUnprocessable},
		{"internal", http.StatusInternalServerError, ErrInternalServerError},
		{"unavailable", http.StatusServiceUnavailable, ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			_, err := newTestExtractor(t, srv.URL).Extract(context.Background(), testFile)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrExtractionFailed)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHTTPExtract_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestExtractor(t, srv.URL).Extract(context.Background(), testFile)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtractionFailed)
	assert.Contains(t, err.Error(), "http 418")
}

func TestHTTPExtract_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{broken"))
	}))
	defer srv.Close()

	_, err := newTestExtractor(t, srv.URL).Extract(context.Background(), testFile)
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestHTTPExtract_ContextCancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestExtractor(t, srv.URL).Extract(ctx, testFile)
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

// ── construction ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"localhost:9000", "http://localhost:9000", false},
		{"https://extract.example.com/", "https://extract.example.com", false},
		{"  http://127.0.0.1:1  ", "http://127.0.0.1:1", false},
		{"", "", true},
		{"http://", "", true},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestNewExtractionProvider(t *testing.T) {
	p, err := NewExtractionProvider(config.Adapter{ExtractionDelay: time.Millisecond}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &simulatedExtractor{}, p)

	p, err = NewExtractionProvider(config.Adapter{ExtractionURL: "http://localhost:9000", RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &httpExtractor{}, p)
}
