// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pdfinfo inspects uploaded documents: file type checks and page
// counting.
package pdfinfo

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/MKhiriev/invoice-entry/models"
)

var (
	// ErrEmptyDocument is returned when there is no content to inspect.
	ErrEmptyDocument = errors.New("empty document")
	// ErrUnreadableDocument is returned when neither parser can read the
	// document.
	ErrUnreadableDocument = errors.New("unreadable pdf document")
)

var magic = []byte("%PDF-")

// IsPDF reports whether file is acceptable as an invoice attachment: its
// declared type must be application/pdf and any content present must start
// with the PDF header.
func IsPDF(file models.PdfFile) bool {
	if !strings.EqualFold(strings.TrimSpace(baseType(file.ContentType)), models.PDFContentType) {
		return false
	}
	if len(file.Content) == 0 {
		return true
	}
	return bytes.HasPrefix(file.Content, magic)
}

// DetectContentType guesses the MIME type of an upload that came without
// one, from its content first and its extension second.
func DetectContentType(name string, content []byte) string {
	if bytes.HasPrefix(content, magic) {
		return models.PDFContentType
	}
	if len(content) > 0 {
		return baseType(http.DetectContentType(content))
	}
	if strings.EqualFold(filepath.Ext(name), ".pdf") {
		return models.PDFContentType
	}
	return "application/octet-stream"
}

// PageCount returns the number of pages of a PDF document. pdfcpu is tried
// first in relaxed mode; documents it rejects are retried with the lighter
// ledongthuc/pdf reader.
func PageCount(content []byte) (int, error) {
	if len(content) == 0 {
		return 0, ErrEmptyDocument
	}

	n, cpuErr := pageCountPDFCPU(content)
	if cpuErr == nil {
		return n, nil
	}

	n, err := pageCountReader(content)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnreadableDocument, errors.Join(cpuErr, err))
	}
	return n, nil
}

func pageCountPDFCPU(content []byte) (n int, err error) {
	// pdfcpu panics on some truncated cross-reference sections
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, fmt.Errorf("pdfcpu panic: %v", r)
		}
	}()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(bytes.NewReader(content), conf)
	if err != nil {
		return 0, fmt.Errorf("failed to read PDF context: %w", err)
	}

	if err := ctx.EnsurePageCount(); err != nil {
		return 0, fmt.Errorf("failed to ensure page count: %w", err)
	}

	return ctx.PageCount, nil
}

func pageCountReader(content []byte) (n int, err error) {
	// as does the reader
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	return r.NumPage(), nil
}

func baseType(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		return contentType[:i]
	}
	return contentType
}
