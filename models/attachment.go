// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// PDFContentType is the only MIME type accepted for attachments.
const PDFContentType = "application/pdf"

// PdfFile is an in-memory file handle for an uploaded document.
type PdfFile struct {
	Name         string
	ContentType  string
	Content      []byte
	LastModified time.Time
}

// Size returns the content length in bytes.
func (f PdfFile) Size() int64 {
	return int64(len(f.Content))
}

// PdfAttachment describes the document attached to the current invoice.
// FileURL is an ephemeral object URL: it is only valid while the owning
// registry keeps it alive and is never reused after a restart.
type PdfAttachment struct {
	FileName   string    `json:"fileName"`
	FileSize   string    `json:"fileSize"`
	FileURL    string    `json:"fileUrl,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
	PageCount  int       `json:"pageCount,omitempty"`

	File *PdfFile `json:"-"`
}

// StoredFile is the persisted form of a [PdfFile]: the content is kept as a
// base64 data URL so it survives a text-only key/value store.
type StoredFile struct {
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	Type         string `json:"type"`
	Data         string `json:"data"`
	LastModified int64  `json:"lastModified"`
}

// FormatFileSize renders a byte count in megabytes with two decimals,
// e.g. "0.01 MB".
func FormatFileSize(size int64) string {
	return fmt.Sprintf("%.2f MB", float64(size)/1024/1024)
}
