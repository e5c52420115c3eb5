// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/invoice-entry/internal/logger"
	"github.com/MKhiriev/invoice-entry/models"
)

// ErrMalformedDataURL is returned when a stored file is not a base64 data URL.
var ErrMalformedDataURL = errors.New("malformed data url")

// Gateway is the typed view over a [KeyValueStore]. Every value is stored
// as JSON under a fixed key.
//
// Reads return (value, ok). A missing entry, a backend failure and an entry
// that cannot be decoded all report ok == false; the latter two are logged.
type Gateway struct {
	kv     KeyValueStore
	logger *logger.Logger

	// serializes read-modify-write of the submission log
	appendMu sync.Mutex
}

// NewGateway wraps kv.
func NewGateway(kv KeyValueStore, log *logger.Logger) *Gateway {
	return &Gateway{kv: kv, logger: log}
}

// Session

func (g *Gateway) Session(ctx context.Context) (models.Session, bool) {
	return readJSON[models.Session](ctx, g, KeySession)
}

func (g *Gateway) SaveSession(ctx context.Context, session models.Session) error {
	return g.writeJSON(ctx, KeySession, session)
}

func (g *Gateway) RemoveSession(ctx context.Context) error {
	return g.remove(ctx, KeySession)
}

// User registry

// Users returns the account registry. A stored JSON null reads as an empty
// registry.
func (g *Gateway) Users(ctx context.Context) (models.UserRegistry, bool) {
	users, ok := readJSON[models.UserRegistry](ctx, g, KeyUsers)
	if ok && users == nil {
		users = models.UserRegistry{}
	}
	return users, ok
}

func (g *Gateway) SaveUsers(ctx context.Context, users models.UserRegistry) error {
	return g.writeJSON(ctx, KeyUsers, users)
}

// Draft form data

func (g *Gateway) Draft(ctx context.Context) (models.InvoiceRecord, bool) {
	return readJSON[models.InvoiceRecord](ctx, g, KeyDraft)
}

func (g *Gateway) SaveDraft(ctx context.Context, record models.InvoiceRecord) error {
	return g.writeJSON(ctx, KeyDraft, record)
}

func (g *Gateway) RemoveDraft(ctx context.Context) error {
	return g.remove(ctx, KeyDraft)
}

// Attachment metadata

func (g *Gateway) Attachment(ctx context.Context) (models.PdfAttachment, bool) {
	return readJSON[models.PdfAttachment](ctx, g, KeyAttachment)
}

// SaveAttachment stores the attachment metadata. The object URL is
// process-local and is not persisted.
func (g *Gateway) SaveAttachment(ctx context.Context, attachment models.PdfAttachment) error {
	attachment.FileURL = ""
	attachment.File = nil
	return g.writeJSON(ctx, KeyAttachment, attachment)
}

func (g *Gateway) RemoveAttachment(ctx context.Context) error {
	return g.remove(ctx, KeyAttachment)
}

// Attachment binary

func (g *Gateway) AttachmentFile(ctx context.Context) (models.PdfFile, bool) {
	return g.readFile(ctx, KeyAttachmentFile)
}

func (g *Gateway) SaveAttachmentFile(ctx context.Context, file models.PdfFile) error {
	return g.writeJSON(ctx, KeyAttachmentFile, EncodeStoredFile(file))
}

func (g *Gateway) RemoveAttachmentFile(ctx context.Context) error {
	return g.remove(ctx, KeyAttachmentFile)
}

// Sample document cache

func (g *Gateway) SampleFile(ctx context.Context) (models.PdfFile, bool) {
	return g.readFile(ctx, KeySampleFile)
}

func (g *Gateway) SaveSampleFile(ctx context.Context, file models.PdfFile) error {
	return g.writeJSON(ctx, KeySampleFile, EncodeStoredFile(file))
}

// ClearPDFData removes the attachment metadata, its binary and the cached
// sample document.
func (g *Gateway) ClearPDFData(ctx context.Context) error {
	return errors.Join(
		g.remove(ctx, KeyAttachment),
		g.remove(ctx, KeyAttachmentFile),
		g.remove(ctx, KeySampleFile),
	)
}

// Submission log

// Submissions returns the submission log in append order. A missing or
// corrupt log is reported as empty.
func (g *Gateway) Submissions(ctx context.Context) []models.SubmissionRecord {
	submissions, _ := readJSON[[]models.SubmissionRecord](ctx, g, KeySubmissions)
	return submissions
}

// AppendSubmission adds record to the end of the submission log.
func (g *Gateway) AppendSubmission(ctx context.Context, record models.SubmissionRecord) error {
	g.appendMu.Lock()
	defer g.appendMu.Unlock()

	submissions := g.Submissions(ctx)
	submissions = append(submissions, record)
	return g.writeJSON(ctx, KeySubmissions, submissions)
}

func readJSON[T any](ctx context.Context, g *Gateway, key string) (T, bool) {
	log := logger.FromContextOr(ctx, g.logger)

	var value T
	raw, err := g.kv.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return value, false
	}
	if err != nil {
		log.Err(err).Str("func", "store.readJSON").Str("key", key).Msg("error reading entry")
		return value, false
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		log.Err(err).Str("func", "store.readJSON").Str("key", key).Msg("corrupt entry, treating as absent")
		var zero T
		return zero, false
	}

	return value, true
}

func (g *Gateway) writeJSON(ctx context.Context, key string, value any) error {
	log := logger.FromContextOr(ctx, g.logger)

	raw, err := json.Marshal(value)
	if err != nil {
		log.Err(err).Str("func", "*Gateway.writeJSON").Str("key", key).Msg("error encoding entry")
		return fmt.Errorf("error encoding %s: %w", key, err)
	}

	if err := g.kv.Set(ctx, key, raw); err != nil {
		log.Err(err).Str("func", "*Gateway.writeJSON").Str("key", key).Msg("error saving entry")
		return fmt.Errorf("error saving %s: %w", key, err)
	}

	return nil
}

func (g *Gateway) remove(ctx context.Context, key string) error {
	if err := g.kv.Remove(ctx, key); err != nil {
		logger.FromContextOr(ctx, g.logger).Err(err).Str("func", "*Gateway.remove").Str("key", key).Msg("error removing entry")
		return fmt.Errorf("error removing %s: %w", key, err)
	}
	return nil
}

func (g *Gateway) readFile(ctx context.Context, key string) (models.PdfFile, bool) {
	stored, ok := readJSON[models.StoredFile](ctx, g, key)
	if !ok {
		return models.PdfFile{}, false
	}

	file, err := DecodeStoredFile(stored)
	if err != nil {
		logger.FromContextOr(ctx, g.logger).Err(err).Str("func", "*Gateway.readFile").Str("key", key).Msg("corrupt file entry, treating as absent")
		return models.PdfFile{}, false
	}

	return file, true
}

// EncodeStoredFile converts file to its persisted form with the content as
// a base64 data URL.
func EncodeStoredFile(file models.PdfFile) models.StoredFile {
	contentType := file.ContentType
	if contentType == "" {
		contentType = models.PDFContentType
	}

	return models.StoredFile{
		Name:         file.Name,
		Size:         file.Size(),
		Type:         contentType,
		Data:         "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(file.Content),
		LastModified: file.LastModified.UnixMilli(),
	}
}

// DecodeStoredFile is the inverse of [EncodeStoredFile].
func DecodeStoredFile(stored models.StoredFile) (models.PdfFile, error) {
	header, payload, found := strings.Cut(stored.Data, ",")
	if !found || !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return models.PdfFile{}, ErrMalformedDataURL
	}

	content, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return models.PdfFile{}, fmt.Errorf("%w: %w", ErrMalformedDataURL, err)
	}

	contentType := stored.Type
	if contentType == "" {
		contentType = strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
	}

	return models.PdfFile{
		Name:         stored.Name,
		ContentType:  contentType,
		Content:      content,
		LastModified: time.UnixMilli(stored.LastModified).UTC(),
	}, nil
}
