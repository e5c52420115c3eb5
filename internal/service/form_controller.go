// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/invoice-entry/internal/adapter"
	"github.com/MKhiriev/invoice-entry/internal/logger"
	"github.com/MKhiriev/invoice-entry/internal/objecturl"
	"github.com/MKhiriev/invoice-entry/internal/pdfinfo"
	"github.com/MKhiriev/invoice-entry/internal/store"
	"github.com/MKhiriev/invoice-entry/internal/task"
	"github.com/MKhiriev/invoice-entry/internal/utils"
	"github.com/MKhiriev/invoice-entry/internal/validators"
	"github.com/MKhiriev/invoice-entry/models"
)

// Banner texts shown after form actions.
const (
	NoticeDraftSaved       = "Draft saved"
	NoticeDraftFailed      = "Failed to save draft. Please try again."
	NoticeSubmitInvalid    = "Please fix the highlighted errors before submitting."
	NoticeSubmitted        = "Invoice submitted successfully."
	NoticeSubmitFailed     = "Failed to submit invoice. Please try again."
	NoticeExtracted        = "Invoice data extracted from PDF."
	NoticeExtractionFailed = "Failed to extract data from PDF. Please try again."
	NoticeInvalidFile      = "Please select a valid PDF file."
	NoticeSampleLoaded     = "Sample invoice loaded."
)

// formController is the [FormController] implementation. One mutex guards
// every field below it; validation is always recomputed from the record
// held under that lock.
type formController struct {
	gateway   *store.Gateway
	extractor adapter.ExtractionProvider
	objects   *objecturl.Registry
	ids       *utils.UUIDGenerator
	now       func() time.Time
	logger    *logger.Logger

	mu         sync.Mutex
	record     models.InvoiceRecord
	validation models.FieldErrors
	touched    models.Touched
	section    models.Section
	attachment *models.PdfAttachment
	submitted  bool
	extracting bool
	notice     *models.Notice

	// generation changes whenever the attachment is replaced or cleared.
	// An extraction result is only applied to the generation it started on.
	generation uint64
	// live is false once Close was called.
	live bool
	// dirty is set when the record changed and has not been persisted yet.
	dirty bool
}

// NewFormController creates the controller for one session and hydrates it
// from the draft and attachment kept by gateway. Validation and touched
// state always start empty.
func NewFormController(ctx context.Context, gateway *store.Gateway, extractor adapter.ExtractionProvider, objects *objecturl.Registry, log *logger.Logger) FormController {
	c := &formController{
		gateway:    gateway,
		extractor:  extractor,
		objects:    objects,
		ids:        utils.NewUUIDGenerator(),
		now:        time.Now,
		logger:     log,
		validation: models.FieldErrors{},
		touched:    models.Touched{},
		section:    models.SectionVendor,
		live:       true,
	}
	c.hydrate(ctx)

	return c
}

func (c *formController) hydrate(ctx context.Context) {
	log := logger.FromContextOr(ctx, c.logger)

	if record, ok := c.gateway.Draft(ctx); ok {
		c.record = record
	}

	meta, ok := c.gateway.Attachment(ctx)
	if !ok {
		return
	}

	file, ok := c.gateway.AttachmentFile(ctx)
	if !ok {
		log.Warn().Str("func", "*formController.hydrate").Str("file", meta.FileName).Msg("attachment binary is missing, dropping attachment")
		return
	}

	meta.File = &file
	meta.FileURL = c.objects.Create(file)
	c.attachment = &meta
}

func (c *formController) State(ctx context.Context) models.FormState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshotLocked()
}

func (c *formController) SetField(ctx context.Context, name, value string) error {
	if !models.IsInvoiceField(name) {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.live {
		return ErrFormClosed
	}

	c.record.Set(name, value)
	c.touched[name] = true
	c.validation = validators.ValidateInvoice(c.record)
	c.dirty = true

	// autosave on change; a failed write is retried by the autosave job
	_ = c.persistDraftLocked(ctx)

	return nil
}

func (c *formController) SetSection(ctx context.Context, section models.Section) error {
	if !section.IsValid() {
		return fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.live {
		return ErrFormClosed
	}

	c.section = section
	return nil
}

func (c *formController) SaveDraft(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.live {
		return ErrFormClosed
	}

	if err := c.persistDraftLocked(ctx); err != nil {
		c.notice = failureNotice(NoticeDraftFailed)
		return fmt.Errorf("%w: %w", ErrDraftNotSaved, err)
	}

	c.notice = infoNotice(NoticeDraftSaved)
	return nil
}

func (c *formController) Submit(ctx context.Context) (models.SubmissionRecord, error) {
	log := logger.FromContextOr(ctx, c.logger)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.live {
		return models.SubmissionRecord{}, ErrFormClosed
	}

	for _, name := range models.InvoiceFields {
		c.touched[name] = true
	}
	c.submitted = true
	c.validation = validators.ValidateInvoice(c.record)

	if c.validation.HasErrors() {
		c.notice = failureNotice(NoticeSubmitInvalid)
		return models.SubmissionRecord{}, fmt.Errorf("%w: %w", ErrSubmissionInvalid, c.validation.Clone())
	}

	submission := models.SubmissionRecord{
		InvoiceRecord: c.record,
		SubmittedAt:   c.now().UTC(),
		Status:        models.SubmissionStatusSubmitted,
		ID:            c.ids.Generate(),
	}

	if err := c.gateway.AppendSubmission(ctx, submission); err != nil {
		log.Err(err).Str("func", "*formController.Submit").Msg("error appending submission")
		c.notice = failureNotice(NoticeSubmitFailed)
		return models.SubmissionRecord{}, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	// the submitted snapshot is the last form data written before the reset
	if err := c.gateway.SaveDraft(ctx, submission.InvoiceRecord); err != nil {
		log.Err(err).Str("func", "*formController.Submit").Msg("error saving submitted snapshot")
	}

	c.clearLocked()
	c.removeAttachmentDataLocked(ctx)
	c.dirty = true
	_ = c.persistDraftLocked(ctx)

	c.notice = successNotice(NoticeSubmitted)

	log.Info().Str("func", "*formController.Submit").Str("id", submission.ID).Msg("invoice submitted")
	return submission, nil
}

func (c *formController) Reset(ctx context.Context) error {
	log := logger.FromContextOr(ctx, c.logger)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.live {
		return ErrFormClosed
	}

	c.clearLocked()
	c.notice = nil
	c.dirty = false

	if err := errors.Join(c.gateway.RemoveDraft(ctx), c.gateway.ClearPDFData(ctx)); err != nil {
		log.Err(err).Str("func", "*formController.Reset").Msg("error clearing persisted form data")
	}

	return nil
}

func (c *formController) LoadDummy(ctx context.Context) error {
	log := logger.FromContextOr(ctx, c.logger)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.live {
		return ErrFormClosed
	}

	sample, ok := c.gateway.SampleFile(ctx)
	if !ok {
		sample = pdfinfo.SampleFile(c.now())
		if err := c.gateway.SaveSampleFile(ctx, sample); err != nil {
			log.Err(err).Str("func", "*formController.LoadDummy").Msg("error caching sample pdf")
		}
	}

	c.record = SampleRecord()
	c.validation = validators.ValidateInvoice(c.record)
	c.dirty = true
	_ = c.persistDraftLocked(ctx)

	c.attachLocked(ctx, sample)
	c.notice = infoNotice(NoticeSampleLoaded)

	return nil
}

func (c *formController) AttachFile(ctx context.Context, file models.PdfFile) error {
	if file.ContentType == "" {
		file.ContentType = pdfinfo.DetectContentType(file.Name, file.Content)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.live {
		return ErrFormClosed
	}

	if !pdfinfo.IsPDF(file) {
		c.notice = failureNotice(NoticeInvalidFile)
		return fmt.Errorf("%w: %s", ErrInvalidFileType, file.ContentType)
	}

	c.attachLocked(ctx, file)
	c.notice = nil

	return nil
}

func (c *formController) DetachFile(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.live {
		return ErrFormClosed
	}

	c.revokeLocked()
	c.attachment = nil
	c.extracting = false
	c.generation++
	c.removeAttachmentDataLocked(ctx)

	return nil
}

func (c *formController) Object(ctx context.Context, id string) (models.PdfFile, error) {
	file, err := c.objects.ResolveID(id)
	if err != nil {
		return models.PdfFile{}, fmt.Errorf("%w: %w", ErrObjectNotFound, err)
	}
	return file, nil
}

func (c *formController) LoadExtraction(ctx context.Context, payload models.ExtractionPayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.live {
		return ErrFormClosed
	}

	return c.loadExtractionLocked(ctx, payload)
}

func (c *formController) StartExtraction(ctx context.Context) (*task.Task, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.live {
		return nil, ErrFormClosed
	}
	if c.attachment == nil || c.attachment.File == nil {
		return nil, ErrNoAttachment
	}
	if c.extracting {
		return nil, ErrExtractionInProgress
	}

	c.extracting = true
	generation := c.generation
	file := cloneFile(*c.attachment.File)

	return task.Run(ctx, func(ctx context.Context) error {
		payload, err := c.extractor.Extract(ctx, file)
		return c.finishExtraction(ctx, generation, payload, err)
	}), nil
}

// finishExtraction applies an extraction outcome if the form is still live
// and the attachment has not changed since the extraction started.
func (c *formController) finishExtraction(ctx context.Context, generation uint64, payload models.ExtractionPayload, extractErr error) error {
	log := logger.FromContextOr(ctx, c.logger)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.live || generation != c.generation {
		log.Debug().Str("func", "*formController.finishExtraction").Msg("dropping stale extraction result")
		return ErrExtractionDiscarded
	}

	c.extracting = false

	if extractErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		log.Err(extractErr).Str("func", "*formController.finishExtraction").Msg("extraction failed")
		c.notice = failureNotice(NoticeExtractionFailed)
		if !errors.Is(extractErr, ErrExtractionFailed) {
			extractErr = fmt.Errorf("%w: %w", ErrExtractionFailed, extractErr)
		}
		return extractErr
	}

	if err := c.loadExtractionLocked(ctx, payload); err != nil {
		return err
	}
	c.notice = successNotice(NoticeExtracted)

	return nil
}

func (c *formController) loadExtractionLocked(ctx context.Context, payload models.ExtractionPayload) error {
	merged, err := MergeExtraction(c.record, payload)
	if err != nil {
		return err
	}

	c.record = merged
	c.validation = validators.ValidateInvoice(c.record)
	c.dirty = true
	_ = c.persistDraftLocked(ctx)

	return nil
}

func (c *formController) Submissions(ctx context.Context) []models.SubmissionRecord {
	return slices.Clone(c.gateway.Submissions(ctx))
}

func (c *formController) Autosave(ctx context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.live || !c.dirty {
		return false, nil
	}

	if err := c.persistDraftLocked(ctx); err != nil {
		return false, fmt.Errorf("%w: %w", ErrDraftNotSaved, err)
	}
	return true, nil
}

func (c *formController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.live {
		return
	}

	c.live = false
	c.revokeLocked()
}

// attachLocked makes file the current attachment, persisting its metadata
// and binary and swapping the object URL.
func (c *formController) attachLocked(ctx context.Context, file models.PdfFile) {
	log := logger.FromContextOr(ctx, c.logger)

	file = cloneFile(file)
	if file.LastModified.IsZero() {
		file.LastModified = c.now()
	}

	pages, err := pdfinfo.PageCount(file.Content)
	if err != nil {
		log.Warn().Err(err).Str("func", "*formController.attachLocked").Str("file", file.Name).Msg("could not count pages")
	}

	attachment := models.PdfAttachment{
		FileName:   file.Name,
		FileSize:   models.FormatFileSize(file.Size()),
		UploadedAt: c.now().UTC(),
		PageCount:  pages,
		File:       &file,
	}

	if err := c.gateway.SaveAttachment(ctx, attachment); err != nil {
		log.Err(err).Str("func", "*formController.attachLocked").Msg("error saving attachment metadata")
	}
	if err := c.gateway.SaveAttachmentFile(ctx, file); err != nil {
		log.Err(err).Str("func", "*formController.attachLocked").Msg("error saving attachment binary")
	}

	c.revokeLocked()
	attachment.FileURL = c.objects.Create(file)
	c.attachment = &attachment
	c.extracting = false
	c.generation++
}

// clearLocked resets the in-memory form to its initial state.
func (c *formController) clearLocked() {
	c.revokeLocked()

	c.record = models.InvoiceRecord{}
	c.validation = models.FieldErrors{}
	c.touched = models.Touched{}
	c.section = models.SectionVendor
	c.attachment = nil
	c.submitted = false
	c.extracting = false
	c.generation++
}

func (c *formController) revokeLocked() {
	if c.attachment != nil && c.attachment.FileURL != "" {
		c.objects.Revoke(c.attachment.FileURL)
		c.attachment.FileURL = ""
	}
}

func (c *formController) removeAttachmentDataLocked(ctx context.Context) {
	err := errors.Join(c.gateway.RemoveAttachment(ctx), c.gateway.RemoveAttachmentFile(ctx))
	if err != nil {
		logger.FromContextOr(ctx, c.logger).Err(err).Str("func", "*formController.removeAttachmentDataLocked").Msg("error removing attachment data")
	}
}

func (c *formController) persistDraftLocked(ctx context.Context) error {
	if err := c.gateway.SaveDraft(ctx, c.record); err != nil {
		logger.FromContextOr(ctx, c.logger).Err(err).Str("func", "*formController.persistDraftLocked").Msg("error saving draft")
		return err
	}

	c.dirty = false
	return nil
}

func (c *formController) snapshotLocked() models.FormState {
	state := models.FormState{
		Record:        c.record,
		Validation:    c.validation.Clone(),
		Touched:       c.touched.Clone(),
		ActiveSection: c.section,
		Submitted:     c.submitted,
		Extracting:    c.extracting,
	}

	if c.attachment != nil {
		attachment := *c.attachment
		if attachment.File != nil {
			file := cloneFile(*attachment.File)
			attachment.File = &file
		}
		state.Attachment = &attachment
	}

	if c.notice != nil {
		notice := *c.notice
		state.Notice = &notice
	}

	return state
}

func cloneFile(file models.PdfFile) models.PdfFile {
	file.Content = slices.Clone(file.Content)
	return file
}

func successNotice(msg string) *models.Notice {
	return &models.Notice{Kind: models.NoticeSuccess, Message: msg}
}

func failureNotice(msg string) *models.Notice {
	return &models.Notice{Kind: models.NoticeFailure, Message: msg}
}

func infoNotice(msg string) *models.Notice {
	return &models.Notice{Kind: models.NoticeInfo, Message: msg}
}
