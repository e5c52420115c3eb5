// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/invoice-entry/internal/mock"
	"github.com/MKhiriev/invoice-entry/internal/pdfinfo"
	"github.com/MKhiriev/invoice-entry/internal/service"
	"github.com/MKhiriev/invoice-entry/internal/task"
	"github.com/MKhiriev/invoice-entry/models"
)

// formFixture backs a mocked controller with a mutable state snapshot.
type formFixture struct {
	form  *mock.MockFormController
	state *models.FormState
}

func newFormFixture(t *testing.T) formFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := formFixture{
		form: mock.NewMockFormController(ctrl),
		state: &models.FormState{
			ActiveSection: models.SectionVendor,
			Validation:    models.FieldErrors{},
			Touched:       models.Touched{},
		},
	}
	f.form.EXPECT().State(gomock.Any()).DoAndReturn(func(context.Context) models.FormState {
		return *f.state
	}).AnyTimes()

	return f
}

// expectSetField applies SetField calls to the fixture state.
func (f formFixture) expectSetField() {
	f.form.EXPECT().SetField(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, name, value string) error {
		f.state.Record.Set(name, value)
		f.state.Touched[name] = true
		return nil
	}).AnyTimes()
}

func newTestInvoiceModel(f formFixture) *InvoiceModel {
	return NewInvoiceModel(context.Background(), f.form, models.Session{Username: "jane"})
}

func TestInvoiceModel_InitialState(t *testing.T) {
	f := newFormFixture(t)
	f.state.Record.Vendor = "Acme Corp"

	m := newTestInvoiceModel(f)

	assert.Equal(t, models.FieldVendor, m.focusedField())
	assert.Equal(t, "Acme Corp", m.inputs[models.FieldVendor].Value())
	assert.True(t, m.inputs[models.FieldVendor].Focused())

	view := m.View()
	assert.Contains(t, view, "[Vendor Details]")
	assert.Contains(t, view, "jane")
	assert.Contains(t, view, "No PDF attached")
}

func TestInvoiceModel_TypingWritesThrough(t *testing.T) {
	f := newFormFixture(t)
	f.expectSetField()
	m := newTestInvoiceModel(f)

	typeInto(m, "Acme")

	assert.Equal(t, "Acme", f.state.Record.Vendor)
	assert.Equal(t, "Acme", m.inputs[models.FieldVendor].Value())
}

func TestInvoiceModel_FocusMovesWithinSection(t *testing.T) {
	f := newFormFixture(t)
	m := newTestInvoiceModel(f)

	m.Update(keyOf(tea.KeyTab))
	assert.Equal(t, models.FieldPurchaseOrderNumber, m.focusedField())

	m.Update(keyOf(tea.KeyTab))
	assert.Equal(t, models.FieldVendor, m.focusedField(), "focus wraps around")

	m.Update(keyOf(tea.KeyShiftTab))
	assert.Equal(t, models.FieldPurchaseOrderNumber, m.focusedField())
}

func TestInvoiceModel_SwitchSection(t *testing.T) {
	f := newFormFixture(t)
	f.form.EXPECT().SetSection(gomock.Any(), models.SectionInvoice).DoAndReturn(func(_ context.Context, s models.Section) error {
		f.state.ActiveSection = s
		return nil
	})
	f.form.EXPECT().SetSection(gomock.Any(), models.SectionVendor).DoAndReturn(func(_ context.Context, s models.Section) error {
		f.state.ActiveSection = s
		return nil
	})
	m := newTestInvoiceModel(f)

	m.Update(keyOf(tea.KeyPgDown))
	assert.Equal(t, models.FieldInvoiceNumber, m.focusedField())
	assert.Contains(t, m.View(), "[Invoice Details]")

	m.Update(keyOf(tea.KeyPgUp))
	assert.Equal(t, models.FieldVendor, m.focusedField())
}

func TestInvoiceModel_CycleOptions(t *testing.T) {
	f := newFormFixture(t)
	f.expectSetField()
	m := newTestInvoiceModel(f)

	vendors := models.FieldOptions[models.FieldVendor]

	m.Update(keyOf(tea.KeyCtrlN))
	assert.Equal(t, vendors[0], f.state.Record.Vendor)

	m.Update(keyOf(tea.KeyCtrlN))
	assert.Equal(t, vendors[1], f.state.Record.Vendor)

	m.Update(keyOf(tea.KeyCtrlN))
	assert.Equal(t, vendors[0], f.state.Record.Vendor, "options wrap around")

	m.Update(keyOf(tea.KeyCtrlP))
	assert.Equal(t, vendors[len(vendors)-1], f.state.Record.Vendor)
}

func TestInvoiceModel_VisibleErrors(t *testing.T) {
	f := newFormFixture(t)
	f.state.Validation = models.FieldErrors{
		models.FieldVendor:              "Vendor is required",
		models.FieldPurchaseOrderNumber: "Purchase Order Number is required",
	}
	f.state.Touched = models.Touched{models.FieldVendor: true}
	m := newTestInvoiceModel(f)

	view := m.View()
	assert.Contains(t, view, "Vendor is required")
	assert.NotContains(t, view, "Purchase Order Number is required", "untouched fields hide errors")

	f.state.Submitted = true
	m.syncState()
	assert.Contains(t, m.View(), "Purchase Order Number is required")
}

func TestInvoiceModel_Submit(t *testing.T) {
	f := newFormFixture(t)
	f.form.EXPECT().Submit(gomock.Any()).DoAndReturn(func(context.Context) (models.SubmissionRecord, error) {
		f.state.Notice = &models.Notice{Kind: models.NoticeSuccess, Message: service.NoticeSubmitted}
		return models.SubmissionRecord{ID: "sub-1"}, nil
	})
	m := newTestInvoiceModel(f)

	_, cmd := m.Update(keyOf(tea.KeyCtrlG))
	require.True(t, m.busy)

	// a second submit while the first is in flight is ignored
	_, again := m.Update(keyOf(tea.KeyCtrlG))
	assert.Nil(t, again)

	m.Update(run(cmd))

	assert.False(t, m.busy)
	assert.Contains(t, m.status, "sub-1")
	assert.Contains(t, m.View(), service.NoticeSubmitted)
	assert.False(t, m.overlay.active())
}

func TestInvoiceModel_SubmitInvalidUsesNotice(t *testing.T) {
	f := newFormFixture(t)
	f.form.EXPECT().Submit(gomock.Any()).DoAndReturn(func(context.Context) (models.SubmissionRecord, error) {
		f.state.Submitted = true
		f.state.Notice = &models.Notice{Kind: models.NoticeFailure, Message: service.NoticeSubmitInvalid}
		return models.SubmissionRecord{}, fmt.Errorf("%w: %w", service.ErrSubmissionInvalid, models.FieldErrors{"vendor": "Vendor is required"})
	})
	m := newTestInvoiceModel(f)

	_, cmd := m.Update(keyOf(tea.KeyCtrlG))
	m.Update(run(cmd))

	assert.False(t, m.overlay.active(), "a failure notice replaces the overlay")
	assert.Contains(t, m.View(), service.NoticeSubmitInvalid)
}

func TestInvoiceModel_ErrorOverlay(t *testing.T) {
	f := newFormFixture(t)
	f.form.EXPECT().StartExtraction(gomock.Any()).Return(nil, service.ErrNoAttachment)
	m := newTestInvoiceModel(f)

	m.Update(keyOf(tea.KeyCtrlR))
	require.True(t, m.overlay.active())
	assert.Contains(t, m.View(), "Attach a PDF before running extraction")

	// keys other than enter/esc are swallowed by the overlay
	m.Update(keyRunes("x"))
	assert.True(t, m.overlay.active())

	m.Update(keyOf(tea.KeyEnter))
	assert.False(t, m.overlay.active())
}

func TestInvoiceModel_Extraction(t *testing.T) {
	f := newFormFixture(t)
	release := make(chan struct{})
	f.form.EXPECT().StartExtraction(gomock.Any()).DoAndReturn(func(ctx context.Context) (*task.Task, error) {
		f.state.Extracting = true
		return task.Run(ctx, func(context.Context) error {
			<-release
			f.state.Extracting = false
			f.state.Record.Vendor = "A-1 Exterminators"
			f.state.Notice = &models.Notice{Kind: models.NoticeSuccess, Message: service.NoticeExtracted}
			return nil
		}), nil
	})
	m := newTestInvoiceModel(f)

	_, cmd := m.Update(keyOf(tea.KeyCtrlR))
	require.NotNil(t, m.extraction)
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Extracting invoice data")

	close(release)
	require.NoError(t, m.extraction.Wait(context.Background()))
	m.Update(extractionDoneMsg{})

	assert.Nil(t, m.extraction)
	assert.Equal(t, "A-1 Exterminators", m.inputs[models.FieldVendor].Value())
	assert.Contains(t, m.View(), service.NoticeExtracted)
}

func TestInvoiceModel_DiscardedExtractionIsSilent(t *testing.T) {
	f := newFormFixture(t)
	m := newTestInvoiceModel(f)

	m.Update(extractionDoneMsg{err: service.ErrExtractionDiscarded})
	assert.False(t, m.overlay.active())

	m.Update(extractionDoneMsg{err: context.Canceled})
	assert.False(t, m.overlay.active())
}

func TestInvoiceModel_ActionsRunAsCommands(t *testing.T) {
	tests := []struct {
		name   string
		key    tea.KeyMsg
		expect func(f formFixture) *gomock.Call
	}{
		{"save draft", keyOf(tea.KeyCtrlS), func(f formFixture) *gomock.Call { return f.form.EXPECT().SaveDraft(gomock.Any()) }},
		{"detach", keyOf(tea.KeyCtrlX), func(f formFixture) *gomock.Call { return f.form.EXPECT().DetachFile(gomock.Any()) }},
		{"sample", keyOf(tea.KeyCtrlY), func(f formFixture) *gomock.Call { return f.form.EXPECT().LoadDummy(gomock.Any()) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFormFixture(t)
			tt.expect(f).Return(nil)
			m := newTestInvoiceModel(f)

			_, cmd := m.Update(tt.key)
			assert.Equal(t, actionDoneMsg{}, run(cmd))
		})
	}
}

func TestInvoiceModel_ResetNeedsConfirmation(t *testing.T) {
	f := newFormFixture(t)
	f.form.EXPECT().Reset(gomock.Any()).Return(nil)
	m := newTestInvoiceModel(f)

	m.Update(keyOf(tea.KeyCtrlL))
	require.Equal(t, invoiceModeConfirmReset, m.mode)

	_, cmd := m.Update(keyRunes("n"))
	assert.Nil(t, cmd)
	assert.Equal(t, invoiceModeEdit, m.mode)

	m.Update(keyOf(tea.KeyCtrlL))
	_, cmd = m.Update(keyRunes("y"))
	assert.Equal(t, actionDoneMsg{}, run(cmd))
}

func TestInvoiceModel_Logout(t *testing.T) {
	f := newFormFixture(t)
	m := newTestInvoiceModel(f)

	m.Update(keyOf(tea.KeyEsc))
	require.Equal(t, invoiceModeConfirmLogout, m.mode)
	assert.Contains(t, m.View(), "Log out?")

	_, cmd := m.Update(keyRunes("y"))

	assert.Equal(t, tea.Quit(), run(cmd))
	assert.True(t, m.Logout())
	assert.False(t, m.quitByUser)
}

func TestInvoiceModel_Quit(t *testing.T) {
	f := newFormFixture(t)
	m := newTestInvoiceModel(f)

	_, cmd := m.Update(keyOf(tea.KeyCtrlC))

	assert.Equal(t, tea.Quit(), run(cmd))
	assert.True(t, m.quitByUser)
	assert.False(t, m.Logout())
}

// ─────────────────────────────────────────────
// attachment
// ─────────────────────────────────────────────

func TestInvoiceModel_AttachFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice.pdf")
	require.NoError(t, os.WriteFile(path, pdfinfo.SamplePDF(), 0o600))

	f := newFormFixture(t)
	f.form.EXPECT().AttachFile(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, file models.PdfFile) error {
		assert.Equal(t, "invoice.pdf", file.Name)
		assert.Equal(t, pdfinfo.SamplePDF(), file.Content)
		assert.False(t, file.LastModified.IsZero())
		f.state.Attachment = &models.PdfAttachment{FileName: file.Name, FileSize: "0.01 MB", PageCount: 2, UploadedAt: time.Now()}
		return nil
	})
	m := newTestInvoiceModel(f)

	m.Update(keyOf(tea.KeyCtrlO))
	require.Equal(t, invoiceModeAttach, m.mode)

	typeInto(m, path)
	_, cmd := m.Update(keyOf(tea.KeyEnter))
	require.Equal(t, invoiceModeEdit, m.mode)

	m.Update(run(cmd))

	view := m.View()
	assert.Contains(t, view, "PDF: invoice.pdf (0.01 MB, 2 pages)")
}

func TestInvoiceModel_AttachEmptyPath(t *testing.T) {
	f := newFormFixture(t)
	m := newTestInvoiceModel(f)

	m.Update(keyOf(tea.KeyCtrlO))
	_, cmd := m.Update(keyOf(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Equal(t, "Please enter the path of a PDF file", m.overlay.message)
}

func TestReadPdfFile(t *testing.T) {
	dir := t.TempDir()

	_, err := readPdfFile(filepath.Join(dir, "missing.pdf"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = readPdfFile(dir)
	assert.Error(t, err)

	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))
	file, err := readPdfFile(path)
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", file.Name)
	assert.Empty(t, file.ContentType, "content type is sniffed by the controller")
}

// ─────────────────────────────────────────────
// submissions
// ─────────────────────────────────────────────

func TestInvoiceModel_SubmissionsAndCopy(t *testing.T) {
	var copied string
	original := copyToClipboard
	t.Cleanup(func() { copyToClipboard = original })
	copyToClipboard = func(text string) error {
		copied = text
		return nil
	}

	f := newFormFixture(t)
	f.form.EXPECT().Submissions(gomock.Any()).Return([]models.SubmissionRecord{
		{ID: "sub-1", InvoiceRecord: models.InvoiceRecord{Vendor: "Acme Corp"}, Status: models.SubmissionStatusSubmitted},
		{ID: "sub-2", InvoiceRecord: models.InvoiceRecord{Vendor: "Other Vendor"}, Status: models.SubmissionStatusSubmitted},
	})
	m := newTestInvoiceModel(f)

	_, cmd := m.Update(keyOf(tea.KeyCtrlT))
	require.Equal(t, invoiceModeSubmissions, m.mode)
	m.Update(run(cmd))

	view := m.View()
	assert.Contains(t, view, "SUBMITTED INVOICES")
	assert.Contains(t, view, "Acme Corp")
	assert.Contains(t, view, "ID:     sub-1")

	m.Update(keyOf(tea.KeyDown))
	_, cmd = m.Update(keyRunes("c"))
	m.Update(run(cmd))

	assert.Equal(t, "sub-2", copied)
	assert.Contains(t, m.View(), "Copied sub-2")

	m.Update(keyOf(tea.KeyEsc))
	assert.Equal(t, invoiceModeEdit, m.mode)
}

func TestInvoiceModel_CopyFailure(t *testing.T) {
	f := newFormFixture(t)
	m := newTestInvoiceModel(f)

	m.Update(copiedMsg{err: errors.New("no clipboard")})

	assert.Contains(t, m.overlay.message, "no clipboard")
}

func TestSubmissionsModel_Empty(t *testing.T) {
	assert.Contains(t, newSubmissionsModel(nil).View(), "No invoices submitted yet")
}
