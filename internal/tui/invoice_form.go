// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/invoice-entry/internal/service"
	"github.com/MKhiriev/invoice-entry/internal/task"
	"github.com/MKhiriev/invoice-entry/models"
)

type invoiceMode int

const (
	invoiceModeEdit invoiceMode = iota
	invoiceModeAttach
	invoiceModeSubmissions
	invoiceModeConfirmReset
	invoiceModeConfirmLogout
)

const statusTTL = 2 * time.Second

// InvoiceModel is the invoice form screen. Field edits go straight to the
// form controller so validation and the persisted draft follow every
// keystroke; slower actions run as commands.
type InvoiceModel struct {
	ctx     context.Context
	form    service.FormController
	session models.Session

	state  models.FormState
	inputs map[string]textinput.Model
	focus  int

	mode        invoiceMode
	pathInput   textinput.Model
	submissions submissionsModel
	spinner     spinner.Model
	extraction  *task.Task
	busy        bool
	status      string
	overlay     errorOverlayModel

	logout     bool
	quitByUser bool
}

// NewInvoiceModel builds the form screen over form for the user of session.
func NewInvoiceModel(ctx context.Context, form service.FormController, session models.Session) *InvoiceModel {
	inputs := make(map[string]textinput.Model, len(models.InvoiceFields))
	for _, name := range models.InvoiceFields {
		input := textinput.New()
		input.Prompt = ""
		input.Width = 40
		input.CharLimit = 256
		input.Placeholder = fieldPlaceholder(name)
		inputs[name] = input
	}

	pathInput := textinput.New()
	pathInput.Placeholder = "/path/to/invoice.pdf"
	pathInput.Width = 50

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := &InvoiceModel{
		ctx:       ctx,
		form:      form,
		session:   session,
		inputs:    inputs,
		pathInput: pathInput,
		spinner:   s,
	}
	m.syncState()
	m.setFocus(0)

	return m
}

// Logout reports whether the program ended with a logout request.
func (m *InvoiceModel) Logout() bool {
	return m.logout
}

// Init implements [tea.Model].
func (m *InvoiceModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model].
func (m *InvoiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case actionDoneMsg:
		m.busy = false
		m.syncState()
		m.report(msg.err)
		return m, nil
	case submitDoneMsg:
		m.busy = false
		m.syncState()
		if msg.err != nil {
			m.report(msg.err)
			return m, nil
		}
		m.setFocus(0)
		m.status = "Submission " + msg.submission.ID + " recorded"
		return m, cmdClearStatus()
	case extractionDoneMsg:
		m.extraction = nil
		m.syncState()
		if !errors.Is(msg.err, service.ErrExtractionDiscarded) && !errors.Is(msg.err, context.Canceled) {
			m.report(msg.err)
		}
		return m, nil
	case submissionsLoadedMsg:
		m.submissions = newSubmissionsModel(msg.items)
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.overlay.message = "Copy to clipboard failed: " + msg.err.Error()
			return m, nil
		}
		m.submissions.status = "Copied " + msg.id
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		m.submissions.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.state.Extracting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.mode == invoiceModeAttach {
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		return m, cmd
	}
	return m.updateFocused(msg)
}

func (m *InvoiceModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.cancelExtraction()
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.overlay.active() {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.overlay.message = ""
		}
		return m, nil
	}

	switch m.mode {
	case invoiceModeAttach:
		return m.updateAttach(msg)
	case invoiceModeSubmissions:
		return m.updateSubmissions(msg)
	case invoiceModeConfirmReset:
		return m.updateConfirm(msg, m.cmdAction(m.form.Reset))
	case invoiceModeConfirmLogout:
		if key.Matches(msg, keys.yes) {
			m.cancelExtraction()
			m.logout = true
			return m, tea.Quit
		}
		if key.Matches(msg, keys.no) {
			m.mode = invoiceModeEdit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.tab, keys.down, keys.enter):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, keys.backtab, keys.up):
		m.moveFocus(-1)
		return m, nil
	case key.Matches(msg, keys.nextSection):
		m.switchSection(1)
		return m, nil
	case key.Matches(msg, keys.prevSection):
		m.switchSection(-1)
		return m, nil
	case key.Matches(msg, keys.nextOption):
		m.cycleOption(1)
		return m, nil
	case key.Matches(msg, keys.prevOption):
		m.cycleOption(-1)
		return m, nil
	case key.Matches(msg, keys.saveDraft):
		return m, m.cmdAction(m.form.SaveDraft)
	case key.Matches(msg, keys.submit):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdSubmit()
	case key.Matches(msg, keys.attach):
		m.mode = invoiceModeAttach
		m.pathInput.SetValue("")
		m.pathInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.detach):
		return m, m.cmdAction(m.form.DetachFile)
	case key.Matches(msg, keys.extract):
		return m.startExtraction()
	case key.Matches(msg, keys.sample):
		return m, m.cmdAction(m.form.LoadDummy)
	case key.Matches(msg, keys.reset):
		m.mode = invoiceModeConfirmReset
		return m, nil
	case key.Matches(msg, keys.submissions):
		m.mode = invoiceModeSubmissions
		return m, m.cmdLoadSubmissions()
	case key.Matches(msg, keys.esc):
		m.mode = invoiceModeConfirmLogout
		return m, nil
	}

	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused input and writes a changed
// value through to the controller.
func (m *InvoiceModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	name := m.focusedField()
	if name == "" {
		return m, nil
	}

	input := m.inputs[name]
	before := input.Value()

	var cmd tea.Cmd
	input, cmd = input.Update(msg)
	m.inputs[name] = input

	if input.Value() != before {
		m.setField(name, input.Value())
	}
	return m, cmd
}

func (m *InvoiceModel) updateConfirm(msg tea.KeyMsg, onYes tea.Cmd) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.mode = invoiceModeEdit
		return m, onYes
	case key.Matches(msg, keys.no):
		m.mode = invoiceModeEdit
	}
	return m, nil
}

func (m *InvoiceModel) setField(name, value string) {
	err := m.form.SetField(m.ctx, name, value)
	m.syncState()
	m.report(err)
}

func (m *InvoiceModel) startExtraction() (tea.Model, tea.Cmd) {
	extraction, err := m.form.StartExtraction(m.ctx)
	m.syncState()
	if err != nil {
		m.report(err)
		return m, nil
	}

	m.extraction = extraction
	ctx := m.ctx
	wait := func() tea.Msg {
		return extractionDoneMsg{err: extraction.Wait(ctx)}
	}

	return m, tea.Batch(m.spinner.Tick, wait)
}

func (m *InvoiceModel) cancelExtraction() {
	if m.extraction != nil {
		m.extraction.Cancel()
	}
}

// syncState pulls a fresh snapshot and copies changed record values into
// the inputs.
func (m *InvoiceModel) syncState() {
	m.state = m.form.State(m.ctx)

	for _, name := range models.InvoiceFields {
		value, _ := m.state.Record.Get(name)
		input := m.inputs[name]
		if input.Value() != value {
			input.SetValue(value)
			m.inputs[name] = input
		}
	}

	if fields := m.sectionFields(); m.focus >= len(fields) {
		m.setFocus(len(fields) - 1)
	}
}

// report shows err in the error overlay unless the controller already
// raised a failure notice for it.
func (m *InvoiceModel) report(err error) {
	if err == nil {
		return
	}
	if notice := m.state.Notice; notice != nil && notice.Kind == models.NoticeFailure {
		return
	}
	m.overlay.message = humanizeError(err)
}

func (m *InvoiceModel) sectionFields() []string {
	return models.SectionFields[m.state.ActiveSection]
}

func (m *InvoiceModel) focusedField() string {
	fields := m.sectionFields()
	if m.focus < 0 || m.focus >= len(fields) {
		return ""
	}
	return fields[m.focus]
}

func (m *InvoiceModel) setFocus(i int) {
	for name, input := range m.inputs {
		if input.Focused() {
			input.Blur()
			m.inputs[name] = input
		}
	}

	fields := m.sectionFields()
	if len(fields) == 0 {
		m.focus = 0
		return
	}
	m.focus = max(0, min(i, len(fields)-1))

	name := fields[m.focus]
	input := m.inputs[name]
	input.Focus()
	m.inputs[name] = input
}

func (m *InvoiceModel) moveFocus(delta int) {
	n := len(m.sectionFields())
	if n == 0 {
		return
	}
	m.setFocus((m.focus + delta + n) % n)
}

func (m *InvoiceModel) switchSection(delta int) {
	idx := slices.Index(models.Sections, m.state.ActiveSection)
	n := len(models.Sections)
	next := models.Sections[(idx+delta+n)%n]

	err := m.form.SetSection(m.ctx, next)
	m.syncState()
	m.report(err)
	m.setFocus(0)
}

// cycleOption steps the focused picker field through its choices.
func (m *InvoiceModel) cycleOption(delta int) {
	name := m.focusedField()
	options := models.FieldOptions[name]
	if len(options) == 0 {
		return
	}

	idx := slices.Index(options, m.inputs[name].Value())
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = len(options) - 1
	default:
		idx = (idx + delta + len(options)) % len(options)
	}

	m.setField(name, options[idx])
}

func (m *InvoiceModel) cmdAction(action func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return actionDoneMsg{err: action(ctx)}
	}
}

func (m *InvoiceModel) cmdSubmit() tea.Cmd {
	ctx := m.ctx
	form := m.form
	return func() tea.Msg {
		submission, err := form.Submit(ctx)
		return submitDoneMsg{submission: submission, err: err}
	}
}

func (m *InvoiceModel) cmdLoadSubmissions() tea.Cmd {
	ctx := m.ctx
	form := m.form
	return func() tea.Msg {
		return submissionsLoadedMsg{items: form.Submissions(ctx)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func fieldPlaceholder(name string) string {
	switch name {
	case models.FieldInvoiceDate, models.FieldDueDate, models.FieldGLPostDate:
		return "MM/DD/YYYY"
	case models.FieldTotalAmount, models.FieldLineAmount:
		return "0.00"
	}
	if options := models.FieldOptions[name]; len(options) > 0 {
		return "ctrl+n / ctrl+p to pick"
	}
	return ""
}
