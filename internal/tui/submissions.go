// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/invoice-entry/models"
)

const submissionTimeLayout = "01/02/2006 15:04"

type submissionsModel struct {
	items  []models.SubmissionRecord
	idx    int
	status string
}

func newSubmissionsModel(items []models.SubmissionRecord) submissionsModel {
	return submissionsModel{items: items}
}

func (m submissionsModel) current() (models.SubmissionRecord, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.SubmissionRecord{}, false
	}
	return m.items[m.idx], true
}

func (m *InvoiceModel) updateSubmissions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = invoiceModeEdit
	case key.Matches(msg, keys.up):
		if m.submissions.idx > 0 {
			m.submissions.idx--
		}
	case key.Matches(msg, keys.down):
		if m.submissions.idx < len(m.submissions.items)-1 {
			m.submissions.idx++
		}
	case key.Matches(msg, keys.copy):
		if item, ok := m.submissions.current(); ok {
			return m, cmdCopy(item.ID)
		}
	}
	return m, nil
}

// copyToClipboard is swapped in tests.
var copyToClipboard = clipboard.WriteAll

func cmdCopy(id string) tea.Cmd {
	return func() tea.Msg {
		if err := copyToClipboard(id); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{id: id}
	}
}

func (m submissionsModel) View() string {
	var b strings.Builder

	if len(m.items) == 0 {
		b.WriteString("No invoices submitted yet")
	} else {
		b.WriteString(fmt.Sprintf("  %-3s │ %-20s │ %-14s │ %-12s │ %s\n", "#", "Vendor", "Invoice", "Amount", "Submitted"))
		b.WriteString("  ────┼──────────────────────┼────────────────┼──────────────┼─────────────────\n")
		for i, item := range m.items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %-3d │ %-20s │ %-14s │ %-12s │ %s\n",
				cursor,
				i+1,
				fitText(valueOrDash(item.Vendor), 20),
				fitText(valueOrDash(item.InvoiceNumber), 14),
				fitText(valueOrDash(item.TotalAmount), 12),
				item.SubmittedAt.Local().Format(submissionTimeLayout),
			))
		}

		if item, ok := m.current(); ok {
			b.WriteString("\nID:     ")
			b.WriteString(item.ID)
			b.WriteString("\nStatus: ")
			b.WriteString(item.Status)
		}
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(successStyle.Render(m.status))
	}

	return renderPage("SUBMITTED INVOICES", b.String(), "↑/↓: move │ c: copy id │ esc: back to form")
}
