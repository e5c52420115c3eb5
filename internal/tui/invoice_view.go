// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/invoice-entry/models"
)

const (
	labelWidth = 22

	formHotKeys = "tab/↑/↓: field │ pgup/pgdn: tab │ ctrl+n/p: pick │ ctrl+s: save │ ctrl+g: submit\n" +
		"  ctrl+o: attach │ ctrl+x: detach │ ctrl+r: extract │ ctrl+y: sample │ ctrl+l: clear │ ctrl+t: submissions │ esc: log out"
)

// View implements [tea.Model].
func (m *InvoiceModel) View() string {
	if m.mode == invoiceModeSubmissions {
		return m.withOverlay(m.submissions.View())
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if notice := m.state.Notice; notice != nil {
		b.WriteString(renderNotice(*notice))
		b.WriteString("\n\n")
	}

	visible := m.state.VisibleErrors()
	for i, name := range m.sectionFields() {
		cursor := " "
		if i == m.focus {
			cursor = ">"
		}

		b.WriteString(cursor)
		b.WriteString(" ")
		b.WriteString(padRight(models.FieldLabel(name), labelWidth))
		b.WriteString(" │ ")
		b.WriteString(m.inputs[name].View())
		if len(models.FieldOptions[name]) > 0 {
			b.WriteString(helpStyle.Render("  ▾"))
		}
		b.WriteString("\n")

		if msg, ok := visible[name]; ok {
			b.WriteString(strings.Repeat(" ", labelWidth+2))
			b.WriteString(" │ ")
			b.WriteString(errorStyle.Render(msg))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderAttachment())

	if m.state.Extracting {
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(m.spinner.View() + " Extracting invoice data..."))
	}
	if m.busy {
		b.WriteString("\n")
		b.WriteString(infoStyle.Render("Submitting..."))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(successStyle.Render(m.status))
	}

	switch m.mode {
	case invoiceModeAttach:
		b.WriteString("\n\n")
		b.WriteString(overlayBoxStyle.Render("Attach PDF\n\n[" + m.pathInput.View() + "]\n\nenter: attach    esc: cancel"))
	case invoiceModeConfirmReset:
		b.WriteString("\n\n")
		b.WriteString(confirmModel{question: "Clear the form, draft and attachment?"}.View())
	case invoiceModeConfirmLogout:
		b.WriteString("\n\n")
		b.WriteString(confirmModel{question: "Log out? The draft and attachment are cleared."}.View())
	}

	title := "INVOICE ENTRY"
	if m.session.Username != "" {
		title += " · " + m.session.Username
	}

	return m.withOverlay(renderPage(title, strings.TrimRight(b.String(), "\n"), formHotKeys))
}

func (m *InvoiceModel) withOverlay(page string) string {
	if !m.overlay.active() {
		return page
	}
	return page + "\n\n" + m.overlay.View()
}

func (m *InvoiceModel) renderTabs() string {
	tabs := make([]string, 0, len(models.Sections))
	for _, section := range models.Sections {
		label := section.Label()
		if section == m.state.ActiveSection {
			tabs = append(tabs, activeTabStyle.Render("["+label+"]"))
			continue
		}
		tabs = append(tabs, tabStyle.Render(" "+label+" "))
	}
	return strings.Join(tabs, "  ")
}

func (m *InvoiceModel) renderAttachment() string {
	attachment := m.state.Attachment
	if attachment == nil {
		return helpStyle.Render("No PDF attached")
	}

	var b strings.Builder
	b.WriteString("PDF: ")
	b.WriteString(attachment.FileName)
	b.WriteString(" (")
	b.WriteString(attachment.FileSize)
	if attachment.PageCount > 0 {
		b.WriteString(fmt.Sprintf(", %d page", attachment.PageCount))
		if attachment.PageCount > 1 {
			b.WriteString("s")
		}
	}
	b.WriteString(")")
	if !attachment.UploadedAt.IsZero() {
		b.WriteString(" uploaded ")
		b.WriteString(attachment.UploadedAt.Local().Format(submissionTimeLayout))
	}
	return b.String()
}

func renderNotice(notice models.Notice) string {
	switch notice.Kind {
	case models.NoticeSuccess:
		return successStyle.Render("✓ " + notice.Message)
	case models.NoticeFailure:
		return errorStyle.Render("✗ " + notice.Message)
	default:
		return infoStyle.Render(notice.Message)
	}
}
