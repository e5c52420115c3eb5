// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/invoice-entry/models"
)

func (m *InvoiceModel) updateAttach(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = invoiceModeEdit
		m.pathInput.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		path := strings.TrimSpace(m.pathInput.Value())
		if path == "" {
			m.overlay.message = humanizeError(errEmptyPath)
			return m, nil
		}

		m.mode = invoiceModeEdit
		m.pathInput.Blur()
		return m, m.cmdAttach(path)
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

func (m *InvoiceModel) cmdAttach(path string) tea.Cmd {
	ctx := m.ctx
	form := m.form
	return func() tea.Msg {
		file, err := readPdfFile(path)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{err: form.AttachFile(ctx, file)}
	}
}

// readPdfFile loads path from disk. The content type is left empty so the
// form controller sniffs it.
func readPdfFile(path string) (models.PdfFile, error) {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return models.PdfFile{}, fmt.Errorf("error opening %s: %w", path, err)
	}
	if info.IsDir() {
		return models.PdfFile{}, fmt.Errorf("error opening %s: is a directory", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return models.PdfFile{}, fmt.Errorf("error reading %s: %w", path, err)
	}

	return models.PdfFile{
		Name:         filepath.Base(path),
		Content:      content,
		LastModified: info.ModTime(),
	}, nil
}
