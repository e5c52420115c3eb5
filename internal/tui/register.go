// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/invoice-entry/internal/service"
	"github.com/MKhiriev/invoice-entry/internal/validators"
	"github.com/MKhiriev/invoice-entry/models"
)

const (
	registerUsername = iota
	registerEmail
	registerFirstName
	registerLastName
	registerPassword
	registerRepeat
	registerFieldCount
)

var registerLabels = [registerFieldCount]string{
	registerUsername:  "Username",
	registerEmail:     "Email",
	registerFirstName: "First name",
	registerLastName:  "Last name",
	registerPassword:  "Password",
	registerRepeat:    "Repeat password",
}

// RegisterModel is the Bubble Tea model for the account creation screen.
// On success it resets the form and navigates back to the menu with a
// [RegisterSuccessNotice] payload.
type RegisterModel struct {
	ctx      context.Context
	identity service.IdentityService
	checker  validators.Validator

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel]. The username field receives
// focus immediately; the password fields use masked echo.
func NewRegisterModel(ctx context.Context, identity service.IdentityService) *RegisterModel {
	fields := make([]textinput.Model, registerFieldCount)
	for i := range fields {
		fields[i] = textinput.New()
		fields[i].Width = 40
		fields[i].Placeholder = strings.ToLower(registerLabels[i])
	}
	fields[registerUsername].CharLimit = 64
	fields[registerUsername].Focus()
	for _, i := range []int{registerPassword, registerRepeat} {
		fields[i].EchoMode = textinput.EchoPassword
		fields[i].EchoCharacter = '*'
	}

	return &RegisterModel{
		ctx:      ctx,
		identity: identity,
		checker:  validators.NewCredentialsValidator(),
		inputs:   fields,
	}
}

// Init implements [tea.Model].
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [RegisterResult]: on error shows it, on success resets the form and
//     navigates to the menu.
//   - esc: navigates back to the menu.
//   - tab, shift+tab: move focus between the inputs.
//   - enter: validates the inputs and dispatches the async register command.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.resetForm()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    pageMenu,
				Payload: RegisterSuccessNotice{Username: result.Username},
			}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			account := m.account()
			if err := m.checker.Validate(m.ctx, account); err != nil {
				m.errMsg = humanizeError(err)
				return m, nil
			}
			if account.Password != m.inputs[registerRepeat].Value() {
				m.errMsg = humanizeError(errPasswordMatch)
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(account)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Field            │ Value\n")
	b.WriteString("─────────────────┼────────────────────────────────────\n")
	for i, input := range m.inputs {
		b.WriteString(padRight(registerLabels[i], 16))
		b.WriteString(" │ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: create")
}

func (m *RegisterModel) account() models.UserAccount {
	return models.UserAccount{
		Username:  strings.TrimSpace(m.inputs[registerUsername].Value()),
		Email:     strings.TrimSpace(m.inputs[registerEmail].Value()),
		FirstName: strings.TrimSpace(m.inputs[registerFirstName].Value()),
		LastName:  strings.TrimSpace(m.inputs[registerLastName].Value()),
		Password:  m.inputs[registerPassword].Value(),
	}
}

func (m *RegisterModel) cmdRegister(account models.UserAccount) tea.Cmd {
	ctx := m.ctx
	identity := m.identity

	return func() tea.Msg {
		created, err := identity.Register(ctx, account)
		return RegisterResult{Err: err, Username: created.Username}
	}
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
