// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/invoice-entry/internal/logger"
	"github.com/MKhiriev/invoice-entry/internal/mock"
	"github.com/MKhiriev/invoice-entry/internal/service"
	"github.com/MKhiriev/invoice-entry/models"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// run executes cmd and returns its message, or nil for a nil command.
func run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func typeInto(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(keyRunes(string(r)))
	}
	return m
}

func TestNew_RequiresServices(t *testing.T) {
	ui, err := New(nil, models.AppBuildInfo{}, logger.Nop())

	assert.Nil(t, ui)
	assert.ErrorIs(t, err, errNoServices)

	ui, err = New(&service.Services{}, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", ui.buildInfo.BuildVersion())
}

// ─────────────────────────────────────────────
// menu and router
// ─────────────────────────────────────────────

func TestMenu_NavigatesToSelectedPage(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		wantPage string
	}{
		{"first item", []tea.KeyMsg{keyOf(tea.KeyEnter)}, pageLogin},
		{"second item", []tea.KeyMsg{keyOf(tea.KeyDown), keyOf(tea.KeyEnter)}, pageRegister},
		{"cursor stops at the end", []tea.KeyMsg{keyOf(tea.KeyDown), keyOf(tea.KeyDown), keyOf(tea.KeyEnter)}, pageRegister},
		{"cursor stops at the top", []tea.KeyMsg{keyOf(tea.KeyUp), keyOf(tea.KeyEnter)}, pageLogin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = NewMenuModel()
			var cmd tea.Cmd
			for _, k := range tt.keys {
				m, cmd = m.Update(k)
			}

			assert.Equal(t, NavigateTo{Page: tt.wantPage}, run(cmd))
		})
	}
}

func TestMenu_ShowsRegistrationNotice(t *testing.T) {
	m := NewMenuModel()

	m.Update(RegisterSuccessNotice{Username: "jane"})

	assert.Contains(t, m.View(), "Account jane created")
}

func TestRootModel_Routing(t *testing.T) {
	ctrl := gomock.NewController(t)
	identity := mock.NewMockIdentityService(ctrl)
	ctx := context.Background()

	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, identity),
		pageRegister: NewRegisterModel(ctx, identity),
	}
	root := NewRootModel(pages, pageMenu, models.NewAppBuildInfo("2.0.0", "2026-10-01", "abc123"))

	t.Run("build info overlay on the menu", func(t *testing.T) {
		updated, _ := root.Update(keyRunes("v"))
		view := updated.View()
		assert.Contains(t, view, "2.0.0")
		assert.Contains(t, view, "abc123")

		closed, _ := updated.Update(keyOf(tea.KeyEsc))
		assert.NotContains(t, closed.View(), "abc123")
	})

	t.Run("navigation switches page", func(t *testing.T) {
		updated, _ := root.Update(NavigateTo{Page: pageLogin})
		assert.Contains(t, updated.View(), "LOG IN")

		// "v" is plain text outside the menu
		typed, _ := updated.Update(keyRunes("v"))
		assert.NotContains(t, typed.View(), "ABOUT")
	})

	t.Run("unknown page is ignored", func(t *testing.T) {
		updated, _ := root.Update(NavigateTo{Page: "nope"})
		assert.Contains(t, updated.View(), "INVOICE ENTRY")
	})

	t.Run("successful login ends the flow", func(t *testing.T) {
		session := models.Session{Username: "jane", Token: "t"}
		updated, cmd := root.Update(LoginResult{Session: session})

		assert.Equal(t, tea.Quit(), run(cmd))
		assert.Equal(t, session, updated.(RootModel).session)
	})

	t.Run("ctrl+c quits", func(t *testing.T) {
		updated, cmd := root.Update(keyOf(tea.KeyCtrlC))

		assert.Equal(t, tea.Quit(), run(cmd))
		assert.True(t, updated.(RootModel).quitByUser)
	})
}

// ─────────────────────────────────────────────
// login and register
// ─────────────────────────────────────────────

func TestLogin_ValidatesBeforeCalling(t *testing.T) {
	ctrl := gomock.NewController(t)
	identity := mock.NewMockIdentityService(ctrl)

	m := NewLoginModel(context.Background(), identity)
	typeInto(m, "jo")
	m.Update(keyOf(tea.KeyTab))
	typeInto(m, "secret1")

	_, cmd := m.Update(keyOf(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Equal(t, "Username must be at least 3 characters", m.errMsg)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	identity := mock.NewMockIdentityService(ctrl)
	session := models.Session{Username: "jane", Token: "token"}
	identity.EXPECT().
		Login(gomock.Any(), models.Credentials{Username: "jane", Password: "secret1"}).
		Return(session, nil)

	m := NewLoginModel(context.Background(), identity)
	typeInto(m, " jane ")
	m.Update(keyOf(tea.KeyTab))
	typeInto(m, "secret1")

	_, cmd := m.Update(keyOf(tea.KeyEnter))
	require.True(t, m.submitting)

	assert.Equal(t, LoginResult{Session: session}, run(cmd))
}

func TestLogin_ShowsServiceError(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)
	m.submitting = true

	m.Update(LoginResult{Err: service.ErrInvalidPassword})

	assert.False(t, m.submitting)
	assert.Contains(t, m.View(), "Invalid username or password")
}

func fillRegister(m *RegisterModel, values ...string) {
	for i, v := range values {
		m.inputs[i].SetValue(v)
	}
}

func TestRegister_PasswordsMustMatch(t *testing.T) {
	m := NewRegisterModel(context.Background(), nil)
	fillRegister(m, "jane", "jane@example.com", "Jane", "Doe", "secret1", "secret2")

	_, cmd := m.Update(keyOf(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Equal(t, "Passwords do not match", m.errMsg)
}

func TestRegister_InvalidEmail(t *testing.T) {
	m := NewRegisterModel(context.Background(), nil)
	fillRegister(m, "jane", "not-an-email", "", "", "secret1", "secret1")

	_, cmd := m.Update(keyOf(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Equal(t, "Please enter a valid email address", m.errMsg)
}

func TestRegister_SuccessReturnsToMenu(t *testing.T) {
	ctrl := gomock.NewController(t)
	identity := mock.NewMockIdentityService(ctrl)
	identity.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, account models.UserAccount) (models.UserAccount, error) {
			assert.Equal(t, "jane", account.Username)
			assert.Equal(t, "Jane", account.FirstName)
			return account, nil
		})

	m := NewRegisterModel(context.Background(), identity)
	fillRegister(m, "jane", "jane@example.com", "Jane", "Doe", "secret1", "secret1")

	_, cmd := m.Update(keyOf(tea.KeyEnter))
	result := run(cmd)
	require.Equal(t, RegisterResult{Username: "jane"}, result)

	_, cmd = m.Update(result)
	assert.Equal(t, NavigateTo{Page: pageMenu, Payload: RegisterSuccessNotice{Username: "jane"}}, run(cmd))
	for _, input := range m.inputs {
		assert.Empty(t, input.Value(), "form is cleared after success")
	}
}
