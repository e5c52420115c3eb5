// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/invoice-entry/internal/config"
	"github.com/MKhiriev/invoice-entry/internal/logger"
	"github.com/MKhiriev/invoice-entry/internal/store"
	"github.com/MKhiriev/invoice-entry/internal/validators"
	"github.com/MKhiriev/invoice-entry/models"
)

func testAppConfig() config.App {
	return config.App{
		SessionTTL:   24 * time.Hour,
		TokenSignKey: "test-sign-key",
		TokenIssuer:  "invoice-entry-test",
		Version:      "1.0.0",
	}
}

func newTestIdentity(t *testing.T, cfg config.App) (*identityService, *store.Gateway) {
	t.Helper()

	gateway := store.NewGateway(store.NewMemoryKeyValueStore(), logger.Nop())
	svc := NewIdentityService(gateway, cfg, logger.Nop()).(*identityService)
	return svc, gateway
}

func newAccount(username string) models.UserAccount {
	return models.UserAccount{
		Username:  username,
		Password:  "secret1",
		Email:     username + "@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
	}
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	svc, gateway := newTestIdentity(t, testAppConfig())
	ctx := context.Background()

	account, err := svc.Register(ctx, newAccount("jane"))
	require.NoError(t, err)

	assert.Equal(t, "jane", account.Username)
	assert.Equal(t, models.RoleUser, account.Role)
	assert.NotEmpty(t, account.ID)
	assert.False(t, account.CreatedAt.IsZero())

	users, ok := gateway.Users(ctx)
	require.True(t, ok)
	require.Contains(t, users, "jane")
	assert.Equal(t, "secret1", users["jane"].Password, "passwords are stored as typed unless hashing is enabled")
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, gateway := newTestIdentity(t, testAppConfig())
	ctx := context.Background()

	first, err := svc.Register(ctx, newAccount("jane"))
	require.NoError(t, err)

	second := newAccount("jane")
	second.Email = "other@example.com"
	_, err = svc.Register(ctx, second)

	assert.ErrorIs(t, err, ErrDuplicateUsername)
	users, _ := gateway.Users(ctx)
	assert.Len(t, users, 1)
	assert.Equal(t, first.Email, users["jane"].Email, "the existing account is unchanged")
}

func TestRegister_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(a *models.UserAccount)
		wantErr error
	}{
		{"short username", func(a *models.UserAccount) { a.Username = "jo" }, validators.ErrUsernameTooShort},
		{"short password", func(a *models.UserAccount) { a.Password = "12345" }, validators.ErrPasswordTooShort},
		{"bad email", func(a *models.UserAccount) { a.Email = "jane.example.com" }, validators.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, gateway := newTestIdentity(t, testAppConfig())
			account := newAccount("jane")
			tt.mutate(&account)

			_, err := svc.Register(context.Background(), account)

			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
			_, ok := gateway.Users(context.Background())
			assert.False(t, ok)
		})
	}
}

func TestRegister_HashedPasswords(t *testing.T) {
	cfg := testAppConfig()
	cfg.HashPasswords = true
	svc, gateway := newTestIdentity(t, cfg)
	ctx := context.Background()

	_, err := svc.Register(ctx, newAccount("jane"))
	require.NoError(t, err)

	users, _ := gateway.Users(ctx)
	assert.True(t, strings.HasPrefix(users["jane"].Password, "$argon2id$"))

	_, err = svc.Authenticate(ctx, "jane", "secret1")
	assert.NoError(t, err)
	_, err = svc.Authenticate(ctx, "jane", "secret2")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

// ── Authenticate / Login ─────────────────────────────────────────────────────

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestIdentity(t, testAppConfig())
	ctx := context.Background()
	_, err := svc.Register(ctx, newAccount("jane"))
	require.NoError(t, err)

	account, err := svc.Authenticate(ctx, "jane", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "jane", account.Username)

	_, err = svc.Authenticate(ctx, "nobody", "secret1")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Authenticate(ctx, "jane", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestLogin_StoresSession(t *testing.T) {
	svc, gateway := newTestIdentity(t, testAppConfig())
	ctx := context.Background()
	loginTime := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return loginTime }
	_, err := svc.Register(ctx, newAccount("jane"))
	require.NoError(t, err)

	session, err := svc.Login(ctx, models.Credentials{Username: "jane", Password: "secret1"})
	require.NoError(t, err)

	assert.Equal(t, "jane", session.Username)
	assert.Equal(t, loginTime, session.LoginTime)
	assert.NotEmpty(t, session.Token)

	stored, ok := gateway.Session(ctx)
	require.True(t, ok)
	assert.Equal(t, session, stored)
}

func TestLogin_Failures(t *testing.T) {
	svc, gateway := newTestIdentity(t, testAppConfig())
	ctx := context.Background()
	_, err := svc.Register(ctx, newAccount("jane"))
	require.NoError(t, err)

	_, err = svc.Login(ctx, models.Credentials{Username: "jane", Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(ctx, models.Credentials{Username: "jane", Password: "secret2"})
	assert.ErrorIs(t, err, ErrInvalidPassword)

	_, err = svc.Login(ctx, models.Credentials{Username: "nobody", Password: "secret1"})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, ok := gateway.Session(ctx)
	assert.False(t, ok, "failed logins never create a session")
}

func TestRegister_NullRegistry(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKeyValueStore()
	require.NoError(t, kv.Set(ctx, store.KeyUsers, []byte("null")))
	gateway := store.NewGateway(kv, logger.Nop())
	svc := NewIdentityService(gateway, testAppConfig(), logger.Nop())

	require.NotPanics(t, func() {
		require.NoError(t, svc.EnsureSeedAccount(ctx))
	})

	_, err := svc.Register(ctx, newAccount("jane"))
	require.NoError(t, err)

	users, ok := gateway.Users(ctx)
	require.True(t, ok)
	assert.Contains(t, users, SeedUsername)
	assert.Contains(t, users, "jane")
}

// ── session lifetime ─────────────────────────────────────────────────────────

func TestIsActive_ExpiredSessionIsRemoved(t *testing.T) {
	svc, gateway := newTestIdentity(t, testAppConfig())
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	expired := models.Session{Username: "jane", LoginTime: now.Add(-25 * time.Hour), Token: "t"}
	require.NoError(t, gateway.SaveSession(ctx, expired))

	assert.False(t, svc.IsActive(ctx, expired))
	_, ok := gateway.Session(ctx)
	assert.False(t, ok)

	_, ok = svc.CurrentSession(ctx)
	assert.False(t, ok)
}

func TestIsActive_StaleCopyKeepsStoredSession(t *testing.T) {
	svc, gateway := newTestIdentity(t, testAppConfig())
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	stale := models.Session{Username: "jane", LoginTime: now.Add(-25 * time.Hour), Token: "old"}
	current := models.Session{Username: "jane", LoginTime: now.Add(-time.Hour), Token: "new"}
	require.NoError(t, gateway.SaveSession(ctx, current))

	assert.False(t, svc.IsActive(ctx, stale))

	stored, ok := gateway.Session(ctx)
	require.True(t, ok)
	assert.Equal(t, "new", stored.Token)
}

func TestIsActive_FreshSession(t *testing.T) {
	svc, gateway := newTestIdentity(t, testAppConfig())
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	fresh := models.Session{Username: "jane", LoginTime: now.Add(-23 * time.Hour), Token: "t"}
	require.NoError(t, gateway.SaveSession(ctx, fresh))

	assert.True(t, svc.IsActive(ctx, fresh))
	current, ok := svc.CurrentSession(ctx)
	require.True(t, ok)
	assert.Equal(t, fresh, current)

	assert.False(t, svc.IsActive(ctx, models.Session{}), "a session without a user is never active")
}

func TestLogout_ClearsSessionAndFormData(t *testing.T) {
	svc, gateway := newTestIdentity(t, testAppConfig())
	ctx := context.Background()
	_, err := svc.Register(ctx, newAccount("jane"))
	require.NoError(t, err)
	_, err = svc.Login(ctx, models.Credentials{Username: "jane", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, gateway.SaveDraft(ctx, models.InvoiceRecord{Vendor: "Acme"}))
	require.NoError(t, gateway.SaveAttachment(ctx, models.PdfAttachment{FileName: "a.pdf"}))
	require.NoError(t, gateway.AppendSubmission(ctx, models.SubmissionRecord{ID: "1"}))

	require.NoError(t, svc.Logout(ctx))

	_, ok := gateway.Session(ctx)
	assert.False(t, ok)
	_, ok = gateway.Draft(ctx)
	assert.False(t, ok)
	_, ok = gateway.Attachment(ctx)
	assert.False(t, ok)

	users, _ := gateway.Users(ctx)
	assert.Contains(t, users, "jane", "accounts survive a logout")
	assert.Len(t, gateway.Submissions(ctx), 1, "the submission log survives a logout")
}

// ── Authorize ────────────────────────────────────────────────────────────────

func TestAuthorize(t *testing.T) {
	svc, _ := newTestIdentity(t, testAppConfig())
	ctx := context.Background()
	_, err := svc.Register(ctx, newAccount("jane"))
	require.NoError(t, err)

	_, err = svc.Authorize(ctx, "anything")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	session, err := svc.Login(ctx, models.Credentials{Username: "jane", Password: "secret1"})
	require.NoError(t, err)

	authorized, err := svc.Authorize(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, "jane", authorized.Username)

	_, err = svc.Authorize(ctx, session.Token+"x")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthorize_RejectsTokensOfAnotherKey(t *testing.T) {
	svc, gateway := newTestIdentity(t, testAppConfig())
	ctx := context.Background()
	_, err := svc.Register(ctx, newAccount("jane"))
	require.NoError(t, err)
	session, err := svc.Login(ctx, models.Credentials{Username: "jane", Password: "secret1"})
	require.NoError(t, err)

	// a restarted process with a new key sees the stored session but cannot
	// verify its token
	cfg := testAppConfig()
	cfg.TokenSignKey = "another-key"
	restarted := NewIdentityService(gateway, cfg, logger.Nop())

	_, err = restarted.Authorize(ctx, session.Token)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthorize_AfterLogout(t *testing.T) {
	svc, _ := newTestIdentity(t, testAppConfig())
	ctx := context.Background()
	_, err := svc.Register(ctx, newAccount("jane"))
	require.NoError(t, err)
	session, err := svc.Login(ctx, models.Credentials{Username: "jane", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	_, err = svc.Authorize(ctx, session.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

// ── seed account ─────────────────────────────────────────────────────────────

func TestEnsureSeedAccount_Idempotent(t *testing.T) {
	svc, gateway := newTestIdentity(t, testAppConfig())
	ctx := context.Background()

	require.NoError(t, svc.EnsureSeedAccount(ctx))
	users, _ := gateway.Users(ctx)
	seed := users[SeedUsername]
	assert.Equal(t, models.RoleAdmin, seed.Role)

	require.NoError(t, svc.EnsureSeedAccount(ctx))
	users, _ = gateway.Users(ctx)
	assert.Len(t, users, 1)
	assert.Equal(t, seed.ID, users[SeedUsername].ID)

	_, err := svc.Login(ctx, models.Credentials{Username: SeedUsername, Password: SeedPassword})
	assert.NoError(t, err)
}
