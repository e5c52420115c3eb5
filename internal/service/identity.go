// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/invoice-entry/internal/config"
	"github.com/MKhiriev/invoice-entry/internal/crypto"
	"github.com/MKhiriev/invoice-entry/internal/logger"
	"github.com/MKhiriev/invoice-entry/internal/store"
	"github.com/MKhiriev/invoice-entry/internal/utils"
	"github.com/MKhiriev/invoice-entry/internal/validators"
	"github.com/MKhiriev/invoice-entry/models"
)

// Seed administrator created on first start.
const (
	SeedUsername = "admin"
	SeedPassword = "password"
)

// identityService is the concrete implementation of IdentityService.
// It keeps the user registry and the session in the persistence gateway and
// signs session tokens with HMAC-SHA256.
type identityService struct {
	gateway *store.Gateway
	hasher  crypto.PasswordHasher
	checker validators.Validator
	ids     *utils.UUIDGenerator
	now     func() time.Time

	// sessionTTL is how long a session stays active after login.
	sessionTTL time.Duration

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	tokenIssuer string

	// registryMu serializes read-modify-write cycles of the user registry.
	registryMu sync.Mutex

	logger *logger.Logger
}

// NewIdentityService constructs an IdentityService over gateway using the
// session and password settings from cfg.
func NewIdentityService(gateway *store.Gateway, cfg config.App, log *logger.Logger) IdentityService {
	return &identityService{
		gateway:      gateway,
		hasher:       crypto.NewPasswordHasher(cfg.HashPasswords),
		checker:      validators.NewCredentialsValidator(),
		ids:          utils.NewUUIDGenerator(),
		now:          time.Now,
		sessionTTL:   cfg.SessionTTL,
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       log,
	}
}

// Register stores a new account.
//
// Returns:
//   - ErrInvalidDataProvided if username, password or email fail the signup rules.
//   - ErrDuplicateUsername if the username is taken.
//   - ErrRegistrationFailed if the registry cannot be written.
func (s *identityService) Register(ctx context.Context, account models.UserAccount) (models.UserAccount, error) {
	log := logger.FromContextOr(ctx, s.logger)

	if err := s.checker.Validate(ctx, account); err != nil {
		return models.UserAccount{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	s.registryMu.Lock()
	defer s.registryMu.Unlock()

	users, ok := s.gateway.Users(ctx)
	if !ok || users == nil {
		users = models.UserRegistry{}
	}

	if _, exists := users[account.Username]; exists {
		return models.UserAccount{}, ErrDuplicateUsername
	}

	stored, err := s.hasher.Hash(account.Password)
	if err != nil {
		log.Err(err).Str("func", "*identityService.Register").Msg("error hashing password")
		return models.UserAccount{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	account.Password = stored
	account.CreatedAt = s.now().UTC()
	account.ID = s.ids.Generate()
	if account.Role == "" {
		account.Role = models.RoleUser
	}

	users[account.Username] = account
	if err := s.gateway.SaveUsers(ctx, users); err != nil {
		log.Err(err).Str("func", "*identityService.Register").Str("username", account.Username).Msg("error saving user registry")
		return models.UserAccount{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	log.Info().Str("func", "*identityService.Register").Str("username", account.Username).Msg("user registered")
	return account, nil
}

// Authenticate looks the user up and compares the password.
//
// Returns ErrUserNotFound or ErrInvalidPassword on failure.
func (s *identityService) Authenticate(ctx context.Context, username, password string) (models.UserAccount, error) {
	log := logger.FromContextOr(ctx, s.logger)

	users, _ := s.gateway.Users(ctx)
	account, ok := users[username]
	if !ok {
		return models.UserAccount{}, ErrUserNotFound
	}

	match, err := s.hasher.Verify(password, account.Password)
	if err != nil {
		log.Err(err).Str("func", "*identityService.Authenticate").Str("username", username).Msg("stored password is unreadable")
		return models.UserAccount{}, ErrInvalidPassword
	}
	if !match {
		return models.UserAccount{}, ErrInvalidPassword
	}

	return account, nil
}

// Login authenticates and stores a new session carrying a signed token.
func (s *identityService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	log := logger.FromContextOr(ctx, s.logger)

	if err := s.checker.Validate(ctx, credentials); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	account, err := s.Authenticate(ctx, credentials.Username, credentials.Password)
	if err != nil {
		return models.Session{}, err
	}

	loginTime := s.now().UTC()
	token, err := utils.GenerateSessionToken(s.tokenIssuer, account.Username, loginTime, s.sessionTTL, s.tokenSignKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	session := models.Session{
		Username:  account.Username,
		LoginTime: loginTime,
		Token:     token.String(),
	}
	if err := s.gateway.SaveSession(ctx, session); err != nil {
		log.Err(err).Str("func", "*identityService.Login").Str("username", account.Username).Msg("error saving session")
		return models.Session{}, fmt.Errorf("error saving session: %w", err)
	}

	log.Info().Str("func", "*identityService.Login").Str("username", account.Username).Msg("user logged in")
	return session, nil
}

// Logout removes the session and the form data left by the user.
func (s *identityService) Logout(ctx context.Context) error {
	err := errors.Join(
		s.gateway.RemoveSession(ctx),
		s.gateway.RemoveDraft(ctx),
		s.gateway.ClearPDFData(ctx),
	)
	if err != nil {
		logger.FromContextOr(ctx, s.logger).Err(err).Str("func", "*identityService.Logout").Msg("error clearing session data")
		return fmt.Errorf("error clearing session data: %w", err)
	}

	return nil
}

// IsActive checks the session age on read; there is no background expiry.
func (s *identityService) IsActive(ctx context.Context, session models.Session) bool {
	if session.Username == "" {
		return false
	}
	if s.now().Sub(session.LoginTime) < s.sessionTTL {
		return true
	}

	// a stale copy must not clear a newer login
	stored, ok := s.gateway.Session(ctx)
	if !ok || stored.Token != session.Token || stored.Username != session.Username {
		return false
	}
	if err := s.gateway.RemoveSession(ctx); err != nil {
		logger.FromContextOr(ctx, s.logger).Err(err).Str("func", "*identityService.IsActive").Msg("error removing expired session")
	}
	return false
}

func (s *identityService) CurrentSession(ctx context.Context) (models.Session, bool) {
	session, ok := s.gateway.Session(ctx)
	if !ok || !s.IsActive(ctx, session) {
		return models.Session{}, false
	}
	return session, true
}

// Authorize accepts only the token of the stored, still active session.
func (s *identityService) Authorize(ctx context.Context, token string) (models.Session, error) {
	session, ok := s.CurrentSession(ctx)
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}

	if subtle.ConstantTimeCompare([]byte(token), []byte(session.Token)) != 1 {
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	parsed, err := utils.ValidateSessionToken(token, s.tokenSignKey, s.tokenIssuer)
	if err != nil || parsed.Username != session.Username {
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	return session, nil
}

func (s *identityService) EnsureSeedAccount(ctx context.Context) error {
	_, err := s.Register(ctx, models.UserAccount{
		Username:  SeedUsername,
		Password:  SeedPassword,
		Email:     "admin@example.com",
		FirstName: "Admin",
		LastName:  "User",
		Role:      models.RoleAdmin,
	})
	if err != nil && !errors.Is(err, ErrDuplicateUsername) {
		return fmt.Errorf("error creating seed account: %w", err)
	}

	return nil
}
