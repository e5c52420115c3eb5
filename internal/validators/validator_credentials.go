// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/invoice-entry/models"
)

const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldEmail    = "email"

	minUsernameLength = 3
	minPasswordLength = 6
)

// CredentialsValidator checks login and signup input. All failures of one
// call are joined into a single error.
type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.UserAccount:
		return v.validateAccount(ctx, value, fields...)
	case *models.UserAccount:
		return v.validateAccount(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	var errs []error
	for _, field := range fields {
		switch field {
		case FieldUsername:
			errs = append(errs, checkUsername(c.Username))
		case FieldPassword:
			errs = append(errs, checkPassword(c.Password))
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return errors.Join(errs...)
}

func (v *CredentialsValidator) validateAccount(_ context.Context, a models.UserAccount, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldEmail}
	}

	var errs []error
	for _, field := range fields {
		switch field {
		case FieldUsername:
			errs = append(errs, checkUsername(a.Username))
		case FieldPassword:
			errs = append(errs, checkPassword(a.Password))
		case FieldEmail:
			errs = append(errs, checkEmail(a.Email))
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return errors.Join(errs...)
}

func checkUsername(username string) error {
	if len(strings.TrimSpace(username)) < minUsernameLength {
		return ErrUsernameTooShort
	}
	return nil
}

func checkPassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

func checkEmail(email string) error {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrInvalidEmail
	}
	return nil
}
