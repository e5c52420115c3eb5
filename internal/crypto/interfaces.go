// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto turns account passwords into their stored form and checks
// login attempts against it.
package crypto

// PasswordHasher converts a password into the value kept in the user
// registry and verifies candidates against that value.
type PasswordHasher interface {
	// Hash returns the stored form of password.
	Hash(password string) (string, error)

	// Verify reports whether password matches stored. A malformed stored
	// value is reported as an error, a plain mismatch is not.
	Verify(password, stored string) (bool, error)
}

// NewPasswordHasher returns the argon2id hasher when hashing is enabled and
// the plaintext hasher otherwise.
func NewPasswordHasher(hashPasswords bool) PasswordHasher {
	if hashPasswords {
		return NewArgon2Hasher()
	}
	return NewPlaintextHasher()
}
