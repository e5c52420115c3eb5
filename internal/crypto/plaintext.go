// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "crypto/subtle"

// plaintextHasher stores passwords as they are.
type plaintextHasher struct{}

// NewPlaintextHasher returns a [PasswordHasher] that keeps passwords
// verbatim.
func NewPlaintextHasher() PasswordHasher {
	return plaintextHasher{}
}

func (plaintextHasher) Hash(password string) (string, error) {
	return password, nil
}

func (plaintextHasher) Verify(password, stored string) (bool, error) {
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1, nil
}
