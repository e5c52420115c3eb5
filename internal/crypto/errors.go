// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrMalformedHash is returned when a stored value is not an encoded
	// argon2id hash.
	ErrMalformedHash = errors.New("malformed password hash")
	// ErrIncompatibleVersion is returned for hashes produced by another
	// argon2 version.
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)
