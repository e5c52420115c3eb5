// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Roles assigned to accounts.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// UserAccount is a locally registered user. Username is the unique key of
// the user registry.
//
// Password holds whatever the configured password hasher produced: the
// plaintext password by default, or an encoded argon2id hash when hashing is
// enabled.
type UserAccount struct {
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
}

// UserRegistry is the persisted set of accounts keyed by username.
type UserRegistry map[string]UserAccount

// Credentials is the login form input.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session is the authenticated state of the local user. Token is opaque to
// every consumer except the identity service that issued it.
type Session struct {
	Username  string    `json:"username"`
	LoginTime time.Time `json:"loginTime"`
	Token     string    `json:"token"`
}
