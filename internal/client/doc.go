// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It restores or establishes the session, runs the invoice form together
// with the autosave worker, and loops back to the login flow on logout.
package client
