// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal client screens with Bubble Tea.
//
// The login flow (menu, login, register) runs as one program routed by
// [RootModel]. Once a session is established the invoice form runs as a
// second program until the user logs out or quits.
package tui
