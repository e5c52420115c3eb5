// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates the configuration of the
// invoice-entry client and server.
//
// Sources, in order of precedence (earlier sources win for non-zero
// fields):
//  1. Environment variables, including those loaded from a .env file
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetServerConfig] for the HTTP API and
// [GetClientConfig] for the terminal client.
package config
