// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the local JSON API of the invoice entry app.
//
// It wires chi routes for accounts, the invoice form and attachment blobs.
// Request tracing, access logging, response compression and bearer-token
// authentication are handled here before requests reach the service layer.
package http
