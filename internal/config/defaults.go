// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

const (
	DefaultSessionTTL       = 24 * time.Hour
	DefaultTokenIssuer      = "invoice-entry"
	DefaultVersion          = "dev"
	DefaultLogLevel         = "info"
	DefaultLogFile          = "invoice-entry.log"
	DefaultDSN              = "invoice-entry.db"
	DefaultHTTPAddress      = "localhost:8080"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultExtractionDelay  = 2 * time.Second
	DefaultAdapterTimeout   = 10 * time.Second
	DefaultAutosaveInterval = 5 * time.Second
)

// defaultConfig returns the fallback values merged after every other
// source. The token sign key is random per process: session tokens are
// compared verbatim against the stored session, so they never need to be
// verified by another process.
func defaultConfig() (*StructuredConfig, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("error generating token sign key: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SessionTTL:   DefaultSessionTTL,
			TokenSignKey: hex.EncodeToString(key),
			TokenIssuer:  DefaultTokenIssuer,
			Version:      DefaultVersion,
			LogLevel:     DefaultLogLevel,
			LogFile:      DefaultLogFile,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			ExtractionDelay: DefaultExtractionDelay,
			RequestTimeout:  DefaultAdapterTimeout,
		},
		Workers: Workers{
			AutosaveInterval: DefaultAutosaveInterval,
		},
	}, nil
}
