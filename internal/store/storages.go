// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/invoice-entry/internal/config"
	"github.com/MKhiriev/invoice-entry/internal/logger"
)

// Backend names selected by [BackendFromDSN].
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Storages groups the persistence layer: the raw backend and the typed
// gateway over it.
type Storages struct {
	KeyValueStore KeyValueStore
	Gateway       *Gateway
}

// NewStorages opens the backend selected by cfg.DB.DSN, runs migrations for
// SQL backends and wraps the result in a [Gateway].
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	kv, err := NewKeyValueStore(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		KeyValueStore: kv,
		Gateway:       NewGateway(kv, log),
	}, nil
}

// NewKeyValueStore opens the backend for cfg.DSN.
func NewKeyValueStore(ctx context.Context, cfg config.DB, log *logger.Logger) (KeyValueStore, error) {
	var (
		db  *DB
		err error
	)

	switch BackendFromDSN(cfg.DSN) {
	case BackendMemory:
		log.Warn().Str("func", "NewKeyValueStore").Msg("using in-memory storage, state is lost on exit")
		return NewMemoryKeyValueStore(), nil
	case BackendPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
	default:
		db, err = NewConnectSQLite(ctx, cfg, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLKeyValueStore(db, log), nil
}

// BackendFromDSN picks the persistence backend for a DSN.
func BackendFromDSN(dsn string) string {
	switch {
	case dsn == "", dsn == "memory", dsn == ":memory:":
		return BackendMemory
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return BackendPostgres
	default:
		return BackendSQLite
	}
}

// Close releases the backend.
func (s *Storages) Close() error {
	return s.KeyValueStore.Close()
}
