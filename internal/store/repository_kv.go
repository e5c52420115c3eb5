// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/invoice-entry/internal/logger"
)

// sqlKeyValueStore is the SQL implementation of [KeyValueStore] on top of
// the kv_entries table. It serves both SQLite and PostgreSQL.
type sqlKeyValueStore struct {
	db      *DB
	queries kvQueries
	logger  *logger.Logger
	now     func() time.Time
}

// NewSQLKeyValueStore constructs a [KeyValueStore] backed by db. The schema
// must already be migrated.
func NewSQLKeyValueStore(db *DB, logger *logger.Logger) KeyValueStore {
	logger.Debug().Str("dialect", db.dialect).Msg("creating key/value repository")
	return &sqlKeyValueStore{
		db:      db,
		queries: newKVQueries(db.dialect),
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *sqlKeyValueStore) Get(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContextOr(ctx, s.logger)

	if key == "" {
		return nil, ErrEmptyKey
	}

	query, args, err := s.queries.get(key)
	if err != nil {
		log.Err(err).Str("func", "*sqlKeyValueStore.Get").Str("key", key).Msg("error building query")
		return nil, err
	}

	var value string
	err = withRetry(ctx, s.db.errorClassificator, func() error {
		return s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sqlKeyValueStore.Get").Str("key", key).Msg("error reading entry")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return []byte(value), nil
}

func (s *sqlKeyValueStore) Set(ctx context.Context, key string, value []byte) error {
	log := logger.FromContextOr(ctx, s.logger)

	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := s.queries.upsert(key, value, s.now())
	if err != nil {
		log.Err(err).Str("func", "*sqlKeyValueStore.Set").Str("key", key).Msg("error building query")
		return err
	}

	err = withRetry(ctx, s.db.errorClassificator, func() error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*sqlKeyValueStore.Set").Str("key", key).Msg("error writing entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlKeyValueStore) Remove(ctx context.Context, key string) error {
	log := logger.FromContextOr(ctx, s.logger)

	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := s.queries.remove(key)
	if err != nil {
		log.Err(err).Str("func", "*sqlKeyValueStore.Remove").Str("key", key).Msg("error building query")
		return err
	}

	err = withRetry(ctx, s.db.errorClassificator, func() error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*sqlKeyValueStore.Remove").Str("key", key).Msg("error removing entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlKeyValueStore) Close() error {
	return s.db.Close()
}
