// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "kv_entries"
	kvKeyColumn   = "entry_key"
	kvValueColumn = "entry_value"
	kvTimeColumn  = "updated_at"

	upsertEntrySuffix = "ON CONFLICT (entry_key) DO UPDATE SET entry_value = EXCLUDED.entry_value, updated_at = EXCLUDED.updated_at"
)

// kvQueries builds the key/value statements for one SQL dialect.
type kvQueries struct {
	builder sq.StatementBuilderType
}

func newKVQueries(dialect string) kvQueries {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == DialectPostgres {
		placeholder = sq.Dollar
	}

	return kvQueries{builder: sq.StatementBuilder.PlaceholderFormat(placeholder)}
}

func (q kvQueries) get(key string) (string, []any, error) {
	query, args, err := q.builder.
		Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (q kvQueries) upsert(key string, value []byte, now time.Time) (string, []any, error) {
	query, args, err := q.builder.
		Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn, kvTimeColumn).
		Values(key, string(value), now).
		Suffix(upsertEntrySuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (q kvQueries) remove(key string) (string, []any, error) {
	query, args, err := q.builder.
		Delete(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
