// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/MKhiriev/go-secure-storage/models"
)

// sqlStore is the relational [KeyedStore]. Both variants share the
// storage_entries table and are told apart by the variant column.
type sqlStore struct {
	db      *DB
	variant models.StoreVariant
	now     func() time.Time
}

// NewSQLStore returns the [KeyedStore] for variant on top of db. The schema
// must already be migrated.
func NewSQLStore(db *DB, variant models.StoreVariant) KeyedStore {
	return &sqlStore{
		db:      db,
		variant: variant,
		now:     time.Now,
	}
}

func (s *sqlStore) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := s.buildGetQuery(key)
	if err != nil {
		return "", false, s.fail(ctx, "*sqlStore.Get", "failed to create query", err)
	}

	var value string
	err = s.db.withRetry(ctx, "get", func() error {
		return s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, s.fail(ctx, "*sqlStore.Get", "failed to read entry", err)
	}

	return value, true, nil
}

func (s *sqlStore) Set(ctx context.Context, key, value string, access models.AccessPolicy) error {
	query, args, err := s.buildUpsertQuery(key, value, access, s.now().UTC())
	if err != nil {
		return s.fail(ctx, "*sqlStore.Set", "failed to create query", err)
	}

	err = s.db.withRetry(ctx, "set", func() error {
		_, err := s.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		return s.fail(ctx, "*sqlStore.Set", "failed to write entry", err)
	}

	return nil
}

func (s *sqlStore) Remove(ctx context.Context, key string) (bool, error) {
	query, args, err := s.buildDeleteQuery(key)
	if err != nil {
		return false, s.fail(ctx, "*sqlStore.Remove", "failed to create query", err)
	}

	var affected int64
	err = s.db.withRetry(ctx, "remove", func() error {
		result, err := s.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return false, s.fail(ctx, "*sqlStore.Remove", "failed to delete entry", err)
	}

	return affected > 0, nil
}

func (s *sqlStore) KeysWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	query, args, err := s.buildKeysQuery(prefix)
	if err != nil {
		return nil, s.fail(ctx, "*sqlStore.KeysWithPrefix", "failed to create query", err)
	}

	var keys []string
	err = s.db.withRetry(ctx, "keys", func() error {
		rows, err := s.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		keys = make([]string, 0)
		for rows.Next() {
			var key string
			if err = rows.Scan(&key); err != nil {
				return err
			}
			keys = append(keys, key)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, s.fail(ctx, "*sqlStore.KeysWithPrefix", "failed to list keys", err)
	}

	return keys, nil
}

func (s *sqlStore) ClearWithPrefix(ctx context.Context, prefix string) error {
	query, args, err := s.buildClearQuery(prefix)
	if err != nil {
		return s.fail(ctx, "*sqlStore.ClearWithPrefix", "failed to create query", err)
	}

	err = s.db.withRetry(ctx, "clear", func() error {
		_, err := s.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		return s.fail(ctx, "*sqlStore.ClearWithPrefix", "failed to delete entries", err)
	}

	return nil
}

// fail logs err with the store's variant and wraps it in ErrBackend.
func (s *sqlStore) fail(ctx context.Context, fn, msg string, err error) error {
	event := logger.FromContext(ctx).Err(err).
		Str("func", fn).
		Str("variant", s.variant.String())
	if code := postgresError(err); code != "" {
		event = event.Str("pg_code", code)
	}
	event.Msg(msg)

	return fmt.Errorf("%w: %w", ErrBackend, err)
}
