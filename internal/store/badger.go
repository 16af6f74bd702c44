// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/MKhiriev/go-secure-storage/models"
	"github.com/dgraph-io/badger/v4"
)

// gcDiscardRatio is the share of stale data a value log file must carry
// before badger rewrites it.
const gcDiscardRatio = 0.5

// badgerStore is the default [KeyedStore]: an embedded badger database in
// its own directory. The entry's access policy travels as badger UserMeta.
type badgerStore struct {
	db     *badger.DB
	dir    string
	logger *logger.Logger
}

// NewBadgerStore opens (or creates) a badger database in dir.
func NewBadgerStore(dir string, log *logger.Logger) (*badgerStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		log.Err(err).Str("func", "NewBadgerStore").Str("dir", dir).Msg("error creating data directory")
		return nil, fmt.Errorf("%w: creating data directory: %w", ErrBackend, err)
	}

	opts := badger.DefaultOptions(dir).
		WithLogger(badgerLogger{log}).
		WithValueLogFileSize(64 << 20)

	db, err := badger.Open(opts)
	if err != nil {
		log.Err(err).Str("func", "NewBadgerStore").Str("dir", dir).Msg("error opening badger database")
		return nil, fmt.Errorf("%w: opening badger: %w", ErrBackend, err)
	}
	log.Debug().Str("func", "NewBadgerStore").Str("dir", dir).Msg("badger database opened")

	return &badgerStore{db: db, dir: dir, logger: log}, nil
}

func (b *badgerStore) Get(ctx context.Context, key string) (string, bool, error) {
	var (
		value []byte
		found bool
	)

	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		found = true
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*badgerStore.Get").Msg("error reading entry")
		return "", false, fmt.Errorf("%w: %w", ErrBackend, err)
	}

	return string(value), found, nil
}

func (b *badgerStore) Set(ctx context.Context, key, value string, access models.AccessPolicy) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), []byte(value)).WithMeta(byte(access))
		return txn.SetEntry(entry)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*badgerStore.Set").Msg("error writing entry")
		return fmt.Errorf("%w: %w", ErrBackend, err)
	}

	return nil
}

func (b *badgerStore) Remove(ctx context.Context, key string) (bool, error) {
	var existed bool

	err := b.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		existed = true
		return txn.Delete([]byte(key))
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*badgerStore.Remove").Msg("error deleting entry")
		return false, fmt.Errorf("%w: %w", ErrBackend, err)
	}

	return existed, nil
}

func (b *badgerStore) KeysWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	keys := make([]string, 0)

	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(prefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*badgerStore.KeysWithPrefix").Msg("error iterating keys")
		return nil, fmt.Errorf("%w: %w", ErrBackend, err)
	}

	return keys, nil
}

func (b *badgerStore) ClearWithPrefix(ctx context.Context, prefix string) error {
	var err error
	if prefix == "" {
		err = b.db.DropAll()
	} else {
		err = b.db.DropPrefix([]byte(prefix))
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*badgerStore.ClearWithPrefix").Msg("error dropping prefix")
		return fmt.Errorf("%w: %w", ErrBackend, err)
	}

	return nil
}

// CollectGarbage rewrites value log files until badger reports there is
// nothing left worth rewriting.
func (b *badgerStore) CollectGarbage(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := b.db.RunValueLogGC(gcDiscardRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrRejected) {
			return nil
		}
		if err != nil {
			b.logger.Err(err).Str("func", "*badgerStore.CollectGarbage").Str("dir", b.dir).Msg("value log GC failed")
			return fmt.Errorf("%w: value log gc: %w", ErrBackend, err)
		}
	}
}

func (b *badgerStore) Close() error {
	return b.db.Close()
}

// badgerLogger routes badger's internal logging into zerolog. Info and
// debug chatter is demoted to debug level.
type badgerLogger struct {
	log *logger.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Str("component", "badger").Msgf(format, args...)
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn().Str("component", "badger").Msgf(format, args...)
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Debug().Str("component", "badger").Msgf(format, args...)
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug().Str("component", "badger").Msgf(format, args...)
}
