package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/MKhiriev/go-secure-storage/internal/config"
	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/MKhiriev/go-secure-storage/models"
)

const sqliteFileName = "storage.db"

// Storages holds the two [KeyedStore] instances of a device, one per
// [models.StoreVariant], together with the resources backing them.
type Storages struct {
	Local          KeyedStore
	Synchronizable KeyedStore

	closers    []io.Closer
	collectors []GarbageCollector
}

// NewStorages opens both variants of the backend named in cfg.Backend.
//
// badger keeps one database directory per variant under cfg.DataDir.
// sqlite and postgres share one migrated table. memory keeps nothing on disk.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("backend", cfg.Backend).Msg("creating new storages...")

	switch cfg.Backend {
	case config.StorageBackendBadger:
		return newBadgerStorages(cfg.DataDir, log)
	case config.StorageBackendSQLite:
		path := cfg.DB.DSN
		if path == "" {
			path = filepath.Join(cfg.DataDir, sqliteFileName)
		}
		db, err := NewConnectSQLite(ctx, path, log)
		if err != nil {
			return nil, fmt.Errorf("%w: sqlite connection error: %w", ErrBackend, err)
		}
		return newSQLStorages(db)
	case config.StorageBackendPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("%w: postgres connection error: %w", ErrBackend, err)
		}
		return newSQLStorages(db)
	case config.StorageBackendMemory:
		local, synchronizable := NewMemoryStore(), NewMemoryStore()
		return &Storages{
			Local:          local,
			Synchronizable: synchronizable,
			closers:        []io.Closer{local.(io.Closer), synchronizable.(io.Closer)},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// NewStoragesFrom pairs two already constructed stores.
func NewStoragesFrom(local, synchronizable KeyedStore) *Storages {
	return &Storages{Local: local, Synchronizable: synchronizable}
}

func newBadgerStorages(dataDir string, log *logger.Logger) (*Storages, error) {
	local, err := NewBadgerStore(filepath.Join(dataDir, models.VariantLocal.String()), log)
	if err != nil {
		return nil, err
	}

	synchronizable, err := NewBadgerStore(filepath.Join(dataDir, models.VariantSynchronizable.String()), log)
	if err != nil {
		_ = local.Close()
		return nil, err
	}

	return &Storages{
		Local:          local,
		Synchronizable: synchronizable,
		closers:        []io.Closer{local, synchronizable},
		collectors:     []GarbageCollector{local, synchronizable},
	}, nil
}

func newSQLStorages(db *DB) (*Storages, error) {
	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: migration failed: %w", ErrBackend, err)
	}

	return &Storages{
		Local:          NewSQLStore(db, models.VariantLocal),
		Synchronizable: NewSQLStore(db, models.VariantSynchronizable),
		closers:        []io.Closer{db},
	}, nil
}

// Variant returns the store bound to v.
func (s *Storages) Variant(v models.StoreVariant) KeyedStore {
	if v.Synchronizable() {
		return s.Synchronizable
	}
	return s.Local
}

// GarbageCollectors lists the stores that need periodic compaction.
func (s *Storages) GarbageCollectors() []GarbageCollector {
	return s.collectors
}

// Close releases every underlying database handle.
func (s *Storages) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
