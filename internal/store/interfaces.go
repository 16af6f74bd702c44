package store

import (
	"context"

	"github.com/MKhiriev/go-secure-storage/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyedStore is a persistent map of namespaced keys to encoded ciphertext
// strings, scoped to one [models.StoreVariant]. It never interprets values.
//
// Set and Remove each commit as one transaction against the backing store.
// Every failure of the backing store is returned wrapped in [ErrBackend].
type KeyedStore interface {
	// Get returns the stored value and whether an entry exists for key.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set creates or replaces the entry for key. The access policy is kept
	// alongside the value; backends that cannot enforce it only record it.
	Set(ctx context.Context, key, value string, access models.AccessPolicy) error
	// Remove deletes the entry for key and reports whether it existed.
	Remove(ctx context.Context, key string) (bool, error)
	// KeysWithPrefix lists every key starting with prefix, in ascending order.
	KeysWithPrefix(ctx context.Context, prefix string) ([]string, error)
	// ClearWithPrefix deletes every entry whose key starts with prefix.
	ClearWithPrefix(ctx context.Context, prefix string) error
}

// GarbageCollector is implemented by backends that need periodic compaction.
type GarbageCollector interface {
	// CollectGarbage reclaims space; it returns nil when there was nothing to do.
	CollectGarbage(ctx context.Context) error
}

// ErrorClassificator decides whether a failed database operation is worth
// repeating.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
