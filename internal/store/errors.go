package store

import "errors"

var (
	// ErrBackend wraps every failure reported by a backing store (I/O,
	// driver, constraint, corruption). Callers match it with [errors.Is].
	ErrBackend = errors.New("store backend failure")

	// ErrUnknownBackend is returned by [NewStorages] for an unsupported
	// storage backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrStoreClosed is returned by the memory backend after Close.
	ErrStoreClosed = errors.New("store is closed")
)
