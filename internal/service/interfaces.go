// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-secure-storage/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ItemStore is the storage RPC surface. It is implemented in-process by the
// cipher and keychain variants and remotely by the adapters.
//
// Every error returned by an ItemStore is an *app.StorageError.
type ItemStore interface {
	SetItem(ctx context.Context, request models.SetItemRequest) error
	GetItem(ctx context.Context, request models.GetItemRequest) (models.GetItemResponse, error)
	RemoveItem(ctx context.Context, request models.RemoveItemRequest) (models.RemoveItemResponse, error)
	ClearItemsWithPrefix(ctx context.Context, request models.ClearItemsRequest) error
	GetPrefixedKeys(ctx context.Context, request models.PrefixedKeysRequest) (models.PrefixedKeysResponse, error)
	SetSynchronizeKeychain(ctx context.Context, request models.SynchronizeRequest) error
}

// ItemStoreWrapper defines middleware composition for ItemStore.
// Implementations wrap an existing ItemStore to add behavior such as
// validation, error mapping or instrumentation.
type ItemStoreWrapper interface {
	Wrap(ItemStore) ItemStore // returns a decorated ItemStore applying additional behavior
}

// KeySweeper deletes secret keys that no longer protect any entry.
type KeySweeper interface {
	// Sweep returns the number of deleted keys.
	Sweep(ctx context.Context) (int, error)
}

// KeyLocker serializes work on a single namespaced key.
type KeyLocker interface {
	// Lock blocks until key is free and returns the function releasing it.
	Lock(key string) (unlock func())
}
