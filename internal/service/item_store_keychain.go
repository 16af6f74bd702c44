package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/MKhiriev/go-secure-storage/internal/keychain"
	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/MKhiriev/go-secure-storage/internal/validators"
	"github.com/MKhiriev/go-secure-storage/models"
)

// keychainItemStore keeps payloads as OS keychain items. The OS encrypts
// them; no application cipher and no secret keys are involved.
type keychainItemStore struct {
	keychain keychain.Keychain
	locks    KeyLocker
	logger   *logger.Logger

	// defaultSync applies to requests that carry no sync flag.
	defaultSync atomic.Bool
}

// NewKeychainItemStore builds the OS-keychain ItemStore. Like the cipher
// variant it validates requests and maps every error to an *app.StorageError.
func NewKeychainItemStore(kc keychain.Keychain, locks KeyLocker, log *logger.Logger) (ItemStore, error) {
	if kc == nil {
		return nil, ErrNoKeychain
	}

	core := &keychainItemStore{keychain: kc, locks: locks, logger: log}

	return wrapItemStore(core,
		NewValidationItemStore(validators.NewStorageRequestValidator()),
		NewErrorMappingItemStore(),
	), nil
}

func (s *keychainItemStore) SetItem(ctx context.Context, request models.SetItemRequest) error {
	unlock := s.locks.Lock(request.PrefixedKey)
	defer unlock()

	if err := s.keychain.Set(ctx, request.PrefixedKey, *request.Data, s.sync(request.Sync), request.Access); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "keychainItemStore.SetItem").Msg("error writing keychain item")
		return fmt.Errorf("write keychain item: %w", err)
	}
	return nil
}

func (s *keychainItemStore) GetItem(ctx context.Context, request models.GetItemRequest) (models.GetItemResponse, error) {
	unlock := s.locks.Lock(request.PrefixedKey)
	defer unlock()

	value, found, err := s.keychain.Get(ctx, request.PrefixedKey, s.sync(request.Sync))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "keychainItemStore.GetItem").Msg("error reading keychain item")
		return models.GetItemResponse{}, fmt.Errorf("read keychain item: %w", err)
	}
	if !found {
		return models.GetItemResponse{}, nil
	}

	return models.GetItemResponse{Data: models.StringPtr(value)}, nil
}

func (s *keychainItemStore) RemoveItem(ctx context.Context, request models.RemoveItemRequest) (models.RemoveItemResponse, error) {
	unlock := s.locks.Lock(request.PrefixedKey)
	defer unlock()

	existed, err := s.keychain.Delete(ctx, request.PrefixedKey, s.sync(request.Sync))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "keychainItemStore.RemoveItem").Msg("error deleting keychain item")
		return models.RemoveItemResponse{}, fmt.Errorf("delete keychain item: %w", err)
	}

	return models.RemoveItemResponse{Success: existed}, nil
}

// ClearItemsWithPrefix deletes matching items one by one. Items deleted
// before a failure stay deleted.
func (s *keychainItemStore) ClearItemsWithPrefix(ctx context.Context, request models.ClearItemsRequest) error {
	sync := s.sync(request.Sync)
	accounts, err := s.accountsWithPrefix(ctx, request.Prefix, sync)
	if err != nil {
		return err
	}

	for _, account := range accounts {
		if _, err = s.keychain.Delete(ctx, account, sync); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "keychainItemStore.ClearItemsWithPrefix").Msg("error deleting keychain item")
			return fmt.Errorf("delete keychain item: %w", err)
		}
	}

	return nil
}

func (s *keychainItemStore) GetPrefixedKeys(ctx context.Context, request models.PrefixedKeysRequest) (models.PrefixedKeysResponse, error) {
	accounts, err := s.accountsWithPrefix(ctx, request.Prefix, s.sync(request.Sync))
	if err != nil {
		return models.PrefixedKeysResponse{}, err
	}

	return models.PrefixedKeysResponse{Keys: accounts}, nil
}

// SetSynchronizeKeychain sets the synchronizable mode used by requests that
// omit their sync flag.
func (s *keychainItemStore) SetSynchronizeKeychain(ctx context.Context, request models.SynchronizeRequest) error {
	s.defaultSync.Store(request.Sync)
	logger.FromContext(ctx).Debug().Bool("sync", request.Sync).Msg("keychain synchronize flag set")
	return nil
}

func (s *keychainItemStore) sync(flag *bool) bool {
	return models.SyncOr(flag, s.defaultSync.Load())
}

func (s *keychainItemStore) accountsWithPrefix(ctx context.Context, prefix string, sync bool) ([]string, error) {
	accounts, err := s.keychain.Accounts(ctx, sync)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "keychainItemStore.accountsWithPrefix").Msg("error listing keychain items")
		return nil, fmt.Errorf("list keychain items: %w", err)
	}

	matched := make([]string, 0, len(accounts))
	for _, account := range accounts {
		if strings.HasPrefix(account, prefix) {
			matched = append(matched, account)
		}
	}
	sort.Strings(matched)

	return matched, nil
}
