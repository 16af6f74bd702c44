package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-storage/internal/config"
	"github.com/MKhiriev/go-secure-storage/internal/crypto"
	"github.com/MKhiriev/go-secure-storage/internal/keychain"
	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/MKhiriev/go-secure-storage/internal/metrics"
	"github.com/MKhiriev/go-secure-storage/internal/store"
)

// Services bundles the in-process item store and its maintenance hooks.
type Services struct {
	ItemStore ItemStore

	// KeySweeper is nil for the keychain variant, which owns no secret keys.
	KeySweeper KeySweeper

	// Storages is nil for the keychain variant.
	Storages *store.Storages
}

// NewServices builds the ItemStore selected by cfg.Storage.Backend: the OS
// keychain variant for "keychain", the cipher variant for everything else.
// When m is not nil every operation is instrumented.
func NewServices(ctx context.Context, cfg config.StructuredConfig, m *metrics.Metrics, log *logger.Logger) (*Services, error) {
	locks := NewKeyedMutex()

	var (
		services Services
		items    ItemStore
	)

	if cfg.Storage.Backend == config.StorageBackendKeychain {
		kc, err := keychain.NewSystemKeychain(cfg.App.ServiceName)
		if err != nil {
			log.Err(err).Str("func", "NewServices").Msg("os keychain is not available")
			return nil, MapError(err)
		}

		items, err = NewKeychainItemStore(kc, locks, log)
		if err != nil {
			return nil, err
		}
	} else {
		storages, err := store.NewStorages(ctx, cfg.Storage, log)
		if err != nil {
			return nil, MapError(err)
		}

		vault, err := crypto.NewKeyVault(cfg.SecretKeys, cfg.App.ServiceName, log)
		if err != nil {
			_ = storages.Close()
			return nil, MapError(err)
		}

		keys := crypto.NewSecretKeyManager(vault, log)
		items = NewCipherItemStore(keys, crypto.NewCipherCodec(), storages, locks, log)

		services.Storages = storages
		services.KeySweeper = NewKeySweeper(keys, storages, locks, m, log)
	}

	if m != nil {
		items = NewInstrumentedItemStore(m).Wrap(items)
	}
	services.ItemStore = items

	log.Info().Str("backend", cfg.Storage.Backend).Msg("item store ready")

	return &services, nil
}

// Close releases the keyed stores, if any.
func (s *Services) Close() error {
	if s.Storages == nil {
		return nil
	}
	if err := s.Storages.Close(); err != nil {
		return fmt.Errorf("close storages: %w", err)
	}
	return nil
}
