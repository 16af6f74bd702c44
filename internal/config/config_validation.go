// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}
	if err := cfg.Storage.validate(); err != nil {
		return err
	}
	if err := cfg.SecretKeys.validate(cfg.Storage.Backend); err != nil {
		return err
	}
	if err := cfg.Server.validate(); err != nil {
		return err
	}
	if err := cfg.Adapter.validate(); err != nil {
		return err
	}

	if cfg.Workers.GCInterval <= 0 || cfg.Workers.KeySweepInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (a App) validate() error {
	if a.ServiceName == "" {
		return fmt.Errorf("%w: empty service name", ErrInvalidAppConfigs)
	}
	if !a.DefaultAccess.Valid() {
		return fmt.Errorf("%w: unknown default access %d", ErrInvalidAppConfigs, a.DefaultAccess)
	}
	if a.TokenSignKey != "" && a.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	return nil
}

func (s Storage) validate() error {
	switch s.Backend {
	case StorageBackendBadger:
		if s.DataDir == "" {
			return fmt.Errorf("%w: badger needs a data dir", ErrInvalidStorageConfigs)
		}
	case StorageBackendSQLite:
		if s.DB.DSN == "" && s.DataDir == "" {
			return fmt.Errorf("%w: sqlite needs a DSN or a data dir", ErrInvalidStorageConfigs)
		}
	case StorageBackendPostgres:
		if s.DB.DSN == "" {
			return fmt.Errorf("%w: postgres needs a DSN", ErrInvalidStorageConfigs)
		}
	case StorageBackendMemory, StorageBackendKeychain:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, s.Backend)
	}
	return nil
}

func (k SecretKeys) validate(storageBackend string) error {
	// the keychain item store keeps values in the OS keychain and needs no
	// separate secret key vault
	if storageBackend == StorageBackendKeychain {
		return nil
	}

	switch k.Backend {
	case SecretKeysBackendKeyring:
		if k.Passphrase == "" && slices.Contains(k.KeyringBackends, KeyringFileBackend) {
			return fmt.Errorf("%w: keyring file backend needs a passphrase", ErrInvalidSecretKeysConfigs)
		}
	case SecretKeysBackendMemory:
	case SecretKeysBackendSealed:
		if k.Dir == "" || k.Passphrase == "" {
			return fmt.Errorf("%w: sealed vault needs a dir and a passphrase", ErrInvalidSecretKeysConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidSecretKeysConfigs, k.Backend)
	}
	return nil
}

func (s Server) validate() error {
	if s.HTTPAddress == "" && s.GRPCAddress == "" {
		return fmt.Errorf("%w: no listen address", ErrInvalidServerConfigs)
	}
	if s.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}
	if s.RateLimit < 0 || s.RateBurst < 0 {
		return fmt.Errorf("%w: negative rate limit", ErrInvalidServerConfigs)
	}
	return nil
}

func (a Adapter) validate() error {
	transports := []string{TransportLocal, TransportHTTP, TransportGRPC}
	if !slices.Contains(transports, a.Transport) {
		return fmt.Errorf("%w: unknown transport %q", ErrInvalidAdapterConfigs, a.Transport)
	}
	if a.Transport == TransportHTTP && a.HTTPAddress == "" {
		return fmt.Errorf("%w: http transport needs an address", ErrInvalidAdapterConfigs)
	}
	if a.Transport == TransportGRPC && a.GRPCAddress == "" {
		return fmt.Errorf("%w: grpc transport needs an address", ErrInvalidAdapterConfigs)
	}
	if a.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}
	return nil
}
