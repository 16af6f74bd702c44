package crypto

import (
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/go-secure-storage/internal/config"
	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/99designs/keyring"
)

// LookupStatus is the outcome of a vault lookup.
type LookupStatus int

const (
	// LookupNotFound: the alias has never been stored (or was deleted).
	LookupNotFound LookupStatus = iota
	// LookupFound: Key holds the key material.
	LookupFound
	// LookupFailed: the alias may exist but could not be read; Err says why.
	LookupFailed
)

// KeyLookup is the three-outcome result of [KeyVault.Lookup].
type KeyLookup struct {
	Status LookupStatus
	Key    []byte
	Err    error
}

// Found returns a successful lookup holding key.
func Found(key []byte) KeyLookup {
	return KeyLookup{Status: LookupFound, Key: key}
}

// NotFound returns a lookup reporting genuine absence.
func NotFound() KeyLookup {
	return KeyLookup{Status: LookupNotFound}
}

// Failed returns a lookup reporting an unrecoverable or backend failure.
func Failed(err error) KeyLookup {
	return KeyLookup{Status: LookupFailed, Err: err}
}

// Vault backend names accepted in configuration.
const (
	VaultBackendKeyring = "keyring"
	VaultBackendSealed  = "sealed"
	VaultBackendMemory  = "memory"
)

// sealedVaultFile is the file name of the sealed vault inside its directory.
const sealedVaultFile = "secret-keys.json"

// NewKeyVault builds the vault selected by cfg.Backend.
func NewKeyVault(cfg config.SecretKeys, serviceName string, log *logger.Logger) (KeyVault, error) {
	switch cfg.Backend {
	case VaultBackendKeyring, "":
		log.Debug().Str("func", "NewKeyVault").Str("service", serviceName).Msg("using OS keyring vault")
		return NewKeyringVault(keyringConfig(cfg, serviceName), log), nil

	case VaultBackendSealed:
		if cfg.Passphrase == "" {
			return nil, fmt.Errorf("%w: sealed vault requires a passphrase", ErrKeyVault)
		}
		log.Debug().Str("func", "NewKeyVault").Str("dir", cfg.Dir).Msg("using sealed file vault")
		return NewSealedVault(filepath.Join(cfg.Dir, sealedVaultFile), []byte(cfg.Passphrase), log), nil

	case VaultBackendMemory:
		log.Warn().Str("func", "NewKeyVault").Msg("using in-memory vault, keys are lost on exit")
		return NewMemoryVault(log), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownVaultBackend, cfg.Backend)
}

// keyringConfig maps the secret key settings onto 99designs/keyring. Without
// a passphrase the file backend is removed from the allowed set, even when it
// is the only one left, so the vault fails to open instead of sealing keys
// under an empty password.
func keyringConfig(cfg config.SecretKeys, serviceName string) keyring.Config {
	ringCfg := keyring.Config{
		ServiceName:              serviceName,
		KeychainName:             "login",
		KeychainTrustApplication: true,
		KeychainSynchronizable:   false,
		LibSecretCollectionName:  serviceName,
		KWalletAppID:             serviceName,
		KWalletFolder:            serviceName,
		WinCredPrefix:            serviceName,
		FileDir:                  cfg.Dir,
		FilePasswordFunc:         keyring.FixedStringPrompt(cfg.Passphrase),
	}

	for _, b := range cfg.KeyringBackends {
		ringCfg.AllowedBackends = append(ringCfg.AllowedBackends, keyring.BackendType(b))
	}

	if cfg.Passphrase == "" {
		allowed := ringCfg.AllowedBackends
		if allowed == nil {
			allowed = keyring.AvailableBackends()
		}
		ringCfg.AllowedBackends = make([]keyring.BackendType, 0, len(allowed))
		for _, b := range allowed {
			if b != keyring.FileBackend {
				ringCfg.AllowedBackends = append(ringCfg.AllowedBackends, b)
			}
		}
	}

	return ringCfg
}
