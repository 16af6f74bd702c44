package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, empty service name or unknown default access policy).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, unknown backend or postgres without DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSecretKeysConfigs indicates invalid secret key vault settings
	// (for example, sealed vault without a passphrase).
	ErrInvalidSecretKeysConfigs = errors.New("invalid secret keys configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, no listen address or a negative rate limit).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, unknown transport or missing request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero GC interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)

// ErrInvalidListenAddress is returned by [ListenAddress.Set] for a value that
// is not host:port.
var ErrInvalidListenAddress = errors.New("invalid listen address")
