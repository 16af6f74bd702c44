package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values used when no source provides a setting.
const (
	DefaultServiceName = "go-secure-storage"
	DefaultKeyPrefix   = "secure-storage_"
	DefaultHTTPAddress = "localhost:8080"
	DefaultGRPCAddress = "localhost:9090"

	StorageBackendBadger   = "badger"
	StorageBackendSQLite   = "sqlite"
	StorageBackendPostgres = "postgres"
	StorageBackendMemory   = "memory"
	StorageBackendKeychain = "keychain"

	SecretKeysBackendKeyring = "keyring"
	SecretKeysBackendSealed  = "sealed"
	SecretKeysBackendMemory  = "memory"

	// KeyringFileBackend is the encrypted-file keyring fallback. It is only
	// usable with a passphrase.
	KeyringFileBackend = "file"

	TransportLocal = "local"
	TransportHTTP  = "http"
	TransportGRPC  = "grpc"
)

func defaults() *StructuredConfig {
	base := defaultBaseDir()

	return &StructuredConfig{
		App: App{
			ServiceName:   DefaultServiceName,
			KeyPrefix:     DefaultKeyPrefix,
			TokenIssuer:   DefaultServiceName,
			TokenDuration: time.Hour,
		},
		Storage: Storage{
			Backend: StorageBackendBadger,
			DataDir: filepath.Join(base, "data"),
		},
		SecretKeys: SecretKeys{
			Backend: SecretKeysBackendKeyring,
			Dir:     filepath.Join(base, "keys"),
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			GRPCAddress:    DefaultGRPCAddress,
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			Transport:      TransportLocal,
			HTTPAddress:    DefaultHTTPAddress,
			GRPCAddress:    DefaultGRPCAddress,
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			GCInterval: 10 * time.Minute,
		},
	}
}

// defaultBaseDir is <user config dir>/go-secure-storage, or a directory
// under the working directory when no user config dir is known.
func defaultBaseDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultServiceName
	}
	return filepath.Join(dir, DefaultServiceName)
}
