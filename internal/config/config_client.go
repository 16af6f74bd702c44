package config

import (
	"fmt"
)

// ClientConfig is the configuration view used by the command-line client.
// It carries everything needed to either open the stores in-process
// (Adapter.Transport == "local") or reach a running daemon.
type ClientConfig struct {
	// App contains facade defaults and token settings.
	App App
	// Storage selects the in-process keyed store backend.
	Storage Storage
	// SecretKeys selects the in-process secret key vault.
	SecretKeys SecretKeys
	// Adapter contains the daemon transport, addresses and timeouts.
	Adapter Adapter
}

// GetClientConfig builds and validates the client configuration.
//
// Sources, highest priority first: the explicit path (usually the CLI's
// --config flag), environment variables, the config file, built-in
// defaults. Command-line overrides of single fields are applied by the
// caller on the returned value.
func GetClientConfig(path string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withPath(path).
		withEnv().
		withFile().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return &ClientConfig{
		App:        cfg.App,
		Storage:    cfg.Storage,
		SecretKeys: cfg.SecretKeys,
		Adapter:    cfg.Adapter,
	}, nil
}

// Validate re-checks the client view after command-line overrides.
func (cfg *ClientConfig) Validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}
	if cfg.Adapter.Transport == TransportLocal {
		if err := cfg.Storage.validate(); err != nil {
			return err
		}
		if err := cfg.SecretKeys.validate(cfg.Storage.Backend); err != nil {
			return err
		}
	}
	return cfg.Adapter.validate()
}
