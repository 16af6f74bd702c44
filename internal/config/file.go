package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-secure-storage/models"
	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the layout of the JSON/YAML configuration file.
type StructuredFileConfig struct {
	App struct {
		ServiceName   string   `json:"service_name" yaml:"service_name"`
		KeyPrefix     string   `json:"key_prefix" yaml:"key_prefix"`
		Synchronize   bool     `json:"synchronize" yaml:"synchronize"`
		DefaultAccess string   `json:"default_access" yaml:"default_access"`
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		Backend string `json:"backend" yaml:"backend"`
		DataDir string `json:"data_dir" yaml:"data_dir"`
		DB      struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	SecretKeys struct {
		Backend         string   `json:"backend" yaml:"backend"`
		Dir             string   `json:"dir" yaml:"dir"`
		Passphrase      string   `json:"passphrase" yaml:"passphrase"`
		KeyringBackends []string `json:"keyring_backends" yaml:"keyring_backends"`
	} `json:"secret_keys,omitempty" yaml:"secret_keys,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		RateLimit      float64  `json:"rate_limit" yaml:"rate_limit"`
		RateBurst      int      `json:"rate_burst" yaml:"rate_burst"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Adapter struct {
		Transport      string   `json:"transport" yaml:"transport"`
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Workers struct {
		GCInterval       Duration `json:"gc_interval" yaml:"gc_interval"`
		KeySweepInterval Duration `json:"key_sweep_interval" yaml:"key_sweep_interval"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// parseFile reads a JSON or YAML config file, chosen by extension.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	var access models.AccessPolicy
	if fileCfg.App.DefaultAccess != "" {
		if access, err = models.ParseAccessPolicy(fileCfg.App.DefaultAccess); err != nil {
			return nil, fmt.Errorf("error decoding default access: %w", err)
		}
	}

	cfg := &StructuredConfig{
		App: App{
			ServiceName:   fileCfg.App.ServiceName,
			KeyPrefix:     fileCfg.App.KeyPrefix,
			Synchronize:   fileCfg.App.Synchronize,
			DefaultAccess: access,
			TokenSignKey:  fileCfg.App.TokenSignKey,
			TokenIssuer:   fileCfg.App.TokenIssuer,
			TokenDuration: time.Duration(fileCfg.App.TokenDuration),
		},
		Storage: Storage{
			Backend: fileCfg.Storage.Backend,
			DataDir: fileCfg.Storage.DataDir,
			DB: DB{
				DSN: fileCfg.Storage.DB.DSN,
			},
		},
		SecretKeys: SecretKeys{
			Backend:         fileCfg.SecretKeys.Backend,
			Dir:             fileCfg.SecretKeys.Dir,
			Passphrase:      fileCfg.SecretKeys.Passphrase,
			KeyringBackends: fileCfg.SecretKeys.KeyringBackends,
		},
		Server: Server{
			HTTPAddress:    fileCfg.Server.HTTPAddress,
			GRPCAddress:    fileCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(fileCfg.Server.RequestTimeout),
			RateLimit:      fileCfg.Server.RateLimit,
			RateBurst:      fileCfg.Server.RateBurst,
		},
		Adapter: Adapter{
			Transport:      fileCfg.Adapter.Transport,
			HTTPAddress:    fileCfg.Adapter.HTTPAddress,
			GRPCAddress:    fileCfg.Adapter.GRPCAddress,
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			GCInterval:       time.Duration(fileCfg.Workers.GCInterval),
			KeySweepInterval: time.Duration(fileCfg.Workers.KeySweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON and YAML
// unmarshaling from strings like "1h", "30s" or from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
