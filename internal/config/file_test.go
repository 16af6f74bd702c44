package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/go-secure-storage/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFile_YAML(t *testing.T) {
	path := writeTempFile(t, "config.yml", `
app:
  service_name: svc
  key_prefix: p_
  synchronize: true
  default_access: whenPasscodeSetThisDeviceOnly
  token_duration: 2h
storage:
  backend: sqlite
  db:
    dsn: /tmp/db.sqlite
secret_keys:
  backend: sealed
  dir: /tmp/keys
  passphrase: secret
  keyring_backends: [file, pass]
server:
  http_address: localhost:8080
  request_timeout: 15s
  rate_limit: 1.5
  rate_burst: 3
workers:
  gc_interval: 60000000000
  key_sweep_interval: 1h
`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "svc", cfg.App.ServiceName)
	assert.Equal(t, "p_", cfg.App.KeyPrefix)
	assert.True(t, cfg.App.Synchronize)
	assert.Equal(t, models.AccessibleWhenPasscodeSetThisDeviceOnly, cfg.App.DefaultAccess)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/db.sqlite", cfg.Storage.DB.DSN)
	assert.Equal(t, "sealed", cfg.SecretKeys.Backend)
	assert.Equal(t, []string{"file", "pass"}, cfg.SecretKeys.KeyringBackends)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 1.5, cfg.Server.RateLimit)
	assert.Equal(t, 3, cfg.Server.RateBurst)
	assert.Equal(t, time.Minute, cfg.Workers.GCInterval)
	assert.Equal(t, time.Hour, cfg.Workers.KeySweepInterval)
}

func TestParseFile_JSON(t *testing.T) {
	path := writeTempFile(t, "config.json", `{
		"app": {"default_access": "1", "token_duration": "30m"},
		"adapter": {"transport": "grpc", "grpc_address": "host:9090", "request_timeout": 1000000000}
	}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, models.AccessibleWhenUnlockedThisDeviceOnly, cfg.App.DefaultAccess)
	assert.Equal(t, 30*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "grpc", cfg.Adapter.Transport)
	assert.Equal(t, "host:9090", cfg.Adapter.GRPCAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "malformed json", file: "bad.json", content: "{not valid json"},
		{name: "malformed yaml", file: "bad.yaml", content: "app: [unterminated"},
		{name: "bad duration", file: "bad-duration.yaml", content: "server:\n  request_timeout: soon\n"},
		{name: "bad access", file: "bad-access.json", content: `{"app":{"default_access":"never"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFile(writeTempFile(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(data))
}

func TestDuration_UnmarshalYAML_Invalid(t *testing.T) {
	var d Duration
	assert.Error(t, yaml.Unmarshal([]byte(`"1 fortnight"`), &d))
}
