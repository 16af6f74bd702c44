package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	return entry
}

func captured(l *Logger) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Logger{l.Output(&buf)}, &buf
}

func TestNewLogger_Fields(t *testing.T) {
	l, buf := captured(NewLogger("secure-storaged"))
	l.Info().Msg("started")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "secure-storaged", entry["role"])
	assert.Equal(t, "started", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
}

func TestNewLogger_Globals(t *testing.T) {
	NewLogger("a")
	NewLogger("b")

	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger(t *testing.T) {
	t.Run("writes to client.log", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "logs")
		l := NewClientLogger("cli", dir)
		l.Info().Str("cmd", "get").Msg("ran")

		data, err := os.ReadFile(filepath.Join(dir, clientLogFile))
		require.NoError(t, err)

		entry := decodeEntry(t, data)
		assert.Equal(t, "cli", entry["role"])
		assert.Equal(t, "get", entry["cmd"])
	})

	t.Run("appends across runs", func(t *testing.T) {
		dir := t.TempDir()
		NewClientLogger("cli", dir).Info().Msg("one")
		NewClientLogger("cli", dir).Info().Msg("two")

		data, err := os.ReadFile(filepath.Join(dir, clientLogFile))
		require.NoError(t, err)
		assert.Len(t, bytes.Split(bytes.TrimSpace(data), []byte("\n")), 2)
	})

	t.Run("falls back to stderr", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(blocker, nil, 0o600))

		assert.Equal(t, os.Stderr, clientOutput(filepath.Join(blocker, "logs")))
	})
}

func TestNop(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf).Level(zerolog.Disabled)
	l.Info().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestChildLoggers(t *testing.T) {
	parent, buf := captured(NewLogger("server"))

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	traced := parent.WithTraceID("abc123")
	traced.Info().Msg("traced")
	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "server", entry["role"])
	assert.Equal(t, "abc123", entry[traceIDField])

	buf.Reset()
	parent.Info().Msg("plain")
	assert.NotContains(t, decodeEntry(t, buf.Bytes()), traceIDField)
}

func TestFromContext(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("scope", "ctx").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("hello")
	assert.Equal(t, "ctx", decodeEntry(t, buf.Bytes())["scope"])
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	traced := (&Logger{zerolog.New(&buf)}).WithTraceID("req-1")

	r := httptest.NewRequest(http.MethodGet, "/api/items/k", nil)
	r = r.WithContext(traced.WithContext(r.Context()))

	FromRequest(r).Warn().Msg("slow")
	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "req-1", entry[traceIDField])
	assert.Equal(t, "warn", entry["level"])
}
