// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/MKhiriev/go-secure-storage/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueryStore(dialect Dialect, variant models.StoreVariant) *sqlStore {
	return NewSQLStore(NewDB(nil, dialect, logger.Nop()), variant).(*sqlStore)
}

func Test_prefixPattern(t *testing.T) {
	tests := []struct {
		prefix string
		want   string
	}{
		{"", "%"},
		{"secure-storage_", `secure-storage\_%`},
		{"100%", `100\%%`},
		{`a\b`, `a\\b%`},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			assert.Equal(t, tt.want, prefixPattern(tt.prefix))
		})
	}
}

func Test_buildGetQuery(t *testing.T) {
	s := newQueryStore(DialectPostgres, models.VariantSynchronizable)

	query, args, err := s.buildGetQuery("p_k")
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "select entry_value from storage_entries")
	assert.Contains(t, query, "$1")
	assert.Contains(t, query, "$2")
	assert.ElementsMatch(t, []any{"p_k", "synchronizable"}, args)
}

func Test_buildUpsertQuery(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := newQueryStore(DialectSQLite, models.VariantLocal)

	query, args, err := s.buildUpsertQuery("p_k", "cipher", models.AccessibleAfterFirstUnlock, now)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into storage_entries (variant,entry_key,entry_value,access,updated_at)")
	assert.Contains(t, q, "on conflict (variant, entry_key) do update")
	assert.NotContains(t, query, "$1", "sqlite uses ? placeholders")
	assert.Equal(t, []any{"local", "p_k", "cipher", int(models.AccessibleAfterFirstUnlock), now}, args)
}

func Test_buildDeleteQuery(t *testing.T) {
	s := newQueryStore(DialectSQLite, models.VariantLocal)

	query, args, err := s.buildDeleteQuery("p_k")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "DELETE FROM storage_entries WHERE"))
	assert.ElementsMatch(t, []any{"p_k", "local"}, args)
}

func Test_buildKeysQuery(t *testing.T) {
	s := newQueryStore(DialectPostgres, models.VariantLocal)

	query, args, err := s.buildKeysQuery("p_")
	require.NoError(t, err)

	assert.Contains(t, query, `entry_key LIKE $2 ESCAPE '\'`)
	assert.Contains(t, query, "ORDER BY entry_key")
	assert.Equal(t, []any{"local", `p\_%`}, args)
}

func Test_buildClearQuery(t *testing.T) {
	s := newQueryStore(DialectSQLite, models.VariantSynchronizable)

	query, args, err := s.buildClearQuery("p_")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "DELETE FROM storage_entries WHERE variant = ?"))
	assert.Contains(t, query, `entry_key LIKE ? ESCAPE '\'`)
	assert.Equal(t, []any{"synchronizable", `p\_%`}, args)
}
