// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db, "sqlite3"))
	// applying twice is a no-op
	require.NoError(t, Migrate(db, "sqlite3"))

	_, err = db.Exec(`INSERT INTO storage_entries (variant, entry_key, entry_value) VALUES ('local', 'k', 'v')`)
	require.NoError(t, err)

	var access int
	require.NoError(t, db.QueryRow(`SELECT access FROM storage_entries WHERE entry_key = 'k'`).Scan(&access))
	assert.Zero(t, access)
}

func TestMigrate_Errors(t *testing.T) {
	t.Run("nil db", func(t *testing.T) {
		assert.ErrorContains(t, Migrate(nil, "sqlite3"), "db is nil")
	})

	t.Run("unknown dialect", func(t *testing.T) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		assert.ErrorContains(t, Migrate(db, "oracle-of-delphi"), "setting dialect")
	})

	t.Run("failing database", func(t *testing.T) {
		// no expectations, so goose's first statement fails
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		assert.ErrorContains(t, Migrate(db, "postgres"), "migration error")
	})
}
