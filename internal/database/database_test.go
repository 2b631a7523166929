package database

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(embedMigrations, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		assert.True(t, strings.HasSuffix(e.Name(), ".sql"), e.Name())

		body, err := fs.ReadFile(embedMigrations, "migrations/"+e.Name())
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", e.Name())
		assert.Contains(t, string(body), "-- +goose Down", e.Name())
	}
}

func TestInitMigrationTables(t *testing.T) {
	body, err := fs.ReadFile(embedMigrations, "migrations/00001_init.sql")
	require.NoError(t, err)

	for _, table := range []string{"users", "api_keys", "theme_planning", "content_generated"} {
		assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
	assert.Contains(t, string(body), "REFERENCES theme_planning(id) ON DELETE CASCADE")
	assert.Contains(t, string(body), "UNIQUE (theme_id, scheduled_date, content_type)")
}

func TestConnect_InvalidDSN(t *testing.T) {
	_, err := Connect("postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1")
	assert.Error(t, err)
}
