package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := embedMigrations.ReadDir(".")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	assert.Contains(t, names, "00001_create_users_table.sql")
	assert.Contains(t, names, "00002_create_todos_table.sql")
}

func TestEmbeddedMigrations_HaveGooseMarkers(t *testing.T) {
	entries, err := embedMigrations.ReadDir(".")
	require.NoError(t, err)

	for _, entry := range entries {
		content, err := embedMigrations.ReadFile(entry.Name())
		require.NoError(t, err)

		assert.Contains(t, string(content), "+goose Up", entry.Name())
		assert.Contains(t, string(content), "+goose Down", entry.Name())
	}
}
