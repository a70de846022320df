package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var name string
	err = database.QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'menu_items'`,
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "menu_items", name)
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

func TestMigrate_EnforcesClosedEnums(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO menu_items (id, domain, section, state, sort_id, label, path, created_at, updated_at)
		 VALUES ('x', 'intranet', 'header', 'live', 1, 'X', '/x', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`,
	)
	require.Error(t, err, "invalid domain must be rejected by the CHECK constraint")
	assert.Contains(t, err.Error(), "CHECK")
}
