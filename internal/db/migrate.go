package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations holds the schema statements in execution order. Statements are
// idempotent; the whole list re-runs on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS menu_items (
		id         TEXT PRIMARY KEY,
		domain     TEXT NOT NULL
		           CHECK(domain IN ('storefront','backoffice','help')),
		section    TEXT NOT NULL
		           CHECK(section IN ('header','footer','sidebar','contextual')),
		state      TEXT NOT NULL
		           CHECK(state IN ('draft','live','retired')),
		parent_id  TEXT,
		sort_id    INTEGER NOT NULL CHECK(sort_id > 0),
		label      TEXT NOT NULL,
		path       TEXT NOT NULL,
		tooltip    TEXT,
		icon       TEXT,
		archived   INTEGER NOT NULL DEFAULT 0,
		version    INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		UNIQUE(domain, section, state, path)
	)`,

	// Sibling-group scans filter on the full group key and read in sort order.
	`CREATE INDEX IF NOT EXISTS idx_menu_items_group
		ON menu_items(domain, section, state, parent_id, sort_id)`,

	// Hierarchy assembly scans a whole domain ordered by (section, state, sort_id).
	`CREATE INDEX IF NOT EXISTS idx_menu_items_domain
		ON menu_items(domain, section, state, sort_id)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" from ALTER TABLE statements,
			// since the migration list re-runs in full.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
