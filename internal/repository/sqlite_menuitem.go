package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/navmenu-io/navmenu/internal/db"
	"github.com/navmenu-io/navmenu/internal/domain"
)

// menuItemColumns is the canonical SELECT column list for menu_items.
const menuItemColumns = `id, domain, section, state, parent_id, sort_id,
		label, path, tooltip, icon, archived, version, created_at, updated_at`

// SQLiteMenuItemRepo implements MenuItemRepo on SQLite. It takes a db.DBTX
// so the same repository runs standalone or scoped to a transaction.
type SQLiteMenuItemRepo struct {
	db db.DBTX
}

// NewSQLiteMenuItemRepo creates a new SQLiteMenuItemRepo.
func NewSQLiteMenuItemRepo(conn db.DBTX) *SQLiteMenuItemRepo {
	return &SQLiteMenuItemRepo{db: conn}
}

func (r *SQLiteMenuItemRepo) Create(ctx context.Context, m *domain.MenuItem) error {
	query := `INSERT INTO menu_items (id, domain, section, state, parent_id, sort_id,
		label, path, tooltip, icon, archived, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		string(m.Domain),
		string(m.Section),
		string(m.State),
		m.ParentID, // *string: nil becomes SQL NULL
		m.SortID,
		m.Label,
		m.Path,
		nullableString(m.Tooltip),
		nullableString(m.Icon),
		boolToInt(m.Archived),
		m.Version,
		m.CreatedAt.Format(time.RFC3339),
		m.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("inserting menu item %s: %w", m.ID, domain.ErrConflict)
		}
		return fmt.Errorf("inserting menu item: %w", err)
	}
	return nil
}

func (r *SQLiteMenuItemRepo) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanItem(row)
}

func (r *SQLiteMenuItemRepo) ListGroup(ctx context.Context, key domain.GroupKey, excludeID string) ([]*domain.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items
		WHERE domain = ? AND section = ? AND state = ?`
	args := []any{string(key.Domain), string(key.Section), string(key.State)}

	if key.ParentID == nil {
		query += ` AND parent_id IS NULL`
	} else {
		query += ` AND parent_id = ?`
		args = append(args, *key.ParentID)
	}
	if excludeID != "" {
		query += ` AND id != ?`
		args = append(args, excludeID)
	}
	// rowid breaks ties between anomalous equal sort_id values; the scan
	// must stay deterministic rather than error on dirty data.
	query += ` ORDER BY sort_id, rowid`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing sibling group: %w", err)
	}
	defer rows.Close()
	return r.scanItems(rows)
}

func (r *SQLiteMenuItemRepo) ListByDomain(ctx context.Context, d domain.MenuDomain, section *domain.Section, state *domain.DisplayState, includeArchived bool) ([]*domain.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE domain = ?`
	args := []any{string(d)}

	if section != nil {
		query += ` AND section = ?`
		args = append(args, string(*section))
	}
	if state != nil {
		query += ` AND state = ?`
		args = append(args, string(*state))
	}
	if !includeArchived {
		query += ` AND archived = 0`
	}
	// Sections and states sort in their canonical enum order, not
	// alphabetically, so the scan lines up with Hierarchy.Flatten.
	query += ` ORDER BY
		CASE section WHEN 'header' THEN 0 WHEN 'footer' THEN 1 WHEN 'sidebar' THEN 2 ELSE 3 END,
		CASE state WHEN 'draft' THEN 0 WHEN 'live' THEN 1 ELSE 2 END,
		sort_id, rowid`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing menu items by domain: %w", err)
	}
	defer rows.Close()
	return r.scanItems(rows)
}

func (r *SQLiteMenuItemRepo) ListByIDs(ctx context.Context, ids []string) ([]*domain.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + menuItemColumns + ` FROM menu_items
		WHERE id IN (` + placeholders(len(ids)) + `) ORDER BY sort_id, rowid`
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing menu items by ids: %w", err)
	}
	defer rows.Close()
	return r.scanItems(rows)
}

func (r *SQLiteMenuItemRepo) CountInPartition(ctx context.Context, part domain.PartitionKey, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query := `SELECT COUNT(*) FROM menu_items
		WHERE domain = ? AND section = ? AND state = ?
		AND id IN (` + placeholders(len(ids)) + `)`
	args := []any{string(part.Domain), string(part.Section), string(part.State)}
	for _, id := range ids {
		args = append(args, id)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting partition members: %w", err)
	}
	return count, nil
}

func (r *SQLiteMenuItemRepo) CountPartition(ctx context.Context, part domain.PartitionKey) (int, error) {
	query := `SELECT COUNT(*) FROM menu_items WHERE domain = ? AND section = ? AND state = ?`

	var count int
	err := r.db.QueryRowContext(ctx, query,
		string(part.Domain), string(part.Section), string(part.State)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting partition: %w", err)
	}
	return count, nil
}

func (r *SQLiteMenuItemRepo) Update(ctx context.Context, m *domain.MenuItem) error {
	query := `UPDATE menu_items SET label = ?, path = ?, tooltip = ?, icon = ?,
		archived = ?, version = version + 1, updated_at = ?
		WHERE id = ? AND version = ?`
	res, err := r.db.ExecContext(ctx, query,
		m.Label,
		m.Path,
		nullableString(m.Tooltip),
		nullableString(m.Icon),
		boolToInt(m.Archived),
		m.UpdatedAt.Format(time.RFC3339),
		m.ID,
		m.Version,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("updating menu item %s: %w", m.ID, domain.ErrConflict)
		}
		return fmt.Errorf("updating menu item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating menu item: %w", err)
	}
	if affected == 0 {
		// Either the row is gone or someone wrote past our version.
		if _, getErr := r.GetByID(ctx, m.ID); getErr != nil {
			return getErr
		}
		return fmt.Errorf("menu item %s version %d is stale: %w", m.ID, m.Version, domain.ErrConflict)
	}
	m.Version++
	return nil
}

func (r *SQLiteMenuItemRepo) UpdateSortIDs(ctx context.Context, assignments []SortAssignment) error {
	query := `UPDATE menu_items SET sort_id = ?, version = version + 1, updated_at = ?
		WHERE id = ?`
	now := nowUTC()
	for _, a := range assignments {
		if _, err := r.db.ExecContext(ctx, query, a.SortID, now, a.ID); err != nil {
			return fmt.Errorf("updating sort id for %s: %w", a.ID, err)
		}
	}
	return nil
}

func (r *SQLiteMenuItemRepo) UpdatePlacements(ctx context.Context, assignments []PlacementAssignment) error {
	query := `UPDATE menu_items SET sort_id = ?, parent_id = ?, version = version + 1, updated_at = ?
		WHERE id = ?`
	now := nowUTC()
	for _, a := range assignments {
		if _, err := r.db.ExecContext(ctx, query, a.SortID, a.ParentID, now, a.ID); err != nil {
			return fmt.Errorf("updating placement for %s: %w", a.ID, err)
		}
	}
	return nil
}

func (r *SQLiteMenuItemRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting menu item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting menu item: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("menu item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// scanItem scans a single menu item from a *sql.Row.
func (r *SQLiteMenuItemRepo) scanItem(row *sql.Row) (*domain.MenuItem, error) {
	var m domain.MenuItem
	var domainStr, sectionStr, stateStr, createdAtStr, updatedAtStr string
	var parentID, tooltip, icon sql.NullString
	var archivedInt int

	err := row.Scan(
		&m.ID, &domainStr, &sectionStr, &stateStr, &parentID, &m.SortID,
		&m.Label, &m.Path, &tooltip, &icon, &archivedInt, &m.Version,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("menu item: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning menu item: %w", err)
	}

	return r.populateItem(&m, domainStr, sectionStr, stateStr, createdAtStr, updatedAtStr,
		parentID, tooltip, icon, archivedInt)
}

// scanItems scans multiple menu items from *sql.Rows.
func (r *SQLiteMenuItemRepo) scanItems(rows *sql.Rows) ([]*domain.MenuItem, error) {
	var items []*domain.MenuItem
	for rows.Next() {
		var m domain.MenuItem
		var domainStr, sectionStr, stateStr, createdAtStr, updatedAtStr string
		var parentID, tooltip, icon sql.NullString
		var archivedInt int

		err := rows.Scan(
			&m.ID, &domainStr, &sectionStr, &stateStr, &parentID, &m.SortID,
			&m.Label, &m.Path, &tooltip, &icon, &archivedInt, &m.Version,
			&createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning menu item row: %w", err)
		}

		item, err := r.populateItem(&m, domainStr, sectionStr, stateStr, createdAtStr, updatedAtStr,
			parentID, tooltip, icon, archivedInt)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating menu items: %w", err)
	}
	return items, nil
}

// populateItem fills in parsed fields on a MenuItem after scanning raw values.
func (r *SQLiteMenuItemRepo) populateItem(
	m *domain.MenuItem,
	domainStr, sectionStr, stateStr, createdAtStr, updatedAtStr string,
	parentID, tooltip, icon sql.NullString,
	archivedInt int,
) (*domain.MenuItem, error) {
	m.Domain = domain.MenuDomain(domainStr)
	m.Section = domain.Section(sectionStr)
	m.State = domain.DisplayState(stateStr)
	m.ParentID = stringPtr(parentID)
	m.Tooltip = stringPtr(tooltip)
	m.Icon = stringPtr(icon)
	m.Archived = intToBool(archivedInt)

	var parseErr error
	m.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	m.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return m, nil
}
