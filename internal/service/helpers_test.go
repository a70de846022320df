package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/navmenu-io/navmenu/internal/domain"
	"github.com/navmenu-io/navmenu/internal/repository"
	"github.com/navmenu-io/navmenu/internal/testutil"
	"github.com/stretchr/testify/require"
)

func setupMenuService(t *testing.T) (MenuService, *repository.SQLiteMenuItemRepo, *sql.DB) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteMenuItemRepo(database)
	svc := NewMenuService(repo, testutil.NewTestUoW(database))
	return svc, repo, database
}

// mustCreate persists items through the service in listed order, letting the
// service append each at the end of its sibling group.
func mustCreate(t *testing.T, svc MenuService, items ...*domain.MenuItem) {
	t.Helper()
	for _, m := range items {
		m.SortID = 0
		require.NoError(t, svc.Create(context.Background(), m))
	}
}

// groupLabelsBySort fetches a sibling group and returns label -> sortID.
func groupLabelsBySort(t *testing.T, repo *repository.SQLiteMenuItemRepo, key domain.GroupKey) map[string]int {
	t.Helper()
	items, err := repo.ListGroup(context.Background(), key, "")
	require.NoError(t, err)
	out := make(map[string]int, len(items))
	for _, m := range items {
		out[m.Label] = m.SortID
	}
	return out
}

// assertDense verifies the density invariant: a group's sort ids are exactly
// {1..N} with no duplicates.
func assertDense(t *testing.T, repo *repository.SQLiteMenuItemRepo, key domain.GroupKey) {
	t.Helper()
	items, err := repo.ListGroup(context.Background(), key, "")
	require.NoError(t, err)
	for i, m := range items {
		require.Equal(t, i+1, m.SortID,
			"group not dense at %q: want %d got %d", m.Label, i+1, m.SortID)
	}
}

func rootGroup() domain.GroupKey {
	return domain.GroupKey{PartitionKey: domain.PartitionKey{
		Domain:  domain.DomainStorefront,
		Section: domain.SectionHeader,
		State:   domain.StateLive,
	}}
}

func childGroup(parentID string) domain.GroupKey {
	key := rootGroup()
	key.ParentID = &parentID
	return key
}
