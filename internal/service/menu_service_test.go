package service

import (
	"context"
	"testing"

	"github.com/navmenu-io/navmenu/internal/domain"
	"github.com/navmenu-io/navmenu/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuService_Create_AssignsDefaults(t *testing.T) {
	svc, _, _ := setupMenuService(t)
	ctx := context.Background()

	first := testutil.NewTestItem("First")
	first.ID = ""
	first.SortID = 0
	require.NoError(t, svc.Create(ctx, first))

	assert.NotEmpty(t, first.ID, "service assigns a UUID")
	assert.Equal(t, 1, first.SortID, "first item of an empty group lands at 1")
	assert.False(t, first.CreatedAt.IsZero())
	assert.Equal(t, 1, first.Version)

	second := testutil.NewTestItem("Second")
	second.SortID = 0
	require.NoError(t, svc.Create(ctx, second))
	assert.Equal(t, 2, second.SortID, "default position appends at the end")
}

func TestMenuService_Create_ExplicitSortStoredAsGiven(t *testing.T) {
	svc, _, _ := setupMenuService(t)
	ctx := context.Background()

	item := testutil.NewTestItem("Pinned", testutil.WithSortID(7))
	require.NoError(t, svc.Create(ctx, item))

	got, err := svc.FindOne(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.SortID, "caller-supplied positions are not resequenced on create")
}

func TestMenuService_Create_MissingParent(t *testing.T) {
	svc, _, _ := setupMenuService(t)

	item := testutil.NewTestItem("Orphan", testutil.WithParent("missing"))
	err := svc.Create(context.Background(), item)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMenuService_FindByGroup(t *testing.T) {
	svc, _, _ := setupMenuService(t)
	ctx := context.Background()

	live := testutil.NewTestItem("Live")
	draft := testutil.NewTestItem("Draft", testutil.WithState(domain.StateDraft))
	archived := testutil.NewTestItem("Archived", testutil.WithArchived())
	mustCreate(t, svc, live, draft, archived)

	st := domain.StateLive
	got, err := svc.FindByGroup(ctx, domain.DomainStorefront, nil, &st, false)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, live.ID, got[0].ID)

	withArchived, err := svc.FindByGroup(ctx, domain.DomainStorefront, nil, &st, true)
	require.NoError(t, err)
	assert.Len(t, withArchived, 2)
}

func TestMenuService_Update_PartialFields(t *testing.T) {
	svc, _, _ := setupMenuService(t)
	ctx := context.Background()

	tooltip := "hover text"
	item := testutil.NewTestItem("Home", testutil.WithIcon("house"))
	item.Tooltip = &tooltip
	mustCreate(t, svc, item)

	label := "Start"
	cleared := ""
	got, err := svc.Update(ctx, item.ID, UpdateFields{Label: &label, Tooltip: &cleared})
	require.NoError(t, err)

	assert.Equal(t, "Start", got.Label)
	assert.Nil(t, got.Tooltip, "empty tooltip clears the field")
	require.NotNil(t, got.Icon)
	assert.Equal(t, "house", *got.Icon, "untouched fields survive")
	assert.Equal(t, item.Path, got.Path)
	assert.Equal(t, 2, got.Version)
}

func TestMenuService_Update_NotFound(t *testing.T) {
	svc, _, _ := setupMenuService(t)
	label := "x"
	_, err := svc.Update(context.Background(), "missing", UpdateFields{Label: &label})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMenuService_Update_DuplicatePathConflicts(t *testing.T) {
	svc, _, _ := setupMenuService(t)
	ctx := context.Background()

	a := testutil.NewTestItem("A", testutil.WithPath("/a"))
	b := testutil.NewTestItem("B", testutil.WithPath("/b"))
	mustCreate(t, svc, a, b)

	taken := "/a"
	_, err := svc.Update(ctx, b.ID, UpdateFields{Path: &taken})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestMenuService_Remove_LeavesGap(t *testing.T) {
	svc, repo, _ := setupMenuService(t)
	ctx := context.Background()

	a := testutil.NewTestItem("a")
	b := testutil.NewTestItem("b")
	c := testutil.NewTestItem("c")
	mustCreate(t, svc, a, b, c)

	require.NoError(t, svc.Remove(ctx, b.ID))

	got := groupLabelsBySort(t, repo, rootGroup())
	assert.Equal(t, map[string]int{"a": 1, "c": 3}, got, "delete does not close the gap")

	assert.ErrorIs(t, svc.Remove(ctx, b.ID), domain.ErrNotFound)
}

func TestMenuService_ArchiveAndUnarchive(t *testing.T) {
	svc, _, _ := setupMenuService(t)
	ctx := context.Background()

	item := testutil.NewTestItem("Home")
	mustCreate(t, svc, item)

	archived, err := svc.Archive(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, archived.Archived)
	assert.Equal(t, 1, archived.SortID, "archived items keep their slot")

	// Archiving twice is a no-op, not a version bump.
	again, err := svc.Archive(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, archived.Version, again.Version)

	restored, err := svc.Unarchive(ctx, item.ID)
	require.NoError(t, err)
	assert.False(t, restored.Archived)
}

func TestMenuService_BuildHierarchy(t *testing.T) {
	svc, _, _ := setupMenuService(t)
	ctx := context.Background()

	h1 := testutil.NewTestItem("Header 1")
	h2 := testutil.NewTestItem("Header 2")
	f1 := testutil.NewTestItem("Footer 1", testutil.WithSection(domain.SectionFooter))
	draft := testutil.NewTestItem("Draft", testutil.WithState(domain.StateDraft))
	archived := testutil.NewTestItem("Old", testutil.WithArchived())
	other := testutil.NewTestItem("Admin", testutil.WithDomain(domain.DomainBackoffice))
	mustCreate(t, svc, h1, h2, f1, draft, archived, other)

	h, err := svc.BuildHierarchy(ctx, domain.DomainStorefront, false)
	require.NoError(t, err)

	require.Len(t, h[domain.SectionHeader][domain.StateLive], 2)
	assert.Equal(t, h1.ID, h[domain.SectionHeader][domain.StateLive][0].ID)
	assert.Equal(t, h2.ID, h[domain.SectionHeader][domain.StateLive][1].ID)
	require.Len(t, h[domain.SectionFooter][domain.StateLive], 1)
	require.Len(t, h[domain.SectionHeader][domain.StateDraft], 1)
	assert.NotContains(t, h, domain.SectionSidebar)

	// Flattened back in (section, state, sort) order, the projection
	// reproduces the sorted scan exactly.
	scan, err := svc.FindByGroup(ctx, domain.DomainStorefront, nil, nil, false)
	require.NoError(t, err)
	flat := h.Flatten()
	require.Len(t, flat, len(scan))
	for i := range scan {
		assert.Equal(t, scan[i].ID, flat[i].ID)
	}
}

func TestMenuService_BuildHierarchy_IncludeArchived(t *testing.T) {
	svc, _, _ := setupMenuService(t)
	ctx := context.Background()

	live := testutil.NewTestItem("Live")
	archived := testutil.NewTestItem("Old", testutil.WithArchived())
	mustCreate(t, svc, live, archived)

	h, err := svc.BuildHierarchy(ctx, domain.DomainStorefront, true)
	require.NoError(t, err)
	assert.Len(t, h[domain.SectionHeader][domain.StateLive], 2)
}

func TestMenuService_Import_Transactional(t *testing.T) {
	svc, repo, _ := setupMenuService(t)
	ctx := context.Background()

	good := testutil.NewTestItem("Good", testutil.WithPath("/good"))
	dup1 := testutil.NewTestItem("Dup", testutil.WithPath("/dup"), testutil.WithSortID(2))
	dup2 := testutil.NewTestItem("Dup Again", testutil.WithPath("/dup"), testutil.WithSortID(3))

	err := svc.Import(ctx, []*domain.MenuItem{good, dup1, dup2})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// The whole batch rolls back, including the valid rows.
	items, err := repo.ListByDomain(ctx, domain.DomainStorefront, nil, nil, true)
	require.NoError(t, err)
	assert.Empty(t, items)
}
