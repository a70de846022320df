package service

import (
	"context"
	"testing"

	"github.com/navmenu-io/navmenu/internal/domain"
	"github.com/navmenu-io/navmenu/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReorderFlat_AssignsListedOrder(t *testing.T) {
	svc, repo, _ := setupMenuService(t)
	ctx := context.Background()

	a := testutil.NewTestItem("a")
	b := testutil.NewTestItem("b")
	c := testutil.NewTestItem("c")
	mustCreate(t, svc, a, b, c)

	got, err := svc.ReorderFlat(ctx, a.Partition(), []string{c.ID, a.ID, b.ID})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, c.ID, got[0].ID)
	assert.Equal(t, a.ID, got[1].ID)
	assert.Equal(t, b.ID, got[2].ID)

	assertDense(t, repo, rootGroup())
}

func TestReorderFlat_UnknownIDsSkipped(t *testing.T) {
	svc, _, _ := setupMenuService(t)
	ctx := context.Background()

	a := testutil.NewTestItem("a")
	b := testutil.NewTestItem("b")
	mustCreate(t, svc, a, b)

	got, err := svc.ReorderFlat(ctx, a.Partition(), []string{b.ID, "missing", a.ID})
	require.NoError(t, err)
	require.Len(t, got, 2, "unknown ids match zero rows and drop out")
	assert.Equal(t, 1, got[0].SortID)
	assert.Equal(t, b.ID, got[0].ID)
	assert.Equal(t, 3, got[1].SortID)
	assert.Equal(t, a.ID, got[1].ID)
}

func TestReorderFlat_ForeignPartitionIDsSkipped(t *testing.T) {
	svc, _, _ := setupMenuService(t)
	ctx := context.Background()

	a := testutil.NewTestItem("a")
	foreign := testutil.NewTestItem("foreign", testutil.WithState(domain.StateDraft))
	mustCreate(t, svc, a, foreign)

	_, err := svc.ReorderFlat(ctx, a.Partition(), []string{foreign.ID, a.ID})
	require.NoError(t, err)

	got, err := svc.FindOne(ctx, foreign.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.SortID, "items of other partitions are never renumbered")

	moved, err := svc.FindOne(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, moved.SortID)
}

func TestReorderTree_AppliesWholePartition(t *testing.T) {
	svc, repo, _ := setupMenuService(t)
	ctx := context.Background()

	// Start flat: {a:1, b:2, c:3} at the root.
	a := testutil.NewTestItem("a")
	b := testutil.NewTestItem("b")
	c := testutil.NewTestItem("c")
	mustCreate(t, svc, a, b, c)

	// Target shape: b first with c nested under it, a second.
	tree := []TreeNode{
		{ID: b.ID, SortID: 1, Children: []TreeNode{
			{ID: c.ID, SortID: 1},
		}},
		{ID: a.ID, SortID: 2},
	}

	got, err := svc.ReorderTree(ctx, a.Partition(), tree)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	roots := groupLabelsBySort(t, repo, rootGroup())
	assert.Equal(t, map[string]int{"b": 1, "a": 2}, roots)

	children := groupLabelsBySort(t, repo, childGroup(b.ID))
	assert.Equal(t, map[string]int{"c": 1}, children)
}

func TestReorderTree_MismatchRejectedWithoutWrites(t *testing.T) {
	svc, repo, _ := setupMenuService(t)
	ctx := context.Background()

	a := testutil.NewTestItem("a")
	b := testutil.NewTestItem("b")
	outside := testutil.NewTestItem("outside", testutil.WithState(domain.StateDraft))
	mustCreate(t, svc, a, b, outside)

	// The tree references an id living in a different partition.
	tree := []TreeNode{
		{ID: b.ID, SortID: 1},
		{ID: outside.ID, SortID: 2},
	}

	_, err := svc.ReorderTree(ctx, a.Partition(), tree)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTreeMismatch)
	assert.Contains(t, err.Error(), "2 items, partition matched 1")

	// Nothing moved.
	got := groupLabelsBySort(t, repo, rootGroup())
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, got)
}

func TestReorderTree_IncompleteTreeRejectedWithoutWrites(t *testing.T) {
	svc, repo, _ := setupMenuService(t)
	ctx := context.Background()

	a := testutil.NewTestItem("a")
	b := testutil.NewTestItem("b")
	c := testutil.NewTestItem("c")
	mustCreate(t, svc, a, b, c)

	// The tree covers only two of the partition's three members.
	tree := []TreeNode{
		{ID: b.ID, SortID: 1},
		{ID: a.ID, SortID: 2},
	}

	_, err := svc.ReorderTree(ctx, a.Partition(), tree)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTreeMismatch)
	assert.Contains(t, err.Error(), "2 items, partition holds 3")

	// Nothing moved.
	got := groupLabelsBySort(t, repo, rootGroup())
	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, got)
}

func TestReorderTree_DuplicateReferenceRejected(t *testing.T) {
	svc, _, _ := setupMenuService(t)
	ctx := context.Background()

	a := testutil.NewTestItem("a")
	mustCreate(t, svc, a)

	tree := []TreeNode{
		{ID: a.ID, SortID: 1},
		{ID: a.ID, SortID: 2},
	}

	_, err := svc.ReorderTree(ctx, a.Partition(), tree)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTreeMismatch)
}

func TestFlattenTree_DepthFirstParentage(t *testing.T) {
	p := "declared-parent"
	tree := []TreeNode{
		{ID: "n1", SortID: 1, Children: []TreeNode{
			{ID: "n2", SortID: 1, Children: []TreeNode{
				{ID: "n3", SortID: 1},
			}},
			{ID: "n4", SortID: 2},
		}},
		{ID: "n5", SortID: 2, ParentID: &p},
	}

	flat := flattenTree(tree, nil)
	require.Len(t, flat, 5)

	assert.Equal(t, "n1", flat[0].ID)
	assert.Nil(t, flat[0].ParentID, "top-level node without declared parent is root")

	assert.Equal(t, "n2", flat[1].ID)
	require.NotNil(t, flat[1].ParentID)
	assert.Equal(t, "n1", *flat[1].ParentID, "nesting implies parentage")

	assert.Equal(t, "n3", flat[2].ID)
	require.NotNil(t, flat[2].ParentID)
	assert.Equal(t, "n2", *flat[2].ParentID)

	assert.Equal(t, "n4", flat[3].ID)
	require.NotNil(t, flat[3].ParentID)
	assert.Equal(t, "n1", *flat[3].ParentID)

	assert.Equal(t, "n5", flat[4].ID)
	require.NotNil(t, flat[4].ParentID)
	assert.Equal(t, p, *flat[4].ParentID, "top-level nodes keep their declared parent")
}
