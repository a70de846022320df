package service

import (
	"context"
	"fmt"
	"time"

	"github.com/navmenu-io/navmenu/internal/db"
	"github.com/navmenu-io/navmenu/internal/domain"
	"github.com/navmenu-io/navmenu/internal/repository"
)

// ReorderFlat assigns positions from the caller-supplied complete ordering
// of one partition. No gap or insert logic is needed: the list IS the target
// order. Ids matching nothing in the partition are skipped, but still
// consume their slot in the numbering.
func (s *menuService) ReorderFlat(ctx context.Context, part domain.PartitionKey, orderedIDs []string) ([]*domain.MenuItem, error) {
	start := time.Now()

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteMenuItemRepo(tx)

		existing, err := txItems.ListByIDs(ctx, orderedIDs)
		if err != nil {
			return err
		}
		members := make(map[string]bool, len(existing))
		for _, m := range existing {
			if m.Partition() == part {
				members[m.ID] = true
			}
		}

		var assignments []repository.SortAssignment
		for i, id := range orderedIDs {
			if members[id] {
				assignments = append(assignments, repository.SortAssignment{ID: id, SortID: i + 1})
			}
		}
		return txItems.UpdateSortIDs(ctx, assignments)
	})
	s.observe(ctx, "reorder_flat", start, err, map[string]any{
		"domain": part.Domain, "section": part.Section, "state": part.State,
		"items": len(orderedIDs),
	})
	if err != nil {
		return nil, err
	}

	return s.items.ListByIDs(ctx, orderedIDs)
}

// ReorderTree applies a complete hierarchical placement for one partition.
// The tree is validated against the partition's contents before any write,
// in both directions: a referenced id outside the partition (or a duplicate
// reference) shows up as a count discrepancy, and so does a partition member
// the tree never mentions. Either way the whole call fails with no writes.
func (s *menuService) ReorderTree(ctx context.Context, part domain.PartitionKey, nodes []TreeNode) ([]*domain.MenuItem, error) {
	start := time.Now()

	assignments := flattenTree(nodes, nil)
	ids := make([]string, len(assignments))
	for i, a := range assignments {
		ids[i] = a.ID
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteMenuItemRepo(tx)

		matched, err := txItems.CountInPartition(ctx, part, ids)
		if err != nil {
			return err
		}
		if matched != len(ids) {
			return fmt.Errorf("tree references %d items, partition matched %d: %w",
				len(ids), matched, domain.ErrTreeMismatch)
		}

		total, err := txItems.CountPartition(ctx, part)
		if err != nil {
			return err
		}
		if total != len(ids) {
			return fmt.Errorf("tree references %d items, partition holds %d: %w",
				len(ids), total, domain.ErrTreeMismatch)
		}

		return txItems.UpdatePlacements(ctx, assignments)
	})
	s.observe(ctx, "reorder_tree", start, err, map[string]any{
		"domain": part.Domain, "section": part.Section, "state": part.State,
		"items": len(ids),
	})
	if err != nil {
		return nil, err
	}

	return s.items.ListByIDs(ctx, ids)
}

// flattenTree walks nodes depth-first into placement assignments. Nested
// children take the enclosing node's id as parent; top-level nodes keep the
// parent they declare (nil = partition root).
func flattenTree(nodes []TreeNode, parentID *string) []repository.PlacementAssignment {
	var out []repository.PlacementAssignment
	for _, n := range nodes {
		parent := parentID
		if parent == nil && n.ParentID != nil {
			parent = n.ParentID
		}
		out = append(out, repository.PlacementAssignment{ID: n.ID, SortID: n.SortID, ParentID: parent})
		if len(n.Children) > 0 {
			id := n.ID
			out = append(out, flattenTree(n.Children, &id)...)
		}
	}
	return out
}
