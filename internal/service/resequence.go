package service

import (
	"context"
	"fmt"
	"time"

	"github.com/navmenu-io/navmenu/internal/db"
	"github.com/navmenu-io/navmenu/internal/domain"
	"github.com/navmenu-io/navmenu/internal/repository"
)

// Move repositions one item in three phases: close the gap in the source
// group (when groups differ), shift the destination group around the
// reserved slot, then commit the item's new position and parent. All three
// phases run inside one unit of work, so a failure in any phase leaves both
// groups untouched.
func (s *menuService) Move(ctx context.Context, id string, requestedPosition int, targetParentID *string) (*domain.MenuItem, error) {
	start := time.Now()
	var moved *domain.MenuItem

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteMenuItemRepo(tx)

		item, err := txItems.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if targetParentID != nil {
			if _, err := txItems.GetByID(ctx, *targetParentID); err != nil {
				return fmt.Errorf("target parent %s: %w", *targetParentID, err)
			}
		}

		source := domain.GroupOf(item)
		dest := domain.GroupKey{PartitionKey: item.Partition(), ParentID: targetParentID}

		// Phase 1: re-densify the group the item is leaving so it never
		// retains a hole.
		if !domain.SameGroup(source, dest) {
			siblings, err := txItems.ListGroup(ctx, source, item.ID)
			if err != nil {
				return err
			}
			if err := txItems.UpdateSortIDs(ctx, densify(siblings)); err != nil {
				return err
			}
		}

		// Phase 2: shift destination siblings around the reserved slot.
		destSiblings, err := txItems.ListGroup(ctx, dest, item.ID)
		if err != nil {
			return err
		}
		position := clampPosition(requestedPosition, len(destSiblings))
		if err := txItems.UpdateSortIDs(ctx, insertShift(destSiblings, position)); err != nil {
			return err
		}

		// Phase 3: commit the moved item. A nil destination parent is
		// written as NULL so no stale parent reference survives.
		if err := txItems.UpdatePlacements(ctx, []repository.PlacementAssignment{
			{ID: item.ID, SortID: position, ParentID: targetParentID},
		}); err != nil {
			return err
		}

		moved, err = txItems.GetByID(ctx, item.ID)
		return err
	})

	fields := map[string]any{"item": id, "requested_position": requestedPosition}
	if moved != nil {
		fields["position"] = moved.SortID
	}
	s.observe(ctx, "move", start, err, fields)
	if err != nil {
		return nil, err
	}
	return moved, nil
}

// clampPosition saturates a requested position into [1, groupSize+1], where
// groupSize counts the destination group without the moving item.
func clampPosition(requested, groupSize int) int {
	if requested < 1 {
		return 1
	}
	if requested > groupSize+1 {
		return groupSize + 1
	}
	return requested
}

// densify reassigns a dense 1..N sequence over siblings in their current
// order, returning assignments only for rows whose position actually
// changes.
func densify(siblings []*domain.MenuItem) []repository.SortAssignment {
	var assignments []repository.SortAssignment
	for i, m := range siblings {
		if m.SortID != i+1 {
			assignments = append(assignments, repository.SortAssignment{ID: m.ID, SortID: i + 1})
		}
	}
	return assignments
}

// insertShift walks siblings in order assigning 1..N+1 while skipping the
// reserved slot, returning assignments only for rows that move.
func insertShift(siblings []*domain.MenuItem, reserved int) []repository.SortAssignment {
	var assignments []repository.SortAssignment
	next := 1
	for _, m := range siblings {
		if next == reserved {
			next++
		}
		if m.SortID != next {
			assignments = append(assignments, repository.SortAssignment{ID: m.ID, SortID: next})
		}
		next++
	}
	return assignments
}
