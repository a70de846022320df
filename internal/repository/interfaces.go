package repository

import (
	"context"

	"github.com/navmenu-io/navmenu/internal/domain"
)

// SortAssignment moves one item to a new position within its current group.
type SortAssignment struct {
	ID     string
	SortID int
}

// PlacementAssignment moves one item to a new position and parent. A nil
// ParentID reparents the item to the root of its partition.
type PlacementAssignment struct {
	ID       string
	SortID   int
	ParentID *string
}

// MenuItemRepo is the storage collaborator of the resequencing engine:
// point lookup, filtered ordered scans, and batched conditional updates.
//
// Group scans include archived items; archived items keep their SortID slot
// and take part in resequencing until explicitly removed.
type MenuItemRepo interface {
	Create(ctx context.Context, m *domain.MenuItem) error
	GetByID(ctx context.Context, id string) (*domain.MenuItem, error)

	// ListGroup returns the members of a sibling group ordered by
	// (sort_id, rowid), excluding excludeID when non-empty. Root groups
	// match parent_id IS NULL, never a sentinel value.
	ListGroup(ctx context.Context, key domain.GroupKey, excludeID string) ([]*domain.MenuItem, error)

	// ListByDomain scans a domain ordered by (section, state, sort_id).
	// Nil section/state filters match everything.
	ListByDomain(ctx context.Context, d domain.MenuDomain, section *domain.Section, state *domain.DisplayState, includeArchived bool) ([]*domain.MenuItem, error)

	// ListByIDs returns the named items ordered by (sort_id, rowid).
	// Missing ids are silently absent from the result.
	ListByIDs(ctx context.Context, ids []string) ([]*domain.MenuItem, error)

	// CountInPartition counts how many of the given ids exist within the
	// partition. Used to validate bulk reorder trees.
	CountInPartition(ctx context.Context, part domain.PartitionKey, ids []string) (int, error)

	// CountPartition counts all items in the partition, archived included.
	CountPartition(ctx context.Context, part domain.PartitionKey) (int, error)

	// Update persists display fields and the archived flag, conditioned on
	// the version the caller read. A stale version yields ErrConflict; the
	// stored and in-memory versions are bumped on success.
	Update(ctx context.Context, m *domain.MenuItem) error

	// UpdateSortIDs applies independent conditional position updates. An id
	// matching no row is skipped, not an error.
	UpdateSortIDs(ctx context.Context, assignments []SortAssignment) error

	// UpdatePlacements applies independent conditional position-and-parent
	// updates, same skip semantics as UpdateSortIDs.
	UpdatePlacements(ctx context.Context, assignments []PlacementAssignment) error

	// Delete removes an item. The vacated SortID slot is not closed here;
	// the next resequencing touch on the group re-densifies it.
	Delete(ctx context.Context, id string) error
}
