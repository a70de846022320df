package service

import (
	"context"

	"github.com/navmenu-io/navmenu/internal/domain"
)

// UpdateFields carries a partial update of an item's display fields. Nil
// pointers leave a field unchanged; an empty Tooltip or Icon clears it.
// Grouping and position fields (domain, section, state, parent, sort id)
// are deliberately not updatable here — Move and the reorder operations are
// the only way to change where an item sits.
type UpdateFields struct {
	Label   *string
	Path    *string
	Tooltip *string
	Icon    *string
}

// TreeNode is one node of a bulk hierarchical reorder. Nesting implies
// parentage: children are assigned the enclosing node's id as parent.
// ParentID is only consulted on top-level nodes, where nil means root.
type TreeNode struct {
	ID       string
	SortID   int
	ParentID *string
	Children []TreeNode
}

// MenuService is the engine's surface toward the request-handling layer.
type MenuService interface {
	// Create persists a new item. A missing id gets a UUID; a SortID of
	// zero or less defaults to appending at the end of the sibling group.
	Create(ctx context.Context, m *domain.MenuItem) error

	FindOne(ctx context.Context, id string) (*domain.MenuItem, error)

	// FindByGroup lists a domain's items ordered by (section, state,
	// sort id), optionally narrowed to one section and/or state.
	FindByGroup(ctx context.Context, d domain.MenuDomain, section *domain.Section, state *domain.DisplayState, includeArchived bool) ([]*domain.MenuItem, error)

	Update(ctx context.Context, id string, fields UpdateFields) (*domain.MenuItem, error)

	// Remove deletes an item without closing the gap it leaves in its
	// sibling group; the next move touching the group re-densifies it.
	Remove(ctx context.Context, id string) error

	Archive(ctx context.Context, id string) (*domain.MenuItem, error)
	Unarchive(ctx context.Context, id string) (*domain.MenuItem, error)

	// Move repositions an item within its group, or reparents it into the
	// group under targetParentID (nil targets the partition's root group).
	// requestedPosition saturates into [1, destination size + 1].
	Move(ctx context.Context, id string, requestedPosition int, targetParentID *string) (*domain.MenuItem, error)

	// ReorderFlat assigns SortID = index + 1 to each listed id within the
	// partition. Ids matching nothing are skipped.
	ReorderFlat(ctx context.Context, part domain.PartitionKey, orderedIDs []string) ([]*domain.MenuItem, error)

	// ReorderTree applies a complete placement for a partition in one
	// batch. Every referenced id must exist in the partition and every
	// partition member must appear in the tree, otherwise it fails with
	// domain.ErrTreeMismatch and writes nothing.
	ReorderTree(ctx context.Context, part domain.PartitionKey, nodes []TreeNode) ([]*domain.MenuItem, error)

	// BuildHierarchy projects a domain into section -> state -> ordered
	// items. Pure read.
	BuildHierarchy(ctx context.Context, d domain.MenuDomain, includeArchived bool) (domain.Hierarchy, error)

	// Import persists a converted menu definition in one transaction.
	Import(ctx context.Context, items []*domain.MenuItem) error
}
