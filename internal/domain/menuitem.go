package domain

import "time"

// MenuItem is a single navigation entry. Items sharing the same partition
// key and parent form a sibling group, within which SortID values stay a
// dense 1..N sequence.
type MenuItem struct {
	ID        string
	Domain    MenuDomain
	Section   Section
	State     DisplayState
	ParentID  *string // nil means root of its partition
	SortID    int     // 1-based position within the sibling group
	Label     string
	Path      string
	Tooltip   *string
	Icon      *string
	Archived  bool
	Version   int // bumped on every mutating write
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PartitionKey scopes the space a sibling group lives in. Changing any of
// its components moves an item to a different group.
type PartitionKey struct {
	Domain  MenuDomain
	Section Section
	State   DisplayState
}

// Partition returns the item's partition key.
func (m *MenuItem) Partition() PartitionKey {
	return PartitionKey{Domain: m.Domain, Section: m.Section, State: m.State}
}

// IsRoot reports whether the item has no parent within its partition.
func (m *MenuItem) IsRoot() bool {
	return m.ParentID == nil
}
