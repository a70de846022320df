package domain

// GroupKey identifies a sibling group: one partition plus one parent
// reference. A nil ParentID is the partition's root group, which is a real
// group of its own and never matched by a sentinel parent value.
type GroupKey struct {
	PartitionKey
	ParentID *string
}

// GroupOf resolves the sibling group an item is ordered among.
func GroupOf(m *MenuItem) GroupKey {
	return GroupKey{PartitionKey: m.Partition(), ParentID: m.ParentID}
}

// SameGroup reports whether two group keys select the same sibling group.
// Parent references compare by value, not pointer identity.
func SameGroup(a, b GroupKey) bool {
	if a.PartitionKey != b.PartitionKey {
		return false
	}
	if a.ParentID == nil || b.ParentID == nil {
		return a.ParentID == nil && b.ParentID == nil
	}
	return *a.ParentID == *b.ParentID
}
