package domain

// Hierarchy is the read-only projection of a whole domain's menu items,
// nested section -> state -> items ordered by SortID.
type Hierarchy map[Section]map[DisplayState][]*MenuItem

// Add appends an item under its section/state leaf, creating levels as
// needed. Items must be added in the desired leaf order.
func (h Hierarchy) Add(m *MenuItem) {
	states, ok := h[m.Section]
	if !ok {
		states = make(map[DisplayState][]*MenuItem)
		h[m.Section] = states
	}
	states[m.State] = append(states[m.State], m)
}

// Flatten walks sections and states in their canonical enum order and
// returns the leaf lists concatenated, preserving per-leaf ordering.
func (h Hierarchy) Flatten() []*MenuItem {
	var out []*MenuItem
	for _, sec := range Sections {
		states, ok := h[sec]
		if !ok {
			continue
		}
		for _, st := range DisplayStates {
			out = append(out, states[st]...)
		}
	}
	return out
}
