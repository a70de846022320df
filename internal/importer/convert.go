package importer

import (
	"time"

	"github.com/google/uuid"
	"github.com/navmenu-io/navmenu/internal/domain"
)

// Convert transforms a validated MenuDefinition into menu items ready for
// persistence. Call ValidateMenuDefinition first; Convert assumes the
// definition is valid. Each sibling group gets dense 1..N sort ids in file
// order, children under the generated id of their enclosing entry.
func Convert(def *MenuDefinition) []*domain.MenuItem {
	d, _ := domain.ParseMenuDomain(def.Domain)
	sec, _ := domain.ParseSection(def.Section)
	st, _ := domain.ParseDisplayState(def.State)

	now := time.Now().UTC()
	return convertItems(def.Items, nil, d, sec, st, now)
}

func convertItems(items []ItemImport, parentID *string, d domain.MenuDomain, sec domain.Section, st domain.DisplayState, now time.Time) []*domain.MenuItem {
	var out []*domain.MenuItem
	for i, item := range items {
		m := &domain.MenuItem{
			ID:        uuid.New().String(),
			Domain:    d,
			Section:   sec,
			State:     st,
			ParentID:  parentID,
			SortID:    i + 1,
			Label:     item.Label,
			Path:      item.Path,
			Archived:  item.Archived,
			Version:   1,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if item.Tooltip != "" {
			tooltip := item.Tooltip
			m.Tooltip = &tooltip
		}
		if item.Icon != "" {
			icon := item.Icon
			m.Icon = &icon
		}
		out = append(out, m)
		if len(item.Children) > 0 {
			out = append(out, convertItems(item.Children, &m.ID, d, sec, st, now)...)
		}
	}
	return out
}
