package cli

import (
	"testing"

	"github.com/navmenu-io/navmenu/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeafTreeItems_DepthFirstWithConnectors(t *testing.T) {
	shop := browseItem("shop", "Shop", 1, nil)
	newArrivals := browseItem("new", "New Arrivals", 1, &shop.ID)
	sale := browseItem("sale", "Sale", 2, &shop.ID)
	about := browseItem("about", "About", 2, nil)

	// Scan order interleaves parents and children by sort id.
	items := leafTreeItems([]*domain.MenuItem{shop, newArrivals, about, sale})
	require.Len(t, items, 4)

	assert.Equal(t, "Shop", items[0].Label)
	assert.Equal(t, 0, items[0].Level)
	assert.False(t, items[0].IsLast)

	assert.Equal(t, "New Arrivals", items[1].Label)
	assert.Equal(t, 1, items[1].Level)
	assert.False(t, items[1].IsLast)

	assert.Equal(t, "Sale", items[2].Label)
	assert.Equal(t, 1, items[2].Level)
	assert.True(t, items[2].IsLast)

	assert.Equal(t, "About", items[3].Label)
	assert.Equal(t, 0, items[3].Level)
	assert.True(t, items[3].IsLast)
}

func TestLeafTreeItems_ForeignParentShownAtRoot(t *testing.T) {
	elsewhere := "parent-in-another-partition"
	orphan := browseItem("orphan", "Orphan", 1, &elsewhere)

	items := leafTreeItems([]*domain.MenuItem{orphan})
	require.Len(t, items, 1)
	assert.Equal(t, 0, items[0].Level)
}

func TestHierarchyGroups_CanonicalOrder(t *testing.T) {
	footerDraft := browseItem("imprint", "Imprint", 1, nil)
	footerDraft.Section = domain.SectionFooter
	footerDraft.State = domain.StateDraft
	headerLive := browseItem("home", "Home", 1, nil)

	h := domain.Hierarchy{}
	h.Add(footerDraft)
	h.Add(headerLive)

	groups := hierarchyGroups(h)
	require.Len(t, groups, 2)
	assert.Equal(t, "header", groups[0].Section)
	assert.Equal(t, "live", groups[0].State)
	assert.Equal(t, "footer", groups[1].Section)
	assert.Equal(t, "draft", groups[1].State)
}
