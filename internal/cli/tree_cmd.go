package cli

import (
	"context"
	"fmt"

	"github.com/navmenu-io/navmenu/internal/cli/formatter"
	"github.com/navmenu-io/navmenu/internal/domain"
	"github.com/spf13/cobra"
)

func newTreeCmd(app *App) *cobra.Command {
	var (
		dFlag           domainFlag
		includeArchived bool
	)
	dFlag.value = domain.DomainStorefront

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Render a domain's menu hierarchy",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := app.Menu.BuildHierarchy(context.Background(), dFlag.value, includeArchived)
			if err != nil {
				return err
			}

			groups := hierarchyGroups(h)
			if len(groups) == 0 {
				fmt.Println(formatter.Dim("No items."))
				return nil
			}

			fmt.Print(formatter.RenderHierarchy(groups))
			return nil
		},
	}

	cmd.Flags().Var(&dFlag, "domain", "Menu domain ("+joinDomains()+")")
	cmd.Flags().BoolVar(&includeArchived, "archived", false, "Include archived items")

	return cmd
}

// hierarchyGroups flattens a hierarchy into display groups, walking sections
// and states in canonical order and nesting each leaf's items by parentage.
func hierarchyGroups(h domain.Hierarchy) []formatter.HierarchyGroup {
	var groups []formatter.HierarchyGroup
	for _, sec := range domain.Sections {
		states, ok := h[sec]
		if !ok {
			continue
		}
		for _, st := range domain.DisplayStates {
			items := states[st]
			if len(items) == 0 {
				continue
			}
			groups = append(groups, formatter.HierarchyGroup{
				Section: string(sec),
				State:   string(st),
				Items:   leafTreeItems(items),
			})
		}
	}
	return groups
}

// leafTreeItems orders one leaf's flat item list as a depth-first tree.
// Items whose parent lives outside the leaf are shown at the root level.
func leafTreeItems(items []*domain.MenuItem) []formatter.TreeItem {
	present := make(map[string]bool, len(items))
	for _, m := range items {
		present[m.ID] = true
	}

	children := make(map[string][]*domain.MenuItem)
	var roots []*domain.MenuItem
	for _, m := range items {
		if m.ParentID != nil && present[*m.ParentID] {
			children[*m.ParentID] = append(children[*m.ParentID], m)
		} else {
			roots = append(roots, m)
		}
	}

	var out []formatter.TreeItem
	var walk func(nodes []*domain.MenuItem, level int)
	walk = func(nodes []*domain.MenuItem, level int) {
		for i, m := range nodes {
			out = append(out, formatter.TreeItem{
				Label:    m.Label,
				Path:     m.Path,
				SortID:   m.SortID,
				Level:    level,
				IsLast:   i == len(nodes)-1,
				Archived: m.Archived,
			})
			walk(children[m.ID], level+1)
		}
	}
	walk(roots, 0)
	return out
}
