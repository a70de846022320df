package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/navmenu-io/navmenu/internal/cli/formatter"
	"github.com/navmenu-io/navmenu/internal/domain"
	"github.com/navmenu-io/navmenu/internal/service"
	"github.com/spf13/cobra"
)

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage menu items",
	}

	cmd.AddCommand(
		newItemAddCmd(app),
		newItemListCmd(app),
		newItemInspectCmd(app),
		newItemUpdateCmd(app),
		newItemRemoveCmd(app),
		newItemArchiveCmd(app),
		newItemUnarchiveCmd(app),
	)

	return cmd
}

func newItemAddCmd(app *App) *cobra.Command {
	var (
		dFlag       domainFlag
		secFlag     sectionFlag
		stFlag      stateFlag
		label, path string
		tooltip     string
		icon        string
		parentID    string
		position    int
		interactive bool
	)
	dFlag.value = domain.DomainStorefront
	secFlag.value = domain.SectionHeader
	stFlag.value = domain.StateDraft

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new menu item",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := &domain.MenuItem{
				Domain:  dFlag.value,
				Section: secFlag.value,
				State:   stFlag.value,
				Label:   label,
				Path:    path,
				SortID:  position,
			}
			if tooltip != "" {
				m.Tooltip = &tooltip
			}
			if icon != "" {
				m.Icon = &icon
			}
			if cmd.Flags().Changed("parent") {
				m.ParentID = &parentID
			}

			if interactive {
				if !app.interactive() {
					return fmt.Errorf("--interactive requires a terminal")
				}
				if err := runItemWizard(m); err != nil {
					return err
				}
			}

			if err := app.Menu.Create(context.Background(), m); err != nil {
				return err
			}

			fmt.Printf("Created item %s at position %d (%s)\n", m.Label, m.SortID, m.ID)
			return nil
		},
	}

	cmd.Flags().Var(&dFlag, "domain", "Menu domain ("+joinDomains()+")")
	cmd.Flags().Var(&secFlag, "section", "Section ("+joinSections()+")")
	cmd.Flags().Var(&stFlag, "state", "Display state ("+joinStates()+")")
	cmd.Flags().StringVar(&label, "label", "", "Display label")
	cmd.Flags().StringVar(&path, "path", "", "Navigation path")
	cmd.Flags().StringVar(&tooltip, "tooltip", "", "Hover tooltip")
	cmd.Flags().StringVar(&icon, "icon", "", "Icon name")
	cmd.Flags().StringVar(&parentID, "parent", "", "Parent item ID")
	cmd.Flags().IntVar(&position, "position", 0, "Position in the sibling group (0 appends)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Collect fields with an interactive form")

	return cmd
}

func newItemListCmd(app *App) *cobra.Command {
	var (
		dFlag           domainFlag
		secFlag         sectionFlag
		stFlag          stateFlag
		includeArchived bool
	)
	dFlag.value = domain.DomainStorefront

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List menu items of a domain",
		RunE: func(cmd *cobra.Command, args []string) error {
			var section *domain.Section
			if secFlag.set {
				section = &secFlag.value
			}
			var state *domain.DisplayState
			if stFlag.set {
				state = &stFlag.value
			}

			items, err := app.Menu.FindByGroup(context.Background(), dFlag.value, section, state, includeArchived)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println(formatter.Dim("No items."))
				return nil
			}

			headers := []string{"ID", "POS", "SECTION", "STATE", "LABEL", "PATH"}
			rows := make([][]string, 0, len(items))
			for _, m := range items {
				label := m.Label
				if m.Archived {
					label = label + " " + formatter.ArchivedMark()
				}
				rows = append(rows, []string{
					formatter.TruncID(m.ID),
					fmt.Sprintf("%d", m.SortID),
					string(m.Section),
					string(m.State),
					label,
					m.Path,
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().Var(&dFlag, "domain", "Menu domain ("+joinDomains()+")")
	cmd.Flags().Var(&secFlag, "section", "Only this section")
	cmd.Flags().Var(&stFlag, "state", "Only this display state")
	cmd.Flags().BoolVar(&includeArchived, "archived", false, "Include archived items")

	return cmd
}

func newItemInspectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect ID",
		Short: "Show item details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.Menu.FindOne(context.Background(), args[0])
			if err != nil {
				return err
			}

			var b strings.Builder
			b.WriteString(fmt.Sprintf("%s  %s\n\n", formatter.Bold(m.Label), formatter.StateBadge(m.State)))
			b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("ID      "), formatter.TruncID(m.ID)))
			b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("DOMAIN  "), formatter.DomainBadge(m.Domain)))
			b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("SECTION "), string(m.Section)))
			b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("PATH    "), m.Path))
			b.WriteString(fmt.Sprintf("  %s  %d\n", formatter.Dim("POSITION"), m.SortID))
			if m.ParentID != nil {
				b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("PARENT  "), formatter.TruncID(*m.ParentID)))
			}
			if m.Tooltip != nil {
				b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("TOOLTIP "), *m.Tooltip))
			}
			if m.Icon != nil {
				b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("ICON    "), *m.Icon))
			}
			if m.Archived {
				b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("STATUS  "), formatter.ArchivedMark()))
			}
			b.WriteString(fmt.Sprintf("  %s  %d\n", formatter.Dim("VERSION "), m.Version))
			b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("UPDATED "), m.UpdatedAt.Format("Jan 2, 2006 15:04")))

			fmt.Print(formatter.RenderBox("Menu Item", b.String()))
			return nil
		},
	}
	return cmd
}

func newItemUpdateCmd(app *App) *cobra.Command {
	var label, path, tooltip, icon string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update an item's display fields",
		Long: "Update label, path, tooltip or icon. Passing an empty --tooltip or\n" +
			"--icon clears the field. Position and grouping are changed with\n" +
			"\"navmenu move\" and \"navmenu reorder\", not here.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var fields service.UpdateFields
			if cmd.Flags().Changed("label") {
				fields.Label = &label
			}
			if cmd.Flags().Changed("path") {
				fields.Path = &path
			}
			if cmd.Flags().Changed("tooltip") {
				fields.Tooltip = &tooltip
			}
			if cmd.Flags().Changed("icon") {
				fields.Icon = &icon
			}

			m, err := app.Menu.Update(context.Background(), args[0], fields)
			if err != nil {
				return err
			}

			fmt.Printf("Updated item %s\n", m.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "Display label")
	cmd.Flags().StringVar(&path, "path", "", "Navigation path")
	cmd.Flags().StringVar(&tooltip, "tooltip", "", "Hover tooltip (empty clears)")
	cmd.Flags().StringVar(&icon, "icon", "", "Icon name (empty clears)")

	return cmd
}

func newItemRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a menu item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Menu.Remove(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed item %s\n", args[0])
			return nil
		},
	}
	return cmd
}

func newItemArchiveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive ID",
		Short: "Archive a menu item, keeping its position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.Menu.Archive(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Archived item %s (%s)\n", m.Label, m.ID)
			return nil
		},
	}
	return cmd
}

func newItemUnarchiveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unarchive ID",
		Short: "Restore an archived menu item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.Menu.Unarchive(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Restored item %s (%s)\n", m.Label, m.ID)
			return nil
		},
	}
	return cmd
}
