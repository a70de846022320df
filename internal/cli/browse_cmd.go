package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/navmenu-io/navmenu/internal/domain"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	var (
		dFlag           domainFlag
		includeArchived bool
	)
	dFlag.value = domain.DomainStorefront

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse and rearrange a domain's menu interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("browse requires an interactive terminal")
			}

			model := newBrowseModel(app.Menu, dFlag.value, includeArchived)
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().Var(&dFlag, "domain", "Menu domain ("+joinDomains()+")")
	cmd.Flags().BoolVar(&includeArchived, "archived", false, "Include archived items")

	return cmd
}
