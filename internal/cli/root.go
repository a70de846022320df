package cli

import (
	"github.com/navmenu-io/navmenu/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Menu service.MenuService

	// IsInteractive reports whether stdin/stdout are attached to a
	// terminal; interactive entrypoints (wizard, browse) require it.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "navmenu" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "navmenu",
		Short: "Navigation menu manager with dense sibling ordering",
	}

	root.AddCommand(
		newItemCmd(app),
		newMoveCmd(app),
		newReorderCmd(app),
		newTreeCmd(app),
		newImportCmd(app),
		newBrowseCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
