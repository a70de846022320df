package cli

import (
	"context"
	"fmt"

	"github.com/navmenu-io/navmenu/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Seed one partition's menu from a YAML definition",
		Long: "The definition file names a domain, section and state, and lists\n" +
			"items with optional children. Positions come from file order. The\n" +
			"whole file is imported in one transaction or not at all.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := importer.Load(args[0])
			if err != nil {
				return err
			}
			if err := importer.ValidateMenuDefinition(def); err != nil {
				return fmt.Errorf("invalid menu definition: %w", err)
			}

			items := importer.Convert(def)
			if err := app.Menu.Import(context.Background(), items); err != nil {
				return err
			}

			fmt.Printf("Imported %d item(s) into %s/%s/%s\n", len(items), def.Domain, def.Section, def.State)
			return nil
		},
	}
	return cmd
}
