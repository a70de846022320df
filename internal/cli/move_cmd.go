package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newMoveCmd(app *App) *cobra.Command {
	var (
		parentID string
		toRoot   bool
	)

	cmd := &cobra.Command{
		Use:   "move ID POSITION",
		Short: "Move an item to a position, optionally under a new parent",
		Long: "Move repositions an item within its sibling group, or reparents it\n" +
			"with --parent / --root. The position saturates into the destination\n" +
			"group: 0 or less lands at the front, anything past the end appends.\n" +
			"Both source and destination groups come out densely numbered 1..N.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("position must be an integer, got %q", args[1])
			}
			if cmd.Flags().Changed("parent") && toRoot {
				return fmt.Errorf("--parent and --root are mutually exclusive")
			}

			ctx := context.Background()

			var target *string
			switch {
			case toRoot:
				target = nil
			case cmd.Flags().Changed("parent"):
				target = &parentID
			default:
				// Stay in the current group.
				current, err := app.Menu.FindOne(ctx, args[0])
				if err != nil {
					return err
				}
				target = current.ParentID
			}

			moved, err := app.Menu.Move(ctx, args[0], position, target)
			if err != nil {
				return err
			}

			fmt.Printf("Moved item %s to position %d\n", moved.Label, moved.SortID)
			return nil
		},
	}

	cmd.Flags().StringVar(&parentID, "parent", "", "Move under this parent item")
	cmd.Flags().BoolVar(&toRoot, "root", false, "Move to the partition's root group")

	return cmd
}
