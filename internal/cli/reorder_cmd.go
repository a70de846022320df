package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/navmenu-io/navmenu/internal/domain"
	"github.com/navmenu-io/navmenu/internal/service"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newReorderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reorder",
		Short: "Bulk-reorder items of a partition",
	}

	cmd.AddCommand(
		newReorderFlatCmd(app),
		newReorderTreeCmd(app),
	)

	return cmd
}

func newReorderFlatCmd(app *App) *cobra.Command {
	var (
		dFlag   domainFlag
		secFlag sectionFlag
		stFlag  stateFlag
	)
	dFlag.value = domain.DomainStorefront
	secFlag.value = domain.SectionHeader
	stFlag.value = domain.StateLive

	cmd := &cobra.Command{
		Use:   "flat ID...",
		Short: "Assign positions from the listed order",
		Long: "Each listed item gets the position of its place in the argument\n" +
			"list, first argument first. IDs that match nothing in the partition\n" +
			"are skipped.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			part := domain.PartitionKey{
				Domain:  dFlag.value,
				Section: secFlag.value,
				State:   stFlag.value,
			}

			items, err := app.Menu.ReorderFlat(context.Background(), part, args)
			if err != nil {
				return err
			}

			fmt.Printf("Reordered %d item(s)\n", len(items))
			return nil
		},
	}

	cmd.Flags().Var(&dFlag, "domain", "Menu domain ("+joinDomains()+")")
	cmd.Flags().Var(&secFlag, "section", "Section ("+joinSections()+")")
	cmd.Flags().Var(&stFlag, "state", "Display state ("+joinStates()+")")

	return cmd
}

// treeSpecFile is the YAML shape consumed by "reorder tree". Nesting implies
// parentage; positions come from file order.
type treeSpecFile struct {
	Domain  string         `yaml:"domain"`
	Section string         `yaml:"section"`
	State   string         `yaml:"state"`
	Tree    []treeSpecNode `yaml:"tree"`
}

type treeSpecNode struct {
	ID       string         `yaml:"id"`
	Parent   string         `yaml:"parent,omitempty"`
	Children []treeSpecNode `yaml:"children,omitempty"`
}

func newReorderTreeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree FILE",
		Short: "Apply a complete hierarchical placement from a YAML file",
		Long: "The file describes the whole partition: every item must appear\n" +
			"exactly once, or nothing is written. Nesting reparents items;\n" +
			"positions come from file order.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading tree file %s: %w", args[0], err)
			}

			var spec treeSpecFile
			if err := yaml.Unmarshal(data, &spec); err != nil {
				return fmt.Errorf("parsing tree file %s: %w", args[0], err)
			}

			part, err := parsePartition(spec.Domain, spec.Section, spec.State)
			if err != nil {
				return err
			}

			items, err := app.Menu.ReorderTree(context.Background(), part, convertSpecNodes(spec.Tree))
			if err != nil {
				return err
			}

			fmt.Printf("Reordered %d item(s)\n", len(items))
			return nil
		},
	}
	return cmd
}

func convertSpecNodes(nodes []treeSpecNode) []service.TreeNode {
	out := make([]service.TreeNode, 0, len(nodes))
	for i, n := range nodes {
		tn := service.TreeNode{
			ID:       n.ID,
			SortID:   i + 1,
			Children: convertSpecNodes(n.Children),
		}
		if n.Parent != "" {
			parent := n.Parent
			tn.ParentID = &parent
		}
		out = append(out, tn)
	}
	return out
}

func parsePartition(d, sec, st string) (domain.PartitionKey, error) {
	var part domain.PartitionKey
	md, ok := domain.ParseMenuDomain(d)
	if !ok {
		return part, fmt.Errorf("invalid domain %q (one of %s)", d, joinDomains())
	}
	s, ok := domain.ParseSection(sec)
	if !ok {
		return part, fmt.Errorf("invalid section %q (one of %s)", sec, joinSections())
	}
	ds, ok := domain.ParseDisplayState(st)
	if !ok {
		return part, fmt.Errorf("invalid state %q (one of %s)", st, joinStates())
	}
	part.Domain = md
	part.Section = s
	part.State = ds
	return part, nil
}
