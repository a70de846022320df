package importer

import (
	"fmt"

	"github.com/navmenu-io/navmenu/internal/domain"
)

// ValidateMenuDefinition checks a parsed definition before conversion:
// partition fields must name closed enum members, every item needs a label
// and a path, and paths must be unique across the whole definition (they
// share one partition).
func ValidateMenuDefinition(def *MenuDefinition) error {
	if _, ok := domain.ParseMenuDomain(def.Domain); !ok {
		return fmt.Errorf("invalid domain %q", def.Domain)
	}
	if _, ok := domain.ParseSection(def.Section); !ok {
		return fmt.Errorf("invalid section %q", def.Section)
	}
	if _, ok := domain.ParseDisplayState(def.State); !ok {
		return fmt.Errorf("invalid state %q", def.State)
	}
	if len(def.Items) == 0 {
		return fmt.Errorf("menu definition has no items")
	}

	seenPaths := make(map[string]bool)
	return validateItems(def.Items, "items", seenPaths)
}

func validateItems(items []ItemImport, at string, seenPaths map[string]bool) error {
	for i, item := range items {
		where := fmt.Sprintf("%s[%d]", at, i)
		if item.Label == "" {
			return fmt.Errorf("%s: missing label", where)
		}
		if item.Path == "" {
			return fmt.Errorf("%s (%s): missing path", where, item.Label)
		}
		if seenPaths[item.Path] {
			return fmt.Errorf("%s (%s): duplicate path %q", where, item.Label, item.Path)
		}
		seenPaths[item.Path] = true

		if err := validateItems(item.Children, where+".children", seenPaths); err != nil {
			return err
		}
	}
	return nil
}
