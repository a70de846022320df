package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MenuDefinition is the top-level YAML structure for seeding one partition's
// menu. Nesting implies parentage; positions come from file order.
type MenuDefinition struct {
	Domain  string       `yaml:"domain"`
	Section string       `yaml:"section"`
	State   string       `yaml:"state"`
	Items   []ItemImport `yaml:"items"`
}

// ItemImport defines a single menu entry in the seed file.
type ItemImport struct {
	Label    string       `yaml:"label"`
	Path     string       `yaml:"path"`
	Tooltip  string       `yaml:"tooltip,omitempty"`
	Icon     string       `yaml:"icon,omitempty"`
	Archived bool         `yaml:"archived,omitempty"`
	Children []ItemImport `yaml:"children,omitempty"`
}

// Parse decodes a menu definition from YAML bytes.
func Parse(data []byte) (*MenuDefinition, error) {
	var def MenuDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing menu definition: %w", err)
	}
	return &def, nil
}

// Load reads and decodes a menu definition file.
func Load(path string) (*MenuDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading menu definition %s: %w", path, err)
	}
	return Parse(data)
}
