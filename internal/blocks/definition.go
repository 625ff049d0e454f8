package blocks

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	gerrors "github.com/grmod/cli/internal/errors"
)

// Definition is the subset of a current-format block definition that the CLI
// surfaces (grmod info). Fields absent from the file stay zero.
type Definition struct {
	ID         string      `yaml:"id"`
	Label      string      `yaml:"label"`
	Category   string      `yaml:"category"`
	Templates  Templates   `yaml:"templates"`
	Parameters []Parameter `yaml:"parameters"`
	Inputs     []Port      `yaml:"inputs"`
	Outputs    []Port      `yaml:"outputs"`
	FileFormat int         `yaml:"file_format"`
}

// Templates carries the generator directives of a definition.
type Templates struct {
	Imports string `yaml:"imports"`
	Make    string `yaml:"make"`
}

// Parameter is one user-facing block parameter.
type Parameter struct {
	ID      string `yaml:"id"`
	Label   string `yaml:"label"`
	Dtype   string `yaml:"dtype"`
	Default any    `yaml:"default"`
}

// Port is one input or output port declaration.
type Port struct {
	Label  string `yaml:"label"`
	Domain string `yaml:"domain"`
	Dtype  string `yaml:"dtype"`
}

// DefinitionPath returns the expected path of blockID's current-format
// definition. The file may or may not exist.
func DefinitionPath(root, moduleName, blockID string) string {
	return filepath.Join(root, "grc", fmt.Sprintf("%s_%s.block.yml", moduleName, blockID))
}

// LoadDefinition reads and parses blockID's current-format definition.
// A block without one (legacy-only or header-only blocks) yields ErrNotFound.
func LoadDefinition(root, moduleName, blockID string) (*Definition, error) {
	path := DefinitionPath(root, moduleName, blockID)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &gerrors.DetailError{
				Type:     "not found",
				Message:  fmt.Sprintf("block %q has no current-format definition", blockID),
				Location: path,
				Hint:     "Legacy XML blocks can be converted with 'grmod makeyaml'.",
				Cause:    gerrors.ErrNotFound,
			}
		}
		return nil, fmt.Errorf("reading definition %s: %w", path, err)
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing definition %s: %w", path, err)
	}
	return &def, nil
}
