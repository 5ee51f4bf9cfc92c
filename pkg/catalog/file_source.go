package catalog

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// fileContent mirrors the on-disk catalog document
type fileContent struct {
	Locations []Location `yaml:"locations"`
	Recipes   []Recipe   `yaml:"recipes"`
}

// LoadFile reads and validates a catalog document from the given filesystem.
// The document is a single YAML file with top-level locations and recipes.
func LoadFile(fs afero.Fs, path string) (*Catalog, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var content fileContent
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}

	c, err := New(content.Locations, content.Recipes)
	if err != nil {
		return nil, fmt.Errorf("validating catalog: %w", err)
	}
	return c, nil
}
