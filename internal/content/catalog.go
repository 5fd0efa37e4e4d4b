package content

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed features.yaml
var defaultFeatures []byte

// Feature is a single workflow tool capability.
type Feature struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Section groups related features.
type Section struct {
	Name     string    `yaml:"name"`
	Features []Feature `yaml:"features"`
}

// Catalog lists the workflow tool features the model may map proposed steps onto.
type Catalog struct {
	Sections []Section `yaml:"sections"`
}

// ParseCatalog decodes a YAML feature catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse feature catalog: %w", err)
	}

	return &c, nil
}

// DefaultCatalog returns the embedded feature catalog.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(defaultFeatures)
	if err != nil {
		panic(err) // embedded at build time
	}

	return c
}

// String renders the catalog as the numbered list used in prompts.
// Numbering continues across sections.
func (c *Catalog) String() string {
	var sb strings.Builder
	n := 0
	for _, s := range c.Sections {
		sb.WriteString(strings.ToUpper(s.Name))
		sb.WriteString(":\n")
		for _, f := range s.Features {
			n++
			fmt.Fprintf(&sb, "    %d. %s: %s\n", n, f.Name, f.Description)
		}
	}

	return sb.String()
}
