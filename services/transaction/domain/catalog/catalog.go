// Package catalog lists the transaction types available to each business sector.
package catalog

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/ghuser/bizzy/pkg/business"
)

//go:embed types.yaml
var typesYAML []byte

// Catalog maps a sector to its transaction types.
type Catalog map[business.Sector][]string

// Default is the catalog compiled into the binary.
var Default = mustLoad(typesYAML)

// Load parses a YAML catalog and checks that both sectors are present.
func Load(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse transaction catalog: %w", err)
	}
	for _, s := range []business.Sector{business.Products, business.Services} {
		if len(c[s]) == 0 {
			return nil, fmt.Errorf("transaction catalog has no types for %s", s)
		}
	}
	return c, nil
}

func mustLoad(data []byte) Catalog {
	c, err := Load(data)
	if err != nil {
		panic(err)
	}
	return c
}

// Types returns the transaction types of sector.
func (c Catalog) Types(sector business.Sector) []string {
	return slices.Clone(c[sector])
}

// Allows reports whether typ is offered to sector.
func (c Catalog) Allows(sector business.Sector, typ string) bool {
	return slices.Contains(c[sector], typ)
}
