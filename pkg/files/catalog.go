package files

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bidgrid/bidgrid-cli/pkg/models"
)

// Catalog resolves product-type ids to their metadata. It backs the
// editor's classification lookup callback and the TUI type picker.
type Catalog struct {
	Types []models.ProductType `yaml:"product_types"`

	byID map[string]models.ProductType
}

// LoadCatalog reads the project's product-type catalog, or the
// built-in defaults when none exists.
func LoadCatalog() (*Catalog, error) {
	absPath := filepath.Join(BidgridDir, CatalogFile)

	content, err := os.ReadFile(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultCatalog(), nil
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(content, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	c.index()

	return &c, nil
}

// DefaultCatalog returns the built-in product types used when a
// project carries no catalog file.
func DefaultCatalog() *Catalog {
	c := &Catalog{
		Types: []models.ProductType{
			{ID: "cabinet", Name: "Cabinet", Unit: "each"},
			{ID: "countertop", Name: "Countertop", Unit: "sq ft"},
			{ID: "door", Name: "Door", Unit: "each"},
			{ID: "drawer", Name: "Drawer", Unit: "each"},
			{ID: "hardware", Name: "Hardware", Unit: "each"},
			{ID: "labor", Name: "Labor", Unit: "hour"},
			{ID: "panel", Name: "Panel", Unit: "sheet"},
			{ID: "shelving", Name: "Shelving", Unit: "linear ft"},
			{ID: "trim", Name: "Trim", Unit: "linear ft"},
		},
	}
	c.index()
	return c
}

// Lookup resolves a product-type id.
func (c *Catalog) Lookup(id string) (models.ProductType, bool) {
	if c.byID == nil {
		c.index()
	}
	pt, ok := c.byID[id]
	return pt, ok
}

func (c *Catalog) index() {
	c.byID = make(map[string]models.ProductType, len(c.Types))
	for _, pt := range c.Types {
		c.byID[pt.ID] = pt
	}
}
