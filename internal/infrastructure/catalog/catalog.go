// Package catalog serves the read-only product list the pricing engine prices against.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"printdesk/internal/domain/entities"
	"printdesk/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type StaticCatalog struct {
	products []entities.Product
	byID     map[string]int
}

var _ interfaces.IProductCatalog = (*StaticCatalog)(nil)

func NewStaticCatalog(products []entities.Product) *StaticCatalog {
	c := &StaticCatalog{products: products, byID: make(map[string]int, len(products))}
	for i, p := range products {
		c.byID[p.ID] = i
	}
	return c
}

// Load reads the catalog from a JSON array of products. An empty path
// selects the built-in shop catalog.
func Load(path string, logger *zap.Logger) (*StaticCatalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		logger.Info("[catalog] using built-in products", zap.Int("count", len(DefaultProducts())))
		return NewStaticCatalog(DefaultProducts()), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var products []entities.Product
	if err := json.Unmarshal(b, &products); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	for i, p := range products {
		if strings.TrimSpace(p.ID) == "" {
			return nil, fmt.Errorf("catalog entry %d has no id", i)
		}
	}
	logger.Info("[catalog] loaded products", zap.String("path", path), zap.Int("count", len(products)))
	return NewStaticCatalog(products), nil
}

func (c *StaticCatalog) List(_ context.Context) ([]entities.Product, error) {
	out := make([]entities.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

// GetByID returns a zero Product when the id is unknown.
func (c *StaticCatalog) GetByID(_ context.Context, id string) (entities.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return entities.Product{}, nil
	}
	return c.products[i], nil
}

func opt(id, label string, adj float64) entities.Option {
	return entities.Option{ID: id, Label: label, PriceAdjustment: adj}
}

// DefaultProducts is the shop's standard range.
func DefaultProducts() []entities.Product {
	return []entities.Product{
		{
			ID:         "PROD-001",
			Name:       "Standard Business Cards",
			Price:      25,
			Sizes:      []entities.Option{opt("std", "Standard (90x54mm)", 0)},
			Materials:  []entities.Option{opt("matte", "Matte 260gsm", 0), opt("gloss", "Gloss 260gsm", 0)},
			Finishings: []entities.Option{opt("none", "None", 0), opt("lamination", "Matt Lamination", 5)},
			PrintSides: []entities.Option{opt("single", "Single Sided", 0), opt("double", "Double Sided", 10)},
			Quantities: []int{100, 200, 500, 1000},
		},
		{
			ID:    "PROD-002",
			Name:  "Vinyl Banner",
			Price: 3.5,
			Sizes: []entities.Option{
				opt("2x4", "2ft x 4ft", 0),
				opt("3x6", "3ft x 6ft", 20),
			},
			Materials:       []entities.Option{opt("tarpaulin", "Tarpaulin 380gsm", 0), opt("blockout", "Blockout 440gsm", 1.5)},
			Finishings:      []entities.Option{opt("eyelets", "Eyelets", 0), opt("pole", "Pole Pocket", 3)},
			AllowCustomSize: true,
			PricingModel:    entities.PricingModelSqft,
		},
		{
			ID:    "PROD-003",
			Name:  "Marketing Buntings",
			Price: 45,
			Sizes: []entities.Option{
				opt("2x5", "2ft x 5ft", 0),
				opt("2x6", "2ft x 6ft", 10),
			},
			Materials:  []entities.Option{opt("tarpaulin", "Tarpaulin 380gsm", 0)},
			Finishings: []entities.Option{opt("pvc-pipe", "PVC Pipe + String", 0), opt("wood", "Wood", 2)},
		},
		{
			ID:    "PROD-006",
			Name:  "Sublimation Jersey",
			Price: 35,
			Sizes: []entities.Option{
				opt("xs", "XS", 0),
				opt("s", "S", 0),
				opt("m", "M", 0),
				opt("l", "L", 0),
				opt("xl", "XL", 0),
				opt("xxl", "2XL", 2),
				opt("custom", "Custom Size", 5),
			},
			Materials: []entities.Option{opt("microfiber", "Microfiber", 0)},
			CustomSections: []entities.CustomSection{
				{
					ID:        "collar",
					Title:     "Collar Type",
					InputType: entities.InputTypeSelect,
					Options: []entities.Option{
						opt("round", "Round Neck", 0),
						opt("vneck", "V-Neck", 0),
						opt("collar", "Polo Collar", 5),
					},
				},
				{
					ID:        "sleeve",
					Title:     "Sleeve Type",
					InputType: entities.InputTypeSelect,
					Options: []entities.Option{
						opt("short", "Short Sleeve", 0),
						opt("long", "Long Sleeve", 5),
					},
				},
				{
					ID:        "addons",
					Title:     "Add-ons",
					InputType: entities.InputTypeCheckbox,
					Options: []entities.Option{
						opt("name", "Name Print", 3),
						opt("number", "Number Print", 3),
					},
				},
			},
		},
		{
			ID:    "PROD-DTF",
			Name:  "DTF Printing (Meter)",
			Price: 45,
			Sizes: []entities.Option{
				opt("meter", "Per Meter (58cm width)", 0),
				opt("a3", "A3 Sheet", -25),
			},
			Materials: []entities.Option{opt("pet", "PET Film", 0)},
			CustomSections: []entities.CustomSection{
				{
					ID:        "cut",
					Title:     "Cutting",
					InputType: entities.InputTypeSelect,
					Options: []entities.Option{
						opt("no-cut", "No Cutting (Roll)", 0),
						opt("cut", "Cut to Size", 10),
					},
				},
			},
		},
	}
}
