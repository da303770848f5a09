package pricing

import (
	"math"
	"reflect"
	"testing"

	"printdesk/internal/domain/entities"
)

func flyer() *entities.Product {
	return &entities.Product{
		ID:    "flyer",
		Name:  "Flyer",
		Price: 25,
		Sizes: []entities.Option{
			{ID: "std", Label: "A5", PriceAdjustment: 0},
			{ID: "large", Label: "A4", PriceAdjustment: 10},
		},
		Materials: []entities.Option{
			{ID: "matte", Label: "Matte 150gsm", PriceAdjustment: 0},
			{ID: "gloss", Label: "Gloss 150gsm", PriceAdjustment: 5},
		},
	}
}

func jersey() *entities.Product {
	return &entities.Product{
		ID:    "jersey",
		Name:  "Jersey",
		Price: 30,
		Sizes: []entities.Option{
			{ID: "s", Label: "S"},
			{ID: "xl", Label: "XL", PriceAdjustment: 4},
		},
		Materials:  []entities.Option{{ID: "poly", Label: "Polyester", PriceAdjustment: 2}},
		Finishings: []entities.Option{{ID: "none", Label: "None"}},
		PrintSides: []entities.Option{{ID: "front", Label: "Front Only"}, {ID: "both", Label: "Front & Back", PriceAdjustment: 3}},
		CustomSections: []entities.CustomSection{
			{
				ID: "collar", Title: "Collar", InputType: entities.InputTypeSelect,
				Options: []entities.Option{{ID: "round", Label: "Round"}, {ID: "polo", Label: "Polo", PriceAdjustment: 6}},
			},
			{
				ID: "addons", Title: "Add-ons", InputType: entities.InputTypeCheckbox,
				Options: []entities.Option{{ID: "name", Label: "Name Print", PriceAdjustment: 1.5}, {ID: "badge", Label: "Badge", PriceAdjustment: 2}},
			},
		},
	}
}

func banner() *entities.Product {
	return &entities.Product{
		ID:              "banner",
		Name:            "Banner",
		Price:           12,
		AllowCustomSize: true,
		PricingModel:    entities.PricingModelSqft,
		Sizes:           []entities.Option{{ID: "2x4", Label: "2ft x 4ft", PriceAdjustment: 40}},
	}
}

func assertPrice(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected price %v, got %v", want, got)
	}
}

func TestCompute_SingleMode(t *testing.T) {
	t.Run("size and material adjustments", func(t *testing.T) {
		res := Compute(flyer(), entities.Selection{Size: "large", Material: "gloss", QuantityMode: entities.QuantityModeSingle, Quantity: 2})
		assertPrice(t, UnitPrice(flyer(), entities.Selection{Material: "gloss"}), 30)
		assertPrice(t, res.TotalPrice, 80)
		if res.Quantity != 2 {
			t.Fatalf("expected quantity 2, got %d", res.Quantity)
		}
		if res.Breakdown != "2x Flyer | Size: A4 | Material: Gloss 150gsm" {
			t.Fatalf("unexpected breakdown: %q", res.Breakdown)
		}
	})

	t.Run("bulk discount boundary", func(t *testing.T) {
		p := &entities.Product{Name: "Card", Price: 10, Sizes: []entities.Option{{ID: "std", Label: "Std"}}}

		below := Compute(p, entities.Selection{Size: "std", Quantity: 999})
		assertPrice(t, below.TotalPrice, 9990)

		at := Compute(p, entities.Selection{Size: "std", Quantity: 1000})
		assertPrice(t, at.TotalPrice, 8000)
	})

	t.Run("empty quantity mode defaults to single", func(t *testing.T) {
		res := Compute(flyer(), entities.Selection{Size: "std", Material: "matte", Quantity: 3})
		assertPrice(t, res.TotalPrice, 75)
		if res.Specs.QuantityMode != entities.QuantityModeSingle {
			t.Fatalf("expected single mode in specs, got %q", res.Specs.QuantityMode)
		}
	})

	t.Run("custom sections select and checkbox", func(t *testing.T) {
		sel := entities.Selection{
			Size: "s", Material: "poly", Finishing: "none", PrintSide: "both", Quantity: 10,
			CustomSelections: entities.CustomSelections{
				"collar": entities.SelectChoice{OptionID: "polo"},
				"addons": entities.MultiChoice{OptionIDs: []string{"name", "badge"}},
			},
		}
		// 30 + 2 + 3 + 6 + 1.5 + 2 = 44.5
		res := Compute(jersey(), sel)
		assertPrice(t, res.TotalPrice, 445)
		want := "10x Jersey | Size: S | Material: Polyester | Print: Front & Back | Finishing: None | Collar: Polo | Add-ons: Name Print, Badge"
		if res.Breakdown != want {
			t.Fatalf("unexpected breakdown:\n got %q\nwant %q", res.Breakdown, want)
		}
	})

	t.Run("unknown ids are skipped", func(t *testing.T) {
		res := Compute(flyer(), entities.Selection{Size: "nope", Material: "nope", Quantity: 4})
		assertPrice(t, res.TotalPrice, 100)
		if res.Breakdown != "4x Flyer" {
			t.Fatalf("unexpected breakdown: %q", res.Breakdown)
		}
	})

	t.Run("product without attribute axes", func(t *testing.T) {
		res := Compute(&entities.Product{Name: "Sticker", Price: 1.25}, entities.Selection{Quantity: 8})
		assertPrice(t, res.TotalPrice, 10)
	})
}

func TestCompute_BreakdownMode(t *testing.T) {
	t.Run("sums per size", func(t *testing.T) {
		sel := entities.Selection{
			Material:          "gloss",
			QuantityMode:      entities.QuantityModeBreakdown,
			QuantityBreakdown: map[string]int{"std": 3, "large": 2},
		}
		res := Compute(flyer(), sel)
		// (30+0)*3 + (30+10)*2
		assertPrice(t, res.TotalPrice, 170)
		if res.Quantity != 5 {
			t.Fatalf("expected quantity 5, got %d", res.Quantity)
		}
		want := "5x Flyer | Material: Gloss 150gsm | (Qty Breakdown: A5: 3, A4: 2)"
		if res.Breakdown != want {
			t.Fatalf("unexpected breakdown: %q", res.Breakdown)
		}
	})

	t.Run("never discounted", func(t *testing.T) {
		sel := entities.Selection{
			Material:          "matte",
			QuantityMode:      entities.QuantityModeBreakdown,
			QuantityBreakdown: map[string]int{"std": 600, "large": 600},
		}
		res := Compute(flyer(), sel)
		assertPrice(t, res.TotalPrice, 25*600+35*600)
	})

	t.Run("zero and negative rows ignored", func(t *testing.T) {
		sel := entities.Selection{
			QuantityMode:      entities.QuantityModeBreakdown,
			QuantityBreakdown: map[string]int{"std": 0, "large": -4},
			Quantity:          50,
		}
		res := Compute(flyer(), sel)
		assertPrice(t, res.TotalPrice, 0)
		if res.Quantity != 0 {
			t.Fatalf("expected quantity 0, got %d", res.Quantity)
		}
	})
}

func TestCompute_VariationMode(t *testing.T) {
	sel := entities.Selection{
		Material:      "poly",
		PrintSide:     "front",
		QuantityMode:  entities.QuantityModeSingle,
		Quantity:      5000,
		VariationMode: true,
		VariationRows: []entities.VariationRow{
			{ID: "1", Size: "s", Qty: 600, Selections: map[string]string{"collar": "round"}},
			{ID: "2", Size: "xl", Qty: 500, Selections: map[string]string{"collar": "polo"}},
			{ID: "3", Size: "xl", Qty: 0, Selections: map[string]string{"collar": "polo"}},
		},
		CustomSelections: entities.CustomSelections{"addons": entities.MultiChoice{OptionIDs: []string{"badge"}}},
	}
	res := Compute(jersey(), sel)
	// row1: 30+2+0 = 32 * 600 ; row2: 30+2+4+6 = 42 * 500 ; no bulk discount
	assertPrice(t, res.TotalPrice, 32*600+42*500)
	if res.Quantity != 1100 {
		t.Fatalf("expected quantity 1100, got %d", res.Quantity)
	}
	if len(res.Specs.VariationRows) != 3 {
		t.Fatalf("expected variation rows in specs")
	}
}

func TestCompute_CustomSqftSize(t *testing.T) {
	t.Run("one square foot in millimetres", func(t *testing.T) {
		sel := entities.Selection{
			Size:             entities.SizeCustom,
			Quantity:         1,
			CustomDimensions: &entities.CustomDimensions{Width: 92903, Height: 1, Unit: entities.UnitMM},
		}
		res := Compute(banner(), sel)
		// base is counted once in the unit price and once per square foot.
		assertPrice(t, res.TotalPrice, 12+12*1)
		if res.Breakdown != "1x Banner | Custom Size: 92903x1 mm" {
			t.Fatalf("unexpected breakdown: %q", res.Breakdown)
		}
	})

	t.Run("units", func(t *testing.T) {
		cases := []struct {
			dim  entities.CustomDimensions
			area float64
		}{
			{entities.CustomDimensions{Width: 929.03, Height: 1, Unit: entities.UnitCM}, 1},
			{entities.CustomDimensions{Width: 12, Height: 24, Unit: entities.UnitInch}, 2},
			{entities.CustomDimensions{Width: 3, Height: 2, Unit: entities.UnitFt}, 6},
			{entities.CustomDimensions{Width: 3, Height: 2, Unit: "yard"}, 0},
		}
		for _, tc := range cases {
			got := AreaSqFt(&tc.dim).InexactFloat64()
			if math.Abs(got-tc.area) > 1e-9 {
				t.Fatalf("%s: expected area %v, got %v", tc.dim.Unit, tc.area, got)
			}
		}
	})

	t.Run("non sqft product ignores area", func(t *testing.T) {
		p := banner()
		p.PricingModel = ""
		sel := entities.Selection{
			Size:             entities.SizeCustom,
			Quantity:         2,
			CustomDimensions: &entities.CustomDimensions{Width: 3, Height: 2, Unit: entities.UnitFt},
		}
		assertPrice(t, Compute(p, sel).TotalPrice, 24)
	})
}

func TestCompute_Deterministic(t *testing.T) {
	sel := entities.Selection{
		Size: "xl", Material: "poly", PrintSide: "both", Quantity: 12,
		CustomSelections: entities.CustomSelections{
			"collar": entities.SelectChoice{OptionID: "polo"},
			"addons": entities.MultiChoice{OptionIDs: []string{"badge", "name"}},
		},
		RosterData: map[string][]entities.RosterEntry{"1": {{Name: "ALI", Number: "7"}}},
	}
	a := Compute(jersey(), sel)
	b := Compute(jersey(), sel)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical results:\n%+v\n%+v", a, b)
	}
}

func TestCompute_NilProduct(t *testing.T) {
	res := Compute(nil, entities.Selection{Quantity: 3})
	if res.TotalPrice != 0 || res.Breakdown != "3x Item" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestCompute_SpecsSnapshot(t *testing.T) {
	sel := entities.Selection{
		Size:              "std",
		QuantityMode:      entities.QuantityModeSingle,
		Quantity:          1,
		QuantityBreakdown: map[string]int{"std": 9},
		CustomDimensions:  &entities.CustomDimensions{Width: 1, Height: 1, Unit: entities.UnitMM},
		VariationRows:     []entities.VariationRow{{ID: "1"}},
		RosterData:        map[string][]entities.RosterEntry{},
	}
	specs := Compute(flyer(), sel).Specs
	if specs.QuantityBreakdown != nil || specs.CustomDimensions != nil || specs.VariationRows != nil || specs.RosterData != nil {
		t.Fatalf("expected mode specific fields to be dropped: %+v", specs)
	}
}

func TestDefaultSelection(t *testing.T) {
	sel := DefaultSelection(*jersey())
	if sel.Size != "s" || sel.Material != "poly" || sel.PrintSide != "front" || sel.Quantity != 100 {
		t.Fatalf("unexpected defaults: %+v", sel)
	}
	if c, ok := sel.CustomSelections["collar"].(entities.SelectChoice); !ok || c.OptionID != "round" {
		t.Fatalf("expected first collar option, got %#v", sel.CustomSelections["collar"])
	}
	if c, ok := sel.CustomSelections["addons"].(entities.MultiChoice); !ok || len(c.OptionIDs) != 0 {
		t.Fatalf("expected empty checkbox selection, got %#v", sel.CustomSelections["addons"])
	}

	custom := DefaultSelection(entities.Product{AllowCustomSize: true})
	if custom.Size != entities.SizeCustom || custom.CustomDimensions == nil {
		t.Fatalf("expected synthetic custom size default, got %+v", custom)
	}
}
