// Package pricing computes print job prices from a product definition and a
// calculator selection. Compute is pure: the same inputs always produce the
// same Result, so callers simply recompute on every selection change.
package pricing

import (
	"fmt"
	"strconv"
	"strings"

	"printdesk/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	// BulkQuantityThreshold is the single-mode quantity from which the bulk discount applies.
	BulkQuantityThreshold = 1000
	defaultQuantity       = 100
	defaultDimension      = 100
	fallbackProductName   = "Item"
)

var bulkDiscountFactor = decimal.RequireFromString("0.8")

// Square-foot divisors per dimension unit.
var sqftDivisors = map[entities.Unit]decimal.Decimal{
	entities.UnitMM:   decimal.NewFromInt(92903),
	entities.UnitCM:   decimal.RequireFromString("929.03"),
	entities.UnitInch: decimal.NewFromInt(144),
	entities.UnitFt:   decimal.NewFromInt(1),
}

// Result is the calculator output for one product configuration.
type Result struct {
	TotalPrice float64            `json:"totalPrice"`
	Quantity   int                `json:"quantity"`
	Specs      entities.Selection `json:"specs"`
	Breakdown  string             `json:"breakdown"`
}

// Compute prices sel against product. A nil product yields a zero price.
func Compute(product *entities.Product, sel entities.Selection) Result {
	qty := TotalQuantity(sel)
	if product == nil {
		return Result{
			Quantity:  qty,
			Specs:     snapshot(sel),
			Breakdown: fmt.Sprintf("%dx %s", qty, fallbackProductName),
		}
	}

	var total decimal.Decimal
	if sel.VariationMode {
		total = variationTotal(product, sel)
	} else {
		total = attributeTotal(product, sel, qty)
	}

	return Result{
		TotalPrice: total.InexactFloat64(),
		Quantity:   qty,
		Specs:      snapshot(sel),
		Breakdown:  Summary(product, sel),
	}
}

// TotalQuantity is the number of items the selection orders.
func TotalQuantity(sel entities.Selection) int {
	if sel.VariationMode {
		n := 0
		for _, row := range sel.VariationRows {
			if row.Qty > 0 {
				n += row.Qty
			}
		}
		return n
	}
	if sel.QuantityMode == entities.QuantityModeBreakdown {
		n := 0
		for _, q := range sel.QuantityBreakdown {
			if q > 0 {
				n += q
			}
		}
		return n
	}
	if sel.Quantity < 0 {
		return 0
	}
	return sel.Quantity
}

// UnitPrice is the base price plus material, finishing, print side and custom
// section adjustments. Size is not included.
func UnitPrice(product *entities.Product, sel entities.Selection) float64 {
	if product == nil {
		return 0
	}
	return unitPrice(product, sel).InexactFloat64()
}

func unitPrice(p *entities.Product, sel entities.Selection) decimal.Decimal {
	unit := coreUnitPrice(p, sel)
	for _, section := range p.CustomSections {
		choice, ok := sel.CustomSelections[section.ID]
		if !ok {
			continue
		}
		unit = unit.Add(sectionAdjustment(section, choice))
	}
	return unit
}

// coreUnitPrice is shared by single, breakdown and variation pricing.
func coreUnitPrice(p *entities.Product, sel entities.Selection) decimal.Decimal {
	unit := decimal.NewFromFloat(p.Price)
	unit = unit.Add(adjustment(p.Materials, sel.Material))
	unit = unit.Add(adjustment(p.Finishings, sel.Finishing))
	unit = unit.Add(adjustment(p.PrintSides, sel.PrintSide))
	return unit
}

func sectionAdjustment(section entities.CustomSection, choice entities.CustomSelection) decimal.Decimal {
	sum := decimal.Zero
	switch c := choice.(type) {
	case entities.SelectChoice:
		sum = sum.Add(adjustment(section.Options, c.OptionID))
	case entities.MultiChoice:
		for _, id := range c.OptionIDs {
			sum = sum.Add(adjustment(section.Options, id))
		}
	}
	return sum
}

func adjustment(opts []entities.Option, id string) decimal.Decimal {
	if opt := entities.FindOption(opts, id); opt != nil {
		return decimal.NewFromFloat(opt.PriceAdjustment)
	}
	return decimal.Zero
}

func attributeTotal(p *entities.Product, sel entities.Selection, qty int) decimal.Decimal {
	unit := unitPrice(p, sel)
	sizes := p.SizeOptions()

	if sel.QuantityMode == entities.QuantityModeBreakdown {
		total := decimal.Zero
		for _, s := range sizes {
			n := sel.QuantityBreakdown[s.ID]
			if n <= 0 {
				continue
			}
			line := unit.Add(decimal.NewFromFloat(s.PriceAdjustment))
			total = total.Add(line.Mul(decimal.NewFromInt(int64(n))))
		}
		return total
	}

	sizeAdj := decimal.Zero
	if size := entities.FindOption(sizes, sel.Size); size != nil {
		if size.ID == entities.SizeCustom && p.AllowCustomSize && p.PricingModel == entities.PricingModelSqft {
			// The base price is already part of unit; area pricing adds it again per square foot.
			unit = unit.Add(decimal.NewFromFloat(p.Price).Mul(AreaSqFt(sel.CustomDimensions)))
		}
		sizeAdj = decimal.NewFromFloat(size.PriceAdjustment)
	}

	total := unit.Add(sizeAdj).Mul(decimal.NewFromInt(int64(qty)))
	if qty >= BulkQuantityThreshold {
		total = total.Mul(bulkDiscountFactor)
	}
	return total
}

func variationTotal(p *entities.Product, sel entities.Selection) decimal.Decimal {
	core := coreUnitPrice(p, sel)
	sizes := p.SizeOptions()

	total := decimal.Zero
	for _, row := range sel.VariationRows {
		if row.Qty <= 0 {
			continue
		}
		rowUnit := core.Add(adjustment(sizes, row.Size))
		for sectionID, optionID := range row.Selections {
			if section := p.Section(sectionID); section != nil {
				rowUnit = rowUnit.Add(adjustment(section.Options, optionID))
			}
		}
		total = total.Add(rowUnit.Mul(decimal.NewFromInt(int64(row.Qty))))
	}
	return total
}

// AreaSqFt converts custom dimensions to square feet. Unknown units yield zero.
func AreaSqFt(dim *entities.CustomDimensions) decimal.Decimal {
	if dim == nil {
		return decimal.Zero
	}
	divisor, ok := sqftDivisors[dim.Unit]
	if !ok {
		return decimal.Zero
	}
	area := decimal.NewFromFloat(dim.Width).Mul(decimal.NewFromFloat(dim.Height))
	return area.Div(divisor)
}

// snapshot keeps only the parts of the selection that are meaningful for its mode.
func snapshot(sel entities.Selection) entities.Selection {
	out := sel
	if out.QuantityMode == "" {
		out.QuantityMode = entities.QuantityModeSingle
	}
	if out.QuantityMode != entities.QuantityModeBreakdown {
		out.QuantityBreakdown = nil
	}
	if out.Size != entities.SizeCustom {
		out.CustomDimensions = nil
	}
	if !out.VariationMode {
		out.VariationRows = nil
	}
	if len(out.RosterData) == 0 {
		out.RosterData = nil
	}
	return out
}

// Summary builds the pipe separated description of a configuration.
func Summary(p *entities.Product, sel entities.Selection) string {
	name := fallbackProductName
	if p != nil && p.Name != "" {
		name = p.Name
	}
	parts := []string{fmt.Sprintf("%dx %s", TotalQuantity(sel), name)}
	if p == nil {
		return parts[0]
	}

	sizes := p.SizeOptions()
	if sel.Size == entities.SizeCustom && p.AllowCustomSize {
		dim := sel.CustomDimensions
		if dim == nil {
			dim = &entities.CustomDimensions{Width: defaultDimension, Height: defaultDimension, Unit: entities.UnitMM}
		}
		parts = append(parts, fmt.Sprintf("Custom Size: %sx%s %s", formatNumber(dim.Width), formatNumber(dim.Height), dim.Unit))
	} else if size := entities.FindOption(sizes, sel.Size); size != nil {
		parts = append(parts, "Size: "+size.Label)
	}

	if opt := entities.FindOption(p.Materials, sel.Material); opt != nil {
		parts = append(parts, "Material: "+opt.Label)
	}
	if opt := entities.FindOption(p.PrintSides, sel.PrintSide); opt != nil {
		parts = append(parts, "Print: "+opt.Label)
	}
	if opt := entities.FindOption(p.Finishings, sel.Finishing); opt != nil {
		parts = append(parts, "Finishing: "+opt.Label)
	}

	for _, section := range p.CustomSections {
		choice, ok := sel.CustomSelections[section.ID]
		if !ok {
			continue
		}
		labels := make([]string, 0)
		for _, id := range choice.Selected() {
			if opt := entities.FindOption(section.Options, id); opt != nil {
				labels = append(labels, opt.Label)
			}
		}
		if len(labels) > 0 {
			parts = append(parts, section.Title+": "+strings.Join(labels, ", "))
		}
	}

	if sel.QuantityMode == entities.QuantityModeBreakdown {
		if text := breakdownText(sizes, sel.QuantityBreakdown); text != "" {
			parts = append(parts, "(Qty Breakdown: "+text+")")
		}
	}

	return strings.Join(parts, " | ")
}

func breakdownText(sizes []entities.Option, breakdown map[string]int) string {
	seen := make(map[string]bool, len(sizes))
	entries := make([]string, 0, len(breakdown))
	for _, s := range sizes {
		seen[s.ID] = true
		if n := breakdown[s.ID]; n > 0 {
			entries = append(entries, fmt.Sprintf("%s: %d", s.Label, n))
		}
	}
	for _, id := range entities.SortedKeys(breakdown) {
		if n := breakdown[id]; !seen[id] && n > 0 {
			entries = append(entries, fmt.Sprintf("%s: %d", id, n))
		}
	}
	return strings.Join(entries, ", ")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// DefaultSelection is the initial calculator state for a product: the first
// option of every axis, quantity 100 in single mode.
func DefaultSelection(p entities.Product) entities.Selection {
	sel := entities.Selection{
		QuantityMode:     entities.QuantityModeSingle,
		Quantity:         defaultQuantity,
		CustomSelections: entities.CustomSelections{},
	}
	if sizes := p.SizeOptions(); len(sizes) > 0 {
		sel.Size = sizes[0].ID
	}
	if len(p.Materials) > 0 {
		sel.Material = p.Materials[0].ID
	}
	if len(p.Finishings) > 0 {
		sel.Finishing = p.Finishings[0].ID
	}
	if len(p.PrintSides) > 0 {
		sel.PrintSide = p.PrintSides[0].ID
	}
	if len(p.Durations) > 0 {
		sel.Duration = p.Durations[0].ID
	}
	for _, section := range p.CustomSections {
		switch {
		case section.InputType == entities.InputTypeCheckbox:
			sel.CustomSelections[section.ID] = entities.MultiChoice{OptionIDs: []string{}}
		case len(section.Options) > 0:
			sel.CustomSelections[section.ID] = entities.SelectChoice{OptionID: section.Options[0].ID}
		}
	}
	if sel.Size == entities.SizeCustom {
		sel.CustomDimensions = &entities.CustomDimensions{Width: defaultDimension, Height: defaultDimension, Unit: entities.UnitMM}
	}
	return sel
}
