package entities

// InputType is how a custom section collects its selection.
type InputType string

const (
	InputTypeSelect   InputType = "select"
	InputTypeCheckbox InputType = "checkbox"
)

// PricingModelSqft prices custom sizes by area in square feet.
const PricingModelSqft = "sqft"

// SizeCustom is the synthetic size id used for customer-supplied dimensions.
const SizeCustom = "custom"

// Option is one priced choice on an attribute axis (size, material, finishing, print side, ...).
type Option struct {
	ID              string  `json:"id"`
	Label           string  `json:"label"`
	PriceAdjustment float64 `json:"priceAdjustment"`
}

// CustomSection is a product specific configuration axis, e.g. collar type.
type CustomSection struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	InputType InputType `json:"inputType"`
	Options   []Option  `json:"options"`
}

// Product is a read-only catalog entry consumed by the pricing engine.
type Product struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Price           float64         `json:"price"`
	Sizes           []Option        `json:"sizes,omitempty"`
	Materials       []Option        `json:"materials,omitempty"`
	Finishings      []Option        `json:"finishings,omitempty"`
	PrintSides      []Option        `json:"printSides,omitempty"`
	Durations       []Option        `json:"durations,omitempty"`
	Quantities      []int           `json:"quantities,omitempty"`
	CustomSections  []CustomSection `json:"customSections,omitempty"`
	AllowCustomSize bool            `json:"allowCustomSize,omitempty"`
	PricingModel    string          `json:"pricingModel,omitempty"`
}

// SizeOptions returns the product sizes plus the synthetic custom size when
// custom sizing is allowed and the catalog does not already carry one.
func (p Product) SizeOptions() []Option {
	sizes := make([]Option, 0, len(p.Sizes)+1)
	sizes = append(sizes, p.Sizes...)
	if p.AllowCustomSize && FindOption(sizes, SizeCustom) == nil {
		sizes = append(sizes, Option{ID: SizeCustom, Label: "Custom Size"})
	}
	return sizes
}

// FindOption returns the option with the given id, or nil.
func FindOption(opts []Option, id string) *Option {
	if id == "" {
		return nil
	}
	for i := range opts {
		if opts[i].ID == id {
			return &opts[i]
		}
	}
	return nil
}

// Section returns the custom section with the given id, or nil.
func (p Product) Section(id string) *CustomSection {
	for i := range p.CustomSections {
		if p.CustomSections[i].ID == id {
			return &p.CustomSections[i]
		}
	}
	return nil
}
