package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// QuantityMode selects between one quantity and a per-size quantity matrix.
type QuantityMode string

const (
	QuantityModeSingle    QuantityMode = "single"
	QuantityModeBreakdown QuantityMode = "breakdown"
)

// Unit is the unit of custom dimensions.
type Unit string

const (
	UnitMM   Unit = "mm"
	UnitCM   Unit = "cm"
	UnitInch Unit = "inch"
	UnitFt   Unit = "ft"
)

type CustomDimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   Unit    `json:"unit"`
}

// VariationRow is one independently priced size/quantity line of a composite order.
type VariationRow struct {
	ID         string            `json:"id"`
	Size       string            `json:"size"`
	Qty        int               `json:"qty"`
	Selections map[string]string `json:"selections,omitempty"`
}

// RosterEntry personalizes a single item (jersey name and number). Not priced.
type RosterEntry struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

// Selection is the calculator state for one product.
type Selection struct {
	Size      string `json:"size"`
	Material  string `json:"material"`
	Finishing string `json:"finishing"`
	PrintSide string `json:"printSide"`
	Duration  string `json:"duration"`

	QuantityMode      QuantityMode   `json:"quantityMode"`
	Quantity          int            `json:"quantity"`
	QuantityBreakdown map[string]int `json:"quantityBreakdown,omitempty"`

	CustomSelections      CustomSelections  `json:"customSelections,omitempty"`
	PersonalizationInputs map[string]string `json:"personalizationInputs,omitempty"`
	CustomDimensions      *CustomDimensions `json:"customDimensions,omitempty"`

	VariationMode bool                     `json:"variationMode"`
	VariationRows []VariationRow           `json:"variationRows,omitempty"`
	RosterData    map[string][]RosterEntry `json:"rosterData,omitempty"`
}

// CustomSelection is the selection made on a custom section. It is either a
// SelectChoice (one option) or a MultiChoice (any number of checked options).
type CustomSelection interface {
	Selected() []string
	isCustomSelection()
}

// SelectChoice is the selection of a "select" section.
type SelectChoice struct {
	OptionID string
}

func (s SelectChoice) Selected() []string {
	if s.OptionID == "" {
		return nil
	}
	return []string{s.OptionID}
}

func (SelectChoice) isCustomSelection() {}

// MultiChoice is the selection of a "checkbox" section.
type MultiChoice struct {
	OptionIDs []string
}

func (m MultiChoice) Selected() []string { return m.OptionIDs }

func (MultiChoice) isCustomSelection() {}

// CustomSelections maps section id to its selection. On the wire a select
// section is a string and a checkbox section is an array of strings.
type CustomSelections map[string]CustomSelection

func (c CustomSelections) MarshalJSON() ([]byte, error) {
	raw := make(map[string]interface{}, len(c))
	for k, v := range c {
		switch sel := v.(type) {
		case SelectChoice:
			raw[k] = sel.OptionID
		case MultiChoice:
			ids := sel.OptionIDs
			if ids == nil {
				ids = []string{}
			}
			raw[k] = ids
		case nil:
			raw[k] = nil
		}
	}
	return json.Marshal(raw)
}

func (c *CustomSelections) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(CustomSelections, len(raw))
	for k, v := range raw {
		v = bytes.TrimSpace(v)
		switch {
		case len(v) == 0 || bytes.Equal(v, []byte("null")):
			continue
		case v[0] == '[':
			var ids []string
			if err := json.Unmarshal(v, &ids); err != nil {
				return fmt.Errorf("custom selection %q: %w", k, err)
			}
			out[k] = MultiChoice{OptionIDs: ids}
		default:
			var id string
			if err := json.Unmarshal(v, &id); err != nil {
				return fmt.Errorf("custom selection %q: %w", k, err)
			}
			out[k] = SelectChoice{OptionID: id}
		}
	}
	*c = out
	return nil
}

// SortedKeys returns the breakdown size ids in a stable order.
func SortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
