package entities

// CartItem is a priced line produced by the calculator and carried by quotes,
// invoices and the orders generated from them.
type CartItem struct {
	ID           string     `json:"id"`
	ProductID    string     `json:"productId"`
	ProductName  string     `json:"productName"`
	Quantity     int        `json:"quantity"`
	UnitPrice    float64    `json:"unitPrice"`
	TotalPrice   float64    `json:"totalPrice"`
	Specs        *Selection `json:"specs,omitempty"`
	Summary      string     `json:"summary"`
	IsOverridden bool       `json:"isOverridden"`
}
