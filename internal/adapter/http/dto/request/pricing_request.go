package request

import "printdesk/internal/domain/entities"

type CalculatePriceRequest struct {
	ProductID string             `json:"productId" binding:"required"`
	Selection entities.Selection `json:"selection"`
}

// CartItemRequest prices a selection into a cart line. A non-nil PriceOverride
// replaces the computed total.
type CartItemRequest struct {
	ProductID     string             `json:"productId" binding:"required"`
	Selection     entities.Selection `json:"selection"`
	PriceOverride *float64           `json:"priceOverride"`
}
