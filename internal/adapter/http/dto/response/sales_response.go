package response

import (
	"printdesk/internal/domain/entities"
	"printdesk/internal/domain/pricing"
)

type PriceResponse struct {
	TotalPrice float64            `json:"totalPrice"`
	UnitPrice  float64            `json:"unitPrice"`
	Quantity   int                `json:"quantity"`
	Breakdown  string             `json:"breakdown"`
	Specs      entities.Selection `json:"specs"`
}

// FromPriceResult adds the per-unit price shown next to the calculator total.
func FromPriceResult(r pricing.Result) PriceResponse {
	res := PriceResponse{
		TotalPrice: r.TotalPrice,
		Quantity:   r.Quantity,
		Breakdown:  r.Breakdown,
		Specs:      r.Specs,
	}
	if r.Quantity > 0 {
		res.UnitPrice = r.TotalPrice / float64(r.Quantity)
	}
	return res
}

type CouponValidationResponse struct {
	Valid bool `json:"valid"`
	entities.CouponDiscount
}

type ConvertToOrdersResponse struct {
	InvoiceID string           `json:"invoiceId"`
	Orders    []entities.Order `json:"orders"`
}
