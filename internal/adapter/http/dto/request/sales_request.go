package request

import (
	"strings"

	"printdesk/internal/domain/entities"
)

type QuoteRequest struct {
	ID           string               `json:"id"`
	CustomerName string               `json:"customerName" binding:"required"`
	Phone        string               `json:"phone"`
	Items        []entities.CartItem  `json:"items" binding:"required"`
	TotalAmount  float64              `json:"totalAmount"`
	Status       entities.QuoteStatus `json:"status"`
}

func (r QuoteRequest) ToEntity() entities.Quote {
	return entities.Quote{
		ID:           strings.TrimSpace(r.ID),
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		Items:        r.Items,
		TotalAmount:  r.TotalAmount,
		Status:       r.Status,
	}
}

type InvoiceRequest struct {
	ID           string                 `json:"id"`
	QuoteID      string                 `json:"quoteId"`
	CustomerName string                 `json:"customerName" binding:"required"`
	Phone        string                 `json:"phone"`
	Items        []entities.CartItem    `json:"items" binding:"required"`
	TotalAmount  float64                `json:"totalAmount"`
	Status       entities.InvoiceStatus `json:"status"`
}

func (r InvoiceRequest) ToEntity() entities.Invoice {
	return entities.Invoice{
		ID:           strings.TrimSpace(r.ID),
		QuoteID:      strings.TrimSpace(r.QuoteID),
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		Items:        r.Items,
		TotalAmount:  r.TotalAmount,
		Status:       r.Status,
	}
}

type CouponRequest struct {
	ID       string                `json:"id"`
	Code     string                `json:"code" binding:"required"`
	Type     entities.CouponType   `json:"type" binding:"required"`
	Value    float64               `json:"value"`
	MinSpend float64               `json:"minSpend"`
	Status   entities.CouponStatus `json:"status"`
}

// ToEntity defaults a missing status to active, like the coupon form does.
func (r CouponRequest) ToEntity() entities.Coupon {
	status := r.Status
	if status == "" {
		status = entities.CouponActive
	}
	return entities.Coupon{
		ID:       strings.TrimSpace(r.ID),
		Code:     r.Code,
		Type:     r.Type,
		Value:    r.Value,
		MinSpend: r.MinSpend,
		Status:   status,
	}
}

type CouponValidateRequest struct {
	Code      string  `json:"code" binding:"required"`
	CartTotal float64 `json:"cartTotal"`
}

type BundleItemRequest struct {
	ProductID   string `json:"productId" binding:"required"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Options     string `json:"options"`
}

// BundleRequest is the marketing form payload. The storefront reads
// image_url and is_featured in snake case.
type BundleRequest struct {
	Title       string                `json:"title" binding:"required"`
	Slug        string                `json:"slug" binding:"required"`
	Price       float64               `json:"price" binding:"required"`
	ImageURL    string                `json:"image_url"`
	IsFeatured  bool                  `json:"is_featured"`
	Status      entities.BundleStatus `json:"status"`
	Description string                `json:"description"`
	Items       []BundleItemRequest   `json:"items" binding:"dive"`
}

func (r BundleRequest) ToEntity() entities.Bundle {
	items := make([]entities.BundleItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.BundleItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Options:     it.Options,
		})
	}
	return entities.Bundle{
		Title:       r.Title,
		Slug:        r.Slug,
		Price:       r.Price,
		ImageURL:    strings.TrimSpace(r.ImageURL),
		IsFeatured:  r.IsFeatured,
		Status:      r.Status,
		Description: r.Description,
		Items:       items,
	}
}
