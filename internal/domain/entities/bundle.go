package entities

import "time"

type BundleStatus string

const (
	BundleActive BundleStatus = "active"
	BundleDraft  BundleStatus = "draft"
)

// BundleItem is one catalog product packaged into a bundle. Options is free
// text such as a size or material.
type BundleItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Options     string `json:"options,omitempty"`
}

// Bundle is a fixed-price package of products sold on the storefront. Only
// active bundles are visible to customers.
type Bundle struct {
	ID          string       `json:"id"`
	CreatedAt   time.Time    `json:"createdAt"`
	Title       string       `json:"title"`
	Slug        string       `json:"slug"`
	Price       float64      `json:"price"`
	ImageURL    string       `json:"image_url,omitempty"`
	IsFeatured  bool         `json:"is_featured"`
	Status      BundleStatus `json:"status"`
	Description string       `json:"description,omitempty"`
	Items       []BundleItem `json:"items"`
}
