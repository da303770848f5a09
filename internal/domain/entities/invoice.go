package entities

import "time"

type InvoiceStatus string

const (
	InvoiceStatusUnpaid  InvoiceStatus = "Unpaid"
	InvoiceStatusPaid    InvoiceStatus = "Paid"
	InvoiceStatusPartial InvoiceStatus = "Partial"
)

// Invoice is a billed set of cart items. Converting it creates one order per item.
type Invoice struct {
	ID                 string        `json:"id"`
	QuoteID            string        `json:"quoteId,omitempty"`
	CustomerName       string        `json:"customerName"`
	Phone              string        `json:"phone"`
	Items              []CartItem    `json:"items"`
	TotalAmount        float64       `json:"totalAmount"`
	Status             InvoiceStatus `json:"status"`
	ConvertedToOrders  bool          `json:"convertedToOrders"`
	GeneratedFromQuote bool          `json:"generatedFromQuote,omitempty"`
	CreatedAt          time.Time     `json:"createdAt"`
}
