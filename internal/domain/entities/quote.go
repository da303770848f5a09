package entities

import "time"

type QuoteStatus string

const (
	QuoteStatusDraft     QuoteStatus = "Draft"
	QuoteStatusSent      QuoteStatus = "Sent"
	QuoteStatusConverted QuoteStatus = "Converted"
)

// Quote is a priced offer that can be converted into an invoice.
type Quote struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customerName"`
	Phone        string      `json:"phone"`
	Items        []CartItem  `json:"items"`
	TotalAmount  float64     `json:"totalAmount"`
	Status       QuoteStatus `json:"status"`
	InvoiceID    string      `json:"invoiceId,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
}
