package interfaces

import (
	"context"
	"printdesk/internal/domain/entities"
)

// IInvoicePaymentRepository persists provider payments settled against invoices.
type IInvoicePaymentRepository interface {
	Create(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error)
	GetByID(ctx context.Context, id string) (entities.InvoicePayment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error)
}
