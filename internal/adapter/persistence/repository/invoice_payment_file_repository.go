package repository

import (
	"context"

	"printdesk/internal/domain/entities"
	"printdesk/internal/usecase/interfaces"
)

type InvoicePaymentFileRepository struct {
	col *jsonCollection[entities.InvoicePayment]
}

var _ interfaces.IInvoicePaymentRepository = (*InvoicePaymentFileRepository)(nil)

func NewInvoicePaymentFileRepository(s *FileStore) *InvoicePaymentFileRepository {
	return &InvoicePaymentFileRepository{
		col: newJSONCollection(s.path("invoice_payments.json"), func(p entities.InvoicePayment) string { return p.ID }),
	}
}

func (r *InvoicePaymentFileRepository) Create(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error) {
	if err := r.col.insert(ctx, p); err != nil {
		return entities.InvoicePayment{}, err
	}
	return p, nil
}

func (r *InvoicePaymentFileRepository) GetByID(ctx context.Context, id string) (entities.InvoicePayment, error) {
	p, _, err := r.col.get(ctx, id)
	return p, err
}

func (r *InvoicePaymentFileRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error) {
	return r.col.filter(ctx, func(p entities.InvoicePayment) bool { return p.InvoiceID == invoiceID })
}
