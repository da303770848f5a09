package repository

import (
	"context"

	"printdesk/internal/domain/entities"
	"printdesk/internal/usecase/interfaces"
)

type InvoiceFileRepository struct {
	col *jsonCollection[entities.Invoice]
}

var _ interfaces.IInvoiceRepository = (*InvoiceFileRepository)(nil)

func NewInvoiceFileRepository(s *FileStore) *InvoiceFileRepository {
	return &InvoiceFileRepository{
		col: newJSONCollection(s.path("invoices.json"), func(inv entities.Invoice) string { return inv.ID }),
	}
}

func (r *InvoiceFileRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	if err := r.col.insert(ctx, inv); err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceFileRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	inv, _, err := r.col.get(ctx, id)
	return inv, err
}

func (r *InvoiceFileRepository) List(ctx context.Context) ([]entities.Invoice, error) {
	return r.col.all(ctx)
}

func (r *InvoiceFileRepository) Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	found, err := r.col.replace(ctx, inv)
	if err != nil || !found {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceFileRepository) Delete(ctx context.Context, id string) error {
	return r.col.remove(ctx, id)
}
