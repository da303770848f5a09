package repository

import (
	"context"
	"time"

	"printdesk/internal/domain/entities"
	"printdesk/internal/usecase/interfaces"
)

type InvoiceDynamoRepository struct {
	table *documentTable[entities.Invoice]
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb DynamoDBAPI, tableName string) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		table: newDocumentTable(ddb, tableName,
			func(inv entities.Invoice) string { return inv.ID },
			func(inv entities.Invoice) time.Time { return inv.CreatedAt },
		),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	if err := r.table.create(ctx, inv); err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	return r.table.get(ctx, id)
}

func (r *InvoiceDynamoRepository) List(ctx context.Context) ([]entities.Invoice, error) {
	return r.table.list(ctx)
}

func (r *InvoiceDynamoRepository) Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	found, err := r.table.update(ctx, inv)
	if err != nil || !found {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}
