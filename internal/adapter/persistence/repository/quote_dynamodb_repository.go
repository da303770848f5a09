package repository

import (
	"context"
	"time"

	"printdesk/internal/domain/entities"
	"printdesk/internal/usecase/interfaces"
)

type QuoteDynamoRepository struct {
	table *documentTable[entities.Quote]
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoDBAPI, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		table: newDocumentTable(ddb, tableName,
			func(q entities.Quote) string { return q.ID },
			func(q entities.Quote) time.Time { return q.CreatedAt },
		),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if err := r.table.create(ctx, q); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	return r.table.get(ctx, id)
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	return r.table.list(ctx)
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	found, err := r.table.update(ctx, q)
	if err != nil || !found {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}
