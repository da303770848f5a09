package repository

import (
	"context"
	"time"

	"printdesk/internal/domain/entities"
	"printdesk/internal/usecase/interfaces"
)

type BundleDynamoRepository struct {
	table *documentTable[entities.Bundle]
}

var _ interfaces.IBundleRepository = (*BundleDynamoRepository)(nil)

func NewBundleDynamoRepository(ddb DynamoDBAPI, tableName string) *BundleDynamoRepository {
	return &BundleDynamoRepository{
		table: newDocumentTable(ddb, tableName,
			func(b entities.Bundle) string { return b.ID },
			func(b entities.Bundle) time.Time { return b.CreatedAt },
		),
	}
}

func (r *BundleDynamoRepository) Create(ctx context.Context, b entities.Bundle) (entities.Bundle, error) {
	if err := r.table.create(ctx, b); err != nil {
		return entities.Bundle{}, err
	}
	return b, nil
}

func (r *BundleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Bundle, error) {
	return r.table.get(ctx, id)
}

func (r *BundleDynamoRepository) List(ctx context.Context) ([]entities.Bundle, error) {
	return r.table.list(ctx)
}

func (r *BundleDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}
