package repository

import (
	"context"
	"time"

	"printdesk/internal/domain/entities"
	"printdesk/internal/usecase/interfaces"
)

// OrderDynamoRepository persists orders as JSON documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type OrderDynamoRepository struct {
	table *documentTable[entities.Order]
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoDBAPI, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		table: newDocumentTable(ddb, tableName,
			func(o entities.Order) string { return o.ID },
			func(o entities.Order) time.Time { return o.CreatedAt },
		),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	if err := r.table.create(ctx, o); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	return r.table.get(ctx, id)
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	return r.table.list(ctx)
}

func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.Order) (entities.Order, error) {
	found, err := r.table.update(ctx, o)
	if err != nil || !found {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}
