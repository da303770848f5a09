package repository

import (
	"context"

	"printdesk/internal/domain/entities"
	"printdesk/internal/usecase/interfaces"
)

// OrderFileRepository stores orders in orders.json.
type OrderFileRepository struct {
	col *jsonCollection[entities.Order]
}

var _ interfaces.IOrderRepository = (*OrderFileRepository)(nil)

func NewOrderFileRepository(s *FileStore) *OrderFileRepository {
	return &OrderFileRepository{
		col: newJSONCollection(s.path("orders.json"), func(o entities.Order) string { return o.ID }),
	}
}

func (r *OrderFileRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	if err := r.col.insert(ctx, o); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderFileRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	o, _, err := r.col.get(ctx, id)
	return o, err
}

func (r *OrderFileRepository) List(ctx context.Context) ([]entities.Order, error) {
	return r.col.all(ctx)
}

func (r *OrderFileRepository) Update(ctx context.Context, o entities.Order) (entities.Order, error) {
	found, err := r.col.replace(ctx, o)
	if err != nil || !found {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderFileRepository) Delete(ctx context.Context, id string) error {
	return r.col.remove(ctx, id)
}
