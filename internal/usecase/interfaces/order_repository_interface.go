package interfaces

import (
	"context"
	"printdesk/internal/domain/entities"
)

// IOrderRepository abstracts persistence for production orders.
//
// Lookups return a zero Order (empty ID) when the record does not exist.
// Update only writes orders that already exist and returns a zero Order otherwise.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	Update(ctx context.Context, o entities.Order) (entities.Order, error)
	Delete(ctx context.Context, id string) error
}
