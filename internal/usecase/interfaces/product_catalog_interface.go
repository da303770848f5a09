package interfaces

import (
	"context"
	"printdesk/internal/domain/entities"
)

// IProductCatalog is the read-only product list the calculator prices against.
type IProductCatalog interface {
	List(ctx context.Context) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
}
