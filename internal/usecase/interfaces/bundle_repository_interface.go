package interfaces

import (
	"context"
	"printdesk/internal/domain/entities"
)

type IBundleRepository interface {
	Create(ctx context.Context, b entities.Bundle) (entities.Bundle, error)
	GetByID(ctx context.Context, id string) (entities.Bundle, error)
	List(ctx context.Context) ([]entities.Bundle, error)
	Delete(ctx context.Context, id string) error
}
