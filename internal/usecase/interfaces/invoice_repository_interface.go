package interfaces

import (
	"context"
	"printdesk/internal/domain/entities"
)

// IInvoiceRepository follows the same zero-value conventions as IOrderRepository.
type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
	Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	Delete(ctx context.Context, id string) error
}
