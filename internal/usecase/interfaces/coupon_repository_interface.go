package interfaces

import (
	"context"
	"printdesk/internal/domain/entities"
)

type ICouponRepository interface {
	// Save inserts or replaces the coupon with the same ID.
	Save(ctx context.Context, c entities.Coupon) (entities.Coupon, error)
	GetByID(ctx context.Context, id string) (entities.Coupon, error)
	List(ctx context.Context) ([]entities.Coupon, error)
	Delete(ctx context.Context, id string) error
}
