package repository

import (
	"context"

	"printdesk/internal/domain/entities"
	"printdesk/internal/usecase/interfaces"
)

type CouponFileRepository struct {
	col *jsonCollection[entities.Coupon]
}

var _ interfaces.ICouponRepository = (*CouponFileRepository)(nil)

func NewCouponFileRepository(s *FileStore) *CouponFileRepository {
	return &CouponFileRepository{
		col: newJSONCollection(s.path("coupons.json"), func(c entities.Coupon) string { return c.ID }),
	}
}

// Save inserts a new coupon at the top of the list or overwrites the stored one in place.
func (r *CouponFileRepository) Save(ctx context.Context, c entities.Coupon) (entities.Coupon, error) {
	if err := r.col.upsert(ctx, c); err != nil {
		return entities.Coupon{}, err
	}
	return c, nil
}

func (r *CouponFileRepository) GetByID(ctx context.Context, id string) (entities.Coupon, error) {
	c, _, err := r.col.get(ctx, id)
	return c, err
}

func (r *CouponFileRepository) List(ctx context.Context) ([]entities.Coupon, error) {
	return r.col.all(ctx)
}

func (r *CouponFileRepository) Delete(ctx context.Context, id string) error {
	return r.col.remove(ctx, id)
}
