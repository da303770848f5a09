package repository

import (
	"context"

	"printdesk/internal/domain/entities"
	"printdesk/internal/usecase/interfaces"
)

// BundleFileRepository stores bundles in bundles.json.
type BundleFileRepository struct {
	col *jsonCollection[entities.Bundle]
}

var _ interfaces.IBundleRepository = (*BundleFileRepository)(nil)

func NewBundleFileRepository(s *FileStore) *BundleFileRepository {
	return &BundleFileRepository{
		col: newJSONCollection(s.path("bundles.json"), func(b entities.Bundle) string { return b.ID }),
	}
}

func (r *BundleFileRepository) Create(ctx context.Context, b entities.Bundle) (entities.Bundle, error) {
	if err := r.col.insert(ctx, b); err != nil {
		return entities.Bundle{}, err
	}
	return b, nil
}

func (r *BundleFileRepository) GetByID(ctx context.Context, id string) (entities.Bundle, error) {
	b, _, err := r.col.get(ctx, id)
	return b, err
}

func (r *BundleFileRepository) List(ctx context.Context) ([]entities.Bundle, error) {
	return r.col.all(ctx)
}

func (r *BundleFileRepository) Delete(ctx context.Context, id string) error {
	return r.col.remove(ctx, id)
}
