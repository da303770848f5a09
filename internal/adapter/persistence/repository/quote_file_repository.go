package repository

import (
	"context"

	"printdesk/internal/domain/entities"
	"printdesk/internal/usecase/interfaces"
)

// QuoteFileRepository stores quotes in quotes.json.
type QuoteFileRepository struct {
	col *jsonCollection[entities.Quote]
}

var _ interfaces.IQuoteRepository = (*QuoteFileRepository)(nil)

func NewQuoteFileRepository(s *FileStore) *QuoteFileRepository {
	return &QuoteFileRepository{
		col: newJSONCollection(s.path("quotes.json"), func(q entities.Quote) string { return q.ID }),
	}
}

func (r *QuoteFileRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if err := r.col.insert(ctx, q); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteFileRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	q, _, err := r.col.get(ctx, id)
	return q, err
}

func (r *QuoteFileRepository) List(ctx context.Context) ([]entities.Quote, error) {
	return r.col.all(ctx)
}

func (r *QuoteFileRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	found, err := r.col.replace(ctx, q)
	if err != nil || !found {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteFileRepository) Delete(ctx context.Context, id string) error {
	return r.col.remove(ctx, id)
}
