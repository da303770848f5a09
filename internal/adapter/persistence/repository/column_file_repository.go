package repository

import (
	"context"

	"printdesk/internal/domain/entities"
	"printdesk/internal/usecase/interfaces"
)

// ColumnFileRepository keeps the board columns, in display order, in columns.json.
type ColumnFileRepository struct {
	col *jsonCollection[entities.WorkflowColumn]
}

var _ interfaces.IWorkflowColumnRepository = (*ColumnFileRepository)(nil)

func NewColumnFileRepository(s *FileStore) *ColumnFileRepository {
	return &ColumnFileRepository{
		col: newJSONCollection(s.path("columns.json"), func(c entities.WorkflowColumn) string { return c.ID }),
	}
}

func (r *ColumnFileRepository) List(ctx context.Context) ([]entities.WorkflowColumn, error) {
	return r.col.all(ctx)
}

func (r *ColumnFileRepository) ReplaceAll(ctx context.Context, cols []entities.WorkflowColumn) error {
	return r.col.replaceAll(ctx, cols)
}
