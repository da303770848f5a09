package interfaces

import (
	"context"
	"printdesk/internal/domain/entities"
)

// IWorkflowColumnRepository stores the board layout as one ordered list.
// An empty list means the board was never configured.
type IWorkflowColumnRepository interface {
	List(ctx context.Context) ([]entities.WorkflowColumn, error)
	ReplaceAll(ctx context.Context, cols []entities.WorkflowColumn) error
}
