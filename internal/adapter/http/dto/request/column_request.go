package request

import "printdesk/internal/domain/entities"

type ColumnRequest struct {
	ID       string `json:"id"`
	Title    string `json:"title" binding:"required"`
	Color    string `json:"color"`
	Subtitle string `json:"subtitle"`
}

func (r ColumnRequest) ToEntity() entities.WorkflowColumn {
	return entities.WorkflowColumn{ID: r.ID, Title: r.Title, Color: r.Color, Subtitle: r.Subtitle}
}

// SaveColumnsRequest replaces the whole board in the given order.
type SaveColumnsRequest struct {
	Columns []ColumnRequest `json:"columns" binding:"required,dive"`
}

func (r SaveColumnsRequest) ToEntities() []entities.WorkflowColumn {
	cols := make([]entities.WorkflowColumn, 0, len(r.Columns))
	for _, c := range r.Columns {
		cols = append(cols, c.ToEntity())
	}
	return cols
}

type RenameColumnRequest struct {
	Title string `json:"title" binding:"required"`
}
