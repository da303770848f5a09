package usecase

import (
	"context"
	"errors"
	"fmt"
	"printdesk/internal/domain/entities"
	"printdesk/internal/domain/workflow"
	"printdesk/internal/usecase/interfaces"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrColumnNotFound       = errors.New("workflow column not found")
	ErrInvalidColumnID      = errors.New("invalid column id")
	ErrInvalidColumnTitle   = errors.New("column title is required")
	ErrDuplicateColumnID    = errors.New("duplicate column id")
	ErrDuplicateColumnTitle = errors.New("duplicate column title")
	ErrEmptyBoard           = errors.New("board must have at least one column")
)

const (
	defaultColumnColor    = "bg-gray-500"
	defaultColumnSubtitle = "Custom Stage"
)

// IColumnUseCase manages the configurable stages of the production board.
type IColumnUseCase interface {
	List(ctx context.Context) ([]entities.WorkflowColumn, error)
	Save(ctx context.Context, cols []entities.WorkflowColumn) ([]entities.WorkflowColumn, error)
	Add(ctx context.Context, title, color, subtitle string) (entities.WorkflowColumn, error)
	Rename(ctx context.Context, id, title string) (entities.WorkflowColumn, error)
}

type ColumnUseCase struct {
	repo interfaces.IWorkflowColumnRepository
	log  *zap.Logger
	now  func() time.Time
}

var _ IColumnUseCase = (*ColumnUseCase)(nil)

func NewColumnUseCase(repo interfaces.IWorkflowColumnRepository, logger *zap.Logger) *ColumnUseCase {
	return &ColumnUseCase{repo: repo, log: logger, now: time.Now}
}

// List returns the board, seeding the default layout on first use and adding
// any stage the workflow transitions rely on.
func (u *ColumnUseCase) List(ctx context.Context) ([]entities.WorkflowColumn, error) {
	stored, err := u.repo.List(ctx)
	if err != nil {
		u.log.Error("[column][usecase] list failed", zap.Error(err))
		return nil, err
	}
	cols := boardColumns(stored)
	if len(cols) != len(stored) {
		u.log.Info("[column][usecase] persisting seeded board", zap.Int("stored", len(stored)), zap.Int("columns", len(cols)))
		if err := u.repo.ReplaceAll(ctx, cols); err != nil {
			u.log.Error("[column][usecase] seed failed", zap.Error(err))
			return nil, err
		}
	}
	return cols, nil
}

func (u *ColumnUseCase) Save(ctx context.Context, cols []entities.WorkflowColumn) ([]entities.WorkflowColumn, error) {
	if len(cols) == 0 {
		return nil, ErrEmptyBoard
	}
	out := make([]entities.WorkflowColumn, len(cols))
	ids := make(map[string]bool, len(cols))
	titles := make(map[string]bool, len(cols))
	for i, c := range cols {
		c.ID = strings.TrimSpace(c.ID)
		c.Title = strings.TrimSpace(c.Title)
		if c.ID == "" {
			return nil, ErrInvalidColumnID
		}
		if c.Title == "" {
			return nil, ErrInvalidColumnTitle
		}
		if ids[c.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumnID, c.ID)
		}
		if titles[c.Title] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumnTitle, c.Title)
		}
		ids[c.ID] = true
		titles[c.Title] = true
		out[i] = c
	}
	if err := u.repo.ReplaceAll(ctx, out); err != nil {
		u.log.Error("[column][usecase] save failed", zap.Error(err))
		return nil, err
	}
	u.log.Info("[column][usecase] board saved", zap.Int("columns", len(out)))
	return out, nil
}

func (u *ColumnUseCase) Add(ctx context.Context, title, color, subtitle string) (entities.WorkflowColumn, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.WorkflowColumn{}, ErrInvalidColumnTitle
	}
	cols, err := u.List(ctx)
	if err != nil {
		return entities.WorkflowColumn{}, err
	}
	for _, c := range cols {
		if c.Title == title {
			return entities.WorkflowColumn{}, fmt.Errorf("%w: %s", ErrDuplicateColumnTitle, title)
		}
	}
	if strings.TrimSpace(color) == "" {
		color = defaultColumnColor
	}
	if strings.TrimSpace(subtitle) == "" {
		subtitle = defaultColumnSubtitle
	}
	col := entities.WorkflowColumn{
		ID:       fmt.Sprintf("col-%d", u.now().UnixMilli()),
		Title:    title,
		Color:    color,
		Subtitle: subtitle,
	}
	if _, err := u.Save(ctx, append(cols, col)); err != nil {
		return entities.WorkflowColumn{}, err
	}
	return col, nil
}

// Rename changes a column title. Orders reference the column by id, so they
// follow the rename without being rewritten.
func (u *ColumnUseCase) Rename(ctx context.Context, id, title string) (entities.WorkflowColumn, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkflowColumn{}, ErrInvalidColumnID
	}
	cols, err := u.List(ctx)
	if err != nil {
		return entities.WorkflowColumn{}, err
	}
	idx := -1
	for i, c := range cols {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.WorkflowColumn{}, ErrColumnNotFound
	}
	cols[idx].Title = title
	saved, err := u.Save(ctx, cols)
	if err != nil {
		return entities.WorkflowColumn{}, err
	}
	return saved[idx], nil
}

// boardColumns applies the default seed and the required-stage migration to
// the stored layout.
func boardColumns(stored []entities.WorkflowColumn) []entities.WorkflowColumn {
	if len(stored) == 0 {
		return workflow.DefaultColumns()
	}
	return workflow.EnsureRequiredColumns(stored)
}
