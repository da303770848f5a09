package workflow

import (
	"strings"

	"printdesk/internal/domain/entities"
)

// DefaultColumns is the board seed used when no columns are stored.
func DefaultColumns() []entities.WorkflowColumn {
	return []entities.WorkflowColumn{
		{ID: "col-1", Title: entities.StatusNewOrder, Color: "bg-gray-500", Subtitle: "Web & Manual Orders"},
		{ID: "col-2", Title: entities.StatusArtworkChecking, Color: "bg-red-400", Subtitle: "DPI / Bleed Check"},
		{ID: "col-3", Title: entities.StatusDesigning, Color: "bg-pink-400", Subtitle: "Design Proofing"},
		{ID: "col-revise", Title: entities.StatusRefining, Color: "bg-orange-500", Subtitle: "Artwork Changes"},
		{ID: "col-wait", Title: entities.StatusWaitingCustomer, Color: "bg-amber-400", Subtitle: "Proof Sent"},
		{ID: "col-4", Title: entities.StatusReadyToPrint, Color: "bg-blue-500", Subtitle: "Handover Zone"},
		{ID: "col-5", Title: entities.StatusProduction, Color: "bg-indigo-500", Subtitle: "Printing & RIP"},
		{ID: "col-6", Title: entities.StatusFinishing, Color: "bg-purple-500", Subtitle: "Cutting, Lamination"},
		{ID: "col-7", Title: entities.StatusCompleted, Color: "bg-green-500", Subtitle: "QC Passed, Cleanup"},
		{ID: "col-8", Title: entities.StatusIssueOnHold, Color: "bg-red-600", Subtitle: "Production Issues"},
	}
}

// EnsureRequiredColumns adds the stages the workflow transitions target when a
// stored board predates them. Missing stages are inserted after their
// predecessor, or appended when the predecessor is gone too.
func EnsureRequiredColumns(cols []entities.WorkflowColumn) []entities.WorkflowColumn {
	out := append([]entities.WorkflowColumn(nil), cols...)
	out = ensureColumn(out, entities.WorkflowColumn{ID: "col-issue", Title: entities.StatusIssueOnHold, Color: "bg-red-600", Subtitle: "Production Issues"}, "")
	out = ensureColumn(out, entities.WorkflowColumn{ID: "col-revise", Title: entities.StatusRefining, Color: "bg-orange-500", Subtitle: "Artwork Changes"}, entities.StatusDesigning)
	out = ensureColumn(out, entities.WorkflowColumn{ID: "col-wait", Title: entities.StatusWaitingCustomer, Color: "bg-amber-400", Subtitle: "Proof Sent"}, entities.StatusRefining)
	return out
}

func ensureColumn(cols []entities.WorkflowColumn, col entities.WorkflowColumn, afterTitle string) []entities.WorkflowColumn {
	for _, c := range cols {
		if c.Title == col.Title {
			return cols
		}
	}
	for _, c := range cols {
		if c.ID == col.ID {
			col.ID = col.ID + "-" + strings.ToLower(strings.ReplaceAll(col.Title, " ", "-"))
			break
		}
	}
	if afterTitle != "" {
		for i, c := range cols {
			if c.Title == afterTitle {
				out := make([]entities.WorkflowColumn, 0, len(cols)+1)
				out = append(out, cols[:i+1]...)
				out = append(out, col)
				return append(out, cols[i+1:]...)
			}
		}
	}
	return append(cols, col)
}

// Resolver maps column ids and titles to columns.
type Resolver struct {
	columns []entities.WorkflowColumn
	byID    map[string]entities.WorkflowColumn
	byTitle map[string]entities.WorkflowColumn
}

func NewResolver(cols []entities.WorkflowColumn) Resolver {
	r := Resolver{
		columns: cols,
		byID:    make(map[string]entities.WorkflowColumn, len(cols)),
		byTitle: make(map[string]entities.WorkflowColumn, len(cols)),
	}
	for _, c := range cols {
		r.byID[c.ID] = c
		if _, dup := r.byTitle[c.Title]; !dup {
			r.byTitle[c.Title] = c
		}
	}
	return r
}

func (r Resolver) Columns() []entities.WorkflowColumn { return r.columns }

// Resolve finds a column by id first, then by exact title.
func (r Resolver) Resolve(target string) (entities.WorkflowColumn, bool) {
	target = strings.TrimSpace(target)
	if c, ok := r.byID[target]; ok {
		return c, true
	}
	c, ok := r.byTitle[target]
	return c, ok
}

// ColumnFor returns the column an order sits in. Orders written before column
// ids existed are matched on their status title.
func (r Resolver) ColumnFor(o entities.Order) (entities.WorkflowColumn, bool) {
	if o.StatusColumnID != "" {
		if c, ok := r.byID[o.StatusColumnID]; ok {
			return c, true
		}
	}
	c, ok := r.byTitle[o.Status]
	return c, ok
}

// Normalize refreshes the display status of o from its column and back-fills
// the column id of legacy orders.
func (r Resolver) Normalize(o *entities.Order) {
	if c, ok := r.ColumnFor(*o); ok {
		o.StatusColumnID = c.ID
		o.Status = c.Title
	}
}

// Stage returns the column for a canonical stage title. When the board no
// longer has it the order still carries the title, without a column id.
func (r Resolver) Stage(title string) entities.WorkflowColumn {
	if c, ok := r.byTitle[title]; ok {
		return c
	}
	return entities.WorkflowColumn{Title: title}
}

// Lane is one board column with the orders currently in it.
type Lane struct {
	Column entities.WorkflowColumn `json:"column"`
	Orders []entities.Order        `json:"orders"`
}

// Board groups orders by column. Orders whose column cannot be resolved are
// returned separately instead of disappearing from the board.
type Board struct {
	Lanes    []Lane           `json:"lanes"`
	Orphaned []entities.Order `json:"orphaned"`
}

func (r Resolver) Board(orders []entities.Order) Board {
	b := Board{Lanes: make([]Lane, len(r.columns)), Orphaned: []entities.Order{}}
	index := make(map[string]int, len(r.columns))
	for i, c := range r.columns {
		b.Lanes[i] = Lane{Column: c, Orders: []entities.Order{}}
		index[c.ID] = i
	}
	for _, o := range orders {
		c, ok := r.ColumnFor(o)
		if !ok {
			b.Orphaned = append(b.Orphaned, o)
			continue
		}
		r.Normalize(&o)
		i := index[c.ID]
		b.Lanes[i].Orders = append(b.Lanes[i].Orders, o)
	}
	return b
}
