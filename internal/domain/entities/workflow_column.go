package entities

// WorkflowColumn is a configurable stage of the production board.
//
// Orders reference a column by ID (StatusColumnID); Title is the display
// status and is resolved through the column list on read.
type WorkflowColumn struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Color    string `json:"color"`
	Subtitle string `json:"subtitle,omitempty"`
}

// Canonical stage titles the workflow transitions target directly.
const (
	StatusNewOrder        = "New Order"
	StatusArtworkChecking = "Artwork Checking"
	StatusDesigning       = "Designing"
	StatusRefining        = "Refining"
	StatusWaitingCustomer = "Waiting Customer Confirmation"
	StatusReadyToPrint    = "Ready to Print"
	StatusProduction      = "Production"
	StatusFinishing       = "Finishing"
	StatusCompleted       = "Completed / Ready"
	StatusIssueOnHold     = "Issue / On Hold"
)
