package entities

import "time"

type Priority string

const (
	PriorityNormal Priority = "Normal"
	PriorityUrgent Priority = "Urgent"
)

type FileStatus string

const (
	FileStatusPending  FileStatus = "pending"
	FileStatusReceived FileStatus = "received"
	FileStatusIssue    FileStatus = "issue"
	FileStatusOK       FileStatus = "ok"
)

type OrderPaymentStatus string

const (
	OrderPaymentUnpaid  OrderPaymentStatus = "Unpaid"
	OrderPaymentPaid    OrderPaymentStatus = "Paid"
	OrderPaymentPartial OrderPaymentStatus = "Partial"
)

type ProofStatus string

const (
	ProofStatusPending  ProofStatus = "pending"
	ProofStatusApproved ProofStatus = "approved"
	ProofStatusRejected ProofStatus = "rejected"
)

type IssueType string

const (
	IssueMisprint IssueType = "Misprint"
	IssueMachine  IssueType = "Machine"
	IssueMaterial IssueType = "Material"
	IssueArtwork  IssueType = "Artwork"
	IssueOther    IssueType = "Other"
)

// Valid reports whether t is one of the known issue types.
func (t IssueType) Valid() bool {
	switch t {
	case IssueMisprint, IssueMachine, IssueMaterial, IssueArtwork, IssueOther:
		return true
	}
	return false
}

// History actions.
const (
	ActionCreated               = "Created"
	ActionStatusChange          = "Status Change"
	ActionProofSent             = "Proof Sent"
	ActionCustomerProofResponse = "Customer Proof Response"
	ActionIssueReported         = "Issue Reported"
	ActionIssueResolved         = "Issue Resolved"
)

// ChangesRequestedPrefix prefixes the details of a rejected proof response.
const ChangesRequestedPrefix = "Changes Requested: "

type OrderSpecs struct {
	ProductName string `json:"productName"`
	Size        string `json:"size"`
	Material    string `json:"material"`
	Quantity    int    `json:"quantity"`
	Department  string `json:"department"`
	PrintSide   string `json:"printSide,omitempty"`
	Finishing   string `json:"finishing,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

type Proof struct {
	ID              string      `json:"id"`
	Version         int         `json:"version"`
	ImageURL        string      `json:"imageUrl"`
	Status          ProofStatus `json:"status"`
	AdminComment    string      `json:"adminComment"`
	CustomerComment string      `json:"customerComment"`
	CreatedAt       time.Time   `json:"createdAt"`
	RespondedAt     *time.Time  `json:"respondedAt,omitempty"`
}

type Issue struct {
	Type        IssueType `json:"type"`
	Description string    `json:"description"`
	ReportedAt  time.Time `json:"reportedAt"`
	Active      bool      `json:"active"`
}

type HistoryEntry struct {
	Date    time.Time `json:"date"`
	Action  string    `json:"action"`
	Details string    `json:"details,omitempty"`
	User    string    `json:"user,omitempty"`
}

// Order is a production job on the workflow board.
//
// Invariants:
//   - History only grows; every status change and proof action appends one entry.
//   - Proof versions are assigned len(Proofs)+1 and never reused.
//   - Issue.Active and Status are independent.
type Order struct {
	ID             string             `json:"id"`
	Customer       string             `json:"customer"`
	Phone          string             `json:"phone"`
	Email          string             `json:"email,omitempty"`
	Total          float64            `json:"total"`
	Status         string             `json:"status"`
	StatusColumnID string             `json:"statusColumnId,omitempty"`
	Priority       Priority           `json:"priority"`
	Deadline       string             `json:"deadline"`
	Source         string             `json:"source,omitempty"`
	InvoiceNo      string             `json:"invoiceNo,omitempty"`
	Specs          OrderSpecs         `json:"specs"`
	FileStatus     FileStatus         `json:"fileStatus,omitempty"`
	Proofs         []Proof            `json:"proofs,omitempty"`
	Issue          *Issue             `json:"issue,omitempty"`
	History        []HistoryEntry     `json:"history"`
	PaymentStatus  OrderPaymentStatus `json:"paymentStatus,omitempty"`
	PaymentMethod  string             `json:"paymentMethod,omitempty"`
	AgentID        string             `json:"agentId,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// AppendHistory records an entry performed by actor at now.
func (o *Order) AppendHistory(now time.Time, actor Actor, action, details string) {
	o.History = append(o.History, HistoryEntry{
		Date:    now,
		Action:  action,
		Details: details,
		User:    actor.Name,
	})
}

// LastHistory returns the most recent entry with the given action, or nil.
func (o Order) LastHistory(action string) *HistoryEntry {
	for i := len(o.History) - 1; i >= 0; i-- {
		if o.History[i].Action == action {
			return &o.History[i]
		}
	}
	return nil
}

// HasActiveIssue reports whether a production issue is currently flagged.
func (o Order) HasActiveIssue() bool {
	return o.Issue != nil && o.Issue.Active
}

// Clone returns a deep copy so mutations can be applied before persistence.
func (o Order) Clone() Order {
	c := o
	if o.Proofs != nil {
		c.Proofs = append([]Proof(nil), o.Proofs...)
	}
	if o.History != nil {
		c.History = append([]HistoryEntry(nil), o.History...)
	}
	if o.Issue != nil {
		issue := *o.Issue
		c.Issue = &issue
	}
	return c
}
