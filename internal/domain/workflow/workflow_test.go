package workflow

import (
	"errors"
	"testing"
	"time"

	"printdesk/internal/domain/entities"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newOrder() entities.Order {
	return entities.Order{
		ID:             "ORD-1",
		Status:         entities.StatusDesigning,
		StatusColumnID: "col-3",
		History:        []entities.HistoryEntry{{Action: entities.ActionCreated}},
	}
}

func TestMove(t *testing.T) {
	r := NewResolver(DefaultColumns())
	admin := entities.AdminActor()

	t.Run("appends one entry when status changes", func(t *testing.T) {
		o := newOrder()
		col, _ := r.Resolve("col-5")
		if !Move(&o, col, admin, testNow) {
			t.Fatalf("expected change")
		}
		if o.Status != entities.StatusProduction || o.StatusColumnID != "col-5" {
			t.Fatalf("unexpected state: %s / %s", o.Status, o.StatusColumnID)
		}
		if len(o.History) != 2 {
			t.Fatalf("expected 2 history entries, got %d", len(o.History))
		}
		last := o.History[1]
		if last.Action != entities.ActionStatusChange || last.Details != "Moved from Designing to Production" || last.User != "Admin" {
			t.Fatalf("unexpected entry: %+v", last)
		}
	})

	t.Run("same column is a no-op", func(t *testing.T) {
		o := newOrder()
		col, _ := r.Resolve(entities.StatusDesigning)
		if Move(&o, col, admin, testNow) {
			t.Fatalf("expected no change")
		}
		if len(o.History) != 1 {
			t.Fatalf("history must not grow")
		}
	})
}

func TestMove_Sequence(t *testing.T) {
	r := NewResolver(DefaultColumns())
	admin := entities.AdminActor()
	o := newOrder()

	targets := []string{"col-4", "col-4", entities.StatusProduction, "col-8", entities.StatusProduction}
	for i, target := range targets {
		col, ok := r.Resolve(target)
		if !ok {
			t.Fatalf("unresolved target %q", target)
		}
		Move(&o, col, admin, testNow.Add(time.Duration(i)*time.Minute))
	}

	want := []string{
		"Moved from Designing to Ready to Print",
		"Moved from Ready to Print to Production",
		"Moved from Production to Issue / On Hold",
		"Moved from Issue / On Hold to Production",
	}
	if len(o.History) != 1+len(want) {
		t.Fatalf("expected %d entries, got %d", 1+len(want), len(o.History))
	}
	for i, details := range want {
		if got := o.History[1+i].Details; got != details {
			t.Fatalf("entry %d: expected %q, got %q", 1+i, details, got)
		}
		if i > 0 && o.History[1+i].Date.Before(o.History[i].Date) {
			t.Fatalf("history dates must not go backwards")
		}
	}
}

func TestProofLifecycle(t *testing.T) {
	r := NewResolver(DefaultColumns())
	admin := entities.AdminActor()
	o := newOrder()
	o.FileStatus = entities.FileStatusPending

	for i := 1; i <= 3; i++ {
		p, err := SendProof(&o, r, "p", "https://cdn/proof.png", "", admin, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Version != i {
			t.Fatalf("expected version %d, got %d", i, p.Version)
		}
		if i < 3 {
			if err := RespondToProof(&o, r, false, "bigger logo", testNow); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
	}
	if o.Status != entities.StatusWaitingCustomer || o.StatusColumnID != "col-wait" {
		t.Fatalf("expected waiting status, got %s", o.Status)
	}
	if o.FileStatus != entities.FileStatusPending {
		t.Fatalf("proofs must not touch file status, got %q", o.FileStatus)
	}
	if got := o.LastHistory(entities.ActionProofSent).Details; got != "Proof v3 sent - Waiting confirmation." {
		t.Fatalf("unexpected details: %q", got)
	}
	if got := RefiningFeedback(o); got != "bigger logo" {
		t.Fatalf("unexpected feedback: %q", got)
	}

	if err := RespondToProof(&o, r, true, "", testNow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Status != entities.StatusReadyToPrint {
		t.Fatalf("expected ready to print, got %s", o.Status)
	}
	if o.Proofs[2].Status != entities.ProofStatusApproved || o.Proofs[2].RespondedAt == nil {
		t.Fatalf("latest proof not approved: %+v", o.Proofs[2])
	}
	last := o.History[len(o.History)-1]
	if last.User != "Customer" || last.Details != "Approved by Customer" {
		t.Fatalf("unexpected entry: %+v", last)
	}
	if got := RefiningFeedback(o); got != "" {
		t.Fatalf("approval is not feedback, got %q", got)
	}
	// 1 created + 3 sent + 3 responses
	if len(o.History) != 7 {
		t.Fatalf("expected 7 history entries, got %d", len(o.History))
	}

	if err := RespondToProof(&o, r, true, "", testNow); !errors.Is(err, ErrNoPendingProof) {
		t.Fatalf("expected ErrNoPendingProof, got %v", err)
	}
}

func TestRespondToProof_RejectNeedsReason(t *testing.T) {
	r := NewResolver(DefaultColumns())
	o := newOrder()
	_, _ = SendProof(&o, r, "p", "img", "", entities.AdminActor(), testNow)
	before := len(o.History)
	if err := RespondToProof(&o, r, false, "  ", testNow); !errors.Is(err, ErrRejectReason) {
		t.Fatalf("expected ErrRejectReason, got %v", err)
	}
	if len(o.History) != before || o.Proofs[0].Status != entities.ProofStatusPending {
		t.Fatalf("failed response must not mutate the order")
	}
}

func TestIssues(t *testing.T) {
	r := NewResolver(DefaultColumns())
	admin := entities.AdminActor()

	t.Run("report then resolve keeps the hold status", func(t *testing.T) {
		o := newOrder()
		if err := ReportIssue(&o, r, entities.IssueMachine, "head clog", admin, testNow); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !o.HasActiveIssue() || o.Status != entities.StatusIssueOnHold {
			t.Fatalf("expected active issue on hold, got %+v", o)
		}
		if err := ResolveIssue(&o, admin, testNow); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.HasActiveIssue() {
			t.Fatalf("issue must be inactive")
		}
		if o.Status != entities.StatusIssueOnHold {
			t.Fatalf("resolve must not restore status, got %s", o.Status)
		}
		if o.History[len(o.History)-1].Action != entities.ActionIssueResolved {
			t.Fatalf("expected resolved entry")
		}
	})

	t.Run("validation", func(t *testing.T) {
		o := newOrder()
		if err := ReportIssue(&o, r, entities.IssueOther, "", admin, testNow); !errors.Is(err, ErrIssueDescription) {
			t.Fatalf("expected ErrIssueDescription, got %v", err)
		}
		if err := ReportIssue(&o, r, "Gremlins", "x", admin, testNow); !errors.Is(err, ErrInvalidIssueType) {
			t.Fatalf("expected ErrInvalidIssueType, got %v", err)
		}
		if err := ResolveIssue(&o, admin, testNow); !errors.Is(err, ErrNoActiveIssue) {
			t.Fatalf("expected ErrNoActiveIssue, got %v", err)
		}
		if len(o.History) != 1 {
			t.Fatalf("history must not grow on validation errors")
		}
	})

	t.Run("status changes keep the issue flag", func(t *testing.T) {
		o := newOrder()
		_ = ReportIssue(&o, r, entities.IssueMaterial, "out of vinyl", admin, testNow)
		col, _ := r.Resolve(entities.StatusProduction)
		Move(&o, col, admin, testNow)
		if !o.HasActiveIssue() {
			t.Fatalf("moving must not clear the issue")
		}
	})
}

func TestEnsureRequiredColumns(t *testing.T) {
	legacy := []entities.WorkflowColumn{
		{ID: "col-1", Title: entities.StatusNewOrder},
		{ID: "col-3", Title: entities.StatusDesigning},
		{ID: "col-4", Title: entities.StatusReadyToPrint},
	}
	cols := EnsureRequiredColumns(legacy)
	want := []string{entities.StatusNewOrder, entities.StatusDesigning, entities.StatusRefining, entities.StatusWaitingCustomer, entities.StatusReadyToPrint, entities.StatusIssueOnHold}
	if len(cols) != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), len(cols))
	}
	for i, title := range want {
		if cols[i].Title != title {
			t.Fatalf("column %d: expected %q, got %q", i, title, cols[i].Title)
		}
	}
	if len(legacy) != 3 {
		t.Fatalf("input must not be modified")
	}
	if got := EnsureRequiredColumns(DefaultColumns()); len(got) != len(DefaultColumns()) {
		t.Fatalf("default board already has every required column")
	}
}

func TestResolver_Board(t *testing.T) {
	cols := DefaultColumns()
	cols[2].Title = "Design Studio"
	r := NewResolver(cols)

	orders := []entities.Order{
		{ID: "a", Status: entities.StatusDesigning, StatusColumnID: "col-3"},
		{ID: "b", Status: entities.StatusProduction},
		{ID: "c", Status: "Archived"},
	}
	b := r.Board(orders)
	if len(b.Lanes) != len(cols) {
		t.Fatalf("expected a lane per column")
	}
	if got := b.Lanes[2].Orders; len(got) != 1 || got[0].Status != "Design Studio" {
		t.Fatalf("renamed column must keep its orders, got %+v", got)
	}
	var production Lane
	for _, l := range b.Lanes {
		if l.Column.Title == entities.StatusProduction {
			production = l
		}
	}
	if len(production.Orders) != 1 || production.Orders[0].StatusColumnID != "col-5" {
		t.Fatalf("legacy order must match by title, got %+v", production.Orders)
	}
	if len(b.Orphaned) != 1 || b.Orphaned[0].ID != "c" {
		t.Fatalf("expected one orphaned order, got %+v", b.Orphaned)
	}
}
