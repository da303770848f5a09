package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"printdesk/internal/domain/entities"
	mock_interfaces "printdesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2025, 5, 20, 14, 30, 0, 0, time.UTC)

type orderFixture struct {
	uc      *OrderUseCase
	repo    *mock_interfaces.MockIOrderRepository
	columns *mock_interfaces.MockIWorkflowColumnRepository
	locker  *mock_interfaces.MockILocker
}

func newOrderFixture(t *testing.T) orderFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := orderFixture{
		repo:    mock_interfaces.NewMockIOrderRepository(ctrl),
		columns: mock_interfaces.NewMockIWorkflowColumnRepository(ctrl),
		locker:  mock_interfaces.NewMockILocker(ctrl),
	}
	f.columns.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
	f.locker.EXPECT().Lock(gomock.Any(), gomock.Any()).Return(func() {}, nil).AnyTimes()
	f.uc = NewOrderUseCase(f.repo, f.columns, f.locker, zap.NewNop())
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func designingOrder() entities.Order {
	return entities.Order{
		ID:             "ORD-1",
		Customer:       "Ana",
		Status:         entities.StatusDesigning,
		StatusColumnID: "col-3",
		Priority:       entities.PriorityNormal,
		History: []entities.HistoryEntry{
			{Date: fixedNow.Add(-time.Hour), Action: entities.ActionCreated, User: "Admin"},
		},
	}
}

func echoUpdate(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil }

func TestOrderUseCase_MoveOrder(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		f := newOrderFixture(t)
		_, err := f.uc.MoveOrder(context.Background(), entities.AdminActor(), "  ", "col-4")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newOrderFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "ORD-9").Return(entities.Order{}, nil)

		_, err := f.uc.MoveOrder(context.Background(), entities.AdminActor(), "ORD-9", "col-4")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("unknown target does not persist", func(t *testing.T) {
		f := newOrderFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "ORD-1").Return(designingOrder(), nil)

		_, err := f.uc.MoveOrder(context.Background(), entities.AdminActor(), "ORD-1", "Shipping")
		if !errors.Is(err, ErrUnknownWorkflowColumn) {
			t.Fatalf("expected ErrUnknownWorkflowColumn, got %v", err)
		}
	})

	t.Run("moves by title and records actor", func(t *testing.T) {
		f := newOrderFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "ORD-1").Return(designingOrder(), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.StatusColumnID != "col-4" || o.Status != entities.StatusReadyToPrint {
					t.Fatalf("unexpected status: %s/%s", o.StatusColumnID, o.Status)
				}
				if !o.UpdatedAt.Equal(fixedNow) {
					t.Fatalf("expected updatedAt to be set")
				}
				return o, nil
			},
		)

		res, err := f.uc.MoveOrder(context.Background(), entities.NewActor("Maya"), "ORD-1", entities.StatusReadyToPrint)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.History) != 2 {
			t.Fatalf("expected one appended entry, got %d", len(res.History))
		}
		last := res.History[1]
		if last.Action != entities.ActionStatusChange || last.User != "Maya" || last.Details != "Moved from Designing to Ready to Print" {
			t.Fatalf("unexpected entry: %+v", last)
		}
	})

	t.Run("same column is not persisted", func(t *testing.T) {
		f := newOrderFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "ORD-1").Return(designingOrder(), nil)

		res, err := f.uc.MoveOrder(context.Background(), entities.AdminActor(), "ORD-1", "col-3")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.History) != 1 {
			t.Fatalf("history must not grow")
		}
	})

	t.Run("storage failure is returned", func(t *testing.T) {
		f := newOrderFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "ORD-1").Return(designingOrder(), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("disk full"))

		_, err := f.uc.MoveOrder(context.Background(), entities.AdminActor(), "ORD-1", "col-5")
		if err == nil || err.Error() != "disk full" {
			t.Fatalf("expected disk full, got %v", err)
		}
	})

	t.Run("lock failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		locker := mock_interfaces.NewMockILocker(ctrl)
		uc := NewOrderUseCase(mock_interfaces.NewMockIOrderRepository(ctrl), mock_interfaces.NewMockIWorkflowColumnRepository(ctrl), locker, zap.NewNop())
		locker.EXPECT().Lock(gomock.Any(), "order:ORD-1").Return(nil, context.DeadlineExceeded)

		_, err := uc.MoveOrder(context.Background(), entities.AdminActor(), "ORD-1", "col-5")
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected deadline error, got %v", err)
		}
	})
}

func TestOrderUseCase_BulkMove(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		f := newOrderFixture(t)
		if _, err := f.uc.BulkMove(context.Background(), entities.AdminActor(), nil, "col-5"); !errors.Is(err, ErrNoOrdersSelected) {
			t.Fatalf("expected ErrNoOrdersSelected, got %v", err)
		}
		if _, err := f.uc.BulkMove(context.Background(), entities.AdminActor(), []string{"ORD-1"}, "nowhere"); !errors.Is(err, ErrUnknownWorkflowColumn) {
			t.Fatalf("expected ErrUnknownWorkflowColumn, got %v", err)
		}
	})

	t.Run("partial failure reports authoritative state", func(t *testing.T) {
		f := newOrderFixture(t)
		second := designingOrder()
		second.ID = "ORD-2"

		f.repo.EXPECT().GetByID(gomock.Any(), "ORD-1").Return(designingOrder(), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)
		f.repo.EXPECT().GetByID(gomock.Any(), "ORD-2").Return(second, nil).Times(2)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("write failed"))
		f.repo.EXPECT().GetByID(gomock.Any(), "ORD-3").Return(entities.Order{}, nil).Times(2)

		outcomes, err := f.uc.BulkMove(context.Background(), entities.AdminActor(), []string{"ORD-1", "ORD-2", "ORD-3"}, "col-5")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(outcomes) != 3 {
			t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
		}
		if outcomes[0].Status != MoveCommitted || outcomes[0].Order.Status != entities.StatusProduction {
			t.Fatalf("unexpected first outcome: %+v", outcomes[0])
		}
		if outcomes[1].Status != MoveFailed || outcomes[1].Order == nil || outcomes[1].Order.Status != entities.StatusDesigning {
			t.Fatalf("failed outcome must carry stored state: %+v", outcomes[1])
		}
		if outcomes[2].Status != MoveFailed || !errors.Is(outcomes[2].Err, ErrOrderNotFound) || outcomes[2].Order != nil {
			t.Fatalf("unexpected third outcome: %+v", outcomes[2])
		}
	})
}

func TestOrderUseCase_HistoryFollowsTransitions(t *testing.T) {
	f := newOrderFixture(t)
	clock := fixedNow
	f.uc.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	stored := designingOrder()
	f.repo.EXPECT().GetByID(gomock.Any(), "ORD-1").DoAndReturn(
		func(context.Context, string) (entities.Order, error) { return stored.Clone(), nil },
	).AnyTimes()
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o entities.Order) (entities.Order, error) {
			stored = o
			return o, nil
		},
	).AnyTimes()

	ctx := context.Background()
	admin := entities.AdminActor()
	production := "col-5"
	deadline := "2025-06-01"
	steps := []func() error{
		func() error { _, err := f.uc.MoveOrder(ctx, admin, "ORD-1", "col-4"); return err },
		func() error { _, err := f.uc.MoveOrder(ctx, admin, "ORD-1", entities.StatusReadyToPrint); return err },
		func() error {
			_, err := f.uc.UpdateOrder(ctx, admin, "ORD-1", OrderPatch{Status: &production})
			return err
		},
		func() error { _, err := f.uc.UpdateOrder(ctx, admin, "ORD-1", OrderPatch{Deadline: &deadline}); return err },
		func() error { _, err := f.uc.MoveOrder(ctx, entities.NewActor("Maya"), "ORD-1", entities.StatusFinishing); return err },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: unexpected error: %v", i, err)
		}
	}

	want := []string{
		"Moved from Designing to Ready to Print",
		"Moved from Ready to Print to Production",
		"Moved from Production to Finishing",
	}
	h := stored.History
	if len(h) != 1+len(want) {
		t.Fatalf("expected %d entries, got %d: %+v", 1+len(want), len(h), h)
	}
	for i, details := range want {
		entry := h[1+i]
		if entry.Action != entities.ActionStatusChange || entry.Details != details {
			t.Fatalf("entry %d: expected %q, got %+v", 1+i, details, entry)
		}
	}
	for i := 1; i < len(h); i++ {
		if h[i].Date.Before(h[i-1].Date) {
			t.Fatalf("history dates must not go backwards: %+v", h)
		}
	}
	if h[len(h)-1].User != "Maya" || stored.Status != entities.StatusFinishing {
		t.Fatalf("unexpected final state: %s %+v", stored.Status, h[len(h)-1])
	}
}

func TestOrderUseCase_UpdateOrder(t *testing.T) {
	t.Run("status change appends exactly one entry", func(t *testing.T) {
		f := newOrderFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "ORD-1").Return(designingOrder(), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		status := "col-6"
		urgent := entities.PriorityUrgent
		res, err := f.uc.UpdateOrder(context.Background(), entities.AdminActor(), "ORD-1", OrderPatch{Status: &status, Priority: &urgent})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusFinishing || res.Priority != entities.PriorityUrgent {
			t.Fatalf("unexpected order: %+v", res)
		}
		if len(res.History) != 2 || res.History[0].Action != entities.ActionCreated {
			t.Fatalf("history must keep old entries and grow by one: %+v", res.History)
		}
	})

	t.Run("non-status changes append nothing", func(t *testing.T) {
		f := newOrderFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "ORD-1").Return(designingOrder(), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		deadline := "2025-06-01"
		same := entities.StatusDesigning
		res, err := f.uc.UpdateOrder(context.Background(), entities.AdminActor(), "ORD-1", OrderPatch{Deadline: &deadline, Status: &same})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Deadline != deadline || len(res.History) != 1 {
			t.Fatalf("unexpected order: %+v", res)
		}
	})

	t.Run("validation happens before locking", func(t *testing.T) {
		f := newOrderFixture(t)
		bad := entities.Priority("Whenever")
		if _, err := f.uc.UpdateOrder(context.Background(), entities.AdminActor(), "ORD-1", OrderPatch{Priority: &bad}); !errors.Is(err, ErrInvalidOrderPriority) {
			t.Fatalf("expected ErrInvalidOrderPriority, got %v", err)
		}
		neg := -1.0
		if _, err := f.uc.UpdateOrder(context.Background(), entities.AdminActor(), "ORD-1", OrderPatch{Total: &neg}); !errors.Is(err, ErrInvalidOrderTotal) {
			t.Fatalf("expected ErrInvalidOrderTotal, got %v", err)
		}
	})
}

func TestOrderUseCase_Proofs(t *testing.T) {
	t.Run("upload assigns next version", func(t *testing.T) {
		f := newOrderFixture(t)
		stored := designingOrder()
		stored.Proofs = []entities.Proof{{ID: "p1", Version: 1, Status: entities.ProofStatusRejected}}
		stored.FileStatus = entities.FileStatusIssue
		f.repo.EXPECT().GetByID(gomock.Any(), "ORD-1").Return(stored, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		res, err := f.uc.UploadProof(context.Background(), entities.AdminActor(), "ORD-1", "https://cdn/p2.png", "v2 with bleed")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Proofs) != 2 || res.Proofs[1].Version != 2 || res.Proofs[1].ID == "" {
			t.Fatalf("unexpected proofs: %+v", res.Proofs)
		}
		if res.Status != entities.StatusWaitingCustomer || res.FileStatus != entities.FileStatusIssue {
			t.Fatalf("unexpected order state: %s %s", res.Status, res.FileStatus)
		}
		if got := res.History[len(res.History)-1].Details; got != "Proof v2 sent - Waiting confirmation." {
			t.Fatalf("unexpected details %q", got)
		}
	})

	t.Run("upload needs an image", func(t *testing.T) {
		f := newOrderFixture(t)
		if _, err := f.uc.UploadProof(context.Background(), entities.AdminActor(), "ORD-1", " ", ""); !errors.Is(err, ErrProofImageRequired) {
			t.Fatalf("expected ErrProofImageRequired, got %v", err)
		}
	})

	t.Run("reject moves to refining and feeds back the reason", func(t *testing.T) {
		f := newOrderFixture(t)
		stored := designingOrder()
		stored.Status = entities.StatusWaitingCustomer
		stored.StatusColumnID = "col-wait"
		stored.Proofs = []entities.Proof{{ID: "p1", Version: 1, Status: entities.ProofStatusPending}}
		f.repo.EXPECT().GetByID(gomock.Any(), "ORD-1").Return(stored, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		res, err := f.uc.RespondToProof(context.Background(), "ORD-1", false, "Logo too small")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusRefining || res.Proofs[0].CustomerComment != "Logo too small" {
			t.Fatalf("unexpected order: %+v", res)
		}

		f.repo.EXPECT().GetByID(gomock.Any(), "ORD-1").Return(res, nil)
		feedback, err := f.uc.RefiningFeedback(context.Background(), "ORD-1")
		if err != nil || feedback != "Logo too small" {
			t.Fatalf("unexpected feedback %q err=%v", feedback, err)
		}
	})

	t.Run("reject without reason", func(t *testing.T) {
		f := newOrderFixture(t)
		if _, err := f.uc.RespondToProof(context.Background(), "ORD-1", false, ""); !errors.Is(err, ErrRejectReasonRequired) {
			t.Fatalf("expected ErrRejectReasonRequired, got %v", err)
		}
	})

	t.Run("approve without pending proof", func(t *testing.T) {
		f := newOrderFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "ORD-1").Return(designingOrder(), nil)
		if _, err := f.uc.RespondToProof(context.Background(), "ORD-1", true, ""); !errors.Is(err, ErrNoPendingProof) {
			t.Fatalf("expected ErrNoPendingProof, got %v", err)
		}
	})
}

func TestOrderUseCase_Issues(t *testing.T) {
	t.Run("report puts the order on hold", func(t *testing.T) {
		f := newOrderFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "ORD-1").Return(designingOrder(), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		res, err := f.uc.ReportIssue(context.Background(), entities.AdminActor(), "ORD-1", entities.IssueMisprint, "Colour shift")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.HasActiveIssue() || res.Status != entities.StatusIssueOnHold || !res.Issue.ReportedAt.Equal(fixedNow) {
			t.Fatalf("unexpected order: %+v", res)
		}
	})

	t.Run("resolve keeps status", func(t *testing.T) {
		f := newOrderFixture(t)
		stored := designingOrder()
		stored.Status = entities.StatusIssueOnHold
		stored.StatusColumnID = "col-8"
		stored.Issue = &entities.Issue{Type: entities.IssueMachine, Description: "jam", Active: true}
		f.repo.EXPECT().GetByID(gomock.Any(), "ORD-1").Return(stored, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		res, err := f.uc.ResolveIssue(context.Background(), entities.AdminActor(), "ORD-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.HasActiveIssue() || res.Status != entities.StatusIssueOnHold {
			t.Fatalf("unexpected order: %+v", res)
		}
		if !stored.Issue.Active {
			t.Fatalf("stored order must not be mutated in place")
		}
	})

	t.Run("resolve without issue", func(t *testing.T) {
		f := newOrderFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "ORD-1").Return(designingOrder(), nil)
		if _, err := f.uc.ResolveIssue(context.Background(), entities.AdminActor(), "ORD-1"); !errors.Is(err, ErrNoActiveIssue) {
			t.Fatalf("expected ErrNoActiveIssue, got %v", err)
		}
	})

	t.Run("report needs a description", func(t *testing.T) {
		f := newOrderFixture(t)
		if _, err := f.uc.ReportIssue(context.Background(), entities.AdminActor(), "ORD-1", entities.IssueOther, " "); !errors.Is(err, ErrIssueDescription) {
			t.Fatalf("expected ErrIssueDescription, got %v", err)
		}
	})
}

func TestOrderUseCase_CreateOrder(t *testing.T) {
	t.Run("customer required", func(t *testing.T) {
		f := newOrderFixture(t)
		if _, err := f.uc.CreateOrder(context.Background(), entities.AdminActor(), entities.Order{}); !errors.Is(err, ErrInvalidOrderCustomer) {
			t.Fatalf("expected ErrInvalidOrderCustomer, got %v", err)
		}
	})

	t.Run("already exists", func(t *testing.T) {
		f := newOrderFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "ORD-1").Return(designingOrder(), nil)
		_, err := f.uc.CreateOrder(context.Background(), entities.AdminActor(), entities.Order{ID: "ORD-1", Customer: "Ana"})
		if !errors.Is(err, ErrOrderAlreadyExists) {
			t.Fatalf("expected ErrOrderAlreadyExists, got %v", err)
		}
	})

	t.Run("defaults and created entry", func(t *testing.T) {
		f := newOrderFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "ORD-1747751400000").Return(entities.Order{}, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)

		in := entities.Order{
			Customer: " Ana ",
			Total:    80,
			History:  []entities.HistoryEntry{{Action: "Forged"}},
		}
		res, err := f.uc.CreateOrder(context.Background(), entities.AdminActor(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "ORD-1747751400000" || res.Customer != "Ana" {
			t.Fatalf("unexpected identity: %+v", res)
		}
		if res.Status != entities.StatusNewOrder || res.StatusColumnID != "col-1" || res.Priority != entities.PriorityNormal {
			t.Fatalf("unexpected defaults: %+v", res)
		}
		if res.FileStatus != entities.FileStatusPending || res.PaymentStatus != entities.OrderPaymentUnpaid {
			t.Fatalf("unexpected statuses: %+v", res)
		}
		if len(res.History) != 1 || res.History[0].Action != entities.ActionCreated {
			t.Fatalf("client history must be replaced by the created entry: %+v", res.History)
		}
	})
}

func TestOrderUseCase_ListAndBoard(t *testing.T) {
	orders := []entities.Order{
		{ID: "a", Status: entities.StatusDesigning, StatusColumnID: "col-3"},
		{ID: "b", Status: entities.StatusProduction},
		{ID: "c", Status: "Retired Stage"},
	}

	t.Run("filter by column", func(t *testing.T) {
		f := newOrderFixture(t)
		f.repo.EXPECT().List(gomock.Any()).Return(orders, nil)

		res, err := f.uc.ListOrders(context.Background(), entities.StatusProduction)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "b" || res[0].StatusColumnID != "col-5" {
			t.Fatalf("unexpected orders: %+v", res)
		}
	})

	t.Run("unknown filter", func(t *testing.T) {
		f := newOrderFixture(t)
		if _, err := f.uc.ListOrders(context.Background(), "Archive"); !errors.Is(err, ErrUnknownWorkflowColumn) {
			t.Fatalf("expected ErrUnknownWorkflowColumn, got %v", err)
		}
	})

	t.Run("board reports orphans", func(t *testing.T) {
		f := newOrderFixture(t)
		f.repo.EXPECT().List(gomock.Any()).Return(orders, nil)

		b, err := f.uc.Board(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(b.Lanes) != 10 {
			t.Fatalf("expected default lanes, got %d", len(b.Lanes))
		}
		if len(b.Orphaned) != 1 || b.Orphaned[0].ID != "c" {
			t.Fatalf("unexpected orphans: %+v", b.Orphaned)
		}
	})
}

func TestOrderUseCase_DeleteOrder(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newOrderFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "ORD-1").Return(entities.Order{}, nil)
		if err := f.uc.DeleteOrder(context.Background(), "ORD-1"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newOrderFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "ORD-1").Return(designingOrder(), nil)
		f.repo.EXPECT().Delete(gomock.Any(), "ORD-1").Return(nil)
		if err := f.uc.DeleteOrder(context.Background(), " ORD-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
