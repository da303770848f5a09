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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderAlreadyExists    = errors.New("order already exists")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidOrderCustomer  = errors.New("order customer is required")
	ErrInvalidOrderPriority  = errors.New("invalid order priority")
	ErrInvalidOrderTotal     = errors.New("order total must not be negative")
	ErrNoOrdersSelected      = errors.New("no orders selected")
	ErrUnknownWorkflowColumn = workflow.ErrUnknownColumn
	ErrNoPendingProof        = workflow.ErrNoPendingProof
	ErrRejectReasonRequired  = workflow.ErrRejectReason
	ErrIssueDescription      = workflow.ErrIssueDescription
	ErrInvalidIssueType      = workflow.ErrInvalidIssueType
	ErrNoActiveIssue         = workflow.ErrNoActiveIssue
	ErrProofImageRequired    = workflow.ErrProofImageRequired

	errNoChange = errors.New("no change")
)

// MoveStatus is the outcome of one order in a bulk move.
type MoveStatus string

const (
	MoveCommitted MoveStatus = "committed"
	MoveFailed    MoveStatus = "failed"
)

// MoveOutcome reports what happened to one order of a bulk move. Order is the
// committed state, or the state re-read from storage after a failure (nil when
// that re-read failed too).
type MoveOutcome struct {
	OrderID string
	Status  MoveStatus
	Order   *entities.Order
	Err     error
}

// OrderPatch is a partial order update. Nil fields are left untouched.
// Status accepts a column id or title.
type OrderPatch struct {
	Customer      *string
	Phone         *string
	Email         *string
	Total         *float64
	Status        *string
	Priority      *entities.Priority
	Deadline      *string
	Specs         *entities.OrderSpecs
	FileStatus    *entities.FileStatus
	PaymentStatus *entities.OrderPaymentStatus
	PaymentMethod *string
	AgentID       *string
}

// IOrderUseCase drives orders through the production workflow.
//
// Every mutation runs under a per-order lock as load, apply, persist; the
// returned order is what storage accepted. History is append-only.
type IOrderUseCase interface {
	CreateOrder(ctx context.Context, actor entities.Actor, o entities.Order) (entities.Order, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	ListOrders(ctx context.Context, column string) ([]entities.Order, error)
	UpdateOrder(ctx context.Context, actor entities.Actor, id string, patch OrderPatch) (entities.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	MoveOrder(ctx context.Context, actor entities.Actor, id, target string) (entities.Order, error)
	BulkMove(ctx context.Context, actor entities.Actor, ids []string, target string) ([]MoveOutcome, error)
	UploadProof(ctx context.Context, actor entities.Actor, id, imageURL, comment string) (entities.Order, error)
	RespondToProof(ctx context.Context, id string, approve bool, reason string) (entities.Order, error)
	RefiningFeedback(ctx context.Context, id string) (string, error)
	ReportIssue(ctx context.Context, actor entities.Actor, id string, issueType entities.IssueType, description string) (entities.Order, error)
	ResolveIssue(ctx context.Context, actor entities.Actor, id string) (entities.Order, error)
	Board(ctx context.Context) (workflow.Board, error)
}

type OrderUseCase struct {
	repo    interfaces.IOrderRepository
	columns interfaces.IWorkflowColumnRepository
	locker  interfaces.ILocker
	log     *zap.Logger
	now     func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, columns interfaces.IWorkflowColumnRepository, locker interfaces.ILocker, logger *zap.Logger) *OrderUseCase {
	return &OrderUseCase{repo: repo, columns: columns, locker: locker, log: logger, now: time.Now}
}

func orderLockKey(id string) string { return "order:" + id }

func (u *OrderUseCase) resolver(ctx context.Context) (workflow.Resolver, error) {
	stored, err := u.columns.List(ctx)
	if err != nil {
		u.log.Error("[order][usecase] loading columns failed", zap.Error(err))
		return workflow.Resolver{}, err
	}
	return workflow.NewResolver(boardColumns(stored)), nil
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, actor entities.Actor, o entities.Order) (entities.Order, error) {
	o.ID = strings.TrimSpace(o.ID)
	o.Customer = strings.TrimSpace(o.Customer)
	if o.Customer == "" {
		return entities.Order{}, ErrInvalidOrderCustomer
	}
	if o.Total < 0 {
		return entities.Order{}, ErrInvalidOrderTotal
	}
	if o.Priority == "" {
		o.Priority = entities.PriorityNormal
	}
	if o.Priority != entities.PriorityNormal && o.Priority != entities.PriorityUrgent {
		return entities.Order{}, ErrInvalidOrderPriority
	}

	r, err := u.resolver(ctx)
	if err != nil {
		return entities.Order{}, err
	}
	target := o.StatusColumnID
	if target == "" {
		target = o.Status
	}
	col := r.Stage(entities.StatusNewOrder)
	if strings.TrimSpace(target) != "" {
		c, ok := r.Resolve(target)
		if !ok {
			return entities.Order{}, fmt.Errorf("%w: %s", ErrUnknownWorkflowColumn, target)
		}
		col = c
	}

	now := u.now().UTC()
	if o.ID == "" {
		o.ID = fmt.Sprintf("ORD-%d", now.UnixMilli())
	}
	if existing, err := u.repo.GetByID(ctx, o.ID); err != nil {
		return entities.Order{}, err
	} else if existing.ID != "" {
		return entities.Order{}, ErrOrderAlreadyExists
	}

	o.Status = col.Title
	o.StatusColumnID = col.ID
	if o.FileStatus == "" {
		o.FileStatus = entities.FileStatusPending
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = entities.OrderPaymentUnpaid
	}
	o.Proofs = nil
	o.Issue = nil
	o.History = nil
	o.AppendHistory(now, actor, entities.ActionCreated, "Order created")
	o.CreatedAt = now
	o.UpdatedAt = now

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		u.log.Error("[order][usecase] create failed", zap.String("order_id", o.ID), zap.Error(err))
		return entities.Order{}, err
	}
	u.log.Info("[order][usecase] order created", zap.String("order_id", created.ID), zap.String("status", created.Status), zap.String("actor", actor.Name))
	return created, nil
}

func (u *OrderUseCase) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	r, err := u.resolver(ctx)
	if err != nil {
		return entities.Order{}, err
	}
	r.Normalize(&o)
	return o, nil
}

// ListOrders returns every order, or only the ones in column (id or title).
func (u *OrderUseCase) ListOrders(ctx context.Context, column string) ([]entities.Order, error) {
	r, err := u.resolver(ctx)
	if err != nil {
		return nil, err
	}
	var filter *entities.WorkflowColumn
	if column = strings.TrimSpace(column); column != "" {
		c, ok := r.Resolve(column)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownWorkflowColumn, column)
		}
		filter = &c
	}

	all, err := u.repo.List(ctx)
	if err != nil {
		u.log.Error("[order][usecase] list failed", zap.Error(err))
		return nil, err
	}
	out := make([]entities.Order, 0, len(all))
	for _, o := range all {
		if filter != nil {
			c, ok := r.ColumnFor(o)
			if !ok || c.ID != filter.ID {
				continue
			}
		}
		r.Normalize(&o)
		out = append(out, o)
	}
	return out, nil
}

func (u *OrderUseCase) DeleteOrder(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}
	release, err := u.locker.Lock(ctx, orderLockKey(id))
	if err != nil {
		return err
	}
	defer release()

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if o.ID == "" {
		return ErrOrderNotFound
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		u.log.Error("[order][usecase] delete failed", zap.String("order_id", id), zap.Error(err))
		return err
	}
	u.log.Info("[order][usecase] order deleted", zap.String("order_id", id))
	return nil
}

func (u *OrderUseCase) UpdateOrder(ctx context.Context, actor entities.Actor, id string, patch OrderPatch) (entities.Order, error) {
	if patch.Total != nil && *patch.Total < 0 {
		return entities.Order{}, ErrInvalidOrderTotal
	}
	if patch.Priority != nil && *patch.Priority != entities.PriorityNormal && *patch.Priority != entities.PriorityUrgent {
		return entities.Order{}, ErrInvalidOrderPriority
	}
	if patch.Customer != nil && strings.TrimSpace(*patch.Customer) == "" {
		return entities.Order{}, ErrInvalidOrderCustomer
	}

	return u.mutate(ctx, id, "update", func(o *entities.Order, r workflow.Resolver, now time.Time) error {
		if patch.Status != nil {
			col, ok := r.Resolve(*patch.Status)
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownWorkflowColumn, *patch.Status)
			}
			workflow.Move(o, col, actor, now)
		}
		if patch.Customer != nil {
			o.Customer = strings.TrimSpace(*patch.Customer)
		}
		if patch.Phone != nil {
			o.Phone = *patch.Phone
		}
		if patch.Email != nil {
			o.Email = *patch.Email
		}
		if patch.Total != nil {
			o.Total = *patch.Total
		}
		if patch.Priority != nil {
			o.Priority = *patch.Priority
		}
		if patch.Deadline != nil {
			o.Deadline = *patch.Deadline
		}
		if patch.Specs != nil {
			o.Specs = *patch.Specs
		}
		if patch.FileStatus != nil {
			o.FileStatus = *patch.FileStatus
		}
		if patch.PaymentStatus != nil {
			o.PaymentStatus = *patch.PaymentStatus
		}
		if patch.PaymentMethod != nil {
			o.PaymentMethod = *patch.PaymentMethod
		}
		if patch.AgentID != nil {
			o.AgentID = *patch.AgentID
		}
		return nil
	})
}

func (u *OrderUseCase) MoveOrder(ctx context.Context, actor entities.Actor, id, target string) (entities.Order, error) {
	return u.mutate(ctx, id, "move", func(o *entities.Order, r workflow.Resolver, now time.Time) error {
		col, ok := r.Resolve(target)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownWorkflowColumn, target)
		}
		if !workflow.Move(o, col, actor, now) {
			return errNoChange
		}
		return nil
	})
}

// BulkMove moves each order independently. A failure on one order does not
// undo the others; its outcome carries the state currently in storage.
func (u *OrderUseCase) BulkMove(ctx context.Context, actor entities.Actor, ids []string, target string) ([]MoveOutcome, error) {
	if len(ids) == 0 {
		return nil, ErrNoOrdersSelected
	}
	r, err := u.resolver(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := r.Resolve(target); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWorkflowColumn, target)
	}

	outcomes := make([]MoveOutcome, 0, len(ids))
	committed := 0
	for _, id := range ids {
		o, err := u.MoveOrder(ctx, actor, id, target)
		if err == nil {
			committed++
			outcomes = append(outcomes, MoveOutcome{OrderID: id, Status: MoveCommitted, Order: &o})
			continue
		}
		outcome := MoveOutcome{OrderID: id, Status: MoveFailed, Err: err}
		if current, getErr := u.GetOrder(ctx, id); getErr == nil {
			outcome.Order = &current
		}
		outcomes = append(outcomes, outcome)
	}
	u.log.Info("[order][usecase] bulk move done",
		zap.String("target", target),
		zap.Int("requested", len(ids)),
		zap.Int("committed", committed),
		zap.String("actor", actor.Name))
	return outcomes, nil
}

func (u *OrderUseCase) UploadProof(ctx context.Context, actor entities.Actor, id, imageURL, comment string) (entities.Order, error) {
	if strings.TrimSpace(imageURL) == "" {
		return entities.Order{}, ErrProofImageRequired
	}
	return u.mutate(ctx, id, "upload-proof", func(o *entities.Order, r workflow.Resolver, now time.Time) error {
		_, err := workflow.SendProof(o, r, uuid.NewString(), imageURL, comment, actor, now)
		return err
	})
}

func (u *OrderUseCase) RespondToProof(ctx context.Context, id string, approve bool, reason string) (entities.Order, error) {
	if !approve && strings.TrimSpace(reason) == "" {
		return entities.Order{}, ErrRejectReasonRequired
	}
	return u.mutate(ctx, id, "proof-response", func(o *entities.Order, r workflow.Resolver, now time.Time) error {
		return workflow.RespondToProof(o, r, approve, reason, now)
	})
}

// RefiningFeedback is the text of the customer's latest change request.
func (u *OrderUseCase) RefiningFeedback(ctx context.Context, id string) (string, error) {
	o, err := u.GetOrder(ctx, id)
	if err != nil {
		return "", err
	}
	return workflow.RefiningFeedback(o), nil
}

func (u *OrderUseCase) ReportIssue(ctx context.Context, actor entities.Actor, id string, issueType entities.IssueType, description string) (entities.Order, error) {
	if strings.TrimSpace(description) == "" {
		return entities.Order{}, ErrIssueDescription
	}
	return u.mutate(ctx, id, "report-issue", func(o *entities.Order, r workflow.Resolver, now time.Time) error {
		return workflow.ReportIssue(o, r, issueType, description, actor, now)
	})
}

func (u *OrderUseCase) ResolveIssue(ctx context.Context, actor entities.Actor, id string) (entities.Order, error) {
	return u.mutate(ctx, id, "resolve-issue", func(o *entities.Order, _ workflow.Resolver, now time.Time) error {
		return workflow.ResolveIssue(o, actor, now)
	})
}

func (u *OrderUseCase) Board(ctx context.Context) (workflow.Board, error) {
	r, err := u.resolver(ctx)
	if err != nil {
		return workflow.Board{}, err
	}
	all, err := u.repo.List(ctx)
	if err != nil {
		u.log.Error("[order][usecase] list failed", zap.Error(err))
		return workflow.Board{}, err
	}
	b := r.Board(all)
	if len(b.Orphaned) > 0 {
		u.log.Warn("[order][usecase] orders without a column", zap.Int("orphaned", len(b.Orphaned)))
	}
	return b, nil
}

// mutate loads the order under its lock, applies fn to a copy and persists the
// result. Nothing is written when fn fails; errNoChange returns the stored order.
func (u *OrderUseCase) mutate(ctx context.Context, id, op string, fn func(o *entities.Order, r workflow.Resolver, now time.Time) error) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	release, err := u.locker.Lock(ctx, orderLockKey(id))
	if err != nil {
		u.log.Error("[order][usecase] lock failed", zap.String("order_id", id), zap.String("op", op), zap.Error(err))
		return entities.Order{}, err
	}
	defer release()

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		u.log.Error("[order][usecase] load failed", zap.String("order_id", id), zap.String("op", op), zap.Error(err))
		return entities.Order{}, err
	}
	if current.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	r, err := u.resolver(ctx)
	if err != nil {
		return entities.Order{}, err
	}
	r.Normalize(&current)

	next := current.Clone()
	now := u.now().UTC()
	if err := fn(&next, r, now); err != nil {
		if errors.Is(err, errNoChange) {
			return current, nil
		}
		return entities.Order{}, err
	}
	next.UpdatedAt = now

	saved, err := u.repo.Update(ctx, next)
	if err != nil {
		u.log.Error("[order][usecase] persist failed", zap.String("order_id", id), zap.String("op", op), zap.Error(err))
		return entities.Order{}, err
	}
	if saved.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	r.Normalize(&saved)
	u.log.Info("[order][usecase] order updated",
		zap.String("order_id", id),
		zap.String("op", op),
		zap.String("status", saved.Status),
		zap.Int("history", len(saved.History)))
	return saved, nil
}
