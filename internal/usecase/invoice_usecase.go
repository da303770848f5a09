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
	ErrInvoiceNotFound         = errors.New("invoice not found")
	ErrInvoiceAlreadyExists    = errors.New("invoice already exists")
	ErrInvoiceAlreadyConverted = errors.New("invoice already converted to orders")
	ErrInvalidInvoiceID        = errors.New("invalid invoice id")
	ErrInvalidInvoiceStatus    = errors.New("invalid invoice status")
)

const (
	invoiceOrderSource     = "Web (Invoice)"
	invoiceOrderLeadDays   = 3
	defaultSpecValue       = "Standard"
	defaultSpecDepartment  = "Production"
	deadlineLayout         = "2006-01-02"
	invoiceIDPrefix        = "INV-"
	invoiceOrderHistoryFmt = "Generated from Invoice #%s"
)

// IInvoiceUseCase manages invoices and turns them into production orders.
type IInvoiceUseCase interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
	Update(ctx context.Context, id string, inv entities.Invoice) (entities.Invoice, error)
	Delete(ctx context.Context, id string) error
	ConvertToOrders(ctx context.Context, actor entities.Actor, id string) ([]entities.Order, error)
}

type InvoiceUseCase struct {
	repo    interfaces.IInvoiceRepository
	orders  interfaces.IOrderRepository
	columns interfaces.IWorkflowColumnRepository
	locker  interfaces.ILocker
	log     *zap.Logger
	now     func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	repo interfaces.IInvoiceRepository,
	orders interfaces.IOrderRepository,
	columns interfaces.IWorkflowColumnRepository,
	locker interfaces.ILocker,
	logger *zap.Logger,
) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, orders: orders, columns: columns, locker: locker, log: logger, now: time.Now}
}

func invoiceLockKey(id string) string { return "invoice:" + id }

func validInvoiceStatus(s entities.InvoiceStatus) bool {
	switch s {
	case entities.InvoiceStatusUnpaid, entities.InvoiceStatusPaid, entities.InvoiceStatusPartial:
		return true
	}
	return false
}

func (u *InvoiceUseCase) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	inv.CustomerName = strings.TrimSpace(inv.CustomerName)
	if inv.CustomerName == "" {
		return entities.Invoice{}, ErrInvalidCustomerName
	}
	if inv.Status == "" {
		inv.Status = entities.InvoiceStatusUnpaid
	}
	if !validInvoiceStatus(inv.Status) {
		return entities.Invoice{}, ErrInvalidInvoiceStatus
	}
	items, total, err := prepareItems(inv.Items)
	if err != nil {
		return entities.Invoice{}, err
	}
	inv.Items = items
	if inv.TotalAmount <= 0 {
		inv.TotalAmount = total
	}

	now := u.now().UTC()
	inv.ID = strings.TrimSpace(inv.ID)
	if inv.ID == "" {
		inv.ID = fmt.Sprintf("%s%d", invoiceIDPrefix, now.UnixMilli())
	}
	if existing, err := u.repo.GetByID(ctx, inv.ID); err != nil {
		return entities.Invoice{}, err
	} else if existing.ID != "" {
		return entities.Invoice{}, ErrInvoiceAlreadyExists
	}
	inv.ConvertedToOrders = false
	inv.CreatedAt = now

	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		u.log.Error("[invoice][usecase] create failed", zap.String("invoice_id", inv.ID), zap.Error(err))
		return entities.Invoice{}, err
	}
	u.log.Info("[invoice][usecase] invoice created", zap.String("invoice_id", created.ID), zap.Float64("total", created.TotalAmount))
	return created, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) List(ctx context.Context) ([]entities.Invoice, error) {
	return u.repo.List(ctx)
}

func (u *InvoiceUseCase) Update(ctx context.Context, id string, inv entities.Invoice) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	inv.CustomerName = strings.TrimSpace(inv.CustomerName)
	if inv.CustomerName == "" {
		return entities.Invoice{}, ErrInvalidCustomerName
	}
	if inv.Status != "" && !validInvoiceStatus(inv.Status) {
		return entities.Invoice{}, ErrInvalidInvoiceStatus
	}
	items, total, err := prepareItems(inv.Items)
	if err != nil {
		return entities.Invoice{}, err
	}

	release, err := u.locker.Lock(ctx, invoiceLockKey(id))
	if err != nil {
		return entities.Invoice{}, err
	}
	defer release()

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	inv.ID = current.ID
	inv.QuoteID = current.QuoteID
	inv.GeneratedFromQuote = current.GeneratedFromQuote
	inv.ConvertedToOrders = current.ConvertedToOrders
	inv.CreatedAt = current.CreatedAt
	inv.Items = items
	if inv.TotalAmount <= 0 {
		inv.TotalAmount = total
	}
	if inv.Status == "" {
		inv.Status = current.Status
	}

	updated, err := u.repo.Update(ctx, inv)
	if err != nil {
		u.log.Error("[invoice][usecase] update failed", zap.String("invoice_id", id), zap.Error(err))
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return updated, nil
}

func (u *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

// ConvertToOrders creates one New Order per invoice line and marks the
// invoice as paid. An invoice converts at most once. Lines whose order is
// already stored for this invoice are reused, so a failed conversion can be
// retried.
func (u *InvoiceUseCase) ConvertToOrders(ctx context.Context, actor entities.Actor, id string) ([]entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidInvoiceID
	}
	release, err := u.locker.Lock(ctx, invoiceLockKey(id))
	if err != nil {
		return nil, err
	}
	defer release()

	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.ConvertedToOrders {
		return nil, ErrInvoiceAlreadyConverted
	}

	stored, err := u.columns.List(ctx)
	if err != nil {
		return nil, err
	}
	col := workflow.NewResolver(boardColumns(stored)).Stage(entities.StatusNewOrder)

	now := u.now().UTC()
	orders := make([]entities.Order, 0, len(inv.Items))
	for i, item := range inv.Items {
		o := orderFromInvoiceItem(inv, item, i+1, col, now)
		// a previous attempt may have stored some lines before failing
		existing, err := u.orders.GetByID(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		if existing.ID != "" && existing.InvoiceNo == inv.ID {
			orders = append(orders, existing)
			continue
		}
		o.AppendHistory(now, actor, entities.ActionCreated, fmt.Sprintf(invoiceOrderHistoryFmt, inv.ID))
		created, err := u.orders.Create(ctx, o)
		if err != nil {
			u.log.Error("[invoice][usecase] order create failed",
				zap.String("invoice_id", inv.ID),
				zap.String("order_id", o.ID),
				zap.Int("created", len(orders)),
				zap.Error(err))
			return nil, err
		}
		orders = append(orders, created)
	}

	inv.Status = entities.InvoiceStatusPaid
	inv.ConvertedToOrders = true
	if _, err := u.repo.Update(ctx, inv); err != nil {
		u.log.Error("[invoice][usecase] invoice status update failed", zap.String("invoice_id", inv.ID), zap.Error(err))
		return nil, err
	}
	u.log.Info("[invoice][usecase] invoice converted", zap.String("invoice_id", inv.ID), zap.Int("orders", len(orders)), zap.String("actor", actor.Name))
	return orders, nil
}

func orderFromInvoiceItem(inv entities.Invoice, item entities.CartItem, n int, col entities.WorkflowColumn, now time.Time) entities.Order {
	specs := entities.OrderSpecs{
		ProductName: item.ProductName,
		Quantity:    item.Quantity,
		Size:        defaultSpecValue,
		Material:    defaultSpecValue,
		Department:  defaultSpecDepartment,
		Summary:     item.Summary,
	}
	if s := item.Specs; s != nil {
		if s.Size != "" {
			specs.Size = s.Size
		}
		if s.Material != "" {
			specs.Material = s.Material
		}
		specs.PrintSide = s.PrintSide
		specs.Finishing = s.Finishing
	}
	return entities.Order{
		ID:             fmt.Sprintf("ORD-%s-%d", strings.TrimPrefix(inv.ID, invoiceIDPrefix), n),
		Customer:       inv.CustomerName,
		Phone:          inv.Phone,
		Total:          item.TotalPrice,
		Status:         col.Title,
		StatusColumnID: col.ID,
		Priority:       entities.PriorityNormal,
		Deadline:       now.AddDate(0, 0, invoiceOrderLeadDays).Format(deadlineLayout),
		Source:         invoiceOrderSource,
		InvoiceNo:      inv.ID,
		Specs:          specs,
		FileStatus:     entities.FileStatusPending,
		PaymentStatus:  entities.OrderPaymentPaid,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
