package usecase

import (
	"context"
	"errors"
	"fmt"
	"printdesk/internal/domain/entities"
	"printdesk/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrQuoteNotFound         = errors.New("quote not found")
	ErrQuoteAlreadyExists    = errors.New("quote already exists")
	ErrQuoteAlreadyConverted = errors.New("quote already converted")
	ErrInvalidQuoteID        = errors.New("invalid quote id")
	ErrInvalidCustomerName   = errors.New("customer name is required")
	ErrItemsRequired         = errors.New("at least one item is required")
	ErrInvalidItem           = errors.New("invalid cart item")
)

// IQuoteUseCase manages quotes and their conversion into invoices.
type IQuoteUseCase interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	Update(ctx context.Context, id string, q entities.Quote) (entities.Quote, error)
	Delete(ctx context.Context, id string) error
	Convert(ctx context.Context, id string) (entities.Invoice, error)
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	invoices interfaces.IInvoiceRepository
	locker   interfaces.ILocker
	log      *zap.Logger
	now      func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, invoices interfaces.IInvoiceRepository, locker interfaces.ILocker, logger *zap.Logger) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, invoices: invoices, locker: locker, log: logger, now: time.Now}
}

func (u *QuoteUseCase) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	q.CustomerName = strings.TrimSpace(q.CustomerName)
	if q.CustomerName == "" {
		return entities.Quote{}, ErrInvalidCustomerName
	}
	items, total, err := prepareItems(q.Items)
	if err != nil {
		return entities.Quote{}, err
	}
	q.Items = items
	if q.TotalAmount <= 0 {
		q.TotalAmount = total
	}

	now := u.now().UTC()
	q.ID = strings.TrimSpace(q.ID)
	if q.ID == "" {
		q.ID = fmt.Sprintf("QT-%d", now.UnixMilli())
	}
	if existing, err := u.repo.GetByID(ctx, q.ID); err != nil {
		return entities.Quote{}, err
	} else if existing.ID != "" {
		return entities.Quote{}, ErrQuoteAlreadyExists
	}
	if q.Status == "" || q.Status == entities.QuoteStatusConverted {
		q.Status = entities.QuoteStatusDraft
	}
	q.InvoiceID = ""
	q.CreatedAt = now

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		u.log.Error("[quote][usecase] create failed", zap.String("quote_id", q.ID), zap.Error(err))
		return entities.Quote{}, err
	}
	u.log.Info("[quote][usecase] quote created", zap.String("quote_id", created.ID), zap.Float64("total", created.TotalAmount))
	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.List(ctx)
}

// Update replaces the editable fields of a quote. The id, creation time and
// conversion link are kept from the stored record.
func (u *QuoteUseCase) Update(ctx context.Context, id string, q entities.Quote) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q.CustomerName = strings.TrimSpace(q.CustomerName)
	if q.CustomerName == "" {
		return entities.Quote{}, ErrInvalidCustomerName
	}
	items, total, err := prepareItems(q.Items)
	if err != nil {
		return entities.Quote{}, err
	}

	release, err := u.locker.Lock(ctx, "quote:"+id)
	if err != nil {
		return entities.Quote{}, err
	}
	defer release()

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	q.ID = current.ID
	q.CreatedAt = current.CreatedAt
	q.InvoiceID = current.InvoiceID
	q.Items = items
	if q.TotalAmount <= 0 {
		q.TotalAmount = total
	}
	if q.Status == "" || current.Status == entities.QuoteStatusConverted {
		q.Status = current.Status
	}

	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		u.log.Error("[quote][usecase] update failed", zap.String("quote_id", id), zap.Error(err))
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

// Convert creates an unpaid invoice from the quote and links the two.
func (u *QuoteUseCase) Convert(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidQuoteID
	}
	release, err := u.locker.Lock(ctx, "quote:"+id)
	if err != nil {
		return entities.Invoice{}, err
	}
	defer release()

	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if q.Status == entities.QuoteStatusConverted {
		return entities.Invoice{}, ErrQuoteAlreadyConverted
	}

	now := u.now().UTC()
	inv := entities.Invoice{
		ID:                 fmt.Sprintf("INV-%d", now.UnixMilli()),
		QuoteID:            q.ID,
		CustomerName:       q.CustomerName,
		Phone:              q.Phone,
		Items:              q.Items,
		TotalAmount:        q.TotalAmount,
		Status:             entities.InvoiceStatusUnpaid,
		GeneratedFromQuote: true,
		CreatedAt:          now,
	}
	created, err := u.invoices.Create(ctx, inv)
	if err != nil {
		u.log.Error("[quote][usecase] invoice create failed", zap.String("quote_id", id), zap.Error(err))
		return entities.Invoice{}, err
	}

	q.Status = entities.QuoteStatusConverted
	q.InvoiceID = created.ID
	if _, err := u.repo.Update(ctx, q); err != nil {
		u.log.Error("[quote][usecase] quote link failed", zap.String("quote_id", id), zap.String("invoice_id", created.ID), zap.Error(err))
		return entities.Invoice{}, err
	}
	u.log.Info("[quote][usecase] quote converted", zap.String("quote_id", id), zap.String("invoice_id", created.ID))
	return created, nil
}

// prepareItems validates cart lines, assigns missing ids and returns the sum
// of their totals.
func prepareItems(items []entities.CartItem) ([]entities.CartItem, float64, error) {
	if len(items) == 0 {
		return nil, 0, ErrItemsRequired
	}
	out := make([]entities.CartItem, len(items))
	sum := decimal.Zero
	for i, it := range items {
		if strings.TrimSpace(it.ProductName) == "" {
			return nil, 0, fmt.Errorf("%w: item %d has no product name", ErrInvalidItem, i+1)
		}
		if it.Quantity < 0 || it.TotalPrice < 0 {
			return nil, 0, fmt.Errorf("%w: item %d has a negative quantity or price", ErrInvalidItem, i+1)
		}
		if strings.TrimSpace(it.ID) == "" {
			it.ID = uuid.NewString()
		}
		sum = sum.Add(decimal.NewFromFloat(it.TotalPrice))
		out[i] = it
	}
	return out, sum.Round(2).InexactFloat64(), nil
}
