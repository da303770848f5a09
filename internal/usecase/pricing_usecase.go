package usecase

import (
	"context"
	"errors"
	"printdesk/internal/domain/entities"
	"printdesk/internal/domain/pricing"
	"printdesk/internal/usecase/interfaces"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrInvalidProductID     = errors.New("invalid product id")
	ErrInvalidPriceOverride = errors.New("price override must not be negative")
)

// IPricingUseCase prices calculator selections against the product catalog.
type IPricingUseCase interface {
	ListProducts(ctx context.Context) ([]entities.Product, error)
	GetProduct(ctx context.Context, id string) (entities.Product, error)
	Calculate(ctx context.Context, productID string, sel entities.Selection) (pricing.Result, error)
	BuildCartItem(ctx context.Context, productID string, sel entities.Selection, override *float64) (entities.CartItem, error)
}

type PricingUseCase struct {
	catalog interfaces.IProductCatalog
	log     *zap.Logger
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(catalog interfaces.IProductCatalog, logger *zap.Logger) *PricingUseCase {
	return &PricingUseCase{catalog: catalog, log: logger}
}

func (u *PricingUseCase) ListProducts(ctx context.Context) ([]entities.Product, error) {
	return u.catalog.List(ctx)
}

func (u *PricingUseCase) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	p, err := u.catalog.GetByID(ctx, id)
	if err != nil {
		u.log.Error("[pricing][usecase] catalog lookup failed", zap.String("product_id", id), zap.Error(err))
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *PricingUseCase) Calculate(ctx context.Context, productID string, sel entities.Selection) (pricing.Result, error) {
	p, err := u.GetProduct(ctx, productID)
	if err != nil {
		return pricing.Result{}, err
	}
	return pricing.Compute(&p, sel), nil
}

// BuildCartItem prices sel and wraps it as a cart line. A non-nil override
// replaces the computed total and marks the line as overridden.
func (u *PricingUseCase) BuildCartItem(ctx context.Context, productID string, sel entities.Selection, override *float64) (entities.CartItem, error) {
	if override != nil && *override < 0 {
		return entities.CartItem{}, ErrInvalidPriceOverride
	}
	p, err := u.GetProduct(ctx, productID)
	if err != nil {
		return entities.CartItem{}, err
	}

	res := pricing.Compute(&p, sel)
	item := entities.CartItem{
		ID:          uuid.NewString(),
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    res.Quantity,
		TotalPrice:  res.TotalPrice,
		Specs:       &res.Specs,
		Summary:     res.Breakdown,
	}
	if override != nil {
		item.TotalPrice = *override
		item.IsOverridden = true
		u.log.Info("[pricing][usecase] price overridden",
			zap.String("product_id", p.ID),
			zap.Float64("computed", res.TotalPrice),
			zap.Float64("override", *override))
	}
	if item.Quantity > 0 {
		item.UnitPrice = decimal.NewFromFloat(item.TotalPrice).
			Div(decimal.NewFromInt(int64(item.Quantity))).
			Round(4).
			InexactFloat64()
	}
	return item, nil
}
