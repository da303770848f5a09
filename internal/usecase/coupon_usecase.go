package usecase

import (
	"context"
	"errors"
	"fmt"
	"printdesk/internal/domain/entities"
	"printdesk/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrInvalidCouponID     = errors.New("invalid coupon id")
	ErrCouponCodeRequired  = errors.New("coupon code is required")
	ErrCouponCodeTaken     = errors.New("coupon code already exists")
	ErrInvalidCouponType   = errors.New("invalid coupon type")
	ErrInvalidCouponValue  = errors.New("invalid coupon value")
	ErrInvalidCouponStatus = errors.New("invalid coupon status")
	ErrCouponInvalid       = errors.New("invalid or inactive coupon code")
	ErrCouponMinSpend      = errors.New("cart total below coupon minimum spend")
)

// ICouponUseCase manages discount coupons and validates them against a cart.
type ICouponUseCase interface {
	Save(ctx context.Context, c entities.Coupon) (entities.Coupon, error)
	List(ctx context.Context) ([]entities.Coupon, error)
	Delete(ctx context.Context, id string) error
	Validate(ctx context.Context, code string, cartTotal float64) (entities.CouponDiscount, error)
}

type CouponUseCase struct {
	repo interfaces.ICouponRepository
	log  *zap.Logger
	now  func() time.Time
}

var _ ICouponUseCase = (*CouponUseCase)(nil)

func NewCouponUseCase(repo interfaces.ICouponRepository, logger *zap.Logger) *CouponUseCase {
	return &CouponUseCase{repo: repo, log: logger, now: time.Now}
}

func normalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Save creates a coupon, or replaces the stored one with the same id while
// keeping its usage count.
// Codes are unique across coupons.
func (u *CouponUseCase) Save(ctx context.Context, c entities.Coupon) (entities.Coupon, error) {
	c.ID = strings.TrimSpace(c.ID)
	c.Code = normalizeCouponCode(c.Code)
	if c.Code == "" {
		return entities.Coupon{}, ErrCouponCodeRequired
	}
	if c.Type == "" {
		c.Type = entities.CouponPercentage
	}
	if c.Type != entities.CouponPercentage && c.Type != entities.CouponFixed {
		return entities.Coupon{}, ErrInvalidCouponType
	}
	if c.Value < 0 || (c.Type == entities.CouponPercentage && c.Value > 100) || c.MinSpend < 0 {
		return entities.Coupon{}, ErrInvalidCouponValue
	}
	if c.Status == "" {
		c.Status = entities.CouponActive
	}
	if c.Status != entities.CouponActive && c.Status != entities.CouponInactive {
		return entities.Coupon{}, ErrInvalidCouponStatus
	}

	all, err := u.repo.List(ctx)
	if err != nil {
		return entities.Coupon{}, err
	}
	var existing *entities.Coupon
	for i := range all {
		if normalizeCouponCode(all[i].Code) == c.Code && all[i].ID != c.ID {
			return entities.Coupon{}, fmt.Errorf("%w: %s", ErrCouponCodeTaken, c.Code)
		}
		if c.ID != "" && all[i].ID == c.ID {
			existing = &all[i]
		}
	}

	if existing != nil {
		c.UsageCount = existing.UsageCount
	} else {
		if c.ID == "" {
			c.ID = fmt.Sprintf("CPN-%d", u.now().UnixMilli())
		}
		c.UsageCount = 0
	}

	saved, err := u.repo.Save(ctx, c)
	if err != nil {
		u.log.Error("[coupon][usecase] save failed", zap.String("coupon_id", c.ID), zap.Error(err))
		return entities.Coupon{}, err
	}
	u.log.Info("[coupon][usecase] coupon saved", zap.String("coupon_id", saved.ID), zap.String("code", saved.Code), zap.Bool("created", existing == nil))
	return saved, nil
}

func (u *CouponUseCase) List(ctx context.Context) ([]entities.Coupon, error) {
	return u.repo.List(ctx)
}

func (u *CouponUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCouponID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return ErrCouponNotFound
	}
	return u.repo.Delete(ctx, id)
}

// Validate computes the discount code grants on cartTotal. The discount never
// exceeds the cart total.
func (u *CouponUseCase) Validate(ctx context.Context, code string, cartTotal float64) (entities.CouponDiscount, error) {
	code = normalizeCouponCode(code)
	if code == "" {
		return entities.CouponDiscount{}, ErrCouponCodeRequired
	}
	all, err := u.repo.List(ctx)
	if err != nil {
		return entities.CouponDiscount{}, err
	}

	var coupon *entities.Coupon
	for i := range all {
		if normalizeCouponCode(all[i].Code) == code && all[i].Status == entities.CouponActive {
			coupon = &all[i]
			break
		}
	}
	if coupon == nil {
		return entities.CouponDiscount{}, ErrCouponInvalid
	}
	if coupon.MinSpend > 0 && cartTotal < coupon.MinSpend {
		return entities.CouponDiscount{}, fmt.Errorf("%w: minimum spend of RM%s required", ErrCouponMinSpend, decimal.NewFromFloat(coupon.MinSpend).String())
	}

	total := decimal.NewFromFloat(cartTotal)
	discount := decimal.NewFromFloat(coupon.Value)
	if coupon.Type == entities.CouponPercentage {
		discount = total.Mul(discount).Div(decimal.NewFromInt(100))
	}
	if discount.GreaterThan(total) {
		discount = total
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}

	return entities.CouponDiscount{
		DiscountAmount: discount.Round(2).InexactFloat64(),
		CouponCode:     coupon.Code,
		CouponType:     coupon.Type,
		CouponValue:    coupon.Value,
	}, nil
}
