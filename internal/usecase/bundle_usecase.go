package usecase

import (
	"context"
	"errors"
	"fmt"
	"printdesk/internal/domain/entities"
	"printdesk/internal/usecase/interfaces"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrBundleNotFound        = errors.New("bundle not found")
	ErrInvalidBundleID       = errors.New("invalid bundle id")
	ErrBundleTitleRequired   = errors.New("bundle title is required")
	ErrBundleSlugRequired    = errors.New("bundle slug is required")
	ErrBundleSlugTaken       = errors.New("bundle slug already exists")
	ErrInvalidBundlePrice    = errors.New("bundle price must be greater than zero")
	ErrInvalidBundleStatus   = errors.New("invalid bundle status")
	ErrInvalidBundleItem     = errors.New("invalid bundle item")
	ErrBundleProductNotFound = errors.New("bundle product not found")
)

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases s and collapses every run of other characters into a
// single dash.
func Slugify(s string) string {
	return strings.Trim(slugSeparators.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

// IBundleUseCase manages the fixed-price product bundles shown on the storefront.
type IBundleUseCase interface {
	Create(ctx context.Context, b entities.Bundle) (entities.Bundle, error)
	Get(ctx context.Context, id string) (entities.Bundle, error)
	List(ctx context.Context, activeOnly bool) ([]entities.Bundle, error)
	Delete(ctx context.Context, id string) error
}

type BundleUseCase struct {
	repo    interfaces.IBundleRepository
	catalog interfaces.IProductCatalog
	log     *zap.Logger
	now     func() time.Time
}

var _ IBundleUseCase = (*BundleUseCase)(nil)

func NewBundleUseCase(repo interfaces.IBundleRepository, catalog interfaces.IProductCatalog, logger *zap.Logger) *BundleUseCase {
	return &BundleUseCase{repo: repo, catalog: catalog, log: logger, now: time.Now}
}

// Create stores a new bundle as draft unless told otherwise. Every item must
// name a catalog product; a missing product name is filled from the catalog.
func (u *BundleUseCase) Create(ctx context.Context, b entities.Bundle) (entities.Bundle, error) {
	b.Title = strings.TrimSpace(b.Title)
	if b.Title == "" {
		return entities.Bundle{}, ErrBundleTitleRequired
	}
	b.Slug = Slugify(b.Slug)
	if b.Slug == "" {
		return entities.Bundle{}, ErrBundleSlugRequired
	}
	if b.Price <= 0 {
		return entities.Bundle{}, ErrInvalidBundlePrice
	}
	if b.Status == "" {
		b.Status = entities.BundleDraft
	}
	if b.Status != entities.BundleActive && b.Status != entities.BundleDraft {
		return entities.Bundle{}, ErrInvalidBundleStatus
	}

	items, err := u.resolveItems(ctx, b.Items)
	if err != nil {
		return entities.Bundle{}, err
	}
	b.Items = items

	all, err := u.repo.List(ctx)
	if err != nil {
		return entities.Bundle{}, err
	}
	taken := make(map[string]bool, len(all))
	for _, existing := range all {
		if existing.Slug == b.Slug {
			return entities.Bundle{}, fmt.Errorf("%w: %s", ErrBundleSlugTaken, b.Slug)
		}
		taken[existing.ID] = true
	}

	now := u.now().UTC()
	b.CreatedAt = now
	// ids are creation milliseconds; step past any taken in the same instant
	for ms := now.UnixMilli(); ; ms++ {
		b.ID = fmt.Sprintf("BND-%d", ms)
		if !taken[b.ID] {
			break
		}
	}

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		u.log.Error("[bundle][usecase] create failed", zap.String("bundle_id", b.ID), zap.Error(err))
		return entities.Bundle{}, err
	}
	u.log.Info("[bundle][usecase] bundle created",
		zap.String("bundle_id", created.ID),
		zap.String("slug", created.Slug),
		zap.Int("items", len(created.Items)))
	return created, nil
}

func (u *BundleUseCase) resolveItems(ctx context.Context, items []entities.BundleItem) ([]entities.BundleItem, error) {
	out := make([]entities.BundleItem, 0, len(items))
	for i, it := range items {
		it.ProductID = strings.TrimSpace(it.ProductID)
		if it.ProductID == "" || it.Quantity < 0 {
			return nil, fmt.Errorf("%w: item %d", ErrInvalidBundleItem, i+1)
		}
		if it.Quantity == 0 {
			it.Quantity = 1
		}
		p, err := u.catalog.GetByID(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		if p.ID == "" {
			return nil, fmt.Errorf("%w: %s", ErrBundleProductNotFound, it.ProductID)
		}
		if strings.TrimSpace(it.ProductName) == "" {
			it.ProductName = p.Name
		}
		out = append(out, it)
	}
	return out, nil
}

func (u *BundleUseCase) Get(ctx context.Context, id string) (entities.Bundle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Bundle{}, ErrInvalidBundleID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Bundle{}, err
	}
	if b.ID == "" {
		return entities.Bundle{}, ErrBundleNotFound
	}
	return b, nil
}

// List returns every bundle, or only the active ones when activeOnly is set.
func (u *BundleUseCase) List(ctx context.Context, activeOnly bool) ([]entities.Bundle, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if !activeOnly {
		return all, nil
	}
	active := make([]entities.Bundle, 0, len(all))
	for _, b := range all {
		if b.Status == entities.BundleActive {
			active = append(active, b)
		}
	}
	return active, nil
}

func (u *BundleUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}
