package product

import (
	"context"
	"fmt"
	"strings"

	"spg-be/internal/logger"

	"go.uber.org/zap"
)

// ImageRemover deletes the image stored for a product id. A missing file is not an error.
type ImageRemover interface {
	Remove(productID int64) error
}

type Service interface {
	ListExpected(ctx context.Context, year, week int) ([]Product, error)
	ListConfirmed(ctx context.Context, year, week int) ([]Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	ListProviderExpected(ctx context.Context, providerID int64, year, week int) ([]Product, error)
	ReplaceExpected(ctx context.Context, providerID int64, year, week int, items []ExpectedInput) ([]IDMapping, error)
	Confirm(ctx context.Context, providerID, productID int64, year, week int) error
	SetQuantity(ctx context.Context, productID int64, quantity int) error
	EnsureOwner(ctx context.Context, productID, providerID int64) error
}

type service struct {
	repo   Repository
	images ImageRemover
}

func NewService(repo Repository, images ImageRemover) Service {
	return &service{repo: repo, images: images}
}

func validWeek(year, week int) bool {
	return year > 0 && week >= 1 && week <= 53
}

func (s *service) ListExpected(ctx context.Context, year, week int) ([]Product, error) {
	if !validWeek(year, week) {
		return nil, ErrInvalidWeek
	}
	return s.repo.ListByWeek(ctx, year, week, StatusExpected)
}

func (s *service) ListConfirmed(ctx context.Context, year, week int) ([]Product, error) {
	if !validWeek(year, week) {
		return nil, ErrInvalidWeek
	}
	return s.repo.ListByWeek(ctx, year, week, StatusConfirmed)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Product, error) {
	if id <= 0 {
		return nil, ErrProductNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListProviderExpected(ctx context.Context, providerID int64, year, week int) ([]Product, error) {
	if !validWeek(year, week) {
		return nil, ErrInvalidWeek
	}
	return s.repo.ListProviderExpected(ctx, providerID, year, week)
}

func validateExpected(items []ExpectedInput) error {
	for i, it := range items {
		switch {
		case strings.TrimSpace(it.Name) == "":
			return fmt.Errorf("%w: item %d: name is required", ErrInvalidProduct, i)
		case it.Quantity < 0:
			return fmt.Errorf("%w: item %d: quantity cannot be negative", ErrInvalidProduct, i)
		case it.Price.IsNegative():
			return fmt.Errorf("%w: item %d: price cannot be negative", ErrInvalidProduct, i)
		case strings.TrimSpace(it.Unit) == "":
			return fmt.Errorf("%w: item %d: unit is required", ErrInvalidProduct, i)
		case it.CategoryID <= 0:
			return fmt.Errorf("%w: item %d: category is required", ErrInvalidProduct, i)
		}
	}
	return nil
}

func (s *service) ReplaceExpected(
	ctx context.Context,
	providerID int64,
	year, week int,
	items []ExpectedInput,
) ([]IDMapping, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ReplaceExpected"),
		zap.Int64("provider_id", providerID),
		zap.Int("year", year),
		zap.Int("week", week),
	)

	log.Debug("replace expected production requested", zap.Int("items", len(items)))

	if !validWeek(year, week) {
		return nil, ErrInvalidWeek
	}
	if err := validateExpected(items); err != nil {
		log.Warn("invalid expected production", zap.Error(err))
		return nil, err
	}

	oldIDs, mapping, err := s.repo.ReplaceExpected(ctx, providerID, year, week, items)
	if err != nil {
		log.Error("failed to replace expected production", zap.Error(err))
		return nil, err
	}

	// old images are removed only once the new set is committed
	for _, id := range oldIDs {
		if err := s.images.Remove(id); err != nil {
			log.Warn("failed to remove product image",
				zap.Int64("product_id", id),
				zap.Error(err),
			)
		}
	}

	log.Info("expected production replaced",
		zap.Int("removed", len(oldIDs)),
		zap.Int("inserted", len(mapping)),
	)
	return mapping, nil
}

func (s *service) Confirm(ctx context.Context, providerID, productID int64, year, week int) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Confirm"),
		zap.Int64("provider_id", providerID),
		zap.Int64("product_id", productID),
	)

	if !validWeek(year, week) {
		return ErrInvalidWeek
	}

	if err := s.repo.Confirm(ctx, providerID, productID, year, week); err != nil {
		log.Warn("product not confirmed", zap.Error(err))
		return err
	}

	log.Info("product confirmed")
	return nil
}

func (s *service) SetQuantity(ctx context.Context, productID int64, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	if productID <= 0 {
		return ErrProductNotFound
	}

	if err := s.repo.SetQuantity(ctx, productID, quantity); err != nil {
		logger.FromCtx(ctx).Error("failed to set product quantity",
			zap.Int64("product_id", productID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) EnsureOwner(ctx context.Context, productID, providerID int64) error {
	owned, err := s.repo.IsOwnedBy(ctx, productID, providerID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrNotOwner
	}
	return nil
}
