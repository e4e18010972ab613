package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"spg-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	PlaceOrder(ctx context.Context, in PlaceOrderInput) (*PlaceResult, error)
	ListOrders(ctx context.Context) ([]Order, error)
	DeleteItem(ctx context.Context, itemID int64) error
	UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error

	MarkFarmerShipped(ctx context.Context, providerID int64, productIDs []int64) (int64, error)
	AdvanceItem(ctx context.Context, itemID int64, to ItemState) error
	AdvanceByProduct(ctx context.Context, orderID int64, productName string, to ItemState) error

	BookedProducts(ctx context.Context, providerID int64, year, week int) ([]BookedProduct, error)
	PickupOrders(ctx context.Context) ([]PickupOrder, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validatePlaceOrder(in PlaceOrderInput) error {
	if in.ClientID <= 0 {
		return fmt.Errorf("%w: client_id is required", ErrInvalidOrder)
	}
	if len(in.Items) == 0 {
		return fmt.Errorf("%w: at least one item is required", ErrInvalidOrder)
	}
	if in.Total.IsNegative() {
		return fmt.Errorf("%w: total cannot be negative", ErrInvalidOrder)
	}
	for i, it := range in.Items {
		if it.ProductID <= 0 {
			return fmt.Errorf("%w: item %d: product id is required", ErrInvalidOrder, i)
		}
		if it.Quantity <= 0 {
			return fmt.Errorf("%w: item %d: quantity must be positive", ErrInvalidOrder, i)
		}
	}
	return nil
}

// PlaceOrder records the order header, then tries each item on its own.
// A rejected item never affects its siblings.
func (s *service) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*PlaceResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
		zap.Int64("client_id", in.ClientID),
	)

	start := time.Now()
	log.Debug("place order requested", zap.Int("items", len(in.Items)))

	if err := validatePlaceOrder(in); err != nil {
		log.Warn("invalid order", zap.Error(err))
		return nil, err
	}

	orderID, err := s.repo.CreateOrder(ctx, in)
	if err != nil {
		log.Error("failed to create order", zap.Error(err))
		return nil, err
	}

	result := &PlaceResult{OrderID: orderID, Items: make([]PlacedItem, 0, len(in.Items))}
	placed := 0
	for _, it := range in.Items {
		out := PlacedItem{ProductID: it.ProductID, Quantity: it.Quantity}

		item, err := s.repo.PlaceItem(ctx, orderID, it.ProductID, it.Quantity)
		switch {
		case err == nil:
			out.Status = OutcomePlaced
			out.ItemID = item.ID
			out.ProductName = item.ProductName
			out.Price = item.Price
			placed++
		case errors.Is(err, ErrInsufficientStock):
			log.Info("order item rejected",
				zap.Int64("product_id", it.ProductID),
				zap.Int("quantity", it.Quantity),
			)
			out.Status = OutcomeRejected
			out.Reason = ReasonInsufficientStock
		default:
			log.Error("failed to place order item",
				zap.Int64("product_id", it.ProductID),
				zap.Error(err),
			)
			out.Status = OutcomeRejected
			out.Reason = ReasonStoreError
		}
		result.Items = append(result.Items, out)
	}

	log.Info("order placed",
		zap.Int64("order_id", orderID),
		zap.Int("placed", placed),
		zap.Int("rejected", len(in.Items)-placed),
		zap.Duration("duration", time.Since(start)),
	)
	return result, nil
}

func (s *service) ListOrders(ctx context.Context) ([]Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *service) DeleteItem(ctx context.Context, itemID int64) error {
	if itemID <= 0 {
		return ErrItemNotFound
	}
	return s.repo.DeleteItem(ctx, itemID)
}

func (s *service) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if itemID <= 0 {
		return ErrItemNotFound
	}
	return s.repo.UpdateItemQuantity(ctx, itemID, quantity)
}

func (s *service) MarkFarmerShipped(ctx context.Context, providerID int64, productIDs []int64) (int64, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "MarkFarmerShipped"),
		zap.Int64("provider_id", providerID),
	)

	if len(productIDs) == 0 {
		return 0, ErrNoProducts
	}

	n, err := s.repo.MarkFarmerShipped(ctx, providerID, productIDs)
	if err != nil {
		log.Error("failed to mark items as farmer shipped", zap.Error(err))
		return 0, err
	}

	log.Info("items marked as farmer shipped",
		zap.Int64s("product_ids", productIDs),
		zap.Int64("updated", n),
	)
	return n, nil
}

func (s *service) AdvanceItem(ctx context.Context, itemID int64, to ItemState) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AdvanceItem"),
		zap.Int64("item_id", itemID),
		zap.String("to", string(to)),
	)

	from, ok := to.Predecessor()
	if !ok {
		return ErrInvalidTransition
	}

	n, err := s.repo.AdvanceItem(ctx, itemID, from, to)
	if err != nil {
		log.Error("failed to advance item", zap.Error(err))
		return err
	}
	if n > 0 {
		log.Info("item advanced")
		return nil
	}

	current, err := s.repo.GetItemState(ctx, itemID)
	if err != nil {
		return err
	}
	log.Warn("invalid transition", zap.String("from", string(current)))
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, to)
}

func (s *service) AdvanceByProduct(ctx context.Context, orderID int64, productName string, to ItemState) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AdvanceByProduct"),
		zap.Int64("order_id", orderID),
		zap.String("product_name", productName),
		zap.String("to", string(to)),
	)

	productName = strings.TrimSpace(productName)
	if productName == "" {
		return ErrItemNotFound
	}

	from, ok := to.Predecessor()
	if !ok {
		return ErrInvalidTransition
	}

	states, err := s.repo.ItemStatesByProduct(ctx, orderID, productName)
	if err != nil {
		log.Error("failed to load item states", zap.Error(err))
		return err
	}
	if len(states) == 0 {
		return ErrItemNotFound
	}
	// Every item of the product moves together or none does.
	distinct := distinctStates(states)
	if len(distinct) > 1 {
		log.Warn("mixed item states", zap.Any("states", distinct))
		return fmt.Errorf("%w: mixed states %v -> %s", ErrInvalidTransition, distinct, to)
	}
	if distinct[0] != from {
		log.Warn("invalid transition", zap.String("from", string(distinct[0])))
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, distinct[0], to)
	}

	n, err := s.repo.AdvanceByProduct(ctx, orderID, productName, from, to)
	if err != nil {
		log.Error("failed to advance items", zap.Error(err))
		return err
	}
	if n != int64(len(states)) {
		log.Warn("items changed concurrently", zap.Int64("updated", n), zap.Int("expected", len(states)))
		return fmt.Errorf("%w: %d of %d items advanced", ErrInvalidTransition, n, len(states))
	}
	log.Info("items advanced", zap.Int64("updated", n))
	return nil
}

func (s *service) BookedProducts(ctx context.Context, providerID int64, year, week int) ([]BookedProduct, error) {
	if year <= 0 || week < 1 || week > 53 {
		return nil, ErrInvalidWeek
	}
	return s.repo.BookedProducts(ctx, providerID, year, week)
}

func (s *service) PickupOrders(ctx context.Context) ([]PickupOrder, error) {
	return s.repo.PickupOrders(ctx)
}
