package scheduler

import (
	"context"
	"time"

	"spg-be/internal/order"

	"go.uber.org/zap"
)

// PickupLister is the part of the order service the weekly job reads.
type PickupLister interface {
	PickupOrders(ctx context.Context) ([]order.PickupOrder, error)
}

// WeeklyTick logs the week boundary and how many pickup orders are waiting at the shop.
type WeeklyTick struct {
	orders PickupLister
	log    *zap.Logger
	now    func() time.Time
}

func NewWeeklyTick(orders PickupLister, log *zap.Logger) *WeeklyTick {
	return &WeeklyTick{orders: orders, log: log, now: time.Now}
}

func (w *WeeklyTick) Name() string { return "weekly_tick" }

func (w *WeeklyTick) Run(ctx context.Context) error {
	year, week := w.now().ISOWeek()

	pickups, err := w.orders.PickupOrders(ctx)
	if err != nil {
		return err
	}

	w.log.Info("weekly tick",
		zap.Int("year", year),
		zap.Int("week", week),
		zap.Int("pending_pickups", len(pickups)),
	)
	return nil
}
