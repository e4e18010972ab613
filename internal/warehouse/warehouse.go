// Package warehouse exposes what farmers have shipped to the shop and is not yet prepared.
package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"spg-be/internal/logger"

	"go.uber.org/zap"
)

type ShippedItem struct {
	OrderID     int64     `json:"order_id"`
	ClientID    int64     `json:"client_id"`
	ItemID      int64     `json:"item_id"`
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	State       string    `json:"state"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Repository interface {
	ShippedByProvider(ctx context.Context, providerID int64) ([]ShippedItem, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ShippedByProvider(ctx context.Context, providerID int64) ([]ShippedItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.id, o.client_id, oi.id, oi.product_id, oi.product_name, oi.quantity, oi.state, oi.updated_at
		FROM order_items oi
		JOIN client_orders o ON o.id = oi.order_id
		JOIN products p ON p.id = oi.product_id
		WHERE p.provider_id = $1 AND oi.state = 'farmer_shipped'
		ORDER BY o.id, oi.id
	`, providerID)
	if err != nil {
		return nil, fmt.Errorf("query shipped items: %w", err)
	}
	defer rows.Close()

	items := []ShippedItem{}
	for rows.Next() {
		var it ShippedItem
		if err := rows.Scan(&it.OrderID, &it.ClientID, &it.ItemID, &it.ProductID, &it.ProductName,
			&it.Quantity, &it.State, &it.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

type Service interface {
	ShippedByProvider(ctx context.Context, providerID int64) ([]ShippedItem, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ShippedByProvider(ctx context.Context, providerID int64) ([]ShippedItem, error) {
	items, err := s.repo.ShippedByProvider(ctx, providerID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load shipped items",
			zap.Int64("provider_id", providerID),
			zap.Error(err),
		)
		return nil, err
	}
	return items, nil
}
