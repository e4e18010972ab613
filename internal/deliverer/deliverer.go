package deliverer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"spg-be/internal/logger"

	"go.uber.org/zap"
)

var (
	ErrDelivererNotFound = errors.New("deliverer not found")
	ErrInvalidCity       = errors.New("city is required")
)

type Deliverer struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"user_id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	City    string `json:"city"`
}

// DeliverableItem is a prepared item of a home-delivery order.
type DeliverableItem struct {
	OrderID     int64      `json:"order_id"`
	ClientID    int64      `json:"client_id"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	DeliveryAt  *time.Time `json:"delivery_at,omitempty"`
	ItemID      int64      `json:"item_id"`
	ProductName string     `json:"product_name"`
	Quantity    int        `json:"quantity"`
	State       string     `json:"state"`
}

type Repository interface {
	List(ctx context.Context) ([]Deliverer, error)
	GetByEmail(ctx context.Context, email string) (*Deliverer, error)
	DeliverableOrders(ctx context.Context, city string) ([]DeliverableItem, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Deliverer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, user_id, name, surname, email, city FROM deliverers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query deliverers: %w", err)
	}
	defer rows.Close()

	out := []Deliverer{}
	for rows.Next() {
		var d Deliverer
		if err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.Surname, &d.Email, &d.City); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*Deliverer, error) {
	var d Deliverer
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, surname, email, city FROM deliverers WHERE email = $1`,
		email,
	).Scan(&d.ID, &d.UserID, &d.Name, &d.Surname, &d.Email, &d.City)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDelivererNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get deliverer: %w", err)
	}
	return &d, nil
}

func (r *repository) DeliverableOrders(ctx context.Context, city string) ([]DeliverableItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.id, o.client_id, o.address, o.city, o.delivery_at,
		       oi.id, oi.product_name, oi.quantity, oi.state
		FROM client_orders o
		JOIN order_items oi ON oi.order_id = o.id
		WHERE o.pickup = FALSE AND LOWER(o.city) = LOWER($1) AND oi.state = 'prepared'
		ORDER BY o.delivery_at NULLS LAST, o.id, oi.id
	`, city)
	if err != nil {
		return nil, fmt.Errorf("query deliverable orders: %w", err)
	}
	defer rows.Close()

	items := []DeliverableItem{}
	for rows.Next() {
		var it DeliverableItem
		if err := rows.Scan(&it.OrderID, &it.ClientID, &it.Address, &it.City, &it.DeliveryAt,
			&it.ItemID, &it.ProductName, &it.Quantity, &it.State); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

type Service interface {
	List(ctx context.Context) ([]Deliverer, error)
	GetByEmail(ctx context.Context, email string) (*Deliverer, error)
	DeliverableOrders(ctx context.Context, city string) ([]DeliverableItem, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Deliverer, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByEmail(ctx context.Context, email string) (*Deliverer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrDelivererNotFound
	}
	return s.repo.GetByEmail(ctx, email)
}

func (s *service) DeliverableOrders(ctx context.Context, city string) ([]DeliverableItem, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrInvalidCity
	}

	items, err := s.repo.DeliverableOrders(ctx, city)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load deliverable orders",
			zap.String("city", city),
			zap.Error(err),
		)
		return nil, err
	}
	return items, nil
}
