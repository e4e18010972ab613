package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"spg-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	CreateOrder(ctx context.Context, in PlaceOrderInput) (int64, error)
	PlaceItem(ctx context.Context, orderID, productID int64, quantity int) (*Item, error)

	ListOrders(ctx context.Context) ([]Order, error)
	DeleteItem(ctx context.Context, itemID int64) error
	UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error

	GetItemState(ctx context.Context, itemID int64) (ItemState, error)
	ItemStatesByProduct(ctx context.Context, orderID int64, productName string) ([]ItemState, error)
	AdvanceItem(ctx context.Context, itemID int64, from, to ItemState) (int64, error)
	AdvanceByProduct(ctx context.Context, orderID int64, productName string, from, to ItemState) (int64, error)
	MarkFarmerShipped(ctx context.Context, providerID int64, productIDs []int64) (int64, error)

	BookedProducts(ctx context.Context, providerID int64, year, week int) ([]BookedProduct, error)
	PickupOrders(ctx context.Context) ([]PickupOrder, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateOrder(ctx context.Context, in PlaceOrderInput) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO client_orders (client_id, total, pickup, address, city, delivery_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`, in.ClientID, in.Total, in.Pickup, in.Address, in.City, in.DeliveryAt).Scan(&id)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert order",
			zap.Int64("client_id", in.ClientID),
			zap.Error(err),
		)
		return 0, fmt.Errorf("insert order: %w", err)
	}
	return id, nil
}

// PlaceItem takes quantity units off the product and records the item, in one
// transaction. The decrement is conditional so stock can never go negative.
func (r *repository) PlaceItem(ctx context.Context, orderID, productID int64, quantity int) (*Item, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	item := Item{
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
		State:     StatePending,
	}

	err = tx.QueryRowContext(ctx, `
		UPDATE products SET quantity = quantity - $1
		WHERE id = $2 AND quantity >= $1 AND status = 'confirmed'
		RETURNING name, price
	`, quantity, productID).Scan(&item.ProductName, &item.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInsufficientStock
	}
	if err != nil {
		return nil, fmt.Errorf("decrement stock: %w", err)
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO order_items (order_id, product_id, product_name, quantity, price, state, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,NOW())
		RETURNING id, updated_at
	`, orderID, productID, item.ProductName, quantity, item.Price, StatePending).Scan(&item.ID, &item.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert order item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit order item: %w", err)
	}
	return &item, nil
}

func (r *repository) ListOrders(ctx context.Context) ([]Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListOrders"),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, client_id, total, pickup, address, city, delivery_at, created_at
		FROM client_orders
		ORDER BY id
	`)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := []Order{}
	ids := []int64{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.ClientID, &o.Total, &o.Pickup, &o.Address, &o.City, &o.DeliveryAt, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.Items = []Item{}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return orders, nil
	}

	items, err := r.itemsByOrder(ctx, ids)
	if err != nil {
		log.Error("failed to query order items", zap.Error(err))
		return nil, err
	}
	for i := range orders {
		if its, ok := items[orders[i].ID]; ok {
			orders[i].Items = its
		}
	}
	return orders, nil
}

func (r *repository) itemsByOrder(ctx context.Context, orderIDs []int64) (map[int64][]Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, product_name, quantity, price, state, updated_at
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, id
	`, pq.Array(orderIDs))
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]Item, len(orderIDs))
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Quantity, &it.Price, &it.State, &it.UpdatedAt); err != nil {
			return nil, err
		}
		out[it.OrderID] = append(out[it.OrderID], it)
	}
	return out, rows.Err()
}

// DeleteItem removes the item and puts its units back on the product, in one transaction.
func (r *repository) DeleteItem(ctx context.Context, itemID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var productID int64
	var quantity int
	err = tx.QueryRowContext(ctx,
		`DELETE FROM order_items WHERE id = $1 RETURNING product_id, quantity`, itemID,
	).Scan(&productID, &quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrItemNotFound
	}
	if err != nil {
		return fmt.Errorf("delete order item: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE products SET quantity = quantity + $1 WHERE id = $2`, quantity, productID,
	); err != nil {
		return fmt.Errorf("restock product: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit order item delete: %w", err)
	}
	return nil
}

// UpdateItemQuantity sets the item's quantity and moves the difference to or
// from the product's stock. Growing an item takes stock with the same
// conditional decrement as placement, so stock never goes negative.
func (r *repository) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpdateItemQuantity"),
		zap.Int64("item_id", itemID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var productID int64
	var current int
	err = tx.QueryRowContext(ctx,
		`SELECT product_id, quantity FROM order_items WHERE id = $1 FOR UPDATE`, itemID,
	).Scan(&productID, &current)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrItemNotFound
	}
	if err != nil {
		return fmt.Errorf("lock order item: %w", err)
	}

	switch delta := quantity - current; {
	case delta > 0:
		res, err := tx.ExecContext(ctx,
			`UPDATE products SET quantity = quantity - $1 WHERE id = $2 AND quantity >= $1`,
			delta, productID,
		)
		if err != nil {
			return fmt.Errorf("decrement stock: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			log.Warn("not enough stock to grow item",
				zap.Int64("product_id", productID),
				zap.Int("delta", delta),
			)
			return ErrInsufficientStock
		}
	case delta < 0:
		if _, err := tx.ExecContext(ctx,
			`UPDATE products SET quantity = quantity + $1 WHERE id = $2`,
			-delta, productID,
		); err != nil {
			return fmt.Errorf("restock product: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE order_items SET quantity = $1, updated_at = NOW() WHERE id = $2`,
		quantity, itemID,
	); err != nil {
		return fmt.Errorf("update order item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit order item update: %w", err)
	}
	return nil
}

func (r *repository) GetItemState(ctx context.Context, itemID int64) (ItemState, error) {
	var st ItemState
	err := r.db.QueryRowContext(ctx, `SELECT state FROM order_items WHERE id = $1`, itemID).Scan(&st)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrItemNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get item state: %w", err)
	}
	return st, nil
}

func (r *repository) ItemStatesByProduct(ctx context.Context, orderID int64, productName string) ([]ItemState, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT state FROM order_items WHERE order_id = $1 AND product_name = $2`,
		orderID, productName,
	)
	if err != nil {
		return nil, fmt.Errorf("get item states: %w", err)
	}
	defer rows.Close()

	states := []ItemState{}
	for rows.Next() {
		var st ItemState
		if err := rows.Scan(&st); err != nil {
			return nil, err
		}
		states = append(states, st)
	}
	return states, rows.Err()
}

func (r *repository) AdvanceItem(ctx context.Context, itemID int64, from, to ItemState) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE order_items SET state = $1, updated_at = NOW() WHERE id = $2 AND state = $3`,
		to, itemID, from,
	)
	if err != nil {
		return 0, fmt.Errorf("advance order item: %w", err)
	}
	return res.RowsAffected()
}

func (r *repository) AdvanceByProduct(ctx context.Context, orderID int64, productName string, from, to ItemState) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE order_items SET state = $1, updated_at = NOW()
		WHERE order_id = $2 AND product_name = $3 AND state = $4
			AND NOT EXISTS (
				SELECT 1 FROM order_items o
				WHERE o.order_id = $2 AND o.product_name = $3 AND o.state <> $4
			)
	`, to, orderID, productName, from)
	if err != nil {
		return 0, fmt.Errorf("advance order items by product: %w", err)
	}
	return res.RowsAffected()
}

func (r *repository) MarkFarmerShipped(ctx context.Context, providerID int64, productIDs []int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE order_items oi SET state = $1, updated_at = NOW()
		FROM products p
		WHERE p.id = oi.product_id AND p.provider_id = $2
			AND oi.product_id = ANY($3) AND oi.state = $4
	`, StateFarmerShipped, providerID, pq.Array(productIDs), StatePending)
	if err != nil {
		return 0, fmt.Errorf("mark farmer shipped: %w", err)
	}
	return res.RowsAffected()
}

func (r *repository) BookedProducts(ctx context.Context, providerID int64, year, week int) ([]BookedProduct, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.unit, oi.state, SUM(oi.quantity)
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE p.provider_id = $1 AND p.year = $2 AND p.week_number = $3
		GROUP BY p.id, p.name, p.unit, oi.state
		ORDER BY p.id, oi.state
	`, providerID, year, week)
	if err != nil {
		return nil, fmt.Errorf("query booked products: %w", err)
	}
	defer rows.Close()

	booked := []BookedProduct{}
	for rows.Next() {
		var b BookedProduct
		if err := rows.Scan(&b.ProductID, &b.ProductName, &b.Unit, &b.State, &b.TotalQuantity); err != nil {
			return nil, err
		}
		booked = append(booked, b)
	}
	return booked, rows.Err()
}

// PickupOrders lists pickup orders that have at least one prepared item.
func (r *repository) PickupOrders(ctx context.Context) ([]PickupOrder, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.id, o.client_id, c.name, c.surname, c.email, o.total, o.delivery_at
		FROM client_orders o
		JOIN clients c ON c.id = o.client_id
		WHERE o.pickup = TRUE
			AND EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = o.id AND oi.state = $1)
		ORDER BY o.id
	`, StatePrepared)
	if err != nil {
		return nil, fmt.Errorf("query pickup orders: %w", err)
	}
	defer rows.Close()

	orders := []PickupOrder{}
	ids := []int64{}
	for rows.Next() {
		var o PickupOrder
		if err := rows.Scan(&o.OrderID, &o.ClientID, &o.ClientName, &o.ClientSurname, &o.ClientEmail, &o.Total, &o.DeliveryAt); err != nil {
			return nil, err
		}
		o.Items = []Item{}
		orders = append(orders, o)
		ids = append(ids, o.OrderID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return orders, nil
	}

	items, err := r.itemsByOrder(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if its, ok := items[orders[i].OrderID]; ok {
			orders[i].Items = its
		}
	}
	return orders, nil
}
