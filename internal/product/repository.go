package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"spg-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	ListByWeek(ctx context.Context, year, week int, status Status) ([]Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	ListProviderExpected(ctx context.Context, providerID int64, year, week int) ([]Product, error)
	ReplaceExpected(ctx context.Context, providerID int64, year, week int, items []ExpectedInput) ([]int64, []IDMapping, error)
	Confirm(ctx context.Context, providerID, productID int64, year, week int) error
	SetQuantity(ctx context.Context, productID int64, quantity int) error
	IsOwnedBy(ctx context.Context, productID, providerID int64) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const selectProduct = `
	SELECT p.id, p.name, p.description, p.category_id, c.name, p.price, p.unit,
		p.quantity, p.provider_id, pr.company, p.year, p.week_number, p.status, p.notified
	FROM products p
	JOIN product_categories c ON c.id = p.category_id
	JOIN providers pr ON pr.id = p.provider_id
`

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (Product, error) {
	var p Product
	err := s.Scan(
		&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.CategoryName, &p.Price, &p.Unit,
		&p.Quantity, &p.ProviderID, &p.ProviderName, &p.Year, &p.Week, &p.Status, &p.Notified,
	)
	return p, err
}

func (r *repository) queryProducts(ctx context.Context, query string, args ...any) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) ListByWeek(ctx context.Context, year, week int, status Status) ([]Product, error) {
	products, err := r.queryProducts(ctx,
		selectProduct+` WHERE p.year = $1 AND p.week_number = $2 AND p.status = $3 ORDER BY p.id`,
		year, week, status,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to list products",
			zap.Int("year", year),
			zap.Int("week", week),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, selectProduct+` WHERE p.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func (r *repository) ListProviderExpected(ctx context.Context, providerID int64, year, week int) ([]Product, error) {
	products, err := r.queryProducts(ctx,
		selectProduct+` WHERE p.provider_id = $1 AND p.year = $2 AND p.week_number = $3 AND p.status = $4 ORDER BY p.id`,
		providerID, year, week, StatusExpected,
	)
	if err != nil {
		return nil, fmt.Errorf("list provider expected products: %w", err)
	}
	return products, nil
}

// ReplaceExpected swaps the provider's expected rows for the week in one transaction.
// It returns the ids that were removed and the old->new id mapping of the inserted rows.
func (r *repository) ReplaceExpected(
	ctx context.Context,
	providerID int64,
	year, week int,
	items []ExpectedInput,
) ([]int64, []IDMapping, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ReplaceExpected"),
		zap.Int64("provider_id", providerID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	// 1. Capture old ids
	rows, err := tx.QueryContext(ctx, `
		SELECT id FROM products
		WHERE provider_id = $1 AND year = $2 AND week_number = $3 AND status = $4
	`, providerID, year, week, StatusExpected)
	if err != nil {
		log.Error("failed to select old expected products", zap.Error(err))
		return nil, nil, fmt.Errorf("select expected products: %w", err)
	}
	oldIDs := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, nil, err
		}
		oldIDs = append(oldIDs, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	// 2. Delete them
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM products
		WHERE provider_id = $1 AND year = $2 AND week_number = $3 AND status = $4
	`, providerID, year, week, StatusExpected); err != nil {
		log.Error("failed to delete expected products", zap.Error(err))
		return nil, nil, fmt.Errorf("delete expected products: %w", err)
	}

	// 3. Insert the new set
	mapping := make([]IDMapping, 0, len(items))
	for _, it := range items {
		var newID int64
		err := tx.QueryRowContext(ctx, `
			INSERT INTO products (
				name, description, category_id, price, unit,
				quantity, provider_id, year, week_number, status
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
			RETURNING id
		`,
			it.Name, it.Description, it.CategoryID, it.Price, it.Unit,
			it.Quantity, providerID, year, week, StatusExpected,
		).Scan(&newID)
		if err != nil {
			log.Error("failed to insert expected product",
				zap.String("name", it.Name),
				zap.Error(err),
			)
			return nil, nil, fmt.Errorf("insert expected product: %w", err)
		}
		mapping = append(mapping, IDMapping{OldID: it.ID, NewID: newID})
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit replace: %w", err)
	}

	return oldIDs, mapping, nil
}

func (r *repository) Confirm(ctx context.Context, providerID, productID int64, year, week int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products SET status = $1
		WHERE id = $2 AND provider_id = $3 AND year = $4 AND week_number = $5 AND status = $6
	`, StatusConfirmed, productID, providerID, year, week, StatusExpected)
	if err != nil {
		return fmt.Errorf("confirm product: %w", err)
	}
	return expectOneRow(res)
}

func (r *repository) SetQuantity(ctx context.Context, productID int64, quantity int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET quantity = $1 WHERE id = $2`, quantity, productID,
	)
	if err != nil {
		return fmt.Errorf("set product quantity: %w", err)
	}
	return expectOneRow(res)
}

func (r *repository) IsOwnedBy(ctx context.Context, productID, providerID int64) (bool, error) {
	var owned bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE id = $1 AND provider_id = $2)`,
		productID, providerID,
	).Scan(&owned)
	if err != nil {
		return false, fmt.Errorf("check product owner: %w", err)
	}
	return owned, nil
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProductNotFound
	}
	return nil
}
