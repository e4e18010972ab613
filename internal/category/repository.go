package category

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"spg-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id int64) (*Category, error)
	Create(ctx context.Context, name string) (*Category, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "List"),
	)

	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM product_categories ORDER BY id`)
	if err != nil {
		log.Error("failed to query categories", zap.Error(err))
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := []Category{}
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			log.Error("failed to scan category", zap.Error(err))
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM product_categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

func (r *repository) Create(ctx context.Context, name string) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO product_categories (name) VALUES ($1) RETURNING id, name`, name,
	).Scan(&c.ID, &c.Name)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert category",
			zap.String("name", name),
			zap.Error(err),
		)
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return &c, nil
}
