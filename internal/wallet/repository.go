package wallet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"spg-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	PaymentMethods(ctx context.Context) ([]PaymentMethod, error)
	IncreaseBalance(ctx context.Context, clientID int64, amount decimal.Decimal) (decimal.Decimal, error)
	CreateTransaction(ctx context.Context, in TransactionInput) (*Transaction, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) PaymentMethods(ctx context.Context) ([]PaymentMethod, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM payment_methods ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query payment methods: %w", err)
	}
	defer rows.Close()

	methods := []PaymentMethod{}
	for rows.Next() {
		var m PaymentMethod
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}

func (r *repository) IncreaseBalance(ctx context.Context, clientID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	var budget decimal.Decimal
	err := r.db.QueryRowContext(ctx,
		`UPDATE clients SET budget = budget + $1 WHERE id = $2 RETURNING budget`,
		amount, clientID,
	).Scan(&budget)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, ErrClientNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to increase balance",
			zap.Int64("client_id", clientID),
			zap.Error(err),
		)
		return decimal.Zero, fmt.Errorf("increase balance: %w", err)
	}
	return budget, nil
}

func (r *repository) CreateTransaction(ctx context.Context, in TransactionInput) (*Transaction, error) {
	t := Transaction{ClientID: in.ClientID, MethodID: in.MethodID, Amount: in.Amount}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO wallet_transactions (client_id, method_id, amount)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, in.ClientID, in.MethodID, in.Amount).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}
	return &t, nil
}
