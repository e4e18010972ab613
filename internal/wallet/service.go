package wallet

import (
	"context"

	"spg-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	PaymentMethods(ctx context.Context) ([]PaymentMethod, error)
	IncreaseBalance(ctx context.Context, clientID int64, amount decimal.Decimal) (decimal.Decimal, error)
	CreateTransaction(ctx context.Context, in TransactionInput) (*Transaction, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) PaymentMethods(ctx context.Context) ([]PaymentMethod, error) {
	return s.repo.PaymentMethods(ctx)
}

func (s *service) IncreaseBalance(ctx context.Context, clientID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "IncreaseBalance"),
		zap.Int64("client_id", clientID),
	)

	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	if clientID <= 0 {
		return decimal.Zero, ErrClientNotFound
	}

	budget, err := s.repo.IncreaseBalance(ctx, clientID, amount)
	if err != nil {
		log.Error("failed to increase balance", zap.Error(err))
		return decimal.Zero, err
	}

	log.Info("balance increased", zap.String("amount", amount.String()), zap.String("budget", budget.String()))
	return budget, nil
}

func (s *service) CreateTransaction(ctx context.Context, in TransactionInput) (*Transaction, error) {
	if in.ClientID <= 0 || in.MethodID <= 0 {
		return nil, ErrInvalidTransaction
	}
	if !in.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	t, err := s.repo.CreateTransaction(ctx, in)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to create transaction", zap.Error(err))
		return nil, err
	}
	return t, nil
}
