package category

import (
	"context"
	"strings"

	"spg-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id int64) (*Category, error)
	Create(ctx context.Context, name string) (*Category, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Category, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, name string) (*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
	)

	name = strings.TrimSpace(name)
	if name == "" {
		log.Warn("empty category name")
		return nil, ErrInvalidName
	}

	c, err := s.repo.Create(ctx, name)
	if err != nil {
		log.Error("failed to create category", zap.Error(err))
		return nil, err
	}

	log.Info("category created", zap.Int64("category_id", c.ID))
	return c, nil
}
