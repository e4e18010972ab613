package client

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"spg-be/internal/auth"
	"spg-be/internal/logger"
	"spg-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, in RegisterInput) (*Client, error)
	List(ctx context.Context) ([]Client, error)
	GetByID(ctx context.Context, id int64) (*Client, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, in RegisterInput) (*Client, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
	)

	in.Email = utils.NormalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	in.Surname = strings.TrimSpace(in.Surname)
	switch {
	case in.Name == "" || in.Surname == "":
		return nil, fmt.Errorf("%w: name and surname are required", ErrInvalidClient)
	case len(in.Password) < 6:
		return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidClient)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidClient)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	c, err := s.repo.Register(ctx, in, hash)
	if err != nil {
		log.Error("failed to register client", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}

	log.Info("client registered", zap.Int64("client_id", c.ID))
	return c, nil
}

func (s *service) List(ctx context.Context) ([]Client, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Client, error) {
	return s.repo.GetByID(ctx, id)
}
