package user

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"spg-be/internal/auth"
	"spg-be/internal/logger"
	"spg-be/internal/provider"
	"spg-be/internal/utils"

	"go.uber.org/zap"
)

// ProviderFinder resolves the provider record behind a farmer account.
type ProviderFinder interface {
	GetByUserID(ctx context.Context, userID int64) (*provider.Provider, error)
}

type Service interface {
	Login(ctx context.Context, email, password string) (auth.Identity, error)
	Create(ctx context.Context, in CreateInput) (*User, error)
	List(ctx context.Context) ([]User, error)
	EmailAvailable(ctx context.Context, email string) (bool, error)
}

type service struct {
	repo      Repository
	providers ProviderFinder
}

func NewService(repo Repository, providers ProviderFinder) Service {
	return &service{repo: repo, providers: providers}
}

func (s *service) Login(ctx context.Context, email, password string) (auth.Identity, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
	)

	email = utils.NormalizeEmail(email)
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Info("email not found")
			return auth.Identity{}, ErrInvalidCredentials
		}
		log.Error("failed to load user", zap.Error(err))
		return auth.Identity{}, err
	}

	if !auth.CheckPasswordHash(password, u.Hash) {
		log.Info("password not match", zap.Int64("user_id", u.ID))
		return auth.Identity{}, ErrInvalidCredentials
	}

	id := auth.Identity{UserID: u.ID, Email: u.Email, Role: u.Role, Name: u.Name}
	if u.Role == utils.RoleFarmer && s.providers != nil {
		p, err := s.providers.GetByUserID(ctx, u.ID)
		switch {
		case err == nil:
			id.ProviderID = &p.ID
		case errors.Is(err, provider.ErrProviderNotFound):
			log.Warn("farmer without provider record", zap.Int64("user_id", u.ID))
		default:
			log.Error("failed to load provider", zap.Error(err))
			return auth.Identity{}, err
		}
	}

	log.Info("login succeeded", zap.Int64("user_id", u.ID), zap.String("role", u.Role))
	return id, nil
}

func (s *service) Create(ctx context.Context, in CreateInput) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
	)

	in.Email = utils.NormalizeEmail(in.Email)
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidUser)
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidUser)
	}
	if !utils.IsKnownRole(in.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidUser, in.Role)
	}
	if len(in.Password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidUser)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	u, err := s.repo.Create(ctx, strings.TrimSpace(in.Name), in.Email, hash, in.Role)
	if err != nil {
		log.Error("failed to create user", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}

	log.Info("user created", zap.Int64("user_id", u.ID), zap.String("role", u.Role))
	return u, nil
}

func (s *service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *service) EmailAvailable(ctx context.Context, email string) (bool, error) {
	email = utils.NormalizeEmail(email)
	if email == "" {
		return false, fmt.Errorf("%w: empty email", ErrInvalidUser)
	}
	return s.repo.EmailAvailable(ctx, email)
}
