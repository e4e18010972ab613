package provider

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"spg-be/internal/auth"
	"spg-be/internal/logger"
	"spg-be/internal/notify"
	"spg-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]Provider, error)
	GetByID(ctx context.Context, id int64) (*Provider, error)

	ExistingProducts(ctx context.Context, providerID int64) ([]ExistingProduct, error)
	Notifications(ctx context.Context, providerID int64) ([]SoldOutProduct, error)
	MarkNotified(ctx context.Context, providerID int64, productIDs []int64) (bool, error)
	ConfirmationStatus(ctx context.Context, providerID int64, year, week int) (bool, error)
	ShipmentStatus(ctx context.Context, providerID int64, year, week int) (bool, error)

	Apply(ctx context.Context, in ApplyInput) (*Application, error)
	PendingApplications(ctx context.Context) ([]Application, error)
	AcceptedApplications(ctx context.Context) ([]Application, error)
	Accept(ctx context.Context, applicationID int64) (*Provider, error)
	Reject(ctx context.Context, applicationID int64) error
}

type service struct {
	repo   Repository
	mailer notify.Sender
}

func NewService(repo Repository, mailer notify.Sender) Service {
	return &service{repo: repo, mailer: mailer}
}

func validWeek(year, week int) bool {
	return year > 0 && week >= 1 && week <= 53
}

func (s *service) List(ctx context.Context) ([]Provider, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Provider, error) {
	if id <= 0 {
		return nil, ErrProviderNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) ExistingProducts(ctx context.Context, providerID int64) ([]ExistingProduct, error) {
	return s.repo.ExistingProducts(ctx, providerID)
}

func (s *service) Notifications(ctx context.Context, providerID int64) ([]SoldOutProduct, error) {
	return s.repo.SoldOutProducts(ctx, providerID)
}

func (s *service) MarkNotified(ctx context.Context, providerID int64, productIDs []int64) (bool, error) {
	if len(productIDs) == 0 {
		return false, ErrNoProducts
	}
	n, err := s.repo.MarkNotified(ctx, providerID, productIDs)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to mark notifications", zap.Error(err))
		return false, err
	}
	return n > 0, nil
}

// ConfirmationStatus is true once the provider declared something for the week
// and nothing is left in expected.
func (s *service) ConfirmationStatus(ctx context.Context, providerID int64, year, week int) (bool, error) {
	if !validWeek(year, week) {
		return false, ErrInvalidWeek
	}
	total, expected, err := s.repo.ConfirmationCounts(ctx, providerID, year, week)
	if err != nil {
		return false, err
	}
	return total > 0 && expected == 0, nil
}

// ShipmentStatus is true once every booked item of the week left the farm.
func (s *service) ShipmentStatus(ctx context.Context, providerID int64, year, week int) (bool, error) {
	if !validWeek(year, week) {
		return false, ErrInvalidWeek
	}
	total, pending, err := s.repo.ShipmentCounts(ctx, providerID, year, week)
	if err != nil {
		return false, err
	}
	return total > 0 && pending == 0, nil
}

func validateApply(in ApplyInput) error {
	switch {
	case strings.TrimSpace(in.Name) == "", strings.TrimSpace(in.Surname) == "":
		return fmt.Errorf("%w: name and surname are required", ErrInvalidApplication)
	case strings.TrimSpace(in.Company) == "":
		return fmt.Errorf("%w: company is required", ErrInvalidApplication)
	case len(in.Password) < 6:
		return fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidApplication)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return fmt.Errorf("%w: invalid email", ErrInvalidApplication)
	}
	return nil
}

func (s *service) Apply(ctx context.Context, in ApplyInput) (*Application, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Apply"),
	)

	in.Email = utils.NormalizeEmail(in.Email)
	if err := validateApply(in); err != nil {
		log.Warn("invalid application", zap.Error(err))
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	app, err := s.repo.CreateApplication(ctx, in, hash)
	if err != nil {
		log.Error("failed to store application", zap.Error(err))
		return nil, err
	}

	log.Info("farmer application received", zap.Int64("application_id", app.ID))
	return app, nil
}

func (s *service) PendingApplications(ctx context.Context) ([]Application, error) {
	return s.repo.ListApplications(ctx, ApplicationPending)
}

func (s *service) AcceptedApplications(ctx context.Context) ([]Application, error) {
	return s.repo.ListApplications(ctx, ApplicationAccepted)
}

func (s *service) Accept(ctx context.Context, applicationID int64) (*Provider, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Accept"),
		zap.Int64("application_id", applicationID),
	)

	p, err := s.repo.AcceptApplication(ctx, applicationID)
	if err != nil {
		log.Error("failed to accept application", zap.Error(err))
		return nil, err
	}
	log.Info("application accepted", zap.Int64("provider_id", p.ID))

	s.tellApplicant(ctx, p.Email, p.Name, p.Company, notify.TemplateApplicationAccepted)
	return p, nil
}

func (s *service) Reject(ctx context.Context, applicationID int64) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Reject"),
		zap.Int64("application_id", applicationID),
	)

	a, err := s.repo.RejectApplication(ctx, applicationID)
	if err != nil {
		log.Error("failed to reject application", zap.Error(err))
		return err
	}
	log.Info("application rejected")

	s.tellApplicant(ctx, a.Email, a.Name, a.Company, notify.TemplateApplicationRejected)
	return nil
}

// the decision is already stored, so a mail failure is only logged
func (s *service) tellApplicant(ctx context.Context, email, name, company, tmpl string) {
	if s.mailer == nil {
		return
	}
	err := s.mailer.Send(ctx, notify.Message{
		To:       email,
		Subject:  "Your farmer application",
		Template: tmpl,
		Data:     map[string]any{"name": name, "company": company},
	})
	if err != nil {
		logger.FromCtx(ctx).Warn("failed to notify applicant", zap.String("email", email), zap.Error(err))
	}
}
