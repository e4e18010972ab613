package provider

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"spg-be/internal/db"
	"spg-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]Provider, error)
	GetByID(ctx context.Context, id int64) (*Provider, error)
	GetByUserID(ctx context.Context, userID int64) (*Provider, error)

	ExistingProducts(ctx context.Context, providerID int64) ([]ExistingProduct, error)
	SoldOutProducts(ctx context.Context, providerID int64) ([]SoldOutProduct, error)
	MarkNotified(ctx context.Context, providerID int64, productIDs []int64) (int64, error)
	ConfirmationCounts(ctx context.Context, providerID int64, year, week int) (total, expected int, err error)
	ShipmentCounts(ctx context.Context, providerID int64, year, week int) (total, pending int, err error)

	CreateApplication(ctx context.Context, in ApplyInput, hash string) (*Application, error)
	ListApplications(ctx context.Context, status ApplicationStatus) ([]Application, error)
	AcceptApplication(ctx context.Context, id int64) (*Provider, error)
	RejectApplication(ctx context.Context, id int64) (*Application, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const selectProvider = `
	SELECT id, user_id, name, surname, email, phone, company, address, city, created_at
	FROM providers
`

func scanProvider(row interface{ Scan(...any) error }) (Provider, error) {
	var p Provider
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Surname, &p.Email, &p.Phone, &p.Company, &p.Address, &p.City, &p.CreatedAt)
	return p, err
}

func (r *repository) List(ctx context.Context) ([]Provider, error) {
	rows, err := r.db.QueryContext(ctx, selectProvider+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query providers: %w", err)
	}
	defer rows.Close()

	providers := []Provider{}
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}
	return providers, rows.Err()
}

func (r *repository) getOne(ctx context.Context, where string, arg any) (*Provider, error) {
	p, err := scanProvider(r.db.QueryRowContext(ctx, selectProvider+where, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get provider: %w", err)
	}
	return &p, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Provider, error) {
	return r.getOne(ctx, ` WHERE id = $1`, id)
}

func (r *repository) GetByUserID(ctx context.Context, userID int64) (*Provider, error) {
	return r.getOne(ctx, ` WHERE user_id = $1`, userID)
}

func (r *repository) ExistingProducts(ctx context.Context, providerID int64) ([]ExistingProduct, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT ON (name) name, description, category_id, unit, price
		FROM products
		WHERE provider_id = $1
		ORDER BY name, id DESC
	`, providerID)
	if err != nil {
		return nil, fmt.Errorf("query existing products: %w", err)
	}
	defer rows.Close()

	products := []ExistingProduct{}
	for rows.Next() {
		var p ExistingProduct
		if err := rows.Scan(&p.Name, &p.Description, &p.CategoryID, &p.Unit, &p.Price); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) SoldOutProducts(ctx context.Context, providerID int64) ([]SoldOutProduct, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, year, week_number
		FROM products
		WHERE provider_id = $1 AND status = 'confirmed' AND quantity = 0 AND notified = FALSE
		ORDER BY id
	`, providerID)
	if err != nil {
		return nil, fmt.Errorf("query sold out products: %w", err)
	}
	defer rows.Close()

	products := []SoldOutProduct{}
	for rows.Next() {
		var p SoldOutProduct
		if err := rows.Scan(&p.ID, &p.Name, &p.Year, &p.Week); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) MarkNotified(ctx context.Context, providerID int64, productIDs []int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products SET notified = TRUE
		WHERE provider_id = $1 AND id = ANY($2)
	`, providerID, pq.Array(productIDs))
	if err != nil {
		return 0, fmt.Errorf("mark products notified: %w", err)
	}
	return res.RowsAffected()
}

func (r *repository) ConfirmationCounts(ctx context.Context, providerID int64, year, week int) (int, int, error) {
	var total, expected int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'expected')
		FROM products
		WHERE provider_id = $1 AND year = $2 AND week_number = $3
	`, providerID, year, week).Scan(&total, &expected)
	if err != nil {
		return 0, 0, fmt.Errorf("count confirmations: %w", err)
	}
	return total, expected, nil
}

func (r *repository) ShipmentCounts(ctx context.Context, providerID int64, year, week int) (int, int, error) {
	var total, pending int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE oi.state = 'pending')
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE p.provider_id = $1 AND p.year = $2 AND p.week_number = $3
	`, providerID, year, week).Scan(&total, &pending)
	if err != nil {
		return 0, 0, fmt.Errorf("count shipments: %w", err)
	}
	return total, pending, nil
}

func (r *repository) CreateApplication(ctx context.Context, in ApplyInput, hash string) (*Application, error) {
	a := Application{
		Name: in.Name, Surname: in.Surname, Email: in.Email, Phone: in.Phone,
		Company: in.Company, Address: in.Address, City: in.City,
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO farmer_applications (name, surname, email, phone, company, address, city, hash, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id, status, created_at
	`, in.Name, in.Surname, in.Email, in.Phone, in.Company, in.Address, in.City, hash, ApplicationPending,
	).Scan(&a.ID, &a.Status, &a.CreatedAt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		logger.FromCtx(ctx).Error("db: failed to insert application",
			zap.String("email", in.Email),
			zap.Error(err),
		)
		return nil, fmt.Errorf("insert application: %w", err)
	}
	return &a, nil
}

func (r *repository) ListApplications(ctx context.Context, status ApplicationStatus) ([]Application, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, surname, email, phone, company, address, city, status, created_at, decided_at
		FROM farmer_applications
		WHERE status = $1
		ORDER BY created_at
	`, status)
	if err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}
	defer rows.Close()

	apps := []Application{}
	for rows.Next() {
		var a Application
		if err := rows.Scan(&a.ID, &a.Name, &a.Surname, &a.Email, &a.Phone, &a.Company, &a.Address, &a.City, &a.Status, &a.CreatedAt, &a.DecidedAt); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// AcceptApplication marks the application accepted and creates the farmer's user and
// provider rows in one transaction.
func (r *repository) AcceptApplication(ctx context.Context, id int64) (*Provider, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "AcceptApplication"),
		zap.Int64("application_id", id),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var p Provider
	var hash string
	err = tx.QueryRowContext(ctx, `
		UPDATE farmer_applications SET status = $1, decided_at = NOW()
		WHERE id = $2 AND status = $3
		RETURNING name, surname, email, phone, company, address, city, hash
	`, ApplicationAccepted, id, ApplicationPending,
	).Scan(&p.Name, &p.Surname, &p.Email, &p.Phone, &p.Company, &p.Address, &p.City, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		log.Error("failed to update application", zap.Error(err))
		return nil, fmt.Errorf("accept application: %w", err)
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO users (name, email, hash, role) VALUES ($1,$2,$3,'farmer') RETURNING id
	`, p.Name, p.Email, hash).Scan(&p.UserID)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		log.Error("failed to insert farmer user", zap.Error(err))
		return nil, fmt.Errorf("insert farmer user: %w", err)
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO providers (user_id, name, surname, email, phone, company, address, city)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id, created_at
	`, p.UserID, p.Name, p.Surname, p.Email, p.Phone, p.Company, p.Address, p.City,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		log.Error("failed to insert provider", zap.Error(err))
		return nil, fmt.Errorf("insert provider: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit accept: %w", err)
	}
	return &p, nil
}

func (r *repository) RejectApplication(ctx context.Context, id int64) (*Application, error) {
	a := Application{ID: id}
	err := r.db.QueryRowContext(ctx, `
		UPDATE farmer_applications SET status = $1, decided_at = NOW()
		WHERE id = $2 AND status = $3
		RETURNING name, surname, email, status, decided_at
	`, ApplicationRejected, id, ApplicationPending,
	).Scan(&a.Name, &a.Surname, &a.Email, &a.Status, &a.DecidedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reject application: %w", err)
	}
	return &a, nil
}
