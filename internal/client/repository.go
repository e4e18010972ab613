package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"spg-be/internal/db"
	"spg-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Register(ctx context.Context, in RegisterInput, hash string) (*Client, error)
	List(ctx context.Context) ([]Client, error)
	GetByID(ctx context.Context, id int64) (*Client, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Register creates the login user and the client profile together.
func (r *repository) Register(ctx context.Context, in RegisterInput, hash string) (*Client, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Register"),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	c := Client{
		Name: in.Name, Surname: in.Surname, Gender: in.Gender, Birthdate: in.Birthdate,
		Country: in.Country, Region: in.Region, Address: in.Address, City: in.City,
		Phone: in.Phone, Email: in.Email,
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO users (name, email, hash, role) VALUES ($1, $2, $3, 'client') RETURNING id`,
		in.Name, in.Email, hash,
	).Scan(&c.UserID)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		log.Error("failed to insert client user", zap.Error(err))
		return nil, fmt.Errorf("insert client user: %w", err)
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO clients (user_id, budget, name, surname, gender, birthdate, country, region, address, city, phone, email)
		VALUES ($1, 0, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, budget
	`, c.UserID, in.Name, in.Surname, in.Gender, in.Birthdate, in.Country, in.Region, in.Address, in.City, in.Phone, in.Email,
	).Scan(&c.ID, &c.Budget)
	if err != nil {
		log.Error("failed to insert client", zap.Error(err))
		return nil, fmt.Errorf("insert client: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit client: %w", err)
	}
	return &c, nil
}

const selectClient = `
	SELECT id, user_id, budget, name, surname, gender, birthdate, country, region, address, city, phone, email
	FROM clients
`

func scanClient(row interface{ Scan(...any) error }) (Client, error) {
	var c Client
	err := row.Scan(&c.ID, &c.UserID, &c.Budget, &c.Name, &c.Surname, &c.Gender, &c.Birthdate,
		&c.Country, &c.Region, &c.Address, &c.City, &c.Phone, &c.Email)
	return c, err
}

func (r *repository) List(ctx context.Context) ([]Client, error) {
	rows, err := r.db.QueryContext(ctx, selectClient+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query clients: %w", err)
	}
	defer rows.Close()

	clients := []Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Client, error) {
	c, err := scanClient(r.db.QueryRowContext(ctx, selectClient+` WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}
