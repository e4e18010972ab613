package user

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
	Create(ctx context.Context, name, email, hash, role string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	EmailAvailable(ctx context.Context, email string) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name, email, hash, role string) (*User, error) {
	log := logger.FromCtx(ctx)

	u := User{Name: name, Email: email, Hash: hash, Role: role}
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO users (name, email, hash, role) VALUES ($1, $2, $3, $4) RETURNING id",
		name, email, hash, role,
	).Scan(&u.ID)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		log.Error("db: failed to insert user",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, email, hash, role FROM users WHERE email = $1",
		email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Hash, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, email, role FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// EmailAvailable is false when the email belongs to a user or to an application still in play.
func (r *repository) EmailAvailable(ctx context.Context, email string) (bool, error) {
	var available bool
	err := r.db.QueryRowContext(ctx, `
		SELECT NOT EXISTS (SELECT 1 FROM users WHERE email = $1)
		   AND NOT EXISTS (SELECT 1 FROM farmer_applications WHERE email = $1 AND status <> 'rejected')
	`, email).Scan(&available)
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return available, nil
}
