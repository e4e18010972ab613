package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var providerColumns = []string{"id", "user_id", "name", "surname", "email", "phone", "company", "address", "city", "created_at"}

func TestRepository_GetByUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	mock.ExpectQuery(`FROM providers WHERE user_id = \$1`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(providerColumns).
			AddRow(3, 9, "Mario", "Rossi", "mario@farm.it", "333", "Cascina Rossi", "Via Po 1", "Torino", now))

	p, err := repo.GetByUserID(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.ID)
	assert.Equal(t, "Cascina Rossi", p.Company)

	mock.ExpectQuery(`FROM providers WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(providerColumns))

	_, err = repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrProviderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkNotified(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec(`UPDATE products SET notified = TRUE WHERE provider_id = \$1 AND id = ANY\(\$2\)`).
		WithArgs(int64(3), pq.Array([]int64{4, 5})).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.MarkNotified(context.Background(), 3, []int64{4, 5})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Counts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`COUNT\(\*\) FILTER \(WHERE status = 'expected'\) FROM products`).
		WithArgs(int64(3), 2024, 10).
		WillReturnRows(sqlmock.NewRows([]string{"count", "expected"}).AddRow(4, 1))

	total, expected, err := repo.ConfirmationCounts(ctx, 3, 2024, 10)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Equal(t, 1, expected)

	mock.ExpectQuery(`FROM order_items oi JOIN products p`).
		WithArgs(int64(3), 2024, 10).
		WillReturnError(errors.New("db down"))

	_, _, err = repo.ShipmentCounts(ctx, 3, 2024, 10)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateApplication(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	in := ApplyInput{Name: "Mario", Surname: "Rossi", Email: "mario@farm.it", Company: "Cascina Rossi"}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO farmer_applications`).
			WithArgs("Mario", "Rossi", "mario@farm.it", "", "Cascina Rossi", "", "", "hash", ApplicationPending).
			WillReturnRows(sqlmock.NewRows([]string{"id", "status", "created_at"}).AddRow(1, "pending", time.Now()))

		a, err := repo.CreateApplication(ctx, in, "hash")
		require.NoError(t, err)
		assert.Equal(t, int64(1), a.ID)
		assert.Equal(t, ApplicationPending, a.Status)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO farmer_applications`).
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := repo.CreateApplication(ctx, in, "hash")
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AcceptApplication(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("Creates user and provider", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`UPDATE farmer_applications SET status = \$1, decided_at = NOW\(\) WHERE id = \$2 AND status = \$3`).
			WithArgs(ApplicationAccepted, int64(1), ApplicationPending).
			WillReturnRows(sqlmock.NewRows([]string{"name", "surname", "email", "phone", "company", "address", "city", "hash"}).
				AddRow("Mario", "Rossi", "mario@farm.it", "333", "Cascina Rossi", "Via Po 1", "Torino", "hash"))
		mock.ExpectQuery(`INSERT INTO users \(name, email, hash, role\) VALUES \(\$1,\$2,\$3,'farmer'\)`).
			WithArgs("Mario", "mario@farm.it", "hash").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
		mock.ExpectQuery(`INSERT INTO providers`).
			WithArgs(int64(9), "Mario", "Rossi", "mario@farm.it", "333", "Cascina Rossi", "Via Po 1", "Torino").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(3, now))
		mock.ExpectCommit()

		p, err := repo.AcceptApplication(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(3), p.ID)
		assert.Equal(t, int64(9), p.UserID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already decided", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`UPDATE farmer_applications`).
			WillReturnRows(sqlmock.NewRows([]string{"name"}))
		mock.ExpectRollback()

		_, err := repo.AcceptApplication(ctx, 1)
		assert.ErrorIs(t, err, ErrApplicationNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Email taken by a user", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`UPDATE farmer_applications`).
			WillReturnRows(sqlmock.NewRows([]string{"name", "surname", "email", "phone", "company", "address", "city", "hash"}).
				AddRow("Mario", "Rossi", "mario@farm.it", "333", "Cascina Rossi", "Via Po 1", "Torino", "hash"))
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectRollback()

		_, err := repo.AcceptApplication(ctx, 1)
		assert.ErrorIs(t, err, ErrEmailExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_RejectApplication(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	mock.ExpectQuery(`UPDATE farmer_applications SET status = \$1`).
		WithArgs(ApplicationRejected, int64(2), ApplicationPending).
		WillReturnRows(sqlmock.NewRows([]string{"name", "surname", "email", "status", "decided_at"}).
			AddRow("Anna", "Bianchi", "anna@farm.it", "rejected", now))

	a, err := repo.RejectApplication(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, ApplicationRejected, a.Status)
	assert.Equal(t, "anna@farm.it", a.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}
