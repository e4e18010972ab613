package category

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "Fruit").
			AddRow(2, "Vegetables")

		mock.ExpectQuery(`SELECT id, name FROM product_categories ORDER BY id`).WillReturnRows(rows)

		res, err := repo.List(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []Category{{ID: 1, Name: "Fruit"}, {ID: 2, Name: "Vegetables"}}, res)
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name FROM product_categories`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		res, err := repo.List(context.Background())
		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.Empty(t, res)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name FROM product_categories`).WillReturnError(errors.New("db error"))

		_, err := repo.List(context.Background())
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name FROM product_categories WHERE id = \$1`).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "Dairy"))

		c, err := repo.GetByID(context.Background(), 3)
		assert.NoError(t, err)
		assert.Equal(t, "Dairy", c.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name FROM product_categories WHERE id = \$1`).
			WithArgs(int64(9)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		_, err := repo.GetByID(context.Background(), 9)
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO product_categories \(name\) VALUES \(\$1\) RETURNING id, name`).
			WithArgs("Honey").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(7, "Honey"))

		c, err := repo.Create(context.Background(), "Honey")
		assert.NoError(t, err)
		assert.Equal(t, int64(7), c.ID)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO product_categories`).WillReturnError(errors.New("db error"))

		_, err := repo.Create(context.Background(), "Honey")
		assert.Error(t, err)
	})
}
