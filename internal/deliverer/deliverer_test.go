package deliverer

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliverableOrders(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	svc := NewService(NewRepository(db))
	ctx := context.Background()

	mock.ExpectQuery(`WHERE o.pickup = FALSE AND LOWER\(o.city\) = LOWER\(\$1\) AND oi.state = 'prepared'`).
		WithArgs("Torino").
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_id", "address", "city", "delivery_at", "item_id", "product_name", "quantity", "state"}).
			AddRow(40, 2, "Via Roma 1", "Torino", nil, 100, "Apples", 3, "prepared"))

	items, err := svc.DeliverableOrders(ctx, " Torino ")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(40), items[0].OrderID)
	assert.Equal(t, "Apples", items[0].ProductName)
	assert.NoError(t, mock.ExpectationsWereMet())

	_, err = svc.DeliverableOrders(ctx, "  ")
	assert.ErrorIs(t, err, ErrInvalidCity)
}

func TestGetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	svc := NewService(NewRepository(db))
	ctx := context.Background()
	cols := []string{"id", "user_id", "name", "surname", "email", "city"}

	mock.ExpectQuery(`FROM deliverers WHERE email = \$1`).
		WithArgs("luca@spg.it").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(1, 5, "Luca", "Neri", "luca@spg.it", "Torino"))

	d, err := svc.GetByEmail(ctx, "Luca@SPG.it")
	require.NoError(t, err)
	assert.Equal(t, "Torino", d.City)

	mock.ExpectQuery(`FROM deliverers WHERE email = \$1`).
		WithArgs("ghost@spg.it").
		WillReturnRows(sqlmock.NewRows(cols))

	_, err = svc.GetByEmail(ctx, "ghost@spg.it")
	assert.ErrorIs(t, err, ErrDelivererNotFound)

	mock.ExpectQuery(`FROM deliverers ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(1, 5, "Luca", "Neri", "luca@spg.it", "Torino"))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
