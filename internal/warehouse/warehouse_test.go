package warehouse

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShippedByProvider(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	svc := NewService(NewRepository(db))
	ctx := context.Background()
	cols := []string{"order_id", "client_id", "item_id", "product_id", "product_name", "quantity", "state", "updated_at"}

	mock.ExpectQuery(`WHERE p.provider_id = \$1 AND oi.state = 'farmer_shipped'`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(40, 2, 100, 5, "Apples", 3, "farmer_shipped", time.Now()).
			AddRow(41, 6, 101, 5, "Apples", 1, "farmer_shipped", time.Now()))

	items, err := svc.ShippedByProvider(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(101), items[1].ItemID)

	mock.ExpectQuery(`FROM order_items oi`).
		WithArgs(int64(4)).
		WillReturnError(errors.New("db down"))

	_, err = svc.ShippedByProvider(ctx, 4)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
