package wallet

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) PaymentMethods(ctx context.Context) ([]PaymentMethod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PaymentMethod), args.Error(1)
}

func (m *MockRepository) IncreaseBalance(ctx context.Context, clientID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, clientID, amount)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockRepository) CreateTransaction(ctx context.Context, in TransactionInput) (*Transaction, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Transaction), args.Error(1)
}

func TestRepository_IncreaseBalance(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	amount := decimal.RequireFromString("10.50")

	mock.ExpectQuery(`UPDATE clients SET budget = budget \+ \$1 WHERE id = \$2 RETURNING budget`).
		WithArgs(amount, int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"budget"}).AddRow("30.50"))

	budget, err := repo.IncreaseBalance(ctx, 4, amount)
	require.NoError(t, err)
	assert.Equal(t, "30.5", budget.String())

	mock.ExpectQuery(`UPDATE clients SET budget`).
		WithArgs(amount, int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"budget"}))

	_, err = repo.IncreaseBalance(ctx, 99, amount)
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_PaymentMethodsAndTransactions(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT id, name FROM payment_methods`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "cash").AddRow(2, "credit card"))

	methods, err := repo.PaymentMethods(ctx)
	require.NoError(t, err)
	assert.Len(t, methods, 2)

	in := TransactionInput{ClientID: 4, MethodID: 2, Amount: decimal.NewFromInt(20)}
	mock.ExpectQuery(`INSERT INTO wallet_transactions \(client_id, method_id, amount\)`).
		WithArgs(int64(4), int64(2), in.Amount).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, time.Now()))

	tx, err := repo.CreateTransaction(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, int64(7), tx.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_IncreaseBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("Rejects non positive amounts", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.IncreaseBalance(ctx, 4, decimal.Zero)
		assert.ErrorIs(t, err, ErrInvalidAmount)
		_, err = svc.IncreaseBalance(ctx, 4, decimal.NewFromInt(-5))
		assert.ErrorIs(t, err, ErrInvalidAmount)
		repo.AssertNotCalled(t, "IncreaseBalance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		amount := decimal.NewFromInt(5)

		repo.On("IncreaseBalance", ctx, int64(4), amount).Return(decimal.NewFromInt(15), nil)

		budget, err := svc.IncreaseBalance(ctx, 4, amount)
		require.NoError(t, err)
		assert.True(t, budget.Equal(decimal.NewFromInt(15)))
	})
}

func TestService_CreateTransaction(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)

	_, err := svc.CreateTransaction(ctx, TransactionInput{ClientID: 4, Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, ErrInvalidTransaction)

	_, err = svc.CreateTransaction(ctx, TransactionInput{ClientID: 4, MethodID: 1})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	in := TransactionInput{ClientID: 4, MethodID: 1, Amount: decimal.NewFromInt(3)}
	repo.On("CreateTransaction", ctx, in).Return(&Transaction{ID: 9}, nil)

	tx, err := svc.CreateTransaction(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, int64(9), tx.ID)
}
