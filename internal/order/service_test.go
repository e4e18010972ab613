package order

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateOrder(ctx context.Context, in PlaceOrderInput) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) PlaceItem(ctx context.Context, orderID, productID int64, quantity int) (*Item, error) {
	args := m.Called(ctx, orderID, productID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Item), args.Error(1)
}

func (m *MockRepository) ListOrders(ctx context.Context) ([]Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Order), args.Error(1)
}

func (m *MockRepository) DeleteItem(ctx context.Context, itemID int64) error {
	return m.Called(ctx, itemID).Error(0)
}

func (m *MockRepository) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error {
	return m.Called(ctx, itemID, quantity).Error(0)
}

func (m *MockRepository) GetItemState(ctx context.Context, itemID int64) (ItemState, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(ItemState), args.Error(1)
}

func (m *MockRepository) ItemStatesByProduct(ctx context.Context, orderID int64, productName string) ([]ItemState, error) {
	args := m.Called(ctx, orderID, productName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ItemState), args.Error(1)
}

func (m *MockRepository) AdvanceItem(ctx context.Context, itemID int64, from, to ItemState) (int64, error) {
	args := m.Called(ctx, itemID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) AdvanceByProduct(ctx context.Context, orderID int64, productName string, from, to ItemState) (int64, error) {
	args := m.Called(ctx, orderID, productName, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) MarkFarmerShipped(ctx context.Context, providerID int64, productIDs []int64) (int64, error) {
	args := m.Called(ctx, providerID, productIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) BookedProducts(ctx context.Context, providerID int64, year, week int) ([]BookedProduct, error) {
	args := m.Called(ctx, providerID, year, week)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BookedProduct), args.Error(1)
}

func (m *MockRepository) PickupOrders(ctx context.Context) ([]PickupOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PickupOrder), args.Error(1)
}

// --- Tests ---

func TestService_PlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Siblings are independent", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		in := PlaceOrderInput{
			ClientID: 2,
			Total:    decimal.NewFromInt(12),
			Items: []PlaceItemInput{
				{ProductID: 5, Quantity: 3},
				{ProductID: 6, Quantity: 100},
				{ProductID: 7, Quantity: 1},
			},
		}

		repo.On("CreateOrder", ctx, in).Return(int64(40), nil)
		repo.On("PlaceItem", ctx, int64(40), int64(5), 3).
			Return(&Item{ID: 100, ProductName: "Apples", Price: decimal.NewFromInt(2)}, nil)
		repo.On("PlaceItem", ctx, int64(40), int64(6), 100).Return(nil, ErrInsufficientStock)
		repo.On("PlaceItem", ctx, int64(40), int64(7), 1).Return(nil, errors.New("conn reset"))

		res, err := svc.PlaceOrder(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, int64(40), res.OrderID)
		require.Len(t, res.Items, 3)

		assert.Equal(t, OutcomePlaced, res.Items[0].Status)
		assert.Equal(t, int64(100), res.Items[0].ItemID)

		assert.Equal(t, OutcomeRejected, res.Items[1].Status)
		assert.Equal(t, ReasonInsufficientStock, res.Items[1].Reason)

		assert.Equal(t, OutcomeRejected, res.Items[2].Status)
		assert.Equal(t, ReasonStoreError, res.Items[2].Reason)
		repo.AssertExpectations(t)
	})

	invalid := []struct {
		name string
		in   PlaceOrderInput
	}{
		{"no client", PlaceOrderInput{Items: []PlaceItemInput{{ProductID: 1, Quantity: 1}}}},
		{"no items", PlaceOrderInput{ClientID: 2}},
		{"zero quantity", PlaceOrderInput{ClientID: 2, Items: []PlaceItemInput{{ProductID: 1, Quantity: 0}}}},
		{"no product", PlaceOrderInput{ClientID: 2, Items: []PlaceItemInput{{Quantity: 1}}}},
		{"negative total", PlaceOrderInput{ClientID: 2, Total: decimal.NewFromInt(-1), Items: []PlaceItemInput{{ProductID: 1, Quantity: 1}}}},
	}
	for _, tc := range invalid {
		t.Run("Rejects "+tc.name, func(t *testing.T) {
			repo := new(MockRepository)
			svc := NewService(repo)

			_, err := svc.PlaceOrder(ctx, tc.in)
			assert.ErrorIs(t, err, ErrInvalidOrder)
			repo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
		})
	}

	t.Run("Header failure", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		in := PlaceOrderInput{ClientID: 2, Items: []PlaceItemInput{{ProductID: 1, Quantity: 1}}}
		repo.On("CreateOrder", ctx, in).Return(int64(0), errors.New("db down"))

		_, err := svc.PlaceOrder(ctx, in)
		assert.Error(t, err)
		repo.AssertNotCalled(t, "PlaceItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_AdvanceItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid step", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("AdvanceItem", ctx, int64(10), StateFarmerShipped, StatePrepared).Return(int64(1), nil)

		assert.NoError(t, svc.AdvanceItem(ctx, 10, StatePrepared))
		repo.AssertNotCalled(t, "GetItemState", mock.Anything, mock.Anything)
	})

	t.Run("Skipping a state", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("AdvanceItem", ctx, int64(10), StatePrepared, StateDelivered).Return(int64(0), nil)
		repo.On("GetItemState", ctx, int64(10)).Return(StatePending, nil)

		err := svc.AdvanceItem(ctx, 10, StateDelivered)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("Back to pending", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		err := svc.AdvanceItem(ctx, 10, StatePending)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		repo.AssertNotCalled(t, "AdvanceItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing item", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("AdvanceItem", ctx, int64(99), StatePending, StateFarmerShipped).Return(int64(0), nil)
		repo.On("GetItemState", ctx, int64(99)).Return(ItemState(""), ErrItemNotFound)

		assert.ErrorIs(t, svc.AdvanceItem(ctx, 99, StateFarmerShipped), ErrItemNotFound)
	})
}

func TestService_AdvanceByProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Delivered", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("ItemStatesByProduct", ctx, int64(1), "Apples").Return([]ItemState{StatePrepared, StatePrepared}, nil)
		repo.On("AdvanceByProduct", ctx, int64(1), "Apples", StatePrepared, StateDelivered).Return(int64(2), nil)

		assert.NoError(t, svc.AdvanceByProduct(ctx, 1, "Apples", StateDelivered))
		repo.AssertExpectations(t)
	})

	t.Run("Already delivered", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("ItemStatesByProduct", ctx, int64(1), "Apples").Return([]ItemState{StateDelivered}, nil)

		err := svc.AdvanceByProduct(ctx, 1, "Apples", StateDelivered)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Contains(t, err.Error(), "delivered -> delivered")
		repo.AssertNotCalled(t, "AdvanceByProduct", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Mixed states are refused", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("ItemStatesByProduct", ctx, int64(1), "Apples").
			Return([]ItemState{StatePrepared, StatePending, StatePrepared}, nil)

		err := svc.AdvanceByProduct(ctx, 1, "Apples", StateDelivered)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Contains(t, err.Error(), "mixed states [pending prepared] -> delivered")
		repo.AssertNotCalled(t, "AdvanceByProduct", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Items changed before update", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("ItemStatesByProduct", ctx, int64(1), "Apples").Return([]ItemState{StatePrepared, StatePrepared}, nil)
		repo.On("AdvanceByProduct", ctx, int64(1), "Apples", StatePrepared, StateDelivered).Return(int64(0), nil)

		err := svc.AdvanceByProduct(ctx, 1, "Apples", StateDelivered)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Contains(t, err.Error(), "0 of 2 items advanced")
	})

	t.Run("Unknown product", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("ItemStatesByProduct", ctx, int64(1), "Kiwi").Return([]ItemState{}, nil)

		assert.ErrorIs(t, svc.AdvanceByProduct(ctx, 1, "Kiwi", StatePrepared), ErrItemNotFound)
	})

	t.Run("State lookup fails", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		dbErr := errors.New("db down")
		repo.On("ItemStatesByProduct", ctx, int64(1), "Apples").Return(nil, dbErr)

		assert.ErrorIs(t, svc.AdvanceByProduct(ctx, 1, "Apples", StateDelivered), dbErr)
	})
}

func TestService_MarkFarmerShipped(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("MarkFarmerShipped", ctx, int64(3), []int64{5, 6}).Return(int64(2), nil)

	n, err := svc.MarkFarmerShipped(ctx, 3, []int64{5, 6})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = svc.MarkFarmerShipped(ctx, 3, nil)
	assert.ErrorIs(t, err, ErrNoProducts)
}

func TestService_ItemMaintenance(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("UpdateItemQuantity", ctx, int64(10), 4).Return(nil)
	repo.On("DeleteItem", ctx, int64(10)).Return(nil)
	repo.On("UpdateItemQuantity", ctx, int64(11), 300).Return(ErrInsufficientStock)

	assert.NoError(t, svc.UpdateItemQuantity(ctx, 10, 4))
	assert.ErrorIs(t, svc.UpdateItemQuantity(ctx, 10, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, svc.UpdateItemQuantity(ctx, 11, 300), ErrInsufficientStock)
	assert.NoError(t, svc.DeleteItem(ctx, 10))
	assert.ErrorIs(t, svc.DeleteItem(ctx, 0), ErrItemNotFound)

	_, err := svc.BookedProducts(ctx, 3, 2024, 60)
	assert.ErrorIs(t, err, ErrInvalidWeek)
}
