package category

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Category), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, name string) (*Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success trims name", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, "Eggs").Return(&Category{ID: 4, Name: "Eggs"}, nil)

		c, err := svc.Create(ctx, "  Eggs ")
		assert.NoError(t, err)
		assert.Equal(t, int64(4), c.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Empty name", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Create(ctx, "   ")
		assert.ErrorIs(t, err, ErrInvalidName)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Repo error", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, "Eggs").Return(nil, errors.New("db error"))

		_, err := svc.Create(ctx, "Eggs")
		assert.Error(t, err)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("List", ctx).Return([]Category{{ID: 1, Name: "Fruit"}}, nil)

	res, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	repo.AssertExpectations(t)
}
