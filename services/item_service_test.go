package services

import (
	"context"
	"testing"

	"shophub/models"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockItemRepository struct{ mock.Mock }

func (m *MockItemRepository) Create(ctx context.Context, item *models.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemRepository) FindAll(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Item), args.Error(1)
}
func (m *MockItemRepository) FindByID(ctx context.Context, id int) (*models.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}
func (m *MockItemRepository) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockItemRepository) Update(ctx context.Context, item *models.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockItemRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestGetItemNotFound(t *testing.T) {
	repo := new(MockItemRepository)
	repo.On("FindByID", mock.Anything, 999).Return(nil, pgx.ErrNoRows)

	svc := NewItemService(repo)
	_, err := svc.GetItem(context.Background(), 999)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestUpdateItemKeepsUnsetFields(t *testing.T) {
	stored := &models.Item{
		ID:          1,
		Name:        "Mug",
		Description: "A mug",
		Price:       9.5,
		Category:    "kitchen",
	}

	repo := new(MockItemRepository)
	repo.On("FindByID", mock.Anything, 1).Return(stored, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*models.Item")).Return(nil)

	svc := NewItemService(repo)
	newPrice := 12.0
	updated, err := svc.UpdateItem(context.Background(), 1, models.UpdateItemRequest{
		Price: &newPrice,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Mug", updated.Name)
	assert.Equal(t, "A mug", updated.Description)
	assert.Equal(t, "kitchen", updated.Category)
	assert.Equal(t, 12.0, updated.Price)
}

func TestUpdateItemUnknownID(t *testing.T) {
	repo := new(MockItemRepository)
	repo.On("FindByID", mock.Anything, 5).Return(nil, pgx.ErrNoRows)

	svc := NewItemService(repo)
	_, err := svc.UpdateItem(context.Background(), 5, models.UpdateItemRequest{})
	assert.ErrorIs(t, err, ErrItemNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteItemUnknownID(t *testing.T) {
	repo := new(MockItemRepository)
	repo.On("FindByID", mock.Anything, 5).Return(nil, pgx.ErrNoRows)

	svc := NewItemService(repo)
	err := svc.DeleteItem(context.Background(), 5)
	assert.ErrorIs(t, err, ErrItemNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
