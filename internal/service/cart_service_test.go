package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	domainerrors "fitbite/internal/errors"
	"fitbite/internal/model"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCartService_GetCart(t *testing.T) {
	custom := 5500
	tests := []struct {
		name          string
		setupMock     func(*MockCartRepository)
		expectedTotal int
		expectedItems int
	}{
		{
			name: "empty cart created on first access",
			setupMock: func(m *MockCartRepository) {
				m.On("FindOrCreateByUserID", mock.Anything, uint(1)).Return(&model.Cart{ID: 10, UserID: 1}, nil)
			},
			expectedTotal: 0,
			expectedItems: 0,
		},
		{
			name: "total uses custom price over base price",
			setupMock: func(m *MockCartRepository) {
				m.On("FindOrCreateByUserID", mock.Anything, uint(1)).Return(&model.Cart{
					ID:     10,
					UserID: 1,
					Items: []model.CartItem{
						{ID: 1, ProductID: 3, Quantity: 2, Product: model.Product{ID: 3, BasePrice: 4990}},
						{ID: 2, ProductID: 3, Quantity: 1, CustomPrice: &custom, Product: model.Product{ID: 3, BasePrice: 4990}},
					},
				}, nil)
			},
			expectedTotal: 2*4990 + 5500,
			expectedItems: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCartRepo := new(MockCartRepository)
			mockProductRepo := new(MockProductRepository)
			tt.setupMock(mockCartRepo)

			service := NewCartService(mockCartRepo, mockProductRepo)
			view, err := service.GetCart(context.Background(), 1)

			assert.NoError(t, err)
			assert.NotNil(t, view)
			assert.Equal(t, tt.expectedTotal, view.Total)
			assert.Len(t, view.Items, tt.expectedItems)
			mockCartRepo.AssertExpectations(t)
		})
	}
}

func TestCartService_AddItem(t *testing.T) {
	available := &model.Product{ID: 3, Name: "Protein Bowl", BasePrice: 4990, Available: true}

	tests := []struct {
		name            string
		productID       uint
		quantity        int
		personalization string
		customPrice     *int
		setupMock       func(*MockCartRepository, *MockProductRepository)
		expectedError   error
	}{
		{
			name:      "unknown product",
			productID: 99,
			quantity:  1,
			setupMock: func(mc *MockCartRepository, mp *MockProductRepository) {
				mp.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: domainerrors.ErrProductNotFound,
		},
		{
			name:      "unavailable product",
			productID: 4,
			quantity:  1,
			setupMock: func(mc *MockCartRepository, mp *MockProductRepository) {
				mp.On("FindByID", mock.Anything, uint(4)).Return(&model.Product{ID: 4, Available: false}, nil)
			},
			expectedError: domainerrors.ErrProductUnavailable,
		},
		{
			name:      "plain line merges with existing plain line",
			productID: 3,
			quantity:  2,
			setupMock: func(mc *MockCartRepository, mp *MockProductRepository) {
				mp.On("FindByID", mock.Anything, uint(3)).Return(available, nil)
				mc.On("FindOrCreateByUserID", mock.Anything, uint(1)).Return(&model.Cart{ID: 10, UserID: 1}, nil)
				mc.On("FindPlainItem", mock.Anything, uint(10), uint(3)).Return(&model.CartItem{ID: 7, CartID: 10, ProductID: 3, Quantity: 1}, nil)
				mc.On("SaveItem", mock.Anything, mock.MatchedBy(func(item *model.CartItem) bool {
					return item.ID == 7 && item.Quantity == 3
				})).Return(nil)
			},
		},
		{
			name:      "plain line appended when no plain line exists",
			productID: 3,
			quantity:  1,
			setupMock: func(mc *MockCartRepository, mp *MockProductRepository) {
				mp.On("FindByID", mock.Anything, uint(3)).Return(available, nil)
				mc.On("FindOrCreateByUserID", mock.Anything, uint(1)).Return(&model.Cart{ID: 10, UserID: 1}, nil)
				mc.On("FindPlainItem", mock.Anything, uint(10), uint(3)).Return(nil, gorm.ErrRecordNotFound)
				mc.On("CreateItem", mock.Anything, mock.MatchedBy(func(item *model.CartItem) bool {
					return item.CartID == 10 && item.ProductID == 3 && item.Quantity == 1 && item.Personalization == nil
				})).Return(nil)
			},
		},
		{
			name:            "personalized line never merges",
			productID:       3,
			quantity:        1,
			personalization: "Bowl sin cebolla",
			setupMock: func(mc *MockCartRepository, mp *MockProductRepository) {
				mp.On("FindByID", mock.Anything, uint(3)).Return(available, nil)
				mc.On("FindOrCreateByUserID", mock.Anything, uint(1)).Return(&model.Cart{ID: 10, UserID: 1}, nil)
				mc.On("CreateItem", mock.Anything, mock.MatchedBy(func(item *model.CartItem) bool {
					return item.Personalization != nil && *item.Personalization == "Bowl sin cebolla"
				})).Return(nil)
			},
		},
		{
			name:        "custom priced line never merges",
			productID:   3,
			quantity:    1,
			customPrice: intPtr(6200),
			setupMock: func(mc *MockCartRepository, mp *MockProductRepository) {
				mp.On("FindByID", mock.Anything, uint(3)).Return(available, nil)
				mc.On("FindOrCreateByUserID", mock.Anything, uint(1)).Return(&model.Cart{ID: 10, UserID: 1}, nil)
				mc.On("CreateItem", mock.Anything, mock.MatchedBy(func(item *model.CartItem) bool {
					return item.CustomPrice != nil && *item.CustomPrice == 6200 && item.Personalization == nil
				})).Return(nil)
			},
		},
		{
			name:      "quantity below one clamps to one",
			productID: 3,
			quantity:  0,
			setupMock: func(mc *MockCartRepository, mp *MockProductRepository) {
				mp.On("FindByID", mock.Anything, uint(3)).Return(available, nil)
				mc.On("FindOrCreateByUserID", mock.Anything, uint(1)).Return(&model.Cart{ID: 10, UserID: 1}, nil)
				mc.On("FindPlainItem", mock.Anything, uint(10), uint(3)).Return(nil, gorm.ErrRecordNotFound)
				mc.On("CreateItem", mock.Anything, mock.MatchedBy(func(item *model.CartItem) bool {
					return item.Quantity == 1
				})).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCartRepo := new(MockCartRepository)
			mockProductRepo := new(MockProductRepository)
			tt.setupMock(mockCartRepo, mockProductRepo)

			service := NewCartService(mockCartRepo, mockProductRepo)
			err := service.AddItem(context.Background(), 1, tt.productID, tt.quantity, tt.personalization, tt.customPrice)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			mockCartRepo.AssertExpectations(t)
			mockProductRepo.AssertExpectations(t)
		})
	}
}

func TestCartService_RemoveItem(t *testing.T) {
	t.Run("removes owned item", func(t *testing.T) {
		mockCartRepo := new(MockCartRepository)
		mockCartRepo.On("FindItemForUser", mock.Anything, uint(7), uint(1)).Return(&model.CartItem{ID: 7}, nil)
		mockCartRepo.On("DeleteItem", mock.Anything, uint(7)).Return(nil)

		service := NewCartService(mockCartRepo, new(MockProductRepository))
		err := service.RemoveItem(context.Background(), 1, 7)

		assert.NoError(t, err)
		mockCartRepo.AssertExpectations(t)
	})

	t.Run("item of another user reads as not found", func(t *testing.T) {
		mockCartRepo := new(MockCartRepository)
		mockCartRepo.On("FindItemForUser", mock.Anything, uint(7), uint(2)).Return(nil, gorm.ErrRecordNotFound)

		service := NewCartService(mockCartRepo, new(MockProductRepository))
		err := service.RemoveItem(context.Background(), 2, 7)

		assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
		mockCartRepo.AssertExpectations(t)
	})
}

func TestCartService_Clear(t *testing.T) {
	t.Run("clears existing cart", func(t *testing.T) {
		mockCartRepo := new(MockCartRepository)
		mockCartRepo.On("FindByUserID", mock.Anything, uint(1)).Return(&model.Cart{ID: 10, UserID: 1}, nil)
		mockCartRepo.On("ClearItems", mock.Anything, uint(10)).Return(nil)

		service := NewCartService(mockCartRepo, new(MockProductRepository))
		err := service.Clear(context.Background(), 1)

		assert.NoError(t, err)
		mockCartRepo.AssertExpectations(t)
	})

	t.Run("missing cart is not an error", func(t *testing.T) {
		mockCartRepo := new(MockCartRepository)
		mockCartRepo.On("FindByUserID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)

		service := NewCartService(mockCartRepo, new(MockProductRepository))
		err := service.Clear(context.Background(), 1)

		assert.NoError(t, err)
		mockCartRepo.AssertExpectations(t)
	})
}
