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

func TestCatalogService_ListProducts(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockProductRepo.On("List", mock.Anything).Return([]model.Product{
		{ID: 1, Name: "Protein Bowl", BasePrice: 4990, Available: true},
		{ID: 2, Name: "Energy Bar", BasePrice: 1990, Available: false},
	}, nil)

	service := NewCatalogService(mockProductRepo, nil)
	products, err := service.ListProducts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, "Protein Bowl", products[0].Name)
	mockProductRepo.AssertExpectations(t)
}

func TestCatalogService_GetProduct(t *testing.T) {
	t.Run("existing product", func(t *testing.T) {
		mockProductRepo := new(MockProductRepository)
		mockProductRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Product{ID: 1, Name: "Protein Bowl"}, nil)

		service := NewCatalogService(mockProductRepo, nil)
		product, err := service.GetProduct(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, "Protein Bowl", product.Name)
		mockProductRepo.AssertExpectations(t)
	})

	t.Run("unknown product", func(t *testing.T) {
		mockProductRepo := new(MockProductRepository)
		mockProductRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewCatalogService(mockProductRepo, nil)
		product, err := service.GetProduct(context.Background(), 99)

		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
		assert.Nil(t, product)
		mockProductRepo.AssertExpectations(t)
	})
}
