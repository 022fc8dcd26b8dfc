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

func TestBillingService_InvoiceData(t *testing.T) {
	t.Run("assembles customer, lines and company", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		mockOrderRepo.On("FindByIDForUser", mock.Anything, uint(5), uint(7)).Return(&model.Order{
			ID:     5,
			UserID: 7,
			Total:  12980,
			Status: model.StatusPaid,
			Items: []model.OrderItem{
				{ProductName: "Protein Bowl", UnitPrice: 4990, Quantity: 2},
				{ProductName: "Energy Bar", UnitPrice: 1990, Quantity: 1},
			},
		}, nil)

		mockUserRepo := new(MockUserRepository)
		mockUserRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{
			ID:      7,
			Name:    "Maria Lopez",
			Email:   "maria@example.com",
			RUT:     "12.345.678-5",
			Address: "Av. Italia 850",
		}, nil)

		orderService := NewOrderService(mockOrderRepo, new(MockCartRepository))
		service := NewBillingService(mockUserRepo, orderService)

		data, err := service.InvoiceData(context.Background(), 7, 5)

		assert.NoError(t, err)
		assert.Equal(t, uint(5), data.OrderID)
		assert.Equal(t, 12980, data.Total)
		assert.Equal(t, "Maria Lopez", data.Customer.Name)
		assert.Equal(t, "12.345.678-5", data.Customer.RUT)
		assert.Len(t, data.Lines, 2)
		assert.Equal(t, InvoiceLine{Name: "Protein Bowl", UnitPrice: 4990, Quantity: 2}, data.Lines[0])
		assert.Equal(t, "FitBite SpA", data.Company.Name)
		mockOrderRepo.AssertExpectations(t)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("order of another user reads as not found", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		mockOrderRepo.On("FindByIDForUser", mock.Anything, uint(5), uint(8)).Return(nil, gorm.ErrRecordNotFound)

		orderService := NewOrderService(mockOrderRepo, new(MockCartRepository))
		service := NewBillingService(new(MockUserRepository), orderService)

		data, err := service.InvoiceData(context.Background(), 8, 5)

		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
		assert.Nil(t, data)
		mockOrderRepo.AssertExpectations(t)
	})
}

func TestBillingService_IssueReceipt(t *testing.T) {
	t.Run("valid request yields folio and pdf url", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		mockOrderRepo.On("FindByIDForUser", mock.Anything, uint(5), uint(7)).Return(&model.Order{ID: 5, UserID: 7}, nil)

		orderService := NewOrderService(mockOrderRepo, new(MockCartRepository))
		service := NewBillingService(new(MockUserRepository), orderService)

		result, err := service.IssueReceipt(context.Background(), 7, ReceiptRequest{
			OrderID: 5,
			RUT:     "12.345.678-5",
			Email:   "maria@example.com",
		})

		assert.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "B00000005", result.Folio)
		assert.Equal(t, "/receipts/B00000005.pdf", result.PDFURL)
		mockOrderRepo.AssertExpectations(t)
	})

	t.Run("invalid rut is rejected before any lookup", func(t *testing.T) {
		service := NewBillingService(new(MockUserRepository), NewOrderService(new(MockOrderRepository), new(MockCartRepository)))

		result, err := service.IssueReceipt(context.Background(), 7, ReceiptRequest{
			OrderID: 5,
			RUT:     "12.345.678-9",
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidRUT)
		assert.Nil(t, result)
	})
}

func TestBillingService_IssueInvoice(t *testing.T) {
	t.Run("valid request yields folio and pdf url", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		mockOrderRepo.On("FindByIDForUser", mock.Anything, uint(12), uint(7)).Return(&model.Order{ID: 12, UserID: 7}, nil)

		orderService := NewOrderService(mockOrderRepo, new(MockCartRepository))
		service := NewBillingService(new(MockUserRepository), orderService)

		result, err := service.IssueInvoice(context.Background(), 7, InvoiceRequest{
			OrderID:          12,
			RUT:              "77.123.456-9",
			BusinessName:     "Comercial Andes Ltda",
			BusinessActivity: "Venta al por menor",
		})

		assert.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "F00000012", result.Folio)
		assert.Equal(t, "/invoices/F00000012.pdf", result.PDFURL)
		mockOrderRepo.AssertExpectations(t)
	})

	t.Run("unknown order", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		mockOrderRepo.On("FindByIDForUser", mock.Anything, uint(99), uint(7)).Return(nil, gorm.ErrRecordNotFound)

		orderService := NewOrderService(mockOrderRepo, new(MockCartRepository))
		service := NewBillingService(new(MockUserRepository), orderService)

		result, err := service.IssueInvoice(context.Background(), 7, InvoiceRequest{
			OrderID: 99,
			RUT:     "77.123.456-9",
		})

		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
		assert.Nil(t, result)
		mockOrderRepo.AssertExpectations(t)
	})
}
