package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domainerrors "fitbite/internal/errors"
	"fitbite/internal/model"
	"fitbite/internal/repository"
)

// DeliveryFee is the flat surcharge applied to delivery orders, in integer
// currency units. Pickup orders pay no surcharge.
const DeliveryFee = 2000

// DeliveryTypeDelivery is the delivery type that triggers the surcharge.
const DeliveryTypeDelivery = "delivery"

// CheckoutInput carries the checkout form fields.
type CheckoutInput struct {
	ShippingAddress string
	PaymentMethod   string
	DeliveryType    string
}

// OrderService converts carts into orders and manages the order lifecycle.
type OrderService interface {
	// Checkout snapshots the user's cart into a Received order and clears
	// the cart, all within one transaction.
	Checkout(ctx context.Context, userID uint, in CheckoutInput) (*model.Order, error)
	// Cancel transitions a cancellable order to Cancelled.
	Cancel(ctx context.Context, userID, orderID uint) error
	// Pay transitions the user's order to Paid unconditionally.
	Pay(ctx context.Context, userID, orderID uint) error
	// MarkPaid transitions any order to Paid without ownership scoping. It
	// backs the external payment confirmation webhook.
	MarkPaid(ctx context.Context, orderID uint) error
	Get(ctx context.Context, userID, orderID uint) (*model.Order, error)
	ListForUser(ctx context.Context, userID uint) ([]model.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
	}
}

// Checkout snapshots the cart into an immutable order.
func (s *orderService) Checkout(ctx context.Context, userID uint, in CheckoutInput) (*model.Order, error) {
	cart, err := s.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domainerrors.ErrEmptyCart
		}
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(cart.Items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	subtotal := 0
	items := make([]model.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		unitPrice := line.EffectiveUnitPrice()
		subtotal += unitPrice * line.Quantity

		// The personalization text, when present, becomes the displayed name.
		name := line.Product.Name
		if line.Personalization != nil && *line.Personalization != "" {
			name = *line.Personalization
		}

		items = append(items, model.OrderItem{
			ProductID:       line.ProductID,
			ProductName:     name,
			UnitPrice:       unitPrice,
			Quantity:        line.Quantity,
			Personalization: line.Personalization,
		})
	}

	surcharge := 0
	if in.DeliveryType == DeliveryTypeDelivery {
		surcharge = DeliveryFee
	}

	order := &model.Order{
		UserID:          userID,
		Total:           subtotal + surcharge,
		Status:          model.StatusReceived,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
		Items:           items,
	}

	if err := s.orderRepo.CreateAndClearCart(ctx, order, cart.ID); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return order, nil
}

// Cancel transitions the order to Cancelled when the current state allows it.
func (s *orderService) Cancel(ctx context.Context, userID, orderID uint) error {
	order, err := s.orderRepo.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return domainerrors.ErrOrderNotFound
		}
		return fmt.Errorf("find order: %w", err)
	}

	if !model.CanCancel(order.Status) {
		return domainerrors.ErrInvalidOrderState
	}

	return s.orderRepo.UpdateStatus(ctx, order.ID, model.StatusCancelled)
}

// Pay marks the user's order as Paid. No state guard: payment confirmation
// may arrive regardless of the current state.
func (s *orderService) Pay(ctx context.Context, userID, orderID uint) error {
	order, err := s.orderRepo.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return domainerrors.ErrOrderNotFound
		}
		return fmt.Errorf("find order: %w", err)
	}
	return s.orderRepo.UpdateStatus(ctx, order.ID, model.StatusPaid)
}

// MarkPaid marks any order as Paid, for the billing webhook.
func (s *orderService) MarkPaid(ctx context.Context, orderID uint) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return domainerrors.ErrOrderNotFound
		}
		return fmt.Errorf("find order: %w", err)
	}
	return s.orderRepo.UpdateStatus(ctx, order.ID, model.StatusPaid)
}

// Get returns a single order scoped to its owner.
func (s *orderService) Get(ctx context.Context, userID, orderID uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domainerrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return order, nil
}

// ListForUser returns the user's order history, newest first.
func (s *orderService) ListForUser(ctx context.Context, userID uint) ([]model.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}
