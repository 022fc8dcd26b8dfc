package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domainerrors "fitbite/internal/errors"
	"fitbite/internal/model"
	"fitbite/internal/repository"
)

// CartItemView is a cart line with its effective unit price resolved.
type CartItemView struct {
	ID              uint          `json:"id"`
	Product         model.Product `json:"product"`
	Quantity        int           `json:"quantity"`
	UnitPrice       int           `json:"unit_price"`
	Personalization *string       `json:"personalization,omitempty"`
}

// CartView is the computed cart projection returned to clients.
type CartView struct {
	Items []CartItemView `json:"items"`
	Total int            `json:"total"`
}

// CartService handles the per-user shopping cart.
type CartService interface {
	// GetCart returns the user's cart, creating an empty one on first access.
	GetCart(ctx context.Context, userID uint) (*CartView, error)
	// AddItem inserts a line, merging plain lines of the same product.
	AddItem(ctx context.Context, userID, productID uint, quantity int, personalization string, customPrice *int) error
	// RemoveItem deletes a single line owned by the user.
	RemoveItem(ctx context.Context, userID, itemID uint) error
	// Clear removes every line; it is idempotent.
	Clear(ctx context.Context, userID uint) error
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a new cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart returns the cart projection with effective prices and total.
func (s *cartService) GetCart(ctx context.Context, userID uint) (*CartView, error) {
	cart, err := s.cartRepo.FindOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	view := &CartView{Items: make([]CartItemView, 0, len(cart.Items))}
	for _, item := range cart.Items {
		unitPrice := item.EffectiveUnitPrice()
		view.Items = append(view.Items, CartItemView{
			ID:              item.ID,
			Product:         item.Product,
			Quantity:        item.Quantity,
			UnitPrice:       unitPrice,
			Personalization: item.Personalization,
		})
		view.Total += unitPrice * item.Quantity
	}

	return view, nil
}

// AddItem validates the product and applies the merge-or-append policy.
func (s *cartService) AddItem(ctx context.Context, userID, productID uint, quantity int, personalization string, customPrice *int) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return domainerrors.ErrProductNotFound
		}
		return fmt.Errorf("find product: %w", err)
	}
	if !product.Available {
		return domainerrors.ErrProductUnavailable
	}

	cart, err := s.cartRepo.FindOrCreateByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}

	if quantity < 1 {
		quantity = 1
	}

	// Personalized or re-priced lines never merge.
	if personalization != "" || customPrice != nil {
		item := &model.CartItem{
			CartID:      cart.ID,
			ProductID:   productID,
			Quantity:    quantity,
			CustomPrice: customPrice,
		}
		if personalization != "" {
			item.Personalization = &personalization
		}
		return s.cartRepo.CreateItem(ctx, item)
	}

	existing, err := s.cartRepo.FindPlainItem(ctx, cart.ID, productID)
	if err == nil {
		existing.Quantity += quantity
		return s.cartRepo.SaveItem(ctx, existing)
	}
	if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("find cart item: %w", err)
	}

	return s.cartRepo.CreateItem(ctx, &model.CartItem{
		CartID:    cart.ID,
		ProductID: productID,
		Quantity:  quantity,
	})
}

// RemoveItem deletes a line after checking ownership through the cart.
func (s *cartService) RemoveItem(ctx context.Context, userID, itemID uint) error {
	item, err := s.cartRepo.FindItemForUser(ctx, itemID, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return domainerrors.ErrCartItemNotFound
		}
		return fmt.Errorf("find cart item: %w", err)
	}
	return s.cartRepo.DeleteItem(ctx, item.ID)
}

// Clear empties the user's cart. A missing or already empty cart is not an
// error.
func (s *cartService) Clear(ctx context.Context, userID uint) error {
	cart, err := s.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return fmt.Errorf("load cart: %w", err)
	}
	return s.cartRepo.ClearItems(ctx, cart.ID)
}
