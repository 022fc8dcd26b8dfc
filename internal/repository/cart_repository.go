package repository

import (
	"context"

	"gorm.io/gorm"

	"fitbite/internal/model"
)

// CartRepository defines cart persistence operations.
type CartRepository interface {
	Create(ctx context.Context, cart *model.Cart) error
	// FindByUserID loads the user's cart with items and products preloaded.
	FindByUserID(ctx context.Context, userID uint) (*model.Cart, error)
	// FindOrCreateByUserID implements lazy cart creation.
	FindOrCreateByUserID(ctx context.Context, userID uint) (*model.Cart, error)
	// FindPlainItem finds a mergeable line: same product, no personalization,
	// no custom price.
	FindPlainItem(ctx context.Context, cartID, productID uint) (*model.CartItem, error)
	CreateItem(ctx context.Context, item *model.CartItem) error
	SaveItem(ctx context.Context, item *model.CartItem) error
	// FindItemForUser resolves an item only if it belongs to the user's own
	// cart, preventing cross-user deletion.
	FindItemForUser(ctx context.Context, itemID, userID uint) (*model.CartItem, error)
	DeleteItem(ctx context.Context, itemID uint) error
	ClearItems(ctx context.Context, cartID uint) error
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository.
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// Create creates a new cart.
func (r *cartRepository) Create(ctx context.Context, cart *model.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

// FindByUserID loads the user's cart with items and products preloaded.
func (r *cartRepository) FindByUserID(ctx context.Context, userID uint) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.id")
		}).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// FindOrCreateByUserID returns the user's cart, inserting an empty one when
// none exists yet.
func (r *cartRepository) FindOrCreateByUserID(ctx context.Context, userID uint) (*model.Cart, error) {
	cart, err := r.FindByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	fresh := &model.Cart{UserID: userID}
	if err := r.db.WithContext(ctx).Create(fresh).Error; err != nil {
		return nil, err
	}
	return fresh, nil
}

// FindPlainItem finds a mergeable line for the given product.
func (r *cartRepository) FindPlainItem(ctx context.Context, cartID, productID uint) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ? AND personalization IS NULL AND custom_price IS NULL", cartID, productID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem creates a new cart line.
func (r *cartRepository) CreateItem(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// SaveItem updates an existing cart line.
func (r *cartRepository) SaveItem(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// FindItemForUser resolves a cart item through the cart's owner.
func (r *cartRepository) FindItemForUser(ctx context.Context, itemID, userID uint) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.WithContext(ctx).
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem removes a single cart line.
func (r *cartRepository) DeleteItem(ctx context.Context, itemID uint) error {
	return r.db.WithContext(ctx).Delete(&model.CartItem{}, itemID).Error
}

// ClearItems removes every line of a cart.
func (r *cartRepository) ClearItems(ctx context.Context, cartID uint) error {
	return r.db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&model.CartItem{}).Error
}
