package repository

import (
	"context"

	"gorm.io/gorm"

	"fitbite/internal/model"
)

// OrderRepository defines order persistence operations.
type OrderRepository interface {
	// CreateAndClearCart persists the order with its line items and empties
	// the originating cart inside a single transaction. Either everything
	// commits or nothing does.
	CreateAndClearCart(ctx context.Context, order *model.Order, cartID uint) error
	FindByID(ctx context.Context, id uint) (*model.Order, error)
	// FindByIDForUser resolves an order only when it belongs to the user.
	FindByIDForUser(ctx context.Context, id, userID uint) (*model.Order, error)
	// ListByUser returns the user's orders newest first.
	ListByUser(ctx context.Context, userID uint) ([]model.Order, error)
	// ListByStatuses returns matching orders oldest first (FIFO serving).
	ListByStatuses(ctx context.Context, statuses []string) ([]model.Order, error)
	// ListExcludingStatus returns every order not in the given status.
	ListExcludingStatus(ctx context.Context, status string) ([]model.Order, error)
	Update(ctx context.Context, order *model.Order) error
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// CreateAndClearCart atomically snapshots the cart into an order.
func (r *orderRepository) CreateAndClearCart(ctx context.Context, order *model.Order, cartID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Creating the order cascades into its items.
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return tx.Where("cart_id = ?", cartID).Delete(&model.CartItem{}).Error
	})
}

// FindByID finds an order by ID with items preloaded.
func (r *orderRepository) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	if err := r.db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByIDForUser resolves an order scoped to its owner.
func (r *orderRepository) FindByIDForUser(ctx context.Context, id, userID uint) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).Preload("Items").
		Where("id = ? AND user_id = ?", id, userID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByUser returns the user's order history, newest first.
func (r *orderRepository) ListByUser(ctx context.Context, userID uint) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByStatuses returns matching orders oldest first.
func (r *orderRepository) ListByStatuses(ctx context.Context, statuses []string) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).Preload("Items").
		Where("status IN ?", statuses).
		Order("created_at ASC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ListExcludingStatus returns every order outside the given status.
func (r *orderRepository) ListExcludingStatus(ctx context.Context, status string) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("status <> ?", status).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// Update updates an existing order.
func (r *orderRepository) Update(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

// UpdateStatus overwrites the status column only.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}
