package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fitbite/internal/cache"
	domainerrors "fitbite/internal/errors"
	"fitbite/internal/model"
	"fitbite/internal/repository"
)

// ProductPatch carries an optional set of product fields for partial update;
// nil fields are left untouched.
type ProductPatch struct {
	Name        *string
	BasePrice   *int
	ImageURL    *string
	Description *string
	Type        *string
	Kcal        *int
	Protein     *float64
	Fat         *float64
	Carbs       *float64
	Available   *bool
}

// SalesReport aggregates revenue over all non-cancelled orders.
type SalesReport struct {
	TotalSales    int `json:"total_ventas"`
	OrderCount    int `json:"cantidad_pedidos"`
	AverageTicket int `json:"ticket_promedio"`
}

// AdminService bundles the administrator-only operations: kitchen queue,
// order overrides, user management, catalog CRUD and reporting.
type AdminService interface {
	KitchenQueue(ctx context.Context) ([]model.Order, error)
	// SetOrderStatus overwrites the status with any string; the state machine
	// is deliberately not enforced here (administrative bypass).
	SetOrderStatus(ctx context.Context, orderID uint, status string) error
	AssignCourier(ctx context.Context, orderID uint, courier string) error

	ListUsers(ctx context.Context) ([]model.User, error)
	SetUserRole(ctx context.Context, adminID, userID uint, role string) (*model.User, error)
	UserOrderHistory(ctx context.Context, userID uint) ([]model.Order, error)

	ListProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) error
	UpdateProduct(ctx context.Context, id uint, patch ProductPatch) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uint) error

	Report(ctx context.Context) (*SalesReport, error)
}

type adminService struct {
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	cache       *cache.Client
}

// NewAdminService creates a new admin service.
func NewAdminService(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	cache *cache.Client,
) AdminService {
	return &adminService{
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		cache:       cache,
	}
}

// KitchenQueue returns active orders oldest first, FIFO for the kitchen.
func (s *adminService) KitchenQueue(ctx context.Context) ([]model.Order, error) {
	return s.orderRepo.ListByStatuses(ctx, model.ActiveKitchenStatuses)
}

// SetOrderStatus overwrites the status without validation.
func (s *adminService) SetOrderStatus(ctx context.Context, orderID uint, status string) error {
	if _, err := s.findOrder(ctx, orderID); err != nil {
		return err
	}
	return s.orderRepo.UpdateStatus(ctx, orderID, status)
}

// AssignCourier sets the courier on an order.
func (s *adminService) AssignCourier(ctx context.Context, orderID uint, courier string) error {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return err
	}
	order.Courier = &courier
	return s.orderRepo.Update(ctx, order)
}

// ListUsers returns all users.
func (s *adminService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

// SetUserRole changes a user's role. Admins cannot revoke their own admin
// role.
func (s *adminService) SetUserRole(ctx context.Context, adminID, userID uint, role string) (*model.User, error) {
	if userID == adminID && role != model.RoleAdmin {
		return nil, domainerrors.ErrSelfDemotion
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	user.Role = role
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}
	return user, nil
}

// UserOrderHistory returns the target user's orders, newest first.
func (s *adminService) UserOrderHistory(ctx context.Context, userID uint) ([]model.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

// ListProducts returns the catalog for the admin panel.
func (s *adminService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.List(ctx)
}

// CreateProduct adds a catalog entry.
func (s *adminService) CreateProduct(ctx context.Context, product *model.Product) error {
	if err := s.productRepo.Create(ctx, product); err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	_ = s.cache.Delete(ctx, catalogCacheKey)
	return nil
}

// UpdateProduct applies only the supplied fields.
func (s *adminService) UpdateProduct(ctx context.Context, id uint, patch ProductPatch) (*model.Product, error) {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domainerrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	fields := patch.Fields()
	if len(fields) > 0 {
		if err := s.productRepo.UpdateFields(ctx, id, fields); err != nil {
			return nil, fmt.Errorf("update product: %w", err)
		}
		_ = s.cache.Delete(ctx, catalogCacheKey)
	}

	return s.productRepo.FindByID(ctx, id)
}

// DeleteProduct removes a catalog entry. Order history keeps its snapshots.
func (s *adminService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	_ = s.cache.Delete(ctx, catalogCacheKey)
	return nil
}

// Report aggregates all non-cancelled orders.
func (s *adminService) Report(ctx context.Context) (*SalesReport, error) {
	orders, err := s.orderRepo.ListExcludingStatus(ctx, model.StatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	report := &SalesReport{OrderCount: len(orders)}
	for _, order := range orders {
		report.TotalSales += order.Total
	}
	if report.OrderCount > 0 {
		report.AverageTicket = report.TotalSales / report.OrderCount
	}
	return report, nil
}

func (s *adminService) findOrder(ctx context.Context, orderID uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domainerrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return order, nil
}

// Fields converts the patch into the column map handed to the repository.
func (p ProductPatch) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.BasePrice != nil {
		fields["base_price"] = *p.BasePrice
	}
	if p.ImageURL != nil {
		fields["image_url"] = *p.ImageURL
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.Type != nil {
		fields["type"] = *p.Type
	}
	if p.Kcal != nil {
		fields["kcal"] = *p.Kcal
	}
	if p.Protein != nil {
		fields["protein"] = *p.Protein
	}
	if p.Fat != nil {
		fields["fat"] = *p.Fat
	}
	if p.Carbs != nil {
		fields["carbs"] = *p.Carbs
	}
	if p.Available != nil {
		fields["available"] = *p.Available
	}
	return fields
}
