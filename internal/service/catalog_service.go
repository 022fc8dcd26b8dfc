package service

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"fitbite/internal/cache"
	domainerrors "fitbite/internal/errors"
	"fitbite/internal/model"
	"fitbite/internal/repository"
)

const (
	catalogCacheKey = "catalog:products"
	catalogCacheTTL = 5 * time.Minute
)

// CatalogService exposes the public product catalog.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
	cache       *cache.Client
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(productRepo repository.ProductRepository, cache *cache.Client) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		cache:       cache,
	}
}

// ListProducts returns the full catalog ordered by id, served from the
// redis cache when warm.
func (s *catalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	if data, _ := s.cache.Get(ctx, catalogCacheKey); data != nil {
		var cached []model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(products); err == nil {
		_ = s.cache.Set(ctx, catalogCacheKey, payload, catalogCacheTTL)
	}

	return products, nil
}

// GetProduct returns a single catalog entry.
func (s *catalogService) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domainerrors.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}
