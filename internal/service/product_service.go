package service

import (
	"context"
	"fmt"

	"github.com/yebofresh/storefront/internal/catalog"
	"github.com/yebofresh/storefront/internal/models"
	"github.com/yebofresh/storefront/internal/repository"
)

// ProductService handles business logic for products
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns the catalog filtered and ordered by state
func (s *ProductService) ListProducts(ctx context.Context, state models.FilterSortState) ([]models.Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return catalog.Apply(products, state), nil
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}
