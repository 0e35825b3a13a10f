package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/yebofresh/storefront/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
}

// InMemoryProductRepository serves the fixed storefront catalog.
// The product slice is never modified after construction; callers receive copies.
type InMemoryProductRepository struct {
	products []models.Product
}

// NewInMemoryProductRepository creates a repository seeded with the six catalog products
func NewInMemoryProductRepository() *InMemoryProductRepository {
	// Insertion order is the "Popular" order
	products := []models.Product{
		{ID: 1, Name: "Fresh Chicken Breast (1kg)", Price: decimal.RequireFromString("89.99"), Category: models.CategoryMeat, Image: "🍗", Rating: 4.7},
		{ID: 2, Name: "Mixed Vegetables Pack", Price: decimal.RequireFromString("45.50"), Category: models.CategoryProduce, Image: "🥦", Rating: 4.5},
		{ID: 3, Name: "Maize Meal Super (5kg)", Price: decimal.RequireFromString("67.99"), Category: models.CategoryPantry, Image: "🌽", Rating: 4.8},
		{ID: 4, Name: "Fresh Milk (2L)", Price: decimal.RequireFromString("32.99"), Category: models.CategoryDairy, Image: "🥛", Rating: 4.6},
		{ID: 5, Name: "Brown Bread Loaf", Price: decimal.RequireFromString("18.99"), Category: models.CategoryBakery, Image: "🍞", Rating: 4.4},
		{ID: 6, Name: "Cooking Oil (2L)", Price: decimal.RequireFromString("54.99"), Category: models.CategoryPantry, Image: "🫒", Rating: 4.3},
	}

	return &InMemoryProductRepository{
		products: products,
	}
}

// GetAll returns all products in insertion order
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	for _, product := range r.products {
		if product.ID == id {
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}
