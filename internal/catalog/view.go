// Package catalog derives the ordered product list shown for a category and
// sort selection. All functions are pure: inputs are never modified.
package catalog

import (
	"cmp"
	"slices"

	"github.com/yebofresh/storefront/internal/models"
)

// Apply filters the products by state.Category and then orders them by
// state.SortKey. The result is a new slice.
func Apply(products []models.Product, state models.FilterSortState) []models.Product {
	return Sort(Filter(products, state.Category), state.SortKey)
}

// Filter keeps products in the given category, preserving their relative order.
// CategoryAll keeps everything.
func Filter(products []models.Product, category models.Category) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category == models.CategoryAll || p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Sort returns a copy of products ordered by key. Ties keep their original order.
// SortPopular has no ranking signal behind it and leaves the order unchanged.
func Sort(products []models.Product, key models.SortKey) []models.Product {
	out := slices.Clone(products)
	if out == nil {
		out = []models.Product{}
	}

	switch key {
	case models.SortPriceAsc:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return a.Price.Cmp(b.Price)
		})
	case models.SortPriceDesc:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return b.Price.Cmp(a.Price)
		})
	case models.SortRating:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	}

	return out
}
