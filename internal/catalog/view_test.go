package catalog

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/yebofresh/storefront/internal/models"
	"github.com/yebofresh/storefront/internal/repository"
)

func seedCatalog(t *testing.T) []models.Product {
	t.Helper()

	products, err := repository.NewInMemoryProductRepository().GetAll(context.Background())
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	return products
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func ids(products []models.Product) []int64 {
	out := make([]int64, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	products := seedCatalog(t)

	tests := []struct {
		category models.Category
		want     []int64
	}{
		{models.CategoryAll, []int64{1, 2, 3, 4, 5, 6}},
		{models.CategoryMeat, []int64{1}},
		{models.CategoryProduce, []int64{2}},
		{models.CategoryDairy, []int64{4}},
		{models.CategoryPantry, []int64{3, 6}},
		{models.CategoryBakery, []int64{5}},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			got := Filter(products, tt.category)
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Errorf("Filter(%s) mismatch (-want +got):\n%s", tt.category, diff)
			}
			for _, p := range got {
				if tt.category != models.CategoryAll && p.Category != tt.category {
					t.Errorf("product %q has category %s, want %s", p.Name, p.Category, tt.category)
				}
			}
		})
	}
}

func TestFilter_EmptyResult(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Only Bread", Price: decimal.NewFromInt(10), Category: models.CategoryBakery},
	}

	got := Filter(products, models.CategoryMeat)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil result, got %v", got)
	}
}

func TestSort_PriceAsc(t *testing.T) {
	got := Sort(seedCatalog(t), models.SortPriceAsc)

	want := []string{
		"Brown Bread Loaf",
		"Fresh Milk (2L)",
		"Mixed Vegetables Pack",
		"Cooking Oil (2L)",
		"Maize Meal Super (5kg)",
		"Fresh Chicken Breast (1kg)",
	}
	if diff := cmp.Diff(want, names(got)); diff != "" {
		t.Errorf("PriceAsc mismatch (-want +got):\n%s", diff)
	}
}

func TestSort_PriceDesc(t *testing.T) {
	got := Sort(seedCatalog(t), models.SortPriceDesc)

	want := []int64{1, 3, 6, 2, 4, 5}
	if diff := cmp.Diff(want, ids(got)); diff != "" {
		t.Errorf("PriceDesc mismatch (-want +got):\n%s", diff)
	}
}

func TestSort_Rating(t *testing.T) {
	got := Sort(seedCatalog(t), models.SortRating)

	want := []string{
		"Maize Meal Super (5kg)",
		"Fresh Chicken Breast (1kg)",
		"Fresh Milk (2L)",
		"Mixed Vegetables Pack",
		"Brown Bread Loaf",
		"Cooking Oil (2L)",
	}
	if diff := cmp.Diff(want, names(got)); diff != "" {
		t.Errorf("Rating mismatch (-want +got):\n%s", diff)
	}
}

func TestSort_PopularIsPassThrough(t *testing.T) {
	products := seedCatalog(t)
	reversed := []models.Product{products[5], products[4], products[3], products[2], products[1], products[0]}

	got := Sort(reversed, models.SortPopular)
	if diff := cmp.Diff([]int64{6, 5, 4, 3, 2, 1}, ids(got)); diff != "" {
		t.Errorf("Popular should keep input order (-want +got):\n%s", diff)
	}
}

func TestSort_StableOnTies(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "a", Price: decimal.RequireFromString("10.00"), Rating: 4.0},
		{ID: 2, Name: "b", Price: decimal.RequireFromString("5.00"), Rating: 4.5},
		{ID: 3, Name: "c", Price: decimal.RequireFromString("10.0"), Rating: 4.0},
		{ID: 4, Name: "d", Price: decimal.RequireFromString("5"), Rating: 4.5},
	}

	tests := []struct {
		key  models.SortKey
		want []int64
	}{
		{models.SortPriceAsc, []int64{2, 4, 1, 3}},
		{models.SortPriceDesc, []int64{1, 3, 2, 4}},
		{models.SortRating, []int64{2, 4, 1, 3}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ids(Sort(products, tt.key))); diff != "" {
				t.Errorf("Sort(%s) mismatch (-want +got):\n%s", tt.key, diff)
			}
		})
	}
}

func TestApply_FilterThenSort(t *testing.T) {
	got := Apply(seedCatalog(t), models.FilterSortState{
		Category: models.CategoryPantry,
		SortKey:  models.SortPriceAsc,
	})

	want := []string{"Cooking Oil (2L)", "Maize Meal Super (5kg)"}
	if diff := cmp.Diff(want, names(got)); diff != "" {
		t.Errorf("Apply mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_IdempotentAndPure(t *testing.T) {
	products := seedCatalog(t)
	before := ids(products)

	for _, c := range models.Categories() {
		for _, k := range models.SortKeys() {
			state := models.FilterSortState{Category: c, SortKey: k}

			first := Apply(products, state)
			second := Apply(products, state)

			if diff := cmp.Diff(ids(first), ids(second)); diff != "" {
				t.Errorf("%+v: repeated Apply differs (-first +second):\n%s", state, diff)
			}
			if diff := cmp.Diff(before, ids(products)); diff != "" {
				t.Fatalf("%+v: Apply mutated its input (-before +after):\n%s", state, diff)
			}
		}
	}
}
