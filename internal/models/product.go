package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product represents a grocery item in the storefront catalog
type Product struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category Category        `json:"category"`
	Image    string          `json:"image"`
	Rating   float64         `json:"rating"`
}

// Category is a product category. CategoryAll is only meaningful as a filter value.
type Category string

const (
	CategoryAll     Category = "All"
	CategoryMeat    Category = "Meat"
	CategoryProduce Category = "Produce"
	CategoryDairy   Category = "Dairy"
	CategoryPantry  Category = "Pantry"
	CategoryBakery  Category = "Bakery"
)

// Categories returns the category selector options in display order
func Categories() []Category {
	return []Category{
		CategoryAll,
		CategoryMeat,
		CategoryProduce,
		CategoryDairy,
		CategoryPantry,
		CategoryBakery,
	}
}

// ParseCategory maps a selector value to a Category, case-insensitively.
// Anything unrecognised selects CategoryAll.
func ParseCategory(s string) Category {
	s = strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c
		}
	}
	return CategoryAll
}

// SortKey orders the catalog view
type SortKey string

const (
	SortPopular   SortKey = "Popular"
	SortPriceAsc  SortKey = "PriceAsc"
	SortPriceDesc SortKey = "PriceDesc"
	SortRating    SortKey = "Rating"
)

var sortLabels = map[SortKey]string{
	SortPopular:   "Popular",
	SortPriceAsc:  "Price: Low",
	SortPriceDesc: "Price: High",
	SortRating:    "Rating",
}

// SortKeys returns the sort selector options in display order
func SortKeys() []SortKey {
	return []SortKey{SortPopular, SortPriceAsc, SortPriceDesc, SortRating}
}

// Label returns the text shown in the sort selector
func (k SortKey) Label() string {
	if label, ok := sortLabels[k]; ok {
		return label
	}
	return string(k)
}

// ParseSortKey accepts either the key name or its selector label.
// Anything unrecognised selects SortPopular.
func ParseSortKey(s string) SortKey {
	s = strings.TrimSpace(s)
	for _, k := range SortKeys() {
		if strings.EqualFold(s, string(k)) || strings.EqualFold(s, k.Label()) {
			return k
		}
	}
	return SortPopular
}

// FilterSortState is the user's current catalog selection
type FilterSortState struct {
	Category Category `json:"category"`
	SortKey  SortKey  `json:"sort"`
}

// DefaultFilterSortState is the selection a fresh page starts with
func DefaultFilterSortState() FilterSortState {
	return FilterSortState{Category: CategoryAll, SortKey: SortPopular}
}
