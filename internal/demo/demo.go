// Package demo implements the two scripted storefront widgets. Their output
// never depends on the input beyond echoing it back.
package demo

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/yebofresh/storefront/internal/models"
)

// DeliveryWindow is the estimate given for every location
const DeliveryWindow = "2-3 hours"

var shoppingListItems = []string{
	"Chicken Breast (2kg)",
	"Mixed Vegetables",
	"Maize Meal (5kg)",
	"Cooking Oil",
	"Brown Bread",
	"Milk (4L)",
}

// BudgetRange bounds the shopping-list budget slider
type BudgetRange struct {
	Min     int
	Max     int
	Default int
}

// Clamp pulls budget into the range. Zero means "not chosen" and yields the default.
func (r BudgetRange) Clamp(budget int) int {
	switch {
	case budget == 0:
		return r.Default
	case budget < r.Min:
		return r.Min
	case budget > r.Max:
		return r.Max
	}
	return budget
}

// ParseOccasion matches an occasion by name. Unknown values select the first occasion.
func ParseOccasion(s string) models.Occasion {
	for _, o := range models.Occasions() {
		if string(o) == s {
			return o
		}
	}
	return models.Occasions()[0]
}

// Widgets produces the canned widget responses
type Widgets struct {
	budget BudgetRange
	newID  func() string
}

// NewWidgets creates the demo widgets for the given budget range
func NewWidgets(budget BudgetRange) *Widgets {
	return &Widgets{
		budget: budget,
		newID:  func() string { return uuid.New().String() },
	}
}

// Budget returns the configured slider range
func (w *Widgets) Budget() BudgetRange {
	return w.budget
}

// ShoppingList returns the fixed six-item list for any occasion and budget
func (w *Widgets) ShoppingList(req models.ShoppingListRequest) models.ShoppingList {
	occasion := ParseOccasion(req.Occasion)
	budget := w.budget.Clamp(req.Budget)

	items := make([]string, len(shoppingListItems))
	copy(items, shoppingListItems)

	return models.ShoppingList{
		ID:       w.newID(),
		Occasion: occasion,
		Budget:   budget,
		Message:  fmt.Sprintf("Generated %s shopping list for R%d!", occasion, budget),
		Items:    items,
	}
}

// PredictDelivery returns the fixed estimate for a location.
// An empty location yields nothing.
func (w *Widgets) PredictDelivery(req models.DeliveryRequest) (models.DeliveryEstimate, bool) {
	if req.Location == "" {
		return models.DeliveryEstimate{}, false
	}

	return models.DeliveryEstimate{
		Location: req.Location,
		Window:   DeliveryWindow,
		Message:  fmt.Sprintf("Estimated delivery to %s: %s", req.Location, DeliveryWindow),
	}, true
}
