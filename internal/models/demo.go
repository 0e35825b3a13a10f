package models

// Occasion selects the shopping-list template
type Occasion string

const (
	OccasionFamilyWeek   Occasion = "Family Week"
	OccasionBraaiWeekend Occasion = "Braai Weekend"
	OccasionBudgetMonth  Occasion = "Budget Month"
)

// Occasions returns the occasion selector options in display order
func Occasions() []Occasion {
	return []Occasion{OccasionFamilyWeek, OccasionBraaiWeekend, OccasionBudgetMonth}
}

// ShoppingListRequest is the input of the shopping-list generator
type ShoppingListRequest struct {
	Occasion string `json:"occasion"`
	Budget   int    `json:"budget"`
}

// ShoppingList is the canned output of the shopping-list generator
type ShoppingList struct {
	ID       string   `json:"id"`
	Occasion Occasion `json:"occasion"`
	Budget   int      `json:"budget"`
	Message  string   `json:"message"`
	Items    []string `json:"items"`
}

// DeliveryRequest is the input of the delivery predictor
type DeliveryRequest struct {
	Location string `json:"location"`
}

// DeliveryEstimate is the canned output of the delivery predictor
type DeliveryEstimate struct {
	Location string `json:"location"`
	Window   string `json:"window"`
	Message  string `json:"message"`
}
