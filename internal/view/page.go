// Package view turns catalog data and request state into the storefront page.
//
// Build is a pure function from explicit state to a Page view model; Renderer
// writes a Page as HTML. Nothing here holds state between requests.
package view

import (
	"strconv"
	"strings"

	"github.com/yebofresh/storefront/internal/catalog"
	"github.com/yebofresh/storefront/internal/demo"
	"github.com/yebofresh/storefront/internal/models"
)

// CartCount is the number shown on the navigation cart link
const CartCount = 3

// ServedAreas are listed in the footer
var ServedAreas = []string{"Soweto", "Alexandra", "Khayelitsha", "Gugulethu", "Mamelodi"}

// WidgetState is the demo widgets' input and, when triggered, their output
type WidgetState struct {
	Occasion     models.Occasion
	Budget       int
	ShoppingList *models.ShoppingList
	Location     string
	Delivery     *models.DeliveryEstimate
}

// Input is everything a page is derived from
type Input struct {
	Products     []models.Product
	Testimonials []models.Testimonial
	State        models.FilterSortState
	Widgets      WidgetState
	Budget       demo.BudgetRange
}

// Page is the storefront view model
type Page struct {
	Title        string
	Nav          Nav
	Hero         Hero
	Widgets      Widgets
	Catalog      Catalog
	Testimonials []TestimonialCard
	Footer       Footer
}

type Nav struct {
	Brand     string
	Caption   string
	Links     []string
	CartCount int
}

type Hero struct {
	Headline       string
	Highlight      string
	Tagline        string
	AverageDelay   string
	Customers      string
	OnTimeRate     string
	PrimaryLabel   string
	SecondaryLabel string
}

// Option is a selector entry
type Option struct {
	Value    string
	Label    string
	Selected bool
}

type Widgets struct {
	Occasions    []Option
	BudgetMin    int
	BudgetMax    int
	Budget       int
	ShoppingList *models.ShoppingList
	Location     string
	Delivery     *models.DeliveryEstimate
}

type Catalog struct {
	Categories []Option
	SortKeys   []Option
	Products   []ProductCard
}

// ProductCard is a product formatted for display
type ProductCard struct {
	ID     int64
	Name   string
	Image  string
	Price  string
	Stars  string
	Rating string
}

type TestimonialCard struct {
	Name  string
	Stars string
	Text  string
}

type Footer struct {
	ServedAreas string
	Copyright   string
}

// Build derives the page from in. It does not modify in.
func Build(in Input) Page {
	return Page{
		Title: "Yebo Fresh | Fresh Groceries Delivered",
		Nav: Nav{
			Brand:     "YEBO FRESH",
			Caption:   "Fresh Groceries Delivered",
			Links:     []string{"Home", "Shop", "Deals", "Contact"},
			CartCount: CartCount,
		},
		Hero: Hero{
			Headline:       "Fresh Groceries,",
			Highlight:      "Delivered to Your Door",
			Tagline:        "Serving townships across South Africa with fresh, affordable groceries.",
			AverageDelay:   "2.3 hours",
			Customers:      "15,000+ customers",
			OnTimeRate:     "98% on-time",
			PrimaryLabel:   "Start Shopping",
			SecondaryLabel: "Check Delivery",
		},
		Widgets:      buildWidgets(in.Widgets, in.Budget),
		Catalog:      buildCatalog(in.Products, in.State),
		Testimonials: buildTestimonials(in.Testimonials),
		Footer: Footer{
			ServedAreas: strings.Join(ServedAreas, ", "),
			Copyright:   "© 2024 Yebo Fresh | Fresh Groceries Delivered",
		},
	}
}

func buildWidgets(w WidgetState, budget demo.BudgetRange) Widgets {
	occasions := make([]Option, 0, len(models.Occasions()))
	for _, o := range models.Occasions() {
		occasions = append(occasions, Option{Value: string(o), Label: string(o), Selected: o == w.Occasion})
	}

	return Widgets{
		Occasions:    occasions,
		BudgetMin:    budget.Min,
		BudgetMax:    budget.Max,
		Budget:       budget.Clamp(w.Budget),
		ShoppingList: w.ShoppingList,
		Location:     w.Location,
		Delivery:     w.Delivery,
	}
}

func buildCatalog(products []models.Product, state models.FilterSortState) Catalog {
	categories := make([]Option, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		categories = append(categories, Option{Value: string(c), Label: string(c), Selected: c == state.Category})
	}

	sortKeys := make([]Option, 0, len(models.SortKeys()))
	for _, k := range models.SortKeys() {
		sortKeys = append(sortKeys, Option{Value: string(k), Label: k.Label(), Selected: k == state.SortKey})
	}

	visible := catalog.Apply(products, state)
	cards := make([]ProductCard, 0, len(visible))
	for _, p := range visible {
		cards = append(cards, ProductCard{
			ID:     p.ID,
			Name:   p.Name,
			Image:  p.Image,
			Price:  FormatPrice(p),
			Stars:  Stars(int(p.Rating)),
			Rating: strconv.FormatFloat(p.Rating, 'f', -1, 64),
		})
	}

	return Catalog{
		Categories: categories,
		SortKeys:   sortKeys,
		Products:   cards,
	}
}

func buildTestimonials(testimonials []models.Testimonial) []TestimonialCard {
	cards := make([]TestimonialCard, 0, len(testimonials))
	for _, t := range testimonials {
		cards = append(cards, TestimonialCard{
			Name:  t.Name,
			Stars: Stars(t.Stars),
			Text:  t.Text,
		})
	}
	return cards
}

// FormatPrice renders a price in rand with two decimals, e.g. "R 45.50"
func FormatPrice(p models.Product) string {
	return "R " + p.Price.StringFixed(2)
}

// Stars renders n star glyphs
func Stars(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("⭐", n)
}
