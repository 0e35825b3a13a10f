package service

import (
	"context"
	"errors"
	"testing"

	"github.com/yebofresh/storefront/internal/demo"
	"github.com/yebofresh/storefront/internal/models"
	"github.com/yebofresh/storefront/internal/repository"
)

func newTestStorefront() *StorefrontService {
	return NewStorefrontService(
		repository.NewInMemoryProductRepository(),
		repository.NewInMemoryTestimonialRepository(),
		demo.NewWidgets(demo.BudgetRange{Min: 200, Max: 1000, Default: 500}),
		"Soweto",
	)
}

func TestStorefrontService_PageDefaults(t *testing.T) {
	svc := newTestStorefront()

	page, err := svc.Page(context.Background(), PageRequest{State: models.DefaultFilterSortState()})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if page.Widgets.Location != "Soweto" {
		t.Errorf("expected default location Soweto, got %q", page.Widgets.Location)
	}
	if page.Widgets.Budget != 500 {
		t.Errorf("expected default budget 500, got %d", page.Widgets.Budget)
	}
	if page.Widgets.ShoppingList != nil || page.Widgets.Delivery != nil {
		t.Error("expected no widget output on a plain page load")
	}
	if len(page.Catalog.Products) != 6 {
		t.Errorf("expected 6 products, got %d", len(page.Catalog.Products))
	}
}

func TestStorefrontService_PageTriggersWidgets(t *testing.T) {
	svc := newTestStorefront()

	page, err := svc.Page(context.Background(), PageRequest{
		State:            models.FilterSortState{Category: models.CategoryPantry, SortKey: models.SortRating},
		Occasion:         "Braai Weekend",
		Budget:           500,
		GenerateList:     true,
		Location:         "Alexandra",
		LocationProvided: true,
		PredictDelivery:  true,
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if page.Widgets.ShoppingList == nil {
		t.Fatal("expected shopping list")
	}
	if page.Widgets.ShoppingList.Message != "Generated Braai Weekend shopping list for R500!" {
		t.Errorf("unexpected message %q", page.Widgets.ShoppingList.Message)
	}
	if page.Widgets.Delivery == nil || page.Widgets.Delivery.Message != "Estimated delivery to Alexandra: 2-3 hours" {
		t.Errorf("unexpected delivery estimate %+v", page.Widgets.Delivery)
	}
	if len(page.Catalog.Products) != 2 || page.Catalog.Products[0].Name != "Maize Meal Super (5kg)" {
		t.Errorf("unexpected catalog %+v", page.Catalog.Products)
	}
}

func TestStorefrontService_PageEmptyLocationSuppressesPrediction(t *testing.T) {
	svc := newTestStorefront()

	page, err := svc.Page(context.Background(), PageRequest{
		State:            models.DefaultFilterSortState(),
		LocationProvided: true,
		PredictDelivery:  true,
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if page.Widgets.Delivery != nil {
		t.Errorf("expected no estimate for empty location, got %+v", page.Widgets.Delivery)
	}
	if page.Widgets.Location != "" {
		t.Errorf("expected cleared location to stay empty, got %q", page.Widgets.Location)
	}
}

func TestStorefrontService_PageError(t *testing.T) {
	svc := NewStorefrontService(
		failingProductRepo{},
		repository.NewInMemoryTestimonialRepository(),
		demo.NewWidgets(demo.BudgetRange{Min: 200, Max: 1000, Default: 500}),
		"Soweto",
	)

	if _, err := svc.Page(context.Background(), PageRequest{}); !errors.Is(err, errBackend) {
		t.Errorf("expected wrapped backend error, got %v", err)
	}
}

func TestStorefrontService_Widgets(t *testing.T) {
	svc := newTestStorefront()
	ctx := context.Background()

	list := svc.ShoppingList(ctx, models.ShoppingListRequest{Occasion: "Budget Month", Budget: 300})
	if list.Occasion != models.OccasionBudgetMonth || list.Budget != 300 || len(list.Items) != 6 {
		t.Errorf("unexpected shopping list %+v", list)
	}

	if _, ok := svc.PredictDelivery(ctx, models.DeliveryRequest{Location: ""}); ok {
		t.Error("expected no estimate for empty location")
	}

	testimonials, err := svc.ListTestimonials(ctx)
	if err != nil || len(testimonials) != 3 {
		t.Errorf("expected 3 testimonials, got %d (err=%v)", len(testimonials), err)
	}
}
