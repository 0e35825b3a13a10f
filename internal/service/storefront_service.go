package service

import (
	"context"
	"fmt"

	"github.com/yebofresh/storefront/internal/demo"
	"github.com/yebofresh/storefront/internal/models"
	"github.com/yebofresh/storefront/internal/repository"
	"github.com/yebofresh/storefront/internal/view"
)

// PageRequest is the page state submitted by the browser
type PageRequest struct {
	State            models.FilterSortState
	Occasion         string
	Budget           int
	GenerateList     bool
	Location         string
	LocationProvided bool
	PredictDelivery  bool
}

// StorefrontService assembles the storefront page and answers the demo widgets
type StorefrontService struct {
	products        repository.ProductRepository
	testimonials    repository.TestimonialRepository
	widgets         *demo.Widgets
	defaultLocation string
}

// NewStorefrontService creates a new storefront service
func NewStorefrontService(
	products repository.ProductRepository,
	testimonials repository.TestimonialRepository,
	widgets *demo.Widgets,
	defaultLocation string,
) *StorefrontService {
	return &StorefrontService{
		products:        products,
		testimonials:    testimonials,
		widgets:         widgets,
		defaultLocation: defaultLocation,
	}
}

// Page builds the page view model for a request
func (s *StorefrontService) Page(ctx context.Context, req PageRequest) (view.Page, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		return view.Page{}, fmt.Errorf("failed to load catalog: %w", err)
	}

	testimonials, err := s.testimonials.GetAll(ctx)
	if err != nil {
		return view.Page{}, fmt.Errorf("failed to load testimonials: %w", err)
	}

	location := req.Location
	if !req.LocationProvided {
		location = s.defaultLocation
	}

	widgets := view.WidgetState{
		Occasion: demo.ParseOccasion(req.Occasion),
		Budget:   s.widgets.Budget().Clamp(req.Budget),
		Location: location,
	}

	if req.GenerateList {
		list := s.widgets.ShoppingList(models.ShoppingListRequest{Occasion: req.Occasion, Budget: req.Budget})
		widgets.ShoppingList = &list
	}

	if req.PredictDelivery {
		if est, ok := s.widgets.PredictDelivery(models.DeliveryRequest{Location: location}); ok {
			widgets.Delivery = &est
		}
	}

	return view.Build(view.Input{
		Products:     products,
		Testimonials: testimonials,
		State:        req.State,
		Widgets:      widgets,
		Budget:       s.widgets.Budget(),
	}), nil
}

// ListTestimonials returns the customer reviews
func (s *StorefrontService) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return s.testimonials.GetAll(ctx)
}

// ShoppingList returns the canned shopping list
func (s *StorefrontService) ShoppingList(ctx context.Context, req models.ShoppingListRequest) models.ShoppingList {
	return s.widgets.ShoppingList(req)
}

// PredictDelivery returns the canned delivery estimate, or false for an empty location
func (s *StorefrontService) PredictDelivery(ctx context.Context, req models.DeliveryRequest) (models.DeliveryEstimate, bool) {
	return s.widgets.PredictDelivery(req)
}
