package repository

import (
	"context"

	"github.com/yebofresh/storefront/internal/models"
)

// TestimonialRepository defines the interface for customer review access
type TestimonialRepository interface {
	GetAll(ctx context.Context) ([]models.Testimonial, error)
}

// InMemoryTestimonialRepository serves the fixed set of customer reviews
type InMemoryTestimonialRepository struct {
	testimonials []models.Testimonial
}

// NewInMemoryTestimonialRepository creates a repository seeded with three reviews
func NewInMemoryTestimonialRepository() *InMemoryTestimonialRepository {
	return &InMemoryTestimonialRepository{
		testimonials: []models.Testimonial{
			{Name: "Thandiwe M.", Text: "Life-changing service! Saves me hours every week.", Stars: 5},
			{Name: "James K.", Text: "Fresh produce delivered to my door. Quality is excellent.", Stars: 5},
			{Name: "Nomsa P.", Text: "Affordable prices and reliable delivery.", Stars: 4},
		},
	}
}

// GetAll returns all testimonials in display order
func (r *InMemoryTestimonialRepository) GetAll(ctx context.Context) ([]models.Testimonial, error) {
	testimonials := make([]models.Testimonial, len(r.testimonials))
	copy(testimonials, r.testimonials)
	return testimonials, nil
}
