package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/yebofresh/storefront/internal/config"
	"github.com/yebofresh/storefront/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by NewRouter
type Handlers struct {
	Health  *HealthHandler
	Page    *PageHandler
	Product *ProductHandler
	Demo    *DemoHandler
}

// NewRouter creates the storefront router with middleware applied
func NewRouter(h Handlers, corsCfg config.CORSConfig, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsCfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health.ServeHTTP)

	// Storefront page
	r.Get("/", h.Page.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/product", h.Product.ListProducts)
		r.Get("/product/{productId}", h.Product.GetProduct)

		r.Get("/testimonial", h.Demo.ListTestimonials)
		r.Post("/shopping-list", h.Demo.CreateShoppingList)
		r.Post("/delivery-estimate", h.Demo.PredictDelivery)
	})

	return r
}
