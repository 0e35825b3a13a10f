package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/yebofresh/storefront/internal/models"
	"github.com/yebofresh/storefront/internal/service"
)

// DemoHandler serves the testimonials and the scripted widget endpoints
type DemoHandler struct {
	service *service.StorefrontService
	log     *slog.Logger
}

// NewDemoHandler creates a new demo handler
func NewDemoHandler(service *service.StorefrontService, log *slog.Logger) *DemoHandler {
	return &DemoHandler{
		service: service,
		log:     log,
	}
}

// ListTestimonials handles GET /api/testimonial
func (h *DemoHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.service.ListTestimonials(r.Context())
	if err != nil {
		h.log.Error("failed to list testimonials", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, testimonials, h.log)
}

// CreateShoppingList handles POST /api/shopping-list
func (h *DemoHandler) CreateShoppingList(w http.ResponseWriter, r *http.Request) {
	var req models.ShoppingListRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode shopping list request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	list := h.service.ShoppingList(r.Context(), req)

	WriteJSON(w, http.StatusOK, list, h.log)
	h.log.Info("shopping list generated", "list_id", list.ID, "occasion", list.Occasion, "budget", list.Budget)
}

// PredictDelivery handles POST /api/delivery-estimate
// An empty location produces no estimate and a 204 response.
func (h *DemoHandler) PredictDelivery(w http.ResponseWriter, r *http.Request) {
	var req models.DeliveryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode delivery request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	estimate, ok := h.service.PredictDelivery(r.Context(), req)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	WriteJSON(w, http.StatusOK, estimate, h.log)
}
