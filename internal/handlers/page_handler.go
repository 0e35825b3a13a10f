package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/yebofresh/storefront/internal/service"
	"github.com/yebofresh/storefront/internal/view"
)

// PageHandler renders the storefront page
type PageHandler struct {
	service  *service.StorefrontService
	renderer *view.Renderer
	logger   *slog.Logger
}

// NewPageHandler creates a new page handler
func NewPageHandler(service *service.StorefrontService, renderer *view.Renderer, logger *slog.Logger) *PageHandler {
	return &PageHandler{
		service:  service,
		renderer: renderer,
		logger:   logger,
	}
}

// ServeHTTP handles GET /
// Every control on the page submits its state as query parameters, so each
// request re-derives the whole page from the URL.
func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := pageRequestFromQuery(r)

	page, err := h.service.Page(r.Context(), req)
	if err != nil {
		h.logger.Error("failed to build page", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page); err != nil {
		h.logger.Error("failed to render page", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write page", "error", err)
	}
}

func pageRequestFromQuery(r *http.Request) service.PageRequest {
	q := r.URL.Query()

	// A malformed budget counts as unset and falls back to the slider default
	budget, _ := strconv.Atoi(q.Get("budget"))

	return service.PageRequest{
		State:            filterSortStateFromQuery(r),
		Occasion:         q.Get("occasion"),
		Budget:           budget,
		GenerateList:     q.Get("generate") != "",
		Location:         q.Get("location"),
		LocationProvided: q.Has("location"),
		PredictDelivery:  q.Get("predict") != "",
	}
}
