package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yebofresh/storefront/internal/config"
	"github.com/yebofresh/storefront/internal/demo"
	"github.com/yebofresh/storefront/internal/handlers"
	"github.com/yebofresh/storefront/internal/repository"
	"github.com/yebofresh/storefront/internal/service"
	"github.com/yebofresh/storefront/internal/view"
	"github.com/yebofresh/storefront/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting storefront server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"budget_min", cfg.Storefront.BudgetMin,
		"budget_max", cfg.Storefront.BudgetMax,
	)

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Error("failed to load page template", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	productRepo := repository.NewInMemoryProductRepository()
	testimonialRepo := repository.NewInMemoryTestimonialRepository()

	// Initialize services
	widgets := demo.NewWidgets(demo.BudgetRange{
		Min:     cfg.Storefront.BudgetMin,
		Max:     cfg.Storefront.BudgetMax,
		Default: cfg.Storefront.BudgetDefault,
	})
	productService := service.NewProductService(productRepo)
	storefrontService := service.NewStorefrontService(productRepo, testimonialRepo, widgets, cfg.Storefront.DefaultLocation)

	// Initialize handlers
	router := handlers.NewRouter(handlers.Handlers{
		Health:  handlers.NewHealthHandler(log),
		Page:    handlers.NewPageHandler(storefrontService, renderer, log),
		Product: handlers.NewProductHandler(productService, log),
		Demo:    handlers.NewDemoHandler(storefrontService, log),
	}, cfg.CORS, log)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
