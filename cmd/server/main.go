package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/product-showcase/catalog-api/internal/config"
	"github.com/product-showcase/catalog-api/internal/handlers"
	"github.com/product-showcase/catalog-api/internal/middleware"
	"github.com/product-showcase/catalog-api/internal/service"
	"github.com/product-showcase/catalog-api/internal/storage"
	"github.com/product-showcase/catalog-api/pkg/logger"
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

	log.Info("starting catalog api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"data_file", cfg.Storage.DataFile,
		"log_level", cfg.LogLevel,
	)

	// Initialize the document store and catalog service
	store := storage.NewFileStore(cfg.Storage.DataFile)
	catalog := service.NewCatalogService(store)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	categoryHandler := handlers.NewCategoryHandler(catalog, log)
	productHandler := handlers.NewProductHandler(catalog, log)
	adminHandler := handlers.NewAdminHandler(catalog, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categoryHandler.ListCategories)
			r.Post("/", categoryHandler.CreateCategory)

			r.Route("/{categoryId}", func(r chi.Router) {
				r.Get("/", categoryHandler.GetCategory)
				r.Put("/", categoryHandler.UpdateCategory)
				r.Delete("/", categoryHandler.DeleteCategory)

				r.Route("/products", func(r chi.Router) {
					r.Post("/", productHandler.CreateProduct)

					r.Route("/{productId}", func(r chi.Router) {
						r.Get("/", productHandler.GetProduct)
						r.Put("/", productHandler.UpdateProduct)
						r.Delete("/", productHandler.DeleteProduct)
					})
				})
			})
		})

		// Whole-document admin surface
		r.Route("/admin/data", func(r chi.Router) {
			r.Get("/", adminHandler.GetData)
			r.Put("/", adminHandler.SaveData)
		})

		// Validate-only probe, never persists
		r.Route("/test/validate", func(r chi.Router) {
			r.Get("/", adminHandler.ValidateInfo)
			r.Put("/", adminHandler.ValidateData)
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
