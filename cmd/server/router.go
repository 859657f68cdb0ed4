package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/GioNegri/PedagogIA2/internal/api"
	apiMiddleware "github.com/GioNegri/PedagogIA2/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(app.accountService)
	historyHandler := api.NewHistoryHandler(app.historyService)
	allowlistHandler := api.NewAllowlistHandler(app.allowlistService)
	generateHandler := api.NewGenerateHandler(app.contentService)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Content history endpoints
		r.Post("/history", historyHandler.SaveRecord)
		r.Get("/history", historyHandler.ListRecords)
		r.Get("/history/{id}", historyHandler.GetRecord)
		r.Delete("/history/{id}", historyHandler.DeleteRecord)

		// Allowlist administration endpoints
		r.Get("/allowlist", allowlistHandler.List)
		r.Post("/allowlist", allowlistHandler.Add)
		r.Delete("/allowlist/{email}", allowlistHandler.Remove)

		// Content generation endpoint
		r.Post("/generate", generateHandler.Generate)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
