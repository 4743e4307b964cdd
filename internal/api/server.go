package api

import (
	"net/http"
	"time"

	chatapi "github.com/driveassist/backend/internal/api/chat"
	filesapi "github.com/driveassist/backend/internal/api/files"
	"github.com/driveassist/backend/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(chatHandler *chatapi.Handler, filesHandler *filesapi.Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)                  // Recover from panics
	r.Use(chimiddleware.RequestID)                  // Add request ID
	r.Use(middleware.Logger(logger))                // Log requests
	r.Use(chimiddleware.Timeout(120 * time.Second)) // Retrieval plus completion can be slow

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Register routes
	chatapi.RegisterRoutes(r, chatHandler)
	filesapi.RegisterRoutes(r, filesHandler)

	return r
}
