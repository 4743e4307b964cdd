package files

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers file routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/files", func(r chi.Router) {
		r.Get("/search", h.SearchFiles)
	})
}
