package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// setupRoutes wires the public portfolio routes and the authenticated
// admin/import routes.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, startupTime time.Time) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/api/health", healthHandler(startupTime))

		r.Post("/api/auth/login", handlers.authHandler.login())

		r.Get("/api/projects", handlers.projectHandler.getAllProjects())
		r.Get("/api/project/{projectID}", handlers.projectHandler.getProject())

		r.Post("/api/contact", handlers.contactHandler.submit())
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		// Project Handler endpoints
		r.Post("/api/project", handlers.projectHandler.createProject())
		r.Put("/api/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/api/project/{projectID}", handlers.projectHandler.deleteProject())

		// Import Handler endpoints, one per source platform plus manual
		r.Post("/api/import/sketchfab", handlers.importHandler.importSketchfab())
		r.Post("/api/import/artstation", handlers.importHandler.importArtstation())
		r.Post("/api/import/behance", handlers.importHandler.importBehance())
		r.Post("/api/import/manual", handlers.importHandler.importManual())
	})
}

func healthHandler(startupTime time.Time) http.HandlerFunc {
	responder := NewResponder(log.With().Str("handlerName", "healthHandler").Logger())
	return func(w http.ResponseWriter, r *http.Request) {
		responder.WriteJSON(w, map[string]any{
			"status":  "OK",
			"message": "Portfolio backend is running",
			"uptime":  time.Since(startupTime).String(),
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	}
}
