package ui

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all console routes on the given router.
func (ui *UI) RegisterRoutes(r chi.Router) {
	// Public routes (no auth required).
	r.Get("/login", ui.HandleLogin)
	r.Post("/login", ui.HandleLoginPost)

	// Protected routes (admin session required).
	r.Group(func(r chi.Router) {
		r.Use(ui.AuthMiddleware)

		r.Get("/", ui.HandleDashboard)
		r.Get("/logout", ui.HandleLogout)

		r.Post("/users/{id}/toggle", ui.HandleToggleUser)
		r.Post("/requests/{id}/status", ui.HandleRequestStatus)

		r.Get("/{section}", ui.HandleSection)
		r.Post("/{section}/{id}/delete", ui.HandleDelete)
	})
}
