package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/enlist-app/enlist-backend/internal/handlers"
)

// SetupRoutes binds the registration and lookup endpoints.
// uploads is nil when Cloudinary is not configured.
func SetupRoutes(r *chi.Mux, h *handlers.Handler, uploads *handlers.UploadHandler) {
	r.Post("/register_user/", h.RegisterUser)
	r.Get("/user/{user_id}", h.GetUser)

	if uploads != nil {
		r.Post("/upload", uploads.Upload)
	}
}
