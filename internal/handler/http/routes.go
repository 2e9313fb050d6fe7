package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the complete route table. The exact paths and verbs are part
// of the public contract and must not change.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/healthy", h.healthy)
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
	})

	// routes behind bearer-token authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/todos", func(r chi.Router) {
			r.Get("/", h.listTodos)
			r.Get("/{todoID}", h.getTodo)
			r.Post("/add", h.addTodo)
			r.Put("/{todoID}/update", h.updateTodo)
			r.Delete("/{todoID}/delete", h.deleteTodo)
		})

		r.Route("/user", func(r chi.Router) {
			r.Get("/", h.getProfile)
			r.Put("/change-password", h.changePassword)
			r.Put("/change-profile", h.changeProfile)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.requireAdmin)

			r.Get("/todos", h.listAllTodos)
			r.Delete("/todos/{todoID}/delete", h.deleteAnyTodo)
		})
	})

	return router
}
