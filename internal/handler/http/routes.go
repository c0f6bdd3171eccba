package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
	})

	// routes requiring an authenticated caller
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/auth/logout", h.logout)

		r.Route("/notes", func(r chi.Router) {
			r.Get("/", h.listNotes)
			r.Post("/", h.createNote)
			r.Get("/{noteID}", h.getNote)
			r.Put("/{noteID}", h.updateNote)
			r.Patch("/{noteID}", h.patchNote)
			r.Delete("/{noteID}", h.deleteNote)
		})
	})

	return router
}
