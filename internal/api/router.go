package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/starford/laguz/internal/notebook"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
func NewRouter(db *notebook.DB, authEnabled bool, token string) chi.Router {
	h := NewHandler(db)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	r.Get("/notes", h.ListNotes)
	r.Post("/notes", h.CreateNote)
	r.Delete("/notes", h.DeleteAllNotes)

	r.Get("/notes/{name}", h.GetNote)
	r.Put("/notes/{name}", h.UpdateNote)
	r.Delete("/notes/{name}", h.DeleteNote)

	r.Post("/notes/{name}/rename", h.RenameNote)
	r.Post("/notes/{name}/clear", h.ClearNote)

	return r
}
