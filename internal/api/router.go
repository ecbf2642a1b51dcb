package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/starford/ansuz/internal/article"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
func NewRouter(svc *article.Service, authEnabled bool, token string) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Search.
	r.Get("/search", h.Search)

	// Articles.
	r.Get("/articles/{id}", h.GetArticle)

	return r
}
