package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/article"
)

// Handler holds API route handlers.
type Handler struct {
	svc *article.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *article.Service) *Handler {
	return &Handler{svc: svc}
}

// Search handles GET /api/search.
//
// Query parameters: query (required), limit (default 10), sort_order
// (default desc; anything but "asc" sorts descending).
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := q.Get("query")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query is required"))
		return
	}

	limit := 10
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("limit must be an integer"))
			return
		}
		limit = n
	}
	sortOrder := q.Get("sort_order")

	results, err := h.svc.Search(r.Context(), query, limit, sortOrder)
	if err != nil {
		writeOperationError(w, "search", err)
		return
	}
	writeJSON(w, http.StatusOK, SearchResponse{Results: results})
}

// GetArticle handles GET /api/articles/{id}.
//
// The format query parameter selects the response body: json (default)
// returns the structured article, markdown and text return the rendered
// string.
func (h *Handler) GetArticle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("article id is required"))
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = article.FormatJSON
	}

	detail, err := h.svc.GetArticle(r.Context(), id)
	if err != nil {
		writeOperationError(w, "get article", err)
		return
	}

	switch format {
	case article.FormatMarkdown:
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		_, _ = w.Write([]byte(article.Markdown(detail)))
	case article.FormatText:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(article.Text(detail)))
	default:
		writeJSON(w, http.StatusOK, detail)
	}
}

// writeOperationError maps the error taxonomy onto HTTP statuses while
// keeping the single {"error": "..."} body shape on every failure path.
func writeOperationError(w http.ResponseWriter, op string, err error) {
	var upstream *apperr.UpstreamError
	var transport *apperr.TransportError

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrNotConfigured):
		status = http.StatusServiceUnavailable
	case errors.As(err, &upstream):
		status = http.StatusBadGateway
		if upstream.Status == http.StatusNotFound {
			status = http.StatusNotFound
		}
	case errors.As(err, &transport):
		status = http.StatusBadGateway
	}

	slog.Error(op+" failed", slog.String("error", err.Error()))
	writeJSON(w, status, errorBody(err.Error()))
}
