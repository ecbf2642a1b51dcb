package api

import (
	"github.com/starford/ansuz/internal/article"
)

// ArticleDetail is the full article response type (aliased from the domain layer).
type ArticleDetail = article.ArticleDetail

// ArticleSummary is a single search hit (aliased from the domain layer).
type ArticleSummary = article.ArticleSummary

// SearchResponse wraps search results.
type SearchResponse struct {
	Results []ArticleSummary `json:"results" validate:"required"`
}
