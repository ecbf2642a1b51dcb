// Package article shapes Notion pages and blocks into a simplified article
// schema and renders it for tool-calling consumers.
package article

import (
	"context"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/notion"
)

// Output formats for GetArticle consumers.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatText     = "text"
)

const (
	// maxSearchPageSize is the upstream cap on search page_size.
	maxSearchPageSize = 100
	// blockPageSize is the number of child blocks fetched; continuation
	// cursors are not followed.
	blockPageSize = 100
)

// ContentBlock is one shaped content block of an article.
type ContentBlock struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text"`
}

// ArticleSummary is one search hit.
type ArticleSummary struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	CreatedTime    string   `json:"created_time"`
	LastEditedTime string   `json:"last_edited_time"`
	Tags           []string `json:"tags"`
	URL            string   `json:"url"`
}

// ArticleDetail is a full article: summary fields plus shaped content.
type ArticleDetail struct {
	ArticleSummary
	Content []ContentBlock `json:"content"`
}

// Service implements the search and get-article operations on top of the
// upstream client. It holds no per-call state; concurrent use is safe.
type Service struct {
	client *notion.Client
	fields FieldMapping
}

// NewService creates a Service. A zero fields mapping falls back to
// DefaultFieldMapping.
func NewService(client *notion.Client, fields FieldMapping) *Service {
	if len(fields.TitleProperties) == 0 && fields.TagsProperty == "" {
		fields = DefaultFieldMapping()
	}
	return &Service{client: client, fields: fields}
}

// Search queries the upstream search endpoint and shapes each page hit.
// The upstream page_size is min(limit, 100) with negative limits treated
// as 0; the returned slice is additionally truncated to limit. sortOrder
// "asc" sorts ascending by last
// edited time, any other value sorts descending (the upstream API supports
// no other sort field).
func (s *Service) Search(ctx context.Context, query string, limit int, sortOrder string) ([]ArticleSummary, error) {
	direction := "descending"
	if sortOrder == "asc" {
		direction = "ascending"
	}

	if limit < 0 {
		limit = 0
	}
	pageSize := limit
	if pageSize > maxSearchPageSize {
		pageSize = maxSearchPageSize
	}

	resp, err := s.client.Search(ctx, notion.SearchRequest{
		Query:    query,
		PageSize: pageSize,
		Sort:     notion.SearchSort{Timestamp: "last_edited_time", Direction: direction},
		Filter:   notion.SearchFilter{Property: "object", Value: "page"},
	})
	if err != nil {
		return nil, err
	}

	results := []ArticleSummary{}
	for _, page := range resp.Results {
		// The request filter should already guarantee this.
		if page.Object != "page" {
			continue
		}
		results = append(results, ArticleSummary{
			ID:             page.ID,
			Title:          extractTitle(page.Properties, s.fields),
			CreatedTime:    page.CreatedTime,
			LastEditedTime: page.LastEditedTime,
			Tags:           extractTags(page.Properties, s.fields),
			URL:            page.URL,
		})
	}

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// GetArticle fetches page metadata and its first page of child blocks and
// assembles an ArticleDetail. Either fetch failing aborts the whole
// operation; a partially-filled detail is never returned.
func (s *Service) GetArticle(ctx context.Context, articleID string) (*ArticleDetail, error) {
	if !s.client.Configured() {
		return nil, apperr.ErrNotConfigured
	}

	page, err := s.client.GetPage(ctx, articleID)
	if err != nil {
		return nil, err
	}

	blocks, err := s.client.BlockChildren(ctx, articleID, blockPageSize)
	if err != nil {
		return nil, err
	}

	return &ArticleDetail{
		ArticleSummary: ArticleSummary{
			ID:             articleID,
			Title:          extractTitle(page.Properties, s.fields),
			CreatedTime:    page.CreatedTime,
			LastEditedTime: page.LastEditedTime,
			Tags:           extractTags(page.Properties, s.fields),
			URL:            page.URL,
		},
		Content: extractBlocks(blocks.Results),
	}, nil
}
