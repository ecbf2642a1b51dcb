// Package testutil provides shared test helpers: a fake Notion upstream on
// httptest and builders for raw wire objects.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/starford/ansuz/internal/notion"
)

// Token is the credential every test client is configured with.
const Token = "test-token"

// APIVersion is the upstream version header tests expect.
const APIVersion = "2022-06-28"

// NewUpstream starts a fake Notion API served by handler and returns a
// client wired to it. The server is closed on test cleanup.
func NewUpstream(t *testing.T, handler http.Handler) *notion.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return notion.NewClient(srv.URL, APIVersion, Token, srv.Client())
}

// Page builds a raw page object in the Notion wire shape, with a "title"
// title property and an optional "Tags" multi-select.
func Page(id, title string, tags ...string) map[string]any {
	props := map[string]any{
		"title": map[string]any{
			"title": []any{map[string]any{"plain_text": title}},
		},
	}
	if len(tags) > 0 {
		opts := make([]any, len(tags))
		for i, tag := range tags {
			opts[i] = map[string]any{"name": tag}
		}
		props["Tags"] = map[string]any{"multi_select": opts}
	}
	return map[string]any{
		"object":           "page",
		"id":               id,
		"created_time":     "2024-01-01T00:00:00.000Z",
		"last_edited_time": "2024-01-02T00:00:00.000Z",
		"url":              "https://www.notion.so/" + id,
		"properties":       props,
	}
}

// Block builds a raw block object in the Notion wire shape.
func Block(id, blockType, text string) map[string]any {
	return map[string]any{
		"object": "block",
		"id":     id,
		"type":   blockType,
		blockType: map[string]any{
			"rich_text": []any{map[string]any{"plain_text": text}},
		},
	}
}

// WriteJSON encodes v onto an HTTP response in tests.
func WriteJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode fixture response: %v", err)
	}
}
