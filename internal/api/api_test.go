package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/starford/ansuz/internal/article"
	"github.com/starford/ansuz/internal/testutil"
)

// testEnv builds a router backed by a fake upstream with one page and a
// three-hit search index. authToken empty means disabled auth mode.
func testEnv(t *testing.T, authToken string) http.Handler {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /search", func(w http.ResponseWriter, r *http.Request) {
		testutil.WriteJSON(t, w, map[string]any{
			"results": []map[string]any{
				testutil.Page("p1", "Alpha", "go"),
				testutil.Page("p2", "Beta"),
				testutil.Page("p3", "Gamma"),
			},
			"has_more": false,
		})
	})
	mux.HandleFunc("GET /pages/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") == "missing" {
			http.Error(w, `{"message":"not found"}`, http.StatusNotFound)
			return
		}
		testutil.WriteJSON(t, w, testutil.Page("p1", "Alpha", "go"))
	})
	mux.HandleFunc("GET /blocks/{id}/children", func(w http.ResponseWriter, r *http.Request) {
		testutil.WriteJSON(t, w, map[string]any{
			"results": []map[string]any{
				testutil.Block("b1", "paragraph", "Hello."),
			},
			"has_more": false,
		})
	})

	client := testutil.NewUpstream(t, mux)
	svc := article.NewService(client, article.FieldMapping{})
	return NewRouter(svc, authToken != "", authToken)
}

func TestSearchEndpoint(t *testing.T) {
	router := testEnv(t, "")

	req := httptest.NewRequest(http.MethodGet, "/search?query=alpha", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Results) != 3 {
		t.Fatalf("results len = %d, want 3", len(resp.Results))
	}
	if resp.Results[0].Title != "Alpha" {
		t.Errorf("results[0].Title = %q", resp.Results[0].Title)
	}
}

func TestSearchEndpoint_LimitQueryParam(t *testing.T) {
	router := testEnv(t, "")

	req := httptest.NewRequest(http.MethodGet, "/search?query=x&limit=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Results) != 1 {
		t.Errorf("results len = %d, want 1", len(resp.Results))
	}
}

func TestSearchEndpoint_MissingQuery(t *testing.T) {
	router := testEnv(t, "")

	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var body errResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Error != "query is required" {
		t.Errorf("error = %q", body.Error)
	}
}

func TestGetArticleEndpoint_JSON(t *testing.T) {
	router := testEnv(t, "")

	req := httptest.NewRequest(http.MethodGet, "/articles/p1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var detail ArticleDetail
	if err := json.Unmarshal(w.Body.Bytes(), &detail); err != nil {
		t.Fatal(err)
	}
	if detail.ID != "p1" || detail.Title != "Alpha" || len(detail.Content) != 1 {
		t.Errorf("detail = %+v", detail)
	}
}

func TestGetArticleEndpoint_Markdown(t *testing.T) {
	router := testEnv(t, "")

	req := httptest.NewRequest(http.MethodGet, "/articles/p1?format=markdown", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/markdown") {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.HasPrefix(w.Body.String(), "# Alpha\n\n") {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestGetArticleEndpoint_UpstreamNotFound(t *testing.T) {
	router := testEnv(t, "")

	req := httptest.NewRequest(http.MethodGet, "/articles/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	var body errResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(body.Error, "HTTP error: 404 - ") {
		t.Errorf("error = %q", body.Error)
	}
}

func TestAuthMiddleware_RejectsMissingToken(t *testing.T) {
	router := testEnv(t, "secret")

	req := httptest.NewRequest(http.MethodGet, "/search?query=x", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddleware_AcceptsBearerToken(t *testing.T) {
	router := testEnv(t, "secret")

	req := httptest.NewRequest(http.MethodGet, "/search?query=x", nil)
	req.Header.Set("Authorization", "Bearer secret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
