package httpapi_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/example/kanban/internal/adapters/httpapi"
	"github.com/example/kanban/internal/adapters/memory"
	"github.com/example/kanban/internal/app"
	"github.com/example/kanban/internal/models"
	"github.com/example/kanban/internal/seed"
)

// setupServer wires a full stack (seeded memory repo, service, HTTP server)
// and returns the handler plus the repo for state assertions.
func setupServer(t *testing.T) (http.Handler, *memory.IssueRepository) {
	t.Helper()

	repo := memory.NewIssueRepository()
	repo.Seed(seed.Issues(), seed.NextID)
	service := app.NewIssueService(repo)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return httpapi.NewServer(service, logger).Handler(), repo
}

// doJSON performs a request with a JSON body and decodes the response.
func doJSON(t *testing.T, handler http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			// List responses are arrays; callers decode those themselves.
			decoded = nil
		}
	}
	return rec, decoded
}

func listIssues(t *testing.T, handler http.Handler) []models.Issue {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/issues", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/issues returned %d", rec.Code)
	}
	var issues []models.Issue
	if err := json.Unmarshal(rec.Body.Bytes(), &issues); err != nil {
		t.Fatalf("failed to decode issue list: %v", err)
	}
	return issues
}

func TestServer_ListIssues_ReturnsSeedData(t *testing.T) {
	handler, _ := setupServer(t)

	issues := listIssues(t, handler)
	if len(issues) != 8 {
		t.Fatalf("expected 8 seeded issues, got %d", len(issues))
	}
	if issues[0].ID != "1" || issues[7].ID != "8" {
		t.Errorf("seed order wrong: first %q last %q", issues[0].ID, issues[7].ID)
	}
}

func TestServer_CreateIssue_AssignsIDNine(t *testing.T) {
	handler, _ := setupServer(t)

	rec, body := doJSON(t, handler, http.MethodPost, "/api/issues",
		`{"title":"Test","description":"D","status":"todo"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if body["id"] != "9" || body["title"] != "Test" || body["description"] != "D" || body["status"] != "todo" {
		t.Errorf("unexpected response: %v", body)
	}

	if n := len(listIssues(t, handler)); n != 9 {
		t.Errorf("expected 9 issues after create, got %d", n)
	}
}

func TestServer_CreateIssue_MissingFields(t *testing.T) {
	handler, _ := setupServer(t)

	rec, body := doJSON(t, handler, http.MethodPost, "/api/issues", `{"title":"Test"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body["error"] == nil || body["error"] == "" {
		t.Error("expected an error message in the envelope")
	}
}

func TestServer_CreateIssue_RejectsNonStringValues(t *testing.T) {
	handler, _ := setupServer(t)

	rec, _ := doJSON(t, handler, http.MethodPost, "/api/issues",
		`{"title":5,"description":"D","status":"todo"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for numeric title, got %d", rec.Code)
	}
}

func TestServer_CreateIssue_RejectsEmptyAndNonJSONBodies(t *testing.T) {
	handler, _ := setupServer(t)

	// Empty body.
	req := httptest.NewRequest(http.MethodPost, "/api/issues", nil)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty body: expected 400, got %d", rec.Code)
	}

	// Wrong content type.
	req = httptest.NewRequest(http.MethodPost, "/api/issues", strings.NewReader("title=Test"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("form body: expected 400, got %d", rec.Code)
	}

	// Store untouched either way.
	if n := len(listIssues(t, handler)); n != 8 {
		t.Errorf("rejected requests reached the store: %d issues", n)
	}
}

func TestServer_PatchIssue_ChangesOnlyStatus(t *testing.T) {
	handler, _ := setupServer(t)

	before := listIssues(t, handler)[0]

	rec, body := doJSON(t, handler, http.MethodPatch, "/api/issues/1", `{"status":"done"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if body["id"] != "1" || body["status"] != "done" {
		t.Errorf("unexpected response: %v", body)
	}
	if body["title"] != before.Title || body["description"] != before.Description {
		t.Errorf("patch touched unrelated fields: %v", body)
	}
}

func TestServer_PatchIssue_BodyIDIsIgnoredForIdentity(t *testing.T) {
	handler, _ := setupServer(t)

	rec, body := doJSON(t, handler, http.MethodPatch, "/api/issues/2", `{"id":"7","status":"closed"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body["id"] != "2" {
		t.Errorf("identity must come from the path, got id %v", body["id"])
	}
}

func TestServer_ReplaceIssue(t *testing.T) {
	handler, _ := setupServer(t)

	rec, body := doJSON(t, handler, http.MethodPut, "/api/issues/3",
		`{"title":"Rewritten","description":"All new","status":"doing"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if body["id"] != "3" || body["title"] != "Rewritten" {
		t.Errorf("unexpected response: %v", body)
	}
}

func TestServer_ReplaceIssue_UnknownID(t *testing.T) {
	handler, _ := setupServer(t)

	rec, body := doJSON(t, handler, http.MethodPut, "/api/issues/999",
		`{"title":"x","description":"y","status":"todo"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body["error"] == nil {
		t.Error("expected an error message in the envelope")
	}
}

func TestServer_DeleteIssue(t *testing.T) {
	handler, _ := setupServer(t)

	rec, body := doJSON(t, handler, http.MethodDelete, "/api/issues/5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body["success"] != true {
		t.Errorf("expected success marker, got %v", body)
	}
	if n := len(listIssues(t, handler)); n != 7 {
		t.Errorf("expected 7 issues after delete, got %d", n)
	}
}

func TestServer_DeleteIssue_UnknownID_LeavesStoreUnchanged(t *testing.T) {
	handler, _ := setupServer(t)

	rec, body := doJSON(t, handler, http.MethodDelete, "/api/issues/999", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body["error"] == nil {
		t.Error("expected an error message in the envelope")
	}
	if n := len(listIssues(t, handler)); n != 8 {
		t.Errorf("failed delete changed the store: %d issues", n)
	}
}

func TestServer_HealthAndMetrics(t *testing.T) {
	handler, _ := setupServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("health: expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("metrics: expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "kanban_http_requests_total") {
		t.Error("metrics output missing request counter")
	}
}

func TestServer_BoardPage(t *testing.T) {
	handler, _ := setupServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Kanban Board") {
		t.Error("board page content missing")
	}
}
