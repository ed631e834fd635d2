package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-dashboard-api/internal/api"
	"github.com/portfolio-dashboard-api/internal/config"
	"github.com/portfolio-dashboard-api/internal/mocks"
	"github.com/portfolio-dashboard-api/internal/models"
	"github.com/portfolio-dashboard-api/internal/service"
	"github.com/rs/zerolog"
)

type testEnv struct {
	router   *gin.Engine
	posts    *mocks.MockPostRepository
	projects *mocks.MockProjectRepository
	learning *mocks.MockLearningRepository
	github   *mocks.MockGitHubService
	wakatime *mocks.MockWakaTimeService
}

func setupTestRouter() *testEnv {
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		posts:    mocks.NewMockPostRepository(),
		projects: mocks.NewMockProjectRepository(),
		learning: mocks.NewMockLearningRepository(),
		github:   mocks.NewMockGitHubService(),
		wakatime: mocks.NewMockWakaTimeService(),
	}

	log := zerolog.Nop()
	services := &service.Services{
		Post:     service.NewPostService(env.posts, log),
		Project:  service.NewProjectService(env.projects, log),
		Learning: service.NewLearningService(env.learning, log),
		GitHub:   env.github,
		WakaTime: env.wakatime,
	}

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "8080"},
	}
	env.router = api.NewRouter(services, cfg, log)
	return env
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody *bytes.Buffer
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(buf)
	} else {
		reqBody = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	env := setupTestRouter()

	w := doJSON(t, env.router, "GET", "/health", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "portfolio-dashboard-api" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestMetricsEndpoint(t *testing.T) {
	env := setupTestRouter()
	env.posts.Posts["p1"] = &models.Post{ID: "p1", Slug: "a", Status: models.PostStatusDraft}
	env.projects.Projects["pr1"] = &models.Project{ID: "pr1"}

	w := doJSON(t, env.router, "GET", "/metrics", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	db := response["database"].(map[string]interface{})
	if db["posts"].(float64) != 1 {
		t.Errorf("Expected 1 post, got %v", db["posts"])
	}
	if db["projects"].(float64) != 1 {
		t.Errorf("Expected 1 project, got %v", db["projects"])
	}
}

func TestCreatePost(t *testing.T) {
	env := setupTestRouter()

	content := "some words in the body of the post"
	w := doJSON(t, env.router, "POST", "/v1/posts", models.PostInsert{
		Title:   "First Post",
		Slug:    "first-post",
		Content: &content,
		Tags:    []string{"go", "web"},
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d. Body: %s", w.Code, w.Body.String())
	}

	var post models.Post
	json.Unmarshal(w.Body.Bytes(), &post)

	if post.ID == "" {
		t.Error("Expected server-assigned ID")
	}
	if post.Status != models.PostStatusDraft {
		t.Errorf("Expected default DRAFT status, got %s", post.Status)
	}
	if post.PublishedAt != nil {
		t.Error("Draft post should not have a publish timestamp")
	}
	if post.ReadingTime == nil || *post.ReadingTime < 1 {
		t.Error("Expected a reading-time estimate")
	}
	if post.CreatedAt.IsZero() || post.UpdatedAt.IsZero() {
		t.Error("Expected server-assigned timestamps")
	}
}

func TestCreatePost_ValidationErrors(t *testing.T) {
	env := setupTestRouter()

	tests := []struct {
		name          string
		body          models.PostInsert
		expectedField string
	}{
		{"missing title", models.PostInsert{Slug: "ok-slug"}, "title"},
		{"missing slug", models.PostInsert{Title: "T"}, "slug"},
		{"bad slug", models.PostInsert{Title: "T", Slug: "Not A Slug!"}, "slug"},
		{"bad status", models.PostInsert{Title: "T", Slug: "t", Status: "LIVE"}, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, env.router, "POST", "/v1/posts", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d. Body: %s", w.Code, w.Body.String())
			}
			if !bytes.Contains(w.Body.Bytes(), []byte(tt.expectedField)) {
				t.Errorf("Expected field %q in errors, got: %s", tt.expectedField, w.Body.String())
			}
		})
	}
}

func TestCreatePost_DuplicateSlug(t *testing.T) {
	env := setupTestRouter()
	env.posts.Posts["p1"] = &models.Post{ID: "p1", Slug: "taken", Status: models.PostStatusDraft}

	w := doJSON(t, env.router, "POST", "/v1/posts", models.PostInsert{Title: "T", Slug: "taken"})
	if w.Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d. Body: %s", w.Code, w.Body.String())
	}
}

func TestPublishPost(t *testing.T) {
	env := setupTestRouter()
	env.posts.Posts["p1"] = &models.Post{ID: "p1", Slug: "draft-post", Status: models.PostStatusDraft}

	w := doJSON(t, env.router, "POST", "/v1/posts/p1/publish", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", w.Code, w.Body.String())
	}

	var post models.Post
	json.Unmarshal(w.Body.Bytes(), &post)

	if post.Status != models.PostStatusPublished {
		t.Errorf("Expected PUBLISHED, got %s", post.Status)
	}
	if post.PublishedAt == nil {
		t.Fatal("Expected publish timestamp to be set")
	}

	// Republishing keeps the original publish date
	first := *post.PublishedAt
	w = doJSON(t, env.router, "POST", "/v1/posts/p1/publish", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 on republish, got %d", w.Code)
	}
	json.Unmarshal(w.Body.Bytes(), &post)
	if post.PublishedAt == nil || !post.PublishedAt.Equal(first) {
		t.Errorf("Republish must not move the publish timestamp: %v != %v", post.PublishedAt, first)
	}
}

func TestPublishPost_NotFound(t *testing.T) {
	env := setupTestRouter()

	w := doJSON(t, env.router, "POST", "/v1/posts/nope/publish", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestListPosts_PublicAndAdminModes(t *testing.T) {
	env := setupTestRouter()
	env.posts.Posts["p1"] = &models.Post{ID: "p1", Slug: "pub-1", Status: models.PostStatusPublished}
	env.posts.Posts["p2"] = &models.Post{ID: "p2", Slug: "pub-2", Status: models.PostStatusPublished}
	env.posts.Posts["p3"] = &models.Post{ID: "p3", Slug: "draft", Status: models.PostStatusDraft}

	w := doJSON(t, env.router, "GET", "/v1/posts", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var publicPosts []models.Post
	json.Unmarshal(w.Body.Bytes(), &publicPosts)
	if len(publicPosts) != 2 {
		t.Errorf("Public mode: expected 2 posts, got %d", len(publicPosts))
	}

	w = doJSON(t, env.router, "GET", "/v1/posts?include_unpublished=true", nil)
	var allPosts []models.Post
	json.Unmarshal(w.Body.Bytes(), &allPosts)
	if len(allPosts) != 3 {
		t.Errorf("Admin mode: expected 3 posts, got %d", len(allPosts))
	}
}

func TestGetPostBySlug(t *testing.T) {
	env := setupTestRouter()
	env.posts.Posts["p1"] = &models.Post{ID: "p1", Slug: "hello-world", Status: models.PostStatusPublished}

	w := doJSON(t, env.router, "GET", "/v1/posts/hello-world", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	w = doJSON(t, env.router, "GET", "/v1/posts/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestUpdateProject_Validation(t *testing.T) {
	env := setupTestRouter()
	env.projects.Projects["pr1"] = &models.Project{ID: "pr1", Title: "P", Progress: 10}

	bad := 150
	w := doJSON(t, env.router, "PATCH", "/v1/projects/pr1", models.ProjectUpdate{Progress: &bad})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d. Body: %s", w.Code, w.Body.String())
	}

	ok := 80
	w = doJSON(t, env.router, "PATCH", "/v1/projects/pr1", models.ProjectUpdate{Progress: &ok})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", w.Code, w.Body.String())
	}
	var project models.Project
	json.Unmarshal(w.Body.Bytes(), &project)
	if project.Progress != 80 {
		t.Errorf("Expected progress 80, got %d", project.Progress)
	}
}

func TestDeleteLearningEntry(t *testing.T) {
	env := setupTestRouter()
	env.learning.Entries["l1"] = &models.LearningEntry{ID: "l1", Title: "Rust"}

	w := doJSON(t, env.router, "DELETE", "/v1/learning/l1", nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
	if len(env.learning.Entries) != 0 {
		t.Error("Entry should be deleted")
	}

	// Deleting a missing entry is still a success
	w = doJSON(t, env.router, "DELETE", "/v1/learning/gone", nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204 for missing entry, got %d", w.Code)
	}
}

func TestGitHubStats_MissingCredentials(t *testing.T) {
	env := setupTestRouter()
	env.github.HasToken = false

	w := doJSON(t, env.router, "GET", "/v1/stats/github", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}

	var response struct {
		Error string `json:"error"`
		Debug struct {
			HasToken    bool `json:"hasToken"`
			HasUsername bool `json:"hasUsername"`
		} `json:"debug"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response.Error == "" {
		t.Error("Expected an error message")
	}
	if response.Debug.HasToken || !response.Debug.HasUsername {
		t.Errorf("Unexpected debug payload: %+v", response.Debug)
	}
	if env.github.StatsCalls != 0 {
		t.Errorf("Expected zero upstream calls, got %d", env.github.StatsCalls)
	}
}

func TestGitHubStats_Success(t *testing.T) {
	env := setupTestRouter()

	w := doJSON(t, env.router, "GET", "/v1/stats/github", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var stats models.GitHubStats
	json.Unmarshal(w.Body.Bytes(), &stats)
	if stats.TotalRepos != 2 {
		t.Errorf("Expected 2 repos, got %d", stats.TotalRepos)
	}
	if env.github.StatsCalls != 1 {
		t.Errorf("Expected one aggregation call, got %d", env.github.StatsCalls)
	}
}

func TestGitHubStats_UpstreamFailure(t *testing.T) {
	env := setupTestRouter()
	env.github.StatsFunc = func(ctx context.Context) (*models.GitHubStats, error) {
		return nil, errors.New("failed to list repositories: 502")
	}

	w := doJSON(t, env.router, "GET", "/v1/stats/github", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["error"] != "Failed to fetch GitHub data" {
		t.Errorf("Expected generic error message, got %v", response["error"])
	}
}

func TestWakaTimeStats_DefaultsAndRange(t *testing.T) {
	env := setupTestRouter()

	w := doJSON(t, env.router, "GET", "/v1/stats/wakatime", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if env.wakatime.LastRange != "last_30_days" {
		t.Errorf("Expected default range last_30_days, got %q", env.wakatime.LastRange)
	}

	w = doJSON(t, env.router, "GET", "/v1/stats/wakatime?range=last_7_days", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if env.wakatime.LastRange != "last_7_days" {
		t.Errorf("Expected range passthrough, got %q", env.wakatime.LastRange)
	}
}

func TestWakaTimeStats_SummariesEndpoint(t *testing.T) {
	env := setupTestRouter()
	env.wakatime.SummariesFunc = func(ctx context.Context) *models.WakaSummaries {
		return &models.WakaSummaries{DailyHours: []models.DailySummary{{Date: "2026-08-27", Hours: 2.5}}}
	}

	w := doJSON(t, env.router, "GET", "/v1/stats/wakatime?endpoint=summaries", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var summaries models.WakaSummaries
	json.Unmarshal(w.Body.Bytes(), &summaries)
	if len(summaries.DailyHours) != 1 || summaries.DailyHours[0].Hours != 2.5 {
		t.Errorf("Unexpected summaries payload: %+v", summaries)
	}
}

func TestCORSHeaders(t *testing.T) {
	env := setupTestRouter()

	req := httptest.NewRequest("OPTIONS", "/v1/posts", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204 for OPTIONS, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Expected Access-Control-Allow-Origin header")
	}
}
