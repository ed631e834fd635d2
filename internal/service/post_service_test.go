package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/portfolio-dashboard-api/internal/mocks"
	"github.com/portfolio-dashboard-api/internal/models"
	"github.com/portfolio-dashboard-api/internal/service"
	"github.com/rs/zerolog"
)

func TestPostCreate_Defaults(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	svc := service.NewPostService(repo, zerolog.Nop())

	post, err := svc.Create(context.Background(), &models.PostInsert{
		Title: "Hello",
		Slug:  "hello",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if post.ID == "" {
		t.Error("Expected a generated ID")
	}
	if post.Status != models.PostStatusDraft {
		t.Errorf("Expected DRAFT default, got %s", post.Status)
	}
	if post.PublishedAt != nil {
		t.Error("Draft must not carry a publish timestamp")
	}
	if post.Tags == nil {
		t.Error("Tags should default to an empty list")
	}
}

func TestPostCreate_ReadingTimeEstimate(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	svc := service.NewPostService(repo, zerolog.Nop())

	tests := []struct {
		name     string
		words    int
		expected int
	}{
		{"short post rounds up to a minute", 50, 1},
		{"exactly one minute", 200, 1},
		{"just over a minute", 201, 2},
		{"five minutes", 1000, 5},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.Repeat("word ", tt.words)
			post, err := svc.Create(context.Background(), &models.PostInsert{
				Title:   "T",
				Slug:    "reading-" + string(rune('a'+i)),
				Content: &content,
			})
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if post.ReadingTime == nil {
				t.Fatal("Expected a reading-time estimate")
			}
			if *post.ReadingTime != tt.expected {
				t.Errorf("Expected %d minutes, got %d", tt.expected, *post.ReadingTime)
			}
		})
	}
}

func TestPostCreate_ExplicitReadingTimeWins(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	svc := service.NewPostService(repo, zerolog.Nop())

	content := strings.Repeat("word ", 1000)
	rt := 42
	post, err := svc.Create(context.Background(), &models.PostInsert{
		Title:       "T",
		Slug:        "explicit-rt",
		Content:     &content,
		ReadingTime: &rt,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if *post.ReadingTime != 42 {
		t.Errorf("Explicit reading time must be kept, got %d", *post.ReadingTime)
	}
}

func TestPostCreate_PublishedDirectly(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	svc := service.NewPostService(repo, zerolog.Nop())

	post, err := svc.Create(context.Background(), &models.PostInsert{
		Title:  "T",
		Slug:   "live",
		Status: models.PostStatusPublished,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if post.PublishedAt == nil {
		t.Error("Creating directly as PUBLISHED must stamp publishedAt")
	}
}

func TestPostCreate_SlugConflict(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	repo.Posts["p1"] = &models.Post{ID: "p1", Slug: "taken"}
	svc := service.NewPostService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), &models.PostInsert{Title: "T", Slug: "taken"})

	var slugErr *service.SlugTakenError
	if !errors.As(err, &slugErr) {
		t.Fatalf("Expected SlugTakenError, got %v", err)
	}
	if slugErr.Slug != "taken" {
		t.Errorf("Expected slug 'taken', got %q", slugErr.Slug)
	}
}

func TestPostUpdate_SlugConflict(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	repo.Posts["p1"] = &models.Post{ID: "p1", Slug: "one"}
	repo.Posts["p2"] = &models.Post{ID: "p2", Slug: "two"}
	svc := service.NewPostService(repo, zerolog.Nop())

	slug := "two"
	_, err := svc.Update(context.Background(), "p1", &models.PostUpdate{Slug: &slug})

	var slugErr *service.SlugTakenError
	if !errors.As(err, &slugErr) {
		t.Fatalf("Expected SlugTakenError, got %v", err)
	}

	// Re-submitting a post's own slug is not a conflict
	own := "one"
	updated, err := svc.Update(context.Background(), "p1", &models.PostUpdate{Slug: &own})
	if err != nil {
		t.Fatalf("Updating with own slug failed: %v", err)
	}
	if updated == nil || updated.Slug != "one" {
		t.Errorf("Unexpected update result: %+v", updated)
	}
}

func TestPostUpdate_NotFound(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	svc := service.NewPostService(repo, zerolog.Nop())

	title := "New"
	post, err := svc.Update(context.Background(), "missing", &models.PostUpdate{Title: &title})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if post != nil {
		t.Error("Expected nil for a missing post")
	}
}

func TestPostCreate_ValidationFailure(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	svc := service.NewPostService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), &models.PostInsert{Title: "T", Slug: "Bad Slug"})

	var valErr *service.ValidationFailedError
	if !errors.As(err, &valErr) {
		t.Fatalf("Expected ValidationFailedError, got %v", err)
	}
	if len(valErr.Errors) == 0 {
		t.Error("Expected at least one field error")
	}
}
