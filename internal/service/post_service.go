package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/portfolio-dashboard-api/internal/models"
	"github.com/portfolio-dashboard-api/internal/repository"
	"github.com/portfolio-dashboard-api/internal/validation"
	"github.com/rs/zerolog"
)

// wordsPerMinute is the reading speed used for the reading-time estimate
const wordsPerMinute = 200

// postService implements PostService
type postService struct {
	repo repository.PostRepository
	log  zerolog.Logger
}

func NewPostService(repo repository.PostRepository, log zerolog.Logger) PostService {
	return &postService{
		repo: repo,
		log:  log.With().Str("service", "posts").Logger(),
	}
}

func (s *postService) List(ctx context.Context, includeUnpublished bool) ([]*models.Post, error) {
	return s.repo.List(ctx, includeUnpublished)
}

func (s *postService) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// Create inserts a new post. Status defaults to DRAFT; a post created
// directly as PUBLISHED gets its publish timestamp immediately. The
// reading-time estimate is filled in when the client did not supply one.
func (s *postService) Create(ctx context.Context, in *models.PostInsert) (*models.Post, error) {
	if errs := validation.ValidatePostInsert(in); len(errs) > 0 {
		return nil, &ValidationFailedError{Errors: errs}
	}

	taken, err := s.repo.SlugExists(ctx, in.Slug)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, &SlugTakenError{Slug: in.Slug}
	}

	status := in.Status
	if status == "" {
		status = models.PostStatusDraft
	}

	post := &models.Post{
		ID:               uuid.NewString(),
		Title:            in.Title,
		Slug:             in.Slug,
		Content:          in.Content,
		Excerpt:          in.Excerpt,
		Status:           status,
		Tags:             in.Tags,
		FeaturedImageURL: in.FeaturedImageURL,
		ReadingTime:      in.ReadingTime,
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if post.ReadingTime == nil && post.Content != nil {
		rt := estimateReadingTime(*post.Content)
		post.ReadingTime = &rt
	}
	if status == models.PostStatusPublished {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}

	created, err := s.repo.Insert(ctx, post)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("id", created.ID).Str("slug", created.Slug).Msg("Post created")
	return created, nil
}

func (s *postService) Update(ctx context.Context, id string, patch *models.PostUpdate) (*models.Post, error) {
	if errs := validation.ValidatePostUpdate(patch); len(errs) > 0 {
		return nil, &ValidationFailedError{Errors: errs}
	}

	if patch.Slug != nil {
		existing, err := s.repo.GetBySlug(ctx, *patch.Slug)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, &SlugTakenError{Slug: *patch.Slug}
		}
	}

	return s.repo.Update(ctx, id, patch)
}

// Publish transitions a post to PUBLISHED; the first publish date wins
func (s *postService) Publish(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.repo.Publish(ctx, id)
	if err != nil {
		return nil, err
	}
	if post != nil {
		s.log.Info().Str("id", post.ID).Str("slug", post.Slug).Msg("Post published")
	}
	return post, nil
}

func (s *postService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *postService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func estimateReadingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
