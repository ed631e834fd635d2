package service

import (
	"context"
	"fmt"

	"github.com/portfolio-dashboard-api/internal/config"
	"github.com/portfolio-dashboard-api/internal/models"
	"github.com/portfolio-dashboard-api/internal/repository"
	"github.com/portfolio-dashboard-api/internal/validation"
	"github.com/rs/zerolog"
)

// PostService defines the interface for blog post operations
type PostService interface {
	List(ctx context.Context, includeUnpublished bool) ([]*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	Create(ctx context.Context, in *models.PostInsert) (*models.Post, error)
	Update(ctx context.Context, id string, patch *models.PostUpdate) (*models.Post, error)
	Publish(ctx context.Context, id string) (*models.Post, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// ProjectService defines the interface for experiment project operations
type ProjectService interface {
	List(ctx context.Context) ([]*models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, in *models.ProjectInsert) (*models.Project, error)
	Update(ctx context.Context, id string, patch *models.ProjectUpdate) (*models.Project, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// LearningService defines the interface for learning entry operations
type LearningService interface {
	List(ctx context.Context) ([]*models.LearningEntry, error)
	GetByID(ctx context.Context, id string) (*models.LearningEntry, error)
	Create(ctx context.Context, in *models.LearningEntryInsert) (*models.LearningEntry, error)
	Update(ctx context.Context, id string, patch *models.LearningEntryUpdate) (*models.LearningEntry, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// GitHubService defines the interface for the source-activity aggregator
type GitHubService interface {
	// Configured reports whether the token and username are present
	Configured() (hasToken, hasUsername bool)
	// Stats aggregates repositories, events, commits and languages into the
	// dashboard summary
	Stats(ctx context.Context) (*models.GitHubStats, error)
}

// WakaTimeService defines the interface for the time-tracking aggregator.
// Its methods never fail: every failure mode degrades to demo data.
type WakaTimeService interface {
	Stats(ctx context.Context, rng string) *models.WakaStats
	Summaries(ctx context.Context) *models.WakaSummaries
}

// Services holds all service interfaces
type Services struct {
	Post     PostService
	Project  ProjectService
	Learning LearningService
	GitHub   GitHubService
	WakaTime WakaTimeService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Post:     NewPostService(repos.Post, log),
		Project:  NewProjectService(repos.Project, log),
		Learning: NewLearningService(repos.Learning, log),
		GitHub:   NewGitHubService(&cfg.GitHub, log),
		WakaTime: NewWakaTimeService(&cfg.WakaTime, log),
	}
}

// ValidationFailedError carries field-level validation errors to the handler
type ValidationFailedError struct {
	Errors []validation.ValidationError
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("validation failed: %d error(s)", len(e.Errors))
}

// SlugTakenError is returned when a post slug is already in use
type SlugTakenError struct {
	Slug string
}

func (e *SlugTakenError) Error() string {
	return fmt.Sprintf("slug %q is already in use", e.Slug)
}
