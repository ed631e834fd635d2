package repository

import (
	"context"

	"github.com/portfolio-dashboard-api/internal/database"
	"github.com/portfolio-dashboard-api/internal/models"
)

// PostRepository defines the interface for blog post data operations
type PostRepository interface {
	List(ctx context.Context, includeUnpublished bool) ([]*models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Insert(ctx context.Context, post *models.Post) (*models.Post, error)
	Update(ctx context.Context, id string, patch *models.PostUpdate) (*models.Post, error)
	Publish(ctx context.Context, id string) (*models.Post, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// ProjectRepository defines the interface for experiment project data operations
type ProjectRepository interface {
	List(ctx context.Context) ([]*models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Insert(ctx context.Context, project *models.Project) (*models.Project, error)
	Update(ctx context.Context, id string, patch *models.ProjectUpdate) (*models.Project, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// LearningRepository defines the interface for learning entry data operations
type LearningRepository interface {
	List(ctx context.Context) ([]*models.LearningEntry, error)
	GetByID(ctx context.Context, id string) (*models.LearningEntry, error)
	Insert(ctx context.Context, entry *models.LearningEntry) (*models.LearningEntry, error)
	Update(ctx context.Context, id string, patch *models.LearningEntryUpdate) (*models.LearningEntry, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Post     PostRepository
	Project  ProjectRepository
	Learning LearningRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Post:     NewPostRepo(db),
		Project:  NewProjectRepo(db),
		Learning: NewLearningRepo(db),
	}
}
