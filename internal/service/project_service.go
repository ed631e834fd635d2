package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/portfolio-dashboard-api/internal/models"
	"github.com/portfolio-dashboard-api/internal/repository"
	"github.com/portfolio-dashboard-api/internal/validation"
	"github.com/rs/zerolog"
)

// projectService implements ProjectService
type projectService struct {
	repo repository.ProjectRepository
	log  zerolog.Logger
}

func NewProjectService(repo repository.ProjectRepository, log zerolog.Logger) ProjectService {
	return &projectService{
		repo: repo,
		log:  log.With().Str("service", "projects").Logger(),
	}
}

func (s *projectService) List(ctx context.Context) ([]*models.Project, error) {
	return s.repo.List(ctx)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*models.Project, error) {
	return s.repo.GetByID(ctx, id)
}

// Create inserts a new project with defaults: PLANNING, progress 0, OTHER
func (s *projectService) Create(ctx context.Context, in *models.ProjectInsert) (*models.Project, error) {
	if errs := validation.ValidateProjectInsert(in); len(errs) > 0 {
		return nil, &ValidationFailedError{Errors: errs}
	}

	status := in.Status
	if status == "" {
		status = models.ProjectStatusPlanning
	}
	category := in.Category
	if category == "" {
		category = models.ProjectCategoryOther
	}
	progress := 0
	if in.Progress != nil {
		progress = *in.Progress
	}

	project := &models.Project{
		ID:                uuid.NewString(),
		Title:             in.Title,
		Description:       in.Description,
		DetailedContent:   in.DetailedContent,
		NextSteps:         in.NextSteps,
		Category:          category,
		Status:            status,
		Progress:          progress,
		Technologies:      in.Technologies,
		StartDate:         in.StartDate,
		ImageURL:          in.ImageURL,
		DemoURL:           in.DemoURL,
		GithubURL:         in.GithubURL,
		WorkInProgressURL: in.WorkInProgressURL,
	}

	created, err := s.repo.Insert(ctx, project)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("id", created.ID).Str("title", created.Title).Msg("Project created")
	return created, nil
}

func (s *projectService) Update(ctx context.Context, id string, patch *models.ProjectUpdate) (*models.Project, error) {
	if errs := validation.ValidateProjectUpdate(patch); len(errs) > 0 {
		return nil, &ValidationFailedError{Errors: errs}
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *projectService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
