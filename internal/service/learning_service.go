package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/portfolio-dashboard-api/internal/models"
	"github.com/portfolio-dashboard-api/internal/repository"
	"github.com/portfolio-dashboard-api/internal/validation"
	"github.com/rs/zerolog"
)

// learningService implements LearningService
type learningService struct {
	repo repository.LearningRepository
	log  zerolog.Logger
}

func NewLearningService(repo repository.LearningRepository, log zerolog.Logger) LearningService {
	return &learningService{
		repo: repo,
		log:  log.With().Str("service", "learning").Logger(),
	}
}

func (s *learningService) List(ctx context.Context) ([]*models.LearningEntry, error) {
	return s.repo.List(ctx)
}

func (s *learningService) GetByID(ctx context.Context, id string) (*models.LearningEntry, error) {
	return s.repo.GetByID(ctx, id)
}

// Create inserts a new learning entry. The primary category and the category
// list are normalized so that category == categories[0].
func (s *learningService) Create(ctx context.Context, in *models.LearningEntryInsert) (*models.LearningEntry, error) {
	if errs := validation.ValidateLearningInsert(in); len(errs) > 0 {
		return nil, &ValidationFailedError{Errors: errs}
	}

	status := in.Status
	if status == "" {
		status = models.LearningStatusPlanning
	}
	difficulty := in.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyBeginner
	}
	progress := 0
	if in.Progress != nil {
		progress = *in.Progress
	}
	completedHours := 0.0
	if in.CompletedHours != nil {
		completedHours = *in.CompletedHours
	}

	category, categories := normalizeCategories(in.Category, in.Categories)

	entry := &models.LearningEntry{
		ID:             uuid.NewString(),
		Title:          in.Title,
		Description:    in.Description,
		Category:       category,
		Categories:     categories,
		Status:         status,
		Progress:       progress,
		Skills:         in.Skills,
		Difficulty:     difficulty,
		EstimatedHours: in.EstimatedHours,
		CompletedHours: completedHours,
		StartDate:      in.StartDate,
		TargetDate:     in.TargetDate,
		Resources:      in.Resources,
	}

	created, err := s.repo.Insert(ctx, entry)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("id", created.ID).Str("title", created.Title).Msg("Learning entry created")
	return created, nil
}

// Update applies a partial update, re-normalizing the category pair when
// either side of it changes.
func (s *learningService) Update(ctx context.Context, id string, patch *models.LearningEntryUpdate) (*models.LearningEntry, error) {
	if errs := validation.ValidateLearningUpdate(patch); len(errs) > 0 {
		return nil, &ValidationFailedError{Errors: errs}
	}

	if patch.Category != nil || patch.Categories != nil {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, nil
		}

		category := current.Category
		categories := current.Categories
		if patch.Categories != nil {
			categories = *patch.Categories
			if len(categories) > 0 {
				category = categories[0]
			}
		} else if patch.Category != nil {
			category = *patch.Category
			if len(categories) > 0 {
				categories = append([]string{category}, categories[1:]...)
			} else {
				categories = []string{category}
			}
		}
		category, categories = normalizeCategories(category, categories)
		patch.Category = &category
		patch.Categories = &categories
	}

	return s.repo.Update(ctx, id, patch)
}

func (s *learningService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *learningService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// normalizeCategories resolves the redundant primary-category field: the
// primary is always the first element of the list.
func normalizeCategories(category string, categories []string) (string, []string) {
	if len(categories) > 0 {
		return categories[0], categories
	}
	if category != "" {
		return category, []string{category}
	}
	return "", []string{}
}
