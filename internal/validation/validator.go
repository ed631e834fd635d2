package validation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/portfolio-dashboard-api/internal/models"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// IsValidSlug reports whether s is a URL-safe slug
func IsValidSlug(s string) bool {
	return slugRegex.MatchString(s)
}

func isValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func validProgress(p int) bool {
	return p >= 0 && p <= 100
}

// ValidatePostInsert validates a post creation payload
func ValidatePostInsert(in *models.PostInsert) []ValidationError {
	var errors []ValidationError

	if in.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}
	if in.Slug == "" {
		errors = append(errors, ValidationError{Field: "slug", Message: "slug is required"})
	} else if !IsValidSlug(in.Slug) {
		errors = append(errors, ValidationError{Field: "slug", Message: "slug must contain only lowercase letters, digits and hyphens", Value: in.Slug})
	}
	if in.Status != "" && !models.ValidPostStatuses[in.Status] {
		errors = append(errors, ValidationError{Field: "status", Message: "invalid status", Value: in.Status})
	}
	if in.ReadingTime != nil && *in.ReadingTime < 0 {
		errors = append(errors, ValidationError{Field: "reading_time", Message: "reading_time must be >= 0", Value: *in.ReadingTime})
	}

	return errors
}

// ValidatePostUpdate validates a partial post update
func ValidatePostUpdate(patch *models.PostUpdate) []ValidationError {
	var errors []ValidationError

	if patch.Title != nil && *patch.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title cannot be empty"})
	}
	if patch.Slug != nil && !IsValidSlug(*patch.Slug) {
		errors = append(errors, ValidationError{Field: "slug", Message: "slug must contain only lowercase letters, digits and hyphens", Value: *patch.Slug})
	}
	if patch.Status != nil && !models.ValidPostStatuses[*patch.Status] {
		errors = append(errors, ValidationError{Field: "status", Message: "invalid status", Value: *patch.Status})
	}
	if patch.ReadingTime != nil && *patch.ReadingTime < 0 {
		errors = append(errors, ValidationError{Field: "reading_time", Message: "reading_time must be >= 0", Value: *patch.ReadingTime})
	}

	return errors
}

// ValidateProjectInsert validates a project creation payload
func ValidateProjectInsert(in *models.ProjectInsert) []ValidationError {
	var errors []ValidationError

	if in.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}
	if in.Category != "" && !models.ValidProjectCategories[in.Category] {
		errors = append(errors, ValidationError{Field: "category", Message: "invalid category", Value: in.Category})
	}
	if in.Status != "" && !models.ValidProjectStatuses[in.Status] {
		errors = append(errors, ValidationError{Field: "status", Message: "invalid status", Value: in.Status})
	}
	if in.Progress != nil && !validProgress(*in.Progress) {
		errors = append(errors, ValidationError{Field: "progress", Message: "progress must be between 0 and 100", Value: *in.Progress})
	}
	if in.StartDate != nil && !isValidDate(*in.StartDate) {
		errors = append(errors, ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD", Value: *in.StartDate})
	}

	return errors
}

// ValidateProjectUpdate validates a partial project update
func ValidateProjectUpdate(patch *models.ProjectUpdate) []ValidationError {
	var errors []ValidationError

	if patch.Title != nil && *patch.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title cannot be empty"})
	}
	if patch.Category != nil && !models.ValidProjectCategories[*patch.Category] {
		errors = append(errors, ValidationError{Field: "category", Message: "invalid category", Value: *patch.Category})
	}
	if patch.Status != nil && !models.ValidProjectStatuses[*patch.Status] {
		errors = append(errors, ValidationError{Field: "status", Message: "invalid status", Value: *patch.Status})
	}
	if patch.Progress != nil && !validProgress(*patch.Progress) {
		errors = append(errors, ValidationError{Field: "progress", Message: "progress must be between 0 and 100", Value: *patch.Progress})
	}
	if patch.StartDate != nil && !isValidDate(*patch.StartDate) {
		errors = append(errors, ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD", Value: *patch.StartDate})
	}

	return errors
}

// ValidateLearningInsert validates a learning entry creation payload
func ValidateLearningInsert(in *models.LearningEntryInsert) []ValidationError {
	var errors []ValidationError

	if in.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}
	if in.Status != "" && !models.ValidLearningStatuses[in.Status] {
		errors = append(errors, ValidationError{Field: "status", Message: "invalid status", Value: in.Status})
	}
	if in.Difficulty != "" && !models.ValidDifficulties[in.Difficulty] {
		errors = append(errors, ValidationError{Field: "difficulty", Message: "invalid difficulty", Value: in.Difficulty})
	}
	if in.Progress != nil && !validProgress(*in.Progress) {
		errors = append(errors, ValidationError{Field: "progress", Message: "progress must be between 0 and 100", Value: *in.Progress})
	}
	if in.EstimatedHours != nil && *in.EstimatedHours < 0 {
		errors = append(errors, ValidationError{Field: "estimated_hours", Message: "estimated_hours must be >= 0", Value: *in.EstimatedHours})
	}
	if in.CompletedHours != nil && *in.CompletedHours < 0 {
		errors = append(errors, ValidationError{Field: "completed_hours", Message: "completed_hours must be >= 0", Value: *in.CompletedHours})
	}
	if in.StartDate != nil && !isValidDate(*in.StartDate) {
		errors = append(errors, ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD", Value: *in.StartDate})
	}
	if in.TargetDate != nil && !isValidDate(*in.TargetDate) {
		errors = append(errors, ValidationError{Field: "target_date", Message: "target_date must be YYYY-MM-DD", Value: *in.TargetDate})
	}
	errors = append(errors, validateResources(in.Resources)...)

	return errors
}

// ValidateLearningUpdate validates a partial learning entry update
func ValidateLearningUpdate(patch *models.LearningEntryUpdate) []ValidationError {
	var errors []ValidationError

	if patch.Title != nil && *patch.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title cannot be empty"})
	}
	if patch.Status != nil && !models.ValidLearningStatuses[*patch.Status] {
		errors = append(errors, ValidationError{Field: "status", Message: "invalid status", Value: *patch.Status})
	}
	if patch.Difficulty != nil && !models.ValidDifficulties[*patch.Difficulty] {
		errors = append(errors, ValidationError{Field: "difficulty", Message: "invalid difficulty", Value: *patch.Difficulty})
	}
	if patch.Progress != nil && !validProgress(*patch.Progress) {
		errors = append(errors, ValidationError{Field: "progress", Message: "progress must be between 0 and 100", Value: *patch.Progress})
	}
	if patch.EstimatedHours != nil && *patch.EstimatedHours < 0 {
		errors = append(errors, ValidationError{Field: "estimated_hours", Message: "estimated_hours must be >= 0", Value: *patch.EstimatedHours})
	}
	if patch.CompletedHours != nil && *patch.CompletedHours < 0 {
		errors = append(errors, ValidationError{Field: "completed_hours", Message: "completed_hours must be >= 0", Value: *patch.CompletedHours})
	}
	if patch.StartDate != nil && !isValidDate(*patch.StartDate) {
		errors = append(errors, ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD", Value: *patch.StartDate})
	}
	if patch.TargetDate != nil && !isValidDate(*patch.TargetDate) {
		errors = append(errors, ValidationError{Field: "target_date", Message: "target_date must be YYYY-MM-DD", Value: *patch.TargetDate})
	}
	if patch.Resources != nil {
		errors = append(errors, validateResources(*patch.Resources)...)
	}

	return errors
}

func validateResources(resources []models.LearningResource) []ValidationError {
	var errors []ValidationError
	for i, res := range resources {
		if res.Title == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("resources[%d].title", i),
				Message: "resource title is required",
			})
		}
		if res.URL == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("resources[%d].url", i),
				Message: "resource url is required",
			})
		}
	}
	return errors
}
