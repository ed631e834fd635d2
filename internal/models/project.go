package models

import (
	"time"
)

// ProjectStatus represents the lifecycle state of an experiment project
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "PLANNING"
	ProjectStatusInProgress ProjectStatus = "IN_PROGRESS"
	ProjectStatusTesting    ProjectStatus = "TESTING"
	ProjectStatusCompleted  ProjectStatus = "COMPLETED"
	ProjectStatusPaused     ProjectStatus = "PAUSED"
)

// ValidProjectStatuses defines allowed project statuses
var ValidProjectStatuses = map[ProjectStatus]bool{
	ProjectStatusPlanning:   true,
	ProjectStatusInProgress: true,
	ProjectStatusTesting:    true,
	ProjectStatusCompleted:  true,
	ProjectStatusPaused:     true,
}

// ProjectCategory classifies an experiment project
type ProjectCategory string

const (
	ProjectCategoryWeb    ProjectCategory = "WEB"
	ProjectCategoryMobile ProjectCategory = "MOBILE"
	ProjectCategoryAI     ProjectCategory = "AI"
	ProjectCategoryGame   ProjectCategory = "GAME"
	ProjectCategoryTool   ProjectCategory = "TOOL"
	ProjectCategoryOther  ProjectCategory = "OTHER"
)

// ValidProjectCategories defines allowed project categories
var ValidProjectCategories = map[ProjectCategory]bool{
	ProjectCategoryWeb:    true,
	ProjectCategoryMobile: true,
	ProjectCategoryAI:     true,
	ProjectCategoryGame:   true,
	ProjectCategoryTool:   true,
	ProjectCategoryOther:  true,
}

// Project represents an experiment project
type Project struct {
	ID                string          `json:"id" db:"id"`
	Title             string          `json:"title" db:"title"`
	Description       string          `json:"description" db:"description"`
	DetailedContent   *string         `json:"detailed_content" db:"detailed_content"`
	NextSteps         *string         `json:"next_steps" db:"next_steps"`
	Category          ProjectCategory `json:"category" db:"category"`
	Status            ProjectStatus   `json:"status" db:"status"`
	Progress          int             `json:"progress" db:"progress"`
	Technologies      []string        `json:"technologies" db:"-"` // Stored as JSONB in DB
	StartDate         *string         `json:"start_date" db:"start_date"`
	ImageURL          *string         `json:"image_url" db:"image_url"`
	DemoURL           *string         `json:"demo_url" db:"demo_url"`
	GithubURL         *string         `json:"github_url" db:"github_url"`
	WorkInProgressURL *string         `json:"work_in_progress_url" db:"work_in_progress_url"`
	CreatedAt         time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at" db:"updated_at"`
}

// ProjectInsert is the payload for creating a project
type ProjectInsert struct {
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	DetailedContent   *string         `json:"detailed_content"`
	NextSteps         *string         `json:"next_steps"`
	Category          ProjectCategory `json:"category"`
	Status            ProjectStatus   `json:"status"`
	Progress          *int            `json:"progress"`
	Technologies      []string        `json:"technologies"`
	StartDate         *string         `json:"start_date"`
	ImageURL          *string         `json:"image_url"`
	DemoURL           *string         `json:"demo_url"`
	GithubURL         *string         `json:"github_url"`
	WorkInProgressURL *string         `json:"work_in_progress_url"`
}

// ProjectUpdate is a partial update; nil fields are left unchanged
type ProjectUpdate struct {
	Title             *string          `json:"title"`
	Description       *string          `json:"description"`
	DetailedContent   *string          `json:"detailed_content"`
	NextSteps         *string          `json:"next_steps"`
	Category          *ProjectCategory `json:"category"`
	Status            *ProjectStatus   `json:"status"`
	Progress          *int             `json:"progress"`
	Technologies      *[]string        `json:"technologies"`
	StartDate         *string          `json:"start_date"`
	ImageURL          *string          `json:"image_url"`
	DemoURL           *string          `json:"demo_url"`
	GithubURL         *string          `json:"github_url"`
	WorkInProgressURL *string          `json:"work_in_progress_url"`
}
