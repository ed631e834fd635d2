package models

import (
	"time"
)

// LearningStatus represents the lifecycle state of a learning entry
type LearningStatus string

const (
	LearningStatusPlanning   LearningStatus = "PLANNING"
	LearningStatusInProgress LearningStatus = "IN_PROGRESS"
	LearningStatusCompleted  LearningStatus = "COMPLETED"
	LearningStatusPaused     LearningStatus = "PAUSED"
)

// ValidLearningStatuses defines allowed learning entry statuses
var ValidLearningStatuses = map[LearningStatus]bool{
	LearningStatusPlanning:   true,
	LearningStatusInProgress: true,
	LearningStatusCompleted:  true,
	LearningStatusPaused:     true,
}

// LearningDifficulty grades a learning entry
type LearningDifficulty string

const (
	DifficultyBeginner     LearningDifficulty = "BEGINNER"
	DifficultyIntermediate LearningDifficulty = "INTERMEDIATE"
	DifficultyAdvanced     LearningDifficulty = "ADVANCED"
)

// ValidDifficulties defines allowed difficulty levels
var ValidDifficulties = map[LearningDifficulty]bool{
	DifficultyBeginner:     true,
	DifficultyIntermediate: true,
	DifficultyAdvanced:     true,
}

// LearningResource is one resource attached to a learning entry
type LearningResource struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Type      string `json:"type"`
	Completed bool   `json:"completed"`
}

// LearningEntry represents a learning-log entry.
// Category is always categories[0]; the write path keeps the two in sync.
type LearningEntry struct {
	ID             string             `json:"id" db:"id"`
	Title          string             `json:"title" db:"title"`
	Description    *string            `json:"description" db:"description"`
	Category       string             `json:"category" db:"category"`
	Categories     []string           `json:"categories" db:"-"` // Stored as JSONB in DB
	Status         LearningStatus     `json:"status" db:"status"`
	Progress       int                `json:"progress" db:"progress"`
	Skills         []string           `json:"skills" db:"-"` // Stored as JSONB in DB
	Difficulty     LearningDifficulty `json:"difficulty" db:"difficulty"`
	EstimatedHours *float64           `json:"estimated_hours" db:"estimated_hours"`
	CompletedHours float64            `json:"completed_hours" db:"completed_hours"`
	StartDate      *string            `json:"start_date" db:"start_date"`
	TargetDate     *string            `json:"target_date" db:"target_date"`
	Resources      []LearningResource `json:"resources" db:"-"` // Stored as JSONB in DB
	CreatedAt      time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at" db:"updated_at"`
}

// LearningEntryInsert is the payload for creating a learning entry
type LearningEntryInsert struct {
	Title          string             `json:"title"`
	Description    *string            `json:"description"`
	Category       string             `json:"category"`
	Categories     []string           `json:"categories"`
	Status         LearningStatus     `json:"status"`
	Progress       *int               `json:"progress"`
	Skills         []string           `json:"skills"`
	Difficulty     LearningDifficulty `json:"difficulty"`
	EstimatedHours *float64           `json:"estimated_hours"`
	CompletedHours *float64           `json:"completed_hours"`
	StartDate      *string            `json:"start_date"`
	TargetDate     *string            `json:"target_date"`
	Resources      []LearningResource `json:"resources"`
}

// LearningEntryUpdate is a partial update; nil fields are left unchanged
type LearningEntryUpdate struct {
	Title          *string              `json:"title"`
	Description    *string              `json:"description"`
	Category       *string              `json:"category"`
	Categories     *[]string            `json:"categories"`
	Status         *LearningStatus      `json:"status"`
	Progress       *int                 `json:"progress"`
	Skills         *[]string            `json:"skills"`
	Difficulty     *LearningDifficulty  `json:"difficulty"`
	EstimatedHours *float64             `json:"estimated_hours"`
	CompletedHours *float64             `json:"completed_hours"`
	StartDate      *string              `json:"start_date"`
	TargetDate     *string              `json:"target_date"`
	Resources      *[]LearningResource  `json:"resources"`
}
