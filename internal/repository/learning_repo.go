package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/portfolio-dashboard-api/internal/database"
	"github.com/portfolio-dashboard-api/internal/models"
)

const learningColumns = `id, title, description, category, categories, status, progress, skills, difficulty, estimated_hours, completed_hours, start_date, target_date, resources, created_at, updated_at`

// learningRepo is the concrete implementation of LearningRepository
type learningRepo struct {
	db *database.DB
}

// NewLearningRepo creates a new learning entry repository
func NewLearningRepo(db *database.DB) LearningRepository {
	return &learningRepo{db: db}
}

func scanLearningEntry(row interface{ Scan(...interface{}) error }) (*models.LearningEntry, error) {
	var e models.LearningEntry
	var categoriesJSON, skillsJSON, resourcesJSON []byte
	var description sql.NullString
	var estimatedHours sql.NullFloat64
	var startDate, targetDate sql.NullTime

	err := row.Scan(
		&e.ID, &e.Title, &description, &e.Category, &categoriesJSON, &e.Status,
		&e.Progress, &skillsJSON, &e.Difficulty, &estimatedHours, &e.CompletedHours,
		&startDate, &targetDate, &resourcesJSON,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.Categories = []string{}
	json.Unmarshal(categoriesJSON, &e.Categories)
	e.Skills = []string{}
	json.Unmarshal(skillsJSON, &e.Skills)
	e.Resources = []models.LearningResource{}
	json.Unmarshal(resourcesJSON, &e.Resources)
	if description.Valid {
		e.Description = &description.String
	}
	if estimatedHours.Valid {
		e.EstimatedHours = &estimatedHours.Float64
	}
	if startDate.Valid {
		d := startDate.Time.Format("2006-01-02")
		e.StartDate = &d
	}
	if targetDate.Valid {
		d := targetDate.Time.Format("2006-01-02")
		e.TargetDate = &d
	}

	return &e, nil
}

// List retrieves all learning entries ordered by last modification
func (r *learningRepo) List(ctx context.Context) ([]*models.LearningEntry, error) {
	query := `SELECT ` + learningColumns + ` FROM learning_entries
		ORDER BY updated_at DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*models.LearningEntry{}
	for rows.Next() {
		entry, err := scanLearningEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// GetByID retrieves a learning entry by ID; returns nil when not found
func (r *learningRepo) GetByID(ctx context.Context, id string) (*models.LearningEntry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+learningColumns+` FROM learning_entries WHERE id = $1`, id)
	entry, err := scanLearningEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return entry, err
}

// Insert creates a new learning entry and returns the stored row
func (r *learningRepo) Insert(ctx context.Context, entry *models.LearningEntry) (*models.LearningEntry, error) {
	categoriesJSON, _ := json.Marshal(entry.Categories)
	if entry.Categories == nil {
		categoriesJSON = []byte("[]")
	}
	skillsJSON, _ := json.Marshal(entry.Skills)
	if entry.Skills == nil {
		skillsJSON = []byte("[]")
	}
	resourcesJSON, _ := json.Marshal(entry.Resources)
	if entry.Resources == nil {
		resourcesJSON = []byte("[]")
	}

	query := `
		INSERT INTO learning_entries (id, title, description, category, categories, status, progress, skills, difficulty, estimated_hours, completed_hours, start_date, target_date, resources, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now(), now())
		RETURNING ` + learningColumns

	row := r.db.QueryRowContext(ctx, query,
		entry.ID, entry.Title, entry.Description, entry.Category, categoriesJSON,
		entry.Status, entry.Progress, skillsJSON, entry.Difficulty,
		entry.EstimatedHours, entry.CompletedHours, entry.StartDate, entry.TargetDate,
		resourcesJSON,
	)
	return scanLearningEntry(row)
}

// Update applies a partial update and returns the stored row; returns nil
// when no entry matches the id
func (r *learningRepo) Update(ctx context.Context, id string, patch *models.LearningEntryUpdate) (*models.LearningEntry, error) {
	set := []string{}
	args := []interface{}{}
	add := func(col string, val interface{}) {
		args = append(args, val)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.Categories != nil {
		categoriesJSON, _ := json.Marshal(*patch.Categories)
		add("categories", categoriesJSON)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.Progress != nil {
		add("progress", *patch.Progress)
	}
	if patch.Skills != nil {
		skillsJSON, _ := json.Marshal(*patch.Skills)
		add("skills", skillsJSON)
	}
	if patch.Difficulty != nil {
		add("difficulty", *patch.Difficulty)
	}
	if patch.EstimatedHours != nil {
		add("estimated_hours", *patch.EstimatedHours)
	}
	if patch.CompletedHours != nil {
		add("completed_hours", *patch.CompletedHours)
	}
	if patch.StartDate != nil {
		add("start_date", *patch.StartDate)
	}
	if patch.TargetDate != nil {
		add("target_date", *patch.TargetDate)
	}
	if patch.Resources != nil {
		resourcesJSON, _ := json.Marshal(*patch.Resources)
		add("resources", resourcesJSON)
	}

	query := "UPDATE learning_entries SET updated_at = now()"
	for _, clause := range set {
		query += ", " + clause
	}
	args = append(args, id)
	query += fmt.Sprintf(" WHERE id = $%d RETURNING %s", len(args), learningColumns)

	entry, err := scanLearningEntry(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return entry, err
}

// Delete removes a learning entry by ID. Deleting a missing entry is a no-op.
func (r *learningRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM learning_entries WHERE id = $1", id)
	return err
}

// Count returns the total number of learning entries
func (r *learningRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM learning_entries").Scan(&count)
	return count, err
}
