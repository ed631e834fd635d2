package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/portfolio-dashboard-api/internal/database"
	"github.com/portfolio-dashboard-api/internal/models"
)

const projectColumns = `id, title, description, detailed_content, next_steps, category, status, progress, technologies, start_date, image_url, demo_url, github_url, work_in_progress_url, created_at, updated_at`

// projectRepo is the concrete implementation of ProjectRepository
type projectRepo struct {
	db *database.DB
}

// NewProjectRepo creates a new project repository
func NewProjectRepo(db *database.DB) ProjectRepository {
	return &projectRepo{db: db}
}

func scanProject(row interface{ Scan(...interface{}) error }) (*models.Project, error) {
	var p models.Project
	var techJSON []byte
	var detailed, nextSteps, imageURL, demoURL, githubURL, wipURL sql.NullString
	var startDate sql.NullTime

	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &detailed, &nextSteps, &p.Category,
		&p.Status, &p.Progress, &techJSON, &startDate,
		&imageURL, &demoURL, &githubURL, &wipURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Technologies = []string{}
	json.Unmarshal(techJSON, &p.Technologies)
	if detailed.Valid {
		p.DetailedContent = &detailed.String
	}
	if nextSteps.Valid {
		p.NextSteps = &nextSteps.String
	}
	if startDate.Valid {
		d := startDate.Time.Format("2006-01-02")
		p.StartDate = &d
	}
	if imageURL.Valid {
		p.ImageURL = &imageURL.String
	}
	if demoURL.Valid {
		p.DemoURL = &demoURL.String
	}
	if githubURL.Valid {
		p.GithubURL = &githubURL.String
	}
	if wipURL.Valid {
		p.WorkInProgressURL = &wipURL.String
	}

	return &p, nil
}

// List retrieves all projects ordered by last modification
func (r *projectRepo) List(ctx context.Context) ([]*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects
		ORDER BY updated_at DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []*models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

// GetByID retrieves a project by ID; returns nil when not found
func (r *projectRepo) GetByID(ctx context.Context, id string) (*models.Project, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	project, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return project, err
}

// Insert creates a new project and returns the stored row
func (r *projectRepo) Insert(ctx context.Context, project *models.Project) (*models.Project, error) {
	techJSON, _ := json.Marshal(project.Technologies)
	if project.Technologies == nil {
		techJSON = []byte("[]")
	}

	query := `
		INSERT INTO projects (id, title, description, detailed_content, next_steps, category, status, progress, technologies, start_date, image_url, demo_url, github_url, work_in_progress_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now(), now())
		RETURNING ` + projectColumns

	row := r.db.QueryRowContext(ctx, query,
		project.ID, project.Title, project.Description, project.DetailedContent,
		project.NextSteps, project.Category, project.Status, project.Progress,
		techJSON, project.StartDate, project.ImageURL, project.DemoURL,
		project.GithubURL, project.WorkInProgressURL,
	)
	return scanProject(row)
}

// Update applies a partial update and returns the stored row; returns nil
// when no project matches the id
func (r *projectRepo) Update(ctx context.Context, id string, patch *models.ProjectUpdate) (*models.Project, error) {
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
	if patch.DetailedContent != nil {
		add("detailed_content", *patch.DetailedContent)
	}
	if patch.NextSteps != nil {
		add("next_steps", *patch.NextSteps)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.Progress != nil {
		add("progress", *patch.Progress)
	}
	if patch.Technologies != nil {
		techJSON, _ := json.Marshal(*patch.Technologies)
		add("technologies", techJSON)
	}
	if patch.StartDate != nil {
		add("start_date", *patch.StartDate)
	}
	if patch.ImageURL != nil {
		add("image_url", *patch.ImageURL)
	}
	if patch.DemoURL != nil {
		add("demo_url", *patch.DemoURL)
	}
	if patch.GithubURL != nil {
		add("github_url", *patch.GithubURL)
	}
	if patch.WorkInProgressURL != nil {
		add("work_in_progress_url", *patch.WorkInProgressURL)
	}

	query := "UPDATE projects SET updated_at = now()"
	for _, clause := range set {
		query += ", " + clause
	}
	args = append(args, id)
	query += fmt.Sprintf(" WHERE id = $%d RETURNING %s", len(args), projectColumns)

	project, err := scanProject(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return project, err
}

// Delete removes a project by ID. Deleting a missing project is a no-op.
func (r *projectRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE id = $1", id)
	return err
}

// Count returns the total number of projects
func (r *projectRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM projects").Scan(&count)
	return count, err
}
