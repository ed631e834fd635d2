package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/portfolio-dashboard-api/internal/database"
	"github.com/portfolio-dashboard-api/internal/models"
)

const postColumns = `id, title, slug, content, excerpt, status, tags, featured_image_url, reading_time, published_at, created_at, updated_at`

// postRepo is the concrete implementation of PostRepository
type postRepo struct {
	db *database.DB
}

// NewPostRepo creates a new post repository
func NewPostRepo(db *database.DB) PostRepository {
	return &postRepo{db: db}
}

func scanPost(row interface{ Scan(...interface{}) error }) (*models.Post, error) {
	var post models.Post
	var tagsJSON []byte
	var content, featuredImage sql.NullString
	var readingTime sql.NullInt64
	var publishedAt sql.NullTime

	err := row.Scan(
		&post.ID, &post.Title, &post.Slug, &content, &post.Excerpt, &post.Status,
		&tagsJSON, &featuredImage, &readingTime, &publishedAt,
		&post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	post.Tags = []string{}
	json.Unmarshal(tagsJSON, &post.Tags)
	if content.Valid {
		post.Content = &content.String
	}
	if featuredImage.Valid {
		post.FeaturedImageURL = &featuredImage.String
	}
	if readingTime.Valid {
		rt := int(readingTime.Int64)
		post.ReadingTime = &rt
	}
	if publishedAt.Valid {
		post.PublishedAt = &publishedAt.Time
	}

	return &post, nil
}

// List retrieves posts. Public mode returns published posts ordered by publish
// date; admin mode returns everything ordered by last modification.
func (r *postRepo) List(ctx context.Context, includeUnpublished bool) ([]*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts
		WHERE status = 'PUBLISHED'
		ORDER BY published_at DESC NULLS LAST, updated_at DESC`
	if includeUnpublished {
		query = `SELECT ` + postColumns + ` FROM posts
			ORDER BY updated_at DESC, created_at DESC`
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []*models.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// GetByID retrieves a post by ID; returns nil when not found
func (r *postRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	post, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return post, err
}

// GetBySlug retrieves a post by its unique slug; returns nil when not found
func (r *postRepo) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE slug = $1`, slug)
	post, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return post, err
}

// SlugExists checks if a post with the given slug exists
func (r *postRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM posts WHERE slug = $1)", slug).Scan(&exists)
	return exists, err
}

// Insert creates a new post and returns the stored row
func (r *postRepo) Insert(ctx context.Context, post *models.Post) (*models.Post, error) {
	tagsJSON, _ := json.Marshal(post.Tags)
	if post.Tags == nil {
		tagsJSON = []byte("[]")
	}

	query := `
		INSERT INTO posts (id, title, slug, content, excerpt, status, tags, featured_image_url, reading_time, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
		RETURNING ` + postColumns

	row := r.db.QueryRowContext(ctx, query,
		post.ID, post.Title, post.Slug, post.Content, post.Excerpt, post.Status,
		tagsJSON, post.FeaturedImageURL, post.ReadingTime, post.PublishedAt,
	)
	return scanPost(row)
}

// Update applies a partial update and returns the stored row; returns nil
// when no post matches the id
func (r *postRepo) Update(ctx context.Context, id string, patch *models.PostUpdate) (*models.Post, error) {
	set := []string{}
	args := []interface{}{}
	add := func(col string, val interface{}) {
		args = append(args, val)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Slug != nil {
		add("slug", *patch.Slug)
	}
	if patch.Content != nil {
		add("content", *patch.Content)
	}
	if patch.Excerpt != nil {
		add("excerpt", *patch.Excerpt)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.Tags != nil {
		tagsJSON, _ := json.Marshal(*patch.Tags)
		add("tags", tagsJSON)
	}
	if patch.FeaturedImageURL != nil {
		add("featured_image_url", *patch.FeaturedImageURL)
	}
	if patch.ReadingTime != nil {
		add("reading_time", *patch.ReadingTime)
	}
	if patch.PublishedAt != nil {
		add("published_at", *patch.PublishedAt)
	}

	query := "UPDATE posts SET updated_at = now()"
	for _, clause := range set {
		query += ", " + clause
	}
	args = append(args, id)
	query += fmt.Sprintf(" WHERE id = $%d RETURNING %s", len(args), postColumns)

	post, err := scanPost(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return post, err
}

// Publish transitions a post to PUBLISHED. The publish timestamp is only set
// on the first transition; republishing keeps the original date.
func (r *postRepo) Publish(ctx context.Context, id string) (*models.Post, error) {
	query := `
		UPDATE posts
		SET status = 'PUBLISHED',
		    published_at = COALESCE(published_at, now()),
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + postColumns

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return post, err
}

// Delete removes a post by ID. Deleting a missing post is a no-op.
func (r *postRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", id)
	return err
}

// Count returns the total number of posts
func (r *postRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts").Scan(&count)
	return count, err
}
