package models

import (
	"time"
)

// PostStatus represents the lifecycle state of a blog post
type PostStatus string

const (
	PostStatusDraft     PostStatus = "DRAFT"
	PostStatusPublished PostStatus = "PUBLISHED"
	PostStatusArchived  PostStatus = "ARCHIVED"
)

// ValidPostStatuses defines allowed post statuses
var ValidPostStatuses = map[PostStatus]bool{
	PostStatusDraft:     true,
	PostStatusPublished: true,
	PostStatusArchived:  true,
}

// Post represents a blog post
type Post struct {
	ID               string     `json:"id" db:"id"`
	Title            string     `json:"title" db:"title"`
	Slug             string     `json:"slug" db:"slug"`
	Content          *string    `json:"content" db:"content"`
	Excerpt          string     `json:"excerpt" db:"excerpt"`
	Status           PostStatus `json:"status" db:"status"`
	Tags             []string   `json:"tags" db:"-"` // Stored as JSONB in DB
	FeaturedImageURL *string    `json:"featured_image_url" db:"featured_image_url"`
	ReadingTime      *int       `json:"reading_time" db:"reading_time"`
	PublishedAt      *time.Time `json:"published_at" db:"published_at"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

// PostInsert is the payload for creating a post
type PostInsert struct {
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	Content          *string    `json:"content"`
	Excerpt          string     `json:"excerpt"`
	Status           PostStatus `json:"status"`
	Tags             []string   `json:"tags"`
	FeaturedImageURL *string    `json:"featured_image_url"`
	ReadingTime      *int       `json:"reading_time"`
}

// PostUpdate is a partial update; nil fields are left unchanged
type PostUpdate struct {
	Title            *string     `json:"title"`
	Slug             *string     `json:"slug"`
	Content          *string     `json:"content"`
	Excerpt          *string     `json:"excerpt"`
	Status           *PostStatus `json:"status"`
	Tags             *[]string   `json:"tags"`
	FeaturedImageURL *string     `json:"featured_image_url"`
	ReadingTime      *int        `json:"reading_time"`
	PublishedAt      *time.Time  `json:"published_at"`
}
