package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/portfolio-dashboard-api/internal/models"
	"github.com/portfolio-dashboard-api/internal/repository"
)

// MockPostRepository is an in-memory implementation of PostRepository
type MockPostRepository struct {
	Posts   map[string]*models.Post
	ListErr error
}

// Verify interface compliance
var _ repository.PostRepository = (*MockPostRepository)(nil)

func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{Posts: make(map[string]*models.Post)}
}

func copyPost(p *models.Post) *models.Post {
	cp := *p
	cp.Tags = append([]string{}, p.Tags...)
	return &cp
}

func (m *MockPostRepository) List(ctx context.Context, includeUnpublished bool) ([]*models.Post, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	posts := []*models.Post{}
	for _, p := range m.Posts {
		if !includeUnpublished && p.Status != models.PostStatusPublished {
			continue
		}
		posts = append(posts, copyPost(p))
	}

	if includeUnpublished {
		sort.Slice(posts, func(i, j int) bool {
			if !posts[i].UpdatedAt.Equal(posts[j].UpdatedAt) {
				return posts[i].UpdatedAt.After(posts[j].UpdatedAt)
			}
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		})
	} else {
		sort.Slice(posts, func(i, j int) bool {
			pi, pj := posts[i].PublishedAt, posts[j].PublishedAt
			switch {
			case pi != nil && pj != nil && !pi.Equal(*pj):
				return pi.After(*pj)
			case pi == nil && pj != nil:
				return false
			case pi != nil && pj == nil:
				return true
			}
			return posts[i].UpdatedAt.After(posts[j].UpdatedAt)
		})
	}
	return posts, nil
}

func (m *MockPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	p, ok := m.Posts[id]
	if !ok {
		return nil, nil
	}
	return copyPost(p), nil
}

func (m *MockPostRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	for _, p := range m.Posts {
		if p.Slug == slug {
			return copyPost(p), nil
		}
	}
	return nil, nil
}

func (m *MockPostRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	for _, p := range m.Posts {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockPostRepository) Insert(ctx context.Context, post *models.Post) (*models.Post, error) {
	now := time.Now().UTC()
	stored := copyPost(post)
	stored.CreatedAt = now
	stored.UpdatedAt = now
	m.Posts[stored.ID] = stored
	return copyPost(stored), nil
}

func (m *MockPostRepository) Update(ctx context.Context, id string, patch *models.PostUpdate) (*models.Post, error) {
	p, ok := m.Posts[id]
	if !ok {
		return nil, nil
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Slug != nil {
		p.Slug = *patch.Slug
	}
	if patch.Content != nil {
		p.Content = patch.Content
	}
	if patch.Excerpt != nil {
		p.Excerpt = *patch.Excerpt
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Tags != nil {
		p.Tags = *patch.Tags
	}
	if patch.FeaturedImageURL != nil {
		p.FeaturedImageURL = patch.FeaturedImageURL
	}
	if patch.ReadingTime != nil {
		p.ReadingTime = patch.ReadingTime
	}
	if patch.PublishedAt != nil {
		p.PublishedAt = patch.PublishedAt
	}
	p.UpdatedAt = time.Now().UTC()
	return copyPost(p), nil
}

func (m *MockPostRepository) Publish(ctx context.Context, id string) (*models.Post, error) {
	p, ok := m.Posts[id]
	if !ok {
		return nil, nil
	}
	p.Status = models.PostStatusPublished
	if p.PublishedAt == nil {
		now := time.Now().UTC()
		p.PublishedAt = &now
	}
	p.UpdatedAt = time.Now().UTC()
	return copyPost(p), nil
}

func (m *MockPostRepository) Delete(ctx context.Context, id string) error {
	delete(m.Posts, id)
	return nil
}

func (m *MockPostRepository) Count(ctx context.Context) (int, error) {
	return len(m.Posts), nil
}

// MockProjectRepository is an in-memory implementation of ProjectRepository
type MockProjectRepository struct {
	Projects map[string]*models.Project
	ListErr  error
}

var _ repository.ProjectRepository = (*MockProjectRepository)(nil)

func NewMockProjectRepository() *MockProjectRepository {
	return &MockProjectRepository{Projects: make(map[string]*models.Project)}
}

func copyProject(p *models.Project) *models.Project {
	cp := *p
	cp.Technologies = append([]string{}, p.Technologies...)
	return &cp
}

func (m *MockProjectRepository) List(ctx context.Context) ([]*models.Project, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	projects := []*models.Project{}
	for _, p := range m.Projects {
		projects = append(projects, copyProject(p))
	}
	sort.Slice(projects, func(i, j int) bool {
		if !projects[i].UpdatedAt.Equal(projects[j].UpdatedAt) {
			return projects[i].UpdatedAt.After(projects[j].UpdatedAt)
		}
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
	return projects, nil
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	p, ok := m.Projects[id]
	if !ok {
		return nil, nil
	}
	return copyProject(p), nil
}

func (m *MockProjectRepository) Insert(ctx context.Context, project *models.Project) (*models.Project, error) {
	now := time.Now().UTC()
	stored := copyProject(project)
	stored.CreatedAt = now
	stored.UpdatedAt = now
	m.Projects[stored.ID] = stored
	return copyProject(stored), nil
}

func (m *MockProjectRepository) Update(ctx context.Context, id string, patch *models.ProjectUpdate) (*models.Project, error) {
	p, ok := m.Projects[id]
	if !ok {
		return nil, nil
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.DetailedContent != nil {
		p.DetailedContent = patch.DetailedContent
	}
	if patch.NextSteps != nil {
		p.NextSteps = patch.NextSteps
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Progress != nil {
		p.Progress = *patch.Progress
	}
	if patch.Technologies != nil {
		p.Technologies = *patch.Technologies
	}
	if patch.StartDate != nil {
		p.StartDate = patch.StartDate
	}
	if patch.ImageURL != nil {
		p.ImageURL = patch.ImageURL
	}
	if patch.DemoURL != nil {
		p.DemoURL = patch.DemoURL
	}
	if patch.GithubURL != nil {
		p.GithubURL = patch.GithubURL
	}
	if patch.WorkInProgressURL != nil {
		p.WorkInProgressURL = patch.WorkInProgressURL
	}
	p.UpdatedAt = time.Now().UTC()
	return copyProject(p), nil
}

func (m *MockProjectRepository) Delete(ctx context.Context, id string) error {
	delete(m.Projects, id)
	return nil
}

func (m *MockProjectRepository) Count(ctx context.Context) (int, error) {
	return len(m.Projects), nil
}

// MockLearningRepository is an in-memory implementation of LearningRepository
type MockLearningRepository struct {
	Entries map[string]*models.LearningEntry
	ListErr error
	Deleted []string
}

var _ repository.LearningRepository = (*MockLearningRepository)(nil)

func NewMockLearningRepository() *MockLearningRepository {
	return &MockLearningRepository{Entries: make(map[string]*models.LearningEntry)}
}

func copyEntry(e *models.LearningEntry) *models.LearningEntry {
	cp := *e
	cp.Categories = append([]string{}, e.Categories...)
	cp.Skills = append([]string{}, e.Skills...)
	cp.Resources = append([]models.LearningResource{}, e.Resources...)
	return &cp
}

func (m *MockLearningRepository) List(ctx context.Context) ([]*models.LearningEntry, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	entries := []*models.LearningEntry{}
	for _, e := range m.Entries {
		entries = append(entries, copyEntry(e))
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].UpdatedAt.Equal(entries[j].UpdatedAt) {
			return entries[i].UpdatedAt.After(entries[j].UpdatedAt)
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

func (m *MockLearningRepository) GetByID(ctx context.Context, id string) (*models.LearningEntry, error) {
	e, ok := m.Entries[id]
	if !ok {
		return nil, nil
	}
	return copyEntry(e), nil
}

func (m *MockLearningRepository) Insert(ctx context.Context, entry *models.LearningEntry) (*models.LearningEntry, error) {
	now := time.Now().UTC()
	stored := copyEntry(entry)
	stored.CreatedAt = now
	stored.UpdatedAt = now
	m.Entries[stored.ID] = stored
	return copyEntry(stored), nil
}

func (m *MockLearningRepository) Update(ctx context.Context, id string, patch *models.LearningEntryUpdate) (*models.LearningEntry, error) {
	e, ok := m.Entries[id]
	if !ok {
		return nil, nil
	}
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Description != nil {
		e.Description = patch.Description
	}
	if patch.Category != nil {
		e.Category = *patch.Category
	}
	if patch.Categories != nil {
		e.Categories = *patch.Categories
	}
	if patch.Status != nil {
		e.Status = *patch.Status
	}
	if patch.Progress != nil {
		e.Progress = *patch.Progress
	}
	if patch.Skills != nil {
		e.Skills = *patch.Skills
	}
	if patch.Difficulty != nil {
		e.Difficulty = *patch.Difficulty
	}
	if patch.EstimatedHours != nil {
		e.EstimatedHours = patch.EstimatedHours
	}
	if patch.CompletedHours != nil {
		e.CompletedHours = *patch.CompletedHours
	}
	if patch.StartDate != nil {
		e.StartDate = patch.StartDate
	}
	if patch.TargetDate != nil {
		e.TargetDate = patch.TargetDate
	}
	if patch.Resources != nil {
		e.Resources = *patch.Resources
	}
	e.UpdatedAt = time.Now().UTC()
	return copyEntry(e), nil
}

func (m *MockLearningRepository) Delete(ctx context.Context, id string) error {
	m.Deleted = append(m.Deleted, id)
	delete(m.Entries, id)
	return nil
}

func (m *MockLearningRepository) Count(ctx context.Context) (int, error) {
	return len(m.Entries), nil
}
