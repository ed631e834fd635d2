package mocks

import (
	"context"

	"github.com/portfolio-dashboard-api/internal/models"
	"github.com/portfolio-dashboard-api/internal/service"
)

// MockGitHubService is a mock implementation of GitHubService
type MockGitHubService struct {
	HasToken    bool
	HasUsername bool
	StatsFunc   func(ctx context.Context) (*models.GitHubStats, error)
	StatsCalls  int
}

// Verify interface compliance
var _ service.GitHubService = (*MockGitHubService)(nil)

func NewMockGitHubService() *MockGitHubService {
	return &MockGitHubService{HasToken: true, HasUsername: true}
}

func (m *MockGitHubService) Configured() (bool, bool) {
	return m.HasToken, m.HasUsername
}

func (m *MockGitHubService) Stats(ctx context.Context) (*models.GitHubStats, error) {
	m.StatsCalls++
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return &models.GitHubStats{
		TotalRepos:    2,
		TotalCommits:  10,
		LanguageStats: map[string]int{"Go": 1000},
		Activity:      []models.ActivityDay{},
		RecentRepos:   []models.RepoInfo{},
	}, nil
}

// MockWakaTimeService is a mock implementation of WakaTimeService
type MockWakaTimeService struct {
	StatsFunc     func(ctx context.Context, rng string) *models.WakaStats
	SummariesFunc func(ctx context.Context) *models.WakaSummaries
	LastRange     string
}

var _ service.WakaTimeService = (*MockWakaTimeService)(nil)

func NewMockWakaTimeService() *MockWakaTimeService {
	return &MockWakaTimeService{}
}

func (m *MockWakaTimeService) Stats(ctx context.Context, rng string) *models.WakaStats {
	m.LastRange = rng
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx, rng)
	}
	return &models.WakaStats{
		LanguageStats: []models.WakaStatItem{{Name: "Go", Percent: 100}},
		ProjectStats:  []models.WakaStatItem{{Name: "dashboard", Percent: 100}},
		TotalSeconds:  3600,
		DailyAverage:  120,
	}
}

func (m *MockWakaTimeService) Summaries(ctx context.Context) *models.WakaSummaries {
	if m.SummariesFunc != nil {
		return m.SummariesFunc(ctx)
	}
	return &models.WakaSummaries{DailyHours: []models.DailySummary{}}
}
