package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/go-github/v57/github"
	"github.com/portfolio-dashboard-api/internal/config"
	"github.com/portfolio-dashboard-api/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"
)

const (
	// activityDays is the length of the contribution heatmap window
	activityDays = 365
	// sampledRepos is how many recently-updated repos get commit/language rollups
	sampledRepos = 5
	// recentRepoLimit caps the repository metadata list in the response
	recentRepoLimit = 10
	// commitWindowDays is the lookback for per-repo commit counts
	commitWindowDays = 30
)

// githubService implements GitHubService on top of the GitHub REST API
type githubService struct {
	cfg    *config.GitHubConfig
	client *github.Client
	log    zerolog.Logger
}

// GitHubOption customizes the GitHub service, mainly for tests
type GitHubOption func(*githubService)

// WithGitHubBaseURL points the client at a different API root
func WithGitHubBaseURL(base string) GitHubOption {
	return func(s *githubService) {
		u, err := url.Parse(base)
		if err != nil {
			return
		}
		s.client.BaseURL = u
	}
}

// WithGitHubHTTPClient replaces the underlying HTTP client
func WithGitHubHTTPClient(hc *http.Client) GitHubOption {
	return func(s *githubService) {
		s.client = github.NewClient(hc)
	}
}

// NewGitHubService creates the source-activity aggregator
func NewGitHubService(cfg *config.GitHubConfig, log zerolog.Logger, opts ...GitHubOption) GitHubService {
	var hc *http.Client
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		hc = oauth2.NewClient(context.Background(), ts)
	}

	s := &githubService{
		cfg:    cfg,
		client: github.NewClient(hc),
		log:    log.With().Str("service", "github").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Configured reports whether the token and username are present
func (s *githubService) Configured() (bool, bool) {
	return s.cfg.Token != "", s.cfg.Username != ""
}

// Stats aggregates repositories, public events, recent commits and language
// byte counts into the dashboard summary. Failures in the primary fetches
// abort the request; per-repository failures are logged and skipped.
func (s *githubService) Stats(ctx context.Context) (*models.GitHubStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.UpstreamTimeout)
	defer cancel()

	username := s.cfg.Username

	repos, _, err := s.client.Repositories.List(ctx, username, &github.RepositoryListOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: 100},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}

	// A failed events fetch degrades to an empty heatmap, same as no activity
	events, _, err := s.client.Activity.ListEventsPerformedByUser(ctx, username, true, &github.ListOptions{PerPage: 100})
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to fetch events, heatmap will be empty")
		events = nil
	}

	activity := buildActivitySeries(events, time.Now().UTC())

	sampled := repos
	if len(sampled) > sampledRepos {
		sampled = sampled[:sampledRepos]
	}

	var (
		mu            sync.Mutex
		totalCommits  int
		languageStats = map[string]int{}
	)
	since := time.Now().UTC().AddDate(0, 0, -commitWindowDays)

	var g errgroup.Group
	for _, repo := range sampled {
		repo := repo
		g.Go(func() error {
			name := repo.GetName()

			commits, _, err := s.client.Repositories.ListCommits(ctx, username, name, &github.CommitsListOptions{
				Author:      username,
				Since:       since,
				ListOptions: github.ListOptions{PerPage: 100},
			})
			if err != nil {
				s.log.Warn().Err(err).Str("repo", name).Msg("Failed to fetch commits")
			} else {
				mu.Lock()
				totalCommits += len(commits)
				mu.Unlock()
			}

			languages, _, err := s.client.Repositories.ListLanguages(ctx, username, name)
			if err != nil {
				s.log.Warn().Err(err).Str("repo", name).Msg("Failed to fetch languages")
				return nil
			}
			mu.Lock()
			for lang, bytes := range languages {
				languageStats[lang] += bytes
			}
			mu.Unlock()
			return nil
		})
	}
	// Per-repo goroutines never return errors; they log and move on
	g.Wait()

	recent := repos
	if len(recent) > recentRepoLimit {
		recent = recent[:recentRepoLimit]
	}
	recentRepos := make([]models.RepoInfo, 0, len(recent))
	for _, repo := range recent {
		recentRepos = append(recentRepos, repoInfo(repo))
	}

	return &models.GitHubStats{
		TotalRepos:    len(repos),
		TotalCommits:  totalCommits,
		LanguageStats: languageStats,
		Activity:      activity,
		RecentRepos:   recentRepos,
	}, nil
}

// buildActivitySeries counts events per calendar day over the trailing year.
// The result always has exactly activityDays entries in ascending order,
// ending on the reference date.
func buildActivitySeries(events []*github.Event, now time.Time) []models.ActivityDay {
	counts := map[string]int{}
	for _, ev := range events {
		date := ev.GetCreatedAt().UTC().Format("2006-01-02")
		counts[date]++
	}

	activity := make([]models.ActivityDay, 0, activityDays)
	for i := activityDays - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		activity = append(activity, models.ActivityDay{Date: date, Count: counts[date]})
	}
	return activity
}

func repoInfo(repo *github.Repository) models.RepoInfo {
	info := models.RepoInfo{
		Name:        repo.GetName(),
		FullName:    repo.GetFullName(),
		Description: repo.GetDescription(),
		Language:    repo.GetLanguage(),
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		HTMLURL:     repo.GetHTMLURL(),
		Topics:      repo.Topics,
		Fork:        repo.GetFork(),
	}
	if repo.UpdatedAt != nil {
		info.UpdatedAt = repo.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return info
}
