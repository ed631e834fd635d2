package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/portfolio-dashboard-api/internal/config"
	"github.com/portfolio-dashboard-api/internal/models"
	"github.com/rs/zerolog"
)

const (
	defaultWakaTimeBaseURL = "https://wakatime.com/api/v1"
	// summaryDays is the window of the daily-hours view
	summaryDays = 30
	// DefaultWakaTimeRange is the stats range used when none is given
	DefaultWakaTimeRange = "last_30_days"
)

// wakaTimeService implements WakaTimeService. It never surfaces errors:
// missing credentials and upstream failures both degrade to demo data so the
// dashboard stays populated.
type wakaTimeService struct {
	cfg     *config.WakaTimeConfig
	baseURL string
	hc      *http.Client
	log     zerolog.Logger
}

// WakaTimeOption customizes the WakaTime service, mainly for tests
type WakaTimeOption func(*wakaTimeService)

// WithWakaTimeBaseURL points the client at a different API root
func WithWakaTimeBaseURL(base string) WakaTimeOption {
	return func(s *wakaTimeService) {
		s.baseURL = base
	}
}

// NewWakaTimeService creates the time-tracking aggregator
func NewWakaTimeService(cfg *config.WakaTimeConfig, log zerolog.Logger, opts ...WakaTimeOption) WakaTimeService {
	s := &wakaTimeService{
		cfg:     cfg,
		baseURL: defaultWakaTimeBaseURL,
		hc:      &http.Client{Timeout: cfg.UpstreamTimeout},
		log:     log.With().Str("service", "wakatime").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Provider response shapes

type wakaItem struct {
	Name         string  `json:"name"`
	TotalSeconds float64 `json:"total_seconds"`
	Percent      float64 `json:"percent"`
	Hours        float64 `json:"hours"`
	Text         string  `json:"text"`
}

type wakaStatsResponse struct {
	Data struct {
		Languages    []wakaItem `json:"languages"`
		Projects     []wakaItem `json:"projects"`
		TotalSeconds float64    `json:"total_seconds"`
		DailyAverage float64    `json:"daily_average"`
	} `json:"data"`
}

type wakaSummariesResponse struct {
	Data []struct {
		Range struct {
			Date string `json:"date"`
		} `json:"range"`
		GrandTotal struct {
			Hours        int     `json:"hours"`
			Minutes      int     `json:"minutes"`
			TotalSeconds float64 `json:"total_seconds"`
		} `json:"grand_total"`
		Languages []wakaItem `json:"languages"`
		Projects  []wakaItem `json:"projects"`
	} `json:"data"`
}

// Stats returns aggregate language/project statistics for the given range
func (s *wakaTimeService) Stats(ctx context.Context, rng string) *models.WakaStats {
	if rng == "" {
		rng = DefaultWakaTimeRange
	}
	if s.cfg.APIKey == "" {
		s.log.Warn().Bool("demo_data", true).Msg("WakaTime API key not configured, returning demo stats")
		return demoStats()
	}

	var resp wakaStatsResponse
	url := fmt.Sprintf("%s/users/current/stats/%s", s.baseURL, rng)
	if err := s.get(ctx, url, &resp); err != nil {
		s.log.Error().Err(err).Bool("demo_data", true).Msg("WakaTime stats fetch failed, returning demo stats")
		return demoStats()
	}

	return &models.WakaStats{
		LanguageStats: toStatItems(resp.Data.Languages),
		ProjectStats:  toStatItems(resp.Data.Projects),
		TotalSeconds:  resp.Data.TotalSeconds,
		DailyAverage:  resp.Data.DailyAverage,
	}
}

// Summaries returns the daily breakdown for the trailing 30 days
func (s *wakaTimeService) Summaries(ctx context.Context) *models.WakaSummaries {
	if s.cfg.APIKey == "" {
		s.log.Warn().Bool("demo_data", true).Msg("WakaTime API key not configured, returning demo summaries")
		return demoSummaries()
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -summaryDays)

	var resp wakaSummariesResponse
	url := fmt.Sprintf("%s/users/current/summaries?start=%s&end=%s",
		s.baseURL, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err := s.get(ctx, url, &resp); err != nil {
		s.log.Error().Err(err).Bool("demo_data", true).Msg("WakaTime summaries fetch failed, returning demo summaries")
		return demoSummaries()
	}

	daily := make([]models.DailySummary, 0, len(resp.Data))
	for _, day := range resp.Data {
		daily = append(daily, models.DailySummary{
			Date:         day.Range.Date,
			Hours:        float64(day.GrandTotal.Hours) + float64(day.GrandTotal.Minutes)/60,
			TotalSeconds: int(day.GrandTotal.TotalSeconds),
			Languages:    toStatItems(day.Languages),
			Projects:     toStatItems(day.Projects),
		})
	}
	return &models.WakaSummaries{DailyHours: daily}
}

func (s *wakaTimeService) get(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("wakatime API returned %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func toStatItems(items []wakaItem) []models.WakaStatItem {
	out := make([]models.WakaStatItem, 0, len(items))
	for _, it := range items {
		out = append(out, models.WakaStatItem{
			Name:         it.Name,
			TotalSeconds: it.TotalSeconds,
			Percent:      it.Percent,
			Hours:        it.Hours,
			Text:         it.Text,
		})
	}
	return out
}

// demoStats is the fixed placeholder returned when the provider is
// unavailable. Values are obviously synthetic on purpose.
func demoStats() *models.WakaStats {
	return &models.WakaStats{
		LanguageStats: []models.WakaStatItem{
			{Name: "TypeScript", Hours: 45.5, Percent: 35},
			{Name: "React", Hours: 32.2, Percent: 25},
			{Name: "Next.js", Hours: 25.8, Percent: 20},
			{Name: "CSS", Hours: 19.4, Percent: 15},
			{Name: "JavaScript", Hours: 6.5, Percent: 5},
		},
		ProjectStats: []models.WakaStatItem{
			{Name: "Portfolio Dashboard", Hours: 89.2, Percent: 70},
			{Name: "Learning Platform", Hours: 25.5, Percent: 20},
			{Name: "Blog CMS", Hours: 12.8, Percent: 10},
		},
		TotalSeconds: 324000,
		DailyAverage: 3600,
	}
}

func demoSummaries() *models.WakaSummaries {
	now := time.Now().UTC()
	daily := make([]models.DailySummary, 0, summaryDays)
	for i := summaryDays - 1; i >= 0; i-- {
		daily = append(daily, models.DailySummary{
			Date:         now.AddDate(0, 0, -i).Format("2006-01-02"),
			Hours:        rand.Float64() * 8,
			TotalSeconds: rand.Intn(28800),
			Languages:    []models.WakaStatItem{},
			Projects:     []models.WakaStatItem{},
		})
	}
	return &models.WakaSummaries{DailyHours: daily}
}
