package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/portfolio-dashboard-api/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWakaTimeService(apiKey, baseURL string) WakaTimeService {
	cfg := &config.WakaTimeConfig{
		APIKey:          apiKey,
		UpstreamTimeout: 5 * time.Second,
	}
	opts := []WakaTimeOption{}
	if baseURL != "" {
		opts = append(opts, WithWakaTimeBaseURL(baseURL))
	}
	return NewWakaTimeService(cfg, zerolog.Nop(), opts...)
}

func TestWakaTimeStats_MissingKeyReturnsDemoData(t *testing.T) {
	svc := newTestWakaTimeService("", "")

	stats := svc.Stats(context.Background(), "last_30_days")
	require.NotNil(t, stats, "the aggregator must never return nothing")

	assert.Len(t, stats.LanguageStats, 5)
	assert.Len(t, stats.ProjectStats, 3)
	assert.Equal(t, float64(324000), stats.TotalSeconds)
	assert.Equal(t, float64(3600), stats.DailyAverage)
}

func TestWakaTimeSummaries_MissingKeyReturnsDemoData(t *testing.T) {
	svc := newTestWakaTimeService("", "")

	summaries := svc.Summaries(context.Background())
	require.NotNil(t, summaries)
	require.Len(t, summaries.DailyHours, 30)

	today := time.Now().UTC().Format("2006-01-02")
	assert.Equal(t, today, summaries.DailyHours[29].Date)
	for _, day := range summaries.DailyHours {
		assert.GreaterOrEqual(t, day.Hours, 0.0)
		assert.Less(t, day.Hours, 8.0)
	}
}

func TestWakaTimeStats_UpstreamFailureReturnsDemoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := newTestWakaTimeService("key", srv.URL)

	stats := svc.Stats(context.Background(), "last_7_days")
	require.NotNil(t, stats, "upstream failures must degrade, not propagate")
	assert.Len(t, stats.LanguageStats, 5)

	summaries := svc.Summaries(context.Background())
	require.NotNil(t, summaries)
	assert.Len(t, summaries.DailyHours, 30)
}

func TestWakaTimeStats_UnreachableProviderReturnsDemoData(t *testing.T) {
	// Connection refused, not an HTTP error
	svc := newTestWakaTimeService("key", "http://127.0.0.1:1")

	stats := svc.Stats(context.Background(), "")
	require.NotNil(t, stats)
	assert.Len(t, stats.ProjectStats, 3)
}

func TestWakaTimeStats_MapsProviderResponse(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":{
			"languages":[{"name":"Go","total_seconds":7200,"percent":60,"hours":2,"text":"2 hrs"}],
			"projects":[{"name":"dashboard","total_seconds":7200,"percent":100,"hours":2,"text":"2 hrs"}],
			"total_seconds":7200,
			"daily_average":1800
		}}`)
	}))
	defer srv.Close()

	svc := newTestWakaTimeService("secret-key", srv.URL)
	stats := svc.Stats(context.Background(), "last_7_days")

	assert.Equal(t, "/users/current/stats/last_7_days", gotPath)
	assert.Equal(t, "Bearer secret-key", gotAuth)

	require.Len(t, stats.LanguageStats, 1)
	assert.Equal(t, "Go", stats.LanguageStats[0].Name)
	assert.Equal(t, float64(60), stats.LanguageStats[0].Percent)
	assert.Equal(t, float64(7200), stats.TotalSeconds)
	assert.Equal(t, float64(1800), stats.DailyAverage)
}

func TestWakaTimeStats_DefaultRange(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"data":{}}`)
	}))
	defer srv.Close()

	svc := newTestWakaTimeService("key", srv.URL)
	svc.Stats(context.Background(), "")

	assert.Equal(t, "/users/current/stats/last_30_days", gotPath)
}

func TestWakaTimeSummaries_MapsProviderResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/current/summaries", r.URL.Path)
		assert.NotEmpty(t, r.URL.Query().Get("start"))
		assert.NotEmpty(t, r.URL.Query().Get("end"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":[
			{"range":{"date":"2026-08-27"},
			 "grand_total":{"hours":2,"minutes":30,"total_seconds":9000},
			 "languages":[{"name":"Go","percent":100}],
			 "projects":[]}
		]}`)
	}))
	defer srv.Close()

	svc := newTestWakaTimeService("key", srv.URL)
	summaries := svc.Summaries(context.Background())

	require.Len(t, summaries.DailyHours, 1)
	day := summaries.DailyHours[0]
	assert.Equal(t, "2026-08-27", day.Date)
	assert.Equal(t, 2.5, day.Hours)
	assert.Equal(t, 9000, day.TotalSeconds)
	require.Len(t, day.Languages, 1)
	assert.Equal(t, "Go", day.Languages[0].Name)
}
