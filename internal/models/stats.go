package models

// ActivityDay is one cell of the contribution heatmap
type ActivityDay struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// RepoInfo is the repository metadata shown on the dashboard
type RepoInfo struct {
	Name        string   `json:"name"`
	FullName    string   `json:"full_name"`
	Description string   `json:"description,omitempty"`
	Language    string   `json:"language,omitempty"`
	Stars       int      `json:"stargazers_count"`
	Forks       int      `json:"forks_count"`
	HTMLURL     string   `json:"html_url"`
	Topics      []string `json:"topics,omitempty"`
	Fork        bool     `json:"fork"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
}

// GitHubStats is the unified source-activity summary
type GitHubStats struct {
	TotalRepos    int            `json:"totalRepos"`
	TotalCommits  int            `json:"totalCommits"`
	LanguageStats map[string]int `json:"languageStats"` // language -> total bytes
	Activity      []ActivityDay  `json:"activity"`      // 365 days, ascending
	RecentRepos   []RepoInfo     `json:"recentRepos"`
}

// WakaStatItem is one language or project row from the time tracker
type WakaStatItem struct {
	Name         string  `json:"name"`
	TotalSeconds float64 `json:"total_seconds,omitempty"`
	Percent      float64 `json:"percent,omitempty"`
	Hours        float64 `json:"hours,omitempty"`
	Text         string  `json:"text,omitempty"`
}

// DailySummary is one day of tracked time
type DailySummary struct {
	Date         string         `json:"date"`
	Hours        float64        `json:"hours"`
	TotalSeconds int            `json:"total_seconds"`
	Languages    []WakaStatItem `json:"languages"`
	Projects     []WakaStatItem `json:"projects"`
}

// WakaStats is the range-parameterized statistics view
type WakaStats struct {
	LanguageStats []WakaStatItem `json:"languageStats"`
	ProjectStats  []WakaStatItem `json:"projectStats"`
	TotalSeconds  float64        `json:"totalSeconds"`
	DailyAverage  float64        `json:"dailyAverage"`
}

// WakaSummaries is the 30-day daily-hours view
type WakaSummaries struct {
	DailyHours []DailySummary `json:"dailyHours"`
}
