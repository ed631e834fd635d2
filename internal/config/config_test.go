package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("Expected default DB host localhost, got %s", cfg.Database.Host)
	}
	if cfg.GitHub.UpstreamTimeout != 15*time.Second {
		t.Errorf("Expected 15s upstream timeout, got %v", cfg.GitHub.UpstreamTimeout)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.Log.Level)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GITHUB_TOKEN", "tok")
	t.Setenv("GITHUB_USERNAME", "someone")
	t.Setenv("WAKATIME_UPSTREAM_TIMEOUT", "5s")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.GitHub.Token != "tok" || cfg.GitHub.Username != "someone" {
		t.Errorf("GitHub credentials not picked up: %+v", cfg.GitHub)
	}
	if cfg.WakaTime.UpstreamTimeout != 5*time.Second {
		t.Errorf("Expected 5s timeout, got %v", cfg.WakaTime.UpstreamTimeout)
	}
	if cfg.Database.MaxOpenConns != 50 {
		t.Errorf("Expected 50 max open conns, got %d", cfg.Database.MaxOpenConns)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Host: "db", Name: "portfolio"}}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}

	cfg.Database.Name = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for missing DB_NAME")
	}

	cfg = &Config{Database: DatabaseConfig{Name: "portfolio"}}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for missing DB_HOST")
	}
}

func TestGetDSN(t *testing.T) {
	db := DatabaseConfig{
		Host: "db", Port: "5432", User: "u", Password: "p", Name: "portfolio", SSLMode: "disable",
	}
	expected := "host=db port=5432 user=u password=p dbname=portfolio sslmode=disable"
	if got := db.GetDSN(); got != expected {
		t.Errorf("GetDSN() = %q, want %q", got, expected)
	}
}
