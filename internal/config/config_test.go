package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t, envPort, envProvider, envPollInterval, envBdlAPIKey, envBdlBaseURL, envModelPath,
		envGamesPath, envSnapshotSchedule, envAdminToken, envAdminTokenHash, envSeatGeekClientID)

	cfg := Load()
	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval %s, got %s", defaultPollInterval, cfg.PollInterval)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.Balldontlie.BaseURL != defaultBdlBaseURL {
		t.Fatalf("expected default balldontlie base url %s, got %s", defaultBdlBaseURL, cfg.Balldontlie.BaseURL)
	}
	if cfg.Balldontlie.APIKeyConfigured() {
		t.Fatalf("expected no api key by default")
	}
	if cfg.Data.ModelPath != defaultModelPath || cfg.Data.GamesPath != defaultGamesPath {
		t.Fatalf("unexpected data paths %+v", cfg.Data)
	}
	if cfg.Snapshots.Schedule != defaultSnapshotSchedule {
		t.Fatalf("expected default schedule, got %s", cfg.Snapshots.Schedule)
	}
	if cfg.Admin.Enabled() {
		t.Fatalf("expected admin disabled by default")
	}
	if cfg.SeatGeek.ClientID != "" {
		t.Fatalf("expected empty seatgeek client id")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envPollInterval, "45s")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envBdlBaseURL, "http://example.com/api")
	t.Setenv(envBdlAPIKey, "secret-key")
	t.Setenv(envBdlMaxPages, "2")
	t.Setenv(envSeatGeekClientID, "sg-client")
	t.Setenv(envModelPath, "/tmp/model.json")
	t.Setenv(envSnapshotFuture, "3")
	t.Setenv(envAdminTokenHash, "$2a$10$abc")
	t.Setenv(envPollEnabled, "false")

	cfg := Load()
	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.PollInterval != 45*time.Second {
		t.Fatalf("expected poll interval 45s, got %s", cfg.PollInterval)
	}
	if cfg.PollEnabled {
		t.Fatalf("expected poller disabled")
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected provider fixture, got %s", cfg.Provider)
	}
	if cfg.Balldontlie.BaseURL != "http://example.com/api" || cfg.Balldontlie.APIKey != "secret-key" {
		t.Fatalf("expected balldontlie overrides, got %+v", cfg.Balldontlie)
	}
	if cfg.Balldontlie.MaxPages != 2 {
		t.Fatalf("expected max pages 2, got %d", cfg.Balldontlie.MaxPages)
	}
	if cfg.SeatGeek.ClientID != "sg-client" {
		t.Fatalf("expected seatgeek client override, got %s", cfg.SeatGeek.ClientID)
	}
	if cfg.Data.ModelPath != "/tmp/model.json" {
		t.Fatalf("expected model path override, got %s", cfg.Data.ModelPath)
	}
	if cfg.Snapshots.FutureDays != 3 {
		t.Fatalf("expected future days 3, got %d", cfg.Snapshots.FutureDays)
	}
	if !cfg.Admin.Enabled() {
		t.Fatalf("expected admin enabled with hash")
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envPollInterval, "not-a-duration")
	cfg := Load()
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval on invalid value, got %s", cfg.PollInterval)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envPollInterval, "0s")
	cfg := Load()
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval on non-positive value, got %s", cfg.PollInterval)
	}
}
