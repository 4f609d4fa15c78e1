package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	Provider     string
	PollEnabled  bool
	PollInterval Duration
	Balldontlie  BalldontlieConfig
	SeatGeek     SeatGeekConfig
	Data         DataConfig
	Snapshots    SnapshotConfig
	Admin        AdminConfig
	Metrics      MetricsConfig
	Log          LogConfig
}

// DataConfig points at on-disk artifacts.
type DataConfig struct {
	ModelPath   string
	GamesPath   string
	ResultsPath string
}

// AdminConfig guards admin-only endpoints. TokenHash, when set, is a bcrypt hash and takes precedence.
type AdminConfig struct {
	Token     string
	TokenHash string
}

// Enabled reports whether any admin credential is configured.
func (a AdminConfig) Enabled() bool {
	return a.Token != "" || a.TokenHash != ""
}

// LogConfig controls logger level/format.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		Provider:     envOrDefault(envProvider, defaultProvider),
		PollEnabled:  boolEnvOrDefault(envPollEnabled, defaultPollEnabled),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Balldontlie:  loadBalldontlie(),
		SeatGeek:     loadSeatGeek(),
		Data: DataConfig{
			ModelPath:   envOrDefault(envModelPath, defaultModelPath),
			GamesPath:   envOrDefault(envGamesPath, defaultGamesPath),
			ResultsPath: envOrDefault(envResultsPath, defaultResultsPath),
		},
		Snapshots: loadSnapshots(),
		Admin: AdminConfig{
			Token:     envOrDefault(envAdminToken, ""),
			TokenHash: envOrDefault(envAdminTokenHash, ""),
		},
		Metrics: loadMetrics(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, "info"),
			Format: envOrDefault(envLogFormat, "text"),
		},
	}
}
