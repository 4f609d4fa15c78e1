package config

// BalldontlieConfig controls how we talk to the balldontlie API.
type BalldontlieConfig struct {
	BaseURL       string
	APIKey        string
	Timezone      string
	MaxPages      int
	MinInterval   Duration
	RetryAttempts int
}

// APIKeyConfigured reports whether an upstream key is present.
func (c BalldontlieConfig) APIKeyConfigured() bool {
	return c.APIKey != ""
}

func loadBalldontlie() BalldontlieConfig {
	return BalldontlieConfig{
		BaseURL:       envOrDefault(envBdlBaseURL, defaultBdlBaseURL),
		APIKey:        envOrDefault(envBdlAPIKey, ""),
		Timezone:      envOrDefault(envBdlTimezone, defaultBdlTimezone),
		MaxPages:      intEnvOrDefault(envBdlMaxPages, defaultBdlMaxPages),
		MinInterval:   durationEnvOrDefault(envBdlMinInterval, defaultBdlMinInterval),
		RetryAttempts: intEnvOrDefault(envBdlRetries, defaultBdlRetries),
	}
}
