package config

// SeatGeekConfig controls ticket lookups.
type SeatGeekConfig struct {
	BaseURL  string
	ClientID string
}

func loadSeatGeek() SeatGeekConfig {
	return SeatGeekConfig{
		BaseURL:  envOrDefault(envSeatGeekBaseURL, defaultSeatGeekBaseURL),
		ClientID: envOrDefault(envSeatGeekClientID, ""),
	}
}
