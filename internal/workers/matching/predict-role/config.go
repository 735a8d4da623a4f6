// internal/workers/matching/predict-role/config.go
package predictrole

import "time"

type Config struct {
	Timeout           time.Duration
	CacheTTL          time.Duration
	SuggestionEnabled bool
	SuggestionURL     string
	SuggestionAPIKey  string
	SuggestionTimeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout:           15 * time.Second,
		CacheTTL:          10 * time.Minute,
		SuggestionTimeout: 5 * time.Second,
	}
}
