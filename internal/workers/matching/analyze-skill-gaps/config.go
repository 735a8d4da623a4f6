// internal/workers/matching/analyze-skill-gaps/config.go
package analyzeskillgaps

import "time"

type Config struct {
	Timeout  time.Duration
	CacheTTL time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout:  15 * time.Second,
		CacheTTL: 10 * time.Minute,
	}
}
