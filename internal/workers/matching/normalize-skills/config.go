// internal/workers/matching/normalize-skills/config.go
package normalizeskills

import "time"

type Config struct {
	Timeout   time.Duration
	MaxSkills int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:   10 * time.Second,
		MaxSkills: 200,
	}
}
