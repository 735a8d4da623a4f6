// internal/workers/matching/rank-jobs/config.go
package rankjobs

import "time"

type Config struct {
	Timeout       time.Duration
	CacheTTL      time.Duration
	JobsIndex     string
	PoolSize      int
	UseEmbeddings bool
}

func LoadConfig() *Config {
	return &Config{
		Timeout:       30 * time.Second,
		CacheTTL:      10 * time.Minute,
		JobsIndex:     "job_postings",
		PoolSize:      200,
		UseEmbeddings: true,
	}
}
