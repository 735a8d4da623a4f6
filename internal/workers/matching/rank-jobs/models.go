// internal/workers/matching/rank-jobs/models.go
package rankjobs

import (
	"talentmatch-workers/internal/models"
)

type Preferences struct {
	RemoteOnly     bool   `json:"remoteOnly,omitempty"`
	EmploymentType string `json:"employmentType,omitempty"`
	MinSalary      int    `json:"minSalary,omitempty"`
}

type Input struct {
	CandidateID      string                   `json:"candidateId,omitempty"`
	CandidateProfile *models.CandidateProfile `json:"candidateProfile,omitempty"`

	// Jobs ranks an inline pool when present; otherwise the pool is
	// fetched from the search index.
	Jobs []models.JobPosting `json:"jobs,omitempty"`

	Keywords      string      `json:"keywords,omitempty"`
	Limit         int         `json:"limit,omitempty"`
	MinMatchScore float64     `json:"minMatchScore,omitempty"`
	Preferences   Preferences `json:"preferences,omitempty"`
}

type Output struct {
	// RankingID correlates a ranking run across logs and downstream tasks.
	RankingID     string                  `json:"rankingId"`
	CandidateID   string                  `json:"candidateId,omitempty"`
	Matches       []models.JobMatchResult `json:"matches"`
	PoolSize      int                     `json:"poolSize"`
	EmbeddingUsed bool                    `json:"embeddingUsed"`
}
