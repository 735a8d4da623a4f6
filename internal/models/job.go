// internal/models/job.go
package models

import "time"

// JobPosting is a posting as supplied by the caller's persistence layer.
// Embeddings, when present, come from the external embedding provider and
// must match the candidate vector's dimensionality to be used.
type JobPosting struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Company          string          `json:"company,omitempty"`
	RequiredSkills   []string        `json:"requiredSkills,omitempty"`
	PreferredSkills  []string        `json:"preferredSkills,omitempty"`
	Experience       ExperienceRange `json:"experience"`
	Salary           SalaryRange     `json:"salary"`
	PostedAt         time.Time       `json:"postedAt"`
	EmploymentType   string          `json:"employmentType,omitempty"`
	Remote           bool            `json:"remote"`
	Embedding        []float64       `json:"embedding,omitempty"`
	ViewCount        int             `json:"viewCount,omitempty"`
	ApplicationCount int             `json:"applicationCount,omitempty"`
}
