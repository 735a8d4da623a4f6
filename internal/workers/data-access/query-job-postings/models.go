// internal/workers/data-access/query-job-postings/models.go
package queryjobpostings

import "talentmatch-workers/internal/models"

type Pagination struct {
	From int `json:"from"`
	Size int `json:"size"`
}

type Input struct {
	IndexName      string     `json:"indexName,omitempty"`
	Skills         []string   `json:"skills,omitempty"`
	Keywords       string     `json:"keywords,omitempty"`
	EmploymentType string     `json:"employmentType,omitempty"`
	RemoteOnly     bool       `json:"remoteOnly,omitempty"`
	MinSalary      int        `json:"minSalary,omitempty"`
	PostedWithin   int        `json:"postedWithinDays,omitempty"`
	Pagination     Pagination `json:"pagination,omitempty"`
}

type Output struct {
	Jobs      []models.JobPosting `json:"jobs"`
	TotalHits int64               `json:"totalHits"`
	Took      int64               `json:"took"`
}
