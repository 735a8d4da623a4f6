// internal/workers/data-access/query-job-postings/queries/search.go
package queries

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"

	"talentmatch-workers/internal/models"
)

type SearchResult struct {
	Jobs      []models.JobPosting
	TotalHits int64
	Took      int64 // milliseconds
}

// esHit mirrors the indexed document shape of the job_postings index.
type esHit struct {
	ID     string `json:"_id"`
	Source struct {
		Title          string    `json:"title"`
		Company        string    `json:"company"`
		RequiredSkills []string  `json:"required_skills"`
		PreferredSkills []string `json:"preferred_skills"`
		MinYears       float64   `json:"min_years"`
		MaxYears       float64   `json:"max_years"`
		SalaryCurrency string    `json:"salary_currency"`
		SalaryMin      int       `json:"salary_min"`
		SalaryMax      int       `json:"salary_max"`
		PostedAt       time.Time `json:"posted_at"`
		EmploymentType string    `json:"employment_type"`
		Remote         bool      `json:"remote"`
		Embedding      []float64 `json:"embedding"`
		ViewCount      int       `json:"view_count"`
		ApplicationCount int     `json:"application_count"`
	} `json:"_source"`
}

// Search runs one job search and maps hits into domain postings. Shared by
// the query worker and the rank-jobs pool fetch.
func Search(ctx context.Context, esClient *elasticsearch.Client, js JobSearch) (*SearchResult, error) {
	req, err := BuildSearchRequest(js)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := req.Do(ctx, esClient)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search query failed: %s", res.String())
	}

	var parsed struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []esHit `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	jobs := make([]models.JobPosting, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		src := hit.Source
		jobs = append(jobs, models.JobPosting{
			ID:              hit.ID,
			Title:           src.Title,
			Company:         src.Company,
			RequiredSkills:  src.RequiredSkills,
			PreferredSkills: src.PreferredSkills,
			Experience: models.ExperienceRange{
				MinYears: src.MinYears,
				MaxYears: src.MaxYears,
			},
			Salary: models.SalaryRange{
				Currency: src.SalaryCurrency,
				Min:      src.SalaryMin,
				Max:      src.SalaryMax,
			},
			PostedAt:         src.PostedAt,
			EmploymentType:   src.EmploymentType,
			Remote:           src.Remote,
			Embedding:        src.Embedding,
			ViewCount:        src.ViewCount,
			ApplicationCount: src.ApplicationCount,
		})
	}

	return &SearchResult{
		Jobs:      jobs,
		TotalHits: parsed.Hits.Total.Value,
		Took:      time.Since(start).Milliseconds(),
	}, nil
}
