// internal/workers/data-access/query-job-postings/queries/builder.go
package queries

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v8/esapi"
)

var ErrMissingIndex = errors.New("index name is required")

// JobSearch describes one search over the job-postings index.
type JobSearch struct {
	Index          string
	Skills         []string
	Keywords       string
	EmploymentType string
	RemoteOnly     bool
	MinSalary      int
	PostedWithin   int // days; 0 means no recency filter
	Pagination     struct {
		From int
		Size int
	}
}

// BuildSearchRequest assembles the bool query for a job search.
func BuildSearchRequest(js JobSearch) (*esapi.SearchRequest, error) {
	if js.Index == "" {
		return nil, ErrMissingIndex
	}

	mustClauses := []interface{}{}
	filterClauses := []interface{}{}

	if js.Keywords != "" {
		mustClauses = append(mustClauses, map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  js.Keywords,
				"fields": []string{"title^3", "company^2", "required_skills"},
				"type":   "best_fields",
			},
		})
	}

	if len(js.Skills) > 0 {
		// Any skill overlap qualifies a posting; precise coverage scoring
		// happens in the ranker, not here.
		should := make([]interface{}, 0, len(js.Skills))
		for _, skill := range js.Skills {
			should = append(should, map[string]interface{}{
				"match": map[string]interface{}{"required_skills": skill},
			})
		}
		mustClauses = append(mustClauses, map[string]interface{}{
			"bool": map[string]interface{}{
				"should":               should,
				"minimum_should_match": 1,
			},
		})
	}

	if js.EmploymentType != "" {
		filterClauses = append(filterClauses, map[string]interface{}{
			"term": map[string]interface{}{"employment_type": js.EmploymentType},
		})
	}

	if js.RemoteOnly {
		filterClauses = append(filterClauses, map[string]interface{}{
			"term": map[string]interface{}{"remote": true},
		})
	}

	if js.MinSalary > 0 {
		filterClauses = append(filterClauses, map[string]interface{}{
			"range": map[string]interface{}{
				"salary_max": map[string]interface{}{"gte": js.MinSalary},
			},
		})
	}

	if js.PostedWithin > 0 {
		filterClauses = append(filterClauses, map[string]interface{}{
			"range": map[string]interface{}{
				"posted_at": map[string]interface{}{
					"gte": fmt.Sprintf("now-%dd/d", js.PostedWithin),
				},
			},
		})
	}

	boolQuery := map[string]interface{}{}
	if len(mustClauses) > 0 {
		boolQuery["must"] = mustClauses
	}
	if len(filterClauses) > 0 {
		boolQuery["filter"] = filterClauses
	}
	if len(boolQuery) == 0 {
		boolQuery["must"] = []interface{}{
			map[string]interface{}{"match_all": map[string]interface{}{}},
		}
	}

	queryBody := map[string]interface{}{
		"query": map[string]interface{}{"bool": boolQuery},
		"sort": []interface{}{
			map[string]interface{}{"posted_at": map[string]interface{}{"order": "desc"}},
			map[string]interface{}{"_id": map[string]interface{}{"order": "asc"}},
		},
	}

	body, err := json.Marshal(queryBody)
	if err != nil {
		return nil, fmt.Errorf("marshal query body: %w", err)
	}

	from := js.Pagination.From
	size := js.Pagination.Size
	if size <= 0 {
		size = 50
	}

	return &esapi.SearchRequest{
		Index: []string{js.Index},
		Body:  strings.NewReader(string(body)),
		From:  &from,
		Size:  &size,
	}, nil
}
