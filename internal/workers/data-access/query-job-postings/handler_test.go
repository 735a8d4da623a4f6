// internal/workers/data-access/query-job-postings/handler_test.go
package queryjobpostings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentmatch-workers/internal/common/logger"
)

// newStubES points an Elasticsearch client at a canned-response server.
// The product header is required or the v8 client rejects the response.
func newStubES(t *testing.T, handler http.HandlerFunc) *elasticsearch.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{server.URL},
	})
	require.NoError(t, err)
	return client
}

func searchResponse(jobs []map[string]interface{}, total int64) map[string]interface{} {
	hits := make([]map[string]interface{}, 0, len(jobs))
	for _, job := range jobs {
		id, _ := job["id"].(string)
		delete(job, "id")
		hits = append(hits, map[string]interface{}{
			"_id":     id,
			"_source": job,
		})
	}
	return map[string]interface{}{
		"took": 7,
		"hits": map[string]interface{}{
			"total": map[string]interface{}{"value": total},
			"hits":  hits,
		},
	}
}

func TestExecute_ParsesHitsIntoJobs(t *testing.T) {
	var capturedPath string
	esClient := newStubES(t, func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(searchResponse([]map[string]interface{}{
			{
				"id":              "job-1",
				"title":           "Senior Backend Engineer",
				"company":         "Initech",
				"required_skills": []string{"Go", "PostgreSQL"},
				"min_years":       3.0,
				"max_years":       8.0,
				"salary_currency": "USD",
				"salary_min":      110000,
				"salary_max":      160000,
				"posted_at":       "2026-03-01T00:00:00Z",
				"employment_type": "full-time",
				"remote":          true,
			},
			{
				"id":        "job-2",
				"title":     "Platform Engineer",
				"company":   "Hooli",
				"posted_at": "2026-02-20T00:00:00Z",
			},
		}, 2))
	})

	h := NewHandler(LoadConfig(), esClient, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		Skills: []string{"Go"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/job_postings/_search", capturedPath)
	assert.Equal(t, int64(2), output.TotalHits)
	require.Len(t, output.Jobs, 2)

	first := output.Jobs[0]
	assert.Equal(t, "job-1", first.ID)
	assert.Equal(t, "Senior Backend Engineer", first.Title)
	assert.Equal(t, "Initech", first.Company)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, first.RequiredSkills)
	assert.Equal(t, 3.0, first.Experience.MinYears)
	assert.Equal(t, 160000, first.Salary.Max)
	assert.Equal(t, "USD", first.Salary.Currency)
	assert.True(t, first.Remote)
	assert.Equal(t, "2026-03-01T00:00:00Z", first.PostedAt.Format("2006-01-02T15:04:05Z07:00"))

	assert.Equal(t, "job-2", output.Jobs[1].ID)
	assert.Empty(t, output.Jobs[1].RequiredSkills)
}

func TestExecute_ExplicitIndexOverridesDefault(t *testing.T) {
	var capturedPath string
	esClient := newStubES(t, func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(searchResponse(nil, 0))
	})

	h := NewHandler(LoadConfig(), esClient, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{IndexName: "archived_jobs"})
	require.NoError(t, err)

	assert.Equal(t, "/archived_jobs/_search", capturedPath)
	assert.Equal(t, int64(0), output.TotalHits)
	assert.Empty(t, output.Jobs)
}

func TestExecute_IndexNotFound(t *testing.T) {
	esClient := newStubES(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{
				"type":   "index_not_found_exception",
				"reason": "no such index [missing_jobs]",
			},
			"status": 404,
		})
	})

	h := NewHandler(LoadConfig(), esClient, logger.NewTestLogger(t))

	_, err := h.Execute(context.Background(), &Input{IndexName: "missing_jobs"})
	assert.ErrorIs(t, err, ErrIndexNotFound)
	assert.Equal(t, "INDEX_NOT_FOUND", h.mapErrorToCode(err))
}

func TestExecute_QueryFailure(t *testing.T) {
	esClient := newStubES(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{
				"type":   "search_phase_execution_exception",
				"reason": "all shards failed",
			},
			"status": 400,
		})
	})

	h := NewHandler(LoadConfig(), esClient, logger.NewTestLogger(t))

	_, err := h.Execute(context.Background(), &Input{})
	assert.ErrorIs(t, err, ErrSearchQueryFailed)
	assert.Equal(t, "SEARCH_QUERY_FAILED", h.mapErrorToCode(err))
	assert.Equal(t, int32(3), h.getRetryCount(err))
}

func TestExecute_NilInput(t *testing.T) {
	h := NewHandler(LoadConfig(), nil, logger.NewNoOpLogger())

	_, err := h.Execute(context.Background(), nil)
	assert.Error(t, err)
}
