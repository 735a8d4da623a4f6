// internal/workers/matching/predict-role/handler_test.go
package predictrole

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentmatch-workers/internal/catalog"
	httpclient "talentmatch-workers/internal/common/http"
	"talentmatch-workers/internal/common/logger"
	"talentmatch-workers/internal/models"
)

func fullStackProfile() *models.CandidateProfile {
	return &models.CandidateProfile{
		ID:              "cand-1",
		ExperienceYears: 3,
		Skills: []models.CandidateSkill{
			{Name: "JavaScript"},
			{Name: "React"},
			{Name: "Node.js"},
			{Name: "SQL"},
			{Name: "Git"},
		},
	}
}

func newTestHandler(t *testing.T, suggestion *SuggestionClient) *Handler {
	t.Helper()
	cfg := LoadConfig()
	if suggestion != nil {
		cfg.SuggestionEnabled = true
	}
	return NewHandler(cfg, nil, nil, catalog.Builtin(), suggestion, logger.NewTestLogger(t))
}

func TestExecute_InlineProfile(t *testing.T) {
	h := newTestHandler(t, nil)

	out, err := h.Execute(context.Background(), &Input{
		CandidateID:      "cand-1",
		CandidateProfile: fullStackProfile(),
	})
	require.NoError(t, err)

	assert.Equal(t, "Full Stack Developer", out.Primary.RoleName)
	assert.False(t, out.SuggestionApplied)
	assert.False(t, out.SuggestionFetched)
	assert.LessOrEqual(t, len(out.Alternatives), 2)
}

func TestExecute_NoProfileFails(t *testing.T) {
	h := newTestHandler(t, nil)

	_, err := h.Execute(context.Background(), &Input{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_INPUT")
}

func TestExecute_ProfileFromRedisCache(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()

	profile := fullStackProfile()
	data, err := json.Marshal(profile)
	require.NoError(t, err)
	redisMock.ExpectGet("candidate:profile:cand-1").SetVal(string(data))

	h := NewHandler(LoadConfig(), nil, rdb, catalog.Builtin(), nil, logger.NewNoOpLogger())

	out, err := h.Execute(context.Background(), &Input{CandidateID: "cand-1"})
	require.NoError(t, err)
	assert.Equal(t, "Full Stack Developer", out.Primary.RoleName)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestExecute_ProfileFromPostgresOnCacheMiss(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet("candidate:profile:cand-2").RedisNil()
	redisMock.Regexp().ExpectSet("candidate:profile:cand-2", `.*`, 10*time.Minute).SetVal("OK")

	db, dbMock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	skillsJSON := `[{"name":"Python","verified":false},{"name":"Machine Learning"},{"name":"SQL"},{"name":"Statistics"}]`
	dbMock.ExpectQuery("FROM candidate_profiles").
		WithArgs("cand-2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "skills", "experience_years", "resume_text"}).
			AddRow("cand-2", []byte(skillsJSON), 4.0, "built ML pipelines in python"))

	h := NewHandler(LoadConfig(), db, rdb, catalog.Builtin(), nil, logger.NewNoOpLogger())

	out, err := h.Execute(context.Background(), &Input{CandidateID: "cand-2"})
	require.NoError(t, err)
	assert.Equal(t, "Data Scientist", out.Primary.RoleName)
	assert.NoError(t, dbMock.ExpectationsWereMet())
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestExecute_InlineSuggestionSplices(t *testing.T) {
	h := newTestHandler(t, nil)

	out, err := h.Execute(context.Background(), &Input{
		CandidateProfile: fullStackProfile(),
		SuggestedRoles:   []string{"Cloud Architect"},
	})
	require.NoError(t, err)

	assert.True(t, out.SuggestionApplied)
	assert.Equal(t, "Cloud Architect", out.Primary.RoleName)
	assert.False(t, out.SuggestionFetched)
}

func TestExecute_FetchedSuggestionConfirms(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/role-suggestions", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"roles": []string{"Full Stack Developer"},
		})
	}))
	defer srv.Close()

	client := NewSuggestionClient(srv.URL, "test-key", httpclient.NewClient(2*time.Second))
	h := newTestHandler(t, client)

	out, err := h.Execute(context.Background(), &Input{CandidateProfile: fullStackProfile()})
	require.NoError(t, err)

	assert.True(t, out.SuggestionFetched)
	// The suggestion names the heuristic winner, so it confirms instead of
	// splicing a synthetic entry.
	assert.False(t, out.SuggestionApplied)
	assert.Equal(t, "Full Stack Developer", out.Primary.RoleName)
}

func TestExecute_SuggestionFailureRecovered(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewSuggestionClient(srv.URL, "", httpclient.NewClient(2*time.Second))
	h := newTestHandler(t, client)

	out, err := h.Execute(context.Background(), &Input{CandidateProfile: fullStackProfile()})
	require.NoError(t, err)

	assert.False(t, out.SuggestionFetched)
	assert.Equal(t, "Full Stack Developer", out.Primary.RoleName)
}
