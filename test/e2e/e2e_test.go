// test/e2e/e2e_test.go
package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentmatch-workers/internal/catalog"
	"talentmatch-workers/internal/common/config"
	"talentmatch-workers/internal/common/database"
	"talentmatch-workers/internal/common/logger"
	"talentmatch-workers/internal/models"

	queryjobpostings "talentmatch-workers/internal/workers/data-access/query-job-postings"
	analyzeskillgaps "talentmatch-workers/internal/workers/matching/analyze-skill-gaps"
	normalizeskills "talentmatch-workers/internal/workers/matching/normalize-skills"
	predictrole "talentmatch-workers/internal/workers/matching/predict-role"
	rankjobs "talentmatch-workers/internal/workers/matching/rank-jobs"
)

const testIndex = "job_postings_e2e"

type services struct {
	pg  *database.PostgresClient
	rdb *database.RedisClient
	es  *elasticsearch.Client
}

// connectServices skips the test when the local stack isn't running; the
// smoke test needs real Postgres, Redis and Elasticsearch.
func connectServices(t *testing.T) (*config.Config, *services) {
	t.Helper()

	cfg, err := config.Load()
	if err != nil {
		t.Skipf("Skipping E2E: config load failed: %v", err)
	}

	cfg.Database.Postgres.Host = "localhost"
	cfg.Database.Redis.Address = "localhost:6379"
	cfg.Database.Elasticsearch.URL = "http://localhost:9200"

	ctx := context.Background()

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil || pg.Ping(ctx) != nil {
		t.Skipf("Skipping E2E: PostgreSQL not available: %v", err)
	}
	t.Log("✅ PostgreSQL connected")

	rdb, err := database.NewRedis(cfg.Database.Redis)
	if err != nil || rdb.Ping(ctx) != nil {
		pg.Close()
		t.Skipf("Skipping E2E: Redis not available: %v", err)
	}
	t.Log("✅ Redis connected")

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.Database.Elasticsearch.GetURL()},
	})
	if err != nil {
		pg.Close()
		rdb.Close()
		t.Skipf("Skipping E2E: Elasticsearch client failed: %v", err)
	}
	res, err := es.Info()
	if err != nil || res.IsError() {
		pg.Close()
		rdb.Close()
		t.Skipf("Skipping E2E: Elasticsearch not available: %v", err)
	}
	res.Body.Close()
	t.Log("✅ Elasticsearch connected")

	svc := &services{pg: pg, rdb: rdb, es: es}
	t.Cleanup(func() {
		svc.pg.Close()
		svc.rdb.Close()
	})
	return cfg, svc
}

func seedJobPostings(t *testing.T, es *elasticsearch.Client) {
	t.Helper()

	es.Indices.Delete([]string{testIndex}, es.Indices.Delete.WithIgnoreUnavailable(true))

	mapping := `{
		"mappings": {
			"properties": {
				"title": {"type": "text"},
				"company": {"type": "text"},
				"required_skills": {"type": "keyword"},
				"employment_type": {"type": "keyword"},
				"remote": {"type": "boolean"},
				"salary_min": {"type": "integer"},
				"salary_max": {"type": "integer"},
				"posted_at": {"type": "date"}
			}
		}
	}`
	res, err := es.Indices.Create(testIndex, es.Indices.Create.WithBody(strings.NewReader(mapping)))
	require.NoError(t, err)
	res.Body.Close()

	now := time.Now().UTC()
	docs := []map[string]interface{}{
		{
			"title":           "Frontend Developer",
			"company":         "Initech",
			"required_skills": []string{"JavaScript", "React"},
			"employment_type": "full-time",
			"remote":          true,
			"salary_min":      90000,
			"salary_max":      130000,
			"posted_at":       now.Add(-48 * time.Hour).Format(time.RFC3339),
		},
		{
			"title":           "Site Reliability Engineer",
			"company":         "Hooli",
			"required_skills": []string{"Kubernetes", "Linux"},
			"employment_type": "full-time",
			"remote":          false,
			"salary_min":      120000,
			"salary_max":      170000,
			"posted_at":       now.Add(-240 * time.Hour).Format(time.RFC3339),
		},
	}
	for i, doc := range docs {
		body, err := json.Marshal(doc)
		require.NoError(t, err)
		res, err := es.Index(testIndex, strings.NewReader(string(body)),
			es.Index.WithDocumentID(fmt.Sprintf("e2e-job-%d", i+1)),
			es.Index.WithRefresh("true"),
		)
		require.NoError(t, err)
		res.Body.Close()
	}
}

func TestMatchingPipelineE2E(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}

	cfg, svc := connectServices(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	log := logger.NewTestLogger(t)

	store, err := catalog.Load(ctx, cfg.Catalog, nil, nil, log)
	require.NoError(t, err)

	// --- 1. normalize-skills ---
	nsHandler := normalizeskills.NewHandler(normalizeskills.LoadConfig(), store.Dictionary(), log)
	nsOut, err := nsHandler.Execute(ctx, &normalizeskills.Input{
		CandidateID: "e2e-cand-1",
		Skills: []json.RawMessage{
			json.RawMessage(`"JS"`),
			json.RawMessage(`{"skill": "React", "score": 80, "verified": true}`),
			json.RawMessage(`"Node.js"`),
			json.RawMessage(`"SQL"`),
			json.RawMessage(`"Git"`),
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, nsOut.NormalizedSkills)
	t.Logf("✅ normalize-skills: %d skills", len(nsOut.NormalizedSkills))

	profile := &models.CandidateProfile{
		ID:              "e2e-cand-1",
		Skills:          nsOut.NormalizedSkills,
		ExperienceYears: 4,
	}

	// --- 2. predict-role ---
	prHandler := predictrole.NewHandler(predictrole.LoadConfig(), svc.pg.DB, svc.rdb.Client, store, nil, log)
	prOut, err := prHandler.Execute(ctx, &predictrole.Input{
		CandidateID:      profile.ID,
		CandidateProfile: profile,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, prOut.Primary.RoleName)
	t.Logf("✅ predict-role: %s (%.1f)", prOut.Primary.RoleName, prOut.Primary.Score)

	// --- 3. analyze-skill-gaps ---
	asgHandler := analyzeskillgaps.NewHandler(analyzeskillgaps.LoadConfig(), svc.pg.DB, svc.rdb.Client, store, log)
	asgOut, err := asgHandler.Execute(ctx, &analyzeskillgaps.Input{
		CandidateID:      profile.ID,
		CandidateProfile: profile,
		TargetRole:       "DevOps Engineer",
	})
	require.NoError(t, err)
	require.NotEmpty(t, asgOut.Analysis.SkillsMissing)
	for _, missing := range asgOut.Analysis.SkillsMissing {
		assert.Greater(t, missing.SalaryBoost.PercentMax, 0)
	}
	t.Logf("✅ analyze-skill-gaps: %d missing skills", len(asgOut.Analysis.SkillsMissing))

	// --- 4. query-job-postings ---
	seedJobPostings(t, svc.es)

	qjpHandler := queryjobpostings.NewHandler(queryjobpostings.LoadConfig(), svc.es, log)
	qjpOut, err := qjpHandler.Execute(ctx, &queryjobpostings.Input{
		IndexName: testIndex,
		Skills:    []string{"JavaScript"},
	})
	require.NoError(t, err)
	require.Len(t, qjpOut.Jobs, 1)
	assert.Equal(t, "Frontend Developer", qjpOut.Jobs[0].Title)
	t.Logf("✅ query-job-postings: %d hits", qjpOut.TotalHits)

	// --- 5. rank-jobs ---
	rjCfg := rankjobs.LoadConfig()
	rjCfg.JobsIndex = testIndex
	rjHandler := rankjobs.NewHandler(rjCfg, svc.pg.DB, svc.rdb.Client, svc.es, store, log)
	rjOut, err := rjHandler.Execute(ctx, &rankjobs.Input{
		CandidateID:      profile.ID,
		CandidateProfile: profile,
		MinMatchScore:    1,
	})
	require.NoError(t, err)
	require.NotEmpty(t, rjOut.Matches)
	assert.Equal(t, "e2e-job-1", rjOut.Matches[0].JobID)
	t.Logf("✅ rank-jobs: %d matches, top %.1f", len(rjOut.Matches), rjOut.Matches[0].FinalScore)

	t.Log("✅ ALL TESTS PASSED — matching pipeline E2E successful!")
}
