// internal/workers/matching/analyze-skill-gaps/handler_test.go
package analyzeskillgaps

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentmatch-workers/internal/catalog"
	"talentmatch-workers/internal/common/logger"
	"talentmatch-workers/internal/models"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	return NewHandler(LoadConfig(), nil, nil, catalog.Builtin(), logger.NewTestLogger(t))
}

func testProfile() *models.CandidateProfile {
	return &models.CandidateProfile{
		ID:              "cand-1",
		ExperienceYears: 3,
		Skills: []models.CandidateSkill{
			{Name: "JS"},
			{Name: "React"},
			{Name: "Postgres"},
		},
	}
}

func TestExecute_FullStackScenario(t *testing.T) {
	h := newTestHandler(t)

	out, err := h.Execute(context.Background(), &Input{
		CandidateID:      "cand-1",
		CandidateProfile: testProfile(),
		TargetRole:       "Full Stack Developer",
	})
	require.NoError(t, err)

	analysis := out.Analysis
	require.NotNil(t, analysis)
	assert.Equal(t, "Full Stack Developer", analysis.Role)

	haveNames := make(map[string]bool)
	for _, s := range analysis.SkillsHave {
		haveNames[s.Skill] = true
	}
	assert.True(t, haveNames["JavaScript"], "JS matches JavaScript via synonym")
	assert.True(t, haveNames["React"])

	// Postgres is neither required nor preferred for the role, so it shows
	// up in neither bucket.
	for _, s := range analysis.SkillsHave {
		assert.NotEqual(t, "Postgres", s.Skill)
	}
	for _, s := range analysis.SkillsMissing {
		assert.NotEqual(t, "Postgres", s.Skill)
	}

	assert.InDelta(t, 33.33, analysis.Summary.CoreSkillMatch, 0.5)
}

func TestExecute_RoleNotFound(t *testing.T) {
	h := newTestHandler(t)

	_, err := h.Execute(context.Background(), &Input{
		CandidateProfile: testProfile(),
		TargetRole:       "Chief Vibes Officer",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ROLE_NOT_FOUND")
}

func TestExecute_TargetRoleRequired(t *testing.T) {
	h := newTestHandler(t)

	_, err := h.Execute(context.Background(), &Input{CandidateProfile: testProfile()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_INPUT")
}

func TestExecute_ProfileFromCache(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()

	data, err := json.Marshal(testProfile())
	require.NoError(t, err)
	redisMock.ExpectGet("candidate:profile:cand-1").SetVal(string(data))

	h := NewHandler(LoadConfig(), nil, rdb, catalog.Builtin(), logger.NewNoOpLogger())

	out, err := h.Execute(context.Background(), &Input{
		CandidateID: "cand-1",
		TargetRole:  "Full Stack Developer",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Analysis.SkillsHave)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestExecute_MissingSkillsCarrySalaryBoost(t *testing.T) {
	h := newTestHandler(t)

	out, err := h.Execute(context.Background(), &Input{
		CandidateProfile: testProfile(),
		TargetRole:       "DevOps Engineer",
	})
	require.NoError(t, err)

	require.NotEmpty(t, out.Analysis.SkillsMissing)
	for _, missing := range out.Analysis.SkillsMissing {
		assert.Greater(t, missing.SalaryBoost.PercentMax, 0, "skill %s", missing.Skill)
		assert.NotEmpty(t, missing.SalaryBoost.Category, "skill %s", missing.Skill)
	}
}
