// internal/match/roles/predictor_test.go
package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentmatch-workers/internal/match/skills"
	"talentmatch-workers/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestPredictor() *Predictor {
	return NewPredictor(skills.Default())
}

func createTestCatalog() []models.RoleArchetype {
	return []models.RoleArchetype{
		{
			Name:            "Full Stack Developer",
			Category:        "Engineering",
			RequiredSkills:  []string{"JavaScript", "React", "Node.js", "SQL", "REST API", "Git"},
			PreferredSkills: []string{"TypeScript", "Docker"},
			Experience:      models.ExperienceRange{MinYears: 0, MaxYears: 8},
		},
		{
			Name:            "Backend Developer",
			Category:        "Engineering",
			RequiredSkills:  []string{"Python", "SQL", "REST API", "Git"},
			PreferredSkills: []string{"Docker", "Kubernetes"},
			Experience:      models.ExperienceRange{MinYears: 1, MaxYears: 10},
		},
		{
			Name:            "Data Scientist",
			Category:        "Data",
			RequiredSkills:  []string{"Python", "Machine Learning", "SQL", "Pandas"},
			PreferredSkills: []string{"TensorFlow"},
			Experience:      models.ExperienceRange{MinYears: 2, MaxYears: 12},
		},
		{
			Name:           "Engineering Manager",
			Category:       "Management",
			RequiredSkills: []string{"System Design", "Agile"},
			Experience:     models.ExperienceRange{MinYears: 6, MaxYears: 20},
		},
	}
}

func createTestCandidate(years float64, skillNames ...string) *models.CandidateProfile {
	c := &models.CandidateProfile{ExperienceYears: years}
	for _, s := range skillNames {
		c.Skills = append(c.Skills, models.CandidateSkill{Name: s})
	}
	return c
}

// ==========================
// Core Functionality Tests
// ==========================

func TestPredict_HeuristicRanking(t *testing.T) {
	p := newTestPredictor()
	candidate := createTestCandidate(3, "JS", "React", "Node", "Postgres", "REST", "Git")

	pred, err := p.Predict(candidate, createTestCatalog(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Full Stack Developer", pred.Primary.RoleName)
	assert.False(t, pred.SuggestionApplied)
	assert.LessOrEqual(t, len(pred.Alternatives), 2)
	assert.Greater(t, pred.Primary.Score, 0.0)
}

func TestPredict_ExperienceFloorSkipsRoles(t *testing.T) {
	p := newTestPredictor()
	// 0 years: Backend (min 1), Data Scientist (min 2) and EM (min 6) are skipped.
	candidate := createTestCandidate(0, "Python", "SQL", "Machine Learning", "Pandas")

	pred, err := p.Predict(candidate, createTestCatalog(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Full Stack Developer", pred.Primary.RoleName)
	assert.Empty(t, pred.Alternatives)
}

func TestPredict_AllRolesFilteredFallsBackToUnfiltered(t *testing.T) {
	p := newTestPredictor()
	catalog := []models.RoleArchetype{
		{
			Name:           "Engineering Manager",
			RequiredSkills: []string{"System Design"},
			Experience:     models.ExperienceRange{MinYears: 6, MaxYears: 20},
		},
	}

	pred, err := p.Predict(createTestCandidate(1, "System Design"), catalog, nil)
	require.NoError(t, err)
	assert.Equal(t, "Engineering Manager", pred.Primary.RoleName)
}

func TestPredict_EmptyCatalog(t *testing.T) {
	p := newTestPredictor()
	_, err := p.Predict(createTestCandidate(3, "Python"), nil, nil)
	assert.Error(t, err)
}

func TestScore_Scale(t *testing.T) {
	p := newTestPredictor()
	role := models.RoleArchetype{
		Name:            "Backend Developer",
		RequiredSkills:  []string{"Python", "SQL"},
		PreferredSkills: []string{"Docker", "Kubernetes"},
	}

	tests := []struct {
		name          string
		skills        []string
		expectedScore float64
	}{
		{"full required and preferred", []string{"Python", "SQL", "Docker", "Kubernetes"}, 150},
		{"full required only", []string{"Python", "SQL"}, 100},
		{"half required", []string{"Python"}, 50},
		{"preferred only", []string{"Docker"}, 25},
		{"nothing", []string{"Figma"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Score(createTestCandidate(3, tt.skills...), &role)
			assert.InDelta(t, tt.expectedScore, got.Score, 0.001)
			assert.GreaterOrEqual(t, got.Confidence, 0.0)
			assert.LessOrEqual(t, got.Confidence, 1.0)
		})
	}
}

func TestScore_MonotonicInMatchedRequired(t *testing.T) {
	p := newTestPredictor()
	role := models.RoleArchetype{
		Name:           "Backend Developer",
		RequiredSkills: []string{"Python", "SQL", "REST API", "Git"},
	}

	prev := -1.0
	acquired := []string{}
	for _, s := range role.RequiredSkills {
		acquired = append(acquired, s)
		got := p.Score(createTestCandidate(3, acquired...), &role)
		assert.Greater(t, got.Score, prev, "adding required skill %q must not decrease the score", s)
		prev = got.Score
	}
}

func TestScore_SynonymsMatchRequirements(t *testing.T) {
	p := newTestPredictor()
	role := models.RoleArchetype{
		Name:           "Frontend Developer",
		RequiredSkills: []string{"JavaScript", "React"},
	}

	got := p.Score(createTestCandidate(2, "js", "reactjs"), &role)
	assert.Equal(t, 2, got.MatchedRequired)
	assert.InDelta(t, 100, got.Score, 0.001)
}

// ==========================
// External Suggestion Tests
// ==========================

func TestPredict_SuggestionConfirmsHeuristic(t *testing.T) {
	p := newTestPredictor()
	candidate := createTestCandidate(3, "JS", "React", "Node", "SQL", "REST API", "Git")

	pred, err := p.Predict(candidate, createTestCatalog(), []string{"Full Stack Developer"})
	require.NoError(t, err)

	assert.Equal(t, "Full Stack Developer", pred.Primary.RoleName)
	assert.False(t, pred.SuggestionApplied, "a confirming suggestion keeps the heuristic ranking")
}

func TestPredict_SuggestionSubstringConfirms(t *testing.T) {
	p := newTestPredictor()
	candidate := createTestCandidate(3, "JS", "React", "Node", "SQL", "REST API", "Git")

	// "Full Stack" is a substring of a ranked role name and counts as confirmation.
	pred, err := p.Predict(candidate, createTestCatalog(), []string{"Full Stack"})
	require.NoError(t, err)
	assert.False(t, pred.SuggestionApplied)
}

func TestPredict_NewSuggestionBecomesPrimary(t *testing.T) {
	p := newTestPredictor()
	candidate := createTestCandidate(3, "JS", "React", "Node", "SQL", "REST API", "Git")

	pred, err := p.Predict(candidate, createTestCatalog(), []string{"Solutions Architect"})
	require.NoError(t, err)

	assert.True(t, pred.SuggestionApplied)
	assert.Equal(t, "Solutions Architect", pred.Primary.RoleName)
	assert.InDelta(t, 85, pred.Primary.Score, 0.001)
	require.Len(t, pred.Alternatives, 2)
	assert.Equal(t, "Full Stack Developer", pred.Alternatives[0].RoleName)
}

func TestPredict_AbsentSuggestionIsIgnored(t *testing.T) {
	p := newTestPredictor()
	candidate := createTestCandidate(3, "JS", "React")

	withNil, err := p.Predict(candidate, createTestCatalog(), nil)
	require.NoError(t, err)
	withEmpty, err := p.Predict(candidate, createTestCatalog(), []string{"", "  "})
	require.NoError(t, err)

	assert.Equal(t, withNil, withEmpty)
	assert.False(t, withEmpty.SuggestionApplied)
}

func TestPredict_Deterministic(t *testing.T) {
	p := newTestPredictor()
	candidate := createTestCandidate(3, "Python", "SQL")

	first, err := p.Predict(candidate, createTestCatalog(), nil)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := p.Predict(candidate, createTestCatalog(), nil)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
