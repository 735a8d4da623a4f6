// internal/match/gaps/analyzer_test.go
package gaps

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

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(skills.Default())
}

func createFullStackRole() *models.RoleArchetype {
	return &models.RoleArchetype{
		Name:           "Full Stack Developer",
		Category:       "Engineering",
		RequiredSkills: []string{"JavaScript", "React", "Node.js", "SQL", "REST API", "Git"},
	}
}

func createSalaryCatalog() []models.SalaryBoostSkill {
	return []models.SalaryBoostSkill{
		{Skill: "Kubernetes", PercentMin: 20, PercentMax: 40, USDMin: 20000, USDMax: 40000, Category: "Infrastructure", DemandLevel: "high"},
		{Skill: "Node.js", PercentMin: 12, PercentMax: 25, USDMin: 12000, USDMax: 25000, Category: "Backend", DemandLevel: "high"},
	}
}

func candidateWithSkills(names ...string) *models.CandidateProfile {
	c := &models.CandidateProfile{ExperienceYears: 3}
	for _, n := range names {
		c.Skills = append(c.Skills, models.CandidateSkill{Name: n})
	}
	return c
}

// ==========================
// Core Functionality Tests
// ==========================

func TestAnalyze_FullStackScenario(t *testing.T) {
	a := newTestAnalyzer()
	candidate := candidateWithSkills("JS", "React", "Postgres")

	result := a.Analyze(candidate, createFullStackRole(), createSalaryCatalog())

	// JS matches JavaScript via synonym, React exactly; Postgres is not a
	// role skill and must not show up in either bucket.
	haveNames := make([]string, 0, len(result.SkillsHave))
	for _, h := range result.SkillsHave {
		haveNames = append(haveNames, h.Skill)
	}
	assert.ElementsMatch(t, []string{"JavaScript", "React"}, haveNames)

	for _, m := range result.SkillsMissing {
		assert.NotEqual(t, "Postgres", m.Skill)
	}
	for _, h := range result.SkillsHave {
		assert.NotEqual(t, "Postgres", h.Skill)
	}

	assert.Equal(t, 2, result.Summary.CoreSkillsHave)
	assert.Equal(t, 6, result.Summary.CoreSkillsTotal)
	assert.InDelta(t, 33.33, result.Summary.CoreSkillMatch, 0.5)
	assert.Equal(t, 4, result.Summary.MissingCoreSkills)
	assert.Equal(t, 0, result.Summary.MissingOptionalSkills)
}

func TestAnalyze_Completeness(t *testing.T) {
	a := newTestAnalyzer()
	role := &models.RoleArchetype{
		Name:            "Backend Developer",
		RequiredSkills:  []string{"Python", "SQL", "REST API"},
		PreferredSkills: []string{"Docker", "Kubernetes"},
	}

	tests := []struct {
		name   string
		skills []string
	}{
		{"no overlap", []string{"Figma", "Excel"}},
		{"partial overlap", []string{"Python", "Docker"}},
		{"full overlap", []string{"Python", "SQL", "REST API", "Docker", "Kubernetes"}},
		{"empty candidate", nil},
	}

	total := len(role.RequiredSkills) + len(role.PreferredSkills)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := a.Analyze(candidateWithSkills(tt.skills...), role, nil)
			assert.Equal(t, total, len(result.SkillsHave)+len(result.SkillsMissing),
				"every role skill lands in exactly one bucket")
		})
	}
}

func TestAnalyze_VerifiedSkillCountsAsPresent(t *testing.T) {
	a := newTestAnalyzer()
	role := &models.RoleArchetype{
		Name:           "Backend Developer",
		RequiredSkills: []string{"Python"},
	}

	// Verified via quiz, never mentioned in the resume.
	c := &models.CandidateProfile{
		Skills: []models.CandidateSkill{{Name: "Python", Verified: true, VerificationScore: 88}},
	}

	result := a.Analyze(c, role, nil)
	require.Len(t, result.SkillsHave, 1)
	assert.True(t, result.SkillsHave[0].Verified)
	assert.Empty(t, result.SkillsMissing)
}

func TestAnalyze_PriorityOrdering(t *testing.T) {
	a := newTestAnalyzer()
	role := &models.RoleArchetype{
		Name:            "Platform Engineer",
		RequiredSkills:  []string{"Kubernetes", "Terraform"},
		PreferredSkills: []string{"Prometheus"},
	}

	result := a.Analyze(candidateWithSkills("Excel"), role, nil)
	require.Len(t, result.SkillsMissing, 3)

	// Required (priority 3) sort ahead of preferred (priority 2),
	// alphabetical within a tier.
	assert.Equal(t, "Kubernetes", result.SkillsMissing[0].Skill)
	assert.Equal(t, 3, result.SkillsMissing[0].Priority)
	assert.Equal(t, "Terraform", result.SkillsMissing[1].Skill)
	assert.Equal(t, "Prometheus", result.SkillsMissing[2].Skill)
	assert.Equal(t, 2, result.SkillsMissing[2].Priority)
}

// ==========================
// Salary Boost Tests
// ==========================

func TestLookupSalaryBoost(t *testing.T) {
	a := newTestAnalyzer()
	catalog := createSalaryCatalog()

	t.Run("catalog hit", func(t *testing.T) {
		boost := a.lookupSalaryBoost("Kubernetes", models.SkillRequired, catalog)
		assert.Equal(t, 20, boost.PercentMin)
		assert.Equal(t, "Infrastructure", boost.Category)
	})

	t.Run("substring hit", func(t *testing.T) {
		boost := a.lookupSalaryBoost("Node", models.SkillRequired, catalog)
		assert.Equal(t, "Backend", boost.Category)
	})

	t.Run("required fallback", func(t *testing.T) {
		boost := a.lookupSalaryBoost("COBOL", models.SkillRequired, catalog)
		assert.Equal(t, models.SalaryBoost{PercentMin: 15, PercentMax: 35, USDMin: 15000, USDMax: 35000, Category: "Core"}, boost)
	})

	t.Run("preferred fallback", func(t *testing.T) {
		boost := a.lookupSalaryBoost("COBOL", models.SkillPreferred, catalog)
		assert.Equal(t, models.SalaryBoost{PercentMin: 8, PercentMax: 20, USDMin: 8000, USDMax: 20000, Category: "Differentiator"}, boost)
	})
}

// ==========================
// Aligned Recommendation Tests
// ==========================

func TestAnalyze_AlignedRecommendations(t *testing.T) {
	a := newTestAnalyzer()
	role := &models.RoleArchetype{
		Name:            "Platform Engineer",
		RequiredSkills:  []string{"Kubernetes", "Docker"},
		PreferredSkills: []string{"Terraform"},
	}

	c := &models.CandidateProfile{
		ResumeText: "docker docker docker expert docker containers",
		Skills:     []models.CandidateSkill{{Name: "Docker"}, {Name: "Excel"}},
	}

	result := a.Analyze(c, role, nil)

	// Docker is present; Kubernetes and Terraform are missing. Kubernetes
	// aligns with Docker through the shared container token in their
	// synonym groups.
	var k8s *models.GapSkillMissing
	for i := range result.SkillsMissing {
		if result.SkillsMissing[i].Skill == "Kubernetes" {
			k8s = &result.SkillsMissing[i]
		}
	}
	require.NotNil(t, k8s)

	if assert.NotEmpty(t, result.AlignedRecommendations) {
		for _, rec := range result.AlignedRecommendations {
			assert.LessOrEqual(t, len(rec.ClosestSkills), 3)
			for _, cs := range rec.ClosestSkills {
				assert.Greater(t, cs.Similarity, 0.0)
			}
		}
	}
}

func TestSimilarity_Tiers(t *testing.T) {
	a := newTestAnalyzer()

	assert.InDelta(t, 2.0, a.similarity("js", "javascript"), 0.001)
	assert.InDelta(t, 1.2, a.similarity("aws lambda", "aws"), 0.001)
	assert.Equal(t, 0.0, a.similarity("python", "figma"))

	// Token overlap without a fuzzy match still yields a positive score.
	got := a.similarity("api design", "api gateway")
	assert.Greater(t, got, 0.0)
	assert.Less(t, got, 1.2)
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := newTestAnalyzer()
	role := &models.RoleArchetype{
		Name:            "Full Stack Developer",
		RequiredSkills:  []string{"JavaScript", "React", "SQL"},
		PreferredSkills: []string{"Docker"},
	}
	c := candidateWithSkills("js", "react", "python")

	first := a.Analyze(c, role, createSalaryCatalog())
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, a.Analyze(c, role, createSalaryCatalog()))
	}
}
