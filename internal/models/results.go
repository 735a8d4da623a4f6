// internal/models/results.go
package models

// RoleMatch scores one role archetype against a candidate. Score is on a
// 0-150 scale: required coverage contributes up to 100 and preferred coverage
// up to 50, so preferred skills can break ties between otherwise-equal roles.
// The scale is intentionally not reconciled with the gap analyzer's 0-100
// completeness percentage.
type RoleMatch struct {
	RoleName        string  `json:"roleName"`
	Score           float64 `json:"score"`
	MatchedRequired int     `json:"matchedRequired"`
	TotalRequired   int     `json:"totalRequired"`
	Confidence      float64 `json:"confidence"`
}

type RolePrediction struct {
	Primary           RoleMatch   `json:"primary"`
	Alternatives      []RoleMatch `json:"alternatives"`
	SuggestionApplied bool        `json:"suggestionApplied"`
}

type SkillRequirement string

const (
	SkillRequired  SkillRequirement = "required"
	SkillPreferred SkillRequirement = "preferred"
)

// GapSkillHave is a role skill the candidate already covers.
type GapSkillHave struct {
	Skill       string           `json:"skill"`
	Type        SkillRequirement `json:"type"`
	Proficiency int              `json:"proficiency"`
	Level       string           `json:"level"`
	Verified    bool             `json:"verified"`
	Priority    int              `json:"priority"`
}

// SalaryBoost is the market-impact metadata attached to a missing skill.
type SalaryBoost struct {
	PercentMin int    `json:"percentMin"`
	PercentMax int    `json:"percentMax"`
	USDMin     int    `json:"usdMin"`
	USDMax     int    `json:"usdMax"`
	Category   string `json:"category"`
}

// GapSkillMissing is a role skill the candidate lacks.
type GapSkillMissing struct {
	Skill       string           `json:"skill"`
	Type        SkillRequirement `json:"type"`
	Priority    int              `json:"priority"`
	Reasons     []string         `json:"reasons,omitempty"`
	SalaryBoost SalaryBoost      `json:"salaryBoost"`
	AlignedWith []AlignedSkill   `json:"alignedWith,omitempty"`
}

// AlignedSkill links a missing skill to a skill the candidate already has.
type AlignedSkill struct {
	Skill       string  `json:"skill"`
	Similarity  float64 `json:"similarity"`
	Proficiency int     `json:"proficiency"`
}

type AlignedRecommendation struct {
	MissingSkill  string         `json:"missingSkill"`
	ClosestSkills []AlignedSkill `json:"closestSkills"`
}

type GapSummary struct {
	CoreSkillsHave        int     `json:"coreSkillsHave"`
	CoreSkillsTotal       int     `json:"coreSkillsTotal"`
	CoreSkillMatch        float64 `json:"coreSkillMatch"`
	MissingCoreSkills     int     `json:"missingCoreSkills"`
	MissingOptionalSkills int     `json:"missingOptionalSkills"`
}

type SkillGapResult struct {
	Role                   string                  `json:"role"`
	SkillsHave             []GapSkillHave          `json:"skillsHave"`
	SkillsMissing          []GapSkillMissing       `json:"skillsMissing"`
	AlignedRecommendations []AlignedRecommendation `json:"alignedRecommendations"`
	Summary                GapSummary              `json:"summary"`
}

// JobMatchResult scores one posting against a candidate. EmbeddingSimilarity
// is 0 when embeddings were unused or unusable.
type JobMatchResult struct {
	JobID               string   `json:"jobId"`
	Title               string   `json:"title"`
	Company             string   `json:"company,omitempty"`
	FinalScore          float64  `json:"finalScore"`
	EmbeddingSimilarity float64  `json:"embeddingSimilarity"`
	ClassicalScore      float64  `json:"classicalScore"`
	MatchedSkills       []string `json:"matchedSkills,omitempty"`
	MissingSkills       []string `json:"missingSkills,omitempty"`
	ExperienceMatch     bool     `json:"experienceMatch"`
	SalaryMatch         bool     `json:"salaryMatch"`
	PortalPenalized     bool     `json:"portalPenalized"`
}
