// internal/models/role.go
package models

type ExperienceRange struct {
	MinYears float64 `json:"minYears"`
	MaxYears float64 `json:"maxYears"`
}

type SalaryRange struct {
	Currency string `json:"currency"`
	Min      int    `json:"min"`
	Max      int    `json:"max"`
}

// RoleArchetype is a static catalog entry describing a role's typical skill
// profile and pay band. Catalog entries are loaded once and never mutated.
type RoleArchetype struct {
	Name            string                 `json:"name"`
	Category        string                 `json:"category"`
	RequiredSkills  []string               `json:"requiredSkills"`
	PreferredSkills []string               `json:"preferredSkills,omitempty"`
	Experience      ExperienceRange        `json:"experience"`
	Salaries        map[string]SalaryRange `json:"salaries,omitempty"`
	DemandScore     int                    `json:"demandScore,omitempty"`
}

// SkillAliasGroup maps a canonical skill name to its recognized synonyms.
type SkillAliasGroup struct {
	Canonical string   `json:"canonical"`
	Synonyms  []string `json:"synonyms"`
}

// SalaryBoostSkill is static reference data describing the market impact of
// acquiring a skill. Used only by the skill gap analyzer.
type SalaryBoostSkill struct {
	Skill       string `json:"skill"`
	PercentMin  int    `json:"percentMin"`
	PercentMax  int    `json:"percentMax"`
	USDMin      int    `json:"usdMin"`
	USDMax      int    `json:"usdMax"`
	Category    string `json:"category"`
	DemandLevel string `json:"demandLevel,omitempty"`
}
