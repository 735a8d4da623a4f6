// internal/models/candidate.go
package models

// CandidateSkill is the normalized shape for a single candidate skill.
// Raw inputs arrive either as plain strings or as {skill, score, verified}
// objects; the normalize-skills worker folds both into this struct before
// anything enters the matching core.
type CandidateSkill struct {
	Name              string `json:"name"`
	Verified          bool   `json:"verified"`
	VerificationScore int    `json:"verificationScore,omitempty"`
}

type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company,omitempty"`
	Description string `json:"description,omitempty"`
}

// CandidateProfile is the core's view of a candidate. It is assembled by the
// caller (resume parsing, quiz verification, embedding provider) and treated
// as read-only by every scoring function.
type CandidateProfile struct {
	ID              string            `json:"id,omitempty"`
	Skills          []CandidateSkill  `json:"skills"`
	ExperienceYears float64           `json:"experienceYears"`
	ResumeText      string            `json:"resumeText,omitempty"`
	Projects        []ProjectEntry    `json:"projects,omitempty"`
	Experience      []ExperienceEntry `json:"experience,omitempty"`
	Embedding       []float64         `json:"embedding,omitempty"`
}

// SkillNames returns the raw names of all candidate skills, verified included.
func (c *CandidateProfile) SkillNames() []string {
	names := make([]string, 0, len(c.Skills))
	for _, s := range c.Skills {
		names = append(names, s.Name)
	}
	return names
}

// VerifiedSkills returns only the skills proven via an external quiz.
func (c *CandidateProfile) VerifiedSkills() []CandidateSkill {
	var out []CandidateSkill
	for _, s := range c.Skills {
		if s.Verified {
			out = append(out, s)
		}
	}
	return out
}
