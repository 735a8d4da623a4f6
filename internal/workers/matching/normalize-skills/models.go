// internal/workers/matching/normalize-skills/models.go
package normalizeskills

import (
	"encoding/json"
	"fmt"
	"strings"

	"talentmatch-workers/internal/models"
)

type Input struct {
	CandidateID string            `json:"candidateId,omitempty"`
	Skills      []json.RawMessage `json:"skills"`
}

type Output struct {
	CandidateID      string                  `json:"candidateId,omitempty"`
	NormalizedSkills []models.CandidateSkill `json:"normalizedSkills"`
	Expansions       map[string][]string     `json:"expansions"`
	DroppedCount     int                     `json:"droppedCount"`
}

// skillRecord is the object shape a skill entry may arrive in. Upstream
// extraction sometimes emits plain strings and sometimes tagged objects; both
// shapes collapse into models.CandidateSkill here so nothing downstream
// branches on shape.
type skillRecord struct {
	Skill    string  `json:"skill"`
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	Verified bool    `json:"verified"`
}

// decodeSkill accepts either a JSON string or a skillRecord object.
func decodeSkill(raw json.RawMessage) (models.CandidateSkill, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return models.CandidateSkill{}, fmt.Errorf("empty skill entry")
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return models.CandidateSkill{}, fmt.Errorf("decode skill string: %w", err)
		}
		return models.CandidateSkill{Name: s}, nil
	}

	var rec skillRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return models.CandidateSkill{}, fmt.Errorf("decode skill object: %w", err)
	}
	name := rec.Skill
	if name == "" {
		name = rec.Name
	}
	return models.CandidateSkill{
		Name:              name,
		Verified:          rec.Verified,
		VerificationScore: int(rec.Score),
	}, nil
}
