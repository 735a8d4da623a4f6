// internal/workers/matching/normalize-skills/validation.go
package normalizeskills

import "talentmatch-workers/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"skills"},
		Properties: map[string]validation.Property{
			"candidateId": {
				Type:        "string",
				Description: "Candidate identifier",
				MaxLength:   intPtr(255),
			},
			"skills": {
				Type:        "array",
				Description: "Skill entries: plain strings or {skill, score, verified} objects",
			},
		},
		AdditionalProperties: true,
	}
}

func GetOutputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"candidateId": {
				Type:        "string",
				Description: "Candidate identifier",
			},
			"normalizedSkills": {
				Type:        "array",
				Description: "Deduplicated canonical skill records",
			},
			"expansions": {
				Type:        "object",
				Description: "Canonical skill to synonym expansion list",
			},
			"droppedCount": {
				Type:        "integer",
				Description: "Number of entries dropped as empty or undecodable",
			},
		},
		AdditionalProperties: false,
	}
}

func intPtr(i int) *int {
	return &i
}
