// internal/workers/matching/predict-role/models.go
package predictrole

import "talentmatch-workers/internal/models"

type Input struct {
	CandidateID      string                   `json:"candidateId,omitempty"`
	CandidateProfile *models.CandidateProfile `json:"candidateProfile,omitempty"`

	// SuggestedRoles lets an upstream process task inject the AI suggestion
	// directly; when absent and the suggestion service is enabled, the
	// handler fetches one itself.
	SuggestedRoles []string `json:"suggestedRoles,omitempty"`
}

type Output struct {
	CandidateID       string             `json:"candidateId,omitempty"`
	Primary           models.RoleMatch   `json:"primary"`
	Alternatives      []models.RoleMatch `json:"alternatives"`
	SuggestionApplied bool               `json:"suggestionApplied"`
	SuggestionFetched bool               `json:"suggestionFetched"`
}
