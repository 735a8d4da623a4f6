// internal/workers/matching/analyze-skill-gaps/models.go
package analyzeskillgaps

import "talentmatch-workers/internal/models"

type Input struct {
	CandidateID      string                   `json:"candidateId,omitempty"`
	CandidateProfile *models.CandidateProfile `json:"candidateProfile,omitempty"`
	TargetRole       string                   `json:"targetRole"`
}

type Output struct {
	CandidateID string                 `json:"candidateId,omitempty"`
	Analysis    *models.SkillGapResult `json:"analysis"`
}
