// internal/workers/matching/predict-role/suggestion.go
package predictrole

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	httpclient "talentmatch-workers/internal/common/http"
	"talentmatch-workers/internal/models"
)

// SuggestionClient calls the external AI role-suggestion service. Every
// failure mode is recovered by the caller; this client only reports them.
type SuggestionClient struct {
	baseURL string
	apiKey  string
	client  *httpclient.Client
}

func NewSuggestionClient(baseURL, apiKey string, client *httpclient.Client) *SuggestionClient {
	return &SuggestionClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
	}
}

type suggestionRequest struct {
	Skills          []string `json:"skills"`
	ExperienceYears float64  `json:"experienceYears"`
}

type suggestionResponse struct {
	Roles []string `json:"roles"`
}

// SuggestRoles returns the service's role guesses for a candidate, best
// guess first.
func (s *SuggestionClient) SuggestRoles(ctx context.Context, c *models.CandidateProfile) ([]string, error) {
	payload, err := json.Marshal(suggestionRequest{
		Skills:          c.SkillNames(),
		ExperienceYears: c.ExperienceYears,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal suggestion request: %w", err)
	}

	headers := map[string]string{}
	if s.apiKey != "" {
		headers["Authorization"] = "Bearer " + s.apiKey
	}

	resp, err := s.client.PostJSON(ctx, s.baseURL+"/v1/role-suggestions", headers, payload)
	if err != nil {
		return nil, fmt.Errorf("suggestion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggestion service returned %d", resp.StatusCode)
	}

	var out suggestionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode suggestion response: %w", err)
	}
	return out.Roles, nil
}
