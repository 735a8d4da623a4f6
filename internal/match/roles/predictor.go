// internal/match/roles/predictor.go
package roles

import (
	"sort"
	"strings"

	commonerrors "talentmatch-workers/internal/common/errors"
	"talentmatch-workers/internal/match/skills"
	"talentmatch-workers/internal/models"
)

const (
	maxAlternatives = 3

	// Score assigned to an externally suggested role that the heuristic did
	// not rank. The suggestion carries no comparable coverage numbers.
	suggestedRoleScore = 85

	// Role scores run 0-150: up to 100 from required coverage, up to 50 from
	// preferred coverage. The headroom lets preferred skills separate roles
	// with identical required coverage.
	maxRoleScore = 150
)

// Predictor scores candidates against the role archetype catalog.
type Predictor struct {
	dict *skills.Dictionary
}

func NewPredictor(dict *skills.Dictionary) *Predictor {
	return &Predictor{dict: dict}
}

// Predict ranks the catalog's archetypes for the candidate and returns the
// primary with up to two alternatives. The external suggestion list is
// optional: when the top suggestion already appears among the heuristic
// top-3 it only confirms the ranking; when it names a new role it becomes
// the primary at a fixed score; when absent it is ignored entirely.
func (p *Predictor) Predict(c *models.CandidateProfile, catalog []models.RoleArchetype, suggestion []string) (*models.RolePrediction, error) {
	scored := p.scoreAll(c, catalog)
	if len(scored) > maxAlternatives {
		scored = scored[:maxAlternatives]
	}

	if len(scored) == 0 {
		// Every archetype was filtered by its experience floor; score the
		// catalog without the floor so there is always a ranking to return.
		scored = p.scoreAllUnfiltered(c, catalog)
		if len(scored) > maxAlternatives {
			scored = scored[:maxAlternatives]
		}
	}
	if len(scored) == 0 {
		return nil, commonerrors.NewCatalogLookupError("role catalog is empty")
	}

	applied := false
	if top := topSuggestion(suggestion); top != "" {
		if !containsRole(scored, top) {
			spliced := make([]models.RoleMatch, 0, len(scored)+1)
			spliced = append(spliced, models.RoleMatch{
				RoleName:   top,
				Score:      suggestedRoleScore,
				Confidence: float64(suggestedRoleScore) / maxRoleScore,
			})
			spliced = append(spliced, scored...)
			if len(spliced) > maxAlternatives {
				spliced = spliced[:maxAlternatives]
			}
			scored = spliced
			applied = true
		}
	}

	primary := scored[0]
	if !applied {
		// The primary came from the catalog itself; failing to resolve it is
		// a data-consistency bug, not a user error.
		if _, ok := roleByName(catalog, primary.RoleName); !ok {
			return nil, commonerrors.NewRoleNotFoundError(primary.RoleName)
		}
	}

	return &models.RolePrediction{
		Primary:           primary,
		Alternatives:      scored[1:],
		SuggestionApplied: applied,
	}, nil
}

// Score computes the 0-150 match score for one archetype.
func (p *Predictor) Score(c *models.CandidateProfile, role *models.RoleArchetype) models.RoleMatch {
	names := c.SkillNames()

	matchedReq := p.countMatched(names, role.RequiredSkills)
	core := 0.0
	if len(role.RequiredSkills) > 0 {
		core = float64(matchedReq) / float64(len(role.RequiredSkills)) * 100
	}

	optional := 0.0
	if len(role.PreferredSkills) > 0 {
		matchedPref := p.countMatched(names, role.PreferredSkills)
		optional = float64(matchedPref) / float64(len(role.PreferredSkills)) * 50
	}

	total := core + optional
	return models.RoleMatch{
		RoleName:        role.Name,
		Score:           total,
		MatchedRequired: matchedReq,
		TotalRequired:   len(role.RequiredSkills),
		Confidence:      total / maxRoleScore,
	}
}

func (p *Predictor) scoreAll(c *models.CandidateProfile, catalog []models.RoleArchetype) []models.RoleMatch {
	var scored []models.RoleMatch
	for i := range catalog {
		role := &catalog[i]
		if c.ExperienceYears < role.Experience.MinYears {
			continue
		}
		scored = append(scored, p.Score(c, role))
	}
	sortMatches(scored)
	return scored
}

func (p *Predictor) scoreAllUnfiltered(c *models.CandidateProfile, catalog []models.RoleArchetype) []models.RoleMatch {
	var scored []models.RoleMatch
	for i := range catalog {
		scored = append(scored, p.Score(c, &catalog[i]))
	}
	sortMatches(scored)
	return scored
}

// sortMatches orders by score descending with a name tie-break so repeated
// predictions over the same catalog are byte-stable.
func sortMatches(m []models.RoleMatch) {
	sort.SliceStable(m, func(i, j int) bool {
		if m[i].Score != m[j].Score {
			return m[i].Score > m[j].Score
		}
		return m[i].RoleName < m[j].RoleName
	})
}

func (p *Predictor) countMatched(candidateSkills []string, roleSkills []string) int {
	matched := 0
	for _, rs := range roleSkills {
		for _, cs := range candidateSkills {
			if p.dict.Matches(rs, cs) {
				matched++
				break
			}
		}
	}
	return matched
}

func topSuggestion(suggestion []string) string {
	for _, s := range suggestion {
		if strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// containsRole checks whether a suggested role name already appears in the
// ranking, by loose substring match in either direction ("Backend Developer"
// confirms "Senior Backend Developer").
func containsRole(matches []models.RoleMatch, name string) bool {
	needle := strings.ToLower(name)
	for _, m := range matches {
		have := strings.ToLower(m.RoleName)
		if strings.Contains(have, needle) || strings.Contains(needle, have) {
			return true
		}
	}
	return false
}

func roleByName(catalog []models.RoleArchetype, name string) (*models.RoleArchetype, bool) {
	for i := range catalog {
		if strings.EqualFold(catalog[i].Name, name) {
			return &catalog[i], true
		}
	}
	return nil, false
}
