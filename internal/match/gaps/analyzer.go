// internal/match/gaps/analyzer.go
package gaps

import (
	"sort"
	"strings"

	"talentmatch-workers/internal/match/proficiency"
	"talentmatch-workers/internal/match/skills"
	"talentmatch-workers/internal/models"
)

const (
	priorityRequired  = 3
	priorityPreferred = 2

	// Similarity tiers for aligned recommendations.
	similarityCanonical = 2.0
	similarityFuzzy     = 1.2
	overlapBonus        = 0.5

	maxAligned = 3
)

// Analyzer partitions a target role's skills into have/missing for a
// candidate and links every missing skill to the closest skills the
// candidate already has.
type Analyzer struct {
	dict      *skills.Dictionary
	estimator *proficiency.Estimator
}

func NewAnalyzer(dict *skills.Dictionary) *Analyzer {
	return &Analyzer{
		dict:      dict,
		estimator: proficiency.NewEstimator(dict),
	}
}

// Analyze produces the full gap report for one target role. Verified skills
// count as present even when the resume text never mentions them: passing an
// external quiz is proof of competence.
func (a *Analyzer) Analyze(c *models.CandidateProfile, targetRole *models.RoleArchetype, salaryCatalog []models.SalaryBoostSkill) *models.SkillGapResult {
	result := &models.SkillGapResult{Role: targetRole.Name}

	candidateSkills := c.Skills
	profCache := make(map[string]int)
	prof := func(skill string) int {
		key := a.dict.Canonicalize(skill)
		if p, ok := profCache[key]; ok {
			return p
		}
		p := a.estimator.Estimate(skill, c)
		profCache[key] = p
		return p
	}

	a.bucketSkills(result, candidateSkills, targetRole.RequiredSkills, models.SkillRequired, priorityRequired, salaryCatalog, prof)
	a.bucketSkills(result, candidateSkills, targetRole.PreferredSkills, models.SkillPreferred, priorityPreferred, salaryCatalog, prof)

	// Missing skills sorted by priority, name as tie-break for stable output.
	sort.SliceStable(result.SkillsMissing, func(i, j int) bool {
		if result.SkillsMissing[i].Priority != result.SkillsMissing[j].Priority {
			return result.SkillsMissing[i].Priority > result.SkillsMissing[j].Priority
		}
		return result.SkillsMissing[i].Skill < result.SkillsMissing[j].Skill
	})

	a.attachAlignments(result)
	a.summarize(result, len(targetRole.RequiredSkills))

	return result
}

func (a *Analyzer) bucketSkills(result *models.SkillGapResult, candidateSkills []models.CandidateSkill,
	roleSkills []string, reqType models.SkillRequirement, priority int, salaryCatalog []models.SalaryBoostSkill, prof func(string) int) {

	for _, roleSkill := range roleSkills {
		have, verified := a.findCandidateSkill(candidateSkills, roleSkill)
		if have {
			p := prof(roleSkill)
			result.SkillsHave = append(result.SkillsHave, models.GapSkillHave{
				Skill:       roleSkill,
				Type:        reqType,
				Proficiency: p,
				Level:       proficiency.Level(p),
				Verified:    verified,
				Priority:    priority,
			})
			continue
		}

		result.SkillsMissing = append(result.SkillsMissing, models.GapSkillMissing{
			Skill:       roleSkill,
			Type:        reqType,
			Priority:    priority,
			Reasons:     missingReasons(reqType),
			SalaryBoost: a.lookupSalaryBoost(roleSkill, reqType, salaryCatalog),
		})
	}
}

func (a *Analyzer) findCandidateSkill(candidateSkills []models.CandidateSkill, roleSkill string) (have, verified bool) {
	for _, cs := range candidateSkills {
		if a.dict.Matches(roleSkill, cs.Name) {
			have = true
			if cs.Verified {
				verified = true
			}
		}
	}
	return have, verified
}

func missingReasons(reqType models.SkillRequirement) []string {
	if reqType == models.SkillRequired {
		return []string{"core requirement for the target role"}
	}
	return []string{"differentiates candidates for the target role"}
}

// lookupSalaryBoost finds market metadata for a missing skill by exact or
// substring match on the catalog skill name, with a synthesized fallback
// when the catalog has no entry.
func (a *Analyzer) lookupSalaryBoost(skill string, reqType models.SkillRequirement, catalog []models.SalaryBoostSkill) models.SalaryBoost {
	needle := strings.ToLower(strings.TrimSpace(skill))
	for _, entry := range catalog {
		name := strings.ToLower(entry.Skill)
		if name == needle || strings.Contains(name, needle) || strings.Contains(needle, name) {
			return models.SalaryBoost{
				PercentMin: entry.PercentMin,
				PercentMax: entry.PercentMax,
				USDMin:     entry.USDMin,
				USDMax:     entry.USDMax,
				Category:   entry.Category,
			}
		}
	}

	if reqType == models.SkillRequired {
		return models.SalaryBoost{PercentMin: 15, PercentMax: 35, USDMin: 15000, USDMax: 35000, Category: "Core"}
	}
	return models.SalaryBoost{PercentMin: 8, PercentMax: 20, USDMin: 8000, USDMax: 20000, Category: "Differentiator"}
}

// attachAlignments links each missing skill to the candidate's closest "have"
// skills: the "you're missing Kubernetes but your Docker experience
// transfers" linkage.
func (a *Analyzer) attachAlignments(result *models.SkillGapResult) {
	for i := range result.SkillsMissing {
		missing := &result.SkillsMissing[i]

		var aligned []models.AlignedSkill
		for _, have := range result.SkillsHave {
			sim := a.similarity(missing.Skill, have.Skill)
			if sim <= 0 {
				continue
			}
			aligned = append(aligned, models.AlignedSkill{
				Skill:       have.Skill,
				Similarity:  sim,
				Proficiency: have.Proficiency,
			})
		}

		// Rank by similarity weighted by proficiency; +1 keeps zero-proficiency
		// skills rankable.
		sort.SliceStable(aligned, func(x, y int) bool {
			sx := aligned[x].Similarity * float64(aligned[x].Proficiency+1)
			sy := aligned[y].Similarity * float64(aligned[y].Proficiency+1)
			if sx != sy {
				return sx > sy
			}
			return aligned[x].Skill < aligned[y].Skill
		})
		if len(aligned) > maxAligned {
			aligned = aligned[:maxAligned]
		}

		missing.AlignedWith = aligned
		if len(aligned) > 0 {
			result.AlignedRecommendations = append(result.AlignedRecommendations, models.AlignedRecommendation{
				MissingSkill:  missing.Skill,
				ClosestSkills: aligned,
			})
		}
	}

}

// similarity scores how transferable a "have" skill is toward a missing one:
// 2.0 canonical equality, 1.2 fuzzy match, otherwise a Jaccard-style overlap
// of the tokenized synonym sets with a per-token bonus.
func (a *Analyzer) similarity(missing, have string) float64 {
	if a.dict.Canonicalize(missing) == a.dict.Canonicalize(have) {
		return similarityCanonical
	}
	if a.dict.Matches(missing, have) {
		return similarityFuzzy
	}

	mTokens := tokenSet(a.dict.ExpandSynonyms(missing))
	hTokens := tokenSet(a.dict.ExpandSynonyms(have))
	if len(mTokens) == 0 || len(hTokens) == 0 {
		return 0
	}

	overlap := 0
	for tok := range mTokens {
		if _, ok := hTokens[tok]; ok {
			overlap++
		}
	}
	if overlap == 0 {
		return 0
	}
	union := len(mTokens) + len(hTokens) - overlap
	return float64(overlap)/float64(union) + overlapBonus*float64(overlap)
}

// tokenSet splits every synonym into words so multi-word skills can overlap
// partially ("rest api" and "api design" share "api").
func tokenSet(synonyms []string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, syn := range synonyms {
		for _, word := range strings.Fields(syn) {
			set[word] = struct{}{}
		}
	}
	return set
}

func (a *Analyzer) summarize(result *models.SkillGapResult, totalRequired int) {
	coreHave := 0
	for _, h := range result.SkillsHave {
		if h.Type == models.SkillRequired {
			coreHave++
		}
	}
	missingCore, missingOptional := 0, 0
	for _, m := range result.SkillsMissing {
		if m.Type == models.SkillRequired {
			missingCore++
		} else {
			missingOptional++
		}
	}

	match := 0.0
	if totalRequired > 0 {
		match = float64(coreHave) / float64(totalRequired) * 100
	}

	result.Summary = models.GapSummary{
		CoreSkillsHave:        coreHave,
		CoreSkillsTotal:       totalRequired,
		CoreSkillMatch:        match,
		MissingCoreSkills:     missingCore,
		MissingOptionalSkills: missingOptional,
	}
}
