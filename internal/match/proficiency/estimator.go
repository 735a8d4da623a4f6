// internal/match/proficiency/estimator.go
package proficiency

import (
	"strings"

	"talentmatch-workers/internal/match/skills"
	"talentmatch-workers/internal/models"
)

// Component caps. The components are additive and individually capped, then
// the sum is clamped to [0,100].
const (
	mentionCap    = 20
	projectCap    = 35
	experienceCap = 21

	levelExpert       = 18
	levelIntermediate = 12
	levelBasic        = 6
	levelFallbackCap  = 10

	recencyWindow = 80
)

var (
	expertPhrases       = []string{"expert", "advanced", "senior", "lead", "architect"}
	intermediatePhrases = []string{"intermediate", "proficient", "experienced", "working knowledge"}
	basicPhrases        = []string{"learning", "exposure", "familiar", "basic"}
)

// Estimator derives a 0-100 proficiency score for a skill from a candidate's
// resume text and structured sections. It is a deterministic heuristic: the
// contract is reproducibility, not accuracy against ground truth.
type Estimator struct {
	dict *skills.Dictionary
}

func NewEstimator(dict *skills.Dictionary) *Estimator {
	return &Estimator{dict: dict}
}

// Estimate scores how strongly the candidate's materials evidence the skill.
func (e *Estimator) Estimate(skill string, c *models.CandidateProfile) int {
	tokens := e.dict.ExpandSynonyms(skill)
	if len(tokens) == 0 || c == nil {
		return 0
	}

	text := strings.ToLower(c.ResumeText)

	mentions := countMentions(text, tokens)
	score := mentionScore(mentions)
	score += levelScore(text, tokens, mentions)
	score += projectScore(c.Projects, tokens)
	score += experienceScore(c.Experience, tokens)
	score += recencyScore(text, tokens)

	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// Level maps a proficiency score to its label.
func Level(proficiency int) string {
	switch {
	case proficiency >= 70:
		return "Expert"
	case proficiency >= 40:
		return "Intermediate"
	default:
		return "Beginner"
	}
}

// countMentions prefers strict word-boundary hits across all tokens and only
// falls back to loose substring counting when the strict pass finds nothing.
func countMentions(text string, tokens []string) int {
	if text == "" {
		return 0
	}
	strict := 0
	for _, tok := range tokens {
		if n := skills.CountWordOccurrences(text, tok); n > 0 && skills.ContainsWord(text, tok) {
			strict += n
		}
	}
	if strict > 0 {
		return strict
	}
	loose := 0
	for _, tok := range tokens {
		loose += strings.Count(text, tok)
	}
	return loose
}

func mentionScore(mentions int) int {
	score := mentions * 4
	if score > mentionCap {
		return mentionCap
	}
	return score
}

// levelScore scans a window around each token occurrence for expertise
// language. The strongest phrase tier found anywhere wins.
func levelScore(text string, tokens []string, mentions int) int {
	if text == "" || mentions == 0 {
		return 0
	}

	best := -1
	for _, tok := range tokens {
		idx := skills.FirstWordIndex(text, tok)
		for idx >= 0 {
			window := windowAround(text, idx, len(tok))
			switch {
			case containsAny(window, expertPhrases):
				return levelExpert
			case containsAny(window, intermediatePhrases):
				if best < levelIntermediate {
					best = levelIntermediate
				}
			case containsAny(window, basicPhrases):
				if best < levelBasic {
					best = levelBasic
				}
			}
			next := strings.Index(text[idx+1:], tok)
			if next < 0 {
				break
			}
			idx = idx + 1 + next
		}
	}

	if best >= 0 {
		return best
	}
	fallback := mentions * 2
	if fallback > levelFallbackCap {
		return levelFallbackCap
	}
	return fallback
}

func windowAround(text string, idx, termLen int) string {
	start := idx - recencyWindow
	if start < 0 {
		start = 0
	}
	end := idx + termLen + recencyWindow
	if end > len(text) {
		end = len(text)
	}
	return text[start:end]
}

func containsAny(window string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(window, p) {
			return true
		}
	}
	return false
}

// projectScore counts distinct projects whose flattened text mentions any
// token: 15 points each, capped.
func projectScore(projects []models.ProjectEntry, tokens []string) int {
	hits := 0
	for _, p := range projects {
		flat := strings.ToLower(p.Name + " " + p.Description + " " + strings.Join(p.Technologies, " "))
		if mentionsAnyToken(flat, tokens) {
			hits++
		}
	}
	score := hits * 15
	if score > projectCap {
		return projectCap
	}
	return score
}

// experienceScore does the same over work entries: 7 points each, capped.
func experienceScore(entries []models.ExperienceEntry, tokens []string) int {
	hits := 0
	for _, e := range entries {
		flat := strings.ToLower(e.Title + " " + e.Company + " " + e.Description)
		if mentionsAnyToken(flat, tokens) {
			hits++
		}
	}
	score := hits * 7
	if score > experienceCap {
		return experienceCap
	}
	return score
}

func mentionsAnyToken(text string, tokens []string) bool {
	for _, tok := range tokens {
		if skills.CountWordOccurrences(text, tok) > 0 {
			return true
		}
	}
	return false
}

// recencyScore rewards skills that appear early in the resume: first quartile
// 10, first half 6, later 3, absent 0.
func recencyScore(text string, tokens []string) int {
	if len(text) == 0 {
		return 0
	}
	earliest := -1
	for _, tok := range tokens {
		idx := skills.FirstWordIndex(text, tok)
		if idx >= 0 && (earliest < 0 || idx < earliest) {
			earliest = idx
		}
	}
	if earliest < 0 {
		return 0
	}
	switch {
	case earliest <= len(text)/4:
		return 10
	case earliest <= len(text)/2:
		return 6
	default:
		return 3
	}
}
