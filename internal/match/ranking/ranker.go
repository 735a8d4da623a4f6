// internal/match/ranking/ranker.go
package ranking

import (
	"math"
	"sort"
	"strings"
	"time"

	"talentmatch-workers/internal/match/skills"
	"talentmatch-workers/internal/models"
)

// Classical signal weights. Skill overlap dominates; experience, recency and
// salary refine the ordering.
const (
	weightSkills     = 0.6
	weightExperience = 0.2
	weightRecency    = 0.1
	weightSalary     = 0.1

	// Embedding blend when both vectors are usable.
	weightEmbedding = 0.7
	weightClassical = 0.3

	// Portal listings carry almost no matching signal, so the penalty has to
	// actually suppress them, not just nudge them down.
	portalPenalty = 0.5

	neutralScore = 50

	DefaultMinMatchScore = 50
	DefaultLimit         = 20
)

// Options controls one ranking pass.
type Options struct {
	Limit         int     `json:"limit"`
	MinMatchScore float64 `json:"minMatchScore"`
	UseEmbeddings bool    `json:"useEmbeddings"`
	RemoteOnly    bool    `json:"remoteOnly"`

	// EmploymentType filters to one type when set ("full-time", "contract", ...).
	EmploymentType string `json:"employmentType,omitempty"`

	// MinSalary is the candidate's minimum acceptable salary; 0 means unset.
	MinSalary int `json:"minSalary,omitempty"`

	// Now anchors the recency signal; the zero value means time.Now.
	Now time.Time `json:"-"`
}

func (o *Options) withDefaults() Options {
	out := *o
	if out.Limit <= 0 {
		out.Limit = DefaultLimit
	}
	if out.MinMatchScore <= 0 {
		out.MinMatchScore = DefaultMinMatchScore
	}
	if out.Now.IsZero() {
		out.Now = time.Now().UTC()
	}
	return out
}

// Ranker scores job postings against a candidate with a weighted blend of
// classical signals and, optionally, embedding cosine similarity.
type Ranker struct {
	dict *skills.Dictionary
}

func NewRanker(dict *skills.Dictionary) *Ranker {
	return &Ranker{dict: dict}
}

// Rank scores the pool, drops entries below the threshold, and returns up to
// Limit results sorted by final score descending (job ID ascending on ties).
func (r *Ranker) Rank(c *models.CandidateProfile, jobs []models.JobPosting, opts Options) []models.JobMatchResult {
	o := opts.withDefaults()

	results := make([]models.JobMatchResult, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		if !passesFilters(job, &o) {
			continue
		}

		res := r.scoreJob(c, job, &o)
		if res.FinalScore < o.MinMatchScore {
			continue
		}
		results = append(results, res)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].FinalScore != results[j].FinalScore {
			return results[i].FinalScore > results[j].FinalScore
		}
		return results[i].JobID < results[j].JobID
	})

	if len(results) > o.Limit {
		results = results[:o.Limit]
	}
	return results
}

func passesFilters(job *models.JobPosting, o *Options) bool {
	if o.RemoteOnly && !job.Remote {
		return false
	}
	if o.EmploymentType != "" && !strings.EqualFold(job.EmploymentType, o.EmploymentType) {
		return false
	}
	if o.MinSalary > 0 && job.Salary.Max > 0 && job.Salary.Max < o.MinSalary {
		return false
	}
	return true
}

func (r *Ranker) scoreJob(c *models.CandidateProfile, job *models.JobPosting, o *Options) models.JobMatchResult {
	matched, missing := r.partitionSkills(c.SkillNames(), job.RequiredSkills)

	skillScore := float64(neutralScore)
	if len(job.RequiredSkills) > 0 {
		skillScore = float64(len(matched)) / float64(len(job.RequiredSkills)) * 100
	}

	expScore, expMatch := experienceScore(c.ExperienceYears, job.Experience)
	recScore := recencyScore(job.PostedAt, o.Now)
	salScore, salMatch := salaryScore(job.Salary, o.MinSalary)

	classical := weightSkills*skillScore +
		weightExperience*expScore +
		weightRecency*recScore +
		weightSalary*salScore

	penalty := 1.0
	penalized := IsPortalListing(job.Title)
	if penalized {
		penalty = portalPenalty
	}

	similarity := 0.0
	final := classical * penalty
	if o.UseEmbeddings && len(c.Embedding) > 0 && len(job.Embedding) == len(c.Embedding) {
		similarity = CosineSimilarity(c.Embedding, job.Embedding)
		final = (weightEmbedding*(similarity*100) + weightClassical*classical) * penalty
	}

	return models.JobMatchResult{
		JobID:               job.ID,
		Title:               job.Title,
		Company:             job.Company,
		FinalScore:          final,
		EmbeddingSimilarity: similarity,
		ClassicalScore:      classical,
		MatchedSkills:       matched,
		MissingSkills:       missing,
		ExperienceMatch:     expMatch,
		SalaryMatch:         salMatch,
		PortalPenalized:     penalized,
	}
}

func (r *Ranker) partitionSkills(candidateSkills, required []string) (matched, missing []string) {
	for _, req := range required {
		found := false
		for _, cs := range candidateSkills {
			if r.dict.Matches(req, cs) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}
	return matched, missing
}

func experienceScore(years float64, rng models.ExperienceRange) (float64, bool) {
	if years >= rng.MinYears && (rng.MaxYears == 0 || years <= rng.MaxYears) {
		return 100, true
	}
	score := 100 - 10*math.Abs(years-rng.MinYears)
	if score < 0 {
		score = 0
	}
	return score, false
}

func recencyScore(postedAt, now time.Time) float64 {
	if postedAt.IsZero() {
		return 0
	}
	days := now.Sub(postedAt).Hours() / 24
	if days < 0 {
		days = 0
	}
	score := 100 - 2*days
	if score < 0 {
		return 0
	}
	return score
}

func salaryScore(salary models.SalaryRange, minPreference int) (float64, bool) {
	if minPreference <= 0 {
		return 100, true
	}
	if salary.Min >= minPreference {
		return 100, true
	}
	return neutralScore, false
}
