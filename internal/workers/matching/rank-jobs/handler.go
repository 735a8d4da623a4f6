// internal/workers/matching/rank-jobs/handler.go
package rankjobs

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"talentmatch-workers/internal/catalog"
	"talentmatch-workers/internal/common/errors"
	"talentmatch-workers/internal/common/logger"
	"talentmatch-workers/internal/common/metrics"
	"talentmatch-workers/internal/match/ranking"
	"talentmatch-workers/internal/models"
	"talentmatch-workers/internal/workers/data-access/query-job-postings/queries"
)

const (
	TaskType = "rank-jobs"
)

type Handler struct {
	config  *Config
	db      *sql.DB
	redis   *redis.Client
	es      *elasticsearch.Client
	catalog *catalog.Store
	ranker  *ranking.Ranker
	logger  logger.Logger
}

func NewHandler(config *Config, db *sql.DB, rdb *redis.Client, es *elasticsearch.Client, store *catalog.Store, log logger.Logger) *Handler {
	return &Handler{
		config:  config,
		db:      db,
		redis:   rdb,
		es:      es,
		catalog: store,
		ranker:  ranking.NewRanker(store.Dictionary()),
		logger:  log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	start := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer func() {
		metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()
		metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	}()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		metrics.MatchOperations.WithLabelValues("rank_jobs", "error").Inc()
		errorCode := "RANKING_FAILED"
		if errors.IsCode(err, errors.ErrCodeInvalidInput) {
			errorCode = string(errors.ErrCodeInvalidInput)
		} else if errors.IsCode(err, errors.ErrCodeSearchQueryFailed) {
			errorCode = string(errors.ErrCodeSearchQueryFailed)
		}
		h.failJob(client, job, errorCode, err.Error())
		return
	}

	metrics.MatchOperations.WithLabelValues("rank_jobs", "success").Inc()
	if len(output.Matches) > 0 {
		metrics.MatchScores.WithLabelValues("rank_jobs").Observe(output.Matches[0].FinalScore)
	}
	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	profile, err := h.loadProfile(ctx, input)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.NewInvalidInputError("no candidate profile available")
	}

	if len(profile.Embedding) == 0 {
		h.attachEmbedding(ctx, input.CandidateID, profile)
	}

	pool, err := h.loadPool(ctx, input, profile)
	if err != nil {
		return nil, err
	}

	opts := ranking.Options{
		Limit:          input.Limit,
		MinMatchScore:  input.MinMatchScore,
		UseEmbeddings:  h.config.UseEmbeddings,
		RemoteOnly:     input.Preferences.RemoteOnly,
		EmploymentType: input.Preferences.EmploymentType,
		MinSalary:      input.Preferences.MinSalary,
	}

	matches := h.ranker.Rank(profile, pool, opts)

	rankingID := uuid.New().String()
	h.logger.Info("jobs ranked", map[string]interface{}{
		"rankingId":   rankingID,
		"candidateId": input.CandidateID,
		"poolSize":    len(pool),
		"matches":     len(matches),
	})

	return &Output{
		RankingID:     rankingID,
		CandidateID:   input.CandidateID,
		Matches:       matches,
		PoolSize:      len(pool),
		EmbeddingUsed: h.config.UseEmbeddings && len(profile.Embedding) > 0,
	}, nil
}

// loadPool prefers an inline job list; otherwise it pulls candidates from
// the search index filtered by the candidate's skills and preferences.
func (h *Handler) loadPool(ctx context.Context, input *Input, profile *models.CandidateProfile) ([]models.JobPosting, error) {
	if len(input.Jobs) > 0 {
		return input.Jobs, nil
	}
	if h.es == nil {
		return nil, errors.NewInvalidInputError("jobs list is required when no search backend is configured")
	}

	js := queries.JobSearch{
		Index:          h.config.JobsIndex,
		Skills:         profile.SkillNames(),
		Keywords:       input.Keywords,
		EmploymentType: input.Preferences.EmploymentType,
		RemoteOnly:     input.Preferences.RemoteOnly,
		MinSalary:      input.Preferences.MinSalary,
	}
	js.Pagination.Size = h.config.PoolSize

	result, err := queries.Search(ctx, h.es, js)
	if err != nil {
		return nil, errors.NewSearchQueryFailedError(h.config.JobsIndex, err)
	}
	return result.Jobs, nil
}

// attachEmbedding fills in the candidate vector written by the embedding
// pipeline. A missing or malformed vector is not an error; ranking falls
// back to the classical score.
func (h *Handler) attachEmbedding(ctx context.Context, candidateID string, profile *models.CandidateProfile) {
	if h.redis == nil || candidateID == "" {
		return
	}

	val, err := h.redis.Get(ctx, "embedding:candidate:"+candidateID).Result()
	if err != nil {
		return
	}

	var embedding []float64
	if err := json.Unmarshal([]byte(val), &embedding); err != nil {
		h.logger.Warn("discarding malformed candidate embedding", map[string]interface{}{
			"candidateId": candidateID,
			"error":       err.Error(),
		})
		return
	}
	profile.Embedding = embedding
}

// loadProfile mirrors the predict-role lookup path: inline profile, Redis
// cache, then Postgres.
func (h *Handler) loadProfile(ctx context.Context, input *Input) (*models.CandidateProfile, error) {
	if input.CandidateProfile != nil {
		return input.CandidateProfile, nil
	}
	if input.CandidateID == "" {
		return nil, errors.NewInvalidInputError("candidateId or candidateProfile is required")
	}

	cacheKey := "candidate:profile:" + input.CandidateID
	if h.redis != nil {
		if val, err := h.redis.Get(ctx, cacheKey).Result(); err == nil {
			var profile models.CandidateProfile
			if err := json.Unmarshal([]byte(val), &profile); err == nil {
				return &profile, nil
			}
		}
	}

	if h.db == nil {
		return nil, nil
	}

	row := h.db.QueryRowContext(ctx, `
		SELECT id, skills, experience_years, resume_text
		FROM candidate_profiles WHERE id = $1`, input.CandidateID)

	var (
		profile    models.CandidateProfile
		skillsJSON []byte
	)
	err := row.Scan(&profile.ID, &skillsJSON, &profile.ExperienceYears, &profile.ResumeText)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("candidate_profile", err)
	}
	if len(skillsJSON) > 0 {
		if err := json.Unmarshal(skillsJSON, &profile.Skills); err != nil {
			profile.Skills = nil
		}
	}

	if h.redis != nil {
		if data, err := json.Marshal(profile); err == nil {
			h.redis.Set(ctx, cacheKey, data, h.config.CacheTTL)
		}
	}

	return &profile, nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()

	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
