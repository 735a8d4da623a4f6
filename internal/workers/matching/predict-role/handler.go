// internal/workers/matching/predict-role/handler.go
package predictrole

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/redis/go-redis/v9"

	"talentmatch-workers/internal/catalog"
	"talentmatch-workers/internal/common/errors"
	"talentmatch-workers/internal/common/logger"
	"talentmatch-workers/internal/common/metrics"
	"talentmatch-workers/internal/match/roles"
	"talentmatch-workers/internal/models"
)

const (
	TaskType = "predict-role"
)

type Handler struct {
	config     *Config
	db         *sql.DB
	redis      *redis.Client
	catalog    *catalog.Store
	predictor  *roles.Predictor
	suggestion *SuggestionClient
	logger     logger.Logger
}

// NewHandler wires the predictor against the catalog store. suggestion may
// be nil when the external service is disabled.
func NewHandler(config *Config, db *sql.DB, rdb *redis.Client, store *catalog.Store, suggestion *SuggestionClient, log logger.Logger) *Handler {
	return &Handler{
		config:     config,
		db:         db,
		redis:      rdb,
		catalog:    store,
		predictor:  roles.NewPredictor(store.Dictionary()),
		suggestion: suggestion,
		logger:     log.WithFields(map[string]interface{}{"taskType": TaskType}),
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
		metrics.MatchOperations.WithLabelValues("predict_role", "error").Inc()
		errorCode := "PREDICTION_FAILED"
		if errors.IsCode(err, errors.ErrCodeInvalidInput) {
			errorCode = string(errors.ErrCodeInvalidInput)
		} else if errors.IsCode(err, errors.ErrCodeRoleNotFound) {
			errorCode = string(errors.ErrCodeRoleNotFound)
		}
		h.failJob(client, job, errorCode, err.Error())
		return
	}

	metrics.MatchOperations.WithLabelValues("predict_role", "success").Inc()
	metrics.MatchScores.WithLabelValues("predict_role").Observe(output.Primary.Score)
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

	suggestion := input.SuggestedRoles
	fetched := false
	if len(suggestion) == 0 && h.suggestion != nil && h.config.SuggestionEnabled {
		sctx, cancel := context.WithTimeout(ctx, h.config.SuggestionTimeout)
		roles, err := h.suggestion.SuggestRoles(sctx, profile)
		cancel()
		if err != nil {
			// Always recovered locally: the heuristic result stands alone.
			h.logger.Warn("role suggestion unavailable", map[string]interface{}{
				"candidateId": input.CandidateID,
				"error":       err.Error(),
			})
		} else {
			suggestion = roles
			fetched = true
		}
	}

	prediction, err := h.predictor.Predict(profile, h.catalog.Roles(), suggestion)
	if err != nil {
		return nil, err
	}

	h.logger.Info("role predicted", map[string]interface{}{
		"candidateId":       input.CandidateID,
		"primary":           prediction.Primary.RoleName,
		"score":             prediction.Primary.Score,
		"alternatives":      len(prediction.Alternatives),
		"suggestionApplied": prediction.SuggestionApplied,
	})

	return &Output{
		CandidateID:       input.CandidateID,
		Primary:           prediction.Primary,
		Alternatives:      prediction.Alternatives,
		SuggestionApplied: prediction.SuggestionApplied,
		SuggestionFetched: fetched,
	}, nil
}

// loadProfile resolves the candidate: inline profile first, then the Redis
// cache, then Postgres (caching the result back).
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
	if _, err = cmd.Send(context.Background()); err != nil {
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
