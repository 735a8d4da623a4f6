// internal/workers/matching/analyze-skill-gaps/handler.go
package analyzeskillgaps

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
	"talentmatch-workers/internal/match/gaps"
	"talentmatch-workers/internal/models"
)

const (
	TaskType = "analyze-skill-gaps"
)

type Handler struct {
	config   *Config
	db       *sql.DB
	redis    *redis.Client
	catalog  *catalog.Store
	analyzer *gaps.Analyzer
	logger   logger.Logger
}

func NewHandler(config *Config, db *sql.DB, rdb *redis.Client, store *catalog.Store, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		db:       db,
		redis:    rdb,
		catalog:  store,
		analyzer: gaps.NewAnalyzer(store.Dictionary()),
		logger:   log.WithFields(map[string]interface{}{"taskType": TaskType}),
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
		metrics.MatchOperations.WithLabelValues("analyze_gaps", "error").Inc()
		errorCode := "GAP_ANALYSIS_FAILED"
		if errors.IsCode(err, errors.ErrCodeInvalidInput) {
			errorCode = string(errors.ErrCodeInvalidInput)
		} else if errors.IsCode(err, errors.ErrCodeRoleNotFound) {
			errorCode = string(errors.ErrCodeRoleNotFound)
		}
		h.failJob(client, job, errorCode, err.Error())
		return
	}

	metrics.MatchOperations.WithLabelValues("analyze_gaps", "success").Inc()
	metrics.MatchScores.WithLabelValues("analyze_gaps").Observe(output.Analysis.Summary.CoreSkillMatch)
	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.TargetRole == "" {
		return nil, errors.NewInvalidInputError("targetRole is required")
	}

	profile, err := h.loadProfile(ctx, input)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.NewInvalidInputError("no candidate profile available")
	}

	role, ok := h.catalog.RoleByName(input.TargetRole)
	if !ok {
		return nil, errors.NewRoleNotFoundError(input.TargetRole)
	}

	analysis := h.analyzer.Analyze(profile, &role, h.catalog.SalaryBoosts())

	h.logger.Info("skill gaps analyzed", map[string]interface{}{
		"candidateId":    input.CandidateID,
		"targetRole":     role.Name,
		"skillsHave":     len(analysis.SkillsHave),
		"skillsMissing":  len(analysis.SkillsMissing),
		"coreSkillMatch": analysis.Summary.CoreSkillMatch,
	})

	return &Output{
		CandidateID: input.CandidateID,
		Analysis:    analysis,
	}, nil
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
