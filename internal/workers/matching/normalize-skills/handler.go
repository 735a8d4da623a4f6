// internal/workers/matching/normalize-skills/handler.go
package normalizeskills

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"talentmatch-workers/internal/common/logger"
	"talentmatch-workers/internal/common/metrics"
	"talentmatch-workers/internal/common/validation"
	"talentmatch-workers/internal/match/skills"
	"talentmatch-workers/internal/models"
)

const (
	TaskType = "normalize-skills"
)

type Handler struct {
	config *Config
	dict   *skills.Dictionary
	logger logger.Logger
}

func NewHandler(config *Config, dict *skills.Dictionary, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		dict:   dict,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
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

	var rawVars map[string]interface{}
	if err := json.Unmarshal([]byte(job.Variables), &rawVars); err != nil {
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse variables: %v", err))
		return
	}
	if result := validation.ValidateInput(rawVars, GetInputSchema()); !result.Valid {
		h.failJob(client, job, "INVALID_INPUT", strings.Join(result.GetErrorMessages(), "; "))
		return
	}

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.failJob(client, job, "INVALID_INPUT", err.Error())
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	if len(input.Skills) > h.config.MaxSkills {
		return nil, fmt.Errorf("too many skill entries: %d (max %d)", len(input.Skills), h.config.MaxSkills)
	}

	// One entry per canonical token. On collision, keep whichever entry
	// carries more evidence: verified beats unverified, then the higher
	// verification score.
	byCanonical := make(map[string]models.CandidateSkill)
	order := make([]string, 0, len(input.Skills))
	dropped := 0

	for _, raw := range input.Skills {
		skill, err := decodeSkill(raw)
		if err != nil {
			dropped++
			continue
		}
		canonical := h.dict.Canonicalize(skill.Name)
		if canonical == "" {
			dropped++
			continue
		}
		skill.Name = canonical

		existing, seen := byCanonical[canonical]
		if !seen {
			byCanonical[canonical] = skill
			order = append(order, canonical)
			continue
		}
		if betterEvidence(skill, existing) {
			byCanonical[canonical] = skill
		}
	}

	sort.Strings(order)

	normalized := make([]models.CandidateSkill, 0, len(order))
	expansions := make(map[string][]string, len(order))
	for _, canonical := range order {
		normalized = append(normalized, byCanonical[canonical])
		expansions[canonical] = h.dict.ExpandSynonyms(canonical)
	}

	h.logger.Info("skills normalized", map[string]interface{}{
		"candidateId": input.CandidateID,
		"input":       len(input.Skills),
		"output":      len(normalized),
		"dropped":     dropped,
	})

	return &Output{
		CandidateID:      input.CandidateID,
		NormalizedSkills: normalized,
		Expansions:       expansions,
		DroppedCount:     dropped,
	}, nil
}

func betterEvidence(a, b models.CandidateSkill) bool {
	if a.Verified != b.Verified {
		return a.Verified
	}
	return a.VerificationScore > b.VerificationScore
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
