// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"talentmatch-workers/internal/catalog"
	"talentmatch-workers/internal/common/camunda"
	"talentmatch-workers/internal/common/config"
	"talentmatch-workers/internal/common/database"
	httpclient "talentmatch-workers/internal/common/http"
	"talentmatch-workers/internal/common/logger"
	"talentmatch-workers/internal/common/observability"

	qjp "talentmatch-workers/internal/workers/data-access/query-job-postings"
	asg "talentmatch-workers/internal/workers/matching/analyze-skill-gaps"
	ns "talentmatch-workers/internal/workers/matching/normalize-skills"
	pr "talentmatch-workers/internal/workers/matching/predict-role"
	rj "talentmatch-workers/internal/workers/matching/rank-jobs"
)

// jobPostingsMapping matches the fields queries/search.go reads out of
// _source. New fields are additive; existing indexes are never migrated here.
const jobPostingsMapping = `{
	"mappings": {
		"properties": {
			"title": {"type": "text"},
			"company": {"type": "text"},
			"required_skills": {"type": "keyword"},
			"preferred_skills": {"type": "keyword"},
			"min_years": {"type": "float"},
			"max_years": {"type": "float"},
			"salary_currency": {"type": "keyword"},
			"salary_min": {"type": "integer"},
			"salary_max": {"type": "integer"},
			"employment_type": {"type": "keyword"},
			"remote": {"type": "boolean"},
			"posted_at": {"type": "date"},
			"embedding": {"type": "float"},
			"view_count": {"type": "integer"},
			"application_count": {"type": "integer"}
		}
	}
}`

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var camundaClient *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		camundaClient, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
			ConnectionTimeout:      10 * time.Second,
			RequestTimeout:         time.Duration(cfg.Camunda.RequestTimeout) * time.Millisecond,
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zeebeClient := camundaClient.GetClient()
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return esClient.Ping()
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")

	if err := esClient.EnsureIndex(ctx, cfg.Matching.JobsIndex, jobPostingsMapping); err != nil {
		zapLog.Fatal("job postings index setup failed", zap.Error(err))
	}

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Load Role/Skill Catalog ---
	catalogStart := time.Now()
	store, err := catalog.Load(ctx, cfg.Catalog, pg.DB, redis.Client, log)
	if err != nil {
		obs.RecordCatalogLoad(ctx, time.Since(catalogStart), "error")
		zapLog.Fatal("catalog load failed", zap.Error(err))
	}
	obs.RecordCatalogLoad(ctx, time.Since(catalogStart), "ok")
	zapLog.Info("Catalog loaded", zap.Int("roles", len(store.Roles())))

	// --- Register Workers ---

	if cfg.Workers[ns.TaskType].Enabled {
		handler := ns.NewHandler(ns.LoadConfig(), store.Dictionary(), log)
		startWorker(zeebeClient, ns.TaskType, cfg.Workers[ns.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[pr.TaskType].Enabled {
		var suggestion *pr.SuggestionClient
		if cfg.Suggestion.Enabled {
			suggestion = pr.NewSuggestionClient(
				cfg.Suggestion.BaseURL,
				cfg.Suggestion.APIKey,
				httpclient.NewClient(time.Duration(cfg.Suggestion.Timeout)*time.Millisecond),
			)
		}
		prCfg := pr.LoadConfig()
		prCfg.SuggestionTimeout = time.Duration(cfg.Suggestion.Timeout) * time.Millisecond
		handler := pr.NewHandler(prCfg, pg.DB, redis.Client, store, suggestion, log)
		startWorker(zeebeClient, pr.TaskType, cfg.Workers[pr.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[asg.TaskType].Enabled {
		handler := asg.NewHandler(asg.LoadConfig(), pg.DB, redis.Client, store, log)
		startWorker(zeebeClient, asg.TaskType, cfg.Workers[asg.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[rj.TaskType].Enabled {
		rjCfg := rj.LoadConfig()
		rjCfg.UseEmbeddings = cfg.Matching.UseEmbeddings
		if cfg.Matching.JobsIndex != "" {
			rjCfg.JobsIndex = cfg.Matching.JobsIndex
		}
		handler := rj.NewHandler(rjCfg, pg.DB, redis.Client, esClient.Client, store, log)
		startWorker(zeebeClient, rj.TaskType, cfg.Workers[rj.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[qjp.TaskType].Enabled {
		qjpCfg := qjp.LoadConfig()
		if cfg.Matching.JobsIndex != "" {
			qjpCfg.DefaultIndex = cfg.Matching.JobsIndex
		}
		if timeout := cfg.Workers[qjp.TaskType].Timeout; timeout > 0 {
			qjpCfg.Timeout = time.Duration(timeout) * time.Millisecond
		}
		handler := qjp.NewHandler(qjpCfg, esClient.Client, log)
		startWorker(zeebeClient, qjp.TaskType, cfg.Workers[qjp.TaskType], handler.Handle, zapLog)
	}

	zapLog.Info("All workers registered successfully")

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")

	if err := camundaClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func startWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, handlerFunc func(worker.JobClient, entities.Job), log *zap.Logger) {
	if !wcfg.Enabled {
		log.Info("worker disabled", zap.String("taskType", taskType))
		return
	}

	client.NewJobWorker().
		JobType(taskType).
		Handler(handlerFunc).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(time.Duration(wcfg.Timeout) * time.Millisecond).
		Open()

	log.Info("worker started",
		zap.String("taskType", taskType),
		zap.Int("maxJobsActive", wcfg.MaxJobsActive),
		zap.Int("timeout_ms", wcfg.Timeout),
	)
}
