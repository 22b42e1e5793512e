package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"policyguard/internal/alternatives"
	"policyguard/internal/analysis"
	"policyguard/internal/analysis/handler"
	analysismetrics "policyguard/internal/analysis/metrics"
	"policyguard/internal/legal"
	"policyguard/internal/platform/config"
	"policyguard/internal/platform/httpserver"
	"policyguard/internal/platform/logger"
	httpmetrics "policyguard/internal/platform/metrics"
	"policyguard/internal/policy"
	"policyguard/internal/prompts"
	"policyguard/internal/providers/assistants"
	"policyguard/internal/providers/completion"
	"policyguard/internal/providers/extract"
	"policyguard/internal/providers/search"
	"policyguard/internal/scoring"
	"policyguard/pkg/platform/middleware/cors"
	"policyguard/pkg/platform/middleware/metadata"
	"policyguard/pkg/platform/middleware/requestid"
	"policyguard/pkg/platform/middleware/requesttime"
)

// pipelineStages is the longest chain of sequential bounded stages in one
// analysis: locate, evaluate, score, suggest, resolve.
const pipelineStages = 5

// main wires the providers into the analysis service, exposes the HTTP
// router, and keeps the server lifecycle small.
func main() {
	// A missing .env is fine; the process environment still applies.
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New(cfg.Server.LogFormat, cfg.Server.LogLevel)

	router, err := buildRouter(context.Background(), cfg, log)
	if err != nil {
		log.Error("failed to wire application", "error", err)
		os.Exit(1)
	}

	writeTimeout := cfg.Pipeline.StageTimeout*pipelineStages + 10*time.Second
	srv := httpserver.New(cfg.Server.Addr, router, writeTimeout)

	log.Info("starting policyguard", "addr", cfg.Server.Addr, "workers", cfg.Pipeline.WorkerPoolSize)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func buildRouter(ctx context.Context, cfg config.Config, log *slog.Logger) (http.Handler, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	stageMetrics := analysismetrics.New(reg)
	requestMetrics := httpmetrics.New(reg)

	svc, err := buildService(ctx, cfg, stageMetrics, log)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Middleware)
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(requestMetrics.Middleware)

	handler.New(svc, log).Register(r)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	return r, nil
}

func buildService(ctx context.Context, cfg config.Config, m *analysismetrics.Metrics, log *slog.Logger) (*analysis.Service, error) {
	catalog := prompts.Default()

	locatorLLM, err := completion.New(ctx, completion.Config{
		APIKey:  cfg.Locator.APIKey,
		BaseURL: cfg.Locator.BaseURL,
		Model:   cfg.Locator.Model,
	})
	if err != nil {
		return nil, err
	}
	cohereLLM, err := completion.New(ctx, completion.Config{
		APIKey:  cfg.Cohere.APIKey,
		BaseURL: cfg.Cohere.BaseURL,
		Model:   cfg.Cohere.Model,
	})
	if err != nil {
		return nil, err
	}

	policyAssistant := assistants.New(assistants.Config{
		APIKey:      cfg.Assistants.APIKey,
		BaseURL:     cfg.Assistants.BaseURL,
		AssistantID: cfg.Assistants.PolicyAssistantID,
	})
	securityAssistant := assistants.New(assistants.Config{
		APIKey:      cfg.Assistants.APIKey,
		BaseURL:     cfg.Assistants.BaseURL,
		AssistantID: cfg.Assistants.SecurityAssistantID,
	})

	pages := extract.New(extract.Config{Timeout: cfg.Pipeline.FetchTimeout})
	searcher := search.New(search.Config{
		BaseURL:    cfg.Pipeline.SearchBaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Pipeline.FetchTimeout},
	})

	engine := policy.NewEngine(pages, policyAssistant, catalog,
		policy.WithPollInterval(cfg.Assistants.PollInterval),
		policy.WithLogger(log),
	)
	security := policy.NewSecurityChecker(pages, securityAssistant, catalog, cfg.Assistants.PollInterval, log)

	return analysis.New(
		legal.New(locatorLLM, catalog, log),
		engine,
		scoring.New(cohereLLM, catalog, log),
		alternatives.New(cohereLLM, searcher, catalog, log),
		analysis.NewPool(cfg.Pipeline.WorkerPoolSize, m),
		analysis.WithLogger(log),
		analysis.WithMetrics(m),
		analysis.WithStageTimeout(cfg.Pipeline.StageTimeout),
		analysis.WithSecurityChecker(security, cfg.Pipeline.DiagnosticURL),
	)
}
