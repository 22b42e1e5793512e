package analysis

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"policyguard/internal/analysis/metrics"
	"policyguard/internal/analysis/models"
	"policyguard/internal/analysis/ports"
	dErrors "policyguard/pkg/domain-errors"
	"policyguard/pkg/requestcontext"
)

// Analyzer fans document evaluations out over the shared pool.
type Analyzer struct {
	evaluator ports.PolicyEvaluator
	pool      *Pool
	timeout   time.Duration
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewAnalyzer wires an evaluator to the pool with a per-document timeout.
func NewAnalyzer(evaluator ports.PolicyEvaluator, pool *Pool, timeout time.Duration, m *metrics.Metrics, logger *slog.Logger) *Analyzer {
	return &Analyzer{
		evaluator: evaluator,
		pool:      pool,
		timeout:   timeout,
		metrics:   m,
		logger:    logger,
	}
}

// AnalyzeAll evaluates every URL concurrently and returns the verdicts in
// input order. Results are all-or-nothing: if any evaluation times out the
// whole call fails with CodeTimeout and no partial verdicts are returned.
func (a *Analyzer) AnalyzeAll(ctx context.Context, urls []string) ([]models.Verdict, error) {
	verdicts := make([]models.Verdict, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	for i, url := range urls {
		g.Go(func() error {
			start := time.Now()
			verdict, err := Submit(gctx, a.pool, a.timeout, func(ctx context.Context) (models.Verdict, error) {
				return a.evaluator.Evaluate(ctx, url)
			})
			a.metrics.ObserveStage(StageEvaluate, time.Since(start))

			if err != nil {
				if errors.Is(err, ErrStageTimeout) {
					a.metrics.IncrementTimeout(StageEvaluate)
					a.logger.WarnContext(ctx, "policy evaluation timed out",
						"request_id", requestcontext.RequestID(ctx),
						"url", url,
					)
					return dErrors.Wrap(err, dErrors.CodeTimeout, "Policy analysis timed out")
				}
				return err
			}
			verdicts[i] = verdict
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return verdicts, nil
}
