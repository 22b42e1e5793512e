package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"policyguard/internal/analysis/metrics"
	"policyguard/internal/analysis/models"
	"policyguard/internal/analysis/ports"
	dErrors "policyguard/pkg/domain-errors"
	"policyguard/pkg/requestcontext"
)

// DefaultStageTimeout bounds each pool-submitted stage.
const DefaultStageTimeout = 30 * time.Second

var tracer = otel.Tracer("policyguard/internal/analysis")

var (
	ErrDomainRequired    = dErrors.New(dErrors.CodeValidation, "Domain is required")
	ErrBrowserPage       = dErrors.New(dErrors.CodeValidation, "Cannot analyze browser-specific pages")
	ErrDocumentsNotFound = dErrors.New(dErrors.CodeNotFound, "Legal documents not found")
)

// Outcome labels for the analysis outcome counter.
const (
	outcomeSafe     = "safe"
	outcomeUnsafe   = "unsafe"
	outcomeInvalid  = "invalid"
	outcomeNotFound = "not_found"
	outcomeTimeout  = "timeout"
	outcomeError    = "error"
)

// Service runs the analysis pipeline for one domain: locate the legal
// documents, judge each of them, score the result and, when anything is
// unsafe, suggest alternatives. Every external call runs on the shared pool.
type Service struct {
	locator      ports.DocumentLocator
	scorer       ports.TrustScorer
	alternatives ports.AlternativeFinder
	security     ports.SecurityChecker
	analyzer     *Analyzer
	pool         *Pool

	stageTimeout  time.Duration
	diagnosticURL string
	metrics       *metrics.Metrics
	logger        *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithStageTimeout overrides DefaultStageTimeout.
func WithStageTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.stageTimeout = d
		}
	}
}

// WithSecurityChecker enables Diagnose against url.
func WithSecurityChecker(checker ports.SecurityChecker, url string) Option {
	return func(s *Service) {
		s.security = checker
		s.diagnosticURL = url
	}
}

func New(
	locator ports.DocumentLocator,
	evaluator ports.PolicyEvaluator,
	scorer ports.TrustScorer,
	alternatives ports.AlternativeFinder,
	pool *Pool,
	opts ...Option,
) (*Service, error) {
	if locator == nil {
		return nil, fmt.Errorf("document locator is required")
	}
	if evaluator == nil {
		return nil, fmt.Errorf("policy evaluator is required")
	}
	if scorer == nil {
		return nil, fmt.Errorf("trust scorer is required")
	}
	if alternatives == nil {
		return nil, fmt.Errorf("alternative finder is required")
	}
	if pool == nil {
		return nil, fmt.Errorf("worker pool is required")
	}

	svc := &Service{
		locator:      locator,
		scorer:       scorer,
		alternatives: alternatives,
		pool:         pool,
		stageTimeout: DefaultStageTimeout,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	svc.analyzer = NewAnalyzer(evaluator, pool, svc.stageTimeout, svc.metrics, svc.logger)

	return svc, nil
}

// Analyze runs the full pipeline. Errors carry a domain-errors code:
// validation for bad input, not_found when no documents exist, timeout when
// a mandatory stage ran out of time.
func (s *Service) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	start := time.Now()
	requestID := requestcontext.RequestID(ctx)

	ctx, span := tracer.Start(ctx, "analysis.Analyze")
	defer span.End()

	raw := strings.TrimSpace(req.Domain)
	if raw == "" {
		s.metrics.IncrementOutcome(outcomeInvalid)
		return nil, ErrDomainRequired
	}
	if IsBrowserPage(raw) {
		s.metrics.IncrementOutcome(outcomeInvalid)
		return nil, ErrBrowserPage
	}
	domain := NormalizeDomain(raw)
	span.SetAttributes(attribute.String("domain", domain))

	located := s.locate(ctx, domain)
	if located.Outcome == StageFailed {
		return nil, s.fail(ctx, span, domain, located.Err)
	}
	docs := located.Value
	if docs.Empty() {
		s.metrics.IncrementOutcome(outcomeNotFound)
		s.logger.InfoContext(ctx, "no legal documents found",
			"request_id", requestID,
			"domain", domain,
		)
		return nil, ErrDocumentsNotFound
	}

	verdicts, err := s.analyzer.AnalyzeAll(ctx, docs.URLs())
	if err != nil {
		return nil, s.fail(ctx, span, domain, err)
	}

	scored := s.score(ctx, verdicts)
	if scored.Outcome == StageFailed {
		return nil, s.fail(ctx, span, domain, scored.Err)
	}

	result := &models.AnalysisResult{
		Domain:      domain,
		Documents:   docs,
		Verdicts:    verdicts,
		TrustScore:  scored.Value,
		IsSafe:      models.AllSafe(verdicts),
		EvaluatedAt: requestcontext.Now(ctx),
	}

	if !result.IsSafe {
		alts := s.findAlternatives(ctx, BrandName(domain))
		if alts.Outcome == StageFailed {
			return nil, s.fail(ctx, span, domain, alts.Err)
		}
		result.Alternatives = alts.Value
	}

	outcome := outcomeUnsafe
	if result.IsSafe {
		outcome = outcomeSafe
	}
	s.metrics.IncrementOutcome(outcome)
	s.metrics.ObserveTrustScore(int(result.TrustScore))
	span.SetAttributes(
		attribute.Bool("is_safe", result.IsSafe),
		attribute.Int("trust_score", int(result.TrustScore)),
	)

	s.logger.InfoContext(ctx, "domain analysed",
		"request_id", requestID,
		"domain", domain,
		"documents", len(verdicts),
		"is_safe", result.IsSafe,
		"trust_score", int(result.TrustScore),
		"evaluated_at", result.EvaluatedAt,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return result, nil
}

// Diagnose runs the security check against the configured diagnostic URL.
func (s *Service) Diagnose(ctx context.Context) ([]string, error) {
	if s.security == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "security checker is not configured")
	}

	ctx, span := stageSpan(ctx, StageSecurity)
	defer span.End()

	start := time.Now()
	report, err := Submit(ctx, s.pool, s.stageTimeout, func(ctx context.Context) ([]string, error) {
		return s.security.Check(ctx, s.diagnosticURL)
	})
	s.metrics.ObserveStage(StageSecurity, time.Since(start))

	if err != nil {
		if errors.Is(err, ErrStageTimeout) {
			s.metrics.IncrementTimeout(StageSecurity)
			err = dErrors.Wrap(err, dErrors.CodeTimeout, "Security check timed out")
		}
		endSpan(span, StageFailed, err)
		return nil, err
	}
	endSpan(span, StageSucceeded, nil)
	return report, nil
}

// locate is mandatory: a timeout fails the request. A malformed locator
// reply degrades to an empty set, which the caller reports as not found.
func (s *Service) locate(ctx context.Context, domain string) StageResult[models.LegalDocumentSet] {
	ctx, span := stageSpan(ctx, StageLocate)
	defer span.End()

	start := time.Now()
	docs, err := Submit(ctx, s.pool, s.stageTimeout, func(ctx context.Context) (models.LegalDocumentSet, error) {
		return s.locator.Locate(ctx, domain)
	})
	s.metrics.ObserveStage(StageLocate, time.Since(start))

	var result StageResult[models.LegalDocumentSet]
	switch {
	case err == nil:
		result = succeeded(docs)
	case errors.Is(err, ErrStageTimeout):
		s.metrics.IncrementTimeout(StageLocate)
		result = failed[models.LegalDocumentSet](dErrors.Wrap(err, dErrors.CodeTimeout, "Legal document lookup timed out"))
	case dErrors.HasCode(err, dErrors.CodeMalformedResponse):
		s.logger.WarnContext(ctx, "locator reply unparseable",
			"request_id", requestcontext.RequestID(ctx),
			"domain", domain,
			"error", err,
		)
		result = degraded(models.LegalDocumentSet{}, err)
	default:
		result = failed[models.LegalDocumentSet](err)
	}
	endSpan(span, result.Outcome, result.Err)
	return result
}

// score degrades to UnknownTrustScore on timeout.
func (s *Service) score(ctx context.Context, verdicts []models.Verdict) StageResult[models.TrustScore] {
	ctx, span := stageSpan(ctx, StageScore)
	defer span.End()

	start := time.Now()
	score, err := Submit(ctx, s.pool, s.stageTimeout, func(ctx context.Context) (models.TrustScore, error) {
		return s.scorer.Score(ctx, verdicts)
	})
	s.metrics.ObserveStage(StageScore, time.Since(start))

	var result StageResult[models.TrustScore]
	switch {
	case err == nil:
		result = succeeded(score)
	case errors.Is(err, ErrStageTimeout):
		s.metrics.IncrementTimeout(StageScore)
		s.logger.WarnContext(ctx, "trust scoring timed out",
			"request_id", requestcontext.RequestID(ctx),
		)
		result = degraded(models.UnknownTrustScore, err)
	default:
		result = failed[models.TrustScore](err)
	}
	endSpan(span, result.Outcome, result.Err)
	return result
}

// findAlternatives runs suggestion then resolution, each bounded on its
// own. A timeout in either degrades to TimedOutAlternatives.
func (s *Service) findAlternatives(ctx context.Context, brand string) StageResult[models.AlternativeSet] {
	names, err := runStage(ctx, s, StageSuggest, func(ctx context.Context) ([]string, error) {
		return s.alternatives.SuggestSimilar(ctx, brand)
	})
	if err != nil {
		return s.alternativesFailure(ctx, StageSuggest, err)
	}

	resolved, err := runStage(ctx, s, StageResolve, func(ctx context.Context) (models.AlternativeSet, error) {
		return s.alternatives.ResolveOfficialURLs(ctx, names)
	})
	if err != nil {
		return s.alternativesFailure(ctx, StageResolve, err)
	}
	return succeeded(resolved)
}

func (s *Service) alternativesFailure(ctx context.Context, stage string, err error) StageResult[models.AlternativeSet] {
	if errors.Is(err, ErrStageTimeout) {
		s.logger.WarnContext(ctx, "alternatives timed out",
			"request_id", requestcontext.RequestID(ctx),
			"stage", stage,
		)
		return degraded(models.TimedOutAlternatives(), err)
	}
	return failed[models.AlternativeSet](err)
}

// runStage submits fn under a span with latency and timeout accounting.
func runStage[T any](ctx context.Context, s *Service, stage string, fn func(context.Context) (T, error)) (T, error) {
	ctx, span := stageSpan(ctx, stage)
	defer span.End()

	start := time.Now()
	v, err := Submit(ctx, s.pool, s.stageTimeout, fn)
	s.metrics.ObserveStage(stage, time.Since(start))

	switch {
	case err == nil:
		endSpan(span, StageSucceeded, nil)
	case errors.Is(err, ErrStageTimeout):
		s.metrics.IncrementTimeout(stage)
		endSpan(span, StageDegraded, err)
	default:
		endSpan(span, StageFailed, err)
	}
	return v, err
}

func (s *Service) fail(ctx context.Context, span trace.Span, domain string, err error) error {
	outcome := outcomeError
	if dErrors.HasCode(err, dErrors.CodeTimeout) {
		outcome = outcomeTimeout
	}
	s.metrics.IncrementOutcome(outcome)
	span.RecordError(err)
	span.SetStatus(codes.Error, outcome)

	s.logger.ErrorContext(ctx, "analysis failed",
		"request_id", requestcontext.RequestID(ctx),
		"domain", domain,
		"outcome", outcome,
		"error", err,
	)
	return err
}

func stageSpan(ctx context.Context, stage string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "analysis."+stage, trace.WithAttributes(attribute.String("stage", stage)))
}

func endSpan(span trace.Span, outcome StageOutcome, err error) {
	span.SetAttributes(attribute.String("stage.outcome", outcome.String()))
	if err != nil {
		span.RecordError(err)
	}
	if outcome == StageFailed {
		span.SetStatus(codes.Error, err.Error())
	}
}
