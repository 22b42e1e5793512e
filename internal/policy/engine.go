package policy

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"policyguard/internal/analysis/models"
	"policyguard/internal/prompts"
	"policyguard/pkg/requestcontext"
)

const (
	// MaxDocumentChars caps the text sent as the first turn.
	MaxDocumentChars = 8000
	// minDocumentChars is the shortest text worth sending.
	minDocumentChars = 10
)

var (
	ExtractionFailedVerdict = models.Verdict{"Privacy Concerns Detected", "Could not extract meaningful text from the privacy policy."}
	RunFailedVerdict        = models.Verdict{"Analysis failed", "Could not analyze the policy"}
)

// ElaborationFallback replaces the elaboration when the follow-up run fails.
const ElaborationFallback = "Could not elaborate on the analysis"

const errorVerdictStatus = "Error analyzing policy"

// Engine evaluates one legal document per call through a fresh session
// with the policy assistant.
type Engine struct {
	extractor    TextExtractor
	conv         Conversation
	prompts      *prompts.Catalog
	pollInterval time.Duration
	logger       *slog.Logger
}

type Option func(*Engine)

// WithPollInterval spaces run status polls. Zero polls back to back.
func WithPollInterval(d time.Duration) Option {
	return func(e *Engine) {
		e.pollInterval = d
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func NewEngine(extractor TextExtractor, conv Conversation, catalog *prompts.Catalog, opts ...Option) *Engine {
	e := &Engine{
		extractor: extractor,
		conv:      conv,
		prompts:   catalog,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate returns the verdict for the document at url. Failures other than
// ctx ending are folded into the verdict; only ctx errors are returned.
func (e *Engine) Evaluate(ctx context.Context, url string) (models.Verdict, error) {
	m := newMachine()
	defer func() {
		e.logger.DebugContext(ctx, "policy session finished",
			"request_id", requestcontext.RequestID(ctx),
			"url", url,
			"states", m.trail,
		)
	}()

	text, err := e.extractor.ExtractText(ctx, url)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil || utf8.RuneCountInString(text) < minDocumentChars {
		if err != nil {
			e.logger.WarnContext(ctx, "document text extraction failed",
				"request_id", requestcontext.RequestID(ctx),
				"url", url,
				"error", err,
			)
		}
		_ = m.to(StateExtractionFailed)
		return ExtractionFailedVerdict, nil
	}
	text = truncateRunes(text, MaxDocumentChars)

	sessionID, err := e.conv.CreateSession(ctx)
	if err != nil {
		return e.absorb(ctx, url, err)
	}
	r := &runner{conv: e.conv, sessionID: sessionID, pollInterval: e.pollInterval, machine: m}

	reply, err := r.cycle(ctx, text)
	if err != nil {
		return e.absorb(ctx, url, err)
	}
	if r.failed() {
		return RunFailedVerdict, nil
	}

	verdict := models.Verdict{reply}
	if verdict.IsSafe() {
		return verdict, nil
	}

	elaboration, err := r.cycle(ctx, e.prompts.MustRender(prompts.PolicyElaborate))
	if err != nil {
		return e.absorb(ctx, url, err)
	}
	if r.failed() {
		elaboration = ElaborationFallback
	}
	return append(verdict, elaboration), nil
}

// absorb turns an unexpected failure into an error verdict unless ctx has
// ended, in which case the caller's deadline wins.
func (e *Engine) absorb(ctx context.Context, url string, err error) (models.Verdict, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	e.logger.ErrorContext(ctx, "policy evaluation failed",
		"request_id", requestcontext.RequestID(ctx),
		"url", url,
		"error", err,
	)
	return models.Verdict{errorVerdictStatus, err.Error()}, nil
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
