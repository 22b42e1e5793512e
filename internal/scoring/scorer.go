// Package scoring reduces a set of policy verdicts to a 1-10 trust score.
package scoring

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"policyguard/internal/analysis/models"
	"policyguard/internal/prompts"
	"policyguard/pkg/requestcontext"
)

// Completer is a single-shot text completion model.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)
}

const (
	scoreMaxTokens   = 2
	scoreTemperature = 0.0
)

// Scorer asks a completion model for the score.
type Scorer struct {
	completer Completer
	prompts   *prompts.Catalog
	logger    *slog.Logger
}

func New(completer Completer, catalog *prompts.Catalog, logger *slog.Logger) *Scorer {
	return &Scorer{
		completer: completer,
		prompts:   catalog,
		logger:    logger,
	}
}

// Score returns the model's score, or models.UnknownTrustScore when the
// reply is not an integer in [1,10]. Only transport errors are returned.
func (s *Scorer) Score(ctx context.Context, verdicts []models.Verdict) (models.TrustScore, error) {
	prompt, err := s.prompts.Render(prompts.TrustScore, prompts.TrustScoreData{
		Findings:   describe(verdicts),
		SafeMarker: models.SafeMarker,
	})
	if err != nil {
		return models.UnknownTrustScore, err
	}

	reply, err := s.completer.Complete(ctx, prompt, scoreMaxTokens, scoreTemperature)
	if err != nil {
		return models.UnknownTrustScore, err
	}

	score := Parse(reply)
	if !score.Known() {
		s.logger.WarnContext(ctx, "unusable trust score reply",
			"request_id", requestcontext.RequestID(ctx),
			"reply", reply,
		)
	}
	return score, nil
}

// Parse reads a trimmed integer reply.
func Parse(reply string) models.TrustScore {
	n, err := strconv.Atoi(strings.TrimSpace(reply))
	if err != nil {
		return models.UnknownTrustScore
	}
	return models.NewTrustScore(n)
}

// describe renders the verdicts as a bracketed list, one entry per document.
func describe(verdicts []models.Verdict) string {
	parts := make([]string, len(verdicts))
	for i, v := range verdicts {
		parts[i] = "[" + strings.Join(v, " | ") + "]"
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
