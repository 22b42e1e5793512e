// Package alternatives suggests services similar to an unsafe one and
// finds their official sites.
package alternatives

import (
	"context"
	"fmt"
	"log/slog"

	"policyguard/internal/analysis/models"
	"policyguard/internal/prompts"
	platformstrings "policyguard/pkg/platform/strings"
	"policyguard/pkg/requestcontext"
)

// Completer is a single-shot text completion model.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)
}

// SearchResult is one web search hit.
type SearchResult struct {
	Title string
	URL   string
}

// Searcher runs a web search.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error)
}

const (
	// MaxSuggestions caps how many alternatives are proposed.
	MaxSuggestions = 3

	suggestMaxTokens   = 50
	suggestTemperature = 0.7
)

// Resolver implements both alternatives stages. The orchestrator bounds
// each call separately.
type Resolver struct {
	completer Completer
	searcher  Searcher
	prompts   *prompts.Catalog
	logger    *slog.Logger
}

func New(completer Completer, searcher Searcher, catalog *prompts.Catalog, logger *slog.Logger) *Resolver {
	return &Resolver{
		completer: completer,
		searcher:  searcher,
		prompts:   catalog,
		logger:    logger,
	}
}

// SuggestSimilar returns up to MaxSuggestions names similar to brand, one
// per non-empty reply line.
func (r *Resolver) SuggestSimilar(ctx context.Context, brand string) ([]string, error) {
	prompt, err := r.prompts.Render(prompts.SimilarServices, prompts.SimilarServicesData{Brand: brand})
	if err != nil {
		return nil, err
	}

	reply, err := r.completer.Complete(ctx, prompt, suggestMaxTokens, suggestTemperature)
	if err != nil {
		return nil, err
	}

	names := SplitSuggestions(reply)
	r.logger.DebugContext(ctx, "alternatives suggested",
		"request_id", requestcontext.RequestID(ctx),
		"brand", brand,
		"names", names,
	)
	return names, nil
}

// SplitSuggestions keeps the first MaxSuggestions distinct non-blank lines.
// Repeats would collapse into one entry of the resolved set.
func SplitSuggestions(reply string) []string {
	return platformstrings.Lines(reply, MaxSuggestions)
}

// ResolveOfficialURLs searches for each name's official site in turn. Names
// without a hit map to models.URLNotFound.
func (r *Resolver) ResolveOfficialURLs(ctx context.Context, names []string) (models.AlternativeSet, error) {
	resolved := make(models.AlternativeSet, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		results, err := r.searcher.Search(ctx, name+" official site", 1)
		if err != nil {
			return nil, fmt.Errorf("search %q: %w", name, err)
		}
		if len(results) == 0 || results[0].URL == "" {
			resolved[name] = models.URLNotFound
			continue
		}
		resolved[name] = results[0].URL
	}
	return resolved, nil
}
