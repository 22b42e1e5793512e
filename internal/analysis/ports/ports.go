// Package ports declares the collaborators the analysis pipeline depends on.
// Each is satisfied by a module under internal/ and mocked in tests.
package ports

import (
	"context"

	"policyguard/internal/analysis/models"
)

// DocumentLocator finds a domain's privacy policy and terms URLs.
type DocumentLocator interface {
	Locate(ctx context.Context, domain string) (models.LegalDocumentSet, error)
}

// PolicyEvaluator judges one legal document. Ordinary failures are folded
// into the returned verdict; only cancellation surfaces as an error.
type PolicyEvaluator interface {
	Evaluate(ctx context.Context, url string) (models.Verdict, error)
}

// TrustScorer turns the verdicts into a single 1-10 score.
type TrustScorer interface {
	Score(ctx context.Context, verdicts []models.Verdict) (models.TrustScore, error)
}

// AlternativeFinder proposes similar services and resolves their official sites.
type AlternativeFinder interface {
	SuggestSimilar(ctx context.Context, brand string) ([]string, error)
	ResolveOfficialURLs(ctx context.Context, names []string) (models.AlternativeSet, error)
}

// SecurityChecker reviews a page's markup for security concerns.
type SecurityChecker interface {
	Check(ctx context.Context, url string) ([]string, error)
}
