// Package models holds the per-request entities of a legal-document analysis.
// Every value here is built fresh for one request and discarded afterwards.
package models

import "time"

// SafeMarker is the exact status line the policy persona emits for a safe document.
const SafeMarker = "Policy Safe!"

// URLNotFound is recorded for an alternative whose official site search came back empty.
const URLNotFound = "URL not found"

// AlternativesTimedOut is reported in place of alternatives when suggestion or resolution times out.
const AlternativesTimedOut = "Retrieving alternatives timed out"

// AnalysisRequest is the inbound request as sent by the browser extension.
type AnalysisRequest struct {
	Domain string
}

// LegalDocumentSet holds the located legal documents. An empty URL means
// "not found", not an error.
type LegalDocumentSet struct {
	PrivacyPolicyURL string
	TermsURL         string
	IsDirect         bool
}

// Empty reports whether neither document was located.
func (s LegalDocumentSet) Empty() bool {
	return s.PrivacyPolicyURL == "" && s.TermsURL == ""
}

// URLs returns the located documents in analysis order: privacy policy first, then terms.
func (s LegalDocumentSet) URLs() []string {
	urls := make([]string, 0, 2)
	if s.PrivacyPolicyURL != "" {
		urls = append(urls, s.PrivacyPolicyURL)
	}
	if s.TermsURL != "" {
		urls = append(urls, s.TermsURL)
	}
	return urls
}

// Verdict is the outcome for one document: [status] when safe,
// [status, elaboration] otherwise.
type Verdict []string

// Status returns the status line, or "" for an empty verdict.
func (v Verdict) Status() string {
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

// IsSafe is strict equality against SafeMarker. Any other text, including
// ambiguous model output, counts as unsafe.
func (v Verdict) IsSafe() bool {
	return v.Status() == SafeMarker
}

// AllSafe is the conjunction of every verdict's safety.
func AllSafe(verdicts []Verdict) bool {
	for _, v := range verdicts {
		if !v.IsSafe() {
			return false
		}
	}
	return true
}

// TrustScore is an integer in [1,10] or UnknownTrustScore.
type TrustScore int

// UnknownTrustScore means the score could not be determined.
const UnknownTrustScore TrustScore = -1

// NewTrustScore clamps anything outside [1,10] to UnknownTrustScore.
func NewTrustScore(n int) TrustScore {
	if n < 1 || n > 10 {
		return UnknownTrustScore
	}
	return TrustScore(n)
}

// Known reports whether the score was determined.
func (t TrustScore) Known() bool {
	return t >= 1 && t <= 10
}

// AlternativeSet maps an alternative's name to its official URL or URLNotFound.
type AlternativeSet map[string]string

// TimedOutAlternatives is the degraded value reported when an alternatives stage times out.
func TimedOutAlternatives() AlternativeSet {
	return AlternativeSet{"error": AlternativesTimedOut}
}

// AnalysisResult is the response root for one analysed domain.
type AnalysisResult struct {
	Domain       string
	Documents    LegalDocumentSet
	Verdicts     []Verdict
	TrustScore   TrustScore
	IsSafe       bool
	Alternatives AlternativeSet // nil when IsSafe
	EvaluatedAt  time.Time
}
