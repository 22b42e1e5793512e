package handler

import (
	"policyguard/internal/analysis/models"
)

const statusSuccess = "success"

// AnalyzeResponse is the HTTP response for a completed analysis. Document
// fields hold the URL, or false when the document was not located.
type AnalyzeResponse struct {
	Status             string     `json:"status"`
	Domain             string     `json:"domain"`
	PrivacyPolicy      any        `json:"privacy_policy"`
	TermsAndConditions any        `json:"terms_and_conditions"`
	IsDirect           bool       `json:"is_direct"`
	IsSafe             bool       `json:"is_safe"`
	PolicyAnalysis     [][]string `json:"policy_analysis"`
	TrustScore         int        `json:"trust_score"`
	// Alternatives is an interface so that an empty set still serialises
	// as {} for unsafe domains while safe domains omit the key.
	Alternatives any `json:"alternatives,omitempty"`
}

// ErrorResponse is the envelope for rejected or failed analyses.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Domain  string `json:"domain,omitempty"`
}

// MissingDomainResponse keeps the bare shape older extension builds expect.
type MissingDomainResponse struct {
	Error string `json:"error"`
}

// IndexResponse describes the API root.
type IndexResponse struct {
	Status    string   `json:"status"`
	Endpoints []string `json:"endpoints"`
}

// FromResult converts a domain AnalysisResult to an HTTP response.
func FromResult(result *models.AnalysisResult) *AnalyzeResponse {
	verdicts := make([][]string, len(result.Verdicts))
	for i, v := range result.Verdicts {
		verdicts[i] = []string(v)
	}

	resp := &AnalyzeResponse{
		Status:             statusSuccess,
		Domain:             result.Domain,
		PrivacyPolicy:      documentField(result.Documents.PrivacyPolicyURL),
		TermsAndConditions: documentField(result.Documents.TermsURL),
		IsDirect:           result.Documents.IsDirect,
		IsSafe:             result.IsSafe,
		PolicyAnalysis:     verdicts,
		TrustScore:         int(result.TrustScore),
	}
	if !result.IsSafe {
		alts := map[string]string(result.Alternatives)
		if alts == nil {
			alts = map[string]string{}
		}
		resp.Alternatives = alts
	}
	return resp
}

func documentField(url string) any {
	if url == "" {
		return false
	}
	return url
}
