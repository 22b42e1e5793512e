package handler

import (
	"strings"

	dErrors "policyguard/pkg/domain-errors"
)

// AnalyzeRequest is the HTTP request body for POST /analyze.
type AnalyzeRequest struct {
	Domain string `json:"domain"`
}

// Validate only checks presence. Browser pages and normalisation belong to
// the service, which needs the raw value to report back.
func (r *AnalyzeRequest) Validate() error {
	if r == nil || strings.TrimSpace(r.Domain) == "" {
		return dErrors.New(dErrors.CodeValidation, "Domain is required")
	}
	return nil
}
