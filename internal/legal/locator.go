// Package legal locates a domain's privacy policy and terms of service by
// asking a single-shot completion model for their URLs.
package legal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"policyguard/internal/analysis/models"
	"policyguard/internal/prompts"
	dErrors "policyguard/pkg/domain-errors"
	"policyguard/pkg/requestcontext"
)

// Completer is a single-shot text completion model. maxTokens <= 0 leaves
// the provider default in place.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)
}

// locatorTemperature keeps the JSON reply as deterministic as the model allows.
const locatorTemperature = 0.0

// Locator implements the document-locating stage.
type Locator struct {
	completer Completer
	prompts   *prompts.Catalog
	logger    *slog.Logger
}

// New creates a Locator.
func New(completer Completer, catalog *prompts.Catalog, logger *slog.Logger) *Locator {
	return &Locator{
		completer: completer,
		prompts:   catalog,
		logger:    logger,
	}
}

// Locate asks the model for domain's legal documents. Transport failures are
// returned as is; an unusable reply is a CodeMalformedResponse error.
func (l *Locator) Locate(ctx context.Context, domain string) (models.LegalDocumentSet, error) {
	prompt, err := l.prompts.Render(prompts.DocumentLocator, prompts.LocatorData{Domain: domain})
	if err != nil {
		return models.LegalDocumentSet{}, err
	}

	reply, err := l.completer.Complete(ctx, prompt, 0, locatorTemperature)
	if err != nil {
		return models.LegalDocumentSet{}, err
	}

	docs, err := ParseDocuments(reply)
	if err != nil {
		return models.LegalDocumentSet{}, err
	}

	l.logger.DebugContext(ctx, "legal documents located",
		"request_id", requestcontext.RequestID(ctx),
		"domain", domain,
		"privacy_policy", docs.PrivacyPolicyURL,
		"terms", docs.TermsURL,
		"direct", docs.IsDirect,
	)
	return docs, nil
}

// StripFences removes markdown code fences models like to wrap JSON in.
func StripFences(reply string) string {
	reply = strings.ReplaceAll(reply, "```json", "")
	reply = strings.ReplaceAll(reply, "```", "")
	return strings.TrimSpace(reply)
}

// ParseDocuments decodes the locator reply. Each document is a URL string
// or false; "direct" defaults to false when absent.
func ParseDocuments(reply string) (models.LegalDocumentSet, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(StripFences(reply)), &raw); err != nil {
		return models.LegalDocumentSet{}, dErrors.Wrap(err, dErrors.CodeMalformedResponse, "locator reply is not valid JSON")
	}

	var set models.LegalDocumentSet
	var err error
	if set.PrivacyPolicyURL, err = documentURL(raw, "privacy_policy"); err != nil {
		return models.LegalDocumentSet{}, err
	}
	if set.TermsURL, err = documentURL(raw, "terms_and_conditions"); err != nil {
		return models.LegalDocumentSet{}, err
	}
	if set.IsDirect, err = directFlag(raw); err != nil {
		return models.LegalDocumentSet{}, err
	}
	return set, nil
}

func directFlag(raw map[string]json.RawMessage) (bool, error) {
	field, ok := raw["direct"]
	if !ok {
		return false, dErrors.New(dErrors.CodeMalformedResponse, `locator reply is missing "direct"`)
	}
	var direct bool
	if err := json.Unmarshal(field, &direct); err != nil || string(bytes.TrimSpace(field)) == "null" {
		return false, dErrors.New(dErrors.CodeMalformedResponse, `locator reply has non-boolean "direct"`)
	}
	return direct, nil
}

func documentURL(raw map[string]json.RawMessage, key string) (string, error) {
	field, ok := raw[key]
	if !ok {
		return "", dErrors.New(dErrors.CodeMalformedResponse, fmt.Sprintf("locator reply is missing %q", key))
	}

	var value any
	if err := json.Unmarshal(field, &value); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeMalformedResponse, fmt.Sprintf("locator reply has invalid %q", key))
	}

	switch v := value.(type) {
	case nil:
		return "", nil
	case bool:
		if v {
			return "", dErrors.New(dErrors.CodeMalformedResponse, fmt.Sprintf("locator reply has true for %q", key))
		}
		return "", nil
	case string:
		url := strings.TrimSpace(v)
		if strings.EqualFold(url, "false") {
			return "", nil
		}
		return url, nil
	default:
		return "", dErrors.New(dErrors.CodeMalformedResponse, fmt.Sprintf("locator reply has unexpected type for %q", key))
	}
}
