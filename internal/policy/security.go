package policy

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"policyguard/internal/prompts"
	"policyguard/pkg/requestcontext"
)

// SecuritySafeMarker is the exact reply the security persona gives a clean page.
const SecuritySafeMarker = "Security Safe!"

// MaxMarkupChars caps the markup sent as the first turn.
const MaxMarkupChars = 60000

// ErrSecurityRunFailed is returned when any security run fails.
var ErrSecurityRunFailed = errors.New("security assistant run failed")

// SecurityChecker asks the security persona about a page's markup.
type SecurityChecker struct {
	extractor    MarkupExtractor
	conv         Conversation
	prompts      *prompts.Catalog
	pollInterval time.Duration
	logger       *slog.Logger
}

func NewSecurityChecker(extractor MarkupExtractor, conv Conversation, catalog *prompts.Catalog, pollInterval time.Duration, logger *slog.Logger) *SecurityChecker {
	return &SecurityChecker{
		extractor:    extractor,
		conv:         conv,
		prompts:      catalog,
		pollInterval: pollInterval,
		logger:       logger,
	}
}

// Check returns [verdict, elaboration, safety]. A clean page short-circuits
// to [SecuritySafeMarker, "", "Safe"].
func (c *SecurityChecker) Check(ctx context.Context, url string) ([]string, error) {
	markup, err := c.extractor.ExtractMarkup(ctx, url)
	if err != nil {
		return nil, err
	}
	markup = truncateRunes(markup, MaxMarkupChars)

	sessionID, err := c.conv.CreateSession(ctx)
	if err != nil {
		return nil, err
	}
	r := &runner{conv: c.conv, sessionID: sessionID, pollInterval: c.pollInterval, machine: newMachine()}

	turns := []string{
		markup,
		c.prompts.MustRender(prompts.SecurityElaborate),
		c.prompts.MustRender(prompts.SecuritySafety),
	}
	report := make([]string, 0, len(turns))
	for _, turn := range turns {
		reply, err := r.cycle(ctx, turn)
		if err != nil {
			return nil, err
		}
		if r.failed() {
			return nil, ErrSecurityRunFailed
		}
		report = append(report, reply)

		if len(report) == 1 && reply == SecuritySafeMarker {
			report = append(report, "", "Safe")
			break
		}
	}

	c.logger.InfoContext(ctx, "security check finished",
		"request_id", requestcontext.RequestID(ctx),
		"url", url,
		"safe", report[0] == SecuritySafeMarker,
	)
	return report, nil
}
