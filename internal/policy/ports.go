package policy

import "context"

// Conversation is a hosted assistant bound to one persona.
type Conversation interface {
	CreateSession(ctx context.Context) (string, error)
	PostTurn(ctx context.Context, sessionID, role, content string) error
	StartRun(ctx context.Context, sessionID string) (string, error)
	PollRun(ctx context.Context, sessionID, runID string) (RunStatus, error)
	LatestMessage(ctx context.Context, sessionID string) (string, error)
}

// TextExtractor returns the readable text of a document.
type TextExtractor interface {
	ExtractText(ctx context.Context, url string) (string, error)
}

// MarkupExtractor returns the security-relevant markup of a page.
type MarkupExtractor interface {
	ExtractMarkup(ctx context.Context, url string) (string, error)
}
