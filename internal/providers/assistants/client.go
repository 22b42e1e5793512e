// Package assistants adapts the hosted Assistants API (threads, messages and
// runs) to policy.Conversation, bound to a single assistant persona.
package assistants

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"policyguard/internal/policy"
	"policyguard/pkg/platform/sentinel"
)

const defaultBaseURL = "https://api.openai.com/v1/"

var errMissingAPIKey = errors.New("missing API key for assistants provider")

type Config struct {
	APIKey      string
	BaseURL     string
	AssistantID string
	// HTTPClient overrides the default client. Request deadlines come from
	// the caller's context either way.
	HTTPClient *http.Client
}

// Client implements policy.Conversation.
type Client struct {
	api         openai.Client
	assistantID string
	hasKey      bool
}

// New builds a client that never retries: every retry policy lives with
// the caller's stage timeout.
func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 35 * time.Second}
	}
	return &Client{
		api: openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(baseURL),
			option.WithHTTPClient(httpClient),
			option.WithMaxRetries(0),
		),
		assistantID: cfg.AssistantID,
		hasKey:      cfg.APIKey != "",
	}
}

// CreateSession opens a new thread.
func (c *Client) CreateSession(ctx context.Context) (string, error) {
	if !c.hasKey {
		return "", errMissingAPIKey
	}
	thread, err := c.api.Beta.Threads.New(ctx, openai.BetaThreadNewParams{})
	if err != nil {
		return "", wrap("create thread", err)
	}
	if thread.ID == "" {
		return "", fmt.Errorf("create thread: %w", sentinel.ErrEmptyResponse)
	}
	return thread.ID, nil
}

// PostTurn appends a message to the thread.
func (c *Client) PostTurn(ctx context.Context, sessionID, role, content string) error {
	if !c.hasKey {
		return errMissingAPIKey
	}
	_, err := c.api.Beta.Threads.Messages.New(ctx, sessionID, openai.BetaThreadMessageNewParams{
		Role: openai.BetaThreadMessageNewParamsRole(role),
		Content: openai.BetaThreadMessageNewParamsContentUnion{
			OfString: openai.String(content),
		},
	})
	if err != nil {
		return wrap("post message", err)
	}
	return nil
}

// StartRun runs the configured assistant on the thread.
func (c *Client) StartRun(ctx context.Context, sessionID string) (string, error) {
	if !c.hasKey {
		return "", errMissingAPIKey
	}
	run, err := c.api.Beta.Threads.Runs.New(ctx, sessionID, openai.BetaThreadRunNewParams{
		AssistantID: c.assistantID,
	})
	if err != nil {
		return "", wrap("start run", err)
	}
	if run.ID == "" {
		return "", fmt.Errorf("start run: %w", sentinel.ErrEmptyResponse)
	}
	return run.ID, nil
}

// PollRun reads the run status once.
func (c *Client) PollRun(ctx context.Context, sessionID, runID string) (policy.RunStatus, error) {
	if !c.hasKey {
		return "", errMissingAPIKey
	}
	run, err := c.api.Beta.Threads.Runs.Get(ctx, sessionID, runID)
	if err != nil {
		return "", wrap("poll run", err)
	}
	return MapRunStatus(run.Status), nil
}

// MapRunStatus folds the API's run states onto the three the policy engine
// understands. Every terminal state other than completed counts as failed;
// requires_action does too since the personas have no tools.
func MapRunStatus(status openai.RunStatus) policy.RunStatus {
	switch status {
	case openai.RunStatusCompleted:
		return policy.RunCompleted
	case openai.RunStatusFailed, openai.RunStatusCancelled, openai.RunStatusExpired,
		openai.RunStatusIncomplete, openai.RunStatusRequiresAction:
		return policy.RunFailed
	default:
		return policy.RunPending
	}
}

// LatestMessage returns the text of the newest message on the thread.
func (c *Client) LatestMessage(ctx context.Context, sessionID string) (string, error) {
	if !c.hasKey {
		return "", errMissingAPIKey
	}
	page, err := c.api.Beta.Threads.Messages.List(ctx, sessionID, openai.BetaThreadMessageListParams{
		Order: openai.BetaThreadMessageListParamsOrderDesc,
		Limit: openai.Int(1),
	})
	if err != nil {
		return "", wrap("list messages", err)
	}
	if len(page.Data) == 0 {
		return "", fmt.Errorf("list messages: %w", sentinel.ErrEmptyResponse)
	}
	for _, part := range page.Data[0].Content {
		if part.Type == "text" {
			return part.Text.Value, nil
		}
	}
	return "", fmt.Errorf("latest message has no text: %w", sentinel.ErrEmptyResponse)
}

// wrap marks API-level failures as the provider being unavailable. Transport
// and context errors keep their identity.
func wrap(op string, err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s: %w: %w", op, err, sentinel.ErrUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}
