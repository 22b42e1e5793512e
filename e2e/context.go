// Package e2e drives a running policyguard server through Gherkin scenarios.
package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TestContext holds the client and the last response of one scenario.
type TestContext struct {
	BaseURL string
	Client  *http.Client

	status int
	header http.Header
	body   []byte
}

func NewTestContext(baseURL string) *TestContext {
	return &TestContext{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 3 * time.Minute},
	}
}

// Reset clears the previous response between scenarios.
func (tc *TestContext) Reset() {
	tc.status = 0
	tc.header = nil
	tc.body = nil
}

func (tc *TestContext) GET(path string) error {
	return tc.do(http.MethodGet, path, nil)
}

// POST sends body as JSON. A string body is sent verbatim.
func (tc *TestContext) POST(path string, body any) error {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}
	return tc.do(http.MethodPost, path, reader)
}

func (tc *TestContext) do(method, path string, body io.Reader) error {
	req, err := http.NewRequest(method, tc.BaseURL+path, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := tc.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	tc.status = resp.StatusCode
	tc.header = resp.Header
	tc.body, err = io.ReadAll(resp.Body)
	return err
}

func (tc *TestContext) StatusCode() int {
	return tc.status
}

func (tc *TestContext) Header(key string) string {
	return tc.header.Get(key)
}

// GetResponseField returns a top-level field of a JSON object response.
func (tc *TestContext) GetResponseField(field string) (any, error) {
	var obj map[string]any
	if err := json.Unmarshal(tc.body, &obj); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w: %s", err, tc.body)
	}
	value, ok := obj[field]
	if !ok {
		return nil, fmt.Errorf("response has no %q field: %s", field, tc.body)
	}
	return value, nil
}

func (tc *TestContext) ResponseContains(field string) bool {
	_, err := tc.GetResponseField(field)
	return err == nil
}
