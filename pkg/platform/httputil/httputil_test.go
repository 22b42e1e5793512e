package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dErrors "policyguard/pkg/domain-errors"
)

func TestWriteError(t *testing.T) {
	t.Run("internal error carries raw message", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, errors.New("connection reset"))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["status"] != "error" {
			t.Fatalf("expected status error, got %q", body["status"])
		}
		if body["message"] != "connection reset" {
			t.Fatalf("expected raw message, got %q", body["message"])
		}
	})

	t.Run("timeout maps to gateway timeout", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeTimeout, "Policy analysis timed out"))

		if w.Code != http.StatusGatewayTimeout {
			t.Fatalf("expected status %d, got %d", http.StatusGatewayTimeout, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["message"] != "Policy analysis timed out" {
			t.Fatalf("expected message without cause, got %q", body["message"])
		}
	})
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Domain string `json:"domain"`
	}

	t.Run("valid body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"domain":"example.com"}`))
		got, err := DecodeJSON[payload](r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Domain != "example.com" {
			t.Fatalf("expected example.com, got %q", got.Domain)
		}
	})

	t.Run("invalid body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not json"))
		_, err := DecodeJSON[payload](r)
		if !dErrors.HasCode(err, dErrors.CodeBadRequest) {
			t.Fatalf("expected bad_request, got %v", err)
		}
	})
}
