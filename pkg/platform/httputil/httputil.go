// Package httputil holds the JSON plumbing shared by HTTP handlers.
package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	dErrors "policyguard/pkg/domain-errors"
)

// maxBodyBytes caps request bodies; the API only accepts a domain name.
const maxBodyBytes = 64 << 10

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps a coded error onto the generic error envelope. Internal
// failures carry the raw message, matching what the extension displays.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	WriteJSON(w, dErrors.HTTPStatus(code), map[string]string{
		"status":  "error",
		"message": messageOf(err),
	})
}

func messageOf(err error) string {
	var de *dErrors.Error
	if errors.As(err, &de) && de.Err == nil {
		return de.Message
	}
	return err.Error()
}

// DecodeJSON decodes a bounded request body into T.
func DecodeJSON[T any](r *http.Request) (*T, error) {
	var out T
	body := io.LimitReader(r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid JSON body")
	}
	return &out, nil
}
