package testutil

import (
	"net/http"
	"time"

	"policyguard/pkg/requestcontext"
)

// WithRequestID attaches a request ID, as the requestid middleware would.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}

// WithClient attaches the client IP and browser family the metadata
// middleware derives from the connection and User-Agent.
func WithClient(req *http.Request, ip, browser string) *http.Request {
	return req.WithContext(requestcontext.WithClientMetadata(req.Context(), ip, browser))
}

// WithRequestTime pins the request-scoped clock.
func WithRequestTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), t))
}
