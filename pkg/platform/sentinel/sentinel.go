package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Provider adapters return these
// (optionally wrapped) so services can decide whether to absorb or surface them.
//
// - ErrNotFound: the external service had nothing for the query
// - ErrUnavailable: the external service answered with a non-success status
// - ErrEmptyResponse: the external service answered but carried no content
var (
	ErrNotFound      = errors.New("not found")
	ErrUnavailable   = errors.New("unavailable")
	ErrEmptyResponse = errors.New("empty response")
)
