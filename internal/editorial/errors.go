package editorial

import (
	"errors"
	"net/http"

	"newsdesk/internal/agents"
	"newsdesk/internal/articles"
	"newsdesk/internal/interviews"
)

var (
	ErrWorkflowFailed = errors.New("editorial workflow failed")
	ErrNoVerdict      = errors.New("no verdict available for routing")
)

// MapHTTPStatus converts workflow errors to HTTP status codes,
// deferring to the domain packages for their sentinels.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, articles.ErrNotFound), errors.Is(err, interviews.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, articles.ErrAlreadyPublished):
		return http.StatusConflict
	case errors.Is(err, articles.ErrInvalidStatus):
		return http.StatusUnprocessableEntity
	case errors.Is(err, interviews.ErrNoContact):
		return http.StatusUnprocessableEntity
	case errors.Is(err, interviews.ErrDispatchFailed):
		return http.StatusBadGateway
	case errors.Is(err, agents.ErrExtractionFailed):
		return http.StatusBadGateway
	case errors.Is(err, ErrNoVerdict):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
