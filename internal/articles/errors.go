package articles

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound         = errors.New("article not found")
	ErrDuplicate        = errors.New("article already exists")
	ErrAlreadyPublished = errors.New("article already published")
	ErrInvalidStatus    = errors.New("article is not in a valid status for this operation")
	ErrEmptyContent     = errors.New("article title and content are required")
)

// MapHTTPStatus converts domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrAlreadyPublished):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrEmptyContent):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
