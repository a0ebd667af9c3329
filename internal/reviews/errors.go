package reviews

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound  = errors.New("review not found")
	ErrDuplicate = errors.New("review already exists")
)

// MapHTTPStatus converts domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
