package interviews

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound       = errors.New("interview dispatch not found")
	ErrDuplicate      = errors.New("interview dispatch already recorded")
	ErrAlreadyReplied = errors.New("interview reply already processed")
	ErrNoContact      = errors.New("no contact with a usable channel")
	ErrDispatchFailed = errors.New("interview dispatch failed")
)

// MapHTTPStatus converts domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrAlreadyReplied):
		return http.StatusConflict
	case errors.Is(err, ErrNoContact):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrDispatchFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
