package usecase

import (
	"errors"
	"net/http"
)

// StatusError carries the HTTP status a business failure maps to,
// alongside the human-readable message surfaced in the JSON body.
type StatusError struct {
	Code int
	Msg  string
}

func (e *StatusError) Error() string {
	return e.Msg
}

func badRequest(msg string) error {
	return &StatusError{Code: http.StatusBadRequest, Msg: msg}
}

func unauthorized(msg string) error {
	return &StatusError{Code: http.StatusUnauthorized, Msg: msg}
}

func forbidden(msg string) error {
	return &StatusError{Code: http.StatusForbidden, Msg: msg}
}

func notFound(msg string) error {
	return &StatusError{Code: http.StatusNotFound, Msg: msg}
}

// Status resolves any error to the HTTP status it should surface as.
// Unrecognized errors are treated as server failures.
func Status(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code
	}
	return http.StatusInternalServerError
}
