package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a failed authentication: wrong password, missing,
// expired or mismatched token.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but not allowed to act on
// the resource.
var ErrForbidden = errors.New("forbidden")

// HTTPStatus maps an application error to the HTTP status code and message the
// boundary layer should respond with. Unrecognized errors map to 500 without
// exposing their internals.
func HTTPStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict, ErrDuplicate.Error()
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, ErrNotFound.Error()
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, ErrUnauthorized.Error()
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, ErrForbidden.Error()
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest, ErrValidation.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
