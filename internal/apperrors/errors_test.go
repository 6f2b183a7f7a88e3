package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"duplicate", ErrDuplicate, http.StatusConflict},
		{"not found", ErrNotFound, http.StatusNotFound},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", ErrForbidden, http.StatusForbidden},
		{"validation", ErrValidation, http.StatusBadRequest},
		{"unknown", errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := HTTPStatus(tt.err)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestHTTPStatusUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("failed to save user: %w", ErrDuplicate)
	status, msg := HTTPStatus(wrapped)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, ErrDuplicate.Error(), msg)
}

func TestHTTPStatusHidesInternalDetails(t *testing.T) {
	_, msg := HTTPStatus(errors.New("pq: connection refused"))
	assert.NotContains(t, msg, "connection refused", "Internal error text must not leak")
}
