package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/minsu-kang/postboard_backend/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestRespondServiceError_MapsKnownErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"duplicate", fmt.Errorf("failed to save user: %w", apperrors.ErrDuplicate), http.StatusConflict},
		{"not found", fmt.Errorf("failed to get post: %w", apperrors.ErrNotFound), http.StatusNotFound},
		{"unauthorized", apperrors.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", apperrors.ErrForbidden, http.StatusForbidden},
		{"validation", apperrors.ErrValidation, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(t)

			respondServiceError(c, tt.err, "Operation failed")

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRespondServiceError_UnknownErrorDoesNotLeak(t *testing.T) {
	c, w := newTestContext(t)

	respondServiceError(c, errors.New("pq: connection refused"), "Failed to list posts")

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to list posts", resp.Error)
	assert.NotContains(t, w.Body.String(), "connection refused")
}
