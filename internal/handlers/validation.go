package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/minsu-kang/postboard_backend/internal/apperrors"
	"github.com/minsu-kang/postboard_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldIssue describes a single failed validation rule on a request field.
type FieldIssue struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldIssue `json:"fields,omitempty"`
}

// respondServiceError maps a service error onto its status code via
// apperrors.HTTPStatus. Unrecognized errors are logged and answered with
// failureMsg so internals never leak to the client.
func respondServiceError(c *gin.Context, err error, failureMsg string) {
	status, msg := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error(failureMsg, slog.String("error", err.Error()))
		msg = failureMsg
	}
	c.JSON(status, ErrorResponse{Error: msg})
}

// respondBindingError renders a 400 with structured field-level issues when
// the binding failure came from validator, or a plain message otherwise.
func respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		issues := make([]FieldIssue, len(verrs))
		for i, fe := range verrs {
			issues[i] = FieldIssue{Field: fe.Field(), Rule: fe.Tag()}
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Validation failed", Fields: issues})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
}
