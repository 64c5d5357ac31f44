// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/stegotext/internal/errors"
)

// ErrorResponse represents a structured error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type errorMapping struct {
	status int
	code   string
	// message is returned to the client; empty means the error text itself.
	message string
}

var errorMappings = map[error]errorMapping{
	apperrors.ErrNotFound:         {http.StatusNotFound, "not_found", "The requested resource was not found"},
	apperrors.ErrConflict:         {http.StatusConflict, "conflict", "A conflict occurred with existing data"},
	apperrors.ErrInvalidInput:     {http.StatusUnprocessableEntity, "invalid_input", ""},
	apperrors.ErrTooLarge:         {http.StatusRequestEntityTooLarge, "too_large", ""},
	apperrors.ErrUnsupportedMedia: {http.StatusUnsupportedMediaType, "unsupported_media_type", ""},
}

var internalError = errorMapping{http.StatusInternalServerError, "internal_error", "An internal error occurred"}

// HandleErrorGin maps error kinds to HTTP status codes and writes a JSON error
// response. Errors without a known kind become 500 and their text is only logged.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	mapping, ok := errorMappings[apperrors.KindOf(err)]
	if !ok {
		mapping = internalError
	}

	message := mapping.message
	if message == "" {
		message = err.Error()
	}

	if logger != nil {
		level := slog.LevelWarn
		if mapping.status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c, level, "request failed",
			slog.Int("status_code", mapping.status),
			slog.String("error_code", mapping.code),
			slog.Any("error", err),
		)
	}

	c.JSON(mapping.status, ErrorResponse{Error: mapping.code, Message: message})
}

// HandleBadRequestGin writes a 400 Bad Request response for malformed JSON or parameters.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "bad_request", Message: err.Error()})
}

// HandleValidationErrorGin writes a 422 Unprocessable Entity response for validation errors.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}

	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation_error", Message: err.Error()})
}
