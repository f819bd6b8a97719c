// Package response renders API errors as JSON bodies.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apiErrors "github.com/dtroode/tasktracker-server/internal/api/errors"
	"github.com/dtroode/tasktracker-server/internal/model"
)

// Error writes err as {"error": "..."} and aborts the handler chain.
// Errors that are not APIErrors are recorded on the context for logging and
// reported to the caller with a generic message.
func Error(c *gin.Context, err error) {
	code, message := Status(err)
	if code >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// Status maps err to an HTTP status code and a client-safe message.
func Status(err error) (int, string) {
	var apiErr *apiErrors.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPCode, apiErr.Message
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "not found"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
