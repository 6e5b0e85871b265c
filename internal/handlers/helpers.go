package handlers

import (
	"errors"
	"net/http"

	"voxql/internal/apperrors"
	"voxql/internal/responses"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentUserID pulls the authenticated user's id set by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("userId")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// failFromError maps the error taxonomy to an HTTP status and renders the
// standard error envelope.
func failFromError(c *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, apperrors.ErrUpstream):
		status = http.StatusBadRequest
	}
	responses.Fail(c, status, err, message)
}
