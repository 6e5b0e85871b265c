package handlers

import (
	"net/http"

	"voxql/internal/responses"
	"voxql/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionHandler struct {
	sessionService *services.SessionService
}

func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	var req services.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	session, err := h.sessionService.Create(userID, req)
	if err != nil {
		failFromError(c, err, "Failed to create query session")
		return
	}

	responses.Success(c, http.StatusCreated, session, "Query session created successfully")
}

// List handles GET /api/v1/sessions
func (h *SessionHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	sessions, err := h.sessionService.ListForOwner(userID)
	if err != nil {
		failFromError(c, err, "Failed to retrieve query sessions")
		return
	}

	responses.Success(c, http.StatusOK, sessions, "Query sessions retrieved successfully")
}

// Get handles GET /api/v1/sessions/:session_id
func (h *SessionHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid session id")
		return
	}

	session, err := h.sessionService.GetByID(id, userID)
	if err != nil {
		failFromError(c, err, "Query session not found")
		return
	}

	responses.Success(c, http.StatusOK, session, "Query session retrieved successfully")
}
