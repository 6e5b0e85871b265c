package handlers

import (
	"net/http"

	"voxql/internal/responses"
	"voxql/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Create handles POST /api/v1/sessions/:session_id/messages
func (h *MessageHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid session id")
		return
	}

	var req services.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body: database_id and request_query are required")
		return
	}

	msg, err := h.messageService.Create(c.Request.Context(), userID, sessionID, req)
	if err != nil {
		failFromError(c, err, "Failed to process query")
		return
	}

	responses.Success(c, http.StatusCreated, msg, "Query processed successfully")
}

// ListBySession handles GET /api/v1/sessions/:session_id/messages
func (h *MessageHandler) ListBySession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid session id")
		return
	}

	messages, err := h.messageService.GetBySession(sessionID, userID)
	if err != nil {
		failFromError(c, err, "Failed to fetch query messages")
		return
	}

	responses.Success(c, http.StatusOK, messages, "Query messages retrieved successfully")
}
