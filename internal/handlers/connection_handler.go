package handlers

import (
	"net/http"

	"voxql/internal/responses"
	"voxql/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ConnectionHandler struct {
	connectionService *services.ConnectionService
}

func NewConnectionHandler(connectionService *services.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{connectionService: connectionService}
}

// Create handles POST /api/v1/databases
func (h *ConnectionHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	var req services.CreateConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	conn, err := h.connectionService.Create(userID, req)
	if err != nil {
		failFromError(c, err, "Failed to create database connection")
		return
	}

	responses.Success(c, http.StatusCreated, conn, "Database connection created successfully")
}

// List handles GET /api/v1/databases
func (h *ConnectionHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	conns, err := h.connectionService.List(userID)
	if err != nil {
		failFromError(c, err, "Failed to retrieve database connections")
		return
	}

	responses.Success(c, http.StatusOK, conns, "Database connections retrieved successfully")
}

// Get handles GET /api/v1/databases/:id
func (h *ConnectionHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid connection id")
		return
	}

	conn, err := h.connectionService.GetByID(id, userID)
	if err != nil {
		failFromError(c, err, "Database connection not found")
		return
	}

	responses.Success(c, http.StatusOK, conn, "Database connection retrieved successfully")
}

// Update handles PUT /api/v1/databases/:id
func (h *ConnectionHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid connection id")
		return
	}

	var req services.UpdateConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	conn, err := h.connectionService.Update(id, userID, req)
	if err != nil {
		failFromError(c, err, "Failed to update database connection")
		return
	}

	responses.Success(c, http.StatusOK, conn, "Database connection updated successfully")
}

// Delete handles DELETE /api/v1/databases/:id
func (h *ConnectionHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid connection id")
		return
	}

	if err := h.connectionService.Delete(id, userID); err != nil {
		failFromError(c, err, "Failed to delete database connection")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Database connection deleted successfully")
}
