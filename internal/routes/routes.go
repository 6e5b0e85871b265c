package routes

import (
	"net/http"

	"voxql/internal/handlers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine, authHandler *handlers.AuthHandler, userHandler *handlers.UserHandler, connectionHandler *handlers.ConnectionHandler, sessionHandler *handlers.SessionHandler, messageHandler *handlers.MessageHandler) {
	api := router.Group("/api/v1")

	authRoutes := NewAuthRoutes(authHandler, userHandler)
	authRoutes.RegisterRoutes(api)

	connectionRoutes := NewConnectionRoutes(connectionHandler)
	connectionRoutes.RegisterRoutes(api)

	sessionRoutes := NewSessionRoutes(sessionHandler)
	sessionRoutes.RegisterRoutes(api)

	messageRoutes := NewMessageRoutes(messageHandler)
	messageRoutes.RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
