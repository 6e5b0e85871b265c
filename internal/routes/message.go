package routes

import (
	"voxql/internal/handlers"
	"voxql/internal/middlewares"

	"github.com/gin-gonic/gin"
)

type MessageRoutes struct {
	handler *handlers.MessageHandler
}

func NewMessageRoutes(handler *handlers.MessageHandler) *MessageRoutes {
	return &MessageRoutes{handler: handler}
}

func (r *MessageRoutes) RegisterRoutes(router *gin.RouterGroup) {
	messages := router.Group("/sessions/:session_id/messages")
	messages.Use(middlewares.Authenticate)
	{
		messages.POST("", r.handler.Create)
		messages.GET("", r.handler.ListBySession)
	}
}
