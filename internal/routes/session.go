package routes

import (
	"voxql/internal/handlers"
	"voxql/internal/middlewares"

	"github.com/gin-gonic/gin"
)

type SessionRoutes struct {
	handler *handlers.SessionHandler
}

func NewSessionRoutes(handler *handlers.SessionHandler) *SessionRoutes {
	return &SessionRoutes{handler: handler}
}

func (r *SessionRoutes) RegisterRoutes(router *gin.RouterGroup) {
	sessions := router.Group("/sessions")
	sessions.Use(middlewares.Authenticate)
	{
		sessions.POST("", r.handler.Create)
		sessions.GET("", r.handler.List)
		sessions.GET("/:session_id", r.handler.Get)
	}
}
