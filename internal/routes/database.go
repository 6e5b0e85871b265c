package routes

import (
	"voxql/internal/handlers"
	"voxql/internal/middlewares"

	"github.com/gin-gonic/gin"
)

type ConnectionRoutes struct {
	handler *handlers.ConnectionHandler
}

func NewConnectionRoutes(handler *handlers.ConnectionHandler) *ConnectionRoutes {
	return &ConnectionRoutes{handler: handler}
}

func (r *ConnectionRoutes) RegisterRoutes(router *gin.RouterGroup) {
	databases := router.Group("/databases")
	databases.Use(middlewares.Authenticate)
	{
		databases.POST("", r.handler.Create)
		databases.GET("", r.handler.List)
		databases.GET("/:id", r.handler.Get)
		databases.PUT("/:id", r.handler.Update)
		databases.DELETE("/:id", r.handler.Delete)
	}
}
