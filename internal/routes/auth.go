package routes

import (
	"voxql/internal/handlers"
	"voxql/internal/middlewares"

	"github.com/gin-gonic/gin"
)

type AuthRoutes struct {
	authHandler *handlers.AuthHandler
	userHandler *handlers.UserHandler
}

func NewAuthRoutes(authHandler *handlers.AuthHandler, userHandler *handlers.UserHandler) *AuthRoutes {
	return &AuthRoutes{
		authHandler: authHandler,
		userHandler: userHandler,
	}
}

func (r *AuthRoutes) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup", r.authHandler.Signup)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/logout", r.authHandler.Logout)

		auth.GET("/me", middlewares.Authenticate, r.userHandler.Me)
		auth.PUT("/password", middlewares.Authenticate, r.userHandler.UpdatePassword)
	}
}
