// Package routes registers the HTTP route groups.
package routes

import (
	"github.com/gin-gonic/gin"

	"ticketdesk/internal/interfaces/http/handlers"
	"ticketdesk/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		// Credential endpoints are rate limited when Redis is available
		if config.RateLimiter != nil {
			auth.POST("/register", config.RateLimiter.Limit(), config.AuthHandler.Register)
			auth.POST("/login", config.RateLimiter.Limit(), config.AuthHandler.Login)
		} else {
			auth.POST("/register", config.AuthHandler.Register)
			auth.POST("/login", config.AuthHandler.Login)
		}

		// Logout stays public so expired-token clients can still clear state
		auth.POST("/logout", config.AuthHandler.Logout)

		auth.GET("/me",
			config.AuthMiddleware.RequireAuth(),
			config.AuthHandler.Me)
	}
}
